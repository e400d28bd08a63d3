package testutil

import (
	"github.com/prachij94/CancelItNowBot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSubscription creates an active test subscription
func NewTestSubscription(rowPos int, userID int64, name string, cost int, priority domain.Priority) domain.Subscription {
	return domain.Subscription{
		RowPos:   rowPos,
		UserID:   userID,
		Username: "tester",
		Name:     name,
		Cost:     cost,
		Priority: priority,
		Status:   domain.StatusActive,
	}
}

// NewTestCancelTarget creates a cancellation target
func NewTestCancelTarget(rowPos int, name string, cost int) *domain.CancelTarget {
	return &domain.CancelTarget{
		RowPos: rowPos,
		Name:   name,
		Cost:   cost,
	}
}
