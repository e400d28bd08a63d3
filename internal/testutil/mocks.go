package testutil

import (
	"context"

	"github.com/prachij94/CancelItNowBot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSubscriptionRepository is a mock for SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Append(ctx context.Context, sub domain.Subscription) (int, error) {
	args := m.Called(sub)
	return args.Int(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListActive(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) SetStatus(ctx context.Context, rowPos int, status domain.Status) error {
	args := m.Called(rowPos, status)
	return args.Error(0)
}
