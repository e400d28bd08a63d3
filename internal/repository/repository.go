package repository

import (
	"context"

	"github.com/prachij94/CancelItNowBot/internal/domain"
)

// SubscriptionRepository defines operations over the backing table.
// Implementations report backend failures wrapped in
// domain.ErrStoreUnavailable.
type SubscriptionRepository interface {
	// Append writes one new row at the next free position and returns
	// the assigned row position
	Append(ctx context.Context, sub domain.Subscription) (int, error)
	// ListActive scans the whole table and returns the user's active
	// rows in table order
	ListActive(ctx context.Context, userID int64) ([]domain.Subscription, error)
	// SetStatus updates the status cell of one row in place. It trusts
	// the caller on ownership: rowPos comes from a prior ListActive in
	// the same session.
	SetStatus(ctx context.Context, rowPos int, status domain.Status) error
}
