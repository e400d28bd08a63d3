package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prachij94/CancelItNowBot/internal/domain"
)

// SubscriptionRepo implements repository.SubscriptionRepository
type SubscriptionRepo struct {
	db *sql.DB
}

// appendLockID is the advisory lock key serializing row position
// assignment across concurrent appends
const appendLockID = 815421

// NewSubscriptionRepo creates a new subscription repository
func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// Append inserts one row at the next free position. Positions start at
// 2 to match the sheet layout (the header occupies position 1) and are
// never reused, since rows are never deleted. The MAX(row_pos) read and
// the insert run under an advisory transaction lock so two concurrent
// appends cannot compute the same position.
func (r *SubscriptionRepo) Append(ctx context.Context, sub domain.Subscription) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storeErr("append row", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, appendLockID); err != nil {
		return 0, storeErr("append row", err)
	}

	query := `
		INSERT INTO subscriptions (row_pos, user_id, username, name, cost, priority, status)
		SELECT COALESCE(MAX(row_pos), 1) + 1, $1, $2, $3, $4, $5, $6
		FROM subscriptions
		RETURNING row_pos
	`

	var rowPos int
	err = tx.QueryRowContext(ctx, query,
		sub.UserID, sub.Username, sub.Name, sub.Cost, string(sub.Priority), string(sub.Status),
	).Scan(&rowPos)
	if err != nil {
		return 0, storeErr("append row", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storeErr("append row", err)
	}

	return rowPos, nil
}

// ListActive returns the user's active rows in table order
func (r *SubscriptionRepo) ListActive(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	query := `
		SELECT row_pos, user_id, username, name, cost, priority, status
		FROM subscriptions
		WHERE user_id = $1 AND status = $2
		ORDER BY row_pos
	`

	rows, err := r.db.QueryContext(ctx, query, userID, string(domain.StatusActive))
	if err != nil {
		return nil, storeErr("list rows", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		var priority, status string
		if err := rows.Scan(&s.RowPos, &s.UserID, &s.Username, &s.Name, &s.Cost, &priority, &status); err != nil {
			return nil, storeErr("scan row", err)
		}
		s.Priority = domain.Priority(priority)
		s.Status = domain.Status(status)
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list rows", err)
	}

	return subs, nil
}

// SetStatus updates the status field of one row in place
func (r *SubscriptionRepo) SetStatus(ctx context.Context, rowPos int, status domain.Status) error {
	query := `UPDATE subscriptions SET status = $2 WHERE row_pos = $1`

	if _, err := r.db.ExecContext(ctx, query, rowPos, string(status)); err != nil {
		return storeErr("update status", err)
	}
	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
