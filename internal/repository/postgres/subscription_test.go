package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/prachij94/CancelItNowBot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionRepo_Append(t *testing.T) {
	tests := []struct {
		name          string
		sub           domain.Subscription
		mockRows      *sqlmock.Rows
		lockError     error
		insertError   error
		expectedRow   int
		expectedError bool
	}{
		{
			name: "first data row gets position 2",
			sub: domain.Subscription{
				UserID:   123,
				Username: "alice",
				Name:     "Netflix",
				Cost:     499,
				Priority: domain.PriorityHigh,
				Status:   domain.StatusActive,
			},
			mockRows:    sqlmock.NewRows([]string{"row_pos"}).AddRow(2),
			expectedRow: 2,
		},
		{
			name: "passive placeholder row",
			sub: domain.Subscription{
				UserID:   456,
				Username: "bob",
				Status:   domain.StatusPassive,
			},
			mockRows:    sqlmock.NewRows([]string{"row_pos"}).AddRow(7),
			expectedRow: 7,
		},
		{
			name: "insert error wraps ErrStoreUnavailable",
			sub: domain.Subscription{
				UserID: 123,
				Status: domain.StatusActive,
			},
			insertError:   fmt.Errorf("connection refused"),
			expectedError: true,
		},
		{
			name: "lock error wraps ErrStoreUnavailable",
			sub: domain.Subscription{
				UserID: 123,
				Status: domain.StatusActive,
			},
			lockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSubscriptionRepo(db)

			lockQuery := "SELECT pg_advisory_xact_lock\\(\\$1\\)"
			insertQuery := "INSERT INTO subscriptions \\(row_pos, user_id, username, name, cost, priority, status\\)"

			mock.ExpectBegin()
			switch {
			case tt.lockError != nil:
				mock.ExpectExec(lockQuery).WithArgs(appendLockID).WillReturnError(tt.lockError)
				mock.ExpectRollback()
			case tt.insertError != nil:
				mock.ExpectExec(lockQuery).WithArgs(appendLockID).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(insertQuery).
					WithArgs(tt.sub.UserID, tt.sub.Username, tt.sub.Name, tt.sub.Cost, string(tt.sub.Priority), string(tt.sub.Status)).
					WillReturnError(tt.insertError)
				mock.ExpectRollback()
			default:
				mock.ExpectExec(lockQuery).WithArgs(appendLockID).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(insertQuery).
					WithArgs(tt.sub.UserID, tt.sub.Username, tt.sub.Name, tt.sub.Cost, string(tt.sub.Priority), string(tt.sub.Status)).
					WillReturnRows(tt.mockRows)
				mock.ExpectCommit()
			}

			rowPos, err := repo.Append(context.Background(), tt.sub)

			if tt.expectedError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRow, rowPos)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubscriptionRepo_ListActive(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{
			name:   "two active rows in table order",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"row_pos", "user_id", "username", "name", "cost", "priority", "status"}).
				AddRow(2, 123, "alice", "Netflix", 499, "High", "active").
				AddRow(5, 123, "alice", "Gym", 900, "Low", "active"),
			expectedCount: 2,
		},
		{
			name:          "no rows",
			userID:        456,
			mockRows:      sqlmock.NewRows([]string{"row_pos", "user_id", "username", "name", "cost", "priority", "status"}),
			expectedCount: 0,
		},
		{
			name:          "database error wraps ErrStoreUnavailable",
			userID:        789,
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSubscriptionRepo(db)

			query := "SELECT row_pos, user_id, username, name, cost, priority, status FROM subscriptions WHERE user_id = \\$1 AND status = \\$2"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID, "active").WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID, "active").WillReturnRows(tt.mockRows)
			}

			subs, err := repo.ListActive(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			} else {
				assert.NoError(t, err)
				assert.Len(t, subs, tt.expectedCount)
				if tt.expectedCount > 0 {
					assert.Equal(t, 2, subs[0].RowPos)
					assert.Equal(t, "Netflix", subs[0].Name)
					assert.Equal(t, domain.PriorityHigh, subs[0].Priority)
					assert.Equal(t, domain.StatusActive, subs[0].Status)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubscriptionRepo_SetStatus(t *testing.T) {
	tests := []struct {
		name          string
		rowPos        int
		status        domain.Status
		mockError     error
		expectedError bool
	}{
		{
			name:   "cancel a row",
			rowPos: 5,
			status: domain.StatusCancelled,
		},
		{
			name:          "database error wraps ErrStoreUnavailable",
			rowPos:        5,
			status:        domain.StatusCancelled,
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSubscriptionRepo(db)

			query := "UPDATE subscriptions SET status = \\$2 WHERE row_pos = \\$1"

			if tt.mockError != nil {
				mock.ExpectExec(query).WithArgs(tt.rowPos, string(tt.status)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectExec(query).WithArgs(tt.rowPos, string(tt.status)).WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err = repo.SetStatus(context.Background(), tt.rowPos, tt.status)

			if tt.expectedError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
