package sheets

import (
	"testing"

	"github.com/prachij94/CancelItNowBot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRowFromRange(t *testing.T) {
	tests := []struct {
		name          string
		updatedRange  string
		expectedRow   int
		expectedError bool
	}{
		{
			name:         "plain sheet name",
			updatedRange: "Sheet1!A5:F5",
			expectedRow:  5,
		},
		{
			name:         "quoted sheet name",
			updatedRange: "'My Subs'!A12:F12",
			expectedRow:  12,
		},
		{
			name:         "single cell",
			updatedRange: "Sheet1!F2",
			expectedRow:  2,
		},
		{
			name:          "no row number",
			updatedRange:  "Sheet1!A:F",
			expectedError: true,
		},
		{
			name:          "empty",
			updatedRange:  "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := rowFromRange(tt.updatedRange)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRow, row)
			}
		})
	}
}

func TestSubscriptionFromRow(t *testing.T) {
	tests := []struct {
		name     string
		pos      int
		row      []interface{}
		expected domain.Subscription
	}{
		{
			name: "full active row",
			pos:  2,
			row:  []interface{}{"123", "alice", "Netflix", "499", "High", "active"},
			expected: domain.Subscription{
				RowPos:   2,
				UserID:   123,
				Username: "alice",
				Name:     "Netflix",
				Cost:     499,
				Priority: domain.PriorityHigh,
				Status:   domain.StatusActive,
			},
		},
		{
			name: "passive placeholder with empty cells",
			pos:  3,
			row:  []interface{}{"456", "", "", "", "", "passive"},
			expected: domain.Subscription{
				RowPos: 3,
				UserID: 456,
				Status: domain.StatusPassive,
			},
		},
		{
			name: "status is lowercased",
			pos:  4,
			row:  []interface{}{"123", "alice", "Gym", "900", "Low", "Active"},
			expected: domain.Subscription{
				RowPos:   4,
				UserID:   123,
				Username: "alice",
				Name:     "Gym",
				Cost:     900,
				Priority: domain.PriorityLow,
				Status:   domain.StatusActive,
			},
		},
		{
			name: "short row does not panic",
			pos:  5,
			row:  []interface{}{"789"},
			expected: domain.Subscription{
				RowPos: 5,
				UserID: 789,
			},
		},
		{
			name: "malformed cost degrades to zero",
			pos:  6,
			row:  []interface{}{"123", "alice", "Spotify", "oops", "Medium", "active"},
			expected: domain.Subscription{
				RowPos:   6,
				UserID:   123,
				Username: "alice",
				Name:     "Spotify",
				Priority: domain.PriorityMedium,
				Status:   domain.StatusActive,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, subscriptionFromRow(tt.pos, tt.row))
		})
	}
}

func TestRowValues(t *testing.T) {
	sub := domain.Subscription{
		UserID:   123,
		Username: "alice",
		Name:     "Netflix",
		Cost:     499,
		Priority: domain.PriorityHigh,
		Status:   domain.StatusActive,
	}

	assert.Equal(t,
		[]interface{}{"123", "alice", "Netflix", "499", "High", "active"},
		rowValues(sub),
	)
}

func TestRowValues_PassiveRowHasEmptyCost(t *testing.T) {
	sub := domain.Subscription{
		UserID: 456,
		Status: domain.StatusPassive,
	}

	assert.Equal(t,
		[]interface{}{"456", "", "", "", "", "passive"},
		rowValues(sub),
	)
}
