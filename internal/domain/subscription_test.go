package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
		ok       bool
	}{
		{
			name:     "high",
			input:    "High",
			expected: PriorityHigh,
			ok:       true,
		},
		{
			name:     "medium",
			input:    "Medium",
			expected: PriorityMedium,
			ok:       true,
		},
		{
			name:     "low",
			input:    "Low",
			expected: PriorityLow,
			ok:       true,
		},
		{
			name:  "lowercase rejected",
			input: "high",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
		{
			name:  "garbage",
			input: "Urgent",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParsePriority(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, p)
			}
		})
	}
}

func TestPriority_Glyph(t *testing.T) {
	assert.Equal(t, "🔴", PriorityHigh.Glyph())
	assert.Equal(t, "🟡", PriorityMedium.Glyph())
	assert.Equal(t, "🟢", PriorityLow.Glyph())
}

func TestCancelTarget_YearlySavings(t *testing.T) {
	target := CancelTarget{RowPos: 2, Name: "Netflix", Cost: 499}
	assert.Equal(t, 5988, target.YearlySavings())

	zero := CancelTarget{}
	assert.Equal(t, 0, zero.YearlySavings())
}
