package domain

// Priority is the user-assigned importance tier of a subscription
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ParsePriority maps a raw tier string to a Priority
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), true
	}
	return "", false
}

// Glyph returns the colored circle shown next to the tier
func (p Priority) Glyph() string {
	switch p {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

// Status is the lifecycle state of a subscription row
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	// StatusPassive marks the placeholder row appended on first contact;
	// passive rows never show up in reports
	StatusPassive Status = "passive"
)

// Subscription is one row of the backing table
type Subscription struct {
	// RowPos is the 1-based position in the backing table. The header
	// occupies position 1, so data rows start at 2. Assigned at append
	// time and stable forever (rows are never deleted).
	RowPos   int
	UserID   int64
	Username string
	Name     string
	Cost     int
	Priority Priority
	Status   Status
}

// Cost bounds accepted by the add flow
const (
	MinCost = 1
	MaxCost = 100000
)
