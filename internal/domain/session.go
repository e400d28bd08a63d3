package domain

// FlowState represents where the user is in the conversation
type FlowState string

const (
	StateIdle               FlowState = "idle"
	StateCollectName        FlowState = "collect_name"
	StateCollectCost        FlowState = "collect_cost"
	StateCollectPriority    FlowState = "collect_priority"
	StateAwaitCancelConfirm FlowState = "await_cancel_confirm"
)

// CancelTarget captures the row the user picked for cancellation,
// held until they confirm or abort
type CancelTarget struct {
	RowPos int
	Name   string
	Cost   int
}

// YearlySavings is what cancelling saves over twelve months
func (t CancelTarget) YearlySavings() int {
	return t.Cost * 12
}

// StateData holds the per-user session: the current flow state and the
// partially collected subscription fields
type StateData struct {
	State       FlowState
	PendingName string
	PendingCost int
	Cancel      *CancelTarget
}
