package cart

// MutationState tracks the confirm-then-apply cycle of a cart mutation.
// UI binds to this state instead of ad hoc loading booleans.
type MutationState int

const (
	MutationIdle MutationState = iota
	MutationPending
	MutationApplied
	MutationFailed
)

func (m MutationState) String() string {
	switch m {
	case MutationIdle:
		return "idle"
	case MutationPending:
		return "pending"
	case MutationApplied:
		return "applied"
	case MutationFailed:
		return "failed"
	default:
		return "unknown"
	}
}
