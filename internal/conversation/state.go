package conversation

import "time"

// StateKind tags the single pending multi-turn flow. At most one flow
// is pending at a time; starting a new one discards an unfinished one.
type StateKind int

const (
	StateNone StateKind = iota
	StateAwaitingCancelDate
	StateAwaitingApplyDates
	StateCollectingReason
	StateCollectingType
)

func (k StateKind) String() string {
	switch k {
	case StateAwaitingCancelDate:
		return "awaiting_cancel_date"
	case StateAwaitingApplyDates:
		return "awaiting_apply_dates"
	case StateCollectingReason:
		return "collecting_reason"
	case StateCollectingType:
		return "collecting_type"
	default:
		return "none"
	}
}

// State is the pending flow plus the slots collected so far. From/To
// are set from StateCollectingReason onward, Reason from
// StateCollectingType onward.
type State struct {
	Kind   StateKind
	From   time.Time
	To     time.Time
	Reason string
}
