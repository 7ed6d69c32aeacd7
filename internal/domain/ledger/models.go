package ledger

import "time"

type LeaveType string

const (
	TypeCasual LeaveType = "casual"
	TypeSick   LeaveType = "sick"
)

// Types lists the supported leave types in display order.
var Types = []LeaveType{TypeCasual, TypeSick}

func (t LeaveType) Valid() bool {
	return t == TypeCasual || t == TypeSick
}

type Status string

const (
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
)

// Record is one leave application. Dates are calendar dates held at
// UTC midnight; From <= To. Records are never deleted, only marked
// cancelled.
type Record struct {
	ID     string    `json:"id"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Type   LeaveType `json:"type"`
	Reason string    `json:"reason"`
	Status Status    `json:"status"`
}

// Balance holds remaining leave counts per type. Never negative.
type Balance map[LeaveType]int

func (b Balance) clone() Balance {
	out := make(Balance, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Employee is the single profile the assistant manages.
type Employee struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Balance Balance   `json:"balance"`
	Records []*Record `json:"records"`
}
