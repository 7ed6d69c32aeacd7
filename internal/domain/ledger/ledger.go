package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDuplicate           = errors.New("leave already applied for this date and type")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrNotFound            = errors.New("no approved leave on this date")
	ErrInvalidType         = errors.New("unknown leave type")
	ErrInvalidRange        = errors.New("end date before start date")
)

// Ledger owns one employee's balances and leave history.
type Ledger struct {
	emp *Employee
}

func New(emp *Employee) *Ledger {
	if emp.Balance == nil {
		emp.Balance = Balance{}
	}
	return &Ledger{emp: emp}
}

// DateOnly truncates a timestamp to its calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (l *Ledger) Employee() *Employee {
	return l.emp
}

// Balances returns a copy of the current per-type balances.
func (l *Ledger) Balances() Balance {
	return l.emp.Balance.clone()
}

// Upcoming returns approved records starting today or later, in
// history order.
func (l *Ledger) Upcoming(today time.Time) []*Record {
	today = DateOnly(today)
	var out []*Record
	for _, rec := range l.emp.Records {
		if rec.Status == StatusApproved && !rec.From.Before(today) {
			out = append(out, rec)
		}
	}
	return out
}

// History returns all records in insertion order.
func (l *Ledger) History() []*Record {
	out := make([]*Record, len(l.emp.Records))
	copy(out, l.emp.Records)
	return out
}

// Apply records a new approved leave and decrements the balance for
// its type by one, regardless of the span length. An approved record
// with the same from-date and type blocks the application; the to-date
// is deliberately not part of the duplicate check.
func (l *Ledger) Apply(from, to time.Time, reason string, typ LeaveType) (*Record, error) {
	if !typ.Valid() {
		return nil, ErrInvalidType
	}
	from, to = DateOnly(from), DateOnly(to)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	for _, rec := range l.emp.Records {
		if rec.Status == StatusApproved && rec.Type == typ && rec.From.Equal(from) {
			return nil, ErrDuplicate
		}
	}
	if l.emp.Balance[typ] <= 0 {
		return nil, ErrInsufficientBalance
	}

	rec := &Record{
		ID:     uuid.NewString(),
		From:   from,
		To:     to,
		Type:   typ,
		Reason: reason,
		Status: StatusApproved,
	}
	l.emp.Records = append(l.emp.Records, rec)
	l.emp.Balance[typ]--
	return rec, nil
}

// Cancel marks the first approved record starting on the given date as
// cancelled and returns one day to its type's balance.
func (l *Ledger) Cancel(from time.Time) (*Record, error) {
	from = DateOnly(from)
	for _, rec := range l.emp.Records {
		if rec.Status == StatusApproved && rec.From.Equal(from) {
			rec.Status = StatusCancelled
			l.emp.Balance[rec.Type]++
			return rec, nil
		}
	}
	return nil, ErrNotFound
}
