package ledger

import (
	"errors"
	"testing"
	"time"
)

func testLedger(casual, sick int) *Ledger {
	return New(&Employee{
		ID:   "E001",
		Name: "John Doe",
		Balance: Balance{
			TypeCasual: casual,
			TypeSick:   sick,
		},
	})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyDecrementsByOneRegardlessOfSpan(t *testing.T) {
	l := testLedger(5, 2)

	rec, err := l.Apply(day(2025, 7, 10), day(2025, 7, 14), "trip", TypeCasual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != StatusApproved {
		t.Fatalf("expected approved record, got %s", rec.Status)
	}
	if got := l.Balances()[TypeCasual]; got != 4 {
		t.Fatalf("expected casual balance 4 after five-day leave, got %d", got)
	}
}

func TestApplyDuplicateSameFromAndType(t *testing.T) {
	l := testLedger(5, 2)

	if _, err := l.Apply(day(2025, 7, 10), day(2025, 7, 10), "first", TypeCasual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same from-date, different to-date: still a duplicate.
	_, err := l.Apply(day(2025, 7, 10), day(2025, 7, 12), "second", TypeCasual)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if got := l.Balances()[TypeCasual]; got != 4 {
		t.Fatalf("expected balance unchanged by rejected apply, got %d", got)
	}

	// Different type on the same date is allowed.
	if _, err := l.Apply(day(2025, 7, 10), day(2025, 7, 10), "fever", TypeSick); err != nil {
		t.Fatalf("unexpected error for other type: %v", err)
	}
}

func TestApplyInsufficientBalance(t *testing.T) {
	l := testLedger(5, 0)

	_, err := l.Apply(day(2025, 7, 10), day(2025, 7, 10), "fever", TypeSick)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if got := l.Balances()[TypeSick]; got != 0 {
		t.Fatalf("expected sick balance to stay 0, got %d", got)
	}
}

func TestApplyInvalidRange(t *testing.T) {
	l := testLedger(5, 2)

	_, err := l.Apply(day(2025, 7, 12), day(2025, 7, 10), "trip", TypeCasual)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestCancelRoundTrip(t *testing.T) {
	l := testLedger(5, 2)

	if _, err := l.Apply(day(2025, 7, 10), day(2025, 7, 12), "trip", TypeCasual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, err := l.Cancel(day(2025, 7, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != StatusCancelled {
		t.Fatalf("expected cancelled status, got %s", rec.Status)
	}
	if got := l.Balances()[TypeCasual]; got != 5 {
		t.Fatalf("expected balance restored to 5, got %d", got)
	}
	if len(l.History()) != 1 {
		t.Fatalf("expected record kept in history, got %d records", len(l.History()))
	}
}

func TestCancelIdempotent(t *testing.T) {
	l := testLedger(5, 2)

	if _, err := l.Apply(day(2025, 7, 10), day(2025, 7, 10), "trip", TypeCasual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Cancel(day(2025, 7, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := l.Balances()
	_, err := l.Cancel(day(2025, 7, 10))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second cancel, got %v", err)
	}
	_, err = l.Cancel(day(2030, 1, 1))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown date, got %v", err)
	}
	after := l.Balances()
	if before[TypeCasual] != after[TypeCasual] || before[TypeSick] != after[TypeSick] {
		t.Fatalf("expected balances unchanged, got %v vs %v", before, after)
	}
}

func TestUpcomingFiltersPastAndCancelled(t *testing.T) {
	l := testLedger(5, 2)
	today := day(2025, 7, 1)

	if _, err := l.Apply(day(2025, 6, 20), day(2025, 6, 21), "past", TypeCasual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Apply(day(2025, 7, 1), day(2025, 7, 1), "today", TypeCasual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Apply(day(2025, 7, 10), day(2025, 7, 12), "future", TypeCasual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Cancel(day(2025, 7, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	upcoming := l.Upcoming(today)
	if len(upcoming) != 1 {
		t.Fatalf("expected 1 upcoming record, got %d", len(upcoming))
	}
	if upcoming[0].Reason != "today" {
		t.Fatalf("expected the leave starting today, got %q", upcoming[0].Reason)
	}
}

// Balance conservation: remaining balance plus approved record count
// always equals the starting balance, and no sequence of operations
// drives a balance negative.
func TestBalanceInvariant(t *testing.T) {
	l := testLedger(2, 1)
	initial := l.Balances()

	ops := []func() error{
		func() error { _, err := l.Apply(day(2025, 8, 1), day(2025, 8, 2), "a", TypeCasual); return err },
		func() error { _, err := l.Apply(day(2025, 8, 1), day(2025, 8, 1), "dup", TypeCasual); return err },
		func() error { _, err := l.Apply(day(2025, 8, 5), day(2025, 8, 5), "b", TypeCasual); return err },
		func() error { _, err := l.Apply(day(2025, 8, 9), day(2025, 8, 9), "c", TypeCasual); return err },
		func() error { _, err := l.Cancel(day(2025, 8, 1)); return err },
		func() error { _, err := l.Cancel(day(2025, 8, 1)); return err },
		func() error { _, err := l.Apply(day(2025, 8, 11), day(2025, 8, 11), "d", TypeSick); return err },
		func() error { _, err := l.Apply(day(2025, 8, 12), day(2025, 8, 12), "e", TypeSick); return err },
	}

	for i, op := range ops {
		_ = op()
		for _, typ := range Types {
			balance := l.Balances()[typ]
			if balance < 0 {
				t.Fatalf("op %d: balance for %s went negative", i, typ)
			}
			approved := 0
			for _, rec := range l.History() {
				if rec.Type == typ && rec.Status == StatusApproved {
					approved++
				}
			}
			if balance+approved != initial[typ] {
				t.Fatalf("op %d: %s balance %d + approved %d != initial %d",
					i, typ, balance, approved, initial[typ])
			}
		}
	}
}

func TestSeedProfile(t *testing.T) {
	emp := SeedProfile(SeedData{
		EmployeeID:   "E001",
		EmployeeName: "John Doe",
		Casual:       5,
		Sick:         2,
		DemoHistory:  true,
	})
	if emp.Balance[TypeCasual] != 5 || emp.Balance[TypeSick] != 2 {
		t.Fatalf("unexpected seeded balances: %v", emp.Balance)
	}
	if len(emp.Records) != 1 {
		t.Fatalf("expected 1 seeded record, got %d", len(emp.Records))
	}
	if emp.Records[0].Status != StatusApproved || emp.Records[0].Type != TypeCasual {
		t.Fatalf("unexpected seeded record: %+v", emp.Records[0])
	}
}
