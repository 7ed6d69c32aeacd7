package report

import (
	"bytes"
	"testing"
	"time"

	"leavebot/internal/domain/ledger"
)

func TestLeaveStatement(t *testing.T) {
	emp := ledger.Employee{
		ID:   "E001",
		Name: "John Doe",
		Balance: ledger.Balance{
			ledger.TypeCasual: 4,
			ledger.TypeSick:   2,
		},
	}
	records := []ledger.Record{
		{
			From:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
			To:     time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
			Type:   ledger.TypeCasual,
			Reason: "Vacation",
			Status: ledger.StatusApproved,
		},
	}

	data, err := LeaveStatement(emp, records, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF magic bytes, got %q", data[:min(len(data), 8)])
	}
}

func TestLeaveStatementEmptyHistory(t *testing.T) {
	emp := ledger.Employee{ID: "E001", Name: "John Doe", Balance: ledger.Balance{}}

	data, err := LeaveStatement(emp, nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF")
	}
}
