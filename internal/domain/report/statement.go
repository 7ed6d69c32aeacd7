// Package report renders the employee's leave history as a PDF
// statement for download.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"leavebot/internal/domain/ledger"
)

const dateFormat = "2006-01-02"

// LeaveStatement builds a one-page PDF with the employee's balances
// and full leave history.
func LeaveStatement(emp ledger.Employee, records []ledger.Record, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", generatedAt.Format(dateFormat)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining: %d casual, %d sick",
		emp.Balance[ledger.TypeCasual], emp.Balance[ledger.TypeSick]))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "History")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(records) == 0 {
		pdf.Cell(0, 7, "No leaves applied.")
		pdf.Ln(7)
	}
	for _, rec := range records {
		pdf.Cell(0, 7, fmt.Sprintf("%s to %s  %s  %s  (%s)",
			rec.From.Format(dateFormat), rec.To.Format(dateFormat),
			rec.Type, rec.Reason, rec.Status))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render leave statement: %w", err)
	}
	return buf.Bytes(), nil
}
