package ledger

import (
	"time"

	"github.com/google/uuid"
)

// SeedData describes the demo profile created at startup.
type SeedData struct {
	EmployeeID   string
	EmployeeName string
	Casual       int
	Sick         int
	DemoHistory  bool
}

// SeedProfile builds the single in-memory employee profile. With
// DemoHistory set it includes one pre-approved casual leave so the
// upcoming/cancel paths have something to show out of the box.
func SeedProfile(seed SeedData) *Employee {
	emp := &Employee{
		ID:   seed.EmployeeID,
		Name: seed.EmployeeName,
		Balance: Balance{
			TypeCasual: seed.Casual,
			TypeSick:   seed.Sick,
		},
	}
	if seed.DemoHistory {
		emp.Records = append(emp.Records, &Record{
			ID:     uuid.NewString(),
			From:   time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
			To:     time.Date(2025, time.July, 7, 0, 0, 0, 0, time.UTC),
			Type:   TypeCasual,
			Reason: "Vacation",
			Status: StatusApproved,
		})
	}
	return emp
}
