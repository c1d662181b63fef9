package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeShift   EntryType = "shift"
	EntryTypeHoliday EntryType = "holiday"
	EntryTypeDayOff  EntryType = "day-off"
)

var EntryTypeValues = []string{
	string(EntryTypeShift),
	string(EntryTypeHoliday),
	string(EntryTypeDayOff),
}

// Entry is one calendar placement for one employee on one date. Role and
// HourlyRate are denormalized from the employee row at creation time and do
// not follow later employee edits. Date is an ISO "YYYY-MM-DD" string;
// lookups compare it by string equality, so all producers format it the
// same way.
type Entry struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	EmployeeName   string
	Date           string
	StartTime      string
	EndTime        string
	Role           string
	HourlyRate     decimal.Decimal
	Type           EntryType
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DateLayout is the wire and comparison format for Entry.Date.
const DateLayout = "2006-01-02"
