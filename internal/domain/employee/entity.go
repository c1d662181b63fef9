package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a staff member of exactly one organization. Availability maps
// a lowercase weekday name to a [start, end] pair of "HH:MM" times; a
// missing day means unavailable. A zero HourlyRate means "not priced".
type Employee struct {
	ID             string
	OrganizationID string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Role           string
	HourlyRate     decimal.Decimal
	Availability   map[string][2]string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName is the display name denormalized onto schedule entries.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
