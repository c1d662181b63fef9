package organization

import "time"

// Organization is the business entity that owns employees and schedules.
// BusinessHours maps a lowercase weekday name to an opening range such as
// "09:00-17:00", or "closed".
type Organization struct {
	ID                 string
	Name               string
	OwnerID            string
	BusinessHours      map[string]string
	Timezone           string
	Roles              []string
	DefaultShiftLength int
	MinStaffPerShift   int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
