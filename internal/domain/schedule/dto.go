package schedule

import (
	"strings"

	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/timehm"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateScheduleRequest struct {
	OrganizationID string  `json:"organization_id"`
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Type           string  `json:"type"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrganizationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "organization_id",
			Message: "organization_id is required",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Type, EntryTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(EntryTypeValues, ", "),
		})
	}

	// Regular shifts need both times; a shift whose end does not follow its
	// start is rejected here instead of producing a negative duration
	// downstream. Holiday and day-off entries keep whatever times they were
	// given, duration math never reads them.
	if r.Type == string(EntryTypeShift) {
		if validator.IsEmpty(r.StartTime) || validator.IsEmpty(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: ErrShiftTimesRequired.Error(),
			})
		} else if !validator.IsValidClockTime(r.StartTime) || !validator.IsValidClockTime(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time and end_time must be HH:MM times",
			})
		} else if d, err := timehm.Duration(r.StartTime, r.EndTime); err != nil || d <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: ErrShiftTimesInverted.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateScheduleRequest is a patch: nil fields are left untouched.
type UpdateScheduleRequest struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Role      *string `json:"role,omitempty"`
	Type      *string `json:"type,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, EntryTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(EntryTypeValues, ", "),
		})
	}
	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an HH:MM time",
		})
	}
	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateAgainst checks the patch against the stored entry: the entry as
// it stands after applying the patch must still satisfy the shift time
// rules, so an update cannot invert a shift's times or flip a timeless
// holiday into a shift.
func (r *UpdateScheduleRequest) ValidateAgainst(entry Entry) error {
	entryType := entry.Type
	if r.Type != nil {
		entryType = EntryType(*r.Type)
	}
	if entryType != EntryTypeShift {
		return nil
	}

	start := entry.StartTime
	if r.StartTime != nil {
		start = *r.StartTime
	}
	end := entry.EndTime
	if r.EndTime != nil {
		end = *r.EndTime
	}

	if start == "" || end == "" {
		return ErrShiftTimesRequired
	}
	if d, err := timehm.Duration(start, end); err != nil || d <= 0 {
		return ErrShiftTimesInverted
	}
	return nil
}

type ScheduleResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	Date           string          `json:"date"`
	StartTime      string          `json:"start_time,omitempty"`
	EndTime        string          `json:"end_time,omitempty"`
	Role           string          `json:"role,omitempty"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	Type           string          `json:"type"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

func ToResponse(e Entry) ScheduleResponse {
	return ScheduleResponse{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		EmployeeID:     e.EmployeeID,
		EmployeeName:   e.EmployeeName,
		Date:           e.Date,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Role:           e.Role,
		HourlyRate:     e.HourlyRate,
		Type:           string(e.Type),
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      e.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ==================== WEEK GRID ====================

// GridEntry is one rendered placement inside a grid cell. WidthPx is the
// visual width for regular shifts; FullWidth marks holiday and day-off
// entries, which span the whole cell.
type GridEntry struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	StartTime  string          `json:"start_time,omitempty"`
	EndTime    string          `json:"end_time,omitempty"`
	Role       string          `json:"role,omitempty"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Hours      float64         `json:"hours"`
	WidthPx    int             `json:"width_px"`
	FullWidth  bool            `json:"full_width"`
}

// GridDay is one employee × day cell plus its hour total.
type GridDay struct {
	Date    string      `json:"date"`
	Hours   float64     `json:"hours"`
	Entries []GridEntry `json:"entries"`
}

// GridEmployee is one row of the grid.
type GridEmployee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Color      string          `json:"color"`
	WeekHours  float64         `json:"week_hours"`
	Days       []GridDay       `json:"days"`
}

// GridResponse is the whole employee × day matrix for one Monday-start
// week, with the aggregates the schedule page shows. HasOrganization=false
// prompts the setup flow; an empty Employees slice prompts adding staff.
type GridResponse struct {
	HasOrganization   bool               `json:"has_organization"`
	OrganizationID    string             `json:"organization_id,omitempty"`
	WeekStart         string             `json:"week_start,omitempty"`
	WeekEnd           string             `json:"week_end,omitempty"`
	Days              []string           `json:"days,omitempty"`
	TimeSlots         []string           `json:"time_slots,omitempty"`
	DefaultShiftStart string             `json:"default_shift_start,omitempty"`
	DefaultShiftEnd   string             `json:"default_shift_end,omitempty"`
	Employees         []GridEmployee     `json:"employees"`
	DayHours          map[string]float64 `json:"day_hours,omitempty"`
	TotalHours        float64            `json:"total_hours"`
	TotalLaborCost    decimal.Decimal    `json:"total_labor_cost"`
}
