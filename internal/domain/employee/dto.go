package employee

import (
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	OrganizationID string               `json:"organization_id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Email          *string              `json:"email,omitempty"`
	Phone          *string              `json:"phone,omitempty"`
	Role           string               `json:"role"`
	HourlyRate     decimal.Decimal      `json:"hourly_rate"`
	Availability   map[string][2]string `json:"availability,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrganizationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "organization_id",
			Message: "organization_id is required",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a non-negative number",
		})
	}
	errs = append(errs, validateAvailability(r.Availability)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest is a patch: nil fields are left untouched. The
// active flag is not part of it; deactivation goes through SoftDelete.
type UpdateEmployeeRequest struct {
	FirstName    *string               `json:"first_name,omitempty"`
	LastName     *string               `json:"last_name,omitempty"`
	Email        *string               `json:"email,omitempty"`
	Phone        *string               `json:"phone,omitempty"`
	Role         *string               `json:"role,omitempty"`
	HourlyRate   *decimal.Decimal      `json:"hourly_rate,omitempty"`
	Availability *map[string][2]string `json:"availability,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a non-negative number",
		})
	}
	if r.Availability != nil {
		errs = append(errs, validateAvailability(*r.Availability)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateAvailability(availability map[string][2]string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for day, window := range availability {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "availability",
				Message: day + " is not a weekday name",
			})
			continue
		}
		if !validator.IsValidClockTime(window[0]) || !validator.IsValidClockTime(window[1]) {
			errs = append(errs, validator.ValidationError{
				Field:   "availability",
				Message: day + " window must be a pair of HH:MM times",
			})
		}
	}
	return errs
}

type EmployeeResponse struct {
	ID             string               `json:"id"`
	OrganizationID string               `json:"organization_id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Email          *string              `json:"email,omitempty"`
	Phone          *string              `json:"phone,omitempty"`
	Role           string               `json:"role"`
	HourlyRate     decimal.Decimal      `json:"hourly_rate"`
	Availability   map[string][2]string `json:"availability,omitempty"`
	IsActive       bool                 `json:"is_active"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             emp.ID,
		OrganizationID: emp.OrganizationID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		Phone:          emp.Phone,
		Role:           emp.Role,
		HourlyRate:     emp.HourlyRate,
		Availability:   emp.Availability,
		IsActive:       emp.IsActive,
		CreatedAt:      emp.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      emp.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
