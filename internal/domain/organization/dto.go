package organization

import (
	"strings"

	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/validator"
)

type CreateOrganizationRequest struct {
	Name               string            `json:"name"`
	BusinessHours      map[string]string `json:"business_hours"`
	Timezone           string            `json:"timezone"`
	Roles              []string          `json:"roles"`
	DefaultShiftLength int               `json:"default_shift_length"`
	MinStaffPerShift   int               `json:"min_staff_per_shift"`
}

func (r *CreateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	for day := range r.BusinessHours {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "business_hours",
				Message: day + " is not a weekday name",
			})
		}
	}
	if r.DefaultShiftLength < 0 || r.DefaultShiftLength > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_shift_length",
			Message: "default_shift_length must be between 0 and 24",
		})
	}
	if r.MinStaffPerShift < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_staff_per_shift",
			Message: "min_staff_per_shift must be a non-negative number",
		})
	}
	for _, role := range r.Roles {
		if validator.IsEmpty(role) {
			errs = append(errs, validator.ValidationError{
				Field:   "roles",
				Message: "role names must not be empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateOrganizationRequest is a patch: nil fields are left untouched.
type UpdateOrganizationRequest struct {
	Name               *string            `json:"name,omitempty"`
	BusinessHours      *map[string]string `json:"business_hours,omitempty"`
	Timezone           *string            `json:"timezone,omitempty"`
	Roles              *[]string          `json:"roles,omitempty"`
	DefaultShiftLength *int               `json:"default_shift_length,omitempty"`
	MinStaffPerShift   *int               `json:"min_staff_per_shift,omitempty"`
}

func (r *UpdateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.BusinessHours != nil {
		for day := range *r.BusinessHours {
			if !validator.IsValidWeekday(day) {
				errs = append(errs, validator.ValidationError{
					Field:   "business_hours",
					Message: day + " is not a weekday name",
				})
			}
		}
	}
	if r.DefaultShiftLength != nil && (*r.DefaultShiftLength < 0 || *r.DefaultShiftLength > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_shift_length",
			Message: "default_shift_length must be between 0 and 24",
		})
	}
	if r.MinStaffPerShift != nil && *r.MinStaffPerShift < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_staff_per_shift",
			Message: "min_staff_per_shift must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OrganizationResponse struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	OwnerID            string            `json:"owner_id"`
	BusinessHours      map[string]string `json:"business_hours"`
	Timezone           string            `json:"timezone"`
	Roles              []string          `json:"roles"`
	DefaultShiftLength int               `json:"default_shift_length"`
	MinStaffPerShift   int               `json:"min_staff_per_shift"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

func ToResponse(org Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:                 org.ID,
		Name:               strings.TrimSpace(org.Name),
		OwnerID:            org.OwnerID,
		BusinessHours:      org.BusinessHours,
		Timezone:           org.Timezone,
		Roles:              org.Roles,
		DefaultShiftLength: org.DefaultShiftLength,
		MinStaffPerShift:   org.MinStaffPerShift,
		CreatedAt:          org.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:          org.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
