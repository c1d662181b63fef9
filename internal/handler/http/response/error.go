package response

import (
	"errors"
	"net/http"

	"github.com/shiftgrid/scheduler-backend-go/internal/domain/auth"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/employee"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/organization"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/schedule"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrMissingUserID):
		Unauthorized(w, "user_id claim is missing")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrNotOwner):
		Forbidden(w, "Organization does not belong to this user")
	case errors.Is(err, organization.ErrOwnerHasOrganization):
		Conflict(w, "Owner already has an organization")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this employee")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")
	case errors.Is(err, schedule.ErrInvalidEntryType):
		BadRequest(w, "Entry type must be shift, holiday or day-off", nil)
	case errors.Is(err, schedule.ErrShiftTimesRequired):
		BadRequest(w, "Regular shifts require a start and end time", nil)
	case errors.Is(err, schedule.ErrShiftTimesInverted):
		BadRequest(w, "Shift end time must be after its start time", nil)
	case errors.Is(err, schedule.ErrEmployeeNotInOrg):
		BadRequest(w, "Employee does not belong to this organization", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
