package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListActive(ctx context.Context, organizationID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Delete is a soft delete: it flips the active flag and never removes
	// the row or the employee's existing schedule entries.
	Delete(ctx context.Context, id string) error
}
