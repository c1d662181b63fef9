package employee

import (
	"context"
	"fmt"

	"github.com/shiftgrid/scheduler-backend-go/internal/domain/employee"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/organization"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/bus"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/database"
)

type employeeServiceImpl struct {
	db               *database.DB
	employeeRepo     employee.EmployeeRepository
	organizationRepo organization.OrganizationRepository
	bus              *bus.Bus
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	organizationRepo organization.OrganizationRepository,
	eventBus *bus.Bus,
) employee.EmployeeService {
	return &employeeServiceImpl{
		db:               db,
		employeeRepo:     employeeRepo,
		organizationRepo: organizationRepo,
		bus:              eventBus,
	}
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The owning organization must exist before staff can be attached.
	if _, err := s.organizationRepo.GetByID(ctx, req.OrganizationID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		OrganizationID: req.OrganizationID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           req.Role,
		HourlyRate:     req.HourlyRate,
		Availability:   req.Availability,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.bus.Publish(created.OrganizationID, bus.TopicEmployeeAdded, map[string]string{"id": created.ID})

	return employee.ToResponse(created), nil
}

// ListActive implements employee.EmployeeService. Only active employees
// are returned; soft deleted staff are invisible to every consumer.
func (s *employeeServiceImpl) ListActive(ctx context.Context, organizationID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetActiveByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.bus.Publish(updated.OrganizationID, bus.TopicEmployeeUpdated, map[string]string{"id": updated.ID})

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService. Soft delete only: the row
// keeps its history and any schedule entries already created for the
// employee stay in the store.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(emp.OrganizationID, bus.TopicEmployeeDeleted, map[string]string{"id": id})

	return nil
}
