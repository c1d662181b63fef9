package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/employee"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/organization"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/schedule"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/bus"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/database"
)

type scheduleServiceImpl struct {
	db               *database.DB
	scheduleRepo     schedule.ScheduleRepository
	employeeRepo     employee.EmployeeRepository
	organizationRepo organization.OrganizationRepository
	bus              *bus.Bus
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	organizationRepo organization.OrganizationRepository,
	eventBus *bus.Bus,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		db:               db,
		scheduleRepo:     scheduleRepo,
		employeeRepo:     employeeRepo,
		organizationRepo: organizationRepo,
		bus:              eventBus,
	}
}

// Create implements schedule.ScheduleService. Role and hourly rate are
// denormalized from the employee row at this point and frozen on the entry.
func (s *scheduleServiceImpl) Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if emp.OrganizationID != req.OrganizationID {
		return schedule.ScheduleResponse{}, schedule.ErrEmployeeNotInOrg
	}
	if !emp.IsActive {
		return schedule.ScheduleResponse{}, employee.ErrEmployeeInactive
	}

	entry := schedule.Entry{
		ID:             uuid.NewString(),
		OrganizationID: req.OrganizationID,
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName(),
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Role:           emp.Role,
		HourlyRate:     emp.HourlyRate,
		Type:           schedule.EntryType(req.Type),
		Notes:          req.Notes,
	}

	created, err := s.scheduleRepo.Create(ctx, entry)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule entry: %w", err)
	}

	s.bus.Publish(created.OrganizationID, bus.TopicScheduleCreated, map[string]string{"id": created.ID})

	return schedule.ToResponse(created), nil
}

// List implements schedule.ScheduleService.
func (s *scheduleServiceImpl) List(ctx context.Context, organizationID string, date *string) ([]schedule.ScheduleResponse, error) {
	entries, err := s.scheduleRepo.GetByOrganizationID(ctx, organizationID, date)
	if err != nil {
		return nil, err
	}
	return toResponses(entries), nil
}

// ListForWeek implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListForWeek(ctx context.Context, organizationID string, startDate, endDate string) ([]schedule.ScheduleResponse, error) {
	entries, err := s.scheduleRepo.GetForWeek(ctx, organizationID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return toResponses(entries), nil
}

func toResponses(entries []schedule.Entry) []schedule.ScheduleResponse {
	responses := make([]schedule.ScheduleResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, schedule.ToResponse(entry))
	}
	return responses
}

// Update implements schedule.ScheduleService. The patch is checked against
// the stored entry so an update cannot leave a shift with inverted or
// missing times.
func (s *scheduleServiceImpl) Update(ctx context.Context, id string, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	entry, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if err := req.ValidateAgainst(entry); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	updated, err := s.scheduleRepo.Update(ctx, id, req)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	s.bus.Publish(updated.OrganizationID, bus.TopicScheduleUpdated, map[string]string{"id": updated.ID})

	return schedule.ToResponse(updated), nil
}

// Delete implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Delete(ctx context.Context, id string) error {
	entry, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(entry.OrganizationID, bus.TopicScheduleDeleted, map[string]string{"id": id})

	return nil
}

// Grid implements schedule.ScheduleService. An empty organizationID falls
// back to the caller's first owned organization, mirroring the schedule
// page's load order: organization, then active employees, then the week's
// entries.
func (s *scheduleServiceImpl) Grid(ctx context.Context, organizationID string, ref time.Time) (schedule.GridResponse, error) {
	if organizationID == "" {
		ownerID, err := userIDFromContext(ctx)
		if err != nil {
			return schedule.GridResponse{}, err
		}
		owned, err := s.organizationRepo.GetByOwner(ctx, ownerID)
		if err != nil {
			return schedule.GridResponse{}, err
		}
		if len(owned) == 0 {
			return schedule.GridResponse{HasOrganization: false}, nil
		}
		organizationID = owned[0].ID
	} else {
		if _, err := s.organizationRepo.GetByID(ctx, organizationID); err != nil {
			return schedule.GridResponse{}, err
		}
	}

	employees, err := s.employeeRepo.GetActiveByOrganizationID(ctx, organizationID)
	if err != nil {
		return schedule.GridResponse{}, err
	}

	week := WeekOf(ref)
	days := week.Days()
	entries, err := s.scheduleRepo.GetForWeek(ctx, organizationID, days[0], days[6])
	if err != nil {
		return schedule.GridResponse{}, err
	}

	slog.Debug("assembled schedule grid",
		"organization_id", organizationID,
		"week_start", days[0],
		"employees", len(employees),
		"entries", len(entries),
	)

	return BuildGrid(organizationID, employees, entries, week), nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
