package organization

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/organization"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/bus"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/database"
	"github.com/shiftgrid/scheduler-backend-go/internal/repository/postgresql"
)

type organizationServiceImpl struct {
	db               *database.DB
	organizationRepo organization.OrganizationRepository
	bus              *bus.Bus
}

func NewOrganizationService(
	db *database.DB,
	organizationRepo organization.OrganizationRepository,
	eventBus *bus.Bus,
) organization.OrganizationService {
	return &organizationServiceImpl{
		db:               db,
		organizationRepo: organizationRepo,
		bus:              eventBus,
	}
}

func ownerIDFromContext(ctx context.Context) (string, error) {
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

// Create implements organization.OrganizationService. The setup flow
// creates exactly one organization per owner.
func (s *organizationServiceImpl) Create(ctx context.Context, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	// One organization per owner; the check and the insert run in the
	// same transaction so concurrent setup requests cannot both pass.
	var created organization.Organization
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		existing, err := s.organizationRepo.GetByOwner(txCtx, ownerID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return organization.ErrOwnerHasOrganization
		}

		created, err = s.organizationRepo.Create(txCtx, organization.Organization{
			Name:               req.Name,
			OwnerID:            ownerID,
			BusinessHours:      req.BusinessHours,
			Timezone:           req.Timezone,
			Roles:              req.Roles,
			DefaultShiftLength: req.DefaultShiftLength,
			MinStaffPerShift:   req.MinStaffPerShift,
		})
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	s.bus.Publish(created.ID, bus.TopicOrganizationCreated, map[string]string{"id": created.ID})

	return organization.ToResponse(created), nil
}

// ListOwned implements organization.OrganizationService.
func (s *organizationServiceImpl) ListOwned(ctx context.Context) ([]organization.OrganizationResponse, error) {
	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	organizations, err := s.organizationRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.OrganizationResponse, 0, len(organizations))
	for _, org := range organizations {
		responses = append(responses, organization.ToResponse(org))
	}
	return responses, nil
}

// Get implements organization.OrganizationService.
func (s *organizationServiceImpl) Get(ctx context.Context, id string) (organization.OrganizationResponse, error) {
	org, err := s.organizationRepo.GetByID(ctx, id)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	ownerID, err := ownerIDFromContext(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	if org.OwnerID != ownerID {
		return organization.OrganizationResponse{}, organization.ErrNotOwner
	}

	return organization.ToResponse(org), nil
}

// Update implements organization.OrganizationService. The settings form
// patches whatever fields it carries.
func (s *organizationServiceImpl) Update(ctx context.Context, id string, req organization.UpdateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	if _, err := s.Get(ctx, id); err != nil {
		return organization.OrganizationResponse{}, err
	}

	updated, err := s.organizationRepo.Update(ctx, id, req)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	s.bus.Publish(updated.ID, bus.TopicSettingsUpdated, map[string]string{"id": updated.ID})

	return organization.ToResponse(updated), nil
}
