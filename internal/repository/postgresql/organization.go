package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/organization"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

const organizationColumns = `id, name, owner_id, business_hours, timezone, roles,
	default_shift_length, min_staff_per_shift, created_at, updated_at`

func scanOrganization(row pgx.Row) (organization.Organization, error) {
	var org organization.Organization
	var businessHours []byte

	err := row.Scan(
		&org.ID, &org.Name, &org.OwnerID, &businessHours, &org.Timezone,
		&org.Roles, &org.DefaultShiftLength, &org.MinStaffPerShift,
		&org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		return organization.Organization{}, err
	}

	if len(businessHours) > 0 {
		if err := json.Unmarshal(businessHours, &org.BusinessHours); err != nil {
			return organization.Organization{}, fmt.Errorf("decode business_hours: %w", err)
		}
	}
	return org, nil
}

// Create implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) Create(ctx context.Context, newOrganization organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	businessHours, err := json.Marshal(newOrganization.BusinessHours)
	if err != nil {
		return organization.Organization{}, fmt.Errorf("encode business_hours: %w", err)
	}

	query := `
		INSERT INTO organizations (
			name, owner_id, business_hours, timezone, roles,
			default_shift_length, min_staff_per_shift
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + organizationColumns

	return scanOrganization(q.QueryRow(ctx, query,
		newOrganization.Name, newOrganization.OwnerID, businessHours,
		newOrganization.Timezone, newOrganization.Roles,
		newOrganization.DefaultShiftLength, newOrganization.MinStaffPerShift,
	))
}

// GetByOwner implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) GetByOwner(ctx context.Context, ownerID string) ([]organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + organizationColumns + `
		FROM organizations
		WHERE owner_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var organizations []organization.Organization
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		organizations = append(organizations, org)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return organizations, nil
}

// GetByID implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + organizationColumns + `
		FROM organizations
		WHERE id = $1
	`

	org, err := scanOrganization(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, err
	}
	return org, nil
}

// Update implements organization.OrganizationRepository. Nil patch fields
// keep the stored value via COALESCE.
func (o *organizationRepositoryImpl) Update(ctx context.Context, id string, req organization.UpdateOrganizationRequest) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	var businessHours []byte
	if req.BusinessHours != nil {
		var err error
		businessHours, err = json.Marshal(*req.BusinessHours)
		if err != nil {
			return organization.Organization{}, fmt.Errorf("encode business_hours: %w", err)
		}
	}

	var roles []string
	if req.Roles != nil {
		roles = *req.Roles
	}

	query := `
		UPDATE organizations
		SET name = COALESCE($1, name),
			business_hours = COALESCE($2, business_hours),
			timezone = COALESCE($3, timezone),
			roles = COALESCE($4, roles),
			default_shift_length = COALESCE($5, default_shift_length),
			min_staff_per_shift = COALESCE($6, min_staff_per_shift),
			updated_at = NOW()
		WHERE id = $7
		RETURNING ` + organizationColumns

	org, err := scanOrganization(q.QueryRow(ctx, query,
		req.Name, businessHours, req.Timezone, roles,
		req.DefaultShiftLength, req.MinStaffPerShift, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, err
	}
	return org, nil
}
