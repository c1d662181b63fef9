package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/schedule"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleColumns = `id, organization_id, employee_id, employee_name, date,
	start_time, end_time, role, hourly_rate, type, notes, created_at, updated_at`

func scanEntry(row pgx.Row) (schedule.Entry, error) {
	var e schedule.Entry
	var date time.Time

	err := row.Scan(
		&e.ID, &e.OrganizationID, &e.EmployeeID, &e.EmployeeName, &date,
		&e.StartTime, &e.EndTime, &e.Role, &e.HourlyRate, &e.Type,
		&e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return schedule.Entry{}, err
	}

	// The date column is normalized to the ISO string the grid compares on.
	e.Date = date.Format(schedule.DateLayout)
	return e, nil
}

// Create implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) Create(ctx context.Context, entry schedule.Entry) (schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedules (
			id, organization_id, employee_id, employee_name, date,
			start_time, end_time, role, hourly_rate, type, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + scheduleColumns

	return scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.OrganizationID, entry.EmployeeID, entry.EmployeeName,
		entry.Date, entry.StartTime, entry.EndTime, entry.Role,
		entry.HourlyRate, entry.Type, entry.Notes,
	))
}

// GetByID implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE id = $1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Entry{}, schedule.ErrEntryNotFound
		}
		return schedule.Entry{}, err
	}
	return entry, nil
}

// GetByOrganizationID implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string, date *string) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE organization_id = $1
	`
	args := []interface{}{organizationID}
	if date != nil {
		query += ` AND date = $2`
		args = append(args, *date)
	}
	query += ` ORDER BY date, start_time`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

// GetForWeek implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetForWeek(ctx context.Context, organizationID string, startDate, endDate string) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE organization_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time
	`

	rows, err := q.Query(ctx, query, organizationID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]schedule.Entry, error) {
	var entries []schedule.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Update implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) Update(ctx context.Context, id string, req schedule.UpdateScheduleRequest) (schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE schedules
		SET date = COALESCE($1, date),
			start_time = COALESCE($2, start_time),
			end_time = COALESCE($3, end_time),
			role = COALESCE($4, role),
			type = COALESCE($5, type),
			notes = COALESCE($6, notes),
			updated_at = NOW()
		WHERE id = $7
		RETURNING ` + scheduleColumns

	entry, err := scanEntry(q.QueryRow(ctx, query,
		req.Date, req.StartTime, req.EndTime, req.Role, req.Type, req.Notes, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Entry{}, schedule.ErrEntryNotFound
		}
		return schedule.Entry{}, err
	}
	return entry, nil
}

// Delete implements schedule.ScheduleRepository. Schedule entries are the
// one relation that is hard deleted; removing a placement from the grid
// removes the row.
func (s *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}

	return nil
}
