package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftgrid/scheduler-backend-go/internal/domain/employee"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, organization_id, first_name, last_name, email, phone,
	role, hourly_rate, availability, is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var availability []byte

	err := row.Scan(
		&emp.ID, &emp.OrganizationID, &emp.FirstName, &emp.LastName,
		&emp.Email, &emp.Phone, &emp.Role, &emp.HourlyRate,
		&availability, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &emp.Availability); err != nil {
			return employee.Employee{}, fmt.Errorf("decode availability: %w", err)
		}
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	availability, err := json.Marshal(newEmployee.Availability)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("encode availability: %w", err)
	}

	query := `
		INSERT INTO employees (
			organization_id, first_name, last_name, email, phone,
			role, hourly_rate, availability, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		newEmployee.OrganizationID, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Email, newEmployee.Phone, newEmployee.Role,
		newEmployee.HourlyRate, availability,
	))
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetActiveByOrganizationID implements employee.EmployeeRepository. Soft
// deleted rows never come back from here.
func (e *employeeRepositoryImpl) GetActiveByOrganizationID(ctx context.Context, organizationID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE organization_id = $1 AND is_active = TRUE
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var availability []byte
	if req.Availability != nil {
		var err error
		availability, err = json.Marshal(*req.Availability)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("encode availability: %w", err)
		}
	}

	query := `
		UPDATE employees
		SET first_name = COALESCE($1, first_name),
			last_name = COALESCE($2, last_name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			role = COALESCE($5, role),
			hourly_rate = COALESCE($6, hourly_rate),
			availability = COALESCE($7, availability),
			updated_at = NOW()
		WHERE id = $8
		RETURNING ` + employeeColumns

	emp, err := scanEmployee(q.QueryRow(ctx, query,
		req.FirstName, req.LastName, req.Email, req.Phone,
		req.Role, req.HourlyRate, availability, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// SoftDelete implements employee.EmployeeRepository. The row and its
// schedule entries stay in place; only the active flag flips.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to soft delete employee with id %s: %w", id, err)
	}

	return nil
}
