package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerjapay/payroll_backend/internal/apperrors"
	"github.com/kerjapay/payroll_backend/internal/core/domain"
	portsrepo "github.com/kerjapay/payroll_backend/internal/core/ports/repositories"
)

// PgxEmployeeRepository reads employees joined with their active compensation.
type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeReader = (*PgxEmployeeRepository)(nil)

// activeCompensationJoin resolves the compensation row whose effective window
// contains now; the latest effective_from wins when windows overlap.
const activeCompensationJoin = `
	SELECT e.employee_id, e.company_id, e.name, e.join_date, e.resign_date,
	       c.compensation_id, c.base_salary, c.effective_from, c.effective_to
	FROM employees e
	JOIN employee_compensations c ON c.employee_id = e.employee_id
	WHERE c.effective_from <= NOW()
	  AND (c.effective_to IS NULL OR c.effective_to >= NOW())
`

func scanCompensatedEmployee(row pgx.Row) (*domain.CompensatedEmployee, error) {
	var emp domain.CompensatedEmployee
	err := row.Scan(
		&emp.Employee.EmployeeID,
		&emp.Employee.CompanyID,
		&emp.Employee.Name,
		&emp.Employee.JoinDate,
		&emp.Employee.ResignDate,
		&emp.Compensation.CompensationID,
		&emp.Compensation.BaseSalary,
		&emp.Compensation.EffectiveFrom,
		&emp.Compensation.EffectiveTo,
	)
	if err != nil {
		return nil, err
	}
	emp.Compensation.EmployeeID = emp.Employee.EmployeeID
	return &emp, nil
}

// FindEmployeeWithActiveCompensation retrieves one employee of a company with
// their currently active compensation row.
func (r *PgxEmployeeRepository) FindEmployeeWithActiveCompensation(ctx context.Context, employeeID, companyID string) (*domain.CompensatedEmployee, error) {
	query := activeCompensationJoin + `
	  AND e.employee_id = $1 AND e.company_id = $2
	ORDER BY c.effective_from DESC
	LIMIT 1;
	`
	emp, err := scanCompensatedEmployee(r.Pool.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s with active compensation: %w", employeeID, err)
	}
	return emp, nil
}

// ListEmployeesWithActiveCompensation retrieves every employee of a company
// holding an active compensation row.
func (r *PgxEmployeeRepository) ListEmployeesWithActiveCompensation(ctx context.Context, companyID string) ([]domain.CompensatedEmployee, error) {
	query := activeCompensationJoin + `
	  AND e.company_id = $1
	ORDER BY e.name, c.effective_from DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for company %s: %w", companyID, err)
	}
	defer rows.Close()

	employees := []domain.CompensatedEmployee{}
	seen := map[string]bool{}
	for rows.Next() {
		emp, err := scanCompensatedEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		// Overlapping windows: keep only the latest effective_from per employee.
		if seen[emp.Employee.EmployeeID] {
			continue
		}
		seen[emp.Employee.EmployeeID] = true
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}
	return employees, nil
}
