package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerjapay/payroll_backend/internal/apperrors"
	"github.com/kerjapay/payroll_backend/internal/core/domain"
	portsrepo "github.com/kerjapay/payroll_backend/internal/core/ports/repositories"
)

// PgxAdditionRepository persists payroll addition line items. The
// (employee, period, code) uniqueness for THR is guaranteed twice: the
// existence check and insert share one transaction, and the
// additions_thr_once_idx unique index catches anything that slips through.
type PgxAdditionRepository struct {
	BaseRepository
}

func newPgxAdditionRepository(pool *pgxpool.Pool) *PgxAdditionRepository {
	return &PgxAdditionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AdditionRepositoryFacade = (*PgxAdditionRepository)(nil)

const additionColumns = `
	addition_id, employee_id, payroll_period_id, company_id, code, amount,
	description, created_at, created_by, last_updated_at, last_updated_by
`

func scanAddition(row pgx.Row) (*domain.PayrollAddition, error) {
	var a domain.PayrollAddition
	err := row.Scan(
		&a.AdditionID,
		&a.EmployeeID,
		&a.PeriodID,
		&a.CompanyID,
		&a.Code,
		&a.Amount,
		&a.Description,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindAdditionByCode retrieves the addition with the given code for an
// (employee, period) pair.
func (r *PgxAdditionRepository) FindAdditionByCode(ctx context.Context, employeeID, periodID string, code domain.AdditionCode) (*domain.PayrollAddition, error) {
	query := `
		SELECT ` + additionColumns + `
		FROM payroll_additions
		WHERE employee_id = $1 AND payroll_period_id = $2 AND code = $3;
	`
	addition, err := scanAddition(r.Pool.QueryRow(ctx, query, employeeID, periodID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s addition for employee %s in period %s: %w", code, employeeID, periodID, err)
	}
	return addition, nil
}

// CreateAddition inserts a new addition inside a transaction that re-checks
// for an existing row with the same code. A concurrent writer that gets
// there first surfaces as apperrors.ErrDuplicate, either from the re-check
// or from the unique index.
func (r *PgxAdditionRepository) CreateAddition(ctx context.Context, addition domain.PayrollAddition) (*domain.PayrollAddition, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var existingID string
	err = tx.QueryRow(ctx, `
		SELECT addition_id FROM payroll_additions
		WHERE employee_id = $1 AND payroll_period_id = $2 AND code = $3
		FOR UPDATE;
	`, addition.EmployeeID, addition.PeriodID, addition.Code).Scan(&existingID)
	if err == nil {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("%s addition already exists for employee %s in period %s", addition.Code, addition.EmployeeID, addition.PeriodID))
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing addition: %w", err)
	}

	insertQuery := `
		INSERT INTO payroll_additions (` + additionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		addition.AdditionID,
		addition.EmployeeID,
		addition.PeriodID,
		addition.CompanyID,
		addition.Code,
		addition.Amount,
		addition.Description,
		addition.CreatedAt,
		addition.CreatedBy,
		addition.LastUpdatedAt,
		addition.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("%s addition already exists for employee %s in period %s", addition.Code, addition.EmployeeID, addition.PeriodID))
		}
		return nil, fmt.Errorf("failed to insert addition %s: %w", addition.AdditionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &addition, nil
}
