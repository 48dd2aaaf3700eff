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

// PgxPeriodRepository reads payroll periods.
type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) *PgxPeriodRepository {
	return &PgxPeriodRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodReader = (*PgxPeriodRepository)(nil)

// FindPeriodForCompany retrieves a payroll period scoped to a company. A
// period belonging to another company is indistinguishable from a missing one.
func (r *PgxPeriodRepository) FindPeriodForCompany(ctx context.Context, periodID, companyID string) (*domain.PayrollPeriod, error) {
	query := `
		SELECT period_id, company_id, period_start, period_end, state
		FROM payroll_periods
		WHERE period_id = $1 AND company_id = $2;
	`
	var period domain.PayrollPeriod
	err := r.Pool.QueryRow(ctx, query, periodID, companyID).Scan(
		&period.PeriodID,
		&period.CompanyID,
		&period.PeriodStart,
		&period.PeriodEnd,
		&period.State,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll period %s: %w", periodID, err)
	}
	return &period, nil
}
