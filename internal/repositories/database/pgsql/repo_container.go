package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kerjapay/payroll_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories into the provider
// the service container consumes.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		PeriodRepo:   newPgxPeriodRepository(dbPool),
		AdditionRepo: newPgxAdditionRepository(dbPool),
	}
}
