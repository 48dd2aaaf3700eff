package repositories

import (
	"context"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee payroll data.
type EmployeeReader interface {
	// FindEmployeeWithActiveCompensation retrieves an employee of a company
	// together with the compensation row whose effective window contains now.
	// Returns apperrors.ErrNotFound when the employee does not exist or has
	// no active compensation.
	FindEmployeeWithActiveCompensation(ctx context.Context, employeeID, companyID string) (*domain.CompensatedEmployee, error)

	// ListEmployeesWithActiveCompensation retrieves every employee of a
	// company that currently has an active compensation row.
	ListEmployeesWithActiveCompensation(ctx context.Context, companyID string) ([]domain.CompensatedEmployee, error)
}

// PeriodReader defines read operations for payroll periods.
type PeriodReader interface {
	// FindPeriodForCompany retrieves a payroll period by ID, scoped to the
	// given company. Returns apperrors.ErrNotFound when the period does not
	// exist or belongs to another company.
	FindPeriodForCompany(ctx context.Context, periodID, companyID string) (*domain.PayrollPeriod, error)
}

// AdditionReader defines read operations for payroll addition line items.
type AdditionReader interface {
	// FindAdditionByCode retrieves the addition with the given code for an
	// (employee, period) pair. Returns apperrors.ErrNotFound when absent.
	FindAdditionByCode(ctx context.Context, employeeID, periodID string, code domain.AdditionCode) (*domain.PayrollAddition, error)
}

// AdditionWriter defines write operations for payroll addition line items.
type AdditionWriter interface {
	// CreateAddition inserts a new addition. The existence check and insert
	// run inside one database transaction, and the store's uniqueness
	// constraint backs the same guarantee, so two concurrent inserts for the
	// same (employee, period, code) cannot both succeed. A second insert
	// fails with apperrors.ErrDuplicate.
	CreateAddition(ctx context.Context, addition domain.PayrollAddition) (*domain.PayrollAddition, error)
}

// AdditionRepositoryFacade combines all addition-related repository interfaces.
type AdditionRepositoryFacade interface {
	AdditionReader
	AdditionWriter
	TransactionManager
}
