package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
	"github.com/kerjapay/payroll_backend/internal/dto"
)

// ThrCalculatorSvc is the pure domain calculation, usable without any
// repository. It is stateless and safe for concurrent use.
type ThrCalculatorSvc interface {
	// CalculateThr evaluates eligibility and amount for one employee against
	// a calculation (holiday) date. resignDate may be nil; a
	// workingDaysInYear of zero selects the 365-day default for daily
	// proration. Ineligibility is a normal result, not an error.
	CalculateThr(joinDate time.Time, resignDate *time.Time, calculationDate time.Time, baseSalary decimal.Decimal, employeeType domain.EmployeeType, workingDaysInYear int) (*domain.ThrCalculationResult, error)
}

// ThrReaderSvc defines the read-only THR use cases.
type ThrReaderSvc interface {
	// PreviewThr resolves the employee's active compensation and the target
	// period, calculates THR against the period end date and reports whether
	// a THR addition already exists. Nothing is written.
	PreviewThr(ctx context.Context, req dto.ThrCalculationRequest) (*dto.ThrPreviewResponse, error)

	// PreviewThrForCompany runs PreviewThr's calculation for every employee
	// of a company that holds an active compensation, skipping those that
	// already have a THR addition for the period. Per-employee failures are
	// collected instead of aborting the run.
	PreviewThrForCompany(ctx context.Context, req dto.BulkThrPreviewRequest) (*dto.BulkThrPreviewResponse, error)
}

// ThrWriterSvc defines the persisting THR use case.
type ThrWriterSvc interface {
	// CalculateAndCreateThr performs the same resolution and calculation as
	// PreviewThr, then inserts exactly one THR addition for the
	// (employee, period) pair. A pre-existing addition fails the call with a
	// conflict error and writes nothing.
	CalculateAndCreateThr(ctx context.Context, req dto.ThrCalculationRequest, creatorUserID string) (*dto.ThrCreateResponse, error)
}

// ThrSvcFacade combines all THR service interfaces for clients that need the
// full surface.
type ThrSvcFacade interface {
	ThrCalculatorSvc
	ThrReaderSvc
	ThrWriterSvc
}
