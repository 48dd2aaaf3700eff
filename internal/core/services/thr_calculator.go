package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kerjapay/payroll_backend/internal/apperrors"
	"github.com/kerjapay/payroll_backend/internal/core/domain"
	portssvc "github.com/kerjapay/payroll_backend/internal/core/ports/services"
)

var (
	// ErrInvalidCalculationDate is returned when the calculation date
	// precedes the employee's join date.
	ErrInvalidCalculationDate = fmt.Errorf("%w: calculation date cannot be before join date", apperrors.ErrValidation)

	// ErrInvalidEmployeeType is returned for classifications outside the four
	// recognized tags.
	ErrInvalidEmployeeType = fmt.Errorf("%w: invalid employee type", apperrors.ErrValidation)

	// ErrInvalidWorkingDays is returned when a caller supplies a negative
	// working-days-in-year for daily proration.
	ErrInvalidWorkingDays = fmt.Errorf("%w: working days in year must be positive", apperrors.ErrValidation)
)

// thrCalculator composes the tenure model with the eligibility and
// calculation policies into one auditable result. It is the single source of
// truth correlating eligibility and amount: no caller computes an amount
// without an eligibility verdict from the same evaluation.
type thrCalculator struct {
	eligibilityPolicy ThrEligibilityPolicy
	calculationPolicy ThrCalculationPolicy
}

// NewThrCalculator creates the pure THR domain calculator.
func NewThrCalculator() portssvc.ThrCalculatorSvc {
	return &thrCalculator{
		eligibilityPolicy: NewThrEligibilityPolicy(),
		calculationPolicy: NewThrCalculationPolicy(),
	}
}

var _ portssvc.ThrCalculatorSvc = (*thrCalculator)(nil)

// CalculateThr validates the inputs, derives the tenure, checks eligibility
// and dispatches to the classification's calculation method.
func (s *thrCalculator) CalculateThr(joinDate time.Time, resignDate *time.Time, calculationDate time.Time, baseSalary decimal.Decimal, employeeType domain.EmployeeType, workingDaysInYear int) (*domain.ThrCalculationResult, error) {
	if !s.eligibilityPolicy.IsValidCalculationDate(calculationDate, joinDate) {
		return nil, fmt.Errorf("%w: join %s, calculation %s", ErrInvalidCalculationDate,
			joinDate.Format(time.DateOnly), calculationDate.Format(time.DateOnly))
	}
	if !employeeType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmployeeType, employeeType)
	}
	if workingDaysInYear < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkingDays, workingDaysInYear)
	}

	tenure, err := domain.NewTenure(joinDate, resignDate, calculationDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if !s.eligibilityPolicy.IsEligible(tenure, employeeType, calculationDate) {
		reason := s.eligibilityPolicy.IneligibilityReason(tenure, employeeType, calculationDate)
		result := domain.NewIneligibleThrResult(reason, baseSalary, tenure, calculationDate)
		return &result, nil
	}

	var amount decimal.Decimal
	switch employeeType {
	case domain.EmployeeTypePermanent:
		amount = s.calculationPolicy.CalculatePermanentEmployee(baseSalary, tenure)
	case domain.EmployeeTypeContract:
		amount = s.calculationPolicy.CalculateContractEmployee(baseSalary, tenure)
	default: // daily, freelance
		amount = s.calculationPolicy.CalculateDailyEmployee(baseSalary, tenure.DaysWorked, workingDaysInYear)
	}

	method := s.calculationPolicy.CalculationMethodFor(employeeType, tenure)
	notes := s.calculationPolicy.GenerateCalculationNotes(employeeType, tenure, baseSalary, amount)

	result := domain.NewEligibleThrResult(amount, baseSalary, tenure, method, notes, calculationDate)
	return &result, nil
}
