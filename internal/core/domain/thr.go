package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationMethod identifies which rule produced a THR amount. It is a
// closed enumeration used for audit and testing, never free text.
type CalculationMethod string

const (
	MethodPermanentFull     CalculationMethod = "permanent_full"
	MethodPermanentProrated CalculationMethod = "permanent_prorated"
	MethodContractProrated  CalculationMethod = "contract_prorated"
	MethodDailyProrated     CalculationMethod = "daily_prorated"
	MethodIneligible        CalculationMethod = "ineligible"
)

// ThrCalculationResult is the authoritative output of one THR evaluation.
// Invariant: IsEligible == false implies ThrAmount is zero.
type ThrCalculationResult struct {
	IsEligible        bool              `json:"is_eligible"`
	ThrAmount         decimal.Decimal   `json:"thr_amount"`
	BaseSalary        decimal.Decimal   `json:"base_salary"`
	MonthsWorked      float64           `json:"months_worked"`
	CalculationMethod CalculationMethod `json:"calculation_method"`
	Notes             string            `json:"calculation_notes"`
	CalculationDate   time.Time         `json:"calculation_date"`
}

// NewEligibleThrResult builds a result for an entitled employee. The amount is
// rounded to two decimal places.
func NewEligibleThrResult(amount, baseSalary decimal.Decimal, tenure Tenure, method CalculationMethod, notes string, calculationDate time.Time) ThrCalculationResult {
	return ThrCalculationResult{
		IsEligible:        true,
		ThrAmount:         amount.Round(2),
		BaseSalary:        baseSalary,
		MonthsWorked:      tenure.MonthsWorked,
		CalculationMethod: method,
		Notes:             notes,
		CalculationDate:   calculationDate,
	}
}

// NewIneligibleThrResult builds a zero-amount result carrying the
// ineligibility reason. Ineligibility is a normal outcome, not an error.
func NewIneligibleThrResult(reason string, baseSalary decimal.Decimal, tenure Tenure, calculationDate time.Time) ThrCalculationResult {
	return ThrCalculationResult{
		IsEligible:        false,
		ThrAmount:         decimal.Zero,
		BaseSalary:        baseSalary,
		MonthsWorked:      tenure.MonthsWorked,
		CalculationMethod: MethodIneligible,
		Notes:             reason,
		CalculationDate:   calculationDate,
	}
}
