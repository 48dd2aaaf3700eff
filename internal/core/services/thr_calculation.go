package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
	"github.com/kerjapay/payroll_backend/internal/utils"
)

// defaultWorkingDaysInYear is the divisor for daily/freelance proration when
// the caller does not supply a working-day convention.
const defaultWorkingDaysInYear = 365

// ThrCalculationPolicy holds the per-classification amount rules. Every
// method is pure and side-effect free; eligibility is assumed to have been
// confirmed by the eligibility policy before an amount is requested.
type ThrCalculationPolicy struct{}

// NewThrCalculationPolicy creates the amount rule evaluator.
func NewThrCalculationPolicy() ThrCalculationPolicy {
	return ThrCalculationPolicy{}
}

// CalculatePermanentEmployee returns the full base salary after a full year of
// tenure, otherwise the prorated share of it.
func (p ThrCalculationPolicy) CalculatePermanentEmployee(baseSalary decimal.Decimal, tenure domain.Tenure) decimal.Decimal {
	if tenure.HasWorkedFullYear() {
		return baseSalary
	}
	return tenure.ProrationFactor().Mul(baseSalary)
}

// CalculateContractEmployee always prorates by months worked, regardless of
// the full-year threshold.
func (p ThrCalculationPolicy) CalculateContractEmployee(baseSalary decimal.Decimal, tenure domain.Tenure) decimal.Decimal {
	return tenure.ProrationFactor().Mul(baseSalary)
}

// CalculateDailyEmployee prorates a monthly salary by worked days over the
// year's working days, capped at one full monthly salary. Non-positive inputs
// yield zero rather than an error so the formula can never divide by zero.
func (p ThrCalculationPolicy) CalculateDailyEmployee(monthlySalary decimal.Decimal, actualWorkDays, totalWorkingDaysInYear int) decimal.Decimal {
	if totalWorkingDaysInYear <= 0 {
		totalWorkingDaysInYear = defaultWorkingDaysInYear
	}
	if actualWorkDays <= 0 || monthlySalary.Sign() <= 0 {
		return decimal.Zero
	}

	amount := monthlySalary.
		Mul(decimal.NewFromInt(int64(actualWorkDays))).
		Div(decimal.NewFromInt(int64(totalWorkingDaysInYear)))
	if amount.GreaterThan(monthlySalary) {
		return monthlySalary
	}
	return amount
}

// CalculationMethodFor selects the audit method tag. Tag selection precedes
// amount calculation: below the one-month floor the method is always
// "ineligible" regardless of classification.
func (p ThrCalculationPolicy) CalculationMethodFor(employeeType domain.EmployeeType, tenure domain.Tenure) domain.CalculationMethod {
	if !tenure.HasWorkedAtLeastOneMonth() {
		return domain.MethodIneligible
	}

	switch employeeType {
	case domain.EmployeeTypePermanent:
		if tenure.HasWorkedFullYear() {
			return domain.MethodPermanentFull
		}
		return domain.MethodPermanentProrated
	case domain.EmployeeTypeContract:
		return domain.MethodContractProrated
	default:
		return domain.MethodDailyProrated
	}
}

// GenerateCalculationNotes builds the deterministic audit explanation for a
// calculated amount: classification label, month count, formula and formatted
// rupiah amount, with an explicit resignation marker when applicable.
// Ineligible results never reach here; their note is the ineligibility reason.
func (p ThrCalculationPolicy) GenerateCalculationNotes(employeeType domain.EmployeeType, tenure domain.Tenure, basePay, thrAmount decimal.Decimal) string {
	typeLabel := employeeType.Label()

	salaryLabel := "Gaji + Tunjangan Tetap"
	if employeeType.IsDailyRated() {
		salaryLabel = "Rata-rata gaji"
	}

	if tenure.HasWorkedFullYear() && !employeeType.IsDailyRated() {
		return fmt.Sprintf("%s - THR penuh (masa kerja %s). %s: %s",
			typeLabel, tenure.FormattedMonthsWorked(), salaryLabel, utils.FormatRupiah(basePay))
	}

	resignedStatus := ""
	if tenure.IsResigned {
		resignedStatus = " (Karyawan yang mengundurkan diri)"
	}

	if employeeType.IsDailyRated() {
		return fmt.Sprintf("%s%s - THR = (Hari kerja / Hari kerja setahun) × %s = %s",
			typeLabel, resignedStatus, salaryLabel, utils.FormatRupiah(thrAmount))
	}

	return fmt.Sprintf("%s%s - THR = (%s / 12) × %s = %s",
		typeLabel, resignedStatus, tenure.FormattedMonthsWorked(), salaryLabel, utils.FormatRupiah(thrAmount))
}
