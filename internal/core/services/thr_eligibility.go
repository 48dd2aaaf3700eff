package services

import (
	"time"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
)

// resignationCutoffDays is the maximum gap between a permanent employee's
// resignation date and the holiday date that still preserves THR entitlement.
const resignationCutoffDays = 30

// ThrEligibilityPolicy decides whether an employee is entitled to THR at all.
// It is pure and stateless; rules are evaluated in order, first match wins.
type ThrEligibilityPolicy struct{}

// NewThrEligibilityPolicy creates the eligibility rule evaluator.
func NewThrEligibilityPolicy() ThrEligibilityPolicy {
	return ThrEligibilityPolicy{}
}

// IsEligible applies the entitlement rules:
//  1. Tenure under one month forfeits THR.
//  2. A resigned permanent employee keeps THR only when the resignation falls
//     within 30 days before the holiday (or after it). Non-permanent
//     classifications keep THR only when the contract runs to the holiday.
//  3. Everyone else is entitled.
func (p ThrEligibilityPolicy) IsEligible(tenure domain.Tenure, employeeType domain.EmployeeType, holidayDate time.Time) bool {
	if !tenure.HasWorkedAtLeastOneMonth() {
		return false
	}

	if tenure.IsResigned {
		// Signed gap: positive when the resignation precedes the holiday.
		gap := domain.DaysBetween(tenure.EndDate, holidayDate)
		if employeeType == domain.EmployeeTypePermanent {
			return gap <= resignationCutoffDays
		}
		return gap <= 0
	}

	return true
}

// IneligibilityReason returns the audit text for a failed entitlement check,
// or a confirmation when the employee is entitled.
func (p ThrEligibilityPolicy) IneligibilityReason(tenure domain.Tenure, employeeType domain.EmployeeType, holidayDate time.Time) string {
	if !tenure.HasWorkedAtLeastOneMonth() {
		return "Tidak berhak THR (masa kerja kurang dari 1 bulan)"
	}

	if tenure.IsResigned {
		gap := domain.DaysBetween(tenure.EndDate, holidayDate)
		if employeeType == domain.EmployeeTypePermanent && gap > resignationCutoffDays {
			return "Tidak berhak THR (mengundurkan diri lebih dari 30 hari sebelum hari raya)"
		}
		if employeeType != domain.EmployeeTypePermanent && gap > 0 {
			return "Tidak berhak THR (hubungan kerja berakhir sebelum hari raya)"
		}
	}

	return "Memenuhi syarat THR"
}

// IsValidCalculationDate checks the precondition that the calculation date
// does not precede the join date.
func (p ThrEligibilityPolicy) IsValidCalculationDate(calculationDate, joinDate time.Time) bool {
	return !calculationDate.Before(joinDate)
}
