package domain

import "time"

// PeriodState tracks the payroll lifecycle of a period.
type PeriodState string

const (
	PeriodDraft     PeriodState = "DRAFT"
	PeriodReview    PeriodState = "REVIEW"
	PeriodFinalized PeriodState = "FINALIZED"
	PeriodLocked    PeriodState = "LOCKED"
)

// PayrollPeriod is one pay period of a company. THR calculations use the
// period end date as the calculation/holiday date.
type PayrollPeriod struct {
	PeriodID    string      `json:"periodID"`
	CompanyID   string      `json:"companyID"`
	PeriodStart time.Time   `json:"periodStart"`
	PeriodEnd   time.Time   `json:"periodEnd"`
	State       PeriodState `json:"state"`
}
