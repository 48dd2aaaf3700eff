package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeCompensation is one row of an employee's salary history. The row
// whose effective window contains "now" (EffectiveFrom <= now and EffectiveTo
// null or >= now) is the active compensation used as the THR basis.
type EmployeeCompensation struct {
	CompensationID string          `json:"compensationID"`
	EmployeeID     string          `json:"employeeID"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	EffectiveFrom  time.Time       `json:"effectiveFrom"`
	EffectiveTo    *time.Time      `json:"effectiveTo,omitempty"`
}

// IsActiveAt reports whether this compensation row is effective at t.
func (c EmployeeCompensation) IsActiveAt(t time.Time) bool {
	if c.EffectiveFrom.After(t) {
		return false
	}
	return c.EffectiveTo == nil || !c.EffectiveTo.Before(t)
}
