package domain

import "github.com/shopspring/decimal"

// AdditionCode classifies a payroll addition line item.
type AdditionCode string

const (
	// AdditionCodeThr marks a statutory holiday bonus line item. At most one
	// addition with this code may exist per (employee, period).
	AdditionCodeThr AdditionCode = "THR"
)

// PayrollAddition is a persisted addition line item on an employee's payroll
// for one period. THR additions are created once and never mutated.
type PayrollAddition struct {
	AdditionID  string          `json:"additionID"`
	EmployeeID  string          `json:"employeeID"`
	PeriodID    string          `json:"periodID"`
	CompanyID   string          `json:"companyID"`
	Code        AdditionCode    `json:"code"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AuditFields
}
