package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
)

// ThrCalculationRequest identifies the employee and period a THR calculation
// targets. EmployeeType defaults to permanent; WorkingDaysInYear of zero means
// "use the convention default".
type ThrCalculationRequest struct {
	EmployeeID        string `json:"employeeID" binding:"required"`
	PeriodID          string `json:"periodID" binding:"required"`
	CompanyID         string `json:"companyID" binding:"required"`
	EmployeeType      string `json:"employeeType" binding:"omitempty,employee_type"`
	WorkingDaysInYear int    `json:"workingDaysInYear" binding:"omitempty,gt=0"`
}

// ApplyDefaults fills the optional fields the way the admin surface expects:
// permanent classification and the configured working-day convention.
func (r *ThrCalculationRequest) ApplyDefaults(workingDaysInYear int) {
	if r.EmployeeType == "" {
		r.EmployeeType = string(domain.EmployeeTypePermanent)
	}
	if r.WorkingDaysInYear == 0 {
		r.WorkingDaysInYear = workingDaysInYear
	}
}

// ThrResultResponse is the audit representation of a calculation result.
// Round-tripping it through JSON preserves the amount, eligibility flag and
// method tag exactly.
type ThrResultResponse struct {
	ThrAmount         decimal.Decimal `json:"thr_amount"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	MonthsWorked      float64         `json:"months_worked"`
	CalculationMethod string          `json:"calculation_method"`
	CalculationNotes  string          `json:"calculation_notes"`
	CalculationDate   time.Time       `json:"calculation_date"`
	IsEligible        bool            `json:"is_eligible"`
}

// ToThrResultResponse converts a domain result to its audit representation.
func ToThrResultResponse(r domain.ThrCalculationResult) ThrResultResponse {
	return ThrResultResponse{
		ThrAmount:         r.ThrAmount,
		BaseSalary:        r.BaseSalary,
		MonthsWorked:      r.MonthsWorked,
		CalculationMethod: string(r.CalculationMethod),
		CalculationNotes:  r.Notes,
		CalculationDate:   r.CalculationDate,
		IsEligible:        r.IsEligible,
	}
}

// ToDomain converts the audit representation back into a domain result.
func (r ThrResultResponse) ToDomain() domain.ThrCalculationResult {
	return domain.ThrCalculationResult{
		IsEligible:        r.IsEligible,
		ThrAmount:         r.ThrAmount,
		BaseSalary:        r.BaseSalary,
		MonthsWorked:      r.MonthsWorked,
		CalculationMethod: domain.CalculationMethod(r.CalculationMethod),
		Notes:             r.CalculationNotes,
		CalculationDate:   r.CalculationDate,
	}
}

// ThrAdditionResponse is the API shape of a persisted THR addition.
type ThrAdditionResponse struct {
	AdditionID  string          `json:"additionID"`
	EmployeeID  string          `json:"employeeID"`
	PeriodID    string          `json:"periodID"`
	CompanyID   string          `json:"companyID"`
	Code        string          `json:"code"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToThrAdditionResponse converts a domain addition to its API shape.
func ToThrAdditionResponse(a *domain.PayrollAddition) ThrAdditionResponse {
	return ThrAdditionResponse{
		AdditionID:  a.AdditionID,
		EmployeeID:  a.EmployeeID,
		PeriodID:    a.PeriodID,
		CompanyID:   a.CompanyID,
		Code:        string(a.Code),
		Amount:      a.Amount,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		CreatedBy:   a.CreatedBy,
	}
}

// ThrPreviewResponse pairs a calculation result with any THR addition already
// persisted for the same (employee, period).
type ThrPreviewResponse struct {
	Result           ThrResultResponse    `json:"result"`
	ExistingAddition *ThrAdditionResponse `json:"existingAddition,omitempty"`
}

// ThrCreateResponse is returned by the calculate-and-create use case: the
// persisted addition plus the calculation it was derived from.
type ThrCreateResponse struct {
	Addition ThrAdditionResponse `json:"addition"`
	Result   ThrResultResponse   `json:"result"`
}

// BulkThrPreviewRequest asks for a company-wide THR preview for one period.
type BulkThrPreviewRequest struct {
	CompanyID           string `json:"companyID" binding:"required"`
	PeriodID            string `json:"periodID" binding:"required"`
	DefaultEmployeeType string `json:"defaultEmployeeType" binding:"omitempty,employee_type"`
	WorkingDaysInYear   int    `json:"workingDaysInYear" binding:"omitempty,gt=0"`
}

// BulkThrEmployeeRow is one employee's line in a bulk preview.
type BulkThrEmployeeRow struct {
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"`
	MonthsWorked float64         `json:"monthsWorked"`
	ThrAmount    decimal.Decimal `json:"thrAmount"`
	IsEligible   bool            `json:"isEligible"`
	Notes        string          `json:"notes"`
}

// BulkThrSummary aggregates a bulk preview.
type BulkThrSummary struct {
	EligibleEmployees int             `json:"eligibleEmployees"`
	TotalThrAmount    decimal.Decimal `json:"totalThrAmount"`
}

// BulkThrPreviewResponse is the company-wide preview: per-employee rows,
// aggregate summary and per-employee errors that did not abort the run.
type BulkThrPreviewResponse struct {
	Summary   BulkThrSummary       `json:"summary"`
	Employees []BulkThrEmployeeRow `json:"employees"`
	Errors    []string             `json:"errors,omitempty"`
}
