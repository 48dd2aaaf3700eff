package domain

import "time"

// EmployeeType is the employment classification that selects which THR
// calculation method applies.
type EmployeeType string

const (
	EmployeeTypePermanent EmployeeType = "permanent"
	EmployeeTypeContract  EmployeeType = "contract"
	EmployeeTypeDaily     EmployeeType = "daily"
	EmployeeTypeFreelance EmployeeType = "freelance"
)

// IsValid reports whether the classification is one of the four recognized tags.
func (t EmployeeType) IsValid() bool {
	switch t {
	case EmployeeTypePermanent, EmployeeTypeContract, EmployeeTypeDaily, EmployeeTypeFreelance:
		return true
	}
	return false
}

// IsDailyRated reports whether the classification is paid per worked day.
func (t EmployeeType) IsDailyRated() bool {
	return t == EmployeeTypeDaily || t == EmployeeTypeFreelance
}

// Label returns the human-readable Indonesian label used in audit notes.
func (t EmployeeType) Label() string {
	switch t {
	case EmployeeTypePermanent:
		return "Karyawan Tetap"
	case EmployeeTypeContract:
		return "Karyawan Kontrak"
	case EmployeeTypeDaily:
		return "Karyawan Harian"
	case EmployeeTypeFreelance:
		return "Freelance"
	default:
		return "Karyawan"
	}
}

// Employee represents a company employee as far as payroll calculations care:
// identity, employment dates and the owning company.
type Employee struct {
	EmployeeID string     `json:"employeeID"`
	CompanyID  string     `json:"companyID"`
	Name       string     `json:"name"`
	JoinDate   time.Time  `json:"joinDate"`
	ResignDate *time.Time `json:"resignDate,omitempty"` // nil while still employed
}

// CompensatedEmployee pairs an employee with their currently active
// compensation row, as resolved by the employee repository.
type CompensatedEmployee struct {
	Employee     Employee
	Compensation EmployeeCompensation
}
