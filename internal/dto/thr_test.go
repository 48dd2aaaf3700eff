package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
	"github.com/kerjapay/payroll_backend/internal/dto"
)

func TestThrResultResponse_JSONRoundTrip(t *testing.T) {
	original := domain.ThrCalculationResult{
		IsEligible:        true,
		ThrAmount:         decimal.RequireFromString("2916666.67"),
		BaseSalary:        decimal.NewFromInt(5_000_000),
		MonthsWorked:      7.03,
		CalculationMethod: domain.MethodPermanentProrated,
		Notes:             "Karyawan Tetap - THR = (7.0 bulan / 12) × Gaji + Tunjangan Tetap = Rp 2.916.667",
		CalculationDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(dto.ToThrResultResponse(original))
	require.NoError(t, err)

	var decoded dto.ThrResultResponse
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored := decoded.ToDomain()
	assert.Equal(t, original.IsEligible, restored.IsEligible)
	assert.True(t, original.ThrAmount.Equal(restored.ThrAmount),
		"amount changed across the round trip: %s vs %s", original.ThrAmount, restored.ThrAmount)
	assert.True(t, original.BaseSalary.Equal(restored.BaseSalary))
	assert.Equal(t, original.MonthsWorked, restored.MonthsWorked)
	assert.Equal(t, original.CalculationMethod, restored.CalculationMethod)
	assert.Equal(t, original.Notes, restored.Notes)
	assert.True(t, original.CalculationDate.Equal(restored.CalculationDate))
}

func TestThrResultResponse_FieldNames(t *testing.T) {
	raw, err := json.Marshal(dto.ThrResultResponse{
		ThrAmount:         decimal.NewFromInt(3_000_000),
		BaseSalary:        decimal.NewFromInt(6_000_000),
		CalculationMethod: string(domain.MethodPermanentProrated),
		IsEligible:        true,
	})
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{"thr_amount", "base_salary", "months_worked", "calculation_method", "calculation_notes", "calculation_date", "is_eligible"} {
		assert.Contains(t, fields, key)
	}
}

func TestThrCalculationRequest_ApplyDefaults(t *testing.T) {
	req := dto.ThrCalculationRequest{
		EmployeeID: "emp-1",
		PeriodID:   "period-1",
		CompanyID:  "comp-1",
	}
	req.ApplyDefaults(260)

	assert.Equal(t, string(domain.EmployeeTypePermanent), req.EmployeeType)
	assert.Equal(t, 260, req.WorkingDaysInYear)

	// Explicit values survive.
	explicit := dto.ThrCalculationRequest{
		EmployeeType:      string(domain.EmployeeTypeDaily),
		WorkingDaysInYear: 300,
	}
	explicit.ApplyDefaults(260)
	assert.Equal(t, string(domain.EmployeeTypeDaily), explicit.EmployeeType)
	assert.Equal(t, 300, explicit.WorkingDaysInYear)
}
