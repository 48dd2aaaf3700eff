package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjapay/payroll_backend/internal/apperrors"
	"github.com/kerjapay/payroll_backend/internal/core/domain"
	"github.com/kerjapay/payroll_backend/internal/core/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func rupiah(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func TestCalculateThr_PermanentFullYear(t *testing.T) {
	calc := services.NewThrCalculator()

	result, err := calc.CalculateThr(
		date(2023, time.January, 1), nil, date(2024, time.January, 1),
		rupiah(5_000_000), domain.EmployeeTypePermanent, 0,
	)
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	assert.True(t, result.ThrAmount.Equal(rupiah(5_000_000)),
		"expected full salary, got %s", result.ThrAmount)
	assert.Equal(t, domain.MethodPermanentFull, result.CalculationMethod)
	assert.Contains(t, result.Notes, "THR penuh")
}

func TestCalculateThr_PermanentProrated(t *testing.T) {
	calc := services.NewThrCalculator()

	// Six whole calendar months out of twelve prorate to exactly half.
	result, err := calc.CalculateThr(
		date(2023, time.January, 1), nil, date(2023, time.July, 1),
		rupiah(6_000_000), domain.EmployeeTypePermanent, 0,
	)
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	assert.True(t, result.ThrAmount.Equal(rupiah(3_000_000)),
		"expected half salary, got %s", result.ThrAmount)
	assert.Equal(t, domain.MethodPermanentProrated, result.CalculationMethod)
}

func TestCalculateThr_OneMonthInsideSingleCalendarMonth(t *testing.T) {
	calc := services.NewThrCalculator()

	// 31 inclusive days that never cross a calendar month boundary: the
	// employee clears the one-month floor, so the amount must be one twelfth,
	// not zero, and the notes must not claim ineligibility.
	result, err := calc.CalculateThr(
		date(2023, time.December, 1), nil, date(2023, time.December, 31),
		rupiah(6_000_000), domain.EmployeeTypePermanent, 0,
	)
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	assert.True(t, result.ThrAmount.Equal(rupiah(500_000)),
		"expected one twelfth of the salary, got %s", result.ThrAmount)
	assert.Equal(t, domain.MethodPermanentProrated, result.CalculationMethod)
	assert.NotContains(t, result.Notes, "Tidak berhak")
	assert.Contains(t, result.Notes, "Rp 500.000")
}

func TestCalculateThr_UnderOneMonthIneligible(t *testing.T) {
	calc := services.NewThrCalculator()

	result, err := calc.CalculateThr(
		date(2023, time.December, 1), nil, date(2023, time.December, 15),
		rupiah(5_000_000), domain.EmployeeTypePermanent, 0,
	)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	assert.True(t, result.ThrAmount.IsZero())
	assert.Equal(t, domain.MethodIneligible, result.CalculationMethod)
	assert.Contains(t, result.Notes, "masa kerja kurang dari 1 bulan")
}

func TestCalculateThr_ResignedPermanent(t *testing.T) {
	calc := services.NewThrCalculator()

	tests := []struct {
		name          string
		resignDate    time.Time
		wantEligible  bool
		wantAmount    decimal.Decimal
		wantMethod    domain.CalculationMethod
		notesFragment string
	}{
		{
			name:          "resigned long before the holiday forfeits THR",
			resignDate:    date(2023, time.June, 1),
			wantEligible:  false,
			wantAmount:    decimal.Zero,
			wantMethod:    domain.MethodIneligible,
			notesFragment: "mengundurkan diri lebih dari 30 hari",
		},
		{
			name:         "resigned within 30 days of the holiday keeps prorated THR",
			resignDate:   date(2023, time.December, 15),
			wantEligible: true,
			// 11 whole months: 11/12 of 6,000,000.
			wantAmount:    rupiah(5_500_000),
			wantMethod:    domain.MethodPermanentProrated,
			notesFragment: "mengundurkan diri",
		},
		{
			name:          "resigned exactly 30 days before the holiday keeps THR",
			resignDate:    date(2023, time.December, 2),
			wantEligible:  true,
			wantAmount:    rupiah(5_500_000),
			wantMethod:    domain.MethodPermanentProrated,
			notesFragment: "mengundurkan diri",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.CalculateThr(
				date(2023, time.January, 1), timePtr(tt.resignDate), date(2024, time.January, 1),
				rupiah(6_000_000), domain.EmployeeTypePermanent, 0,
			)
			require.NoError(t, err)

			assert.Equal(t, tt.wantEligible, result.IsEligible)
			assert.True(t, result.ThrAmount.Equal(tt.wantAmount),
				"expected %s, got %s", tt.wantAmount, result.ThrAmount)
			assert.Equal(t, tt.wantMethod, result.CalculationMethod)
			assert.Contains(t, result.Notes, tt.notesFragment)
		})
	}
}

func TestCalculateThr_ContractEmployee(t *testing.T) {
	calc := services.NewThrCalculator()

	t.Run("contract running past the holiday is prorated", func(t *testing.T) {
		result, err := calc.CalculateThr(
			date(2023, time.April, 1), timePtr(date(2024, time.March, 31)), date(2024, time.January, 1),
			rupiah(4_800_000), domain.EmployeeTypeContract, 0,
		)
		require.NoError(t, err)

		assert.True(t, result.IsEligible)
		// 9 whole months: 9/12 of 4,800,000.
		assert.True(t, result.ThrAmount.Equal(rupiah(3_600_000)),
			"expected 3600000, got %s", result.ThrAmount)
		assert.Equal(t, domain.MethodContractProrated, result.CalculationMethod)
	})

	t.Run("contract ended before the holiday forfeits THR", func(t *testing.T) {
		result, err := calc.CalculateThr(
			date(2023, time.April, 1), timePtr(date(2023, time.December, 15)), date(2024, time.January, 1),
			rupiah(4_800_000), domain.EmployeeTypeContract, 0,
		)
		require.NoError(t, err)

		assert.False(t, result.IsEligible)
		assert.True(t, result.ThrAmount.IsZero())
		assert.Contains(t, result.Notes, "hubungan kerja berakhir sebelum hari raya")
	})

	t.Run("contract never reaches the full-salary method", func(t *testing.T) {
		result, err := calc.CalculateThr(
			date(2021, time.January, 1), nil, date(2024, time.January, 1),
			rupiah(4_800_000), domain.EmployeeTypeContract, 0,
		)
		require.NoError(t, err)

		assert.True(t, result.IsEligible)
		assert.Equal(t, domain.MethodContractProrated, result.CalculationMethod)
		// Proration months cap at 12, so a multi-year contract still gets 12/12.
		assert.True(t, result.ThrAmount.Equal(rupiah(4_800_000)))
	})
}

func TestCalculateThr_DailyRatedEmployees(t *testing.T) {
	calc := services.NewThrCalculator()

	// Daily and freelance share the work-day proration dispatch.
	for _, employeeType := range []domain.EmployeeType{domain.EmployeeTypeDaily, domain.EmployeeTypeFreelance} {
		t.Run(string(employeeType), func(t *testing.T) {
			result, err := calc.CalculateThr(
				date(2023, time.July, 1), nil, date(2024, time.January, 1),
				rupiah(3_000_000), employeeType, 260,
			)
			require.NoError(t, err)

			assert.True(t, result.IsEligible)
			assert.Equal(t, domain.MethodDailyProrated, result.CalculationMethod)
			assert.True(t, result.ThrAmount.Sign() > 0)
			assert.True(t, result.ThrAmount.LessThanOrEqual(rupiah(3_000_000)),
				"THR is capped at one monthly salary, got %s", result.ThrAmount)
			assert.Contains(t, result.Notes, employeeType.Label())
		})
	}
}

func TestCalculateThr_ValidationErrors(t *testing.T) {
	calc := services.NewThrCalculator()

	t.Run("calculation date before join date", func(t *testing.T) {
		_, err := calc.CalculateThr(
			date(2024, time.January, 1), nil, date(2023, time.January, 1),
			rupiah(5_000_000), domain.EmployeeTypePermanent, 0,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidCalculationDate)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("unknown employee type", func(t *testing.T) {
		_, err := calc.CalculateThr(
			date(2023, time.January, 1), nil, date(2024, time.January, 1),
			rupiah(5_000_000), domain.EmployeeType("intern"), 0,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidEmployeeType)
	})

	t.Run("negative working days in year", func(t *testing.T) {
		_, err := calc.CalculateThr(
			date(2023, time.January, 1), nil, date(2024, time.January, 1),
			rupiah(3_000_000), domain.EmployeeTypeDaily, -5,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidWorkingDays)
	})
}

func TestCalculateThr_Deterministic(t *testing.T) {
	calc := services.NewThrCalculator()

	first, err := calc.CalculateThr(
		date(2023, time.March, 10), nil, date(2024, time.January, 1),
		rupiah(7_250_000), domain.EmployeeTypePermanent, 0,
	)
	require.NoError(t, err)

	second, err := calc.CalculateThr(
		date(2023, time.March, 10), nil, date(2024, time.January, 1),
		rupiah(7_250_000), domain.EmployeeTypePermanent, 0,
	)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateThr_AmountMonotonicInTenure(t *testing.T) {
	calc := services.NewThrCalculator()

	salary := rupiah(6_000_000)
	holiday := date(2024, time.January, 1)
	prev := decimal.Zero
	for monthsBack := 1; monthsBack <= 18; monthsBack++ {
		join := holiday.AddDate(0, -monthsBack, 0)
		result, err := calc.CalculateThr(join, nil, holiday, salary, domain.EmployeeTypePermanent, 0)
		require.NoError(t, err)

		assert.True(t, result.ThrAmount.GreaterThanOrEqual(prev),
			"amount decreased when tenure grew to %d months: %s < %s", monthsBack, result.ThrAmount, prev)
		prev = result.ThrAmount
	}
	assert.True(t, prev.Equal(salary), "amount never caps at the full salary")
}
