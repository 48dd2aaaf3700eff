package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjapay/payroll_backend/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNewTenure(t *testing.T) {
	tests := []struct {
		name          string
		joinDate      time.Time
		resignDate    *time.Time
		referenceDate time.Time
		wantEnd       time.Time
		wantDays      int
		wantWhole     int
		wantResigned  bool
	}{
		{
			name:          "full year without resignation",
			joinDate:      date(2023, time.January, 1),
			referenceDate: date(2024, time.January, 1),
			wantEnd:       date(2024, time.January, 1),
			wantDays:      366,
			wantWhole:     12,
			wantResigned:  false,
		},
		{
			name:          "half year without resignation",
			joinDate:      date(2023, time.January, 1),
			referenceDate: date(2023, time.July, 1),
			wantEnd:       date(2023, time.July, 1),
			wantDays:      182,
			wantWhole:     6,
			wantResigned:  false,
		},
		{
			name:          "resignation before reference ends the tenure",
			joinDate:      date(2023, time.January, 1),
			resignDate:    timePtr(date(2023, time.June, 1)),
			referenceDate: date(2024, time.January, 1),
			wantEnd:       date(2023, time.June, 1),
			wantDays:      152,
			wantWhole:     5,
			wantResigned:  true,
		},
		{
			name:          "resignation after reference is ignored",
			joinDate:      date(2023, time.January, 1),
			resignDate:    timePtr(date(2024, time.March, 1)),
			referenceDate: date(2024, time.January, 1),
			wantEnd:       date(2024, time.January, 1),
			wantDays:      366,
			wantWhole:     12,
			wantResigned:  false,
		},
		{
			name:          "same-day join and reference",
			joinDate:      date(2023, time.December, 1),
			referenceDate: date(2023, time.December, 1),
			wantEnd:       date(2023, time.December, 1),
			wantDays:      1,
			wantWhole:     0,
			wantResigned:  false,
		},
		{
			name:          "partial month does not count as a whole month",
			joinDate:      date(2023, time.January, 15),
			referenceDate: date(2023, time.March, 14),
			wantEnd:       date(2023, time.March, 14),
			wantDays:      59,
			wantWhole:     1,
			wantResigned:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenure, err := domain.NewTenure(tt.joinDate, tt.resignDate, tt.referenceDate)
			require.NoError(t, err)

			assert.Equal(t, tt.joinDate, tenure.StartDate)
			assert.Equal(t, tt.wantEnd, tenure.EndDate)
			assert.Equal(t, tt.wantDays, tenure.DaysWorked)
			assert.Equal(t, tt.wantWhole, tenure.WholeMonths)
			assert.Equal(t, tt.wantResigned, tenure.IsResigned)
			assert.InDelta(t, float64(tt.wantDays)/30, tenure.MonthsWorked, 1e-9)
		})
	}
}

func TestNewTenure_InvalidDateRange(t *testing.T) {
	// Resignation before the join date would end the tenure before it starts.
	_, err := domain.NewTenure(
		date(2023, time.June, 1),
		timePtr(date(2023, time.January, 1)),
		date(2024, time.January, 1),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, domain.DaysBetween(date(2023, time.March, 5), date(2023, time.March, 5)))
	assert.Equal(t, 31, domain.DaysBetween(date(2023, time.January, 1), date(2023, time.February, 1)))
	assert.Equal(t, -31, domain.DaysBetween(date(2023, time.February, 1), date(2023, time.January, 1)))
	assert.Equal(t, 365, domain.DaysBetween(date(2023, time.January, 1), date(2024, time.January, 1)))

	// Time-of-day must not shift the day count.
	morning := time.Date(2023, time.January, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2023, time.January, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, domain.DaysBetween(morning, evening))
}

func TestMonthsFromDays(t *testing.T) {
	assert.InDelta(t, 6.07, domain.MonthsFromDays(182), 0.005)
	assert.InDelta(t, 1.0, domain.MonthsFromDays(30), 1e-9)
	assert.InDelta(t, 0.0, domain.MonthsFromDays(0), 1e-9)
}

func TestTenure_Thresholds(t *testing.T) {
	under, err := domain.NewTenure(date(2023, time.December, 1), nil, date(2023, time.December, 15))
	require.NoError(t, err)
	assert.False(t, under.HasWorkedAtLeastOneMonth())
	assert.False(t, under.HasWorkedFullYear())

	half, err := domain.NewTenure(date(2023, time.January, 1), nil, date(2023, time.July, 1))
	require.NoError(t, err)
	assert.True(t, half.HasWorkedAtLeastOneMonth())
	assert.False(t, half.HasWorkedFullYear())
	assert.Equal(t, 6, half.ProrationMonths())
	assert.True(t, half.ProrationFactor().Equal(decimal.NewFromFloat(0.5)))

	full, err := domain.NewTenure(date(2022, time.January, 1), nil, date(2024, time.January, 1))
	require.NoError(t, err)
	assert.True(t, full.HasWorkedFullYear())
	assert.Equal(t, 12, full.ProrationMonths()) // capped
	assert.True(t, full.ProrationFactor().Equal(decimal.NewFromInt(1)))
}

func TestTenure_OneMonthWithoutCalendarBoundary(t *testing.T) {
	// 31 inclusive days inside a single calendar month: clears the one-month
	// floor, so the proration numerator must not collapse to zero.
	tenure, err := domain.NewTenure(date(2023, time.December, 1), nil, date(2023, time.December, 31))
	require.NoError(t, err)

	assert.Equal(t, 31, tenure.DaysWorked)
	assert.Equal(t, 0, tenure.WholeMonths)
	assert.True(t, tenure.HasWorkedAtLeastOneMonth())
	assert.Equal(t, 1, tenure.ProrationMonths())
	assert.True(t, tenure.ProrationFactor().Sign() > 0)
}

func TestTenure_FormattedMonthsWorked(t *testing.T) {
	tenure, err := domain.NewTenure(date(2023, time.January, 1), nil, date(2023, time.July, 1))
	require.NoError(t, err)
	assert.Equal(t, "6.1 bulan", tenure.FormattedMonthsWorked())
}
