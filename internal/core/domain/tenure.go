package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// daysPerMonth is the 30-day-month convention used by local labor rules when
// converting a day span into fractional months.
const daysPerMonth = 30

// fullYearMonths is the month threshold at which THR stops being prorated.
const fullYearMonths = 12

// ErrInvalidDateRange is returned when a tenure would end before it starts.
var ErrInvalidDateRange = errors.New("invalid date range: end date is before start date")

// Tenure summarizes the duration an employee has worked, measured from the
// join date to either the resignation date or the calculation date. It is
// rebuilt for every calculation and never persisted.
type Tenure struct {
	StartDate time.Time
	EndDate   time.Time

	// MonthsWorked is the fractional month count under the 30-day-month
	// convention (e.g. 182 days ~= 6.07 months). Informational and used for
	// the one-month eligibility floor.
	MonthsWorked float64

	// DaysWorked counts days from start to end inclusive.
	DaysWorked int

	// WholeMonths counts completed calendar months between start and end.
	// Proration and the full-year check use this capped count, not the
	// fractional value, so a six-month tenure prorates to exactly 6/12.
	WholeMonths int

	IsResigned bool
}

// NewTenure derives a tenure from employment dates relative to a reference
// (calculation/holiday) date. When resignDate is supplied and falls before the
// reference date, tenure ends at the resignation and IsResigned is true.
func NewTenure(joinDate time.Time, resignDate *time.Time, referenceDate time.Time) (Tenure, error) {
	endDate := referenceDate
	resigned := false
	if resignDate != nil && resignDate.Before(referenceDate) {
		endDate = *resignDate
		resigned = true
	}

	if endDate.Before(joinDate) {
		return Tenure{}, fmt.Errorf("%w: start %s, end %s",
			ErrInvalidDateRange, joinDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
	}

	days := DaysBetween(joinDate, endDate) + 1 // inclusive of both endpoints
	return Tenure{
		StartDate:    joinDate,
		EndDate:      endDate,
		MonthsWorked: MonthsFromDays(days),
		DaysWorked:   days,
		WholeMonths:  calendarMonthsBetween(joinDate, endDate),
		IsResigned:   resigned,
	}, nil
}

// DaysBetween returns the signed number of calendar days from one date to
// another, ignoring the time-of-day component. It is positive when from
// precedes to.
func DaysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)) / (24 * time.Hour))
}

// MonthsFromDays converts a day count into fractional months using the
// 30-day-month convention. Shared by tenure construction and the eligibility
// floor so the two never drift apart.
func MonthsFromDays(days int) float64 {
	return float64(days) / daysPerMonth
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarMonthsBetween counts completed calendar months from start to end.
func calendarMonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// HasWorkedAtLeastOneMonth reports whether the tenure clears the statutory
// one-month eligibility floor.
func (t Tenure) HasWorkedAtLeastOneMonth() bool {
	return t.MonthsWorked >= 1
}

// HasWorkedFullYear reports whether the tenure reaches the 12-month threshold
// at which THR stops being prorated.
func (t Tenure) HasWorkedFullYear() bool {
	return t.WholeMonths >= fullYearMonths
}

// ProrationMonths is the whole-month count used as the proration numerator,
// capped at a full year. A tenure that clears the one-month floor without
// crossing a calendar month boundary (e.g. the 1st to the 31st of one month)
// still counts as one month, so an entitled employee never prorates to zero.
func (t Tenure) ProrationMonths() int {
	months := t.WholeMonths
	if months == 0 && t.HasWorkedAtLeastOneMonth() {
		months = 1
	}
	if months > fullYearMonths {
		return fullYearMonths
	}
	return months
}

// ProrationFactor is the fraction (0-1) of a full year's base salary owed.
func (t Tenure) ProrationFactor() decimal.Decimal {
	return decimal.NewFromInt(int64(t.ProrationMonths())).
		Div(decimal.NewFromInt(fullYearMonths))
}

// FormattedMonthsWorked renders the fractional month count for audit notes,
// e.g. "6.1 bulan".
func (t Tenure) FormattedMonthsWorked() string {
	return fmt.Sprintf("%.1f bulan", t.MonthsWorked)
}
