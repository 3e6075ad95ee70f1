// Package dateutil maps the month and year indexes of a plan onto calendar dates.
package dateutil

import "time"

// BeginningOfYear returns January 1 of year in UTC.
func BeginningOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfYear returns the last instant of year in UTC.
func EndOfYear(year int) time.Time {
	return time.Date(year, time.December, 31, 23, 59, 59, 999999999, time.UTC)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// MonthOfPlan returns the first day of the n-th simulated month (1-based),
// where month 1 is January of startYear. n < 1 yields January of startYear.
func MonthOfPlan(startYear, n int) time.Time {
	if n < 1 {
		n = 1
	}
	return AddMonths(BeginningOfYear(startYear), n-1)
}

// PayoffMonth is the month a loan paid over months payments is cleared.
func PayoffMonth(startYear, months int) time.Time {
	return MonthOfPlan(startYear, months)
}

// FormatMonth renders a date as "Jan 2055".
func FormatMonth(t time.Time) string {
	return t.Format("Jan 2006")
}

// YearsAndMonths splits a month count into whole years and remaining months.
func YearsAndMonths(months int) (years, rem int) {
	if months < 0 {
		months = 0
	}
	return months / 12, months % 12
}
