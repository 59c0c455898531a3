// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"
	"fmt"
	"time"
)

const (
	// MinYear and MaxYear bound the years that a CalendarDate may represent,
	// ie. those that can be written as a four digit year.
	MinYear = 1
	MaxYear = 9999
)

// maxOrdinal is the ordinal of 9999-12-31.
var maxOrdinal = daysBeforeYear(MaxYear + 1)

// CalendarDate represents a date in the proleptic Gregorian calendar.
// A CalendarDate can only be created via NewCalendarDate, parsing or
// by arithmetic on an existing CalendarDate and is always valid. The zero
// value is not a valid date.
type CalendarDate struct {
	year  int
	month Month
	day   int
}

// NewCalendarDate returns the CalendarDate for the specified year, month
// and day or a *ParseError if they do not form a valid date.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if year < MinYear || year > MaxYear {
		return CalendarDate{}, newParseError(ErrOutOfRange, "year", "%d is not in the range %d-%d", year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, newParseError(ErrOutOfRange, "month", "%d is not in the range 1-12", month)
	}
	if day < 1 || day > 31 {
		return CalendarDate{}, newParseError(ErrOutOfRange, "day", "%d is not in the range 1-31", day)
	}
	if dim := DaysInMonth(year, month); day > dim {
		return CalendarDate{}, newParseError(ErrInvalidDate, "day", "%v %d has %d days, not %d", month, year, dim, day)
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// CalendarDateFromTime returns the CalendarDate for t in t's location.
// An out of range error is returned if t's year is outside of
// MinYear..MaxYear.
func CalendarDateFromTime(t time.Time) (CalendarDate, error) {
	y, m, d := t.Date()
	return NewCalendarDate(y, Month(m), d)
}

// clampedDate is like CalendarDateFromTime but returns the first or last
// representable date for times outside of MinYear..MaxYear.
func clampedDate(t time.Time) CalendarDate {
	switch y := t.Year(); {
	case y < MinYear:
		return CalendarDate{year: MinYear, month: 1, day: 1}
	case y > MaxYear:
		return CalendarDate{year: MaxYear, month: 12, day: 31}
	}
	y, m, d := t.Date()
	return CalendarDate{year: y, month: Month(m), day: d}
}

// Today returns the current date in the local time zone.
func Today() CalendarDate {
	return clampedDate(time.Now())
}

// CalendarDateFromOrdinal returns the date for the given ordinal day
// number, where 0001-01-01 is day 1.
func CalendarDateFromOrdinal(ordinal int) (CalendarDate, error) {
	if ordinal < 1 || ordinal > maxOrdinal {
		return CalendarDate{}, newParseError(ErrOutOfRange, "ordinal", "%d is not in the range 1-%d", ordinal, maxOrdinal)
	}
	n := ordinal - 1
	n400 := n / 146097
	n %= 146097
	n100 := n / 36524
	n %= 36524
	n4 := n / 1461
	n %= 1461
	n1 := n / 365
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		// The last day of a leap year that closes a 4 or 400 year cycle.
		return CalendarDate{year: year, month: 12, day: 31}, nil
	}
	year++
	month, day := monthAndDay(year, n%365+1)
	return CalendarDate{year: year, month: month, day: day}, nil
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return cd.year
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return cd.month
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return cd.day
}

// IsZero returns true for the zero value.
func (cd CalendarDate) IsZero() bool {
	return cd == CalendarDate{}
}

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	return cumulativeDaysForYear(cd.year)[cd.month-1] + cd.day
}

func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

// Ordinal returns the number of days since the start of the proleptic
// Gregorian calendar, with 0001-01-01 being day 1.
func (cd CalendarDate) Ordinal() int {
	return daysBeforeYear(cd.year) + cd.DayOfYear()
}

// Weekday returns the day of the week. 0001-01-01 is a Monday.
func (cd CalendarDate) Weekday() time.Weekday {
	return time.Weekday(cd.Ordinal() % 7)
}

// AddDays returns the date n days after cd, n may be negative.
// An error is returned if the result is outside of MinYear-MaxYear.
func (cd CalendarDate) AddDays(n int) (CalendarDate, error) {
	if n == 0 {
		return cd, nil
	}
	return CalendarDateFromOrdinal(cd.Ordinal() + n)
}

// Sub returns the signed number of days from o to cd, ie. it is
// positive when cd is after o.
func (cd CalendarDate) Sub(o CalendarDate) int {
	return cd.Ordinal() - o.Ordinal()
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same
// as or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	switch {
	case cd.year != o.year:
		return cmp.Compare(cd.year, o.year)
	case cd.month != o.month:
		return cmp.Compare(cd.month, o.month)
	default:
		return cmp.Compare(cd.day, o.day)
	}
}

// Before returns true if cd is before o.
func (cd CalendarDate) Before(o CalendarDate) bool {
	return cd.Compare(o) < 0
}

// After returns true if cd is after o.
func (cd CalendarDate) After(o CalendarDate) bool {
	return cd.Compare(o) > 0
}

// Time returns the time.Time for the start of cd in the given location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.year, time.Month(cd.month), cd.day, 0, 0, 0, 0, loc)
}

// String returns the date in ISO 8601 format, ie. YYYY-MM-DD.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.year, cd.month, cd.day)
}
