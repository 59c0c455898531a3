// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	daysInMonth     = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	dayOfYear       = daysBeforeMonth(daysInMonth)     // [0, 31, 59, ...]
	dayOfYearLeap   = daysBeforeMonth(daysInMonthLeap) // [0, 31, 60, ...]
	monthNames      = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	weekdayNames    = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// daysBeforeMonth returns the number of days in the year that precede
// the first day of each month.
func daysBeforeMonth(dim []int) []int {
	before := make([]int, len(dim))
	for i := 1; i < len(dim); i++ {
		before[i] = before[i-1] + dim[i-1]
	}
	return before
}

// Month as an int, January is 1.
type Month time.Month

// String returns the English name of the month.
func (m Month) String() string {
	if m < 1 || m > 12 {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// IsLeapYear returns true if the given year is a leap year in the
// proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeapYear(year) {
		return 29
	}
	return 28
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month for the given year.
// It returns zero for a month outside of 1-12.
func DaysInMonth(year int, month Month) int {
	if month < 1 || month > 12 {
		return 0
	}
	return daysInMonthForYear(year)[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeapYear(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

func cumulativeDaysForYear(year int) []int {
	if IsLeapYear(year) {
		return dayOfYearLeap
	}
	return dayOfYear
}

// monthAndDay returns the month and day of month for a 1-based
// day of the year, which must be valid for the year.
func monthAndDay(year, yday int) (Month, int) {
	dim := daysInMonthForYear(year)
	for month := 0; month < 12; month++ {
		if yday <= dim[month] {
			return Month(month + 1), yday
		}
		yday -= dim[month]
	}
	panic("unreachable")
}

// ParseMonth parses a month as either a number in the range 1-12, or
// as an English month name, or a prefix of at least three letters of one,
// in any case.
func ParseMonth(val string) (Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month: %d", n)
		}
		return Month(n), nil
	}
	if len(val) >= 3 {
		lc := strings.ToLower(val)
		for i, name := range monthNames {
			if strings.HasPrefix(strings.ToLower(name), lc) {
				return Month(i + 1), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}
