// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides support for parsing, formatting and performing
// arithmetic on calendar dates represented as strings in configurable
// formats. Dates are in the proleptic Gregorian calendar and are validated
// when parsed, there is no representation of an invalid date. See Layout
// for the supported pattern syntax.
//
// All of the functions in this package are safe for concurrent use.
package datetime

import "time"

const (
	// ISO8601 is the default pattern, eg. 2023-12-25.
	ISO8601 = "%Y-%m-%d"
	// DDMMYYYY is the day first pattern, eg. 25/12/2023.
	DDMMYYYY = "%d/%m/%Y"
)

// Parse parses dateStr according to pattern.
func Parse(dateStr, pattern string) (CalendarDate, error) {
	return NewLayout(pattern).Parse(dateStr)
}

// Format renders date according to pattern.
func Format(date CalendarDate, pattern string) string {
	return NewLayout(pattern).Format(date)
}

// ConvertFormat parses dateStr using inputPattern and renders
// it using outputPattern.
func ConvertFormat(dateStr, inputPattern, outputPattern string) (string, error) {
	cd, err := Parse(dateStr, inputPattern)
	if err != nil {
		return "", err
	}
	return Format(cd, outputPattern), nil
}

// DifferenceInDays returns the signed number of days between a and b,
// it is positive when a is after b.
func DifferenceInDays(a, b CalendarDate) int {
	return a.Sub(b)
}

// DaysBetween is like DifferenceInDays but parses both dates using
// pattern.
func DaysBetween(a, b, pattern string) (int, error) {
	l := NewLayout(pattern)
	da, err := l.Parse(a)
	if err != nil {
		return 0, err
	}
	db, err := l.Parse(b)
	if err != nil {
		return 0, err
	}
	return da.Sub(db), nil
}

// IsValidFormat returns true if dateStr can be parsed using pattern.
func IsValidFormat(dateStr, pattern string) bool {
	_, err := Parse(dateStr, pattern)
	return err == nil
}

// AddDays parses dateStr using pattern, adds n days to it, and
// renders the result using the same pattern. n may be negative.
func AddDays(dateStr, pattern string, n int) (string, error) {
	l := NewLayout(pattern)
	cd, err := l.Parse(dateStr)
	if err != nil {
		return "", err
	}
	cd, err = cd.AddDays(n)
	if err != nil {
		return "", withInput(err, dateStr, pattern)
	}
	return l.Format(cd), nil
}

// DayOfWeek returns the English name of the day of the week,
// eg. Monday, for dateStr.
func DayOfWeek(dateStr, pattern string) (string, error) {
	cd, err := Parse(dateStr, pattern)
	if err != nil {
		return "", err
	}
	return cd.Weekday().String(), nil
}

// CurrentDate returns today's date in the local time zone rendered
// using pattern.
func CurrentDate(pattern string) string {
	return CurrentDateAt(time.Now(), pattern)
}

// CurrentDateAt is like CurrentDate but uses the date of the supplied time.
// Times before year 1 or after year 9999 render as 0001-01-01 and
// 9999-12-31 respectively.
func CurrentDateAt(now time.Time, pattern string) string {
	return Format(clampedDate(now), pattern)
}

// ToDDMMYYYY converts a date in ISO8601 format to DDMMYYYY.
func ToDDMMYYYY(dateStr string) (string, error) {
	return ConvertFormat(dateStr, ISO8601, DDMMYYYY)
}

// ToYYYYMMDD converts a date in DDMMYYYY format to ISO8601.
func ToYYYYMMDD(dateStr string) (string, error) {
	return ConvertFormat(dateStr, DDMMYYYY, ISO8601)
}
