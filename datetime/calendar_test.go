// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/cliutils/datetime"
)

func newCalendarDate(t *testing.T, y, m, d int) datetime.CalendarDate {
	t.Helper()
	cd, err := datetime.NewCalendarDate(y, datetime.Month(m), d)
	if err != nil {
		t.Fatalf("%04d-%02d-%02d: %v", y, m, d, err)
	}
	return cd
}

func TestNewCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		err     error
	}{
		{2024, 2, 29, nil},
		{2023, 12, 31, nil},
		{1, 1, 1, nil},
		{9999, 12, 31, nil},
		{2023, 2, 29, datetime.ErrInvalidDate},
		{1900, 2, 29, datetime.ErrInvalidDate},
		{2023, 4, 31, datetime.ErrInvalidDate},
		{2023, 13, 1, datetime.ErrOutOfRange},
		{2023, 0, 1, datetime.ErrOutOfRange},
		{2023, 1, 0, datetime.ErrOutOfRange},
		{2023, 1, 32, datetime.ErrOutOfRange},
		{0, 1, 1, datetime.ErrOutOfRange},
		{10000, 1, 1, datetime.ErrOutOfRange},
	} {
		cd, err := datetime.NewCalendarDate(tc.y, datetime.Month(tc.m), tc.d)
		if tc.err == nil {
			if err != nil {
				t.Errorf("%v-%v-%v: unexpected error: %v", tc.y, tc.m, tc.d, err)
				continue
			}
			if got, want := cd.Year(), tc.y; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			if got, want := int(cd.Month()), tc.m; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			if got, want := cd.Day(), tc.d; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, err, tc.err)
		}
		if !cd.IsZero() {
			t.Errorf("%v-%v-%v: expected zero value", tc.y, tc.m, tc.d)
		}
		var pe *datetime.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%v-%v-%v: not a ParseError: %T", tc.y, tc.m, tc.d, err)
		}
	}
}

func TestOrdinal(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		ordinal int
	}{
		{1, 1, 1, 1},
		{1, 12, 31, 365},
		{2, 1, 1, 366},
		{4, 12, 31, 4*365 + 1},
		{100, 12, 31, 100*365 + 24},
		{400, 12, 31, 146097},
		{401, 1, 1, 146098},
	} {
		cd := newCalendarDate(t, tc.y, tc.m, tc.d)
		if got, want := cd.Ordinal(), tc.ordinal; got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
		rt, err := datetime.CalendarDateFromOrdinal(tc.ordinal)
		if err != nil {
			t.Errorf("%v: %v", tc.ordinal, err)
			continue
		}
		if got, want := rt, cd; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	last := newCalendarDate(t, 9999, 12, 31)
	for ord := 1; ord <= last.Ordinal(); ord += 997 {
		cd, err := datetime.CalendarDateFromOrdinal(ord)
		if err != nil {
			t.Fatalf("%v: %v", ord, err)
		}
		if got, want := cd.Ordinal(), ord; got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	}
	for _, ord := range []int{0, -1, last.Ordinal() + 1} {
		if _, err := datetime.CalendarDateFromOrdinal(ord); !errors.Is(err, datetime.ErrOutOfRange) {
			t.Errorf("%v: got %v, want %v", ord, err, datetime.ErrOutOfRange)
		}
	}
}

func TestCalendarArithmetic(t *testing.T) {
	// Walk day by day across several leap and century years and
	// compare against the time package.
	start := newCalendarDate(t, 1895, 11, 3)
	startTime := start.Time(time.UTC)
	cd := start
	for i := 0; i < 366*10; i++ {
		when := startTime.AddDate(0, 0, i)
		fromTime, err := datetime.CalendarDateFromTime(when)
		if err != nil {
			t.Fatalf("day %v: %v", i, err)
		}
		if got, want := cd, fromTime; got != want {
			t.Fatalf("day %v: got %v, want %v", i, got, want)
		}
		if got, want := cd.Weekday(), when.Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
		if got, want := cd.Sub(start), i; got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
		if got, want := cd.DayOfYear(), when.YearDay(); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
		next, err := cd.AddDays(1)
		if err != nil {
			t.Fatalf("%v: %v", cd, err)
		}
		cd = next
	}

	for _, tc := range []struct {
		a, b datetime.CalendarDate
		days int
	}{
		{newCalendarDate(t, 2000, 3, 1), newCalendarDate(t, 2000, 2, 28), 2},
		{newCalendarDate(t, 1900, 3, 1), newCalendarDate(t, 1900, 2, 28), 1},
		{newCalendarDate(t, 2024, 1, 1), newCalendarDate(t, 2023, 12, 25), 7},
		{newCalendarDate(t, 2001, 1, 1), newCalendarDate(t, 2000, 1, 1), 366},
		{newCalendarDate(t, 2101, 1, 1), newCalendarDate(t, 2100, 1, 1), 365},
	} {
		if got, want := tc.a.Sub(tc.b), tc.days; got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.b.Sub(tc.a), -tc.days; got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.b, tc.a, got, want)
		}
		sum, err := tc.b.AddDays(tc.days)
		if err != nil {
			t.Errorf("%v: %v", tc.b, err)
		}
		if got, want := sum, tc.a; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		diff, err := tc.a.AddDays(-tc.days)
		if err != nil {
			t.Errorf("%v: %v", tc.a, err)
		}
		if got, want := diff, tc.b; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	if _, err := newCalendarDate(t, 9999, 12, 31).AddDays(1); !errors.Is(err, datetime.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, datetime.ErrOutOfRange)
	}
	if _, err := newCalendarDate(t, 1, 1, 1).AddDays(-1); !errors.Is(err, datetime.ErrOutOfRange) {
		t.Errorf("got %v, want %v", err, datetime.ErrOutOfRange)
	}
}

func TestCalendarDateFromTime(t *testing.T) {
	for _, tc := range []struct {
		when time.Time
		want string
	}{
		{time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), "0001-01-01"},
		{time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), "2024-02-29"},
		{time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC), "9999-12-31"},
	} {
		cd, err := datetime.CalendarDateFromTime(tc.when)
		if err != nil {
			t.Errorf("%v: %v", tc.when, err)
			continue
		}
		if got, want := cd.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	for _, when := range []time.Time{
		time.Date(0, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(-400, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(12000, 3, 1, 0, 0, 0, 0, time.UTC),
	} {
		cd, err := datetime.CalendarDateFromTime(when)
		if !errors.Is(err, datetime.ErrOutOfRange) {
			t.Errorf("%v: got %v, want %v", when, err, datetime.ErrOutOfRange)
		}
		if !cd.IsZero() {
			t.Errorf("%v: got %v, want the zero value", when, cd)
		}
	}
}

func TestWeekday(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		weekday time.Weekday
	}{
		{1, 1, 1, time.Monday},
		{1970, 1, 1, time.Thursday},
		{2000, 1, 1, time.Saturday},
		{2023, 12, 25, time.Monday},
		{2024, 1, 1, time.Monday},
		{2024, 2, 29, time.Thursday},
	} {
		cd := newCalendarDate(t, tc.y, tc.m, tc.d)
		if got, want := cd.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	}

	// Dates that differ by a multiple of 7 days fall on the same weekday.
	base := newCalendarDate(t, 1600, 2, 29)
	for i := -7 * 1000; i <= 7*20000; i += 7 * 131 {
		cd, err := base.AddDays(i)
		if err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if got, want := cd.Weekday(), base.Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
		if got, want := cd.Weekday(), cd.Time(time.UTC).Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := newCalendarDate(t, 2023, 12, 25)
	b := newCalendarDate(t, 2024, 1, 1)
	c := newCalendarDate(t, 2023, 12, 26)
	if !a.Before(b) || !b.After(a) || a.After(b) || b.Before(a) {
		t.Errorf("%v and %v are incorrectly ordered", a, b)
	}
	if !a.Before(c) || !c.Before(b) {
		t.Errorf("%v, %v and %v are incorrectly ordered", a, c, b)
	}
	if got, want := a.Compare(a), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.String(), "2023-12-25"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newCalendarDate(t, 12, 3, 4).String(), "0012-03-04"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
