// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// fields accumulates the values of the directives encountered
// whilst parsing.
type fields struct {
	year, month, day, yday, weekday int
	set                             map[string]bool
}

func (f *fields) assign(name string, dst *int, val int) error {
	if f.set[name] && *dst != val {
		return newParseError(ErrInvalidDate, name, "conflicting values %d and %d", *dst, val)
	}
	f.set[name] = true
	*dst = val
	return nil
}

// directive represents a single field of a pattern with a function
// to render it and a function to parse it. parse returns the number
// of bytes of input consumed.
type directive struct {
	name   string
	format func(cd CalendarDate) string
	parse  func(input string, f *fields) (int, error)
}

func numeric(name string, minDigits, maxDigits, lo, hi int, assign func(f *fields, v int) error) func(string, *fields) (int, error) {
	return func(input string, f *fields) (int, error) {
		n := 0
		for n < maxDigits && n < len(input) && input[n] >= '0' && input[n] <= '9' {
			n++
		}
		if n < minDigits {
			return 0, newParseError(ErrMalformed, name, "expected %d-%d digits at %q", minDigits, maxDigits, truncate(input))
		}
		v, _ := strconv.Atoi(input[:n])
		if v < lo || v > hi {
			return 0, newParseError(ErrOutOfRange, name, "%d is not in the range %d-%d", v, lo, hi)
		}
		return n, assign(f, v)
	}
}

// spacePadded allows for a single leading space as per %e.
func spacePadded(parse func(string, *fields) (int, error)) func(string, *fields) (int, error) {
	return func(input string, f *fields) (int, error) {
		if len(input) > 0 && input[0] == ' ' {
			n, err := parse(input[1:], f)
			return n + 1, err
		}
		return parse(input, f)
	}
}

// named matches one of names, case-insensitively, using only the first
// width bytes of each name if width is non-zero.
func named(name string, names []string, width int, assign func(f *fields, idx int) error) func(string, *fields) (int, error) {
	return func(input string, f *fields) (int, error) {
		for i, n := range names {
			if width > 0 {
				n = n[:width]
			}
			if len(input) >= len(n) && strings.EqualFold(input[:len(n)], n) {
				return len(n), assign(f, i)
			}
		}
		return 0, newParseError(ErrMalformed, name, "unrecognised name at %q", truncate(input))
	}
}

func truncate(s string) string {
	if len(s) > 12 {
		return s[:12] + "..."
	}
	return s
}

var (
	yearDirective = &directive{
		name:   "year",
		format: func(cd CalendarDate) string { return fmt.Sprintf("%04d", cd.year) },
		parse: numeric("year", 4, 4, MinYear, MaxYear, func(f *fields, v int) error {
			return f.assign("year", &f.year, v)
		}),
	}
	shortYearDirective = &directive{
		name:   "year",
		format: func(cd CalendarDate) string { return fmt.Sprintf("%02d", cd.year%100) },
		parse: numeric("year", 2, 2, 0, 99, func(f *fields, v int) error {
			if v < 69 {
				return f.assign("year", &f.year, 2000+v)
			}
			return f.assign("year", &f.year, 1900+v)
		}),
	}
	monthParser = numeric("month", 1, 2, 1, 12, func(f *fields, v int) error {
		return f.assign("month", &f.month, v)
	})
	monthDirective = &directive{
		name:   "month",
		format: func(cd CalendarDate) string { return fmt.Sprintf("%02d", cd.month) },
		parse:  monthParser,
	}
	unpaddedMonthDirective = &directive{
		name:   "month",
		format: func(cd CalendarDate) string { return strconv.Itoa(int(cd.month)) },
		parse:  monthParser,
	}
	dayParser = numeric("day", 1, 2, 1, 31, func(f *fields, v int) error {
		return f.assign("day", &f.day, v)
	})
	dayDirective = &directive{
		name:   "day",
		format: func(cd CalendarDate) string { return fmt.Sprintf("%02d", cd.day) },
		parse:  dayParser,
	}
	unpaddedDayDirective = &directive{
		name:   "day",
		format: func(cd CalendarDate) string { return strconv.Itoa(cd.day) },
		parse:  dayParser,
	}
	spacePaddedDayDirective = &directive{
		name:   "day",
		format: func(cd CalendarDate) string { return fmt.Sprintf("%2d", cd.day) },
		parse:  spacePadded(dayParser),
	}
	monthNameDirective = &directive{
		name:   "month name",
		format: func(cd CalendarDate) string { return cd.month.String() },
		parse: named("month name", monthNames, 0, func(f *fields, idx int) error {
			return f.assign("month", &f.month, idx+1)
		}),
	}
	shortMonthNameDirective = &directive{
		name:   "month name",
		format: func(cd CalendarDate) string { return cd.month.String()[:3] },
		parse: named("month name", monthNames, 3, func(f *fields, idx int) error {
			return f.assign("month", &f.month, idx+1)
		}),
	}
	weekdayDirective = &directive{
		name:   "weekday",
		format: func(cd CalendarDate) string { return weekdayNames[cd.Weekday()] },
		parse: named("weekday", weekdayNames, 0, func(f *fields, idx int) error {
			return f.assign("weekday", &f.weekday, idx)
		}),
	}
	shortWeekdayDirective = &directive{
		name:   "weekday",
		format: func(cd CalendarDate) string { return weekdayNames[cd.Weekday()][:3] },
		parse: named("weekday", weekdayNames, 3, func(f *fields, idx int) error {
			return f.assign("weekday", &f.weekday, idx)
		}),
	}
	dayOfYearDirective = &directive{
		name:   "day of year",
		format: func(cd CalendarDate) string { return fmt.Sprintf("%03d", cd.DayOfYear()) },
		parse: numeric("day of year", 3, 3, 1, 366, func(f *fields, v int) error {
			return f.assign("day of year", &f.yday, v)
		}),
	}
)

// letterDirectives are used for patterns such as "Y-m-d".
var letterDirectives = map[rune]*directive{
	'Y': yearDirective,
	'y': shortYearDirective,
	'm': monthDirective,
	'n': unpaddedMonthDirective,
	'd': dayDirective,
	'j': unpaddedDayDirective,
	'F': monthNameDirective,
	'M': shortMonthNameDirective,
	'l': weekdayDirective,
	'D': shortWeekdayDirective,
	'z': dayOfYearDirective,
}

// percentDirectives are used for strftime style patterns such as "%Y-%m-%d".
var percentDirectives = map[string]*directive{
	"Y":  yearDirective,
	"y":  shortYearDirective,
	"m":  monthDirective,
	"-m": unpaddedMonthDirective,
	"d":  dayDirective,
	"-d": unpaddedDayDirective,
	"e":  spacePaddedDayDirective,
	"B":  monthNameDirective,
	"b":  shortMonthNameDirective,
	"h":  shortMonthNameDirective,
	"A":  weekdayDirective,
	"a":  shortWeekdayDirective,
	"j":  dayOfYearDirective,
}

// percentShorthands expand to sequences of other directives.
var percentShorthands = map[string]string{
	"F": "%Y-%m-%d",
	"D": "%m/%d/%y",
	"x": "%m/%d/%y",
}

type element struct {
	literal string
	dir     *directive
}

// Layout is a compiled date pattern. Patterns that contain a '%' are
// interpreted in strftime style (eg. "%Y-%m-%d", "%d %B %Y") with
// any unrecognised directive treated as literal text. All other
// patterns use single letter directives (eg. "Y-m-d", "l, j F Y") where
// a backslash escapes the following character.
//
// The supported directives are:
//
//	Y  %Y      four digit year
//	y  %y      two digit year, 00-68 are 20xx and 69-99 are 19xx when parsing
//	m  %m      two digit month
//	n  %-m     month without padding
//	d  %d      two digit day of month
//	j  %-d     day of month without padding
//	   %e      day of month padded with a space
//	F  %B      month name, eg. January
//	M  %b %h   abbreviated month name, eg. Jan
//	l  %A      weekday name, eg. Monday
//	D  %a      abbreviated weekday name, eg. Mon
//	z  %j      three digit day of the year
//	   %F      shorthand for %Y-%m-%d
//	   %D %x   shorthand for %m/%d/%y
//	   %%      a literal %
//
// Not every pattern can be parsed back to the date it formatted. Unpadded
// numeric directives that are adjacent, as in "Ynj", are ambiguous, eg.
// 2023-01-15 formats as "2023115" which parses as 2023-11-05, and two
// digit years only cover 1969-2068, eg. 1850 formats as "50" which parses
// as 2050.
type Layout struct {
	pattern  string
	elements []element
}

// NewLayout compiles the supplied pattern. It never fails, use Validate
// to determine if the pattern is capable of parsing a complete date.
func NewLayout(pattern string) Layout {
	l := Layout{pattern: pattern}
	if strings.ContainsRune(pattern, '%') {
		l.elements = compilePercent(pattern)
	} else {
		l.elements = compileLetters(pattern)
	}
	return l
}

func appendLiteral(elems []element, lit string) []element {
	if n := len(elems); n > 0 && elems[n-1].dir == nil {
		elems[n-1].literal += lit
		return elems
	}
	return append(elems, element{literal: lit})
}

func compileLetters(pattern string) []element {
	var elems []element
	escaped := false
	for _, r := range pattern {
		if escaped {
			escaped = false
			elems = appendLiteral(elems, string(r))
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if d, ok := letterDirectives[r]; ok {
			elems = append(elems, element{dir: d})
			continue
		}
		elems = appendLiteral(elems, string(r))
	}
	if escaped {
		elems = appendLiteral(elems, `\`)
	}
	return elems
}

func compilePercent(pattern string) []element {
	var elems []element
	for len(pattern) > 0 {
		idx := strings.IndexByte(pattern, '%')
		if idx < 0 {
			return appendLiteral(elems, pattern)
		}
		if idx > 0 {
			elems = appendLiteral(elems, pattern[:idx])
		}
		pattern = pattern[idx+1:]
		if len(pattern) == 0 {
			return appendLiteral(elems, "%")
		}
		var key string
		if pattern[0] == '-' && len(pattern) > 1 {
			_, size := utf8.DecodeRuneInString(pattern[1:])
			key = pattern[:1+size]
		} else {
			_, size := utf8.DecodeRuneInString(pattern)
			key = pattern[:size]
		}
		pattern = pattern[len(key):]
		switch {
		case key == "%":
			elems = appendLiteral(elems, "%")
		case percentShorthands[key] != "":
			for _, e := range compilePercent(percentShorthands[key]) {
				if e.dir == nil {
					elems = appendLiteral(elems, e.literal)
					continue
				}
				elems = append(elems, e)
			}
		case percentDirectives[key] != nil:
			elems = append(elems, element{dir: percentDirectives[key]})
		default:
			elems = appendLiteral(elems, "%"+key)
		}
	}
	return elems
}

// String returns the pattern the Layout was created from.
func (l Layout) String() string {
	return l.pattern
}

func (l Layout) has(names ...string) bool {
	for _, e := range l.elements {
		if e.dir == nil {
			continue
		}
		for _, n := range names {
			if e.dir.name == n {
				return true
			}
		}
	}
	return false
}

// Validate returns a *ParseError wrapping ErrMalformed if the layout
// cannot determine a complete date, ie. it has no year or has neither
// a month and a day nor a day of the year.
func (l Layout) Validate() error {
	if !l.has("year") {
		return &ParseError{Pattern: l.pattern, Err: ErrMalformed, Field: "pattern", Detail: "no year directive"}
	}
	if l.has("day of year") {
		return nil
	}
	if !l.has("month", "month name") || !l.has("day") {
		return &ParseError{Pattern: l.pattern, Err: ErrMalformed, Field: "pattern", Detail: "no month and day, or day of year, directives"}
	}
	return nil
}

// Format renders cd according to the layout.
func (l Layout) Format(cd CalendarDate) string {
	var out strings.Builder
	for _, e := range l.elements {
		if e.dir == nil {
			out.WriteString(e.literal)
			continue
		}
		out.WriteString(e.dir.format(cd))
	}
	return out.String()
}

// Parse parses input according to the layout. All of the input must
// be consumed. Any error returned is a *ParseError.
func (l Layout) Parse(input string) (CalendarDate, error) {
	cd, err := l.parse(input)
	if err != nil {
		return CalendarDate{}, withInput(err, input, l.pattern)
	}
	return cd, nil
}

func (l Layout) parse(input string) (CalendarDate, error) {
	if err := l.Validate(); err != nil {
		return CalendarDate{}, err
	}
	f := &fields{set: map[string]bool{}}
	rest := input
	for _, e := range l.elements {
		if e.dir == nil {
			if !strings.HasPrefix(rest, e.literal) {
				return CalendarDate{}, newParseError(ErrMalformed, "literal", "expected %q at %q", e.literal, truncate(rest))
			}
			rest = rest[len(e.literal):]
			continue
		}
		n, err := e.dir.parse(rest, f)
		if err != nil {
			return CalendarDate{}, err
		}
		rest = rest[n:]
	}
	if len(rest) > 0 {
		return CalendarDate{}, newParseError(ErrMalformed, "trailing text", "%q", truncate(rest))
	}
	return f.date()
}

func (f *fields) date() (CalendarDate, error) {
	var cd CalendarDate
	switch {
	case f.set["month"] && f.set["day"]:
		var err error
		if cd, err = NewCalendarDate(f.year, Month(f.month), f.day); err != nil {
			return CalendarDate{}, err
		}
		if f.set["day of year"] && cd.DayOfYear() != f.yday {
			return CalendarDate{}, newParseError(ErrInvalidDate, "day of year", "%d does not match %v", f.yday, cd)
		}
	default:
		if f.yday > DaysInYear(f.year) {
			return CalendarDate{}, newParseError(ErrInvalidDate, "day of year", "%d has %d days, not %d", f.year, DaysInYear(f.year), f.yday)
		}
		month, day := monthAndDay(f.year, f.yday)
		if f.set["month"] && Month(f.month) != month {
			return CalendarDate{}, newParseError(ErrInvalidDate, "month", "%v does not match day of year %d", Month(f.month), f.yday)
		}
		if f.set["day"] && f.day != day {
			return CalendarDate{}, newParseError(ErrInvalidDate, "day", "%d does not match day of year %d", f.day, f.yday)
		}
		cd = CalendarDate{year: f.year, month: month, day: day}
	}
	if f.set["weekday"] && cd.Weekday() != time.Weekday(f.weekday) {
		return CalendarDate{}, newParseError(ErrInvalidDate, "weekday", "%v is a %v, not a %v", cd, cd.Weekday(), time.Weekday(f.weekday))
	}
	return cd, nil
}
