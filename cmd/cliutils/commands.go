// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"cloudeng.io/cliutils/datetime"
	"cloudeng.io/cliutils/mathutil"
	"cloudeng.io/cliutils/strutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

type dateFlags struct {
	Format string `subcmd:"format,,'date format, eg. %Y-%m-%d or Y-m-d, the default is date_format from the config file or %Y-%m-%d'"`
}

type headFlags struct {
	Lines int `subcmd:"n,10,number of lines to print"`
}

func parseUint(arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", arg)
	}
	return n, nil
}

func parseUints(args []string) ([]uint64, error) {
	nums := make([]uint64, len(args))
	for i, arg := range args {
		n, err := parseUint(arg)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func (a *app) factorial(_ context.Context, _ any, args []string) error {
	n, err := parseUint(args[0])
	if err != nil {
		return err
	}
	f, err := mathutil.Factorial(n)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, f)
	return nil
}

func (a *app) gcd(_ context.Context, _ any, args []string) error {
	nums, err := parseUints(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, mathutil.GCD(nums[0], nums[1]))
	return nil
}

func (a *app) lcm(_ context.Context, _ any, args []string) error {
	nums, err := parseUints(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, mathutil.LCM(nums[0], nums[1]))
	return nil
}

func (a *app) prime(_ context.Context, _ any, args []string) error {
	nums, err := parseUints(args)
	if err != nil {
		return err
	}
	for _, n := range nums {
		fmt.Fprintf(a.out, "%v: %v\n", n, mathutil.IsPrime(n))
	}
	return nil
}

func (a *app) stringCommands() map[string]subcmd.Runner {
	text := func(fn func(string) any) subcmd.Runner {
		return func(_ context.Context, _ any, args []string) error {
			fmt.Fprintln(a.out, fn(strings.Join(args, " ")))
			return nil
		}
	}
	return map[string]subcmd.Runner{
		"palindrome": text(func(s string) any { return strutil.IsPalindrome(s) }),
		"reverse":    text(func(s string) any { return strutil.Reverse(s) }),
		"title":      text(func(s string) any { return strutil.TitleCase(s) }),
		"words":      text(func(s string) any { return strutil.WordCount(s) }),
		"alpha":      text(func(s string) any { return strutil.IsAlphabetic(s) }),
		"strip":      text(func(s string) any { return strutil.RemoveWhitespace(s) }),
		"count":      a.countChar,
	}
}

func (a *app) countChar(_ context.Context, _ any, args []string) error {
	if utf8.RuneCountInString(args[0]) != 1 {
		return fmt.Errorf("%q is not a single character", args[0])
	}
	r, _ := utf8.DecodeRuneInString(args[0])
	fmt.Fprintln(a.out, strutil.CountChar(strings.Join(args[1:], " "), r))
	return nil
}

func (a *app) dateConvert(ctx context.Context, _ any, args []string) error {
	out, err := datetime.ConvertFormat(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("date convert", "input", args[0], "from", args[1], "to", args[2])
	fmt.Fprintln(a.out, out)
	return nil
}

func (a *app) dateDiff(_ context.Context, values any, args []string) error {
	pattern := a.config.datePattern(values.(*dateFlags).Format)
	days, err := datetime.DaysBetween(args[0], args[1], pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, days)
	return nil
}

func (a *app) dateAdd(_ context.Context, values any, args []string) error {
	pattern := a.config.datePattern(values.(*dateFlags).Format)
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid number of days: %q", args[1])
	}
	out, err := datetime.AddDays(args[0], pattern, n)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, out)
	return nil
}

func (a *app) dateWeekday(_ context.Context, values any, args []string) error {
	pattern := a.config.datePattern(values.(*dateFlags).Format)
	day, err := datetime.DayOfWeek(args[0], pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, day)
	return nil
}

func (a *app) dateValid(_ context.Context, values any, args []string) error {
	pattern := a.config.datePattern(values.(*dateFlags).Format)
	if _, err := datetime.Parse(args[0], pattern); err != nil {
		fmt.Fprintf(a.out, "false: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, true)
	return nil
}

func (a *app) dateLeap(_ context.Context, _ any, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %q", args[0])
	}
	fmt.Fprintln(a.out, datetime.IsLeapYear(year))
	return nil
}

func (a *app) dateToday(_ context.Context, values any, _ []string) error {
	pattern := a.config.datePattern(values.(*dateFlags).Format)
	fmt.Fprintln(a.out, datetime.CurrentDate(pattern))
	return nil
}

func (a *app) fileRead(ctx context.Context, _ any, args []string) error {
	contents, err := a.files.ReadString(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, contents)
	if len(contents) > 0 && !strings.HasSuffix(contents, "\n") {
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *app) fileLines(ctx context.Context, _ any, args []string) error {
	lines, err := a.files.ReadLines(ctx, args[0])
	if err != nil {
		return err
	}
	for i, l := range lines {
		fmt.Fprintf(a.out, "%6d\t%s\n", i+1, l)
	}
	return nil
}

func (a *app) fileHead(ctx context.Context, values any, args []string) error {
	lines, err := a.files.ReadFirstLines(ctx, args[0], values.(*headFlags).Lines)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	return nil
}

func (a *app) fileSize(ctx context.Context, _ any, args []string) error {
	size, err := a.files.Size(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, size)
	return nil
}

func (a *app) fileExists(ctx context.Context, _ any, args []string) error {
	fmt.Fprintln(a.out, a.files.Exists(ctx, args[0]))
	return nil
}

func (a *app) fileWrite(ctx context.Context, _ any, args []string) error {
	return a.files.WriteString(ctx, args[0], strings.Join(args[1:], " ")+"\n")
}

func (a *app) fileAppend(ctx context.Context, _ any, args []string) error {
	return a.files.Append(ctx, args[0], strings.Join(args[1:], " ")+"\n")
}

func (a *app) fileCopy(ctx context.Context, _ any, args []string) error {
	n, err := a.files.Copy(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "copied %v bytes\n", n)
	return nil
}

func (a *app) fileDelete(ctx context.Context, _ any, args []string) error {
	return a.files.DeleteAll(ctx, args...)
}

func (a *app) fileMkdir(ctx context.Context, _ any, args []string) error {
	return a.files.MkdirAll(ctx, args[0])
}
