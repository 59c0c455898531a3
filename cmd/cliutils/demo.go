// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/cliutils/datetime"
	"cloudeng.io/cliutils/mathutil"
	"cloudeng.io/cliutils/strutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

func (a *app) demos() map[string]subcmd.Runner {
	runner := func(fn func(context.Context) error) subcmd.Runner {
		return func(ctx context.Context, _ any, _ []string) error {
			return fn(ctx)
		}
	}
	return map[string]subcmd.Runner{
		"math":   runner(a.mathDemo),
		"string": runner(a.stringDemo),
		"date":   runner(a.dateDemo),
		"file":   runner(a.fileDemo),
	}
}

func (a *app) mathDemo(_ context.Context) error {
	fmt.Fprintln(a.out, "=== Math Utils Demo ===")
	f, err := mathutil.Factorial(5)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Factorial of 5: %v\n", f)
	fmt.Fprintf(a.out, "GCD of 48 and 18: %v\n", mathutil.GCD(48, 18))
	fmt.Fprintf(a.out, "Is 17 prime? %v\n", mathutil.IsPrime(17))
	fmt.Fprintf(a.out, "LCM of 4 and 6: %v\n", mathutil.LCM(4, 6))
	return nil
}

func (a *app) stringDemo(_ context.Context) error {
	fmt.Fprintln(a.out, "=== String Utils Demo ===")
	fmt.Fprintf(a.out, "Is 'racecar' a palindrome? %v\n", strutil.IsPalindrome("racecar"))
	fmt.Fprintf(a.out, "Count of 'l' in 'hello world': %v\n", strutil.CountChar("hello world", 'l'))
	fmt.Fprintf(a.out, "Reverse of 'hello': %v\n", strutil.Reverse("hello"))
	fmt.Fprintf(a.out, "Title case of 'hello world': %v\n", strutil.TitleCase("hello world"))
	return nil
}

func (a *app) dateDemo(_ context.Context) error {
	fmt.Fprintln(a.out, "=== Date Utils Demo ===")
	fmt.Fprintf(a.out, "Current date: %v\n", datetime.CurrentDate(string(a.config.DateFormat)))
	days, err := datetime.DaysBetween("2023-01-10", "2023-01-05", datetime.ISO8601)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Days between 2023-01-10 and 2023-01-05: %v\n", days)
	ddmmyyyy, err := datetime.ToDDMMYYYY("2023-12-25")
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Convert '2023-12-25' to DD/MM/YYYY: %v\n", ddmmyyyy)
	weekday, err := datetime.DayOfWeek("2023-12-25", datetime.ISO8601)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Day of the week for 2023-12-25: %v\n", weekday)
	fmt.Fprintf(a.out, "Is 2024 a leap year? %v\n", datetime.IsLeapYear(2024))
	return nil
}

func (a *app) fileDemo(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== File I/O Utils Demo ===")
	name := a.config.DemoFile
	if err := a.files.WriteString(ctx, name, "Hello from CLI Utils!\nThis is a demo file."); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created demo file: %v\n", name)
	errs := &errors.M{}
	errs.Append(a.describeDemoFile(ctx, name))
	if err := a.files.Delete(ctx, name); err != nil {
		errs.Append(err)
	} else {
		fmt.Fprintln(a.out, "Cleaned up demo file")
	}
	if err := errs.Err(); err != nil {
		ctxlog.Logger(ctx).Error("file demo failed", "file", name, "error", err)
		return err
	}
	return nil
}

func (a *app) describeDemoFile(ctx context.Context, name string) error {
	contents, err := a.files.ReadString(ctx, name)
	if err != nil {
		return err
	}
	first, _, _ := strings.Cut(contents, "\n")
	fmt.Fprintf(a.out, "File content: %v\n", first)
	size, err := a.files.Size(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "File size: %v bytes\n", size)
	return nil
}
