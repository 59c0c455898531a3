// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"cloudeng.io/logging/ctxlog"
)

const menuOptions = `Choose an option:
1. Math Utils Demo
2. String Utils Demo
3. Date Utils Demo
4. File I/O Utils Demo
5. Interactive Mode
6. Exit

Enter your choice (1-6): `

// menu runs the numbered menu until the user selects exit, stdin is
// closed or the context is canceled. Errors from the demos are printed
// and the menu continues.
func (a *app) menu(ctx context.Context, _ any, _ []string) error {
	fmt.Fprintln(a.out, "Welcome to CLI Utils!")
	fmt.Fprintln(a.out, "This is a utility library with math, string, date, and file operations.")
	fmt.Fprintln(a.out)
	sc := bufio.NewScanner(a.in)
	demos := []func(context.Context) error{a.mathDemo, a.stringDemo, a.dateDemo, a.fileDemo}
	for ctx.Err() == nil {
		fmt.Fprint(a.out, menuOptions)
		if !sc.Scan() {
			fmt.Fprintln(a.out)
			return sc.Err()
		}
		choice := strings.TrimSpace(sc.Text())
		ctxlog.Logger(ctx).Debug("menu", "choice", choice)
		switch choice {
		case "1", "2", "3", "4":
			if err := demos[choice[0]-'1'](ctx); err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
			}
		case "5":
			if err := a.interactiveLoop(ctx, sc); err != nil {
				return err
			}
		case "6":
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please enter 1-6.")
		}
		fmt.Fprintln(a.out)
	}
	return ctx.Err()
}
