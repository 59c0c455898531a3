// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/cliutils/mathutil"
	"cloudeng.io/cliutils/strutil"
)

const interactiveHelp = `
Choose operation:
- factorial <number>
- prime <number>
- palindrome <text>
- reverse <text>
- exit
> `

// interactiveCommand is a single command in the interactive loop. When
// exact is set the command takes exactly one argument, otherwise its
// arguments are joined into a single string.
type interactiveCommand struct {
	usage string
	exact bool
	run   func(arg string) string
}

var interactiveCommands = map[string]interactiveCommand{
	"factorial": {
		usage: "factorial <number>",
		exact: true,
		run: func(arg string) string {
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return "Invalid number"
			}
			f, err := mathutil.Factorial(n)
			if errors.Is(err, mathutil.ErrFactorialOverflow) {
				return fmt.Sprintf("Number too large (max %d)", mathutil.MaxFactorial)
			}
			return fmt.Sprintf("Factorial of %d: %d", n, f)
		},
	},
	"prime": {
		usage: "prime <number>",
		exact: true,
		run: func(arg string) string {
			n, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return "Invalid number"
			}
			return fmt.Sprintf("Is %d prime? %v", n, mathutil.IsPrime(n))
		},
	},
	"palindrome": {
		usage: "palindrome <text>",
		run: func(text string) string {
			return fmt.Sprintf("Is '%s' a palindrome? %v", text, strutil.IsPalindrome(text))
		},
	},
	"reverse": {
		usage: "reverse <text>",
		run: func(text string) string {
			return fmt.Sprintf("Reverse of '%s': %s", text, strutil.Reverse(text))
		},
	},
}

func (a *app) interactive(ctx context.Context, _ any, _ []string) error {
	return a.interactiveLoop(ctx, bufio.NewScanner(a.in))
}

// interactiveLoop reads commands from sc until exit is entered, sc is
// exhausted or the context is canceled.
func (a *app) interactiveLoop(ctx context.Context, sc *bufio.Scanner) error {
	fmt.Fprintln(a.out, "=== Interactive Mode ===")
	fmt.Fprintln(a.out, "Type 'exit' to return to main menu")
	for ctx.Err() == nil {
		fmt.Fprint(a.out, interactiveHelp)
		if !sc.Scan() {
			fmt.Fprintln(a.out)
			return sc.Err()
		}
		parts := strings.Fields(sc.Text())
		if len(parts) == 0 {
			continue
		}
		if parts[0] == "exit" {
			return nil
		}
		cmd, ok := interactiveCommands[parts[0]]
		switch {
		case !ok:
			fmt.Fprintln(a.out, "Unknown command. Try factorial, prime, palindrome, reverse, or exit")
		case len(parts) < 2 || (cmd.exact && len(parts) != 2):
			fmt.Fprintf(a.out, "Usage: %s\n", cmd.usage)
		default:
			fmt.Fprintln(a.out, cmd.run(strings.Join(parts[1:], " ")))
		}
	}
	return ctx.Err()
}
