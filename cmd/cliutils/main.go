// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command cliutils provides access to the math, string, date and file
// utilities in this module, either as individual sub-commands or via an
// interactive menu.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cliutils/fileio"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const commands = `name: cliutils
summary: math, string, date and file utilities with an interactive menu
commands:
  - name: menu
    summary: run the interactive, numbered, menu of demos
  - name: interactive
    summary: run the interactive command loop

  - name: demo
    summary: run one of the built in demonstrations
    commands:
      - name: math
        summary: demonstrate the math utilities
      - name: string
        summary: demonstrate the string utilities
      - name: date
        summary: demonstrate the date utilities
      - name: file
        summary: demonstrate the file utilities

  - name: math
    summary: integer utilities
    commands:
      - name: factorial
        summary: print n! for n in the range 0-20
        arguments:
          - <n>
      - name: gcd
        summary: print the greatest common divisor of a and b
        arguments:
          - <a>
          - <b>
      - name: lcm
        summary: print the least common multiple of a and b
        arguments:
          - <a>
          - <b>
      - name: prime
        summary: print whether each of the supplied numbers is prime
        arguments:
          - <n>
          - ...

  - name: string
    summary: string utilities, multiple arguments are joined with a space
    commands:
      - name: palindrome
        summary: print whether the text is a palindrome
        arguments:
          - <text>
          - ...
      - name: reverse
        summary: print the text reversed
        arguments:
          - <text>
          - ...
      - name: title
        summary: print the text in title case
        arguments:
          - <text>
          - ...
      - name: words
        summary: print the number of words in the text
        arguments:
          - <text>
          - ...
      - name: count
        summary: print the number of occurrences of a character in the text
        arguments:
          - <char>
          - <text>
          - ...
      - name: alpha
        summary: print whether the text contains only letters
        arguments:
          - <text>
          - ...
      - name: strip
        summary: print the text with all whitespace removed
        arguments:
          - <text>
          - ...

  - name: date
    summary: date utilities, dates are parsed and printed using --format
    commands:
      - name: convert
        summary: convert a date from one format to another
        arguments:
          - <date>
          - <input-format>
          - <output-format>
      - name: diff
        summary: print the number of days from the second date to the first
        arguments:
          - <date>
          - <date>
      - name: add
        summary: add, or subtract, a number of days to a date
        arguments:
          - <date>
          - <days>
      - name: weekday
        summary: print the day of the week for a date
        arguments:
          - <date>
      - name: valid
        summary: print whether a date is valid
        arguments:
          - <date>
      - name: leap
        summary: print whether a year is a leap year
        arguments:
          - <year>
      - name: today
        summary: print today's date

  - name: file
    summary: file utilities
    commands:
      - name: read
        summary: print the contents of a file
        arguments:
          - <file>
      - name: lines
        summary: print the lines of a file preceded by their line numbers
        arguments:
          - <file>
      - name: head
        summary: print the first lines of a file
        arguments:
          - <file>
      - name: size
        summary: print the size of a file in bytes
        arguments:
          - <file>
      - name: exists
        summary: print whether a file exists
        arguments:
          - <file>
      - name: write
        summary: write text to a file, replacing any existing contents
        arguments:
          - <file>
          - <text>
          - ...
      - name: append
        summary: append text to a file, creating it if needed
        arguments:
          - <file>
          - <text>
          - ...
      - name: copy
        summary: copy a file
        arguments:
          - <from>
          - <to>
      - name: delete
        summary: delete one or more files
        arguments:
          - <file>
          - ...
      - name: mkdir
        summary: create a directory and any missing parents
        arguments:
          - <dir>
`

// GlobalFlags are available to all sub-commands.
type GlobalFlags struct {
	Config string `subcmd:"config,,'optional yaml configuration file'"`
	cmdutil.LoggingFlags
}

type app struct {
	in      io.Reader
	out     io.Writer
	globals GlobalFlags
	config  Config
	files   *fileio.Files
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{
		in:     in,
		out:    out,
		config: DefaultConfig(),
		files:  fileio.Local(),
	}
}

func newCommandSet(a *app) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	set := func(runner subcmd.Runner, flags any, names ...string) {
		cmdSet.Set(names...).MustRunner(a.withConfig(runner), flags)
	}

	set(a.menu, &struct{}{}, "menu")
	set(a.interactive, &struct{}{}, "interactive")

	for name, fn := range a.demos() {
		set(fn, &struct{}{}, "demo", name)
	}

	set(a.factorial, &struct{}{}, "math", "factorial")
	set(a.gcd, &struct{}{}, "math", "gcd")
	set(a.lcm, &struct{}{}, "math", "lcm")
	set(a.prime, &struct{}{}, "math", "prime")

	for name, fn := range a.stringCommands() {
		set(fn, &struct{}{}, "string", name)
	}

	set(a.dateConvert, &struct{}{}, "date", "convert")
	set(a.dateDiff, &dateFlags{}, "date", "diff")
	set(a.dateAdd, &dateFlags{}, "date", "add")
	set(a.dateWeekday, &dateFlags{}, "date", "weekday")
	set(a.dateValid, &dateFlags{}, "date", "valid")
	set(a.dateLeap, &struct{}{}, "date", "leap")
	set(a.dateToday, &dateFlags{}, "date", "today")

	set(a.fileRead, &struct{}{}, "file", "read")
	set(a.fileLines, &struct{}{}, "file", "lines")
	set(a.fileHead, &headFlags{}, "file", "head")
	set(a.fileSize, &struct{}{}, "file", "size")
	set(a.fileExists, &struct{}{}, "file", "exists")
	set(a.fileWrite, &struct{}{}, "file", "write")
	set(a.fileAppend, &struct{}{}, "file", "append")
	set(a.fileCopy, &struct{}{}, "file", "copy")
	set(a.fileDelete, &struct{}{}, "file", "delete")
	set(a.fileMkdir, &struct{}{}, "file", "mkdir")

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&a.globals, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	return cmdSet
}

// withConfig returns a runner that loads the configuration file, if any,
// and creates the logger before calling runner.
func (a *app) withConfig(runner subcmd.Runner) subcmd.Runner {
	return func(ctx context.Context, values any, args []string) error {
		if len(a.globals.Config) > 0 {
			cfg, err := LoadConfig(ctx, a.globals.Config)
			if err != nil {
				return err
			}
			a.config = cfg
		}
		logger, err := a.config.loggingConfig(a.globals.LoggingFlags).NewLogger()
		if err != nil {
			return err
		}
		defer logger.Close()
		ctx = ctxlog.Context(ctx, logger.Logger)
		if len(a.globals.Config) > 0 {
			logger.Info("loaded config", "file", a.globals.Config, "date_format", a.config.DateFormat)
		}
		return runner(ctx, values, args)
	}
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(newApp(os.Stdin, os.Stdout)))
}
