// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command runner runs the tests and linters used by CI for this module.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
)

var (
	testFlag bool
	lintFlag bool
)

func main() {
	ctx := context.Background()
	flag.BoolVar(&testFlag, "test", false, "run tests")
	flag.BoolVar(&lintFlag, "lint", false, "run golangci-lint")
	flag.Parse()

	if !testFlag && !lintFlag {
		fmt.Fprintf(os.Stderr, "at least one of --test or --lint is required\n")
		flag.Usage()
		os.Exit(1)
	}
	pkgs := flag.Args()
	if len(pkgs) == 0 {
		pkgs = []string{"./..."}
	}
	errs := &errors.M{}
	if testFlag {
		errs.Append(run(ctx, "go", append([]string{"test", "-failfast", "--covermode=atomic", "-race"}, pkgs...)...))
	}
	if lintFlag {
		errs.Append(run(ctx, "golangci-lint", append([]string{"run"}, pkgs...)...))
	}
	if err := errs.Err(); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func run(ctx context.Context, command string, args ...string) error {
	desc := command + " " + strings.Join(args, " ")
	fmt.Printf("%v...\n", desc)
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("%v... failed\n", desc)
		return fmt.Errorf("%v: %w", desc, err)
	}
	fmt.Printf("%v... ok\n", desc)
	return nil
}
