// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/cliutils/datetime"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &strings.Builder{}
	a := newApp(strings.NewReader(stdin), out)
	a.config.DemoFile = filepath.Join(t.TempDir(), "demo.txt")
	err := newCommandSet(a).DispatchWithArgs(t.Context(), "cliutils", args...)
	return out.String(), err
}

func runOK(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, "", args...)
	if err != nil {
		t.Fatalf("%v: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestMathCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"math", "factorial", "5"}, "120\n"},
		{[]string{"math", "factorial", "20"}, "2432902008176640000\n"},
		{[]string{"math", "gcd", "48", "18"}, "6\n"},
		{[]string{"math", "lcm", "4", "6"}, "12\n"},
		{[]string{"math", "prime", "17", "4", "1"}, "17: true\n4: false\n1: false\n"},
	} {
		if got, want := runOK(t, tc.args...), tc.out; got != want {
			t.Errorf("%v: got %q, want %q", tc.args, got, want)
		}
	}
	for _, args := range [][]string{
		{"math", "factorial", "21"},
		{"math", "factorial", "-1"},
		{"math", "gcd", "x", "1"},
		{"math", "lcm", "1"},
	} {
		if _, err := run(t, "", args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestStringCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"string", "palindrome", "A", "man", "a", "plan", "a", "canal", "Panama"}, "true\n"},
		{[]string{"string", "palindrome", "hello"}, "false\n"},
		{[]string{"string", "reverse", "hello"}, "olleh\n"},
		{[]string{"string", "title", "hello", "WORLD"}, "Hello World\n"},
		{[]string{"string", "words", "one two  three"}, "3\n"},
		{[]string{"string", "count", "l", "hello", "world"}, "3\n"},
		{[]string{"string", "alpha", "hello"}, "true\n"},
		{[]string{"string", "alpha", "hello123"}, "false\n"},
		{[]string{"string", "strip", " a b ", "c"}, "abc\n"},
	} {
		if got, want := runOK(t, tc.args...), tc.out; got != want {
			t.Errorf("%v: got %q, want %q", tc.args, got, want)
		}
	}
	if _, err := run(t, "", "string", "count", "ll", "hello"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestDateCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"date", "convert", "2023-12-25", "Y-m-d", "d/m/Y"}, "25/12/2023\n"},
		{[]string{"date", "convert", "25/12/2023", "%d/%m/%Y", "%A %B %-d %Y"}, "Monday December 25 2023\n"},
		{[]string{"date", "diff", "2023-01-10", "2023-01-05"}, "5\n"},
		{[]string{"date", "diff", "--format=d/m/Y", "05/01/2023", "10/01/2023"}, "-5\n"},
		{[]string{"date", "add", "2023-12-25", "7"}, "2024-01-01\n"},
		{[]string{"date", "add", "2023-12-25", "-5"}, "2023-12-20\n"},
		{[]string{"date", "weekday", "2024-01-01"}, "Monday\n"},
		{[]string{"date", "valid", "2023-12-25"}, "true\n"},
		{[]string{"date", "leap", "2000"}, "true\n"},
		{[]string{"date", "leap", "1900"}, "false\n"},
		{[]string{"date", "today", "--format=%Y"}, time.Now().Format("2006") + "\n"},
	} {
		if got, want := runOK(t, tc.args...), tc.out; got != want {
			t.Errorf("%v: got %q, want %q", tc.args, got, want)
		}
	}

	out := runOK(t, "date", "valid", "2023-13-25")
	if !strings.HasPrefix(out, "false: ") || !strings.Contains(out, "month") {
		t.Errorf("unexpected output: %q", out)
	}
	for _, args := range [][]string{
		{"date", "weekday", "invalid-date"},
		{"date", "add", "2023-12-25", "x"},
		{"date", "add", "9999-12-31", "1"},
		{"date", "leap", "x"},
		{"date", "convert", "2023-02-29", "Y-m-d", "d/m/Y"},
	} {
		if _, err := run(t, "", args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestFileCommands(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "a", "b")
	name := filepath.Join(dir, "f.txt")
	cpy := filepath.Join(dir, "g.txt")

	runOK(t, "file", "mkdir", dir)
	runOK(t, "file", "write", name, "hello", "world")
	runOK(t, "file", "append", name, "second line")
	runOK(t, "file", "append", name, "third line")

	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"file", "read", name}, "hello world\nsecond line\nthird line\n"},
		{[]string{"file", "lines", name}, "     1\thello world\n     2\tsecond line\n     3\tthird line\n"},
		{[]string{"file", "head", "--n=2", name}, "hello world\nsecond line\n"},
		{[]string{"file", "size", name}, "35\n"},
		{[]string{"file", "exists", name}, "true\n"},
		{[]string{"file", "exists", dir}, "false\n"},
		{[]string{"file", "copy", name, cpy}, "copied 35 bytes\n"},
		{[]string{"file", "read", cpy}, "hello world\nsecond line\nthird line\n"},
	} {
		if got, want := runOK(t, tc.args...), tc.out; got != want {
			t.Errorf("%v: got %q, want %q", tc.args, got, want)
		}
	}

	runOK(t, "file", "delete", name, cpy)
	for _, f := range []string{name, cpy} {
		if _, err := os.Stat(f); !os.IsNotExist(err) {
			t.Errorf("%v: should have been deleted: %v", f, err)
		}
	}
	for _, args := range [][]string{
		{"file", "read", name},
		{"file", "size", name},
		{"file", "delete", name},
		{"file", "copy", name, cpy},
	} {
		if _, err := run(t, "", args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestDemos(t *testing.T) {
	for _, tc := range []struct {
		name     string
		contains []string
	}{
		{"math", []string{"Factorial of 5: 120", "GCD of 48 and 18: 6", "Is 17 prime? true", "LCM of 4 and 6: 12"}},
		{"string", []string{"Is 'racecar' a palindrome? true", "Count of 'l' in 'hello world': 3", "Reverse of 'hello': olleh", "Title case of 'hello world': Hello World"}},
		{"date", []string{"Current date: ", "Days between 2023-01-10 and 2023-01-05: 5", "DD/MM/YYYY: 25/12/2023", "2023-12-25: Monday", "Is 2024 a leap year? true"}},
		{"file", []string{"Created demo file: ", "File content: Hello from CLI Utils!", "File size: 42 bytes", "Cleaned up demo file"}},
	} {
		out := runOK(t, "demo", tc.name)
		for _, c := range tc.contains {
			if !strings.Contains(out, c) {
				t.Errorf("%v: %q not found in %q", tc.name, c, out)
			}
		}
	}
}

func TestConfig(t *testing.T) {
	ctx := t.Context()
	tmpDir := t.TempDir()
	cfgFile := filepath.Join(tmpDir, "config.yaml")
	logFile := filepath.Join(tmpDir, "log.txt")
	demoFile := filepath.Join(tmpDir, "demo.txt")
	cfgContents := `date_format: "d/m/Y"
demo_file: ` + demoFile + `
logging:
  level: 3
  format: json
  file: ` + logFile + `
`
	if err := os.WriteFile(cfgFile, []byte(cfgContents), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(ctx, cfgFile)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(cfg.DateFormat), "d/m/Y"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.DemoFile, demoFile; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := runOK(t, "--config="+cfgFile, "date", "add", "25/12/2023", "7"), "01/01/2024\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := runOK(t, "--config="+cfgFile, "date", "add", "--format=Y-m-d", "2023-12-25", "7"), "2024-01-01\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	runOK(t, "--config="+cfgFile, "file", "exists", demoFile)
	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logged), `"msg":"loaded config"`) {
		t.Errorf("missing log entry: %s", logged)
	}

	def, err := LoadConfig(ctx, filepath.Join(tmpDir, "missing.yaml"))
	if err == nil {
		t.Errorf("expected an error for a missing config file: %v", def)
	}

	for _, contents := range []string{
		`date_format: "Y-m"`,
		`date_format: [1, 2]`,
		`date_format: ""`,
		`date_fmt: "Y-m-d"`,
	} {
		bad := filepath.Join(tmpDir, "bad.yaml")
		if err := os.WriteFile(bad, []byte(contents), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(ctx, bad); err == nil {
			t.Errorf("%v: expected an error", contents)
		}
	}

	d := DefaultConfig()
	if got, want := string(d.DateFormat), datetime.ISO8601; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.datePattern(""), datetime.ISO8601; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.datePattern("Ymd"), "Ymd"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
