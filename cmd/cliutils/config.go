// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cloudeng.io/cliutils/datetime"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"gopkg.in/yaml.v3"
)

// Config represents the optional yaml configuration file, eg:
//
//	date_format: "%d/%m/%Y"
//	demo_file: /tmp/cli_utils_demo.txt
//	logging:
//	  level: 2
//	  format: text
//
// Fields that are not specified retain their default values.
type Config struct {
	// DateFormat is the default pattern for the date commands.
	DateFormat DatePattern `yaml:"date_format"`
	// DemoFile is the file created and deleted by the file demo.
	DemoFile string `yaml:"demo_file"`
	// Logging, if set, is used instead of the logging flags unless
	// either --log-level or --log-file is specified.
	Logging *cmdutil.LoggingConfig `yaml:"logging"`
}

// DatePattern is a date pattern that is validated when unmarshaled
// to ensure that it describes a complete date.
type DatePattern string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *DatePattern) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if err := datetime.NewLayout(s).Validate(); err != nil {
		return fmt.Errorf("line %d: date_format: %w", node.Line, err)
	}
	*p = DatePattern(s)
	return nil
}

// DefaultConfig returns the configuration used when no config file
// is specified.
func DefaultConfig() Config {
	return Config{
		DateFormat: datetime.ISO8601,
		DemoFile:   filepath.Join(os.TempDir(), "cli_utils_demo.txt"),
	}
}

// LoadConfig reads the configuration in filename, applying it over
// DefaultConfig. Unknown fields are reported as errors.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	cfg := DefaultConfig()
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) loggingConfig(flags cmdutil.LoggingFlags) cmdutil.LoggingConfig {
	if c.Logging == nil || flags.Level != 0 || len(flags.File) > 0 {
		return flags.LoggingConfig()
	}
	return *c.Logging
}

// datePattern returns the pattern to use for the date commands.
func (c Config) datePattern(flag string) string {
	if len(flag) > 0 {
		return flag
	}
	return string(c.DateFormat)
}
