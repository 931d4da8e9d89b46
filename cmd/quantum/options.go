package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Options collects everything the factor command needs, merged from
// flags and an optional YAML file. Flags the user set explicitly win
// over file values.
type Options struct {
	Modulus       uint64
	Base          uint64
	Bits          int
	MaxAttempts   int
	Seed          int64
	OracleTimeout time.Duration
}

// optionsFile is the YAML shape. Pointer fields distinguish "absent"
// from zero values; the timeout is a duration string like "10s".
type optionsFile struct {
	Modulus       *uint64 `yaml:"modulus"`
	Base          *uint64 `yaml:"base"`
	Bits          *int    `yaml:"bits"`
	MaxAttempts   *int    `yaml:"max_attempts"`
	Seed          *int64  `yaml:"seed"`
	OracleTimeout string  `yaml:"oracle_timeout"`
}

func loadOptionsFile(path string) (*optionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var of optionsFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, err
	}
	return &of, nil
}

// factorOptions resolves the factor command's options from its flags
// and, when --config is given, the YAML file behind it.
func factorOptions(cmd *cobra.Command) (*Options, error) {
	flags := cmd.Flags()
	opts := &Options{}

	var err error
	if opts.Modulus, err = flags.GetUint64("modulus"); err != nil {
		return nil, err
	}
	if opts.Base, err = flags.GetUint64("base"); err != nil {
		return nil, err
	}
	if opts.Bits, err = flags.GetInt("bits"); err != nil {
		return nil, err
	}
	if opts.MaxAttempts, err = flags.GetInt("max-attempts"); err != nil {
		return nil, err
	}
	if opts.Seed, err = flags.GetInt64("seed"); err != nil {
		return nil, err
	}
	if opts.OracleTimeout, err = flags.GetDuration("oracle-timeout"); err != nil {
		return nil, err
	}

	path, err := flags.GetString("config")
	if err != nil || path == "" {
		return opts, err
	}

	of, err := loadOptionsFile(path)
	if err != nil {
		return nil, err
	}
	if of.Modulus != nil && !flags.Changed("modulus") {
		opts.Modulus = *of.Modulus
	}
	if of.Base != nil && !flags.Changed("base") {
		opts.Base = *of.Base
	}
	if of.Bits != nil && !flags.Changed("bits") {
		opts.Bits = *of.Bits
	}
	if of.MaxAttempts != nil && !flags.Changed("max-attempts") {
		opts.MaxAttempts = *of.MaxAttempts
	}
	if of.Seed != nil && !flags.Changed("seed") {
		opts.Seed = *of.Seed
	}
	if of.OracleTimeout != "" && !flags.Changed("oracle-timeout") {
		d, err := time.ParseDuration(of.OracleTimeout)
		if err != nil {
			return nil, err
		}
		opts.OracleTimeout = d
	}
	return opts, nil
}
