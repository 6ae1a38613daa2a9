package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"eca/internal/seed"
	"eca/internal/sims/elementary"
)

// ErrConfig is wrapped by every validation error returned from Config.Plan.
var ErrConfig = errors.New("invalid configuration")

// ConfigError names the flag that failed validation.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid -%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() []error { return []error{ErrConfig, e.Err} }

// Config represents the command-line parameters for the application.
type Config struct {
	Rule     string
	Width    int
	Height   int
	Wrap     bool
	Preset   string
	Init     string
	Encoding string
	Seed     int64
	Workers  int

	Output string
	Quiet  bool
}

// NewConfig returns a Config populated with the documented defaults: rule 30,
// wrapping, a single live center cell, 128 generations.
func NewConfig() *Config {
	d := elementary.DefaultConfig()
	return &Config{
		Rule:     d.Rule.String(),
		Height:   d.Height,
		Wrap:     d.Boundary == elementary.Wrapping,
		Preset:   "center",
		Encoding: string(seed.EncodingBinary),
		Seed:     42,
		Workers:  1,
		Output:   "output.pbm",
	}
}

// BindSim attaches the simulation flags to the provided FlagSet.
func (c *Config) BindSim(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule number 0-255 (decimal, 0b, 0o or 0x)")
	fs.IntVar(&c.Width, "width", c.Width, "cells per row; 0 means 128, or the length of -init")
	fs.IntVar(&c.Height, "height", c.Height, "number of generations (image rows)")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap neighbors around the row edges; false pads with dead cells")
	fs.StringVar(&c.Preset, "preset", c.Preset, fmt.Sprintf("initial state preset %v", seed.Presets()))
	fs.StringVar(&c.Init, "init", c.Init, "literal initial state; overrides -preset")
	fs.StringVar(&c.Encoding, "encoding", c.Encoding, "encoding of -init: bin, hex or text")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random preset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation for wide rows")
}

// Bind attaches every flag, including output handling, to the FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindSim(fs)
	fs.StringVar(&c.Output, "o", c.Output, "output PBM path, - for stdout")
	fs.BoolVar(&c.Quiet, "q", c.Quiet, "do not report the written file")
}

// Plan is a validated configuration ready to simulate.
type Plan struct {
	Sim     elementary.Config
	Initial []uint8
	Workers int
	Output  string
}

// Plan validates the configuration and resolves the initial row. Invalid
// values are reported, never clamped.
func (c *Config) Plan() (*Plan, error) {
	rule, err := elementary.ParseRule(c.Rule)
	if err != nil {
		return nil, &ConfigError{Field: "rule", Value: c.Rule, Err: err}
	}
	if c.Height < 1 {
		return nil, &ConfigError{Field: "height", Value: strconv.Itoa(c.Height), Err: errors.New("must be at least 1")}
	}
	if c.Workers < 1 {
		return nil, &ConfigError{Field: "workers", Value: strconv.Itoa(c.Workers), Err: errors.New("must be at least 1")}
	}
	if c.Width < 0 || (c.Width > 0 && c.Width < elementary.MinWidth) {
		return nil, &ConfigError{Field: "width", Value: strconv.Itoa(c.Width), Err: fmt.Errorf("must be at least %d", elementary.MinWidth)}
	}
	if c.Output == "" {
		return nil, &ConfigError{Field: "o", Value: c.Output, Err: errors.New("output path is empty")}
	}

	initial, err := c.initial()
	if err != nil {
		return nil, err
	}

	boundary := elementary.ZeroPadded
	if c.Wrap {
		boundary = elementary.Wrapping
	}
	return &Plan{
		Sim: elementary.Config{
			Width:    len(initial),
			Height:   c.Height,
			Rule:     rule,
			Boundary: boundary,
		},
		Initial: initial,
		Workers: c.Workers,
		Output:  c.Output,
	}, nil
}

func (c *Config) initial() ([]uint8, error) {
	if c.Init == "" {
		width := c.Width
		if width == 0 {
			width = elementary.DefaultConfig().Width
		}
		row, err := seed.Generate(c.Preset, width, c.Seed)
		if err != nil {
			return nil, &ConfigError{Field: "preset", Value: c.Preset, Err: err}
		}
		return row, nil
	}

	enc, err := seed.ParseEncoding(c.Encoding)
	if err != nil {
		return nil, &ConfigError{Field: "encoding", Value: c.Encoding, Err: err}
	}
	row, err := seed.Decode(c.Init, enc)
	if err != nil {
		return nil, &ConfigError{Field: "init", Value: c.Init, Err: err}
	}
	if c.Width != 0 && c.Width != len(row) {
		return nil, &ConfigError{
			Field: "width",
			Value: strconv.Itoa(c.Width),
			Err:   fmt.Errorf("-init decodes to %d cells", len(row)),
		}
	}
	return row, nil
}
