// Package config loads demo settings from the environment, reading a .env file
// first when one is present.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/comalice/tokennet/internal/log"
)

var (
	ErrParsingConfig  = errors.New("failed to parse config")
	ErrUnknownMachine = errors.New("unknown demo machine")
)

// Machines lists the definitions the demo can run.
var Machines = []string{"counter", "onoff"}

// Exports lists the formats the demo can print the final net in.
var Exports = []string{"dot", "json", "yaml", "none"}

// Demo holds the settings of cmd/demo.
type Demo struct {
	Machine   string        `env:"DEMO_MACHINE" envDefault:"counter"`
	Script    []string      `env:"DEMO_SCRIPT" envDefault:"inc1,inc2,inc2,dec2,inc0,dec0,inc0,dec1,dec1"`
	Role      string        `env:"DEMO_ROLE"`
	Interval  time.Duration `env:"DEMO_INTERVAL" envDefault:"0s"`
	Export    string        `env:"DEMO_EXPORT" envDefault:"dot"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat log.Format    `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads .env (ignored when missing) and parses the process environment.
func Load() (Demo, error) {
	// The .env file is optional.
	_ = godotenv.Load()
	return parse(env.Options{})
}

// LoadFrom parses the given variables only, without touching the process
// environment or any .env file.
func LoadFrom(vars map[string]string) (Demo, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Demo, error) {
	cfg, err := env.ParseAsWithOptions[Demo](opts)
	if err != nil {
		return Demo{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Demo{}, err
	}
	return cfg, nil
}

// Validate checks the machine name, export format, log settings and interval.
func (d Demo) Validate() error {
	if !slices.Contains(Machines, d.Machine) {
		return fmt.Errorf("%w: %q", ErrUnknownMachine, d.Machine)
	}
	if !slices.Contains(Exports, d.Export) {
		return fmt.Errorf("invalid export format %q: must be one of %v", d.Export, Exports)
	}
	if _, err := log.ParseLevel(d.LogLevel); err != nil {
		return err
	}
	if d.LogFormat != log.FormatJSON && d.LogFormat != log.FormatText {
		return fmt.Errorf("invalid log format %q", d.LogFormat)
	}
	if d.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", d.Interval)
	}
	return nil
}
