// Package config loads benchmark settings from a YAML file.
//
// Every key is optional; keys left out keep the value the command would use
// without a file. Example:
//
//	size: 50000000
//	type: float64
//	kernel: auto
//	fill: ramp
//	verify: true
//	log_level: debug
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-addperf/bench"
	"github.com/cwbudde/algo-addperf/kernel"
)

// File mirrors the YAML document. Pointer fields distinguish "unset" from
// the zero value.
type File struct {
	Size     *int   `yaml:"size"`
	Type     string `yaml:"type"`
	Kernel   string `yaml:"kernel"`
	Fill     string `yaml:"fill"`
	Verify   *bool  `yaml:"verify"`
	LogLevel string `yaml:"log_level"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("config path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &f, nil
}

// Validate checks every set field and reports all problems together.
func (f File) Validate() error {
	var errs []error

	if f.Size != nil && *f.Size < 0 {
		errs = append(errs, fmt.Errorf("size %d must be >= 0", *f.Size))
	}
	if f.Type != "" {
		if _, err := kernel.ParseType(f.Type); err != nil {
			errs = append(errs, fmt.Errorf("type: %w", err))
		}
	}
	if f.Fill != "" {
		if _, err := bench.ParseFill(f.Fill); err != nil {
			errs = append(errs, fmt.Errorf("fill: %w", err))
		}
	}
	if f.LogLevel != "" {
		if _, err := zerolog.ParseLevel(f.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("log_level: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Apply overlays the set fields of f onto cfg.
func (f File) Apply(cfg bench.Config) (bench.Config, error) {
	if f.Size != nil {
		cfg.Size = *f.Size
	}
	if f.Type != "" {
		t, err := kernel.ParseType(f.Type)
		if err != nil {
			return cfg, err
		}
		cfg.Type = t
	}
	if f.Kernel != "" {
		cfg.Kernel = f.Kernel
	}
	if f.Fill != "" {
		fill, err := bench.ParseFill(f.Fill)
		if err != nil {
			return cfg, err
		}
		cfg.Fill = fill
	}
	if f.Verify != nil {
		cfg.Verify = *f.Verify
	}
	return cfg, nil
}

// Level returns the configured log level, or def when none is set.
func (f File) Level(def zerolog.Level) (zerolog.Level, error) {
	if f.LogLevel == "" {
		return def, nil
	}
	return zerolog.ParseLevel(f.LogLevel)
}
