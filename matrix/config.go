// SPDX-License-Identifier: MIT
// Package matrix - options loaded from YAML.
//
// Host applications often keep numeric policy next to the rest of their
// configuration. LoadOptions decodes such a document into the same Option
// values the WithX constructors produce:
//
//	epsilon: 1e-9
//	validate_nan_inf: true
//	parallel_cofactor: true
//	parallel_threshold: 6
//	workers: 4
//
// Absent keys keep their defaults. parallel_threshold is only meaningful with
// parallel_cofactor: true and is rejected otherwise. Invalid values yield
// ErrBadConfig instead of the panics the WithX constructors reserve for
// programmer errors.

package matrix

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

const opLoadOptions = "LoadOptions"

// Config is the serializable form of Options.
type Config struct {
	Epsilon           *float64 `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	ValidateNaNInf    *bool    `json:"validate_nan_inf,omitempty" yaml:"validate_nan_inf,omitempty"`
	ParallelCofactor  *bool    `json:"parallel_cofactor,omitempty" yaml:"parallel_cofactor,omitempty"`
	ParallelThreshold int      `json:"parallel_threshold,omitempty" yaml:"parallel_threshold,omitempty"`
	Workers           int      `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// LoadConfig decodes a YAML document. An empty document yields a zero Config.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: %v", opLoadOptions, ErrBadConfig, err)
	}

	return &c, nil
}

// Options validates c and converts it into Option values.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.Epsilon != nil {
		eps := *c.Epsilon
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			return nil, fmt.Errorf("%s: epsilon %v: %w", opLoadOptions, eps, ErrBadConfig)
		}
		opts = append(opts, WithEpsilon(eps))
	}
	if c.ValidateNaNInf != nil {
		if *c.ValidateNaNInf {
			opts = append(opts, WithValidateNaNInf())
		} else {
			opts = append(opts, WithNoValidateNaNInf())
		}
	}
	if c.ParallelThreshold < 0 {
		return nil, fmt.Errorf("%s: parallel_threshold %d: %w", opLoadOptions, c.ParallelThreshold, ErrBadConfig)
	}
	parallel := c.ParallelCofactor != nil && *c.ParallelCofactor
	if c.ParallelThreshold > 0 && !parallel {
		return nil, fmt.Errorf("%s: parallel_threshold without parallel_cofactor: %w", opLoadOptions, ErrBadConfig)
	}
	if parallel {
		threshold := c.ParallelThreshold
		if threshold == 0 {
			threshold = DefaultParallelThreshold
		}
		opts = append(opts, WithParallelCofactor(threshold))
	}
	if c.Workers < 0 {
		return nil, fmt.Errorf("%s: workers %d: %w", opLoadOptions, c.Workers, ErrBadConfig)
	}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}

	return opts, nil
}

// LoadOptions decodes a YAML document straight into Option values.
func LoadOptions(r io.Reader) ([]Option, error) {
	c, err := LoadConfig(r)
	if err != nil {
		return nil, err
	}

	return c.Options()
}
