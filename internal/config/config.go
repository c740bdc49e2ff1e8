// Package config reads the YAML configuration of the santa command.
//
// Example santa.yaml:
//
//	cities: data/cities.csv
//	tours:
//	  - submissions/baseline.csv
//	  - submissions/candidate.csv
//	start: 0
//	scoring:
//	  period: 10
//	  penalty: 1.1
//	  prime-limit: 0   # 0 ⇒ number of cities
//	workers: 0         # 0 ⇒ GOMAXPROCS
//	report: true
//	strict: false      # reject tours that are not valid submissions
//	log-level: info
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded configuration file.
type Config struct {
	Cities   string   `yaml:"cities"`
	Tours    []string `yaml:"tours"`
	Start    int      `yaml:"start"`
	Scoring  Scoring  `yaml:"scoring"`
	Workers  int      `yaml:"workers"`
	Report   bool     `yaml:"report"`
	Strict   bool     `yaml:"strict"`
	LogLevel string   `yaml:"log-level"`
}

// Scoring holds the surcharge parameters.
type Scoring struct {
	Period     int     `yaml:"period"`
	Penalty    float64 `yaml:"penalty"`
	PrimeLimit int     `yaml:"prime-limit"`
}

// Default returns the competition settings.
func Default() Config {
	return Config{
		Cities: "cities.csv",
		Scoring: Scoring{
			Period:  10,
			Penalty: 1.1,
		},
		LogLevel: "info",
	}
}

// Read loads path on top of Default.
func Read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Keys absent from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Cities == "":
		return fmt.Errorf("%w: cities path is empty", ErrInvalidConfig)
	case c.Start < 0:
		return fmt.Errorf("%w: start %d", ErrInvalidConfig, c.Start)
	case c.Scoring.Period < 1:
		return fmt.Errorf("%w: scoring.period %d", ErrInvalidConfig, c.Scoring.Period)
	case math.IsNaN(c.Scoring.Penalty) || math.IsInf(c.Scoring.Penalty, 0) || c.Scoring.Penalty < 1:
		return fmt.Errorf("%w: scoring.penalty %v", ErrInvalidConfig, c.Scoring.Penalty)
	case c.Scoring.PrimeLimit < 0:
		return fmt.Errorf("%w: scoring.prime-limit %d", ErrInvalidConfig, c.Scoring.PrimeLimit)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
