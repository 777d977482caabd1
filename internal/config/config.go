// Package config loads erwalk settings from YAML and the environment and
// checks them before they reach the simulation core, which assumes valid
// input.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hantao-zhou/random-walk/walk"
)

// Walk kinds.
const (
	KindSimple     = "simple"
	KindReinforced = "reinforced"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ERWALK_"

// Config contains all erwalk settings.
type Config struct {
	// Walk configures trajectory generation.
	Walk WalkConfig `json:"walk" yaml:"walk"`

	// Estimate configures the Monte Carlo return-time estimators.
	Estimate EstimateConfig `json:"estimate" yaml:"estimate"`

	// Seed fixes the random source. 0 draws fresh entropy per run.
	Seed int64 `json:"seed" yaml:"seed"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// WalkConfig selects the walk kind and its parameters. The reinforcement
// parameters are shared with the estimator.
type WalkConfig struct {
	Kind        string `json:"kind" yaml:"kind"`
	Steps       int    `json:"steps" yaml:"steps"`
	walk.Params `yaml:",inline"`
}

// EstimateConfig sets the trial count and per-trial step budget.
type EstimateConfig struct {
	Trials int `json:"trials" yaml:"trials"`
	Steps  int `json:"steps" yaml:"steps"`
}

// LoggingConfig configures log verbosity: "info" (default), "debug" or "trace".
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Walk: WalkConfig{
			Kind:  KindReinforced,
			Steps: 1000,
			Params: walk.Params{
				Strength: 1.0,
				Delay:    0,
				Memory:   0,
			},
		},
		Estimate: EstimateConfig{
			Trials: 10000,
			Steps:  1000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns defaults overlaid with the YAML file at path (if path is
// non-empty) and then with ERWALK_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys missing
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv applies ERWALK_* overrides. Unparseable numbers are reported
// rather than silently ignored.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvPrefix + "KIND"); v != "" {
		c.Walk.Kind = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"STEPS", &c.Walk.Steps},
		{"DELAY", &c.Walk.Delay},
		{"MEMORY", &c.Walk.Memory},
		{"TRIALS", &c.Estimate.Trials},
		{"BUDGET", &c.Estimate.Steps},
	}
	for _, e := range ints {
		v := os.Getenv(EnvPrefix + e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, e.key, v, err)
		}
		*e.dst = n
	}

	if v := os.Getenv(EnvPrefix + "STRENGTH"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sSTRENGTH=%q: %w", EnvPrefix, v, err)
		}
		c.Walk.Strength = f
	}
	if v := os.Getenv(EnvPrefix + "SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED=%q: %w", EnvPrefix, v, err)
		}
		c.Seed = n
	}
	return nil
}

// Validate checks the walk and logging sections.
func (c *Config) Validate() error {
	switch c.Walk.Kind {
	case KindSimple, KindReinforced:
	default:
		return fmt.Errorf("walk.kind=%q (valid: %s, %s): %w", c.Walk.Kind, KindSimple, KindReinforced, ErrUnknownKind)
	}
	if c.Walk.Steps < 0 {
		return fmt.Errorf("walk.steps=%d: %w", c.Walk.Steps, ErrBadSteps)
	}
	if err := ValidateParams(c.Walk.Params); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "info", "debug", "trace":
	default:
		return fmt.Errorf("logging.level=%q (valid: info, debug, trace): %w", c.Logging.Level, ErrBadLogLevel)
	}
	return nil
}

// ValidateEstimate checks the estimator section on top of Validate.
func (c *Config) ValidateEstimate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Estimate.Trials <= 0 {
		return fmt.Errorf("estimate.trials=%d: %w", c.Estimate.Trials, ErrBadTrials)
	}
	if c.Estimate.Steps <= 0 {
		return fmt.Errorf("estimate.steps=%d: %w", c.Estimate.Steps, ErrBadSteps)
	}
	return nil
}

// ValidateParams checks reinforcement parameters against the core's
// preconditions.
func ValidateParams(p walk.Params) error {
	if p.Strength < 0 || math.IsNaN(p.Strength) || math.IsInf(p.Strength, 0) {
		return fmt.Errorf("strength=%v: %w", p.Strength, ErrBadStrength)
	}
	if p.Delay < 0 {
		return fmt.Errorf("delay=%d: %w", p.Delay, ErrBadDelay)
	}
	if p.Memory < 0 {
		return fmt.Errorf("memory=%d: %w", p.Memory, ErrBadMemory)
	}
	return nil
}
