// Package config carries the operator-facing tuning surface: defaults, an
// optional YAML file, and validation. Flag handling lives in the CLI; this
// package only knows about values.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/srodi/proctop/pkg/types"
)

// MinInterval is the shortest supported delay between samples. Anything
// lower is clamped rather than rejected, matching classic top behavior.
const MinInterval = time.Second

// Config is the resolved runtime configuration.
type Config struct {
	Interval   time.Duration // delay between updates
	Iterations int           // 0 runs until canceled
	SortKey    types.SortKey
	Batch      bool // no screen control, no interactive keys
	TopK       int  // 0 shows every process
	ProcRoot   string
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Interval: types.DefaultInterval,
		SortKey:  types.SortByCPU,
		ProcRoot: "/proc",
	}
}

// fileConfig is the YAML shape. Pointer and empty-string fields keep the
// incoming value when a key is absent.
type fileConfig struct {
	Interval   string `yaml:"interval"`
	Iterations *int   `yaml:"iterations"`
	Sort       string `yaml:"sort"`
	Batch      *bool  `yaml:"batch"`
	TopK       *int   `yaml:"topk"`
	ProcRoot   string `yaml:"proc_root"`
}

// LoadFile overlays settings from a YAML file onto cfg.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, errors.Wrap(err, "parsing config file")
	}

	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config interval %q", fc.Interval)
		}
		cfg.Interval = d
	}
	if fc.Iterations != nil {
		cfg.Iterations = *fc.Iterations
	}
	if fc.Sort != "" {
		cfg.SortKey = types.SortKey(fc.Sort)
	}
	if fc.Batch != nil {
		cfg.Batch = *fc.Batch
	}
	if fc.TopK != nil {
		cfg.TopK = *fc.TopK
	}
	if fc.ProcRoot != "" {
		cfg.ProcRoot = fc.ProcRoot
	}
	return cfg, nil
}

// Normalized clamps the interval to the supported minimum and fills empty
// fields with defaults.
func (c Config) Normalized() Config {
	if c.Interval < MinInterval {
		c.Interval = MinInterval
	}
	if c.SortKey == "" {
		c.SortKey = types.SortByCPU
	}
	if c.ProcRoot == "" {
		c.ProcRoot = "/proc"
	}
	return c
}

// Validate rejects values the scheduler cannot honor.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return errors.New("interval must be positive")
	}
	if c.Iterations < 0 {
		return errors.New("iterations must not be negative")
	}
	if c.TopK < 0 {
		return errors.New("topk must not be negative")
	}
	switch c.SortKey {
	case types.SortByCPU, types.SortByPID:
	default:
		return errors.Errorf("unknown sort key %q", c.SortKey)
	}
	return nil
}
