package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/FS-Coding-MaXI/Minimal-k-Isomorphic-Subgraph-Extension/extension"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "KEXT"

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config manages solver configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults and environment overrides.
func NewConfig() *Config {
	v := viper.New()

	// Solver parameters
	v.SetDefault("solver.algorithm", extension.Exact.String())
	v.SetDefault("solver.k", 1)
	v.SetDefault("solver.trials_multiplier", extension.DefaultTrialsMultiplier)
	v.SetDefault("solver.seed", 1)
	v.SetDefault("solver.max_retries", extension.DefaultMaxRetries)

	// Performance parameters
	v.SetDefault("performance.num_workers", 0)
	v.SetDefault("performance.materialize_limit", extension.DefaultMaterializeLimit)
	v.SetDefault("performance.max_subsets", 0)

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.enable_progress", false)
	v.SetDefault("logging.progress_interval_ms", int(extension.DefaultProgressInterval/time.Millisecond))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file; the format follows the
// extension (yaml, json, toml).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for solver parameters
func (c *Config) Algorithm() string         { return c.v.GetString("solver.algorithm") }
func (c *Config) K() int                    { return c.v.GetInt("solver.k") }
func (c *Config) TrialsMultiplier() float64 { return c.v.GetFloat64("solver.trials_multiplier") }
func (c *Config) Seed() int64               { return c.v.GetInt64("solver.seed") }
func (c *Config) MaxRetries() int           { return c.v.GetInt("solver.max_retries") }

func (c *Config) NumWorkers() int       { return c.v.GetInt("performance.num_workers") }
func (c *Config) MaterializeLimit() int { return c.v.GetInt("performance.materialize_limit") }
func (c *Config) MaxSubsets() int       { return c.v.GetInt("performance.max_subsets") }

func (c *Config) LogLevel() string        { return c.v.GetString("logging.level") }
func (c *Config) EnableProgress() bool    { return c.v.GetBool("logging.enable_progress") }
func (c *Config) ProgressIntervalMS() int { return c.v.GetInt("logging.progress_interval_ms") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Validate checks every setting without running a solver.
func (c *Config) Validate() error {
	if _, err := extension.ParseAlgorithm(c.Algorithm()); err != nil {
		return err
	}
	switch {
	case c.K() < 1:
		return fmt.Errorf("%w: solver.k = %d, want ≥ 1", ErrInvalid, c.K())
	case !(c.TrialsMultiplier() > 0) || math.IsInf(c.TrialsMultiplier(), 1):
		return fmt.Errorf("%w: solver.trials_multiplier = %g, want finite > 0", ErrInvalid, c.TrialsMultiplier())
	case c.MaxRetries() < 0:
		return fmt.Errorf("%w: solver.max_retries = %d, want ≥ 0", ErrInvalid, c.MaxRetries())
	case c.NumWorkers() < 0:
		return fmt.Errorf("%w: performance.num_workers = %d, want ≥ 0", ErrInvalid, c.NumWorkers())
	case c.MaterializeLimit() < 0:
		return fmt.Errorf("%w: performance.materialize_limit = %d, want ≥ 0", ErrInvalid, c.MaterializeLimit())
	case c.MaxSubsets() < 0:
		return fmt.Errorf("%w: performance.max_subsets = %d, want ≥ 0", ErrInvalid, c.MaxSubsets())
	case c.EnableProgress() && c.ProgressIntervalMS() <= 0:
		return fmt.Errorf("%w: logging.progress_interval_ms = %d, want > 0", ErrInvalid, c.ProgressIntervalMS())
	}
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}

	return nil
}

// Options validates the configuration and converts it to solver options.
// logger is attached to the run; with logging.enable_progress it also
// receives a Debug line per progress tick.
func (c *Config) Options(logger zerolog.Logger) ([]extension.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	algo, _ := extension.ParseAlgorithm(c.Algorithm())

	opts := []extension.Option{
		extension.WithAlgorithm(algo),
		extension.WithWorkers(c.NumWorkers()),
		extension.WithTrialsMultiplier(c.TrialsMultiplier()),
		extension.WithSeed(c.Seed()),
		extension.WithMaxRetries(c.MaxRetries()),
		extension.WithMaterializeLimit(c.MaterializeLimit()),
		extension.WithMaxSubsets(c.MaxSubsets()),
		extension.WithLogger(logger),
	}
	if c.EnableProgress() {
		interval := time.Duration(c.ProgressIntervalMS()) * time.Millisecond
		opts = append(opts, extension.WithProgress(func(p extension.Progress) {
			logger.Debug().
				Str("phase", p.Phase.String()).
				Int64("done", p.Done).
				Int64("total", p.Total).
				Int64("best", p.Best).
				Msg("Progress")
		}, interval))
	}

	return opts, nil
}

// CreateLogger creates a console zerolog logger writing to out at the
// configured level (info when the level does not parse).
func (c *Config) CreateLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", "kext").Logger()
}
