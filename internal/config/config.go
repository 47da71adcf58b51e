// Package config loads floyd CLI settings from an optional YAML file, a
// .env file and FLOYD_* environment variables.
package config

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/floydpaths/floyd"
)

// EnvPrefix prefixes every environment override, e.g. FLOYD_SOLVER_EPSILON.
const EnvPrefix = "FLOYD"

// Config holds all application configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Solver    SolverConfig    `mapstructure:"solver"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Workers   int             `mapstructure:"workers"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Timestamps bool   `mapstructure:"timestamps"`
}

type SolverConfig struct {
	Epsilon      float64 `mapstructure:"epsilon"`
	HopFiltering bool    `mapstructure:"hop_filtering"`
	DirectTies   bool    `mapstructure:"direct_ties"`
}

type TelemetryConfig struct {
	// OTLPEndpoint is the OTLP gRPC endpoint (e.g. "localhost:4317").
	// If empty, tracing is disabled.
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	ServiceName  string  `mapstructure:"service_name"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// defaults are registered with viper so that AutomaticEnv can override
// keys that no config file mentions.
func defaults() map[string]any {
	return map[string]any{
		"log.level":               "info",
		"log.timestamps":          false,
		"solver.epsilon":          0.0,
		"solver.hop_filtering":    false,
		"solver.direct_ties":      false,
		"telemetry.otlp_endpoint": "",
		"telemetry.service_name":  "floyd",
		"telemetry.sample_rate":   1.0,
		"workers":                 runtime.NumCPU(),
	}
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg, _ := load(viper.New(), "") // defaults alone cannot fail

	return cfg
}

// Load reads configuration from path (skipped when empty), after loading
// envFiles into the process environment. Missing env files are ignored;
// variables already set in the environment win over .env values.
func Load(path string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration for issues and returns warnings.
// Offending values are ignored or clamped by the accessors below.
func (c *Config) Validate() []string {
	var warnings []string

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		warnings = append(warnings, fmt.Sprintf("log level '%s' is unknown, using info", c.Log.Level))
	}
	if c.Solver.Epsilon < 0 || math.IsNaN(c.Solver.Epsilon) || math.IsInf(c.Solver.Epsilon, 0) {
		warnings = append(warnings, fmt.Sprintf("solver epsilon %v is not a finite non-negative number, using 0", c.Solver.Epsilon))
	}
	if c.Telemetry.SampleRate < 0 || c.Telemetry.SampleRate > 1 {
		warnings = append(warnings, fmt.Sprintf("telemetry sample_rate %.2f is outside [0.0, 1.0]", c.Telemetry.SampleRate))
	}
	if c.Workers < 1 {
		warnings = append(warnings, fmt.Sprintf("workers %d is below 1, using 1", c.Workers))
	}

	return warnings
}

// LogLevel returns the configured level name, info when unknown.
func (c *Config) LogLevel() string {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return "info"
	}

	return c.Log.Level
}

// WorkerLimit returns the number of files solved concurrently (at least 1).
func (c *Config) WorkerLimit() int {
	if c.Workers < 1 {
		return 1
	}

	return c.Workers
}

// SolverOptions maps the solver section onto floyd options.
// An invalid epsilon is dropped rather than passed on.
func (c *Config) SolverOptions() []floyd.Option {
	var opts []floyd.Option
	if eps := c.Solver.Epsilon; eps > 0 && !math.IsInf(eps, 0) {
		opts = append(opts, floyd.WithEpsilon(eps))
	}
	if c.Solver.HopFiltering {
		opts = append(opts, floyd.WithHopFiltering())
	}
	if c.Solver.DirectTies {
		opts = append(opts, floyd.WithDirectTies())
	}

	return opts
}
