// Package config loads indumath settings from an optional YAML file,
// INDUMATH_* environment variables and built-in defaults, in that order of
// precedence from highest to lowest: environment, file, defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/indumath/indumath/internal/logging"
	"github.com/indumath/indumath/linprog"
)

// EnvPrefix is prepended to every environment override, e.g.
// INDUMATH_SERVER_ADDR or INDUMATH_SOLVER_TOLERANCE.
const EnvPrefix = "INDUMATH"

// Config is the full runtime configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Display DisplayConfig `mapstructure:"display"`
	Server  ServerConfig  `mapstructure:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn (or warning), error
	Format string `mapstructure:"format"` // text or json
}

// SolverConfig tunes the linear-programming solver.
type SolverConfig struct {
	Tolerance float64 `mapstructure:"tolerance"`
}

// DisplayConfig controls how results are rendered.
type DisplayConfig struct {
	Precision int `mapstructure:"precision"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	MetricsPath  string        `mapstructure:"metrics_path"`
	SolveTimeout time.Duration `mapstructure:"solve_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("solver.tolerance", linprog.DefaultTolerance)
	v.SetDefault("display.precision", 2)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.metrics_path", "/metrics")
	v.SetDefault("server.solve_timeout", 10*time.Second)
}

// Default returns the built-in configuration. Unlike Load("") it ignores
// the environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: built-in defaults: %v", err))
	}
	return cfg
}

// Load reads the configuration. An empty path skips the file; a non-empty
// path that cannot be read is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no component can honor.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("config: log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log.format %q is not text or json", c.Log.Format))
	}
	if c.Solver.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("config: solver.tolerance must not be negative"))
	}
	if c.Display.Precision < 0 || c.Display.Precision > 12 {
		errs = append(errs, fmt.Errorf("config: display.precision must be between 0 and 12"))
	}
	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("config: server.addr must not be empty"))
	}
	if !strings.HasPrefix(c.Server.MetricsPath, "/") {
		errs = append(errs, fmt.Errorf("config: server.metrics_path must start with /"))
	}
	if c.Server.SolveTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: server.solve_timeout must be positive"))
	}
	return errors.Join(errs...)
}
