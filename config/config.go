// Package config loads fitparam defaults from the environment.
//
// Every setting is read from a FITPARAM_-prefixed variable:
//
//	FITPARAM_SAMPLE_COUNT       points per sampled curve (1000)
//	FITPARAM_CURVE_PRECISION    relative plotting precision (1e-5)
//	FITPARAM_RESTORE_VALUE      restore sampled variables (false)
//	FITPARAM_LOG_LEVEL          debug, info, warn or error (warn)
//	FITPARAM_CURVE_COMPRESSION  none, zstd, s2 or lz4 (none)
//	FITPARAM_CURVE_ENCODING     raw or gorilla (raw)
package config

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/arloliu/fitparam/curve"
	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/format"
	"github.com/arloliu/fitparam/internal/logger"
	"github.com/arloliu/fitparam/param"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FITPARAM_"

// Config holds the environment-driven defaults.
type Config struct {
	SampleCount      int                    `env:"SAMPLE_COUNT" envDefault:"1000"`
	CurvePrecision   float64                `env:"CURVE_PRECISION" envDefault:"1e-5"`
	RestoreValue     bool                   `env:"RESTORE_VALUE" envDefault:"false"`
	LogLevel         string                 `env:"LOG_LEVEL" envDefault:"warn"`
	CurveCompression format.CompressionType `env:"CURVE_COMPRESSION" envDefault:"none"`
	CurveEncoding    format.EncodingType    `env:"CURVE_ENCODING" envDefault:"raw"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load reads Config from the process environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// LoadFrom reads Config from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	if c.SampleCount < 1 {
		return fmt.Errorf("%w: %sSAMPLE_COUNT=%d", errs.ErrInvalidSampleCount, EnvPrefix, c.SampleCount)
	}
	if !(c.CurvePrecision > 0) {
		return fmt.Errorf("%w: %sCURVE_PRECISION=%g", errs.ErrInvalidPrecision, EnvPrefix, c.CurvePrecision)
	}

	return nil
}

// Logger builds a logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *log.Logger {
	return logger.New(w, logger.ParseLevel(c.LogLevel))
}

// CollectionOptions returns the collection options matching c.
func (c Config) CollectionOptions(l *log.Logger) []param.Option {
	return []param.Option{param.WithLogger(l)}
}

// SamplerOptions returns the sampler options matching c.
func (c Config) SamplerOptions(l *log.Logger) []curve.SamplerOption {
	return []curve.SamplerOption{
		curve.WithPrecision(c.CurvePrecision),
		curve.WithRestoreValue(c.RestoreValue),
		curve.WithLogger(l),
	}
}

// EncodeOptions returns the curve encoding options matching c.
func (c Config) EncodeOptions() []curve.EncodeOption {
	return []curve.EncodeOption{
		curve.WithEncoding(c.CurveEncoding),
		curve.WithCompression(c.CurveCompression),
	}
}
