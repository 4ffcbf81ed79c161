// Package config loads loshu-grid settings and batch input files.
//
// Settings are layered by viper, highest priority first:
//
//  1. Command-line flags
//  2. LOSHU_* environment variables (LOSHU_LOG_LEVEL for log.level)
//  3. The YAML file named by --config
//  4. Defaults
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Setting keys.
const (
	KeyOutput          = "output"
	KeyColor           = "color"
	KeyLogLevel        = "log.level"
	KeyLogDevelopment  = "log.development"
	KeyLogVerbosity    = "log.verbosity"
	KeyMetricsTextfile = "metrics.textfile"

	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "LOSHU"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective configuration of one CLI invocation.
type Config struct {
	// Output selects the renderer: text, json or yaml.
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Color controls ANSI colouring of text output: auto, always or never.
	Color string `mapstructure:"color" yaml:"color,omitempty"`

	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`

	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics,omitempty"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `mapstructure:"level" yaml:"level,omitempty"`

	// Development switches to human readable console output.
	Development bool `mapstructure:"development" yaml:"development,omitempty"`

	// Verbosity enables logr V(n) lines up to n.
	Verbosity int `mapstructure:"verbosity" yaml:"verbosity,omitempty"`
}

// MetricsConfig configures metric export.
type MetricsConfig struct {
	// Textfile, when set, receives the metrics in Prometheus text format
	// after each command, for the node_exporter textfile collector.
	Textfile string `mapstructure:"textfile" yaml:"textfile,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputText,
		Color:  ColorAuto,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers Default() values and the environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogDevelopment, d.Log.Development)
	v.SetDefault(KeyLogVerbosity, d.Log.Verbosity)
	v.SetDefault(KeyMetricsTextfile, d.Metrics.Textfile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file into v, decodes the result and
// validates it. Flags must already be bound to v.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.Color = strings.ToLower(cfg.Color)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	var errs field.ErrorList

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		errs = append(errs, field.NotSupported(field.NewPath(KeyOutput), c.Output,
			[]string{OutputText, OutputJSON, OutputYAML}))
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, field.NotSupported(field.NewPath(KeyColor), c.Color,
			[]string{ColorAuto, ColorAlways, ColorNever}))
	}

	logPath := field.NewPath("log")
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		errs = append(errs, field.Invalid(logPath.Child("level"), c.Log.Level, err.Error()))
	}
	switch {
	case c.Log.Verbosity < 0:
		errs = append(errs, field.Invalid(logPath.Child("verbosity"), c.Log.Verbosity, "must be >= 0"))
	case c.Log.Verbosity > 0 && err == nil && level > zapcore.InfoLevel:
		errs = append(errs, field.Invalid(logPath.Child("verbosity"), c.Log.Verbosity,
			"requires log.level info or debug"))
	}

	return errs.ToAggregate()
}
