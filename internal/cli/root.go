/*
Copyright 2025 The loshu-grid Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli wires the loshu commands together.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/utils/clock"

	"github.com/numerology-dev/loshu-grid/internal/config"
	"github.com/numerology-dev/loshu-grid/internal/engines/pipeline"
	"github.com/numerology-dev/loshu-grid/internal/logging"
	"github.com/numerology-dev/loshu-grid/internal/metrics"
	"github.com/numerology-dev/loshu-grid/internal/render"
)

// Program is the binary name used in help and version output.
const Program = "loshu"

// Option configures the root command.
type Option func(*app)

// WithClock overrides the clock stamped on readings.
func WithClock(c clock.PassiveClock) Option {
	return func(a *app) { a.clock = c }
}

// WithLogWriter redirects log output. Defaults to the command's stderr.
func WithLogWriter(w io.Writer) Option {
	return func(a *app) { a.logWriter = w }
}

// app holds the state shared by one invocation of the root command.
type app struct {
	v          *viper.Viper
	configFile string

	clock     clock.PassiveClock
	logWriter io.Writer

	cfg     config.Config
	metrics *metrics.Metrics
	engine  *pipeline.Engine
}

// NewRootCommand builds the loshu command tree. Every call gets its own
// viper instance, so commands can be built and executed repeatedly in tests.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{v: viper.New(), clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(a)
	}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   Program,
		Short: "Compute Lo Shu grid readings from a date of birth",
		Long: `loshu derives the Mulank, Bhagyank and Kua numbers from a date of birth
and gender, places the date digits on the Lo Shu magic square and reports
the digits missing from it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.StringP("output", "o", config.OutputText, "Output format: text, json or yaml")
	flags.String("color", config.ColorAuto, "Colour text output: auto, always or never")
	flags.String("log-level", logging.DefaultLevel, "Log level: debug, info, warn or error")
	flags.Bool("log-development", false, "Human readable console logs")
	flags.IntP("verbosity", "v", 0, "Log verbosity, 1 for debug and 2 for trace detail")
	flags.String("metrics-textfile", "", "Write Prometheus metrics to this file after the command")

	bindFlags(a.v, flags)

	root.AddCommand(
		newGridCommand(a),
		newBatchCommand(a),
		newVersionCommand(),
	)
	return root
}

// flagKeys maps setting keys onto the persistent flags that override them.
var flagKeys = map[string]string{
	config.KeyOutput:          "output",
	config.KeyColor:           "color",
	config.KeyLogLevel:        "log-level",
	config.KeyLogDevelopment:  "log-development",
	config.KeyLogVerbosity:    "verbosity",
	config.KeyMetricsTextfile: "metrics-textfile",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for key, name := range flagKeys {
		// Only fails for a nil flag.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

// Execute runs the root command against ctx.
func Execute(ctx context.Context, opts ...Option) error {
	return NewRootCommand(opts...).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	w := a.logWriter
	if w == nil {
		w = cmd.ErrOrStderr()
	}
	logger, err := logging.NewLogger(logging.Options{
		Level:       cfg.Log.Level,
		Verbosity:   cfg.Log.Verbosity,
		Development: cfg.Log.Development,
		Writer:      w,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	logging.SetLogger(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logr.NewContext(ctx, logger.WithName(cmd.Name())))

	a.metrics = metrics.New()
	a.engine = pipeline.NewEngine(
		pipeline.WithClock(a.clock),
		pipeline.WithRecorder(a.metrics),
	)

	logger.V(logging.DEBUG).Info("Configuration loaded",
		"output", cfg.Output,
		"color", cfg.Color,
		"configFile", a.configFile,
		"metricsTextfile", cfg.Metrics.Textfile)
	return nil
}

func (a *app) renderer() (render.Renderer, error) {
	return render.NewRenderer(a.cfg.Output, render.Options{Color: a.cfg.Color})
}

// flushMetrics writes the textfile when one is configured. It runs whether or
// not the command failed, so rejected readings are counted too.
func (a *app) flushMetrics(ctx context.Context) error {
	if a.metrics == nil || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return err
	}
	logr.FromContextOrDiscard(ctx).V(logging.DEBUG).Info("Wrote metrics textfile", "path", a.cfg.Metrics.Textfile)
	return nil
}

// withMetrics wraps a RunE so that the metrics textfile is written after it.
// A command error takes precedence over a textfile error.
func (a *app) withMetrics(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if ferr := a.flushMetrics(cmd.Context()); ferr != nil {
			if err != nil {
				logr.FromContextOrDiscard(cmd.Context()).Error(ferr, "Failed to write metrics textfile")
				return err
			}
			return ferr
		}
		return err
	}
}
