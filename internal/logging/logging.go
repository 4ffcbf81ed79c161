// Package logging builds the logr.Logger used across loshu-grid.
//
// Loggers are zap backed (through zapr) and follow logr verbosity: call sites
// use logger.V(logging.DEBUG).Info(...) for detail that is hidden at the
// default level.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V().
const (
	DEBUG = 1
	TRACE = 2
)

// Default option values.
const (
	DefaultLevel = "info"
)

// Options configures NewLogger.
type Options struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string
	// Verbosity lowers the level so that V(n) lines with n <= Verbosity are
	// emitted. Zero leaves Level in charge. It is rejected together with a
	// Level above info.
	Verbosity int
	// Development switches to the human readable console encoder.
	Development bool
	// Writer receives log lines. Defaults to os.Stderr.
	Writer io.Writer
}

var (
	mu  sync.RWMutex
	log = logr.Discard()
)

// Log returns the process-wide logger. It discards everything until SetLogger
// is called.
func Log() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the process-wide logger.
func SetLogger(l logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// NewLogger builds a logger from opts.
func NewLogger(opts Options) (logr.Logger, error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return logr.Discard(), fmt.Errorf("parsing log level: %w", err)
	}
	if opts.Verbosity < 0 {
		return logr.Discard(), fmt.Errorf("verbosity must be >= 0, got %d", opts.Verbosity)
	}
	// logr V(n) maps onto zap level -n. Verbosity only adds detail below
	// info; it cannot be combined with a level that hides info.
	if opts.Verbosity > 0 {
		if level > zapcore.InfoLevel {
			return logr.Discard(), fmt.Errorf("verbosity %d requires log level info or debug, got %s", opts.Verbosity, level)
		}
		level = min(level, zapcore.Level(-opts.Verbosity))
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var encoder zapcore.Encoder
	if opts.Development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zapr.NewLogger(zap.New(core)), nil
}

// NewTestLogger installs a development logger at TRACE verbosity writing to
// stderr and returns it. Test suites call it before RunSpecs.
func NewTestLogger() logr.Logger {
	l, err := NewLogger(Options{
		Level:       "debug",
		Verbosity:   TRACE,
		Development: true,
	})
	if err != nil {
		panic(err)
	}
	SetLogger(l)
	return l
}
