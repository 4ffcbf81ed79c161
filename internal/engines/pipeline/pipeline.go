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

// Package pipeline turns a raw date and gender into a complete Lo Shu reading.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/numerology-dev/loshu-grid/internal/logging"
	"github.com/numerology-dev/loshu-grid/internal/loshu"
	"github.com/numerology-dev/loshu-grid/internal/numerology"
)

// Reading is the full result of one computation. It is never partially
// populated: Compute returns either a Reading or an error.
type Reading struct {
	BirthDate numerology.BirthDate
	Gender    numerology.Gender
	Values    numerology.DerivedValues
	Multiset  loshu.DigitMultiset
	Missing   []int
	Grid      loshu.AnnotatedGrid
	// ComputedAt is stamped from the engine clock.
	ComputedAt time.Time
}

// Recorder observes pipeline outcomes. The metrics package implements it.
type Recorder interface {
	ObserveReading(r *Reading)
	ObserveError(err error)
}

// Engine computes readings. The zero value is not usable; use NewEngine.
type Engine struct {
	clock    clock.PassiveClock
	recorder Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for ComputedAt.
func WithClock(c clock.PassiveClock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithRecorder attaches a Recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// NewEngine creates an Engine with the real clock and no recorder.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Compute runs the default engine.
func Compute(ctx context.Context, dob, gender string) (*Reading, error) {
	return defaultEngine.Compute(ctx, dob, gender)
}

// Compute parses dob and gender, derives Mulank, Bhagyank and Kua, and builds
// the annotated grid. Validation stops at the first error, date before gender.
func (e *Engine) Compute(ctx context.Context, dob, gender string) (*Reading, error) {
	logger := logr.FromContextOrDiscard(ctx)

	r, err := e.compute(dob, gender)
	if err != nil {
		logger.V(logging.DEBUG).Info("Reading rejected", "dob", dob, "gender", gender, "error", err.Error())
		if e.recorder != nil {
			e.recorder.ObserveError(err)
		}
		return nil, err
	}

	logger.V(logging.DEBUG).Info("Computed reading",
		"dob", r.BirthDate.String(),
		"gender", r.Gender,
		"mulank", r.Values.Mulank,
		"bhagyank", r.Values.Bhagyank,
		"kua", r.Values.Kua,
		"missing", r.Missing)
	logger.V(logging.TRACE).Info("Annotated grid", "grid", r.Grid.Rows(), "digits", r.Multiset.Total())

	if e.recorder != nil {
		e.recorder.ObserveReading(r)
	}
	return r, nil
}

func (e *Engine) compute(dob, gender string) (*Reading, error) {
	date, err := numerology.ParseBirthDate(dob)
	if err != nil {
		return nil, err
	}
	g, err := numerology.ParseGender(gender)
	if err != nil {
		return nil, err
	}
	values, err := numerology.Derive(date, g)
	if err != nil {
		return nil, fmt.Errorf("deriving values for %s: %w", date, err)
	}
	analysis, err := loshu.Analyze(date.Digits(), values.Mulank, values.Bhagyank)
	if err != nil {
		return nil, fmt.Errorf("analyzing digits of %s: %w", date, err)
	}

	return &Reading{
		BirthDate:  date,
		Gender:     g,
		Values:     values,
		Multiset:   analysis.Multiset,
		Missing:    analysis.Missing,
		Grid:       analysis.Grid,
		ComputedAt: e.clock.Now(),
	}, nil
}

// ErrorReason maps a pipeline error onto a short, stable reason string.
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, numerology.ErrInvalidDateFormat):
		return "invalid_date_format"
	case errors.Is(err, numerology.ErrInvalidGender):
		return "invalid_gender"
	case errors.Is(err, numerology.ErrInvalidDigitInput):
		return "invalid_digit_input"
	default:
		return "unknown"
	}
}
