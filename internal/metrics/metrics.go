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

// Package metrics counts readings with Prometheus collectors.
//
// A CLI run is short lived, so nothing is served over HTTP. Instead the
// registry can be written in text exposition format for the node_exporter
// textfile collector:
//
//	m := metrics.New()
//	engine := pipeline.NewEngine(pipeline.WithRecorder(m))
//	...
//	_ = m.WriteTextfile("/var/lib/node_exporter/loshu.prom")
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/numerology-dev/loshu-grid/internal/engines/pipeline"
)

const namespace = "loshu"

// Outcome label values of loshu_readings_total.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	Readings      *prometheus.CounterVec
	ReadingErrors *prometheus.CounterVec
	MissingDigits *prometheus.CounterVec
	KuaNumbers    *prometheus.CounterVec
}

var _ pipeline.Recorder = (*Metrics)(nil)

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Readings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_total",
			Help:      "Total number of readings requested, by outcome.",
		}, []string{"outcome"}),
		ReadingErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reading_errors_total",
			Help:      "Total number of rejected readings, by reason.",
		}, []string{"reason"}),
		MissingDigits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "missing_digits_total",
			Help:      "Number of readings in which each digit 1-9 was missing.",
		}, []string{"digit"}),
		KuaNumbers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kua_numbers_total",
			Help:      "Number of readings per computed Kua number.",
		}, []string{"kua"}),
	}
	m.registry.MustRegister(m.Readings, m.ReadingErrors, m.MissingDigits, m.KuaNumbers)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveReading implements pipeline.Recorder.
func (m *Metrics) ObserveReading(r *pipeline.Reading) {
	m.Readings.WithLabelValues(OutcomeSuccess).Inc()
	m.KuaNumbers.WithLabelValues(strconv.Itoa(r.Values.Kua)).Inc()
	for _, d := range r.Missing {
		m.MissingDigits.WithLabelValues(strconv.Itoa(d)).Inc()
	}
}

// ObserveError implements pipeline.Recorder.
func (m *Metrics) ObserveError(err error) {
	m.Readings.WithLabelValues(OutcomeError).Inc()
	m.ReadingErrors.WithLabelValues(pipeline.ErrorReason(err)).Inc()
}

// WriteTextfile atomically writes the registry to path in text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
