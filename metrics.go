package ecospold

import (
	"sync/atomic"
	"time"
)

// Metrics tracks parser activity using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	parsesTotal  atomic.Uint64
	parsesFailed atomic.Uint64

	validationsTotal  atomic.Uint64
	validationsFailed atomic.Uint64

	serializationsTotal atomic.Uint64

	// Timing (stored as nanoseconds)
	parseTimeTotal atomic.Uint64
	parseTimeMax   atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordParse records a completed parse attempt.
func (m *Metrics) RecordParse(duration time.Duration, ok bool) {
	m.parsesTotal.Add(1)
	if !ok {
		m.parsesFailed.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.parseTimeTotal.Add(ns)

	// Update max (CAS loop)
	for {
		old := m.parseTimeMax.Load()
		if ns <= old {
			break
		}
		if m.parseTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(valid bool) {
	m.validationsTotal.Add(1)
	if !valid {
		m.validationsFailed.Add(1)
	}
}

// RecordSerialization records a completed serialization.
func (m *Metrics) RecordSerialization() {
	m.serializationsTotal.Add(1)
}

// Parses returns the total number of parse attempts.
func (m *Metrics) Parses() uint64 {
	return m.parsesTotal.Load()
}

// ParseFailures returns the number of failed parse attempts.
func (m *Metrics) ParseFailures() uint64 {
	return m.parsesFailed.Load()
}

// Validations returns the total number of validations.
func (m *Metrics) Validations() uint64 {
	return m.validationsTotal.Load()
}

// ValidationFailures returns the number of non-conformant validations.
func (m *Metrics) ValidationFailures() uint64 {
	return m.validationsFailed.Load()
}

// Serializations returns the total number of serializations.
func (m *Metrics) Serializations() uint64 {
	return m.serializationsTotal.Load()
}

// ParseTimeTotal returns the cumulative time spent parsing.
func (m *Metrics) ParseTimeTotal() time.Duration {
	return time.Duration(m.parseTimeTotal.Load())
}

// ParseTimeMax returns the longest single parse.
func (m *Metrics) ParseTimeMax() time.Duration {
	return time.Duration(m.parseTimeMax.Load())
}
