// Package telemetry tracks in-process counters for the moderation
// service. Counters are cheap atomics, safe to bump from request
// handlers, and exposed through the health endpoint.
package telemetry

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics aggregates request outcomes since process start.
type Metrics struct {
	started time.Time

	requests  atomic.Int64
	allowed   atomic.Int64
	flagged   atomic.Int64
	blocked   atomic.Int64
	errors    atomic.Int64
	cacheHits atomic.Int64

	mu      sync.Mutex
	totalMS float64
	samples int64
	maxMS   float64
}

var global = &Metrics{started: time.Now()}

// Global returns the process-wide metrics instance.
func Global() *Metrics { return global }

// RecordVerdict counts one completed evaluation.
func (m *Metrics) RecordVerdict(action string, elapsedMS float64) {
	m.requests.Add(1)
	switch action {
	case "ALLOW":
		m.allowed.Add(1)
	case "FLAG":
		m.flagged.Add(1)
	case "BLOCK":
		m.blocked.Add(1)
	}

	m.mu.Lock()
	m.totalMS += elapsedMS
	m.samples++
	if elapsedMS > m.maxMS {
		m.maxMS = elapsedMS
	}
	m.mu.Unlock()
}

// RecordError counts a failed request.
func (m *Metrics) RecordError() { m.errors.Add(1) }

// RecordCacheHit counts a verdict served from cache.
func (m *Metrics) RecordCacheHit() { m.cacheHits.Add(1) }

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	UptimeSeconds float64 `json:"uptime_seconds"`
	Requests      int64   `json:"requests"`
	Allowed       int64   `json:"allowed"`
	Flagged       int64   `json:"flagged"`
	Blocked       int64   `json:"blocked"`
	Errors        int64   `json:"errors"`
	CacheHits     int64   `json:"cache_hits"`
	AvgLatencyMS  float64 `json:"avg_latency_ms"`
	MaxLatencyMS  float64 `json:"max_latency_ms"`
}

// Read returns the current counter values.
func (m *Metrics) Read() Snapshot {
	m.mu.Lock()
	avg := 0.0
	if m.samples > 0 {
		avg = m.totalMS / float64(m.samples)
	}
	maxMS := m.maxMS
	m.mu.Unlock()

	return Snapshot{
		UptimeSeconds: time.Since(m.started).Seconds(),
		Requests:      m.requests.Load(),
		Allowed:       m.allowed.Load(),
		Flagged:       m.flagged.Load(),
		Blocked:       m.blocked.Load(),
		Errors:        m.errors.Load(),
		CacheHits:     m.cacheHits.Load(),
		AvgLatencyMS:  avg,
		MaxLatencyMS:  maxMS,
	}
}
