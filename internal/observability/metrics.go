package observability

import (
	"sync"
	"time"
)

type requestKey struct {
	Path   string
	Method string
	Status int
}

type errorKey struct {
	Path   string
	Method string
	Code   string
}

// Metrics keeps per-route counters in memory: request totals with cumulative
// latency, and error totals by domain error code.
type Metrics struct {
	mu        sync.Mutex
	requests  map[requestKey]int64
	latencies map[requestKey]time.Duration
	errors    map[errorKey]int64
}

// NewMetrics initializes empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests:  make(map[requestKey]int64),
		latencies: make(map[requestKey]time.Duration),
		errors:    make(map[errorKey]int64),
	}
}

// RecordRequest counts a completed request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey{Path: path, Method: method, Status: status}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
	m.latencies[key] += duration
}

// RecordError counts a request that failed with the given error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := errorKey{Path: path, Method: method, Code: code}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[key]++
}

// RequestCount returns the number of requests recorded for a route/status.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey{Path: path, Method: method, Status: status}]
}

// ErrorCount returns the number of errors recorded for a route/code.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[errorKey{Path: path, Method: method, Code: code}]
}
