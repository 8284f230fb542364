package dispatch

import (
	"sync"
	"time"
)

// Metrics collects per-command dispatch statistics. All methods are safe
// for concurrent use and nil-safe, so callers never guard their calls.
type Metrics struct {
	mu       sync.Mutex
	commands map[string]*CommandStats
}

// CommandStats is a snapshot of one command's dispatch history.
type CommandStats struct {
	Dispatches uint64
	Failures   uint64
	Panics     uint64
	TotalTime  time.Duration
}

// AverageTime returns the mean handler latency, or zero when the command
// has never been dispatched.
func (s CommandStats) AverageTime() time.Duration {
	if s.Dispatches == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Dispatches)
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{commands: make(map[string]*CommandStats)}
}

func (m *Metrics) record(name string, d time.Duration, failed, panicked bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.commands[name]
	if s == nil {
		s = &CommandStats{}
		m.commands[name] = s
	}
	s.Dispatches++
	s.TotalTime += d
	if failed {
		s.Failures++
	}
	if panicked {
		s.Panics++
	}
}

// Stats returns the statistics recorded under name.
func (m *Metrics) Stats(name string) CommandStats {
	if m == nil {
		return CommandStats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if s := m.commands[name]; s != nil {
		return *s
	}
	return CommandStats{}
}

// Snapshot returns a copy of all recorded statistics.
func (m *Metrics) Snapshot() map[string]CommandStats {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]CommandStats, len(m.commands))
	for name, s := range m.commands {
		out[name] = *s
	}
	return out
}
