// Package telemetry records which events fired when, for the balance and
// regression tooling that replays runs.
package telemetry

import (
	"sync"

	"fromagerie/internal/event"
)

// Firing is one resolved event in a run.
type Firing struct {
	Month   int        `json:"month"`
	EventID event.ID   `json:"event_id"`
	Type    event.Type `json:"type"`
	Choice  int        `json:"choice"`
}

// Log stores firings in memory, in resolution order.
type Log struct {
	mu      sync.RWMutex
	firings []Firing
}

func NewLog() *Log {
	return &Log{firings: make([]Firing, 0)}
}

func (l *Log) Record(f Firing) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.firings = append(l.firings, f)
}

// List returns the firings in order.
func (l *Log) List() []Firing {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Firing, len(l.firings))
	copy(out, l.firings)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.firings)
}
