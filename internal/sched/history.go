package sched

import (
	"sync"

	"fromagerie/internal/event"
)

// Firing is one event's consumption record.
type Firing struct {
	Count     int `json:"count"`
	LastMonth int `json:"last_month"`
}

// History is the mutable firing bookkeeping, kept apart from the catalog
// so the authored pool stays read-only and shareable across runs.
type History struct {
	mu      sync.RWMutex
	firings map[event.ID]Firing
}

func NewHistory() *History {
	return &History{firings: map[event.ID]Firing{}}
}

// Mark records a resolved firing. Callers must only mark after the choice
// actually resolved: a selected-but-abandoned event is not consumed.
func (h *History) Mark(id event.ID, month int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	f := h.firings[id]
	f.Count++
	f.LastMonth = month
	h.firings[id] = f
}

// Fired reports whether the event has ever resolved.
func (h *History) Fired(id event.ID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.firings[id].Count > 0
}

// Get returns the firing record for an event.
func (h *History) Get(id event.ID) (Firing, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	f, ok := h.firings[id]
	return f, ok
}

// Snapshot copies the full record set for persistence.
func (h *History) Snapshot() map[event.ID]Firing {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[event.ID]Firing, len(h.firings))
	for id, f := range h.firings {
		out[id] = f
	}
	return out
}

// Restore replaces the record set, for resuming a serialized run.
func (h *History) Restore(firings map[event.ID]Firing) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.firings = make(map[event.ID]Firing, len(firings))
	for id, f := range firings {
		h.firings[id] = f
	}
}
