package event

import "fmt"

// FallbackID is the quiet-month event every catalog must carry. The
// scheduler returns it when no other candidate is eligible.
const FallbackID ID = "quiet_month"

// Catalog is the read-only authored pool, shared across simulation runs.
// Declaration order is preserved; it is the deterministic tie-break for
// mandatory events.
type Catalog struct {
	events []Event
	byID   map[ID]*Event
}

// NewCatalog validates the pool and fails fast on authoring defects.
func NewCatalog(events []Event) (*Catalog, error) {
	if errs := Validate(events); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation: %d defect(s), first: %w", len(errs), errs[0])
	}

	c := &Catalog{
		events: events,
		byID:   make(map[ID]*Event, len(events)),
	}
	for i := range c.events {
		c.byID[c.events[i].ID] = &c.events[i]
	}
	return c, nil
}

// All returns the pool in declaration order. Callers must not mutate.
func (c *Catalog) All() []Event { return c.events }

// Get looks an event up by id.
func (c *Catalog) Get(id ID) (*Event, bool) {
	ev, ok := c.byID[id]
	return ev, ok
}

// Fallback returns the quiet-month event. Its presence is a load-time
// invariant, so lookup cannot fail on a validated catalog.
func (c *Catalog) Fallback() *Event {
	return c.byID[FallbackID]
}

// Mandatory returns the mandatory events in declaration order.
func (c *Catalog) Mandatory() []*Event {
	var out []*Event
	for i := range c.events {
		if c.events[i].Mandatory {
			out = append(out, &c.events[i])
		}
	}
	return out
}
