package telemetry

import (
	"fromagerie/internal/event"
)

// Stats summarizes one run's firing log for balance reporting.
type Stats struct {
	Months          int                `json:"months"`
	EventsFired     int                `json:"events_fired"`
	ByType          map[event.Type]int `json:"by_type"`
	QuietMonths     int                `json:"quiet_months"`
	MandatoryFired  []event.ID         `json:"mandatory_fired"`
	MandatoryMissed []event.ID         `json:"mandatory_missed"`
}

// CalculateStats computes run stats from a firing log against the catalog
// it was played with.
func CalculateStats(firings []Firing, catalog *event.Catalog) Stats {
	stats := Stats{
		ByType: make(map[event.Type]int),
	}

	fired := make(map[event.ID]bool, len(firings))
	for _, f := range firings {
		stats.EventsFired++
		stats.ByType[f.Type]++
		if f.Month > stats.Months {
			stats.Months = f.Month
		}
		if f.EventID == event.FallbackID {
			stats.QuietMonths++
		}
		fired[f.EventID] = true
	}

	for _, ev := range catalog.Mandatory() {
		if fired[ev.ID] {
			stats.MandatoryFired = append(stats.MandatoryFired, ev.ID)
		} else {
			stats.MandatoryMissed = append(stats.MandatoryMissed, ev.ID)
		}
	}

	return stats
}
