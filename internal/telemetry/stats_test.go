package telemetry

import (
	"testing"

	"fromagerie/internal/event"
)

func statsCatalog(t *testing.T) *event.Catalog {
	t.Helper()
	choices := []event.Choice{{Label: "ok"}}
	catalog, err := event.NewCatalog([]event.Event{
		{ID: "opening_day", Type: event.TypeMilestone, FirstMonth: 1, LastMonth: 1, Mandatory: true, Choices: choices},
		{ID: "first_december", Type: event.TypeSeasonal, FirstMonth: 6, LastMonth: 6, Mandatory: true, Choices: choices},
		{ID: "late_delivery", Type: event.TypeCrisis, FirstMonth: 1, LastMonth: 42, Choices: choices},
		{ID: event.FallbackID, Type: event.TypeRoutine, FirstMonth: 1, LastMonth: 42, Recurring: true, Choices: choices},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return catalog
}

func TestCalculateStats(t *testing.T) {
	log := NewLog()
	log.Record(Firing{Month: 1, EventID: "opening_day", Type: event.TypeMilestone, Choice: 0})
	log.Record(Firing{Month: 2, EventID: event.FallbackID, Type: event.TypeRoutine, Choice: 0})
	log.Record(Firing{Month: 3, EventID: "late_delivery", Type: event.TypeCrisis, Choice: 1})
	log.Record(Firing{Month: 4, EventID: event.FallbackID, Type: event.TypeRoutine, Choice: 0})

	stats := CalculateStats(log.List(), statsCatalog(t))

	if stats.EventsFired != 4 {
		t.Fatalf("events fired = %d, want 4", stats.EventsFired)
	}
	if stats.Months != 4 {
		t.Fatalf("months = %d, want 4", stats.Months)
	}
	if stats.QuietMonths != 2 {
		t.Fatalf("quiet months = %d, want 2", stats.QuietMonths)
	}
	if stats.ByType[event.TypeCrisis] != 1 || stats.ByType[event.TypeRoutine] != 2 {
		t.Fatalf("by-type counts off: %v", stats.ByType)
	}
	if len(stats.MandatoryFired) != 1 || stats.MandatoryFired[0] != "opening_day" {
		t.Fatalf("mandatory fired = %v", stats.MandatoryFired)
	}
	if len(stats.MandatoryMissed) != 1 || stats.MandatoryMissed[0] != "first_december" {
		t.Fatalf("mandatory missed = %v", stats.MandatoryMissed)
	}
}

func TestLog_ListIsACopy(t *testing.T) {
	log := NewLog()
	log.Record(Firing{Month: 1, EventID: "opening_day"})

	list := log.List()
	list[0].EventID = "tampered"

	if got := log.List()[0].EventID; got != "opening_day" {
		t.Fatalf("log mutated through List copy: %s", got)
	}
	if log.Len() != 1 {
		t.Fatalf("len = %d, want 1", log.Len())
	}
}
