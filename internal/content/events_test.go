package content

import (
	"testing"

	"fromagerie/internal/building"
	"fromagerie/internal/config"
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

func TestPool_PassesValidationOnEveryPreset(t *testing.T) {
	for _, tc := range []struct {
		name string
		bal  config.Balance
	}{
		{"realistic", config.Realistic()},
		{"forgiving", config.Forgiving()},
		{"brutal", config.Brutal()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.bal); err != nil {
				t.Fatalf("catalog rejected: %v", err)
			}
			if errs := event.CheckMandatoryReachable(Pool(tc.bal), tc.bal.TotalMonths); len(errs) > 0 {
				t.Fatalf("unreachable mandatory events: %v", errs)
			}
		})
	}
}

func TestPool_CarriesTheQuietMonthFallback(t *testing.T) {
	catalog, err := NewCatalog(config.Realistic())
	if err != nil {
		t.Fatal(err)
	}
	fb := catalog.Fallback()
	if fb == nil {
		t.Fatal("no fallback event")
	}
	if !fb.Recurring || fb.Cooldown != 0 || fb.Condition != nil {
		t.Fatalf("fallback must be unconditional and always available: %+v", fb)
	}
}

func TestCashCrisis_GatedOnEmptyBankAndLoanRoom(t *testing.T) {
	bal := config.Realistic()
	catalog, err := NewCatalog(bal)
	if err != nil {
		t.Fatal(err)
	}
	ev, ok := catalog.Get("cash_crisis")
	if !ok {
		t.Fatal("cash_crisis missing")
	}

	if ev.Condition(state.State{Bank: 5000}) {
		t.Fatal("should not fire with money in the bank")
	}
	if !ev.Condition(state.State{Bank: 0}) {
		t.Fatal("should fire on an empty bank")
	}
	if ev.Condition(state.State{Bank: 0, Loan: bal.MaxLoan}) {
		t.Fatal("maxed loan leaves no rescue; the run ends instead")
	}
}

func TestBuildingDeadline_DynamicAffordability(t *testing.T) {
	bal := config.Realistic()
	catalog, err := NewCatalog(bal)
	if err != nil {
		t.Fatal(err)
	}
	ev, ok := catalog.Get(building.DeadlineEventID)
	if !ok {
		t.Fatal("building deadline missing")
	}
	if !ev.Mandatory || !ev.DynamicChoices {
		t.Fatalf("deadline must be mandatory with dynamic choices: %+v", ev)
	}

	poor := ev.ResolveChoices(state.State{Bank: 1000, BuildingOfferReceived: true})
	for _, c := range poor {
		if c.Action == event.ActionSignBuilding {
			t.Fatal("sign offered to an unaffordable bank")
		}
	}

	rich := ev.ResolveChoices(state.State{Bank: bal.BuildingCost, BuildingOfferReceived: true})
	var signed bool
	for _, c := range rich {
		if c.Action == event.ActionSignBuilding {
			signed = true
		}
	}
	if !signed {
		t.Fatal("sign missing for an affordable bank")
	}
}

func TestRacletteSeason_ScalesWithRange(t *testing.T) {
	catalog, err := NewCatalog(config.Realistic())
	if err != nil {
		t.Fatal(err)
	}
	ev, ok := catalog.Get("raclette_season")
	if !ok {
		t.Fatal("raclette_season missing")
	}

	var scaling *event.Choice
	for i := range ev.Choices {
		if ev.Choices[i].Conditional != nil {
			scaling = &ev.Choices[i]
			break
		}
	}
	if scaling == nil {
		t.Fatal("expected a range-scaled choice")
	}

	small := scaling.Conditional(state.State{RacletteTypes: 0})
	big := scaling.Conditional(state.State{RacletteTypes: 10})
	if big.Bank <= small.Bank {
		t.Fatalf("wider raclette range should pay more: %d vs %d", big.Bank, small.Bank)
	}
}

func TestSeasonalEvents_KeyToTheCalendar(t *testing.T) {
	bal := config.Realistic()
	catalog, err := NewCatalog(bal)
	if err != nil {
		t.Fatal(err)
	}

	ev, ok := catalog.Get("summer_slowdown")
	if !ok {
		t.Fatal("summer_slowdown missing")
	}

	// Run month 14 is August of year two under a July start.
	august := state.State{MonthsPlayed: 13}
	december := state.State{MonthsPlayed: 17}
	if !ev.Condition(august) {
		t.Fatal("should be eligible in August")
	}
	if ev.Condition(december) {
		t.Fatal("should not be eligible in December")
	}
}

func TestMandatoryStoryBeats_Present(t *testing.T) {
	catalog, err := NewCatalog(config.Realistic())
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []event.ID{
		"first_christmas", "christmas_market", "christmas_rush", "christmas_day",
		"adopt_dog", "meet_lucas",
		building.OfferEventID, building.DeadlineEventID, building.ExtendedEventID,
	} {
		ev, ok := catalog.Get(id)
		if !ok {
			t.Fatalf("story beat %s missing", id)
		}
		if !ev.Mandatory {
			t.Fatalf("story beat %s must be mandatory", id)
		}
	}
}
