package sim

import (
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

// Weights score a choice by its declared and conditional effects plus the
// flags it would set. Positive weight means the policy wants more of the
// attribute. Ties go to the earliest-declared choice, so a policy is
// fully deterministic.
type Weights struct {
	Bank       float64
	Stress     float64
	Energy     float64
	Family     float64
	Reputation float64
	Autonomy   float64
	Cheese     float64

	// Flag values: added when the choice would set the flag true,
	// subtracted when it would explicitly clear it.
	OpenSunday   float64
	OwnsBuilding float64
	Extension    float64
	HireStaff    float64
}

// Policy turns weights into a ChoiceFunc.
func (w Weights) Policy() ChoiceFunc {
	return func(_ *event.Event, choices []event.Choice, s state.State) int {
		best, bestScore := 0, w.score(choices[0], s)
		for i := 1; i < len(choices); i++ {
			if sc := w.score(choices[i], s); sc > bestScore {
				best, bestScore = i, sc
			}
		}
		return best
	}
}

func (w Weights) score(ch event.Choice, s state.State) float64 {
	eff := ch.Effects
	if ch.Conditional != nil {
		c := ch.Conditional(s)
		eff.Bank += c.Bank
		eff.Stress += c.Stress
		eff.Energy += c.Energy
		eff.Family += c.Family
		eff.Reputation += c.Reputation
		eff.Autonomy += c.Autonomy
		eff.CheeseTypes += c.CheeseTypes
	}

	score := w.Bank*float64(eff.Bank) +
		w.Stress*float64(eff.Stress) +
		w.Energy*float64(eff.Energy) +
		w.Family*float64(eff.Family) +
		w.Reputation*float64(eff.Reputation) +
		w.Autonomy*float64(eff.Autonomy) +
		w.Cheese*float64(eff.CheeseTypes+eff.RacletteTypes)

	if f := ch.Flags; f != nil {
		score += flagValue(f.OpenSunday, w.OpenSunday)
		score += flagValue(f.OwnsBuilding, w.OwnsBuilding)
		score += flagValue(f.BuildingDelayPaid, w.Extension)
		score += flagValue(f.HasLucas, w.HireStaff)
		score += flagValue(f.HasHenry, w.HireStaff)
	}
	return score
}

func flagValue(p *bool, weight float64) float64 {
	if p == nil {
		return 0
	}
	if *p {
		return weight
	}
	return -weight
}

// Playstyle names the authored policies the balance tooling runs.
type Playstyle string

const (
	StyleGrind       Playstyle = "grind"
	StyleFamilyFirst Playstyle = "family_first"
	StyleReasonable  Playstyle = "reasonable"
	StyleMoneyFirst  Playstyle = "money_first"
	StyleHealthFirst Playstyle = "health_first"
	StyleNeutral     Playstyle = "neutral"
)

// Playstyles lists every authored policy in reporting order.
func Playstyles() []Playstyle {
	return []Playstyle{
		StyleGrind, StyleFamilyFirst, StyleReasonable,
		StyleMoneyFirst, StyleHealthFirst, StyleNeutral,
	}
}

// PolicyFor returns the ChoiceFunc for a named playstyle.
//
// Grind opens the extra trading day, favors revenue, signs the building
// whenever it can and takes the extension when it can't. Family-first
// never opens Sundays, pays for family time, and lets the building go
// rather than strip the household bare.
func PolicyFor(style Playstyle) ChoiceFunc {
	switch style {
	case StyleGrind, StyleMoneyFirst:
		return Weights{
			Bank:         1,
			Reputation:   15,
			Cheese:       60,
			Autonomy:     5,
			OpenSunday:   2000,
			OwnsBuilding: 100000,
			Extension:    5000,
			HireStaff:    500,
		}.Policy()
	case StyleFamilyFirst:
		return Weights{
			Bank:       0.05,
			Stress:     -120,
			Energy:     40,
			Family:     200,
			OpenSunday: -2000,
			HireStaff:  800,
		}.Policy()
	case StyleHealthFirst:
		return Weights{
			Bank:       0.1,
			Stress:     -200,
			Energy:     100,
			Family:     50,
			Autonomy:   30,
			OpenSunday: -2000,
			HireStaff:  1000,
		}.Policy()
	case StyleReasonable:
		return Weights{
			Bank:         0.5,
			Stress:       -40,
			Energy:       20,
			Family:       60,
			Reputation:   15,
			Cheese:       30,
			Autonomy:     15,
			OwnsBuilding: 50000,
			HireStaff:    800,
		}.Policy()
	default:
		return Weights{
			Bank:       0.3,
			Stress:     -30,
			Family:     30,
			Reputation: 10,
			Cheese:     20,
		}.Policy()
	}
}
