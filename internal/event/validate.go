package event

import "fmt"

var knownActions = map[Action]bool{
	ActionNone:          true,
	ActionTakeLoan:      true,
	ActionSellEquipment: true,
	ActionFamilyHelp:    true,
	ActionSetFineFood:   true,
	ActionSignBuilding:  true,
}

// Validate checks the authored pool for structural defects. These are
// authoring bugs, not runtime conditions: a failing pool must never be
// played, so NewCatalog refuses it outright.
func Validate(events []Event) []error {
	var errs []error

	if len(events) == 0 {
		return []error{fmt.Errorf("event pool is empty")}
	}

	seen := make(map[ID]bool, len(events))
	hasFallback := false

	for i := range events {
		ev := &events[i]
		prefix := fmt.Sprintf("event #%d (%s)", i, ev.ID)

		if ev.ID == "" {
			errs = append(errs, fmt.Errorf("%s: missing id", prefix))
		} else if seen[ev.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", prefix))
		}
		seen[ev.ID] = true

		if ev.FirstMonth < 1 || ev.LastMonth < ev.FirstMonth {
			errs = append(errs, fmt.Errorf("%s: bad scheduling window [%d,%d]", prefix, ev.FirstMonth, ev.LastMonth))
		}

		if ev.DynamicChoices {
			if ev.GetChoices == nil {
				errs = append(errs, fmt.Errorf("%s: dynamic choices without a generator", prefix))
			}
		} else if len(ev.Choices) == 0 {
			errs = append(errs, fmt.Errorf("%s: no choices", prefix))
		} else if len(ev.Choices) > 4 {
			errs = append(errs, fmt.Errorf("%s: %d choices, max 4", prefix, len(ev.Choices)))
		}

		// Actions route to a fixed handler set in the resolver; a typo
		// here would otherwise only surface when the choice is played.
		for j := range ev.Choices {
			if !knownActions[ev.Choices[j].Action] {
				errs = append(errs, fmt.Errorf("%s: choice #%d: unknown action %q", prefix, j, ev.Choices[j].Action))
			}
		}

		if ev.Recurring && ev.Unique {
			errs = append(errs, fmt.Errorf("%s: recurring and unique are mutually exclusive", prefix))
		}
		if ev.Recurring && ev.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("%s: negative cooldown", prefix))
		}

		// A mandatory event must be consumable exactly once.
		if ev.Mandatory && ev.Recurring {
			errs = append(errs, fmt.Errorf("%s: mandatory event cannot be recurring", prefix))
		}

		if ev.ID == FallbackID {
			hasFallback = true
			if ev.Condition != nil {
				errs = append(errs, fmt.Errorf("%s: fallback must be unconditional", prefix))
			}
			if !ev.Recurring || ev.Cooldown != 0 {
				errs = append(errs, fmt.Errorf("%s: fallback must be recurring with no cooldown", prefix))
			}
		}
	}

	if !hasFallback {
		errs = append(errs, fmt.Errorf("missing fallback event %q", FallbackID))
	}

	return errs
}

// CheckMandatoryReachable verifies every mandatory window opens inside the
// run. Condition reachability is not statically decidable; the balance
// suite covers that with full playthroughs.
func CheckMandatoryReachable(events []Event, totalMonths int) []error {
	var errs []error
	for i := range events {
		ev := &events[i]
		if !ev.Mandatory {
			continue
		}
		if ev.FirstMonth > totalMonths {
			errs = append(errs, fmt.Errorf("mandatory event %s opens at month %d, after the %d-month run", ev.ID, ev.FirstMonth, totalMonths))
		}
	}
	return errs
}
