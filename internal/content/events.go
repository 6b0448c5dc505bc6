// Package content holds the authored event pool for the cheese-shop run.
// Events are built once at startup against a balance sheet and never
// mutated afterwards; firing bookkeeping lives in the scheduler.
package content

import (
	"fromagerie/internal/building"
	"fromagerie/internal/config"
	"fromagerie/internal/event"
	"fromagerie/internal/state"
)

// Pool returns the full authored pool in declaration order.
func Pool(bal config.Balance) []event.Event {
	// current calendar month for a state (run month = MonthsPlayed+1)
	calMonth := func(s state.State) int {
		return (bal.StartMonth-1+s.MonthsPlayed)%12 + 1
	}

	return []event.Event{
		{
			ID:         "cash_crisis",
			Type:       event.TypeCrisis,
			Title:      "The register is empty",
			Text:       "Rent is due, the supplier wants payment, and the account reads zero.",
			FirstMonth: 1, LastMonth: bal.TotalMonths,
			Priority:  999,
			Recurring: true, Cooldown: 1,
			Condition: func(s state.State) bool {
				return s.Bank <= 0 && s.Loan < bal.MaxLoan
			},
			Choices: []event.Choice{
				{
					Label:   "Take an emergency loan",
					Effects: event.Effects{Stress: 15},
					Action:  event.ActionTakeLoan,
				},
				{
					Label:   "Sell the spare equipment",
					Effects: event.Effects{Reputation: -5},
					Action:  event.ActionSellEquipment,
				},
				{
					Label:   "Ask the family for help",
					Effects: event.Effects{Family: -15},
					Action:  event.ActionFamilyHelp,
				},
			},
		},
		{
			ID:         "sunday_opening",
			Type:       event.TypeDecision,
			Title:      "The Sunday question",
			Text:       "Every other shop on the street closes Sundays. The market crowd doesn't.",
			FirstMonth: 1, LastMonth: 1,
			Priority: 100,
			Unique:   true,
			Choices: []event.Choice{
				{
					Label:   "Open Sundays - catch the market crowd",
					Effects: event.Effects{Stress: 10, Energy: -5},
					Flags:   &state.FlagPatch{OpenSunday: state.Bool(true)},
				},
				{
					Label:   "Keep Sundays for yourself",
					Effects: event.Effects{Stress: -5, Family: 5, Energy: 5},
					Flags:   &state.FlagPatch{OpenSunday: state.Bool(false)},
				},
			},
		},
		{
			ID:         "stock_reality",
			Type:       event.TypeCrisis,
			Title:      "What the old owner left behind",
			Text:       "Half the back room is unsellable stock. It has to go, one way or another.",
			FirstMonth: 1, LastMonth: 2,
			Priority: 95,
			Choices: []event.Choice{
				{
					Label:   "Flea-market weekend - sell it yourself",
					Effects: event.Effects{Stress: 15, Energy: -15},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: 5, Autonomy: 5}
					},
				},
				{
					Label:   "Let the guy with the van take the lot",
					Effects: event.Effects{Bank: 1500, Stress: 5, Energy: -5},
				},
				{
					Label:   "Pay to have it hauled away",
					Effects: event.Effects{Stress: 25, Bank: -1000},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: -10}
					},
				},
			},
		},
		{
			ID:         "shop_name",
			Type:       event.TypeDecision,
			Title:      "The sign still says the old name",
			Text:       "Customers keep asking if the previous owner is coming back.",
			FirstMonth: 3, LastMonth: 12,
			Unique:    true,
			Condition: func(s state.State) bool { return !s.ShopRenamed },
			Choices: []event.Choice{
				{
					Label:   "Chez Julien - make it yours",
					Effects: event.Effects{Stress: -5},
					Flags: &state.FlagPatch{
						ShopRenamed: state.Bool(true),
						ShopName:    state.Str("Chez Julien"),
					},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: 5}
					},
				},
				{
					Label:   "Alix Corner - a fresh start, painted properly",
					Effects: event.Effects{Bank: -200},
					Flags: &state.FlagPatch{
						ShopRenamed: state.Bool(true),
						ShopName:    state.Str("Alix Corner"),
					},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: 5}
					},
				},
				{
					Label: "Leave it for now",
					Flags: &state.FlagPatch{ShopRenamed: state.Bool(true)},
				},
			},
		},
		{
			ID:         "insurance_decision",
			Type:       event.TypeDecision,
			Title:      "The insurance broker calls",
			Text:       "Comprehensive cover costs real money. Skipping it costs sleep.",
			FirstMonth: 2, LastMonth: 4,
			Priority: 90,
			Unique:   true,
			Condition: func(s state.State) bool {
				return !s.InsuranceDecisionMade
			},
			Choices: []event.Choice{
				{
					Label:   "Take the comprehensive policy",
					Effects: event.Effects{Bank: -1800, Stress: -5},
					Flags: &state.FlagPatch{
						InsuranceDecisionMade:     state.Bool(true),
						HasComprehensiveInsurance: state.Bool(true),
						MonthlyInsurance:          state.Int(150),
					},
				},
				{
					Label:   "Basic cover only, keep the cash",
					Effects: event.Effects{Stress: 5},
					Flags: &state.FlagPatch{
						InsuranceDecisionMade:     state.Bool(true),
						HasComprehensiveInsurance: state.Bool(false),
					},
				},
			},
		},
		{
			ID:         "first_cheese",
			Type:       event.TypeDecision,
			Title:      "The first real cheese order",
			Text:       "A Jura affineur will sell to you. The question is how deep to go.",
			FirstMonth: 2, LastMonth: 4,
			Priority: 95,
			Unique:   true,
			Choices: []event.Choice{
				{
					Label:   "Go deep - a proper opening range",
					Effects: event.Effects{Bank: -800, Stress: 5, CheeseTypes: 5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{ProducerRelationships: 1, CheeseExpertise: 3}
					},
				},
				{
					Label:   "Start with a cautious half-shelf",
					Effects: event.Effects{Bank: -300, CheeseTypes: 2},
				},
				{
					Label:   "Wait another month",
					Effects: event.Effects{Stress: -2},
				},
			},
		},
		{
			ID:         "first_christmas",
			Type:       event.TypeMilestone,
			Title:      "Your first Christmas behind the counter",
			Text:       "December decides whether the year was worth it.",
			FirstMonth: 6, LastMonth: 6,
			Mandatory: true, Unique: true,
			Choices: []event.Choice{
				{
					Label:   "Extend hours, build the gift baskets, push",
					Effects: event.Effects{Stress: 15, Energy: -10},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 2500, Reputation: 5}
					},
				},
				{
					Label:   "Steady hours, good counter, no heroics",
					Effects: event.Effects{Stress: 5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1200}
					},
				},
				{
					Label:   "Close the 24th early and go home",
					Effects: event.Effects{Family: 10, Stress: -5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 600}
					},
				},
			},
		},
		{
			ID:         "first_raclette_season",
			Type:       event.TypeSeasonal,
			Title:      "October. Raclette season is coming",
			Text:       "The first cold week, and three customers asked for a wheel and a machine.",
			FirstMonth: 16, LastMonth: 16,
			Priority: 90,
			Unique:   true,
			Choices: []event.Choice{
				{
					Label:   "Build a real raclette corner",
					Effects: event.Effects{Bank: -1200, RacletteTypes: 4, Stress: 8},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: 5}
					},
				},
				{
					Label:   "Stock two melters and see",
					Effects: event.Effects{Bank: -400, RacletteTypes: 2},
				},
				{
					Label:   "Not this year",
					Effects: event.Effects{Stress: -2},
				},
			},
		},
		{
			ID:         "raclette_season",
			Type:       event.TypeSeasonal,
			Title:      "Raclette season",
			Text:       "The machines come out of the cellar. Winter pays for summer.",
			FirstMonth: 17, LastMonth: bal.TotalMonths,
			Priority:  85,
			Recurring: true, Cooldown: 12,
			Condition: func(s state.State) bool {
				m := calMonth(s)
				return m == 11 || m == 12 || m == 1 || m == 2
			},
			Choices: []event.Choice{
				{
					Label:   "Full service - wheels, machines, delivery",
					Effects: event.Effects{Stress: 8, Energy: -6, RacletteTypes: 1},
					Conditional: func(s state.State) event.Effects {
						// the wider the raclette range, the bigger the season
						return event.Effects{Bank: 600 + 150*s.RacletteTypes}
					},
				},
				{
					Label:   "Counter sales only",
					Effects: event.Effects{Stress: 3},
					Conditional: func(s state.State) event.Effects {
						return event.Effects{Bank: 300 + 75*s.RacletteTypes}
					},
				},
				{
					Label:   "Skip the circus this winter",
					Effects: event.Effects{Stress: -3},
				},
			},
		},
		{
			ID:         "christmas_market",
			Type:       event.TypeMilestone,
			Title:      "A stall at the Christmas market",
			Text:       "Second Christmas. The town offers you a chalet on the square.",
			FirstMonth: 18, LastMonth: 18,
			Mandatory: true, Unique: true,
			Choices: []event.Choice{
				{
					Label:   "Take the chalet, staff it yourself",
					Effects: event.Effects{Stress: 12, Energy: -10},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 2000, Reputation: 6}
					},
				},
				{
					Label:   "Stay behind your own counter",
					Effects: event.Effects{Stress: -3, Family: 4},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 900}
					},
				},
			},
		},
		{
			ID:         "christmas_rush",
			Type:       event.TypeMilestone,
			Title:      "Third Christmas",
			Text:       "You know the rhythm now. That doesn't make it lighter.",
			FirstMonth: 30, LastMonth: 30,
			Mandatory: true, Unique: true,
			Choices: []event.Choice{
				{
					Label:   "Pre-orders, gift boxes, the whole machine",
					Effects: event.Effects{Stress: 12, Energy: -8},
					Conditional: func(s state.State) event.Effects {
						eff := event.Effects{Bank: 2800, Reputation: 4}
						if s.HasLucas || s.HasHenry {
							eff.Stress = -4
						}
						return eff
					},
				},
				{
					Label:   "A good December, not a heroic one",
					Effects: event.Effects{Stress: 4, Family: 4},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1500}
					},
				},
			},
		},
		{
			ID:         "christmas_day",
			Type:       event.TypeMilestone,
			Title:      "Christmas Day",
			Text:       "The last December of the story. The shop is closed; the table is set.",
			FirstMonth: bal.TotalMonths, LastMonth: bal.TotalMonths,
			Mandatory: true, Unique: true,
			Choices: []event.Choice{
				{
					Label:   "Be fully there",
					Effects: event.Effects{Family: 15, Stress: -10, Energy: 10},
				},
				{
					Label:   "Slip out to prep the January counter",
					Effects: event.Effects{Family: -10, Stress: 5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1500}
					},
				},
			},
		},
		{
			ID:         "summer_slowdown",
			Type:       event.TypeSeasonal,
			Title:      "August empties the street",
			Text:       "Half the city is on a beach. The fridges hum for nobody.",
			FirstMonth: 13, LastMonth: bal.TotalMonths,
			Priority:  85,
			Recurring: true, Cooldown: 12,
			Condition: func(s state.State) bool { return calMonth(s) == 8 },
			Choices: []event.Choice{
				{
					Label:   "Picnic boxes and a terrace table",
					Effects: event.Effects{Stress: 8, Energy: -4},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 800, Reputation: 3}
					},
				},
				{
					Label:   "Ride it out quietly",
					Effects: event.Effects{Stress: -5, Energy: 10},
				},
				{
					Label:   "Close for a week and leave town",
					Effects: event.Effects{Bank: -1000, Family: 10, Energy: 15, Stress: -10},
				},
			},
		},
		{
			ID:         "heat_wave",
			Type:       event.TypeSeasonal,
			Title:      "Heat wave",
			Text:       "38 degrees outside. Cheese has opinions about that.",
			FirstMonth: 12, LastMonth: bal.TotalMonths,
			Priority:  80,
			Recurring: true, Cooldown: 12,
			Condition: func(s state.State) bool {
				m := calMonth(s)
				return m == 7 || m == 8
			},
			Choices: []event.Choice{
				{
					Label:   "Rent extra cooling now",
					Effects: event.Effects{Bank: -900, Stress: 5},
				},
				{
					Label:   "Nurse the old fridges through it",
					Effects: event.Effects{Stress: 10},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: -400, Reputation: -5}
					},
				},
			},
		},
		{
			ID:         "back_to_school",
			Type:       event.TypeSeasonal,
			Title:      "September returns",
			Text:       "The street refills overnight. Lunch crowds are back.",
			FirstMonth: 14, LastMonth: bal.TotalMonths,
			Priority:  85,
			Recurring: true, Cooldown: 12,
			Condition: func(s state.State) bool { return calMonth(s) == 9 },
			Choices: []event.Choice{
				{
					Label:   "Lunch formulas for the office crowd",
					Effects: event.Effects{Stress: 6, Energy: -4},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 900, Reputation: 4}
					},
				},
				{
					Label:   "Same counter, same hours",
					Effects: event.Effects{Stress: 2},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 400}
					},
				},
			},
		},
		{
			ID:         "snow_day",
			Type:       event.TypeSeasonal,
			Title:      "Snow day",
			Text:       "The city stops. Somehow, fondue does not.",
			FirstMonth: 5, LastMonth: bal.TotalMonths,
			Priority: 85,
			Unique:   true,
			Condition: func(s state.State) bool {
				m := calMonth(s)
				return m == 12 || m == 1 || m == 2
			},
			Choices: []event.Choice{
				{
					Label:   "Trudge in and open anyway",
					Effects: event.Effects{Energy: -8, Stress: 5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 700, Reputation: 5}
					},
				},
				{
					Label:   "Stay home with the radiators",
					Effects: event.Effects{Energy: 10, Family: 5},
				},
			},
		},
		{
			ID:         "adopt_dog",
			Type:       event.TypeDecision,
			Title:      "The dog at the shelter",
			Text:       "A scruffy mutt named Poncho has decided you are his person.",
			FirstMonth: 14, LastMonth: 16,
			Mandatory: true, Unique: true,
			Condition: func(s state.State) bool { return !s.HasDog },
			Choices: []event.Choice{
				{
					Label:   "Take Poncho home",
					Effects: event.Effects{Energy: -5, Family: 10, Stress: -5, Bank: -300},
					Flags:   &state.FlagPatch{HasDog: state.Bool(true)},
				},
				{
					Label:   "You barely have time for yourself",
					Effects: event.Effects{Stress: 2, Family: -5},
				},
			},
		},
		{
			ID:         "dog_in_shop",
			Type:       event.TypeDecision,
			Title:      "Poncho behind the counter",
			Text:       "He has learned to sit exactly where customers can see him.",
			FirstMonth: 16, LastMonth: 35,
			Condition: func(s state.State) bool {
				return s.HasDog && s.DogMonths > 3
			},
			Choices: []event.Choice{
				{
					Label:   "Official shop dog. Put him on the card",
					Effects: event.Effects{Reputation: 6, Family: 4, Stress: -3},
				},
				{
					Label:   "He stays in the back room",
					Effects: event.Effects{Stress: 2},
				},
			},
		},
		{
			ID:         "meet_lucas",
			Type:       event.TypeDecision,
			Title:      "The kid who knows cheese",
			Text:       "Lucas talks about alpage Gruyère the way other people talk about football.",
			FirstMonth: 27, LastMonth: 28,
			Mandatory: true, Unique: true,
			Condition: func(s state.State) bool {
				return !s.HasLucas && !s.HasHenry
			},
			Choices: []event.Choice{
				{
					Label:   "Hire him part-time",
					Effects: event.Effects{Stress: -5, Autonomy: 5},
					Flags:   &state.FlagPatch{HasLucas: state.Bool(true)},
				},
				{
					Label:   "You can't afford staff yet",
					Effects: event.Effects{Stress: 5},
				},
			},
		},
		{
			ID:         "lucas_brings_henry",
			Type:       event.TypeDecision,
			Title:      "Lucas has a friend",
			Text:       "Henry ran a counter in Lyon for six years. He wants out of the city.",
			FirstMonth: 39, LastMonth: bal.TotalMonths,
			Priority: 85,
			Condition: func(s state.State) bool {
				return s.HasLucas && s.LucasMonthsWorked >= 12 && !s.HasHenry
			},
			Choices: []event.Choice{
				{
					Label:   "Two salaries, one real weekend",
					Effects: event.Effects{Stress: -8, Autonomy: 8, Family: 5},
					Flags:   &state.FlagPatch{HasHenry: state.Bool(true)},
				},
				{
					Label:   "One salary is already tight",
					Effects: event.Effects{Stress: 3},
				},
			},
		},
		{
			ID:         building.OfferEventID,
			Type:       event.TypeMilestone,
			Title:      "The landlord wants to sell",
			Text:       "The whole building. Fixed price, hard deadline, cash down payment.",
			FirstMonth: 17, LastMonth: 18,
			Mandatory: true, Unique: true,
			Choices: []event.Choice{
				{
					Label:   "Say yes. Start saving everything",
					Effects: event.Effects{Stress: 20, Energy: -10},
					Flags:   &state.FlagPatch{BuildingOfferReceived: state.Bool(true)},
				},
				{
					Label:   "Say maybe. Run the numbers nightly",
					Effects: event.Effects{Stress: 20},
					Flags:   &state.FlagPatch{BuildingOfferReceived: state.Bool(true)},
				},
				{
					Label:   "Walk away from the whole idea",
					Effects: event.Effects{Stress: 15, Family: 5},
					Flags:   &state.FlagPatch{FutureRentIncrease: state.Bool(true)},
				},
			},
		},
		{
			ID:         "building_countdown",
			Type:       event.TypeMilestone,
			Title:      "Counting the months",
			Text:       "Every decision now has one question: does it help or hurt the building fund?",
			FirstMonth: 19, LastMonth: 24,
			Recurring: true, Cooldown: 2,
			Condition: building.DeadlineCondition,
			Choices: []event.Choice{
				{
					Label:   "Cut every cost that can be cut",
					Effects: event.Effects{Stress: 15, Reputation: -3},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 2000}
					},
				},
				{
					Label:   "Save steadily, keep the shop whole",
					Effects: event.Effects{Stress: 10},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1000}
					},
				},
			},
		},
		{
			ID:         building.DeadlineEventID,
			Type:       event.TypeMilestone,
			Title:      "The deadline is here",
			Text:       "The notary has the papers ready. The number has not moved.",
			FirstMonth: bal.BuildingDeadlineMonth, LastMonth: bal.BuildingDeadlineMonth,
			Mandatory: true, Unique: true,
			Condition:      building.DeadlineCondition,
			DynamicChoices: true,
			GetChoices: func(s state.State) []event.Choice {
				return building.DeadlineChoices(s, bal)
			},
		},
		{
			ID:         building.ExtendedEventID,
			Type:       event.TypeMilestone,
			Title:      "The extended deadline",
			Text:       "One extra month, bought with a penalty. There will not be another.",
			FirstMonth: bal.BuildingExtendedMonth, LastMonth: bal.BuildingExtendedMonth,
			Mandatory: true, Unique: true,
			Condition:      building.ExtendedCondition,
			DynamicChoices: true,
			GetChoices: func(s state.State) []event.Choice {
				return building.ExtendedChoices(s, bal)
			},
		},
		{
			ID:         "sleep_problems",
			Type:       event.TypeCrisis,
			Title:      "Three a.m. again",
			Text:       "You wake up doing margin math and can't stop.",
			FirstMonth: 6, LastMonth: 40,
			Unique:    true,
			Condition: func(s state.State) bool { return s.Stress > 50 },
			Choices: []event.Choice{
				{
					Label:   "See a doctor about it",
					Effects: event.Effects{Bank: -200, Stress: -10},
				},
				{
					Label:   "Coffee exists for a reason",
					Effects: event.Effects{Stress: 5, Energy: -10},
				},
				{
					Label:     "Long dawn walks with Poncho",
					Effects:   event.Effects{Stress: -8, Family: 3},
					Condition: func(s state.State) bool { return s.HasDog },
				},
			},
		},
		{
			ID:         "relationship_tension",
			Type:       event.TypeCrisis,
			Title:      "The empty chair at dinner",
			Text:       "You've missed four dinners in a row. Nobody is shouting. That's worse.",
			FirstMonth: 8, LastMonth: 35,
			Unique: true,
			Condition: func(s state.State) bool {
				return s.Family < 60 && s.Stress > 40
			},
			Choices: []event.Choice{
				{
					Label:   "A real evening out, phone off",
					Effects: event.Effects{Bank: -300, Family: 12, Stress: -5},
				},
				{
					Label:   "Promise it gets better after the deadline",
					Effects: event.Effects{Family: -8, Stress: 5},
				},
				{
					Label:     "Hand Lucas the Saturday keys",
					Effects:   event.Effects{Family: 6, Autonomy: 3},
					Condition: func(s state.State) bool { return s.HasLucas },
				},
			},
		},
		{
			ID:         "bad_review",
			Type:       event.TypeCrisis,
			Title:      "One star",
			Text:       "\"Overpriced. Rude. The dog smells.\" Poncho does not smell.",
			FirstMonth: 5, LastMonth: 40,
			Unique: true,
			Choices: []event.Choice{
				{
					Label:   "Invite them back, counter's on you",
					Effects: event.Effects{Bank: -150, Stress: 5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: 6}
					},
				},
				{
					Label:   "Reply once, politely, and move on",
					Effects: event.Effects{Stress: 3, Reputation: -2, Autonomy: 2},
				},
				{
					Label:   "Never read the reviews again",
					Effects: event.Effects{Reputation: -5, Stress: -3},
				},
			},
		},
		{
			ID:         "sunday_burnout",
			Type:       event.TypeCrisis,
			Title:      "Seven-day weeks are not free",
			Text:       "You poured coffee into a customer's change. Nobody laughed.",
			FirstMonth: 10, LastMonth: 18,
			Condition: func(s state.State) bool {
				return s.OpenSunday && (s.Energy < 40 || s.Stress > 70)
			},
			Choices: []event.Choice{
				{
					Label:   "Close Sundays before Sundays close you",
					Effects: event.Effects{Stress: -10, Family: 8},
					Flags:   &state.FlagPatch{OpenSunday: state.Bool(false)},
				},
				{
					Label:   "Push through to the deadline",
					Effects: event.Effects{Stress: 8, Energy: -8},
				},
			},
		},
		{
			ID:         "stop_sunday",
			Type:       event.TypeDecision,
			Title:      "After the crash",
			Text:       "The doctor used the word burnout. The shop was closed for a week either way.",
			FirstMonth: 12, LastMonth: 25,
			Condition: func(s state.State) bool {
				return s.OpenSunday && s.BurnoutCount > 0
			},
			Choices: []event.Choice{
				{
					Label:   "Sundays are over, permanently",
					Effects: event.Effects{Stress: -8, Family: 6},
					Flags:   &state.FlagPatch{OpenSunday: state.Bool(false)},
				},
				{
					Label:   "Reopen them once you feel better",
					Effects: event.Effects{Stress: 5},
				},
			},
		},
		{
			ID:         "peak_performance",
			Type:       event.TypeOpportunity,
			Title:      "Firing on all cylinders",
			Text:       "Rested, sharp, and the counter shows it.",
			FirstMonth: 13, LastMonth: bal.TotalMonths,
			Priority:  80,
			Recurring: true, Cooldown: 8,
			Condition: func(s state.State) bool {
				return s.Energy*10 >= s.MaxEnergyCap*9
			},
			Choices: []event.Choice{
				{
					Label:   "Launch the new counter you've been sketching",
					Effects: event.Effects{CheeseTypes: 3, Stress: 5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: 5, Bank: 600}
					},
				},
				{
					Label:   "Bank the good weeks quietly",
					Effects: event.Effects{Stress: -3},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 400}
					},
				},
			},
		},
		{
			ID:         "hospital_call",
			Type:       event.TypeCrisis,
			Title:      "The call from the hospital",
			Text:       "Your father. It's serious. It's also December.",
			FirstMonth: 17, LastMonth: 18,
			Priority: 150,
			Unique:   true,
			Choices: []event.Choice{
				{
					Label:   "Close the shop and go, now",
					Effects: event.Effects{Family: 15, Stress: 10},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: -800}
					},
				},
				{
					Label:   "Go after closing, every evening",
					Effects: event.Effects{Family: 5, Stress: 12, Energy: -8},
				},
				{
					Label:   "Stay. December carries the year",
					Effects: event.Effects{Family: -20, Stress: 15},
				},
			},
		},
		{
			ID:         "family_dinner",
			Type:       event.TypeDecision,
			Title:      "Sunday lunch at your parents'",
			Text:       "The long kind, with three desserts and no clock.",
			FirstMonth: 1, LastMonth: bal.TotalMonths,
			Unique: true,
			Choices: []event.Choice{
				{
					Label:   "Go, and stay for all three desserts",
					Effects: event.Effects{Family: 8, Stress: -5},
					Conditional: func(s state.State) event.Effects {
						if s.OpenSunday {
							// closing the counter for it costs the day's trade
							return event.Effects{Bank: -1000}
						}
						return event.Effects{}
					},
				},
				{
					Label:   "Send apologies and open the shop",
					Effects: event.Effects{Family: -6, Stress: 3},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 400}
					},
				},
			},
		},
		{
			ID:         "catering_opportunity",
			Type:       event.TypeOpportunity,
			Title:      "A wedding wants a cheese table",
			Text:       "Eighty guests, real budget, one long Saturday.",
			FirstMonth: 8, LastMonth: 36,
			Recurring: true, Cooldown: 8,
			Condition: func(s state.State) bool { return s.CheeseTypes >= 15 },
			Choices: []event.Choice{
				{
					Label:   "Take it, build something beautiful",
					Effects: event.Effects{Stress: 8, Energy: -6},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1200, Reputation: 4}
					},
				},
				{
					Label: "Politely decline",
				},
			},
		},
		{
			ID:         "private_tasting",
			Type:       event.TypeOpportunity,
			Title:      "An evening tasting, after hours",
			Text:       "Twelve seats, candles, and whatever you pull from the cave.",
			FirstMonth: 6, LastMonth: bal.TotalMonths,
			Recurring: true, Cooldown: 5,
			Condition: func(s state.State) bool { return s.CheeseTypes >= 20 },
			Choices: []event.Choice{
				{
					Label:   "Host it",
					Effects: event.Effects{Stress: 5, Energy: -4},
					Conditional: func(s state.State) event.Effects {
						// a deeper range fills more seats
						return event.Effects{Bank: 500 + 20*s.CheeseTypes, Reputation: 3}
					},
				},
				{
					Label:   "Evenings are yours now",
					Effects: event.Effects{Family: 3},
				},
			},
		},
		{
			ID:         "bulk_order",
			Type:       event.TypeOpportunity,
			Title:      "A restaurant wants weekly orders",
			Text:       "Steady volume, tight margins, your name on their menu.",
			FirstMonth: 10, LastMonth: 38,
			Recurring: true, Cooldown: 7,
			Condition: func(s state.State) bool {
				return s.CheeseTypes >= 25 && s.Reputation >= 50
			},
			Choices: []event.Choice{
				{
					Label:   "Full weekly contract",
					Effects: event.Effects{Stress: 8, Energy: -5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1800, Reputation: 6, CheeseTypes: 2}
					},
				},
				{
					Label:   "A smaller standing order",
					Effects: event.Effects{Stress: 3},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 600, Reputation: 3}
					},
				},
				{
					Label: "The counter comes first",
				},
			},
		},
		{
			ID:         "good_month",
			Type:       event.TypeMilestone,
			Title:      "Something clicked this month",
			Text:       "Maybe the weather. Maybe word of mouth. The register kept ringing.",
			FirstMonth: 8, LastMonth: 40,
			Recurring: true, Cooldown: 6,
			Condition: func(s state.State) bool {
				return s.Reputation >= 45 && s.Stress < 70
			},
			Choices: []event.Choice{
				{
					Label: "Straight into the fund",
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1500}
					},
				},
				{
					Label:   "Reinvest in the counter",
					Effects: event.Effects{Bank: -500},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 1000, Reputation: 4, Autonomy: 3}
					},
				},
				{
					Label:   "Take the weekend off for once",
					Effects: event.Effects{Stress: -10},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Bank: 800, Family: 8}
					},
				},
			},
		},
		{
			ID:         "second_shop_offer",
			Type:       event.TypeOpportunity,
			Title:      "An investor likes your numbers",
			Text:       "A second location, their money, your name. You didn't buy the building; they noticed the savings.",
			FirstMonth: 36, LastMonth: bal.TotalMonths,
			Priority: 200,
			Unique:   true,
			Condition: func(s state.State) bool {
				return s.Bank >= bal.BuildingCost && !s.OwnsBuilding
			},
			Choices: []event.Choice{
				{
					Label:   "One shop, done well, is enough",
					Effects: event.Effects{Reputation: 5, Autonomy: 5, Stress: -5},
				},
				{
					Label:   "Hear them out over lunch",
					Effects: event.Effects{Stress: 10, Energy: -5},
				},
			},
		},
		{
			ID:         event.FallbackID,
			Type:       event.TypeRoutine,
			Title:      "A quiet month",
			Text:       "No crises. No opportunities. Just cheese, customers, and weather.",
			FirstMonth: 1, LastMonth: bal.TotalMonths,
			Recurring: true, Cooldown: 0,
			Choices: []event.Choice{
				{
					Label:   "Rest while it's quiet",
					Effects: event.Effects{Energy: 15, Stress: -10},
				},
				{
					Label:   "Tinker with the shop",
					Effects: event.Effects{Energy: -5, Stress: 5},
					Conditional: func(state.State) event.Effects {
						return event.Effects{Reputation: 3, Autonomy: 5}
					},
				},
			},
		},
	}
}

// NewCatalog builds and validates the default pool for the given balance.
func NewCatalog(bal config.Balance) (*event.Catalog, error) {
	return event.NewCatalog(Pool(bal))
}
