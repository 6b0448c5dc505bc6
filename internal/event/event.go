package event

import (
	"fromagerie/internal/state"
)

type ID string

type Type string

const (
	TypeCrisis      Type = "crisis"
	TypeDecision    Type = "decision"
	TypeMilestone   Type = "milestone"
	TypeOpportunity Type = "opportunity"
	TypeSeasonal    Type = "seasonal"
	TypeRoutine     Type = "routine"
)

// Action names a special-case handler in the effect resolver. Each one is a
// small independent state transition beyond flat deltas.
type Action string

const (
	ActionNone          Action = ""
	ActionTakeLoan      Action = "take_loan"
	ActionSellEquipment Action = "sell_equipment"
	ActionFamilyHelp    Action = "family_help"
	ActionSetFineFood   Action = "set_fine_food"
	ActionSignBuilding  Action = "sign_building"
)

// Effects are the flat numeric deltas a choice declares. Zero means no
// change; every delta is applied through the state's clamping accessors.
type Effects struct {
	Bank                  int `json:"bank,omitempty"`
	Stress                int `json:"stress,omitempty"`
	Energy                int `json:"energy,omitempty"`
	Family                int `json:"family,omitempty"`
	Reputation            int `json:"reputation,omitempty"`
	Autonomy              int `json:"autonomy,omitempty"`
	CheeseTypes           int `json:"cheese_types,omitempty"`
	RacletteTypes         int `json:"raclette_types,omitempty"`
	CheeseExpertise       int `json:"cheese_expertise,omitempty"`
	ProducerRelationships int `json:"producer_relationships,omitempty"`
	SupplierDiscount      int `json:"supplier_discount,omitempty"`
}

// IsZero reports whether the effects would leave the state untouched.
func (e Effects) IsZero() bool { return e == Effects{} }

// Choice is one option within an event.
type Choice struct {
	Label   string           `json:"label"`
	Effects Effects          `json:"effects"`
	Flags   *state.FlagPatch `json:"flags,omitempty"`

	// Conditional produces extra deltas computed from the pre-mutation
	// state, so scaling rewards see the state as it was at decision time.
	Conditional func(s state.State) Effects `json:"-"`

	// Condition hides the choice when false. A nil condition always shows.
	Condition func(s state.State) bool `json:"-"`

	Action Action `json:"action,omitempty"`
}

// Event is an immutable authored scenario. Catalog events never carry
// firing bookkeeping; that lives in the scheduler's history.
type Event struct {
	ID    ID     `json:"id"`
	Type  Type   `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`

	// FirstMonth..LastMonth is the inclusive scheduling window in run
	// months (1-based).
	FirstMonth int `json:"first_month"`
	LastMonth  int `json:"last_month"`

	Priority  int  `json:"priority"`
	Mandatory bool `json:"mandatory"`
	Unique    bool `json:"unique"`
	Recurring bool `json:"recurring"`
	Cooldown  int  `json:"cooldown"`

	Condition func(s state.State) bool `json:"-"`

	Choices []Choice `json:"choices"`

	// DynamicChoices events compute their options at selection time from
	// the live state (the building milestone recomputes affordability).
	DynamicChoices bool                         `json:"dynamic_choices"`
	GetChoices     func(s state.State) []Choice `json:"-"`
}

// InWindow reports whether the event's scheduling window contains month.
func (e *Event) InWindow(month int) bool {
	return month >= e.FirstMonth && month <= e.LastMonth
}

// Eligible reports whether the event could fire this month, ignoring
// firing history (the scheduler owns that).
func (e *Event) Eligible(s state.State, month int) bool {
	if !e.InWindow(month) {
		return false
	}
	if e.Condition != nil && !e.Condition(s) {
		return false
	}
	return true
}

// ResolveChoices returns the playable choice set for the given state:
// the dynamic generator's output when declared, otherwise the static set,
// with per-choice conditions applied either way.
func (e *Event) ResolveChoices(s state.State) []Choice {
	base := e.Choices
	if e.DynamicChoices {
		base = e.GetChoices(s)
	}
	out := make([]Choice, 0, len(base))
	for _, c := range base {
		if c.Condition != nil && !c.Condition(s) {
			continue
		}
		out = append(out, c)
	}
	return out
}
