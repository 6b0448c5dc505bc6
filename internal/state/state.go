package state

import (
	"fromagerie/internal/config"
)

// State is the full character/business record for one run. All fields are
// plain values so a copy is a complete snapshot; the renderer and the
// automation drivers only ever receive copies.
//
// Numeric attributes must be written through the Add* accessors so the
// clamping policy cannot be bypassed.
type State struct {
	MonthsPlayed int `json:"months_played"`

	Bank int `json:"bank"`
	Loan int `json:"loan"`

	Stress       int `json:"stress"`
	Energy       int `json:"energy"`
	MaxEnergyCap int `json:"max_energy_cap"`
	Family       int `json:"family"`
	Reputation   int `json:"reputation"`
	Autonomy     int `json:"autonomy"`

	CheeseTypes           int `json:"cheese_types"`
	RacletteTypes         int `json:"raclette_types"`
	CheeseExpertise       int `json:"cheese_expertise"`
	ProducerRelationships int `json:"producer_relationships"`
	SupplierDiscount      int `json:"supplier_discount"`
	SupplierGracesUsed    int `json:"supplier_graces_used"`

	BurnoutCount   int `json:"burnout_count"`
	RecoveryMonths int `json:"recovery_months"`

	// BuildingMonth is the run month the purchase closed, 0 if never.
	BuildingMonth    int `json:"building_month"`
	MonthlyPayment   int `json:"monthly_payment"`
	MonthlyInsurance int `json:"monthly_insurance"`

	OpenSunday                bool   `json:"open_sunday"`
	HasLucas                  bool   `json:"has_lucas"`
	HasFineFoodFocus          bool   `json:"has_fine_food_focus"`
	HasHenry                  bool   `json:"has_henry"`
	HasDog                    bool   `json:"has_dog"`
	HasCharcuterie            bool   `json:"has_charcuterie"`
	HasWineSelection          bool   `json:"has_wine_selection"`
	HasComprehensiveInsurance bool   `json:"has_comprehensive_insurance"`
	InsuranceDecisionMade     bool   `json:"insurance_decision_made"`
	OwnsBuilding              bool   `json:"owns_building"`
	FutureRentIncrease        bool   `json:"future_rent_increase"`
	BuildingOfferReceived     bool   `json:"building_offer_received"`
	BuildingDelayPaid         bool   `json:"building_delay_paid"`
	BuildingPenaltyOwed       bool   `json:"building_penalty_owed"`
	ShopRenamed               bool   `json:"shop_renamed"`
	ShopName                  string `json:"shop_name,omitempty"`
	SalaryStarted             bool   `json:"salary_started"`

	LucasMonthsWorked int `json:"lucas_months_worked"`
	DogMonths         int `json:"dog_months"`
}

// New builds the month-zero state for a run under the given balance.
func New(bal config.Balance) *State {
	return &State{
		Bank:         bal.StartingBank,
		Stress:       bal.StartingStress,
		Energy:       bal.StartingEnergy,
		MaxEnergyCap: bal.StartingEnergy,
		Family:       bal.StartingFamily,
		Reputation:   bal.StartingReputation,
		Autonomy:     bal.StartingAutonomy,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *State) AddStress(d int)     { s.Stress = clamp(s.Stress+d, 0, 100) }
func (s *State) AddFamily(d int)     { s.Family = clamp(s.Family+d, 0, 100) }
func (s *State) AddReputation(d int) { s.Reputation = clamp(s.Reputation+d, 0, 100) }
func (s *State) AddAutonomy(d int)   { s.Autonomy = clamp(s.Autonomy+d, 0, 100) }

// AddEnergy honors the mutable cap so burnout damage sticks.
func (s *State) AddEnergy(d int) { s.Energy = clamp(s.Energy+d, 0, s.MaxEnergyCap) }

// ReduceEnergyCap permanently shrinks the energy ceiling, never below floor.
func (s *State) ReduceEnergyCap(by, floor int) {
	s.MaxEnergyCap = clamp(s.MaxEnergyCap-by, floor, 100)
	if s.Energy > s.MaxEnergyCap {
		s.Energy = s.MaxEnergyCap
	}
}

// AddBank floors at zero. Debt is modeled in Loan, never as negative bank.
func (s *State) AddBank(d int) {
	s.Bank += d
	if s.Bank < 0 {
		s.Bank = 0
	}
}

func (s *State) AddLoan(d int) {
	s.Loan += d
	if s.Loan < 0 {
		s.Loan = 0
	}
}

func (s *State) AddCheeseTypes(d int) {
	s.CheeseTypes += d
	if s.CheeseTypes < 0 {
		s.CheeseTypes = 0
	}
}

func (s *State) AddRacletteTypes(d int) {
	s.RacletteTypes += d
	if s.RacletteTypes < 0 {
		s.RacletteTypes = 0
	}
}

func (s *State) AddCheeseExpertise(d int) { s.CheeseExpertise = clamp(s.CheeseExpertise+d, 0, 100) }

func (s *State) AddProducerRelationships(d int) {
	s.ProducerRelationships += d
	if s.ProducerRelationships < 0 {
		s.ProducerRelationships = 0
	}
}

func (s *State) AddSupplierDiscount(d int) {
	s.SupplierDiscount += d
	if s.SupplierDiscount < 0 {
		s.SupplierDiscount = 0
	}
}

// AdvanceMonth bumps the strictly-increasing month counter and the
// tenure counters that ride along with it.
func (s *State) AdvanceMonth() {
	s.MonthsPlayed++
	if s.HasLucas {
		s.LucasMonthsWorked++
	}
	if s.HasDog {
		s.DogMonths++
	}
}

// Snapshot returns a read-only copy for renderers and drivers.
func (s *State) Snapshot() State { return *s }
