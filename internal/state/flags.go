package state

// FlagPatch is a partial flag update declared by a choice.
// nil pointer => "no change"
type FlagPatch struct {
	OpenSunday                *bool   `json:"open_sunday,omitempty"`
	HasLucas                  *bool   `json:"has_lucas,omitempty"`
	HasHenry                  *bool   `json:"has_henry,omitempty"`
	HasDog                    *bool   `json:"has_dog,omitempty"`
	HasCharcuterie            *bool   `json:"has_charcuterie,omitempty"`
	HasWineSelection          *bool   `json:"has_wine_selection,omitempty"`
	HasFineFoodFocus          *bool   `json:"has_fine_food_focus,omitempty"`
	HasComprehensiveInsurance *bool   `json:"has_comprehensive_insurance,omitempty"`
	InsuranceDecisionMade     *bool   `json:"insurance_decision_made,omitempty"`
	OwnsBuilding              *bool   `json:"owns_building,omitempty"`
	FutureRentIncrease        *bool   `json:"future_rent_increase,omitempty"`
	BuildingOfferReceived     *bool   `json:"building_offer_received,omitempty"`
	BuildingDelayPaid         *bool   `json:"building_delay_paid,omitempty"`
	BuildingPenaltyOwed       *bool   `json:"building_penalty_owed,omitempty"`
	ShopRenamed               *bool   `json:"shop_renamed,omitempty"`
	ShopName                  *string `json:"shop_name,omitempty"`
	SalaryStarted             *bool   `json:"salary_started,omitempty"`
	MonthlyPayment            *int    `json:"monthly_payment,omitempty"`
	MonthlyInsurance          *int    `json:"monthly_insurance,omitempty"`
}

// Bool is a convenience for authoring flag patches inline.
func Bool(v bool) *bool { return &v }

// Str is a convenience for authoring flag patches inline.
func Str(v string) *string { return &v }

// Int is a convenience for authoring flag patches inline.
func Int(v int) *int { return &v }

// ApplyFlags merges a patch, later writes to the same key win. Flags that
// are final once set (a signed deed, a burned landlord) never revert: an
// attempt to clear them is ignored rather than surfaced.
func (s *State) ApplyFlags(p FlagPatch) {
	if p.OpenSunday != nil {
		s.OpenSunday = *p.OpenSunday
	}
	if p.HasLucas != nil {
		s.HasLucas = *p.HasLucas
	}
	if p.HasHenry != nil {
		s.HasHenry = *p.HasHenry
	}
	if p.HasDog != nil {
		s.HasDog = *p.HasDog
	}
	if p.HasCharcuterie != nil {
		s.HasCharcuterie = *p.HasCharcuterie
	}
	if p.HasWineSelection != nil {
		s.HasWineSelection = *p.HasWineSelection
	}
	if p.HasFineFoodFocus != nil {
		s.HasFineFoodFocus = *p.HasFineFoodFocus
	}
	if p.HasComprehensiveInsurance != nil {
		s.HasComprehensiveInsurance = *p.HasComprehensiveInsurance
	}
	if p.InsuranceDecisionMade != nil {
		s.InsuranceDecisionMade = *p.InsuranceDecisionMade
	}
	if p.OwnsBuilding != nil && *p.OwnsBuilding {
		s.OwnsBuilding = true
	}
	if p.FutureRentIncrease != nil && *p.FutureRentIncrease {
		s.FutureRentIncrease = true
	}
	if p.BuildingOfferReceived != nil && *p.BuildingOfferReceived {
		s.BuildingOfferReceived = true
	}
	if p.BuildingDelayPaid != nil {
		s.BuildingDelayPaid = *p.BuildingDelayPaid
	}
	if p.BuildingPenaltyOwed != nil {
		s.BuildingPenaltyOwed = *p.BuildingPenaltyOwed
	}
	if p.ShopRenamed != nil && *p.ShopRenamed {
		s.ShopRenamed = true
	}
	if p.ShopName != nil {
		s.ShopName = *p.ShopName
	}
	if p.SalaryStarted != nil && *p.SalaryStarted {
		s.SalaryStarted = true
	}
	if p.MonthlyPayment != nil {
		s.MonthlyPayment = *p.MonthlyPayment
	}
	if p.MonthlyInsurance != nil {
		s.MonthlyInsurance = *p.MonthlyInsurance
	}
}
