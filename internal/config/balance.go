package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Game length and calendar
	TotalMonths int `yaml:"total_months" json:"total_months"`
	StartMonth  int `yaml:"start_month" json:"start_month"` // calendar month of run month 1 (7 = July)

	// Starting state
	StartingBank       int `yaml:"starting_bank" json:"starting_bank"`
	StartingStress     int `yaml:"starting_stress" json:"starting_stress"`
	StartingEnergy     int `yaml:"starting_energy" json:"starting_energy"`
	StartingFamily     int `yaml:"starting_family" json:"starting_family"`
	StartingReputation int `yaml:"starting_reputation" json:"starting_reputation"`
	StartingAutonomy   int `yaml:"starting_autonomy" json:"starting_autonomy"`

	// Monthly economy
	BaseMonthlySales   int     `yaml:"base_monthly_sales" json:"base_monthly_sales"`
	SalesMod           float64 `yaml:"sales_mod" json:"sales_mod"`
	CostMod            float64 `yaml:"cost_mod" json:"cost_mod"`
	SundaySalesBonus   int     `yaml:"sunday_sales_bonus" json:"sunday_sales_bonus"`
	CharcuterieBonus   int     `yaml:"charcuterie_bonus" json:"charcuterie_bonus"`
	MonthlyRent        int     `yaml:"monthly_rent" json:"monthly_rent"`
	MonthlyUtilities   int     `yaml:"monthly_utilities" json:"monthly_utilities"`
	BaseInsurance      int     `yaml:"base_insurance" json:"base_insurance"`
	SurvivalSalary     int     `yaml:"survival_salary" json:"survival_salary"`
	OwnerBaseSalary    int     `yaml:"owner_base_salary" json:"owner_base_salary"`
	OwnerSalaryGrowth  int     `yaml:"owner_salary_growth" json:"owner_salary_growth"`
	OwnerSalaryMaxGrow int     `yaml:"owner_salary_max_grow" json:"owner_salary_max_grow"`
	LucasSalary        int     `yaml:"lucas_salary" json:"lucas_salary"`
	HenrySalary        int     `yaml:"henry_salary" json:"henry_salary"`
	BuildingLoanPay    int     `yaml:"building_loan_pay" json:"building_loan_pay"`
	CarMonthlyCost     int     `yaml:"car_monthly_cost" json:"car_monthly_cost"`
	CarAfterMonths     int     `yaml:"car_after_months" json:"car_after_months"`
	ApartmentCost      int     `yaml:"apartment_cost" json:"apartment_cost"`
	ApartmentAfter     int     `yaml:"apartment_after" json:"apartment_after"`
	LifestyleCreep     int     `yaml:"lifestyle_creep" json:"lifestyle_creep"`
	LifestyleCreepMax  int     `yaml:"lifestyle_creep_max" json:"lifestyle_creep_max"`
	SocialObligations  int     `yaml:"social_obligations" json:"social_obligations"`
	SocialAfterMonths  int     `yaml:"social_after_months" json:"social_after_months"`
	ReinvestmentBase   int     `yaml:"reinvestment_base" json:"reinvestment_base"`
	ReinvestmentGrowth int     `yaml:"reinvestment_growth" json:"reinvestment_growth"`
	ReinvestmentMax    int     `yaml:"reinvestment_max" json:"reinvestment_max"`
	TaxRate            float64 `yaml:"tax_rate" json:"tax_rate"`
	MarginCap          float64 `yaml:"margin_cap" json:"margin_cap"`
	VarianceDampener   float64 `yaml:"variance_dampener" json:"variance_dampener"`

	// Loans and bankruptcy
	LoanAmount        int     `yaml:"loan_amount" json:"loan_amount"`
	LoanInterestRate  float64 `yaml:"loan_interest_rate" json:"loan_interest_rate"`
	MaxLoan           int     `yaml:"max_loan" json:"max_loan"`
	EquipmentSale     int     `yaml:"equipment_sale" json:"equipment_sale"`
	FamilyHelpAmount  int     `yaml:"family_help_amount" json:"family_help_amount"`
	MaxSupplierGraces int     `yaml:"max_supplier_graces" json:"max_supplier_graces"`

	// Stress and burnout
	BurnoutThresholdBase     int `yaml:"burnout_threshold_base" json:"burnout_threshold_base"`
	BurnoutThresholdPerCrash int `yaml:"burnout_threshold_per_crash" json:"burnout_threshold_per_crash"`
	BurnoutMinMonth          int `yaml:"burnout_min_month" json:"burnout_min_month"`
	BurnoutRecoveryMonths    int `yaml:"burnout_recovery_months" json:"burnout_recovery_months"`
	BurnoutStressReset       int `yaml:"burnout_stress_reset" json:"burnout_stress_reset"`
	EnergyCapReduction       int `yaml:"energy_cap_reduction" json:"energy_cap_reduction"`
	MinEnergyCap             int `yaml:"min_energy_cap" json:"min_energy_cap"`
	MaxBurnouts              int `yaml:"max_burnouts" json:"max_burnouts"`

	// Building milestone
	BuildingCost          int `yaml:"building_cost" json:"building_cost"`
	BuildingDeadlineMonth int `yaml:"building_deadline_month" json:"building_deadline_month"`
	BuildingExtendedMonth int `yaml:"building_extended_month" json:"building_extended_month"`
	BuildingDelayPenalty  int `yaml:"building_delay_penalty" json:"building_delay_penalty"`
	BuildingFamilyChipIn  int `yaml:"building_family_chip_in" json:"building_family_chip_in"`
}

// Realistic returns the default balance configuration
func Realistic() Balance {
	return Balance{
		TotalMonths: 42,
		StartMonth:  7,

		StartingBank:       15000,
		StartingStress:     30,
		StartingEnergy:     100,
		StartingFamily:     70,
		StartingReputation: 50,
		StartingAutonomy:   20,

		BaseMonthlySales:   19000,
		SalesMod:           1.0,
		CostMod:            1.0,
		SundaySalesBonus:   1000,
		CharcuterieBonus:   800,
		MonthlyRent:        1900,
		MonthlyUtilities:   400,
		BaseInsurance:      200,
		SurvivalSalary:     1600,
		OwnerBaseSalary:    2800,
		OwnerSalaryGrowth:  60,
		OwnerSalaryMaxGrow: 1000,
		LucasSalary:        1400,
		HenrySalary:        1800,
		BuildingLoanPay:    2500,
		CarMonthlyCost:     450,
		CarAfterMonths:     6,
		ApartmentCost:      1400,
		ApartmentAfter:     12,
		LifestyleCreep:     60,
		LifestyleCreepMax:  1000,
		SocialObligations:  300,
		SocialAfterMonths:  6,
		ReinvestmentBase:   200,
		ReinvestmentGrowth: 30,
		ReinvestmentMax:    500,
		TaxRate:            0.20,
		MarginCap:          45,
		VarianceDampener:   0.98,

		LoanAmount:        10000,
		LoanInterestRate:  0.06,
		MaxLoan:           40000,
		EquipmentSale:     3000,
		FamilyHelpAmount:  2000,
		MaxSupplierGraces: 3,

		BurnoutThresholdBase:     82,
		BurnoutThresholdPerCrash: 5,
		BurnoutMinMonth:          6,
		BurnoutRecoveryMonths:    4,
		BurnoutStressReset:       30,
		EnergyCapReduction:       20,
		MinEnergyCap:             40,
		MaxBurnouts:              3,

		BuildingCost:          80000,
		BuildingDeadlineMonth: 25,
		BuildingExtendedMonth: 26,
		BuildingDelayPenalty:  5000,
		BuildingFamilyChipIn:  3000,
	}
}

// Forgiving returns easier balance for casual playthroughs
func Forgiving() Balance {
	cfg := Realistic()
	cfg.StartingBank = 20000
	cfg.StartingStress = 20
	cfg.SalesMod = 1.1
	cfg.CostMod = 0.9
	return cfg
}

// Brutal returns harder balance for experienced players
func Brutal() Balance {
	cfg := Realistic()
	cfg.StartingBank = 10000
	cfg.StartingStress = 40
	cfg.SalesMod = 0.9
	cfg.CostMod = 1.15
	return cfg
}
