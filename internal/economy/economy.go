// Package economy computes the monthly revenue/cost/profit figure. Every
// function here is pure: the live game loop and the headless balance
// drivers call it repeatedly against snapshots without state drift.
package economy

import (
	"math"

	"fromagerie/internal/config"
	"fromagerie/internal/state"
)

// seasonal is the month-of-year sales multiplier: a winter-holiday peak in
// December and a summer trough in August. Index 0 = January.
var seasonal = [12]float64{0.85, 0.88, 0.92, 0.95, 0.98, 1.00, 0.82, 0.75, 0.92, 1.00, 1.10, 1.35}

// Report breaks a month's finances down. Net is the figure credited to the
// bank; it may be negative.
type Report struct {
	Month      int     `json:"month"`
	CalMonth   int     `json:"cal_month"`
	Sales      int     `json:"sales"`
	Margin     float64 `json:"margin"`
	COGS       int     `json:"cogs"`
	FixedCosts int     `json:"fixed_costs"`
	Interest   int     `json:"interest"`
	Tax        int     `json:"tax"`
	Net        int     `json:"net"`
}

// CalendarMonth maps a 1-based run month onto the calendar (1..12), given
// the balance's starting month.
func CalendarMonth(month int, bal config.Balance) int {
	return (bal.StartMonth-1+month-1)%12 + 1
}

// MonthlyProfit computes the elapsed month's net result for the given
// state. month is the 1-based run month being settled.
func MonthlyProfit(s state.State, month int, bal config.Balance) Report {
	sales := float64(bal.BaseMonthlySales)
	sales += cheeseBonus(s.CheeseTypes)

	sales *= 0.75 + float64(s.Reputation)*0.005
	sales *= 0.90 + float64(s.Autonomy)*0.002

	// Running on fumes costs sales.
	if s.Energy < 60 {
		sales *= 1 - float64(60-s.Energy)*0.002
	}

	if s.HasCharcuterie {
		sales += float64(bal.CharcuterieBonus)
	}
	if s.HasWineSelection {
		sales *= 1.04
	}
	if s.OwnsBuilding {
		sales *= 1.03
	}

	cal := CalendarMonth(month, bal)
	sales *= seasonal[cal-1]

	if s.OpenSunday {
		sales += float64(bal.SundaySalesBonus)
	}

	sales *= bal.VarianceDampener
	sales *= bal.SalesMod

	margin := marginPct(s, bal)
	cogs := sales * (1 - margin/100)

	fixed := float64(fixedCosts(s, month, bal)) * bal.CostMod

	net := sales - cogs - fixed

	interest := 0.0
	if s.Loan > 0 {
		interest = float64(s.Loan) * bal.LoanInterestRate
		net -= interest
	}

	tax := 0.0
	if net > 0 {
		tax = net * bal.TaxRate
		net -= tax
	}

	return Report{
		Month:      month,
		CalMonth:   cal,
		Sales:      int(math.Round(sales)),
		Margin:     margin,
		COGS:       int(math.Round(cogs)),
		FixedCosts: int(math.Round(fixed)),
		Interest:   int(math.Round(interest)),
		Tax:        int(math.Round(tax)),
		Net:        int(math.Round(net)),
	}
}

// cheeseBonus is the three-tier product-range curve: +100/unit up to 20
// types, +120/unit to 50, +60/unit beyond. Diminishing returns past the
// point where the counter stops fitting the case.
func cheeseBonus(types int) float64 {
	switch {
	case types <= 20:
		return float64(types) * 100
	case types <= 50:
		return 2000 + float64(types-20)*120
	default:
		return 2000 + 3600 + float64(types-50)*60
	}
}

// marginPct is capped: range, reputation, and autonomy all push it up, but
// never past the ceiling.
func marginPct(s state.State, bal config.Balance) float64 {
	m := 30 + math.Min(10, float64(s.CheeseTypes)*0.10)
	if s.Reputation > 50 {
		m += float64(s.Reputation-50) * 0.08
	}
	if s.Autonomy > 40 {
		m += float64(s.Autonomy-40) * 0.04
	}
	if s.HasCharcuterie {
		m += 1
	}
	if s.HasWineSelection {
		m += 2
	}
	return math.Min(bal.MarginCap, m)
}

func fixedCosts(s state.State, month int, bal config.Balance) int {
	costs := bal.MonthlyUtilities + bal.BaseInsurance

	if s.OwnsBuilding {
		costs += bal.BuildingLoanPay
	} else {
		costs += bal.MonthlyRent
		if s.FutureRentIncrease {
			costs += bal.MonthlyRent / 10
		}
	}

	costs += ownerDraw(s, month, bal)

	if s.HasLucas {
		costs += bal.LucasSalary
	}
	if s.HasHenry {
		costs += bal.HenrySalary
	}

	costs += s.MonthlyPayment
	costs += s.MonthlyInsurance

	return costs
}

// ownerDraw models the lifestyle ramp that starts once the building is
// owned: a real salary that grows, then a car, an apartment, social
// obligations, reinvestment, and plain creep. Before that, survival wages.
func ownerDraw(s state.State, month int, bal config.Balance) int {
	if !s.SalaryStarted || s.BuildingMonth == 0 {
		return bal.SurvivalSalary
	}

	since := month - s.BuildingMonth
	if since < 0 {
		since = 0
	}

	draw := bal.OwnerBaseSalary + capped(since*bal.OwnerSalaryGrowth, bal.OwnerSalaryMaxGrow)
	draw += capped(since*bal.LifestyleCreep, bal.LifestyleCreepMax)
	draw += bal.ReinvestmentBase + capped(since*bal.ReinvestmentGrowth, bal.ReinvestmentMax)

	if since >= bal.CarAfterMonths {
		draw += bal.CarMonthlyCost
	}
	if since >= bal.ApartmentAfter {
		draw += bal.ApartmentCost
	}
	if since >= bal.SocialAfterMonths {
		draw += bal.SocialObligations
	}

	return draw
}

func capped(v, max int) int {
	if v > max {
		return max
	}
	return v
}
