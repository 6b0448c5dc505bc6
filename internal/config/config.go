package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a balance file from disk. Values present in the file override
// the given base preset; absent values keep the preset's numbers.
func Load(path string, base Balance) (Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("read balance file: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Balance{}, fmt.Errorf("parse balance file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Balance{}, fmt.Errorf("balance file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects balance values the engine cannot run with.
func (b Balance) Validate() error {
	if b.TotalMonths <= 0 {
		return fmt.Errorf("total_months must be positive, got %d", b.TotalMonths)
	}
	if b.StartMonth < 1 || b.StartMonth > 12 {
		return fmt.Errorf("start_month must be 1..12, got %d", b.StartMonth)
	}
	if b.BuildingDeadlineMonth <= 0 || b.BuildingDeadlineMonth > b.TotalMonths {
		return fmt.Errorf("building_deadline_month %d outside run of %d months", b.BuildingDeadlineMonth, b.TotalMonths)
	}
	if b.BuildingExtendedMonth <= b.BuildingDeadlineMonth {
		return fmt.Errorf("building_extended_month %d must follow deadline month %d", b.BuildingExtendedMonth, b.BuildingDeadlineMonth)
	}
	if b.BuildingCost <= 0 {
		return fmt.Errorf("building_cost must be positive, got %d", b.BuildingCost)
	}
	if b.MaxBurnouts <= 0 {
		return fmt.Errorf("max_burnouts must be positive, got %d", b.MaxBurnouts)
	}
	if b.MinEnergyCap <= 0 || b.MinEnergyCap > 100 {
		return fmt.Errorf("min_energy_cap must be 1..100, got %d", b.MinEnergyCap)
	}
	if b.TaxRate < 0 || b.TaxRate >= 1 {
		return fmt.Errorf("tax_rate must be in [0,1), got %v", b.TaxRate)
	}
	return nil
}
