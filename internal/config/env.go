package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables.
// Falls back to the realistic preset if variables are not set.
func FromEnv() Balance {
	cfg := Realistic()

	// Support preset modes first so individual overrides still apply on top
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "forgiving":
			cfg = Forgiving()
		case "brutal":
			cfg = Brutal()
		}
	}

	if val := getEnvInt("STARTING_BANK"); val > 0 {
		cfg.StartingBank = val
	}
	if val := getEnvInt("STARTING_STRESS"); val >= 0 && os.Getenv("STARTING_STRESS") != "" {
		cfg.StartingStress = val
	}
	if val := getEnvInt("TOTAL_MONTHS"); val > 0 {
		cfg.TotalMonths = val
	}
	if val := getEnvInt("BUILDING_COST"); val > 0 {
		cfg.BuildingCost = val
	}
	if val := getEnvInt("BUILDING_DEADLINE_MONTH"); val > 0 {
		cfg.BuildingDeadlineMonth = val
		cfg.BuildingExtendedMonth = val + 1
	}
	if val := getEnvInt("BUILDING_DELAY_PENALTY"); val > 0 {
		cfg.BuildingDelayPenalty = val
	}
	if val := getEnvInt("BASE_MONTHLY_SALES"); val > 0 {
		cfg.BaseMonthlySales = val
	}
	if val := getEnvInt("BURNOUT_THRESHOLD_BASE"); val > 0 {
		cfg.BurnoutThresholdBase = val
	}
	if val := getEnvInt("BURNOUT_RECOVERY_MONTHS"); val > 0 {
		cfg.BurnoutRecoveryMonths = val
	}
	if val := getEnvInt("MAX_LOAN"); val > 0 {
		cfg.MaxLoan = val
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
