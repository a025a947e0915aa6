package services

import (
	"fmt"

	"github.com/akshat2912/vidyalaya/models"
)

// Monthly plan prices in paise.
const (
	planBasicMonthlyPaise int64 = 49900
	planProMonthlyPaise   int64 = 99900
)

// PlanUnitPrice returns the monthly price in paise for a plan type.
func PlanUnitPrice(planType string) (int64, error) {
	switch planType {
	case models.PlanTypeBasic:
		return planBasicMonthlyPaise, nil
	case models.PlanTypePro:
		return planProMonthlyPaise, nil
	default:
		return 0, fmt.Errorf("unknown plan type %q", planType)
	}
}

// PlanAmount computes the order amount in paise for a plan held for the given
// number of months (1..12).
func PlanAmount(planType string, months int) (int64, error) {
	if months < 1 || months > 12 {
		return 0, fmt.Errorf("plan duration must be between 1 and 12 months, got %d", months)
	}
	unit, err := PlanUnitPrice(planType)
	if err != nil {
		return 0, err
	}
	return unit * int64(months), nil
}
