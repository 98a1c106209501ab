package service

import (
	"fmt"
	"time"

	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

// planMonths is the length in months of each subscription plan.
var planMonths = map[models.TypeSubscription]int{
	models.TypeSubscriptionMonthly:    1,
	models.TypeSubscriptionSemestriel: 6,
	models.TypeSubscriptionAnnual:     12,
}

// ComputeEndDate returns the end date of a subscription of plan type starting on start.
// A day missing from the target month is clamped to that month's last day.
func ComputeEndDate(planType models.TypeSubscription, start models.Date) (models.Date, error) {
	months, ok := planMonths[planType]
	if !ok {
		return models.Date{}, appErrors.Clone(appErrors.ErrInvalidPlanType, fmt.Sprintf("unknown subscription type %q", planType))
	}
	if start.IsZero() {
		return models.Date{}, appErrors.Clone(appErrors.ErrValidation, "start_date is required")
	}
	return addMonths(start, months), nil
}

func addMonths(d models.Date, months int) models.Date {
	first := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return models.NewDate(first.Year(), first.Month(), day)
}
