package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

func TestComputeEndDate(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	cases := []struct {
		plan models.TypeSubscription
		want string
	}{
		{models.TypeSubscriptionMonthly, "2024-02-01"},
		{models.TypeSubscriptionSemestriel, "2024-07-01"},
		{models.TypeSubscriptionAnnual, "2025-01-01"},
	}
	for _, tc := range cases {
		t.Run(string(tc.plan), func(t *testing.T) {
			end, err := ComputeEndDate(tc.plan, start)
			require.NoError(t, err)
			assert.Equal(t, tc.want, end.String())
		})
	}
}

func TestComputeEndDateClampsMonthEnd(t *testing.T) {
	end, err := ComputeEndDate(models.TypeSubscriptionMonthly, models.NewDate(2024, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", end.String())

	end, err = ComputeEndDate(models.TypeSubscriptionSemestriel, models.NewDate(2023, time.August, 31))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", end.String())

	end, err = ComputeEndDate(models.TypeSubscriptionAnnual, models.NewDate(2024, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", end.String())
}

func TestComputeEndDateRejectsUnknownPlan(t *testing.T) {
	_, err := ComputeEndDate("WEEKLY", models.NewDate(2024, time.January, 1))
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPlanType))

	_, err = ComputeEndDate("", models.NewDate(2024, time.January, 1))
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPlanType))
}

func TestComputeEndDateRequiresStart(t *testing.T) {
	_, err := ComputeEndDate(models.TypeSubscriptionAnnual, models.Date{})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
