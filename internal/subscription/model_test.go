package subscription

import (
	"testing"
	"time"

	"github.com/dachraoui-ui/sport-club-mang/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTypeValid(t *testing.T) {
	assert.True(t, PlanMonthly.Valid())
	assert.True(t, PlanQuarterly.Valid())
	assert.True(t, PlanBiannual.Valid())
	assert.True(t, PlanAnnual.Valid())

	assert.False(t, PlanType("WEEKLY").Valid())
	assert.False(t, PlanType("").Valid())
	assert.False(t, PlanType("monthly").Valid())
}

func TestEndDateDerivation(t *testing.T) {
	start := api.NewDate(2024, time.January, 15)

	tests := []struct {
		plan PlanType
		want string
	}{
		{PlanMonthly, "2024-02-15"},
		{PlanQuarterly, "2024-04-15"},
		{PlanBiannual, "2024-07-15"},
		{PlanAnnual, "2025-01-15"},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			end, err := tt.plan.EndDate(start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, end.String())
		})
	}
}

func TestEndDateUnknownPlan(t *testing.T) {
	_, err := PlanType("WEEKLY").EndDate(api.NewDate(2024, time.January, 15))
	assert.ErrorIs(t, err, ErrUnknownPlanType)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Mensuel", PlanMonthly.DisplayName())
	assert.Equal(t, "Annuel", PlanAnnual.DisplayName())
}
