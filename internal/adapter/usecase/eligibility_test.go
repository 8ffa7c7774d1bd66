package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atlas-ads/internal/core/domain"
)

func eligibleCampaign() domain.Campaign {
	budget := int64(1000)
	asset := "https://cdn.example.com/a.jpg"
	return domain.Campaign{
		ID:          "camp-1",
		Status:      domain.StatusActive,
		StartDate:   "2026-01-01",
		EndDate:     "2026-12-31",
		BudgetCents: &budget,
		AssetURL:    &asset,
	}
}

func TestIsEligible(t *testing.T) {
	const today = "2026-06-15"

	c := eligibleCampaign()
	assert.True(t, isEligible(&c, today))

	c = eligibleCampaign()
	c.IsUnderReview = true
	assert.False(t, isEligible(&c, today), "under review")

	c = eligibleCampaign()
	c.StartDate = "2026-06-16"
	assert.False(t, isEligible(&c, today), "not started yet")

	c = eligibleCampaign()
	c.EndDate = "2026-06-14"
	assert.False(t, isEligible(&c, today), "already ended")

	c = eligibleCampaign()
	c.StartDate, c.EndDate = today, today
	assert.True(t, isEligible(&c, today), "single-day schedule serves on its day")

	c = eligibleCampaign()
	zero := int64(0)
	c.BudgetCents = &zero
	assert.False(t, isEligible(&c, today), "exhausted budget")

	c = eligibleCampaign()
	c.BudgetCents = nil
	c.BudgetAmount = "25.00"
	assert.True(t, isEligible(&c, today), "legacy budget resolves")

	c = eligibleCampaign()
	c.BudgetCents = nil
	c.BudgetAmount = "garbage"
	assert.False(t, isEligible(&c, today), "unparsable legacy budget is zero")

	c = eligibleCampaign()
	c.AssetURL = nil
	assert.False(t, isEligible(&c, today), "nothing to render")
}
