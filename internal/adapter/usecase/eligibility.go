package usecase

import "atlas-ads/internal/core/domain"

// isEligible decides whether an active campaign may serve today.
// Rejections are silent; ineligible campaigns are simply excluded.
// today is a YYYY-MM-DD string; scheduling dates compare
// lexicographically, which is equivalent to chronological order for
// this layout.
func isEligible(c *domain.Campaign, today string) bool {
	if c.IsUnderReview {
		return false
	}
	if c.StartDate != "" && c.StartDate > today {
		return false
	}
	if c.EndDate != "" && c.EndDate < today {
		return false
	}
	if c.RemainingBudgetCents() <= 0 {
		return false
	}
	return c.HasCreativeAsset()
}
