package usecase

import "atlas-ads/internal/core/domain"

// Flat pricing: $5.00 per thousand impressions, $0.50 per click.
const (
	cpmRateCents int64 = 500
	cpcRateCents int64 = 50
)

// chargeCentsFor converts a campaign's aggregated counts into a total
// charge. CPM rounds half-up to the nearest cent; CPC is exact integer
// arithmetic. Clicks are ignored under cpm and impressions under cpc.
func chargeCentsFor(billingModel string, t *campaignTally) int64 {
	switch billingModel {
	case domain.BillingCPC:
		return t.clicks * cpcRateCents
	default:
		return (t.impressions*cpmRateCents + 500) / 1000
	}
}

// allocateDailySpend apportions the exact total charge across the days
// the batch spans.
//
// For cpm, rounding each day's share independently can make the per-day
// sums diverge from the total, so each day gets the floor of its
// proportional share and the leftover remainder goes entirely to the
// day with the highest impression count (first-seen order breaks ties).
// The per-day sums then equal chargeCents by construction. For cpc the
// shares are already exact integers.
func allocateDailySpend(billingModel string, t *campaignTally, chargeCents int64) map[string]int64 {
	spend := make(map[string]int64, len(t.days))
	if billingModel == domain.BillingCPC {
		for day, d := range t.days {
			spend[day] = d.clicks * cpcRateCents
		}
		return spend
	}
	if chargeCents <= 0 || t.impressions <= 0 {
		for day := range t.days {
			spend[day] = 0
		}
		return spend
	}
	var allocated int64
	topDay := ""
	var topImpressions int64 = -1
	for _, day := range t.dayOrder {
		d := t.days[day]
		share := d.impressions * chargeCents / t.impressions
		spend[day] = share
		allocated += share
		if d.impressions > topImpressions {
			topImpressions = d.impressions
			topDay = day
		}
	}
	spend[topDay] += chargeCents - allocated
	return spend
}
