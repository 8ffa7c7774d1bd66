package usecase

import "atlas-ads/internal/core/domain"

// dayTally accumulates one campaign's counters for a single UTC day.
type dayTally struct {
	impressions int64
	clicks      int64
	quartiles   map[int]int64
}

// campaignTally accumulates one campaign's counters across a batch.
// dayOrder preserves first-seen encounter order; the billing allocator
// relies on it for deterministic remainder assignment.
type campaignTally struct {
	events      int
	impressions int64
	clicks      int64
	days        map[string]*dayTally
	dayOrder    []string
}

// aggregation partitions a batch by campaign, preserving campaign
// encounter order for deterministic processing.
type aggregation struct {
	byCampaign map[string]*campaignTally
	order      []string
}

// aggregateEvents groups validated events by campaign and by the UTC
// calendar day of each event's own timestamp, not server-received time.
func aggregateEvents(events []domain.AdEvent) aggregation {
	agg := aggregation{byCampaign: make(map[string]*campaignTally)}
	for _, ev := range events {
		t := agg.byCampaign[ev.CampaignID]
		if t == nil {
			t = &campaignTally{days: make(map[string]*dayTally)}
			agg.byCampaign[ev.CampaignID] = t
			agg.order = append(agg.order, ev.CampaignID)
		}
		day := domain.EpochMsToDayKey(ev.TimestampMs)
		d := t.days[day]
		if d == nil {
			d = &dayTally{quartiles: make(map[int]int64)}
			t.days[day] = d
			t.dayOrder = append(t.dayOrder, day)
		}
		t.events++
		switch ev.Type {
		case domain.EventImpression:
			t.impressions++
			d.impressions++
		case domain.EventClick:
			t.clicks++
			d.clicks++
		case domain.EventVideoQuartile:
			d.quartiles[ev.Quartile]++
		}
	}
	return agg
}
