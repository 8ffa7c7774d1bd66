package port

import (
	"context"

	"atlas-ads/internal/core/domain"
)

// DayDelta carries one UTC day's counter increments for a campaign.
type DayDelta struct {
	Day         string
	Impressions int64
	Clicks      int64
	Quartiles   map[int]int64
	SpendCents  int64
}

// LedgerUpdate is one campaign's atomic batch of relative increments.
// LegacyBudgetCents is non-nil on the first charge against a record
// that predates the budgetCents field; the store must initialize the
// budget from it minus ChargeCents in the same write, never increment
// from an implicit zero.
type LedgerUpdate struct {
	CampaignID        string
	Impressions       int64
	Clicks            int64
	ChargeCents       int64
	LegacyBudgetCents *int64
	Days              []DayDelta
}

// CampaignStore is the persistence contract for the engine. It is an
// outbound port; implementations must be concurrency-safe.
//
// ApplyLedger must apply every delta of one update atomically (all
// counters for the campaign update or none) and must only ever issue
// relative increments/decrements, never read-modify-write, so that
// concurrent ingestion calls touching the same campaign cannot race.
// Updates for different campaigns are independent atomic units.
type CampaignStore interface {
	// ListActiveByPlacement returns every status=active campaign for a
	// placement. Eligibility filtering beyond status happens in the engine.
	ListActiveByPlacement(ctx context.Context, placement string) ([]domain.Campaign, error)

	// GetCampaigns is a batched point read. Unknown ids are simply
	// absent from the result map.
	GetCampaigns(ctx context.Context, ids []string) (map[string]domain.Campaign, error)

	// ApplyLedger applies one campaign's counter, budget and
	// daily-metrics deltas as a single atomic unit.
	ApplyLedger(ctx context.Context, up LedgerUpdate) error

	// GetBudgetCents reads the current remaining budget. Used only by
	// the best-effort post-charge exhaustion check.
	GetBudgetCents(ctx context.Context, id string) (int64, error)

	// PauseCampaign flips the campaign status to paused.
	PauseCampaign(ctx context.Context, id string) error
}
