package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"atlas-ads/internal/core/domain"
	"atlas-ads/internal/core/port"
)

// defaultCallToAction is substituted when a campaign has no CTA at all.
// An explicit empty string on the record passes through unchanged.
const defaultCallToAction = "Learn More"

// AdUseCase implements the ad delivery engine: campaign selection and
// event ingestion. It is stateless between calls; all durable state
// lives behind the CampaignStore port.
type AdUseCase struct {
	store  port.CampaignStore
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewAdUseCase creates the engine with the provided store and logger.
func NewAdUseCase(store port.CampaignStore, logger *slog.Logger) *AdUseCase {
	return &AdUseCase{store: store, logger: logger, now: time.Now}
}

// SelectAds filters the placement's active campaigns for eligibility,
// scores survivors against the user context, orders them by score
// descending with campaign id ascending as the tie break, and truncates
// to the requested limit. Zero matches is an empty list, not an error.
func (u *AdUseCase) SelectAds(ctx context.Context, req port.SelectAdsRequest) (*port.SelectAdsResponse, error) {
	placement, err := parsePlacement(req.Placement)
	if err != nil {
		return nil, err
	}
	limit := parseLimit(req.Limit)
	userCtx, err := parseUserContext(req.UserContext)
	if err != nil {
		return nil, err
	}

	campaigns, err := u.store.ListActiveByPlacement(ctx, placement)
	if err != nil {
		return nil, err
	}

	today := domain.DayKey(u.now())
	type scored struct {
		campaign *domain.Campaign
		score    int
	}
	ranked := make([]scored, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		if !isEligible(c, today) {
			continue
		}
		ranked = append(ranked, scored{campaign: c, score: scoreCampaign(c, userCtx)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].campaign.ID < ranked[j].campaign.ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ads := make([]port.AdUnit, 0, len(ranked))
	for _, r := range ranked {
		ads = append(ads, toAdUnit(r.campaign))
	}
	return &port.SelectAdsResponse{Ads: ads}, nil
}

// toAdUnit maps a campaign to its public wire shape. Targeting
// attributes and budget never leave the engine.
func toAdUnit(c *domain.Campaign) port.AdUnit {
	cta := defaultCallToAction
	if c.CallToAction != nil {
		cta = *c.CallToAction
	}
	return port.AdUnit{
		CampaignID:        c.ID,
		Placement:         c.Placement,
		CreativeType:      c.CreativeType,
		AssetURL:          c.AssetURL,
		VideoStreamURL:    c.VideoStreamURL,
		VideoThumbnailURL: c.VideoThumbnailURL,
		PrimaryText:       c.PrimaryText,
		CallToAction:      cta,
		LandingURL:        c.LandingURL,
		BillingModel:      c.BillingModel,
		BusinessName:      c.BusinessName,
		BusinessType:      c.BusinessType,
		BusinessAddress:   c.BusinessAddress,
		BusinessPhone:     c.BusinessPhone,
		BusinessEmail:     c.BusinessEmail,
		PromoCode:         c.PromoCode,
	}
}

// LogAdEvents runs the ingestion pipeline: per-event validation,
// aggregation by campaign and UTC day, pricing, and one atomic ledger
// write per campaign. Per-event problems are counted in skipped; a
// failed ledger write moves that campaign's events into failed and does
// not disturb other campaigns in the batch.
func (u *AdUseCase) LogAdEvents(ctx context.Context, req port.LogEventsRequest) (*port.LogEventsResponse, error) {
	trimmed := bytes.TrimSpace(req.Events)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, port.NewClientError("events must be an array")
	}
	var rawEvents []json.RawMessage
	if err := json.Unmarshal(trimmed, &rawEvents); err != nil {
		return nil, port.NewClientError("events must be an array")
	}
	if len(rawEvents) > maxEventsPerRequest {
		return nil, port.NewClientError("too many events: max %d per request", maxEventsPerRequest)
	}

	resp := &port.LogEventsResponse{}
	nowMs := u.now().UnixMilli()
	valid := make([]domain.AdEvent, 0, len(rawEvents))
	for _, raw := range rawEvents {
		var ev rawEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			resp.Skipped++
			u.logger.Debug("event skipped", slog.String("reason", reasonNotAnObject))
			continue
		}
		event, reason := validateEvent(ev, nowMs)
		if reason != "" {
			resp.Skipped++
			u.logger.Debug("event skipped", slog.String("reason", reason))
			continue
		}
		valid = append(valid, event)
	}
	if len(valid) == 0 {
		return resp, nil
	}

	agg := aggregateEvents(valid)
	known, err := u.store.GetCampaigns(ctx, agg.order)
	if err != nil {
		return nil, err
	}

	for _, id := range agg.order {
		tally := agg.byCampaign[id]
		campaign, ok := known[id]
		if !ok || campaign.Status != domain.StatusActive {
			// Deleted, spoofed or non-serving campaign ids drop here.
			resp.Skipped += tally.events
			u.logger.Info("events dropped for unknown or inactive campaign",
				slog.String("campaign_id", id), slog.Int("events", tally.events))
			continue
		}

		charge := chargeCentsFor(campaign.BillingModel, tally)
		update := buildLedgerUpdate(&campaign, tally, charge)
		if err := u.store.ApplyLedger(ctx, update); err != nil {
			resp.Failed += tally.events
			u.logger.Error("ledger write failed",
				slog.String("campaign_id", id), slog.Any("error", err))
			continue
		}
		resp.Processed += tally.events

		if charge > 0 {
			u.checkBudgetExhaustion(ctx, id)
		}
	}
	return resp, nil
}

// buildLedgerUpdate assembles one campaign's atomic increment batch.
// When the record predates budgetCents, the legacy decimal amount rides
// along so the store can initialize the budget minus the charge in the
// same write instead of decrementing from an implicit zero.
func buildLedgerUpdate(c *domain.Campaign, t *campaignTally, chargeCents int64) port.LedgerUpdate {
	up := port.LedgerUpdate{
		CampaignID:  c.ID,
		Impressions: t.impressions,
		Clicks:      t.clicks,
		ChargeCents: chargeCents,
	}
	if c.BudgetCents == nil {
		legacy := domain.LegacyAmountCents(c.BudgetAmount)
		up.LegacyBudgetCents = &legacy
	}
	spend := allocateDailySpend(c.BillingModel, t, chargeCents)
	for _, day := range t.dayOrder {
		d := t.days[day]
		delta := port.DayDelta{
			Day:         day,
			Impressions: d.impressions,
			Clicks:      d.clicks,
			SpendCents:  spend[day],
		}
		if len(d.quartiles) > 0 {
			delta.Quartiles = make(map[int]int64, len(d.quartiles))
			for q, n := range d.quartiles {
				delta.Quartiles[q] = n
			}
		}
		up.Days = append(up.Days, delta)
	}
	return up
}

// checkBudgetExhaustion is the deliberately non-atomic post-charge
// check: read the just-updated budget and pause the campaign when it is
// exhausted. The charge is already durable, so any failure here is
// logged and swallowed; a missed pause self-heals on the next ingestion
// call or the out-of-band audit sweep.
func (u *AdUseCase) checkBudgetExhaustion(ctx context.Context, id string) {
	remaining, err := u.store.GetBudgetCents(ctx, id)
	if err != nil {
		u.logger.Warn("budget check failed",
			slog.String("campaign_id", id), slog.Any("error", err))
		return
	}
	if remaining > 0 {
		return
	}
	if err := u.store.PauseCampaign(ctx, id); err != nil {
		u.logger.Warn("budget exhausted but pause failed",
			slog.String("campaign_id", id), slog.Any("error", err))
		return
	}
	u.logger.Info("campaign paused on budget exhaustion",
		slog.String("campaign_id", id), slog.Int64("remaining_cents", remaining))
}
