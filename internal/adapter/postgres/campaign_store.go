package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"atlas-ads/internal/core/domain"
	"atlas-ads/internal/core/port"
)

// CampaignStore implements port.CampaignStore on PostgreSQL via pgxpool.
// Ledger writes only ever issue relative increments inside a
// per-campaign transaction; counters are never read-modify-written.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

const campaignColumns = `
    id, owner_id, status, is_under_review, start_date, end_date, placement,
    creative_type, asset_url, video_stream_url, video_thumbnail_url,
    billing_model, budget_cents, budget_amount,
    target_place_id, destination_text, location_text,
    travel_start_date, travel_end_date, target_gender, age_min, age_max,
    trip_types, activities, travel_styles, interest_keywords,
    primary_text, call_to_action, landing_url,
    business_name, business_type, business_address, business_phone,
    business_email, promo_code, total_impressions, total_clicks`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Status, &c.IsUnderReview, &c.StartDate, &c.EndDate,
		&c.Placement, &c.CreativeType, &c.AssetURL, &c.VideoStreamURL,
		&c.VideoThumbnailURL, &c.BillingModel, &c.BudgetCents, &c.BudgetAmount,
		&c.TargetPlaceID, &c.DestinationText, &c.LocationText,
		&c.TravelStartDate, &c.TravelEndDate, &c.TargetGender, &c.AgeMin, &c.AgeMax,
		&c.TripTypes, &c.Activities, &c.TravelStyles, &c.InterestKeywords,
		&c.PrimaryText, &c.CallToAction, &c.LandingURL,
		&c.BusinessName, &c.BusinessType, &c.BusinessAddress, &c.BusinessPhone,
		&c.BusinessEmail, &c.PromoCode, &c.TotalImpressions, &c.TotalClicks,
	)
	return c, err
}

// ListActiveByPlacement returns every active campaign for a placement.
func (s *CampaignStore) ListActiveByPlacement(ctx context.Context, placement string) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE placement = $1 AND status = $2`,
		placement, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaigns is a batched point read; unknown ids are absent from the
// result map.
func (s *CampaignStore) GetCampaigns(ctx context.Context, ids []string) (map[string]domain.Campaign, error) {
	out := make(map[string]domain.Campaign, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := s.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, err
	}
	for _, c := range campaigns {
		out[c.ID] = c
	}
	return out, nil
}

// ApplyLedger applies one campaign's deltas inside a transaction. Field
// increments with a zero delta are omitted from the UPDATE entirely.
// On the first charge against a legacy record the budget is set to
// COALESCE(budget_cents, legacy) - charge in the same statement, which
// both migrates and charges atomically and stays idempotent when a
// concurrent call already migrated.
func (s *CampaignStore) ApplyLedger(ctx context.Context, up port.LedgerUpdate) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ledger tx: %w", err)
	}
	defer tx.Rollback(ctx)

	sets := []string{"updated_at = now()"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if up.Impressions != 0 {
		sets = append(sets, "total_impressions = total_impressions + "+arg(up.Impressions))
	}
	if up.Clicks != 0 {
		sets = append(sets, "total_clicks = total_clicks + "+arg(up.Clicks))
	}
	switch {
	case up.LegacyBudgetCents != nil:
		sets = append(sets,
			"budget_cents = COALESCE(budget_cents, "+arg(*up.LegacyBudgetCents)+") - "+arg(up.ChargeCents))
	case up.ChargeCents != 0:
		sets = append(sets, "budget_cents = budget_cents - "+arg(up.ChargeCents))
	}

	query := "UPDATE campaigns SET " + strings.Join(sets, ", ") + " WHERE id = " + arg(up.CampaignID)
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update campaign %s: %w", up.CampaignID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s not found", up.CampaignID)
	}

	for _, d := range up.Days {
		_, err = tx.Exec(ctx, `
            INSERT INTO daily_metrics
                (campaign_id, day, impressions, clicks, video_q25, video_q50, video_q75, video_q100, spend_cents)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            ON CONFLICT (campaign_id, day) DO UPDATE SET
                impressions = daily_metrics.impressions + EXCLUDED.impressions,
                clicks      = daily_metrics.clicks + EXCLUDED.clicks,
                video_q25   = daily_metrics.video_q25 + EXCLUDED.video_q25,
                video_q50   = daily_metrics.video_q50 + EXCLUDED.video_q50,
                video_q75   = daily_metrics.video_q75 + EXCLUDED.video_q75,
                video_q100  = daily_metrics.video_q100 + EXCLUDED.video_q100,
                spend_cents = daily_metrics.spend_cents + EXCLUDED.spend_cents`,
			up.CampaignID, d.Day, d.Impressions, d.Clicks,
			d.Quartiles[25], d.Quartiles[50], d.Quartiles[75], d.Quartiles[100],
			d.SpendCents)
		if err != nil {
			return fmt.Errorf("upsert daily metrics %s/%s: %w", up.CampaignID, d.Day, err)
		}
	}
	return tx.Commit(ctx)
}

// GetBudgetCents reads the remaining budget for the best-effort pause
// check. A still-unmigrated legacy record resolves through its decimal
// amount.
func (s *CampaignStore) GetBudgetCents(ctx context.Context, id string) (int64, error) {
	var budget *int64
	var amount string
	err := s.pool.QueryRow(ctx,
		`SELECT budget_cents, budget_amount FROM campaigns WHERE id = $1`, id).
		Scan(&budget, &amount)
	if err != nil {
		return 0, fmt.Errorf("read budget %s: %w", id, err)
	}
	if budget != nil {
		return *budget, nil
	}
	return domain.LegacyAmountCents(amount), nil
}

// PauseCampaign flips the campaign to paused.
func (s *CampaignStore) PauseCampaign(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`,
		domain.StatusPaused, id)
	if err != nil {
		return fmt.Errorf("pause campaign %s: %w", id, err)
	}
	return nil
}
