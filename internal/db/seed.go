package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"atlas-ads/internal/core/domain"
)

// Seed inserts demo travel campaigns into the PostgreSQL store. Ids
// are derived from the business name, so reseeding an already-seeded
// database is a no-op. Intended for development databases.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	today := time.Now().UTC()
	start := today.AddDate(0, 0, -7).Format(domain.DateLayout)
	end := today.AddDate(0, 2, 0).Format(domain.DateLayout)

	type demo struct {
		placement    string
		creativeType string
		billingModel string
		budgetCents  *int64
		budgetAmount string
		destination  string
		placeID      string
		tripTypes    []string
		activities   []string
		keywords     string
		businessName string
	}
	cents := func(v int64) *int64 { return &v }
	demos := []demo{
		{domain.PlacementVideoFeed, domain.CreativeVideo, domain.BillingCPM,
			cents(500000), "", "Lisbon", "ChIJO_PkYRozGQ0R0DaQ5L3rAAQ",
			[]string{"city break", "solo"}, []string{"food tours", "nightlife"},
			"wine, seafood, fado", "Tagus Tours"},
		{domain.PlacementVideoFeed, domain.CreativeVideo, domain.BillingCPC,
			cents(250000), "", "Kyoto", "",
			[]string{"culture"}, []string{"temples", "tea ceremony"},
			"zen, gardens, ryokan", "Sakura Stays"},
		{domain.PlacementItineraryFeed, domain.CreativeImage, domain.BillingCPM,
			cents(800000), "", "Patagonia", "",
			[]string{"adventure", "hiking"}, []string{"trekking", "camping"},
			"glaciers, trails, wildlife", "Andes Basecamp"},
		{domain.PlacementItineraryFeed, domain.CreativeImage, domain.BillingCPC,
			nil, "150.00", "Amalfi Coast", "",
			[]string{"romantic", "beach"}, []string{"boat trips"},
			"limoncello, coastline", "Costiera Charters"},
		{domain.PlacementAISlot, domain.CreativeImage, domain.BillingCPM,
			cents(120000), "", "Reykjavik", "",
			[]string{"nature"}, []string{"northern lights", "hot springs"},
			"aurora, geysers, lagoons", "Borealis Trips"},
	}

	for i, d := range demos {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("atlas-ads/demo/"+d.businessName)).String()
		assetURL := fmt.Sprintf("https://cdn.example.com/creatives/%s.jpg", id)
		var videoURL *string
		if d.creativeType == domain.CreativeVideo {
			v := fmt.Sprintf("https://cdn.example.com/streams/%s.m3u8", id)
			videoURL = &v
		}
		primary := fmt.Sprintf("Discover %s with %s", d.destination, d.businessName)
		landing := fmt.Sprintf("https://example.com/offers/%d", i+1)

		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, status, start_date, end_date, placement, creative_type,
     asset_url, video_stream_url, billing_model, budget_cents, budget_amount,
     target_place_id, destination_text, trip_types, activities,
     interest_keywords, primary_text, landing_url, business_name)
VALUES ($1,$2,'active',$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
ON CONFLICT DO NOTHING`,
			id, "demo-advertiser", start, end, d.placement, d.creativeType,
			assetURL, videoURL, d.billingModel, d.budgetCents, d.budgetAmount,
			nullable(d.placeID), nullable(d.destination), d.tripTypes, d.activities,
			d.keywords, primary, landing, d.businessName)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", d.businessName, err)
		}
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
