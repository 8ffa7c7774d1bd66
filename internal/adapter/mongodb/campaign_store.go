package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"atlas-ads/internal/core/domain"
	"atlas-ads/internal/core/port"
)

const campaignCollection = "campaigns"

// CampaignStore implements port.CampaignStore on MongoDB. Campaigns are
// single documents with their daily metrics embedded under
// dailyMetrics.<day>, so one campaign's entire ledger update is a
// single atomic UpdateOne.
type CampaignStore struct {
	coll *mongo.Collection
}

// NewCampaignStore returns a store bound to the campaigns collection of
// the given database.
func NewCampaignStore(db *mongo.Database) *CampaignStore {
	return &CampaignStore{coll: db.Collection(campaignCollection)}
}

// campaignDoc is the persisted document shape. Absent and null fields
// decode identically to nil, matching the engine's "dimension not
// targeted" semantics.
type campaignDoc struct {
	ID                string   `bson:"_id"`
	OwnerID           string   `bson:"ownerId"`
	Status            string   `bson:"status"`
	IsUnderReview     bool     `bson:"isUnderReview"`
	StartDate         string   `bson:"startDate"`
	EndDate           string   `bson:"endDate"`
	Placement         string   `bson:"placement"`
	CreativeType      string   `bson:"creativeType"`
	AssetURL          *string  `bson:"assetUrl"`
	VideoStreamURL    *string  `bson:"videoStreamUrl"`
	VideoThumbnailURL *string  `bson:"videoThumbnailUrl"`
	BillingModel      string   `bson:"billingModel"`
	BudgetCents       *int64   `bson:"budgetCents"`
	BudgetAmount      string   `bson:"budgetAmount"`
	TargetPlaceID     *string  `bson:"targetPlaceId"`
	DestinationText   *string  `bson:"destinationText"`
	LocationText      *string  `bson:"locationText"`
	TravelStartDate   *string  `bson:"travelStartDate"`
	TravelEndDate     *string  `bson:"travelEndDate"`
	TargetGender      *string  `bson:"targetGender"`
	AgeMin            *int     `bson:"ageMin"`
	AgeMax            *string  `bson:"ageMax"`
	TripTypes         []string `bson:"tripTypes"`
	Activities        []string `bson:"activities"`
	TravelStyles      []string `bson:"travelStyles"`
	InterestKeywords  string   `bson:"interestKeywords"`
	PrimaryText       *string  `bson:"primaryText"`
	CallToAction      *string  `bson:"callToAction"`
	LandingURL        *string  `bson:"landingUrl"`
	BusinessName      *string  `bson:"businessName"`
	BusinessType      *string  `bson:"businessType"`
	BusinessAddress   *string  `bson:"businessAddress"`
	BusinessPhone     *string  `bson:"businessPhone"`
	BusinessEmail     *string  `bson:"businessEmail"`
	PromoCode         *string  `bson:"promoCode"`
	TotalImpressions  int64    `bson:"totalImpressions"`
	TotalClicks       int64    `bson:"totalClicks"`
}

func (d *campaignDoc) toDomain() domain.Campaign {
	return domain.Campaign{
		ID: d.ID, OwnerID: d.OwnerID,
		Status: d.Status, IsUnderReview: d.IsUnderReview,
		StartDate: d.StartDate, EndDate: d.EndDate, Placement: d.Placement,
		CreativeType: d.CreativeType, AssetURL: d.AssetURL,
		VideoStreamURL: d.VideoStreamURL, VideoThumbnailURL: d.VideoThumbnailURL,
		BillingModel: d.BillingModel, BudgetCents: d.BudgetCents, BudgetAmount: d.BudgetAmount,
		TargetPlaceID: d.TargetPlaceID, DestinationText: d.DestinationText,
		LocationText: d.LocationText, TravelStartDate: d.TravelStartDate,
		TravelEndDate: d.TravelEndDate, TargetGender: d.TargetGender,
		AgeMin: d.AgeMin, AgeMax: d.AgeMax,
		TripTypes: d.TripTypes, Activities: d.Activities, TravelStyles: d.TravelStyles,
		InterestKeywords: d.InterestKeywords,
		PrimaryText:      d.PrimaryText, CallToAction: d.CallToAction,
		LandingURL: d.LandingURL, BusinessName: d.BusinessName,
		BusinessType: d.BusinessType, BusinessAddress: d.BusinessAddress,
		BusinessPhone: d.BusinessPhone, BusinessEmail: d.BusinessEmail,
		PromoCode:        d.PromoCode,
		TotalImpressions: d.TotalImpressions, TotalClicks: d.TotalClicks,
	}
}

// ListActiveByPlacement returns every active campaign for a placement.
func (s *CampaignStore) ListActiveByPlacement(ctx context.Context, placement string) ([]domain.Campaign, error) {
	cur, err := s.coll.Find(ctx, bson.M{
		"placement": placement,
		"status":    domain.StatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Campaign
	for cur.Next(ctx) {
		var doc campaignDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode campaign: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// GetCampaigns is a batched point read; unknown ids are absent from the
// result map.
func (s *CampaignStore) GetCampaigns(ctx context.Context, ids []string) (map[string]domain.Campaign, error) {
	out := make(map[string]domain.Campaign, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("get campaigns: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc campaignDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode campaign: %w", err)
		}
		out[doc.ID] = doc.toDomain()
	}
	return out, cur.Err()
}

// ApplyLedger applies one campaign's deltas as a single
// aggregation-pipeline UpdateOne, which MongoDB applies atomically per
// document. Counter expressions use $ifNull so first writes start from
// zero, and the budget expression falls back to the legacy amount so a
// record is migrated and charged in the same write. Zero deltas are
// omitted from the pipeline.
func (s *CampaignStore) ApplyLedger(ctx context.Context, up port.LedgerUpdate) error {
	set := bson.M{"updatedAt": "$$NOW"}
	if up.Impressions != 0 {
		set["totalImpressions"] = addExpr("$totalImpressions", up.Impressions)
	}
	if up.Clicks != 0 {
		set["totalClicks"] = addExpr("$totalClicks", up.Clicks)
	}
	if up.ChargeCents != 0 || up.LegacyBudgetCents != nil {
		var fallback int64
		if up.LegacyBudgetCents != nil {
			fallback = *up.LegacyBudgetCents
		}
		set["budgetCents"] = bson.M{"$subtract": bson.A{
			bson.M{"$ifNull": bson.A{"$budgetCents", fallback}},
			up.ChargeCents,
		}}
	}
	for _, d := range up.Days {
		prefix := "dailyMetrics." + d.Day + "."
		if d.Impressions != 0 {
			set[prefix+"impressions"] = addExpr("$"+prefix+"impressions", d.Impressions)
		}
		if d.Clicks != 0 {
			set[prefix+"clicks"] = addExpr("$"+prefix+"clicks", d.Clicks)
		}
		if d.SpendCents != 0 {
			set[prefix+"spendCents"] = addExpr("$"+prefix+"spendCents", d.SpendCents)
		}
		for q, n := range d.Quartiles {
			if n != 0 {
				field := fmt.Sprintf("%svideoQuartiles.%d", prefix, q)
				set[field] = addExpr("$"+field, n)
			}
		}
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": up.CampaignID},
		mongo.Pipeline{bson.D{{Key: "$set", Value: set}}})
	if err != nil {
		return fmt.Errorf("update campaign %s: %w", up.CampaignID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("campaign %s not found", up.CampaignID)
	}
	return nil
}

// addExpr builds a pipeline expression incrementing a possibly-absent
// numeric field.
func addExpr(path string, delta int64) bson.M {
	return bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{path, 0}}, delta}}
}

// GetBudgetCents reads the remaining budget for the best-effort pause
// check. A still-unmigrated legacy record resolves through its decimal
// amount.
func (s *CampaignStore) GetBudgetCents(ctx context.Context, id string) (int64, error) {
	var doc struct {
		BudgetCents  *int64 `bson:"budgetCents"`
		BudgetAmount string `bson:"budgetAmount"`
	}
	err := s.coll.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"budgetCents": 1, "budgetAmount": 1})).
		Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("read budget %s: %w", id, err)
	}
	if doc.BudgetCents != nil {
		return *doc.BudgetCents, nil
	}
	return domain.LegacyAmountCents(doc.BudgetAmount), nil
}

// PauseCampaign flips the campaign to paused.
func (s *CampaignStore) PauseCampaign(ctx context.Context, id string) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": domain.StatusPaused}})
	if err != nil {
		return fmt.Errorf("pause campaign %s: %w", id, err)
	}
	return nil
}
