package domain

import (
	"math"
	"strconv"
	"strings"
)

// Campaign statuses. The engine only ever moves a campaign between
// active and paused; draft and ended are managed by the admin flow.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusPaused = "paused"
	StatusEnded  = "ended"
)

// Placements are the UI surfaces that request ads. Each placement has
// an independent campaign pool.
const (
	PlacementVideoFeed     = "video_feed"
	PlacementItineraryFeed = "itinerary_feed"
	PlacementAISlot        = "ai_slot"
)

// ValidPlacement reports whether p names a known placement.
func ValidPlacement(p string) bool {
	switch p {
	case PlacementVideoFeed, PlacementItineraryFeed, PlacementAISlot:
		return true
	}
	return false
}

// Billing models.
const (
	BillingCPM = "cpm"
	BillingCPC = "cpc"
)

// Creative types.
const (
	CreativeImage = "image"
	CreativeVideo = "video"
)

// AgeMaxOpenEnded is the sentinel for an unbounded upper age target.
const AgeMaxOpenEnded = "65+"

// Campaign is one advertiser's running ad. Budgets are stored in integer
// cents; BudgetCents is nil on legacy records that only carry the decimal
// BudgetAmount string and is initialized lazily by the ledger writer.
// All targeting fields are optional; a nil field matches everyone on
// that dimension.
type Campaign struct {
	ID      string
	OwnerID string

	Status        string
	IsUnderReview bool

	// Scheduling dates are inclusive YYYY-MM-DD calendar strings compared
	// lexicographically against today.
	StartDate string
	EndDate   string

	Placement string

	CreativeType      string
	AssetURL          *string
	VideoStreamURL    *string
	VideoThumbnailURL *string

	BillingModel string
	BudgetCents  *int64
	BudgetAmount string

	// Targeting. DestinationText and LocationText are mutually exclusive
	// storage for the same concept; which one is populated depends on the
	// placement the campaign was created for.
	TargetPlaceID    *string
	DestinationText  *string
	LocationText     *string
	TravelStartDate  *string
	TravelEndDate    *string
	TargetGender     *string
	AgeMin           *int
	AgeMax           *string
	TripTypes        []string
	Activities       []string
	TravelStyles     []string
	InterestKeywords string

	// Public creative copy exposed on the wire.
	PrimaryText     *string
	CallToAction    *string
	LandingURL      *string
	BusinessName    *string
	BusinessType    *string
	BusinessAddress *string
	BusinessPhone   *string
	BusinessEmail   *string
	PromoCode       *string

	TotalImpressions int64
	TotalClicks      int64
}

// RemainingBudgetCents resolves the authoritative remaining budget.
// BudgetCents wins when present; otherwise the legacy decimal amount is
// converted to cents. An unparsable amount resolves to 0, never to
// "unlimited".
func (c *Campaign) RemainingBudgetCents() int64 {
	if c.BudgetCents != nil {
		return *c.BudgetCents
	}
	return LegacyAmountCents(c.BudgetAmount)
}

// LegacyAmountCents converts a decimal budget string such as "12.50"
// into cents, rounding to the nearest cent. Unparsable input yields 0.
func LegacyAmountCents(amount string) int64 {
	s := strings.TrimSpace(amount)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Round(f * 100))
}

// HasCreativeAsset reports whether the campaign has at least one asset
// reference and can therefore be rendered.
func (c *Campaign) HasCreativeAsset() bool {
	if c.AssetURL != nil && *c.AssetURL != "" {
		return true
	}
	if c.VideoStreamURL != nil && *c.VideoStreamURL != "" {
		return true
	}
	return false
}

// DestinationString resolves the campaign's free-text destination:
// the structured destination field when non-empty, else the generic
// location field.
func (c *Campaign) DestinationString() string {
	if c.DestinationText != nil && *c.DestinationText != "" {
		return *c.DestinationText
	}
	if c.LocationText != nil {
		return *c.LocationText
	}
	return ""
}

// AgeUpperBound parses the campaign's upper age bound, treating the
// open-ended "65+" sentinel as effectively unbounded. The second return
// is false when the bound is absent or unparsable.
func (c *Campaign) AgeUpperBound() (int, bool) {
	if c.AgeMax == nil {
		return 0, false
	}
	s := strings.TrimSpace(*c.AgeMax)
	if s == AgeMaxOpenEnded {
		return 120, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
