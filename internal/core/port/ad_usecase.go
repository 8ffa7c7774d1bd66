package port

import (
	"context"
	"encoding/json"
	"fmt"
)

// ClientError is a request-level validation failure. The HTTP adapter
// maps it to a 400 response carrying the reason.
type ClientError struct {
	Reason string
}

func (e *ClientError) Error() string { return e.Reason }

// NewClientError builds a ClientError with a formatted reason.
func NewClientError(format string, args ...any) *ClientError {
	return &ClientError{Reason: fmt.Sprintf(format, args...)}
}

// SelectAdsRequest is the inbound selection payload. Placement and
// Limit are deliberately loosely typed: the input is untrusted and the
// engine decides per field whether a type mismatch is a client error or
// a silent fallback.
type SelectAdsRequest struct {
	Placement   any             `json:"placement"`
	Limit       any             `json:"limit"`
	UserContext json.RawMessage `json:"userContext"`
}

// AdUnit is the public wire shape of a selected campaign. It exposes
// only fields safe to show a client: no targeting attributes, no budget.
type AdUnit struct {
	CampaignID        string  `json:"campaignId"`
	Placement         string  `json:"placement"`
	CreativeType      string  `json:"creativeType"`
	AssetURL          *string `json:"assetUrl,omitempty"`
	VideoStreamURL    *string `json:"videoStreamUrl,omitempty"`
	VideoThumbnailURL *string `json:"videoThumbnailUrl,omitempty"`
	PrimaryText       *string `json:"primaryText,omitempty"`
	CallToAction      string  `json:"callToAction"`
	LandingURL        *string `json:"landingUrl,omitempty"`
	BillingModel      string  `json:"billingModel"`
	BusinessName      *string `json:"businessName,omitempty"`
	BusinessType      *string `json:"businessType,omitempty"`
	BusinessAddress   *string `json:"businessAddress,omitempty"`
	BusinessPhone     *string `json:"businessPhone,omitempty"`
	BusinessEmail     *string `json:"businessEmail,omitempty"`
	PromoCode         *string `json:"promoCode,omitempty"`
}

// SelectAdsResponse carries the ranked ads. Ads is never nil; zero
// matches is an empty list, not an error.
type SelectAdsResponse struct {
	Ads []AdUnit `json:"ads"`
}

// LogEventsRequest is the inbound event batch. Events stays raw so the
// engine can distinguish "not an array" (request-shape error) from
// per-event problems (skipped).
type LogEventsRequest struct {
	Events json.RawMessage `json:"events"`
}

// LogEventsResponse reports batch disposition counts. Failed counts
// valid events whose campaign ledger write errored; they are neither
// processed nor skipped.
type LogEventsResponse struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// AdUseCase is the inbound port of the ad delivery engine.
type AdUseCase interface {
	// SelectAds ranks eligible campaigns for a placement against an
	// optional user context. Returns a ClientError for malformed input
	// and an empty list when nothing qualifies.
	SelectAds(ctx context.Context, req SelectAdsRequest) (*SelectAdsResponse, error)

	// LogAdEvents validates, aggregates, prices and applies a batch of
	// client events. Per-event problems are counted, never raised;
	// only request-shape violations return a ClientError.
	LogAdEvents(ctx context.Context, req LogEventsRequest) (*LogEventsResponse, error)
}
