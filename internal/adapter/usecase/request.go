package usecase

import (
	"bytes"
	"encoding/json"
	"math"

	"atlas-ads/internal/core/domain"
	"atlas-ads/internal/core/port"
)

// Selection limits: callers may ask for fewer or more ads, within a
// hard ceiling. Anything non-numeric or below 1 falls back to the
// default instead of erroring.
const (
	defaultAdLimit = 5
	maxAdLimit     = 20
)

// parsePlacement validates the placement field of a selection request.
func parsePlacement(v any) (string, error) {
	s, ok := v.(string)
	if !ok || !domain.ValidPlacement(s) {
		return "", port.NewClientError("invalid or missing placement")
	}
	return s, nil
}

// parseLimit resolves the requested result count. JSON numbers arrive
// as float64; values are truncated toward zero and clamped to the
// ceiling. Clamping happens before the int conversion: a float beyond
// int range would otherwise overflow to a negative value.
func parseLimit(v any) int {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || f < 1 {
		return defaultAdLimit
	}
	if f > maxAdLimit {
		return maxAdLimit
	}
	return int(f)
}

// userContextPayload mirrors the wire shape with every field loosely
// typed, so mixed-type arrays can be sanitized element-wise and type
// mismatches reported per field.
type userContextPayload struct {
	Destination     any `json:"destination"`
	PlaceID         any `json:"placeId"`
	TravelStartDate any `json:"travelStartDate"`
	TravelEndDate   any `json:"travelEndDate"`
	Gender          any `json:"gender"`
	Age             any `json:"age"`
	TripTypes       any `json:"tripTypes"`
	Activities      any `json:"activities"`
	TravelStyles    any `json:"travelStyles"`
}

// parseUserContext validates and converts the raw userContext payload.
// Absent or null context yields nil, meaning every campaign scores 0.
// Non-string scalar fields and non-array list fields are client errors;
// non-string elements inside list fields are dropped, not rejected.
func parseUserContext(raw json.RawMessage) (*domain.UserContext, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var p userContextPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, port.NewClientError("userContext must be an object")
	}

	uc := &domain.UserContext{}
	var err error
	if uc.Destination, err = optString(p.Destination, "destination"); err != nil {
		return nil, err
	}
	if uc.PlaceID, err = optString(p.PlaceID, "placeId"); err != nil {
		return nil, err
	}
	if uc.TravelStartDate, err = optDate(p.TravelStartDate, "travelStartDate"); err != nil {
		return nil, err
	}
	if uc.TravelEndDate, err = optDate(p.TravelEndDate, "travelEndDate"); err != nil {
		return nil, err
	}
	if uc.TravelStartDate != nil && uc.TravelEndDate != nil &&
		*uc.TravelStartDate > *uc.TravelEndDate {
		return nil, port.NewClientError("travelStartDate is after travelEndDate")
	}
	if uc.Gender, err = optString(p.Gender, "gender"); err != nil {
		return nil, err
	}
	if uc.Age, err = optAge(p.Age); err != nil {
		return nil, err
	}
	if uc.TripTypes, err = optStringArray(p.TripTypes, "tripTypes"); err != nil {
		return nil, err
	}
	if uc.Activities, err = optStringArray(p.Activities, "activities"); err != nil {
		return nil, err
	}
	if uc.TravelStyles, err = optStringArray(p.TravelStyles, "travelStyles"); err != nil {
		return nil, err
	}
	return uc, nil
}

func optString(v any, field string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, port.NewClientError("%s must be a string", field)
	}
	return &s, nil
}

func optDate(v any, field string) (*string, error) {
	s, err := optString(v, field)
	if err != nil || s == nil {
		return nil, err
	}
	if !domain.ValidDateKey(*s) {
		return nil, port.NewClientError("%s must be a YYYY-MM-DD date", field)
	}
	return s, nil
}

func optAge(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return nil, port.NewClientError("age must be an integer")
	}
	n := int(f)
	if n < 0 || n > 150 {
		return nil, port.NewClientError("age must be between 0 and 150")
	}
	return &n, nil
}

// optStringArray accepts an array and drops non-string elements rather
// than rejecting the request.
func optStringArray(v any, field string) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, port.NewClientError("%s must be an array", field)
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
