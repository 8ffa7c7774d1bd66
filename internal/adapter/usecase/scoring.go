package usecase

import (
	"strings"

	"atlas-ads/internal/core/domain"
)

// Relevance bonuses per targeting dimension. Dimensions are independent
// and only ever add; an unset dimension on either side contributes 0.
const (
	bonusPlaceID       = 3
	bonusDestination   = 2
	bonusTravelDates   = 2
	bonusGender        = 1
	bonusAgeRange      = 2
	bonusArrayOverlap  = 1
	bonusInterestMatch = 1
)

// scoreCampaign computes the integer relevance score of one campaign
// against one user context. Pure function, no I/O. An empty context
// scores every campaign 0.
func scoreCampaign(c *domain.Campaign, uc *domain.UserContext) int {
	if uc.IsEmpty() {
		return 0
	}
	score := 0

	// Place-id comparison is authoritative when both sides provide one:
	// it awards the bonus on an exact match and suppresses the
	// destination-string path either way.
	placeIDPath := c.TargetPlaceID != nil && *c.TargetPlaceID != "" &&
		uc.PlaceID != nil && *uc.PlaceID != ""
	if placeIDPath {
		if strings.EqualFold(*c.TargetPlaceID, *uc.PlaceID) {
			score += bonusPlaceID
		}
	} else if dest := c.DestinationString(); dest != "" &&
		uc.Destination != nil && *uc.Destination != "" {
		a := strings.ToLower(dest)
		b := strings.ToLower(*uc.Destination)
		if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
			score += bonusDestination
		}
	}

	if travelDatesOverlap(c, uc) {
		score += bonusTravelDates
	}

	if c.TargetGender != nil && *c.TargetGender != "" &&
		uc.Gender != nil && strings.EqualFold(*c.TargetGender, *uc.Gender) {
		score += bonusGender
	}

	if c.AgeMin != nil && uc.Age != nil {
		if upper, ok := c.AgeUpperBound(); ok {
			if *uc.Age >= *c.AgeMin && *uc.Age <= upper {
				score += bonusAgeRange
			}
		}
	}

	if setsIntersect(c.TripTypes, uc.TripTypes) {
		score += bonusArrayOverlap
	}
	if setsIntersect(c.Activities, uc.Activities) {
		score += bonusArrayOverlap
	}
	if setsIntersect(c.TravelStyles, uc.TravelStyles) {
		score += bonusArrayOverlap
	}

	if interestKeywordsMatch(c.InterestKeywords, uc) {
		score += bonusInterestMatch
	}

	return score
}

// travelDatesOverlap awards the date bonus only when both sides define
// a complete range. Dates are anchored at noon UTC so timezone shifts
// cannot move them across a day boundary; a malformed date disables the
// comparison without erroring.
func travelDatesOverlap(c *domain.Campaign, uc *domain.UserContext) bool {
	if c.TravelStartDate == nil || c.TravelEndDate == nil ||
		uc.TravelStartDate == nil || uc.TravelEndDate == nil {
		return false
	}
	aStart, ok := domain.ParseDateNoonUTC(*c.TravelStartDate)
	if !ok {
		return false
	}
	aEnd, ok := domain.ParseDateNoonUTC(*c.TravelEndDate)
	if !ok {
		return false
	}
	bStart, ok := domain.ParseDateNoonUTC(*uc.TravelStartDate)
	if !ok {
		return false
	}
	bEnd, ok := domain.ParseDateNoonUTC(*uc.TravelEndDate)
	if !ok {
		return false
	}
	return domain.DateRangesOverlap(aStart, aEnd, bStart, bEnd)
}

// setsIntersect reports a case-insensitive non-empty intersection.
// Any overlap triggers the flat bonus once, not per element.
func setsIntersect(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, v := range a {
		seen[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	for _, v := range b {
		if _, ok := seen[strings.ToLower(strings.TrimSpace(v))]; ok {
			return true
		}
	}
	return false
}

// interestKeywordsMatch tokenizes the campaign's comma-separated
// interest string and compares it against a keyword bag assembled from
// the context's preferences and destination. A token matches on exact
// equality or when either side contains the other.
func interestKeywordsMatch(keywords string, uc *domain.UserContext) bool {
	if strings.TrimSpace(keywords) == "" {
		return false
	}
	var bag []string
	for _, group := range [][]string{uc.Activities, uc.TripTypes, uc.TravelStyles} {
		for _, v := range group {
			if w := strings.ToLower(strings.TrimSpace(v)); w != "" {
				bag = append(bag, w)
			}
		}
	}
	if uc.Destination != nil {
		if w := strings.ToLower(strings.TrimSpace(*uc.Destination)); w != "" {
			bag = append(bag, w)
		}
	}
	if len(bag) == 0 {
		return false
	}
	for _, raw := range strings.Split(keywords, ",") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			continue
		}
		for _, w := range bag {
			if token == w || strings.Contains(token, w) || strings.Contains(w, token) {
				return true
			}
		}
	}
	return false
}
