package usecase

import (
	"math"
	"strings"

	"atlas-ads/internal/core/domain"
)

// Anti-abuse bounds on client-reported events. The staleness window
// stops replay of old batches; the future skew tolerates minor clock
// drift while rejecting forged timestamps. Campaign ids are length and
// character restricted to keep malicious ids out of store key paths.
const (
	maxEventsPerRequest = 50
	maxCampaignIDLen    = 128
	staleWindowMs       = 5 * 60 * 1000
	futureSkewMs        = 30 * 1000
)

// Per-event rejection reasons. Exactly one reason is reported per
// failed event: the first failing check wins.
const (
	reasonNotAnObject     = "event is not an object"
	reasonUnknownType     = "unknown event type"
	reasonBadCampaignID   = "invalid campaignId"
	reasonBadTimestamp    = "invalid timestamp"
	reasonTimestampOld    = "timestamp too old"
	reasonTimestampFuture = "timestamp too far in the future"
	reasonBadQuartile     = "invalid quartile"
)

// rawEvent is the loosely-typed wire shape of one client event.
type rawEvent struct {
	Type       any `json:"type"`
	CampaignID any `json:"campaignId"`
	Timestamp  any `json:"timestamp"`
	Quartile   any `json:"quartile"`
}

// validateEvent checks one event against nowMs. Checks run in a fixed
// order: type, campaignId, timestamp age, timestamp future, quartile.
// On success the returned reason is empty and the event is usable.
func validateEvent(ev rawEvent, nowMs int64) (domain.AdEvent, string) {
	var out domain.AdEvent

	t, ok := ev.Type.(string)
	if !ok {
		return out, reasonUnknownType
	}
	switch t {
	case domain.EventImpression, domain.EventClick, domain.EventVideoQuartile:
	default:
		return out, reasonUnknownType
	}

	id, ok := ev.CampaignID.(string)
	if !ok || id == "" || len(id) > maxCampaignIDLen ||
		strings.ContainsAny(id, "/\\") {
		return out, reasonBadCampaignID
	}

	ts, ok := ev.Timestamp.(float64)
	if !ok || math.IsNaN(ts) || math.IsInf(ts, 0) {
		return out, reasonBadTimestamp
	}
	tsMs := int64(ts)
	if nowMs-tsMs > staleWindowMs {
		return out, reasonTimestampOld
	}
	if tsMs-nowMs > futureSkewMs {
		return out, reasonTimestampFuture
	}

	out = domain.AdEvent{Type: t, CampaignID: id, TimestampMs: tsMs}
	if t == domain.EventVideoQuartile {
		q, ok := ev.Quartile.(float64)
		if !ok || q != math.Trunc(q) || !domain.ValidQuartile(int(q)) {
			return domain.AdEvent{}, reasonBadQuartile
		}
		out.Quartile = int(q)
	}
	return out, ""
}
