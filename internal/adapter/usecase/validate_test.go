package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"atlas-ads/internal/core/domain"
)

const testNowMs = int64(1_700_000_000_000)

func impressionAt(tsMs int64) rawEvent {
	return rawEvent{Type: "impression", CampaignID: "camp-1", Timestamp: float64(tsMs)}
}

func TestValidateEventAccepts(t *testing.T) {
	ev, reason := validateEvent(impressionAt(testNowMs), testNowMs)
	assert.Empty(t, reason)
	assert.Equal(t, domain.EventImpression, ev.Type)
	assert.Equal(t, "camp-1", ev.CampaignID)
	assert.Equal(t, testNowMs, ev.TimestampMs)
}

func TestValidateEventTimestampWindows(t *testing.T) {
	_, reason := validateEvent(impressionAt(testNowMs-301_000), testNowMs)
	assert.Equal(t, reasonTimestampOld, reason)

	_, reason = validateEvent(impressionAt(testNowMs-299_999), testNowMs)
	assert.Empty(t, reason)

	_, reason = validateEvent(impressionAt(testNowMs+31_000), testNowMs)
	assert.Equal(t, reasonTimestampFuture, reason)

	_, reason = validateEvent(impressionAt(testNowMs+29_999), testNowMs)
	assert.Empty(t, reason)
}

func TestValidateEventCampaignID(t *testing.T) {
	ev := impressionAt(testNowMs)
	ev.CampaignID = "camp/../etc"
	_, reason := validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadCampaignID, reason, "path separators are rejected")

	ev.CampaignID = `camp\etc`
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadCampaignID, reason)

	ev.CampaignID = strings.Repeat("a", 128)
	_, reason = validateEvent(ev, testNowMs)
	assert.Empty(t, reason, "128 characters is the inclusive maximum")

	ev.CampaignID = strings.Repeat("a", 129)
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadCampaignID, reason)

	ev.CampaignID = ""
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadCampaignID, reason)

	ev.CampaignID = 42
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadCampaignID, reason)
}

func TestValidateEventType(t *testing.T) {
	ev := impressionAt(testNowMs)
	ev.Type = "pageview"
	_, reason := validateEvent(ev, testNowMs)
	assert.Equal(t, reasonUnknownType, reason)

	ev.Type = nil
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonUnknownType, reason)
}

func TestValidateEventQuartile(t *testing.T) {
	ev := rawEvent{
		Type:       "video_quartile",
		CampaignID: "camp-1",
		Timestamp:  float64(testNowMs),
	}
	_, reason := validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadQuartile, reason, "quartile is required for video events")

	for _, q := range []float64{25, 50, 75, 100} {
		ev.Quartile = q
		got, reason := validateEvent(ev, testNowMs)
		assert.Empty(t, reason)
		assert.Equal(t, int(q), got.Quartile)
	}

	ev.Quartile = float64(30)
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadQuartile, reason)
}

func TestValidateEventFirstFailingCheckWins(t *testing.T) {
	// Everything is wrong; the type check reports first.
	ev := rawEvent{Type: 7, CampaignID: "x/y", Timestamp: "soon"}
	_, reason := validateEvent(ev, testNowMs)
	assert.Equal(t, reasonUnknownType, reason)

	// Fix the type: campaignId reports next, before the timestamp.
	ev.Type = "click"
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadCampaignID, reason)

	ev.CampaignID = "camp-1"
	_, reason = validateEvent(ev, testNowMs)
	assert.Equal(t, reasonBadTimestamp, reason)
}
