package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas-ads/internal/core/port"
)

// stubUseCase returns canned engine responses.
type stubUseCase struct {
	selectResp *port.SelectAdsResponse
	selectErr  error
	eventsResp *port.LogEventsResponse
	eventsErr  error
}

func (s *stubUseCase) SelectAds(context.Context, port.SelectAdsRequest) (*port.SelectAdsResponse, error) {
	return s.selectResp, s.selectErr
}

func (s *stubUseCase) LogAdEvents(context.Context, port.LogEventsRequest) (*port.LogEventsResponse, error) {
	return s.eventsResp, s.eventsErr
}

func serve(t *testing.T, svc port.AdUseCase, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestSelectAdsOK(t *testing.T) {
	svc := &stubUseCase{selectResp: &port.SelectAdsResponse{Ads: []port.AdUnit{
		{CampaignID: "camp-1", Placement: "video_feed", CallToAction: "Learn More"},
	}}}
	rec := serve(t, svc, "/api/v1/ads/select", `{"placement":"video_feed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"campaignId":"camp-1"`)
}

func TestSelectAdsEmptyListIsOK(t *testing.T) {
	svc := &stubUseCase{selectResp: &port.SelectAdsResponse{Ads: []port.AdUnit{}}}
	rec := serve(t, svc, "/api/v1/ads/select", `{"placement":"ai_slot"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ads":[]`)
}

func TestSelectAdsClientError(t *testing.T) {
	svc := &stubUseCase{selectErr: port.NewClientError("invalid or missing placement")}
	rec := serve(t, svc, "/api/v1/ads/select", `{"placement":"banner"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or missing placement")
}

func TestSelectAdsBadJSON(t *testing.T) {
	rec := serve(t, &stubUseCase{}, "/api/v1/ads/select", `{"placement":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectAdsInternalError(t *testing.T) {
	svc := &stubUseCase{selectErr: io.ErrUnexpectedEOF}
	rec := serve(t, svc, "/api/v1/ads/select", `{"placement":"video_feed"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "EOF", "internal details stay out of responses")
}

func TestLogAdEventsOK(t *testing.T) {
	svc := &stubUseCase{eventsResp: &port.LogEventsResponse{Processed: 2, Skipped: 1}}
	rec := serve(t, svc, "/api/v1/ads/events", `{"events":[]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"processed":2`)
	assert.Contains(t, rec.Body.String(), `"skipped":1`)
	assert.Contains(t, rec.Body.String(), `"failed":0`)
}

func TestLogAdEventsClientError(t *testing.T) {
	svc := &stubUseCase{eventsErr: port.NewClientError("too many events: max 50 per request")}
	rec := serve(t, svc, "/api/v1/ads/events", `{"events":[]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many events")
}
