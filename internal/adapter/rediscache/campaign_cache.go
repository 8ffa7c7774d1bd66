package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"atlas-ads/internal/core/domain"
	"atlas-ads/internal/core/port"
)

const keyPrefix = "ads:active:"

// CampaignStore is a read-through cache decorator over another
// CampaignStore. Only the hot ListActiveByPlacement read is cached, for
// a short TTL; every write path passes through untouched so ledger
// atomicity is unaffected. Cache failures degrade to the inner store
// rather than erroring.
type CampaignStore struct {
	inner  port.CampaignStore
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New wraps inner with a Redis-backed listing cache.
func New(inner port.CampaignStore, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CampaignStore {
	return &CampaignStore{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

// ListActiveByPlacement serves from cache when possible and refills it
// from the inner store on a miss.
func (s *CampaignStore) ListActiveByPlacement(ctx context.Context, placement string) ([]domain.Campaign, error) {
	key := keyPrefix + placement
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var campaigns []domain.Campaign
		if err = json.Unmarshal(data, &campaigns); err == nil {
			return campaigns, nil
		}
		s.logger.Warn("corrupt cache entry", slog.String("key", key), slog.Any("error", err))
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	campaigns, err := s.inner.ListActiveByPlacement(ctx, placement)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(campaigns); err == nil {
		if err = s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
			s.logger.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return campaigns, nil
}

// GetCampaigns passes through: ingestion must see current records.
func (s *CampaignStore) GetCampaigns(ctx context.Context, ids []string) (map[string]domain.Campaign, error) {
	return s.inner.GetCampaigns(ctx, ids)
}

// ApplyLedger passes through.
func (s *CampaignStore) ApplyLedger(ctx context.Context, up port.LedgerUpdate) error {
	return s.inner.ApplyLedger(ctx, up)
}

// GetBudgetCents passes through.
func (s *CampaignStore) GetBudgetCents(ctx context.Context, id string) (int64, error) {
	return s.inner.GetBudgetCents(ctx, id)
}

// PauseCampaign pauses on the inner store and drops the listing caches
// so a just-paused campaign stops serving without waiting out the TTL.
func (s *CampaignStore) PauseCampaign(ctx context.Context, id string) error {
	if err := s.inner.PauseCampaign(ctx, id); err != nil {
		return err
	}
	keys := []string{
		keyPrefix + domain.PlacementVideoFeed,
		keyPrefix + domain.PlacementItineraryFeed,
		keyPrefix + domain.PlacementAISlot,
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("cache invalidation failed", slog.Any("error", err))
	}
	return nil
}
