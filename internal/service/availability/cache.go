package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
)

// Cache keeps computed availability days in Redis for a short TTL. The TTL is
// the documented staleness bound; schedule and appointment writes also drop
// affected keys eagerly so a fresh read follows every write.
type Cache struct {
	rdb     *goredis.Client
	ttl     time.Duration
	enabled bool
}

func NewCache(rdb *goredis.Client, cfg config.AvailabilityConfig) *Cache {
	return &Cache{
		rdb:     rdb,
		ttl:     time.Duration(cfg.TTLSeconds()) * time.Second,
		enabled: cfg.CacheEnabled && rdb != nil,
	}
}

func cacheKey(therapistID uuid.UUID, date time.Time, serviceID uuid.UUID, branchID *uuid.UUID) string {
	branch := "all"
	if branchID != nil {
		branch = branchID.String()
	}
	return fmt.Sprintf("availability:%s:%s:%s:%s",
		therapistID, date.Format(interval.DateLayout), serviceID, branch)
}

// The invalidation patterns below must stay in step with cacheKey's layout.

func therapistDatePattern(therapistID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("availability:%s:%s:*", therapistID, date.Format(interval.DateLayout))
}

func therapistPattern(therapistID uuid.UUID) string {
	return fmt.Sprintf("availability:%s:*", therapistID)
}

func servicePattern(serviceID uuid.UUID) string {
	return fmt.Sprintf("availability:*:*:%s:*", serviceID)
}

// Get returns a cached result, or (nil, false) on miss, disable, or any Redis
// error. Cache failures never fail the read path.
func (c *Cache) Get(ctx context.Context, key string) (*Result, bool) {
	if c == nil || !c.enabled {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			slog.Warn("availability cache get failed", "key", key, "err", err)
		}
		return nil, false
	}
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		slog.Warn("availability cache decode failed", "key", key, "err", err)
		return nil, false
	}
	return &r, true
}

func (c *Cache) Set(ctx context.Context, key string, r *Result) {
	if c == nil || !c.enabled || r == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache set failed", "key", key, "err", err)
	}
}

// InvalidateTherapistDate drops every cached result for one therapist and
// date, across all services and branch filters. Called after a booking,
// cancellation, or blocked-date change.
func (c *Cache) InvalidateTherapistDate(ctx context.Context, therapistID uuid.UUID, date time.Time) {
	if c == nil || !c.enabled {
		return
	}
	c.deleteByPattern(ctx, therapistDatePattern(therapistID, date))
}

// InvalidateTherapist drops every cached result for one therapist. Called
// after a weekly schedule change, which affects all future dates.
func (c *Cache) InvalidateTherapist(ctx context.Context, therapistID uuid.UUID) {
	if c == nil || !c.enabled {
		return
	}
	c.deleteByPattern(ctx, therapistPattern(therapistID))
}

// InvalidateService drops every cached result computed for one service,
// across all therapists and dates. Called when a catalog edit changes the
// service's duration, which reshapes every slot cut from it.
func (c *Cache) InvalidateService(ctx context.Context, serviceID uuid.UUID) {
	if c == nil || !c.enabled {
		return
	}
	c.deleteByPattern(ctx, servicePattern(serviceID))
}

func (c *Cache) deleteByPattern(ctx context.Context, pattern string) {
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("availability cache scan failed", "pattern", pattern, "err", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("availability cache invalidate failed", "pattern", pattern, "err", err)
	}
}
