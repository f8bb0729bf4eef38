package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/infrastructure/metrics"
	"crm_imobiliario/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultLeadCacheTTL = 30 * time.Second

	leadCacheGenerationKey = "crm:leads:gen"
	leadCacheListPrefix    = "crm:leads:list:"
	leadCacheAllUsers      = "*"
)

// LeadCacheRepository is a read-through Redis cache in front of another
// lead repository. Only List results are cached.
//
// Every list key embeds a generation number. Any successful mutation bumps
// the generation, which orphans every cached list at once; orphans expire
// with their TTL. A Redis failure never fails the call: the cache is simply
// bypassed.

type LeadCacheRepository struct {
	next   interfaces.ILeadRepository
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.ILeadRepository = (*LeadCacheRepository)(nil)

func NewLeadCacheRepository(next interfaces.ILeadRepository, rdb redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *LeadCacheRepository {
	if ttl <= 0 {
		ttl = DefaultLeadCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadCacheRepository{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (r *LeadCacheRepository) List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error) {
	key, err := r.listKey(ctx, filter)
	if err != nil {
		r.cacheError("generation lookup", err)
		return r.next.List(ctx, filter)
	}

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var leads []entities.Lead
		if err := json.Unmarshal(raw, &leads); err == nil {
			metrics.LeadCacheResults.WithLabelValues("hit").Inc()
			return leads, nil
		}
		r.cacheError("decode", err)
	case errors.Is(err, redis.Nil):
		metrics.LeadCacheResults.WithLabelValues("miss").Inc()
	default:
		r.cacheError("get", err)
	}

	leads, err := r.next.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(leads); err != nil {
		r.cacheError("encode", err)
	} else if err := r.rdb.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.cacheError("set", err)
	}
	return leads, nil
}

func (r *LeadCacheRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	created, err := r.next.Create(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *LeadCacheRepository) Update(ctx context.Context, filter entities.LeadFilter, id string, patch entities.LeadPatch) (entities.Lead, error) {
	updated, err := r.next.Update(ctx, filter, id, patch)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID != "" {
		r.invalidate(ctx)
	}
	return updated, nil
}

func (r *LeadCacheRepository) Delete(ctx context.Context, filter entities.LeadFilter, id string) error {
	if err := r.next.Delete(ctx, filter, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *LeadCacheRepository) listKey(ctx context.Context, filter entities.LeadFilter) (string, error) {
	gen, err := r.rdb.Get(ctx, leadCacheGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	user := filter.UserID
	if user == "" {
		user = leadCacheAllUsers
	}
	return leadCacheListPrefix + strconv.FormatInt(gen, 10) + ":" + user, nil
}

func (r *LeadCacheRepository) invalidate(ctx context.Context) {
	if err := r.rdb.Incr(ctx, leadCacheGenerationKey).Err(); err != nil {
		r.cacheError("invalidate", err)
	}
}

func (r *LeadCacheRepository) cacheError(step string, err error) {
	metrics.LeadCacheResults.WithLabelValues("error").Inc()
	r.logger.Warn("[lead][cache] bypassing cache", zap.String("step", step), zap.Error(err))
}
