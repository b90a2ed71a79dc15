package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"trybe_hotel/internal/adapters/observability"
	"trybe_hotel/internal/domain"
)

// CatalogService runs each operation in its own store session and keeps an
// optional read-through cache coherent with writes.
type CatalogService struct {
	store    domain.Store
	cache    domain.Cache // nil disables caching
	cacheTTL time.Duration
}

func NewCatalogService(st domain.Store, c domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{store: st, cache: c, cacheTTL: ttl}
}

// withSession opens a session, runs fn, and always releases the session.
func (s *CatalogService) withSession(ctx context.Context, op string, fn func(domain.Session) error) (err error) {
	start := time.Now()
	defer func() { observability.ObserveStore(op, err, time.Since(start)) }()

	sess, err := s.store.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("op", op).Msg("session close failed")
		}
	}()
	return fn(sess)
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	return ok
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (s *CatalogService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		// a stale list would survive until TTL; make it visible
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
