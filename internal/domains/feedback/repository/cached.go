package repository

import (
	"context"
	"time"

	"gallery-backend/internal/domains/feedback/model"
	"gallery-backend/pkg/cache"

	"github.com/rs/zerolog/log"
)

const (
	listCacheKey       = "feedback:all"
	generationCacheKey = "feedback:gen"
)

type cachedRepository struct {
	next  FeedbackRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository wraps next with a read-through list cache keyed by write generation
func NewCachedRepository(next FeedbackRepository, c cache.Cache, ttl time.Duration) FeedbackRepository {
	return &cachedRepository{next: next, cache: c, ttl: ttl}
}

func (r *cachedRepository) Create(ctx context.Context, fb *model.Feedback) error {
	if err := r.next.Create(ctx, fb); err != nil {
		return err
	}

	if _, err := r.cache.Incr(ctx, generationCacheKey); err != nil {
		log.Warn().Err(err).Str("key", generationCacheKey).Msg("Failed to bump feedback list generation")
	}
	return nil
}

func (r *cachedRepository) List(ctx context.Context) ([]*model.Feedback, error) {
	gen, err := cache.Generation(ctx, r.cache, generationCacheKey)
	if err != nil {
		log.Warn().Err(err).Str("key", generationCacheKey).Msg("Feedback list generation read failed")
		return r.next.List(ctx)
	}
	key := cache.GenerationKey(listCacheKey, gen)

	var feedbacks []*model.Feedback
	found, err := r.cache.Get(ctx, key, &feedbacks)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Feedback list cache read failed")
	}
	if found && feedbacks != nil {
		return feedbacks, nil
	}

	feedbacks, err = r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, feedbacks, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to cache feedback list")
	}
	return feedbacks, nil
}
