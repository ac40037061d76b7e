package repository

import (
	"context"
	"time"

	"gallery-backend/internal/domains/image/model"
	"gallery-backend/pkg/cache"

	"github.com/rs/zerolog/log"
)

const (
	listCacheKey       = "images:all"
	generationCacheKey = "images:gen"
)

// cachedRepository cache kết quả List theo generation.
// Create tăng generation sau khi ghi thành công, nên một List chậm chỉ có thể
// ghi snapshot cũ vào key của generation đã chết.
// Lỗi cache chỉ được log, request vẫn đi thẳng xuống store
type cachedRepository struct {
	next  ImageRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next ImageRepository, c cache.Cache, ttl time.Duration) ImageRepository {
	return &cachedRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func (r *cachedRepository) Create(ctx context.Context, img *model.Image) error {
	if err := r.next.Create(ctx, img); err != nil {
		return err
	}

	if _, err := r.cache.Incr(ctx, generationCacheKey); err != nil {
		log.Warn().Err(err).Str("key", generationCacheKey).Msg("Failed to bump image list generation")
	}
	return nil
}

func (r *cachedRepository) List(ctx context.Context) ([]*model.Image, error) {
	// Generation phải đọc trước store
	gen, err := cache.Generation(ctx, r.cache, generationCacheKey)
	if err != nil {
		log.Warn().Err(err).Str("key", generationCacheKey).Msg("Image list generation read failed")
		return r.next.List(ctx)
	}
	key := cache.GenerationKey(listCacheKey, gen)

	var images []*model.Image
	found, err := r.cache.Get(ctx, key, &images)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Image list cache read failed")
	}
	if found && images != nil {
		return images, nil
	}

	images, err = r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, images, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to cache image list")
	}
	return images, nil
}
