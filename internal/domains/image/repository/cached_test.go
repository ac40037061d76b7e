package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gallery-backend/internal/domains/image/model"
	infraCache "gallery-backend/internal/infrastructure/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepository struct {
	mu        sync.Mutex
	images    []*model.Image
	listCalls int
	createErr error
}

func (r *countingRepository) Create(_ context.Context, img *model.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.images = append(r.images, img)
	return nil
}

func (r *countingRepository) List(_ context.Context) ([]*model.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	out := make([]*model.Image, len(r.images))
	copy(out, r.images)
	return out, nil
}

func newCachedRepo(t *testing.T) (ImageRepository, *countingRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rc := infraCache.NewRedisCache(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	inner := &countingRepository{}
	return NewCachedRepository(inner, rc, time.Minute), inner, mr
}

func newImage(title string) *model.Image {
	return &model.Image{
		ID:          uuid.New(),
		Title:       title,
		Description: title + " description",
		ImageURL:    "https://cdn.example.com/" + title + ".png",
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCachedRepository_ListHitsCacheOnSecondCall(t *testing.T) {
	repo, inner, _ := newCachedRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newImage("a")))

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.listCalls)
	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].ImageURL, second[0].ImageURL)
}

func TestCachedRepository_CreateBumpsGeneration(t *testing.T) {
	repo, inner, mr := newCachedRepo(t)
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists(listCacheKey+":0"))

	require.NoError(t, repo.Create(ctx, newImage("b")))
	gen, err := mr.Get(generationCacheKey)
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
	assert.False(t, mr.Exists(listCacheKey+":1"))

	images, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 1)
	assert.Equal(t, 2, inner.listCalls)
	assert.True(t, mr.Exists(listCacheKey+":1"))
}

func TestCachedRepository_FailedCreateKeepsCache(t *testing.T) {
	repo, inner, mr := newCachedRepo(t)
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)

	inner.createErr = errors.New("insert failed")
	assert.Error(t, repo.Create(ctx, newImage("c")))
	assert.False(t, mr.Exists(generationCacheKey))

	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.listCalls)
}

func TestCachedRepository_FallsBackWhenRedisDown(t *testing.T) {
	repo, inner, mr := newCachedRepo(t)
	ctx := context.Background()
	mr.Close()

	require.NoError(t, repo.Create(ctx, newImage("d")))
	images, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 1)
	assert.Equal(t, 1, inner.listCalls)
}

// pausingRepository dừng List đầu tiên sau khi đã đọc snapshot từ store
type pausingRepository struct {
	*countingRepository
	once     sync.Once
	snapshot chan struct{}
	resume   chan struct{}
}

func (r *pausingRepository) List(ctx context.Context) ([]*model.Image, error) {
	images, err := r.countingRepository.List(ctx)
	r.once.Do(func() {
		close(r.snapshot)
		<-r.resume
	})
	return images, err
}

func TestCachedRepository_SlowListDoesNotHideConcurrentCreate(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := infraCache.NewRedisCache(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	inner := &pausingRepository{
		countingRepository: &countingRepository{},
		snapshot:           make(chan struct{}),
		resume:             make(chan struct{}),
	}
	repo := NewCachedRepository(inner, rc, time.Minute)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := repo.List(ctx)
		done <- err
	}()

	<-inner.snapshot
	require.NoError(t, repo.Create(ctx, newImage("late")))
	close(inner.resume)
	require.NoError(t, <-done)

	images, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "late", images[0].Title)
}
