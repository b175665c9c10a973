package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/befound-studio/studio-backend/internal/content/domain"
)

type countingSource struct {
	projects  []domain.Project
	allCalls  int
	slugCalls int
}

func (s *countingSource) FetchAll(ctx context.Context) ([]domain.Project, error) {
	s.allCalls++
	return s.projects, nil
}

func (s *countingSource) FetchBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	s.slugCalls++
	for i := range s.projects {
		if s.projects[i].Slug == slug {
			return &s.projects[i], nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (s *countingSource) FetchByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	return s.projects, nil
}

func (s *countingSource) FetchFeatured(ctx context.Context) ([]domain.Project, error) {
	return s.projects, nil
}

func setupCache(t *testing.T) (*CachedRepository, *countingSource, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	source := &countingSource{projects: []domain.Project{
		{ID: 1, Slug: "kaizen-dezain", Title: "Kaizen Dezain", Tags: []string{"Branding"}},
		{ID: 2, Slug: "peopleverse", Title: "Peopleverse", Tags: []string{"UI/UX"}},
	}}

	return NewCachedRepository(source, client, 5*time.Minute), source, mr
}

func TestCachedRepositoryFetchAllReadThrough(t *testing.T) {
	cache, source, _ := setupCache(t)
	ctx := context.Background()

	first, err := cache.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, source.allCalls)

	second, err := cache.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.allCalls, "second read must come from cache")
}

func TestCachedRepositoryFetchBySlug(t *testing.T) {
	cache, source, _ := setupCache(t)
	ctx := context.Background()

	p, err := cache.FetchBySlug(ctx, "peopleverse")
	require.NoError(t, err)
	assert.Equal(t, "Peopleverse", p.Title)

	_, err = cache.FetchBySlug(ctx, "peopleverse")
	require.NoError(t, err)
	assert.Equal(t, 1, source.slugCalls)

	_, err = cache.FetchBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestCachedRepositoryExpiry(t *testing.T) {
	cache, source, mr := setupCache(t)
	ctx := context.Background()

	_, err := cache.FetchAll(ctx)
	require.NoError(t, err)

	mr.FastForward(10 * time.Minute)

	_, err = cache.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.allCalls, "expired entry must re-hit the source")
}

func TestCachedRepositoryRefreshPrimesKeys(t *testing.T) {
	cache, source, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Refresh(ctx))
	assert.True(t, mr.Exists("content:projects:all"))
	assert.True(t, mr.Exists("content:projects:featured"))

	// A read after refresh is served without another source call.
	callsAfterRefresh := source.allCalls
	_, err := cache.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsAfterRefresh, source.allCalls)
}

func TestCachedRepositoryFallsThroughWhenRedisDown(t *testing.T) {
	cache, source, mr := setupCache(t)
	ctx := context.Background()

	mr.Close()

	projects, err := cache.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, 1, source.allCalls)
}
