package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/befound-studio/studio-backend/internal/content/domain"
)

const (
	allProjectsKey   = "content:projects:all"      // full collection, source order preserved
	projectKeyPrefix = "content:project:"          // content:project:{slug}
	typedKeyPrefix   = "content:projects:type:"    // content:projects:type:{project_type}
	featuredKey      = "content:projects:featured" // featured subset
)

// CachedRepository wraps a ContentRepository with a Redis read-through cache.
// The cache is best effort: any Redis failure falls through to the source so
// content reads never depend on cache availability.
type CachedRepository struct {
	source ContentRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedRepository(source ContentRepository, client *redis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		source: source,
		client: client,
		ttl:    ttl,
	}
}

func (r *CachedRepository) FetchAll(ctx context.Context) ([]domain.Project, error) {
	var cached []domain.Project
	if r.lookup(ctx, allProjectsKey, &cached) {
		return cached, nil
	}

	projects, err := r.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, allProjectsKey, projects)
	return projects, nil
}

func (r *CachedRepository) FetchBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	key := projectKeyPrefix + slug

	var cached domain.Project
	if r.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	project, err := r.source.FetchBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, project)
	return project, nil
}

func (r *CachedRepository) FetchByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	key := typedKeyPrefix + string(projectType)

	var cached []domain.Project
	if r.lookup(ctx, key, &cached) {
		return cached, nil
	}

	projects, err := r.source.FetchByType(ctx, projectType)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, projects)
	return projects, nil
}

func (r *CachedRepository) FetchFeatured(ctx context.Context) ([]domain.Project, error) {
	var cached []domain.Project
	if r.lookup(ctx, featuredKey, &cached) {
		return cached, nil
	}

	projects, err := r.source.FetchFeatured(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, featuredKey, projects)
	return projects, nil
}

// Refresh re-primes the collection-level keys from the source. Per-slug keys
// are left to expire on their own TTL.
func (r *CachedRepository) Refresh(ctx context.Context) error {
	projects, err := r.source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh content cache: %w", err)
	}
	featured, err := r.source.FetchFeatured(ctx)
	if err != nil {
		return fmt.Errorf("refresh featured cache: %w", err)
	}

	allData, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	featuredData, err := json.Marshal(featured)
	if err != nil {
		return fmt.Errorf("marshal featured projects: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, allProjectsKey, allData, r.ttl)
	pipe.Set(ctx, featuredKey, featuredData, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write content cache: %w", err)
	}
	return nil
}

// Ping reports cache reachability for the health endpoint.
func (r *CachedRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *CachedRepository) lookup(ctx context.Context, key string, out any) bool {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("[content] cache read failed for %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		log.Printf("[content] cache entry %s is corrupt, ignoring: %v", key, err)
		return false
	}
	return true
}

func (r *CachedRepository) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[content] cache marshal failed for %s: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		log.Printf("[content] cache write failed for %s: %v", key, err)
	}
}
