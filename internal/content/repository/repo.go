package repository

import (
	"context"
	"fmt"

	"github.com/befound-studio/studio-backend/internal/content/adapter"
	"github.com/befound-studio/studio-backend/internal/content/domain"
	"github.com/befound-studio/studio-backend/internal/content/sanity"
)

// ContentRepository exposes read access to the published project collection.
// Implementations return canonical projects with the adapter already applied.
type ContentRepository interface {
	FetchAll(ctx context.Context) ([]domain.Project, error)
	FetchBySlug(ctx context.Context, slug string) (*domain.Project, error)
	FetchByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error)
	FetchFeatured(ctx context.Context) ([]domain.Project, error)
}

// SanityRepository reads projects straight from the hosted content store.
type SanityRepository struct {
	client *sanity.Client
}

func NewSanityRepository(client *sanity.Client) *SanityRepository {
	return &SanityRepository{client: client}
}

func (r *SanityRepository) FetchAll(ctx context.Context) ([]domain.Project, error) {
	records, err := r.client.Projects(ctx, sanity.AllProjectsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	return adapter.AdaptAll(records)
}

func (r *SanityRepository) FetchBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	record, err := r.client.Project(ctx, sanity.ProjectBySlugQuery, map[string]any{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("fetch project %q: %w", slug, err)
	}
	if record == nil {
		return nil, domain.ErrProjectNotFound
	}
	p, err := adapter.Adapt(*record)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SanityRepository) FetchByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	records, err := r.client.Projects(ctx, sanity.ProjectsByTypeQuery, map[string]any{
		"projectType": string(projectType),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch projects by type: %w", err)
	}
	return adapter.AdaptAll(records)
}

func (r *SanityRepository) FetchFeatured(ctx context.Context) ([]domain.Project, error) {
	records, err := r.client.Projects(ctx, sanity.FeaturedProjectsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch featured projects: %w", err)
	}
	return adapter.AdaptAll(records)
}
