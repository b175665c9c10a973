package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/befound-studio/studio-backend/internal/content/domain"
	"github.com/befound-studio/studio-backend/internal/content/repository"
)

// AllFilter is the sentinel tag that matches the full collection.
const AllFilter = "All"

// GetByID returns the project whose canonical ID matches exactly, or
// ErrProjectNotFound. No fuzzy or surrogate-based fallback.
func GetByID(projects []domain.Project, id int) (*domain.Project, error) {
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

// FilterByTag returns the projects whose tag set contains tag, preserving the
// source order. The AllFilter sentinel returns the collection unfiltered. An
// empty result is a valid outcome, not an error.
func FilterByTag(projects []domain.Project, tag string) []domain.Project {
	if tag == AllFilter {
		return projects
	}
	filtered := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		for _, t := range p.Tags {
			if t == tag {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// TagList returns AllFilter followed by every distinct tag across the
// collection in first-seen order.
func TagList(projects []domain.Project) []string {
	tags := []string{AllFilter}
	seen := make(map[string]bool)
	for _, p := range projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// ResolveSlug maps an incoming path segment to a slug usable for store lookups.
// Purely numeric segments are legacy IDs from the pre-migration site; the
// surrogate-ID mapping is lossy and non-unique, so these fail closed instead of
// guessing. Everything else passes through as a slug.
func ResolveSlug(idOrSlug string) (string, error) {
	if _, err := strconv.Atoi(idOrSlug); err == nil {
		log.Printf("[content] legacy numeric ID %q used, declining lookup; migrate to slug URLs", idOrSlug)
		return "", domain.ErrProjectNotFound
	}
	return idOrSlug, nil
}

// ContentService is the read surface over the project collection used by the
// HTTP layer.
type ContentService struct {
	repo repository.ContentRepository
}

func New(repo repository.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// List returns the full collection, optionally narrowed by tag.
func (s *ContentService) List(ctx context.Context, tag string) ([]domain.Project, error) {
	projects, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if tag == "" || tag == AllFilter {
		return projects, nil
	}
	return FilterByTag(projects, tag), nil
}

// GetBySlug resolves idOrSlug and fetches the matching project.
func (s *ContentService) GetBySlug(ctx context.Context, idOrSlug string) (*domain.Project, error) {
	slug, err := ResolveSlug(idOrSlug)
	if err != nil {
		return nil, err
	}
	return s.repo.FetchBySlug(ctx, slug)
}

// ListByType returns all projects of one category.
func (s *ContentService) ListByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	return s.repo.FetchByType(ctx, projectType)
}

// Featured returns the featured subset shown on the home page.
func (s *ContentService) Featured(ctx context.Context) ([]domain.Project, error) {
	return s.repo.FetchFeatured(ctx)
}

// Tags returns the derived filter list for the work page.
func (s *ContentService) Tags(ctx context.Context) ([]string, error) {
	projects, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("derive tag list: %w", err)
	}
	return TagList(projects), nil
}
