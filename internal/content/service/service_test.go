package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/befound-studio/studio-backend/internal/content/domain"
)

func testCollection() []domain.Project {
	return []domain.Project{
		{ID: 1, Slug: "kaizen-dezain", Title: "Kaizen Dezain", Tags: []string{"Branding", "Logo"}},
		{ID: 2, Slug: "peopleverse", Title: "Peopleverse", Tags: []string{"UI/UX"}},
		{ID: 3, Slug: "storefront", Title: "Storefront", Tags: []string{"Development", "UI/UX"}},
	}
}

func TestGetByID(t *testing.T) {
	projects := testCollection()

	p, err := GetByID(projects, 2)
	require.NoError(t, err)
	assert.Equal(t, "Peopleverse", p.Title)

	_, err = GetByID(projects, 99)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestFilterByTag(t *testing.T) {
	projects := testCollection()

	t.Run("matches subset in original order", func(t *testing.T) {
		got := FilterByTag(projects, "UI/UX")
		require.Len(t, got, 2)
		assert.Equal(t, "Peopleverse", got[0].Title)
		assert.Equal(t, "Storefront", got[1].Title)
	})

	t.Run("sentinel returns collection unchanged", func(t *testing.T) {
		got := FilterByTag(projects, AllFilter)
		assert.Equal(t, projects, got)
	})

	t.Run("absent tag yields empty result, not an error", func(t *testing.T) {
		got := FilterByTag(projects, "Motion")
		assert.Empty(t, got)
	})

	t.Run("does not mutate the source collection", func(t *testing.T) {
		before := testCollection()
		FilterByTag(projects, "Branding")
		assert.Equal(t, before, projects)
	})
}

func TestTagList(t *testing.T) {
	got := TagList(testCollection())
	assert.Equal(t, []string{AllFilter, "Branding", "Logo", "UI/UX", "Development"}, got)
}

func TestTagListEmptyCollection(t *testing.T) {
	assert.Equal(t, []string{AllFilter}, TagList(nil))
}

func TestResolveSlugFailsClosedOnLegacyIDs(t *testing.T) {
	// Numeric segments are legacy IDs; the surrogate mapping is non-unique so
	// they must not resolve.
	_, err := ResolveSlug("7")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	slug, err := ResolveSlug("kaizen-dezain")
	require.NoError(t, err)
	assert.Equal(t, "kaizen-dezain", slug)
}

type stubRepo struct {
	projects []domain.Project
	calls    int
}

func (s *stubRepo) FetchAll(ctx context.Context) ([]domain.Project, error) {
	s.calls++
	return s.projects, nil
}

func (s *stubRepo) FetchBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	for i := range s.projects {
		if s.projects[i].Slug == slug {
			return &s.projects[i], nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (s *stubRepo) FetchByType(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	return nil, nil
}

func (s *stubRepo) FetchFeatured(ctx context.Context) ([]domain.Project, error) {
	return s.projects[:1], nil
}

func TestContentServiceList(t *testing.T) {
	svc := New(&stubRepo{projects: testCollection()})

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.List(context.Background(), "Branding")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Kaizen Dezain", filtered[0].Title)
}

func TestContentServiceGetBySlug(t *testing.T) {
	svc := New(&stubRepo{projects: testCollection()})

	p, err := svc.GetBySlug(context.Background(), "storefront")
	require.NoError(t, err)
	assert.Equal(t, "Storefront", p.Title)

	_, err = svc.GetBySlug(context.Background(), "3")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestContentServiceTags(t *testing.T) {
	svc := New(&stubRepo{projects: testCollection()})

	tags, err := svc.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AllFilter, tags[0])
	assert.Contains(t, tags, "Development")
}
