// Package adapter converts loosely-typed content store records into the
// canonical Project shape consumed by the query surface and the site.
package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/befound-studio/studio-backend/internal/content/domain"
	"github.com/befound-studio/studio-backend/internal/content/sanity"
)

// Adapt transforms one store record into a canonical Project. It is pure and
// idempotent. Records whose discriminator falls outside the four known project
// types yield ErrUnknownVariant; missing optional fields are omitted from the
// output rather than zero-filled.
func Adapt(rec sanity.Record) (domain.Project, error) {
	projectType := domain.ProjectType(rec.Type)

	p := domain.Project{
		ID:          SurrogateID(rec.ID),
		Slug:        rec.Slug,
		Type:        projectType,
		Title:       rec.Title,
		Category:    rec.Category,
		Tags:        rec.Tags,
		Year:        rec.Year,
		Description: rec.Description,
		Overview:    rec.Overview,
		HeroImage:   rec.HeroImage,
		Gallery:     rec.Gallery,
		Client:      rec.Client,
		Country:     rec.Country,
		Industry:    rec.Industry,
		Tools:       rec.Tools,
		Services:    rec.Services,
		LiveURL:     rec.LiveURL,
		VideoURL:    rec.VideoURL,
		Featured:    rec.Featured,
		PublishedAt: rec.PublishedAt,
		Highlights:  rec.Highlights,
		Moodboard:   adaptMoodboard(rec.Moodboard),
	}

	// Highlights and gallery are the only optionals that default to an empty
	// sequence instead of being omitted.
	if p.Highlights == nil {
		p.Highlights = []domain.Highlight{}
	}
	if p.Gallery == nil {
		p.Gallery = []string{}
	}

	switch projectType {
	case domain.TypeBranding:
		p.Branding = &domain.BrandingDetails{
			BrandStory:            rec.BrandStory,
			LogoConceptualization: rec.LogoConceptualization,
			ColorPalette:          rec.ColorPalette,
			Typography:            rec.Typography,
			BrandApplications:     rec.BrandApplications,
		}
	case domain.TypeDesign:
		p.Design = &domain.DesignDetails{
			Wireframes:        rec.Wireframes,
			DesignProgression: rec.DesignProgression,
			DesignPrinciples:  rec.DesignPrinciples,
			FigmaPrototype:    rec.FigmaPrototype,
			UserPersonas:      rec.UserPersonas,
			UserFlows:         rec.UserFlows,
		}
	case domain.TypeDevelopment:
		p.Development = &domain.DevelopmentDetails{
			TechStack:          rec.TechStack,
			Features:           rec.Features,
			CodeHighlights:     rec.CodeHighlights,
			PerformanceMetrics: rec.PerformanceMetrics,
			GithubURL:          rec.GithubURL,
			APIDocumentation:   rec.APIDocumentation,
		}
	case domain.TypeSEO:
		p.SEO = &domain.SEODetails{
			CampaignDuration:     rec.CampaignDuration,
			InitialMetrics:       rec.InitialMetrics,
			FinalMetrics:         rec.FinalMetrics,
			StrategyImplemented:  rec.StrategyImplemented,
			KeywordTargets:       rec.KeywordTargets,
			ContentStrategy:      rec.ContentStrategy,
			TechnicalSEO:         rec.TechnicalSEO,
			LinkBuildingStrategy: rec.LinkBuildingStrategy,
			AnalyticsReport:      rec.AnalyticsReport,
		}
	default:
		return domain.Project{}, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, rec.Type)
	}

	return p, nil
}

// AdaptAll converts a batch of records, failing on the first unknown variant.
func AdaptAll(records []sanity.Record) ([]domain.Project, error) {
	projects := make([]domain.Project, 0, len(records))
	for _, rec := range records {
		p, err := Adapt(rec)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// SurrogateID derives a numeric ID from an external identifier by keeping its
// digit characters ("p-7" -> 7). Identifiers without digits map to 0. The
// result is not guaranteed unique for non-numeric sources, so lookups must
// never rely on it.
func SurrogateID(externalID string) int {
	var digits strings.Builder
	for _, r := range externalID {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		// Digit runs long enough to overflow int don't occur in practice.
		return 0
	}
	return n
}

func adaptMoodboard(mb *sanity.RecordMoodboard) *domain.Moodboard {
	if mb == nil {
		return nil
	}
	images := make([]domain.MoodboardImage, 0, len(mb.Images))
	for _, img := range mb.Images {
		images = append(images, domain.MoodboardImage{
			Src:     img.Image,
			Caption: img.Caption,
		})
	}
	return &domain.Moodboard{
		Palette: mb.Palette,
		Images:  images,
	}
}
