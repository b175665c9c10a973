package sanity

import "github.com/befound-studio/studio-backend/internal/content/domain"

// Record is the loosely-typed project document as returned by the store.
// Optional fields use pointers or nilable slices so that "absent" and "empty"
// stay distinguishable for the adapter.
type Record struct {
	ID       string   `json:"_id"`
	Type     string   `json:"_type"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Year     string   `json:"year"`

	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	HeroImage   string   `json:"heroImage"`
	Gallery     []string `json:"gallery"`

	Client   string   `json:"client"`
	Country  string   `json:"country"`
	Industry string   `json:"industry"`
	Tools    string   `json:"tools"`
	Services []string `json:"services"`
	LiveURL  string   `json:"liveUrl"`
	VideoURL string   `json:"videoUrl"`

	Featured    bool   `json:"featured"`
	PublishedAt string `json:"publishedAt"`

	Highlights []domain.Highlight `json:"highlights"`
	Moodboard  *RecordMoodboard   `json:"moodboard"`

	// Branding specific
	BrandStory            string                    `json:"brandStory"`
	LogoConceptualization string                    `json:"logoConceptualization"`
	ColorPalette          []domain.PaletteSwatch    `json:"colorPalette"`
	Typography            *domain.TypographySystem  `json:"typography"`
	BrandApplications     []domain.BrandApplication `json:"brandApplications"`

	// Website design specific
	Wireframes        []domain.Wireframe         `json:"wireframes"`
	DesignProgression []domain.DesignProgression `json:"designProgression"`
	DesignPrinciples  []string                   `json:"designPrinciples"`
	FigmaPrototype    string                     `json:"figmaPrototype"`
	UserPersonas      []domain.UserPersona       `json:"userPersonas"`
	UserFlows         []domain.UserFlow          `json:"userFlows"`

	// Website development specific
	TechStack          *domain.TechStack          `json:"techStack"`
	Features           []domain.Feature           `json:"features"`
	CodeHighlights     []domain.CodeHighlight     `json:"codeHighlights"`
	PerformanceMetrics *domain.PerformanceMetrics `json:"performanceMetrics"`
	GithubURL          string                     `json:"githubUrl"`
	APIDocumentation   string                     `json:"apiDocumentation"`

	// SEO specific
	CampaignDuration     string                 `json:"campaignDuration"`
	InitialMetrics       *domain.SEOMetrics     `json:"initialMetrics"`
	FinalMetrics         *domain.SEOMetrics     `json:"finalMetrics"`
	StrategyImplemented  []domain.Strategy      `json:"strategyImplemented"`
	KeywordTargets       []domain.KeywordTarget `json:"keywordTargets"`
	ContentStrategy      string                 `json:"contentStrategy"`
	TechnicalSEO         []string               `json:"technicalSEO"`
	LinkBuildingStrategy string                 `json:"linkBuildingStrategy"`
	AnalyticsReport      string                 `json:"analyticsReport"`
}

// RecordMoodboard mirrors the store's moodboard shape, whose image entries key
// the asset URL as "image" rather than the canonical "src".
type RecordMoodboard struct {
	Palette []domain.PaletteSwatch `json:"palette"`
	Images  []RecordMoodboardImage `json:"images"`
}

type RecordMoodboardImage struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}
