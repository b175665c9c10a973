package domain

// ProjectType discriminates which category-specific payload a Project carries.
type ProjectType string

const (
	TypeBranding    ProjectType = "brandingProject"
	TypeDesign      ProjectType = "websiteDesignProject"
	TypeDevelopment ProjectType = "websiteDevelopmentProject"
	TypeSEO         ProjectType = "seoProject"
)

// KnownTypes lists every recognized discriminator value.
var KnownTypes = []ProjectType{TypeBranding, TypeDesign, TypeDevelopment, TypeSEO}

// Label returns the human-readable category name shown on the site.
func (t ProjectType) Label() string {
	switch t {
	case TypeBranding:
		return "Logo & Branding"
	case TypeDesign:
		return "Website Design"
	case TypeDevelopment:
		return "Website Development"
	case TypeSEO:
		return "SEO & Digital Marketing"
	}
	return string(t)
}

// Project is the canonical case-study entity consumed by the site. Exactly one
// of the four variant payloads is non-nil, selected by Type.
type Project struct {
	ID       int         `json:"id"`
	Slug     string      `json:"slug"`
	Type     ProjectType `json:"type"`
	Title    string      `json:"title"`
	Category string      `json:"category"`
	Tags     []string    `json:"tags"`
	Year     string      `json:"year"`

	Description string   `json:"description"`
	Overview    string   `json:"overview,omitempty"`
	HeroImage   string   `json:"heroImage"`
	Gallery     []string `json:"gallery"`

	Client   string   `json:"client,omitempty"`
	Country  string   `json:"country,omitempty"`
	Industry string   `json:"industry,omitempty"`
	Tools    string   `json:"tools,omitempty"`
	Services []string `json:"services,omitempty"`
	LiveURL  string   `json:"liveUrl,omitempty"`
	VideoURL string   `json:"videoUrl,omitempty"`

	Featured    bool        `json:"featured,omitempty"`
	PublishedAt string      `json:"publishedAt,omitempty"`
	Highlights  []Highlight `json:"highlights"`
	Moodboard   *Moodboard  `json:"moodboard,omitempty"`

	Branding    *BrandingDetails    `json:"branding,omitempty"`
	Design      *DesignDetails      `json:"design,omitempty"`
	Development *DevelopmentDetails `json:"development,omitempty"`
	SEO         *SEODetails         `json:"seo,omitempty"`
}

// Highlight is one phase of the engagement narrative. Step is a zero-padded
// ordinal unique within the project.
type Highlight struct {
	Step    string `json:"step"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

type PaletteSwatch struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

type MoodboardImage struct {
	Src     string `json:"src"`
	Caption string `json:"caption"`
}

type Moodboard struct {
	Palette []PaletteSwatch  `json:"palette"`
	Images  []MoodboardImage `json:"images"`
}

type FontChoice struct {
	Name    string   `json:"name"`
	Weights []string `json:"weights"`
}

type TypeScaleEntry struct {
	Name   string `json:"name"`
	Size   string `json:"size"`
	Weight string `json:"weight"`
	Sample string `json:"sample"`
}

type TypographySystem struct {
	PrimaryFont   FontChoice       `json:"primaryFont"`
	SecondaryFont *FontChoice      `json:"secondaryFont,omitempty"`
	Scale         []TypeScaleEntry `json:"scale"`
}

type BrandApplication struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// BrandingDetails is the payload for brand-identity engagements.
type BrandingDetails struct {
	BrandStory            string             `json:"brandStory,omitempty"`
	LogoConceptualization string             `json:"logoConceptualization,omitempty"`
	ColorPalette          []PaletteSwatch    `json:"colorPalette,omitempty"`
	Typography            *TypographySystem  `json:"typography,omitempty"`
	BrandApplications     []BrandApplication `json:"brandApplications,omitempty"`
}

// WireframeType classifies a wireframe artifact by fidelity.
type WireframeType string

const (
	WireframeLowFidelity  WireframeType = "low-fidelity"
	WireframeHighFidelity WireframeType = "high-fidelity"
	WireframeFinalDesign  WireframeType = "final-design"
)

type Wireframe struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Type        WireframeType `json:"type"`
	Learnings   string        `json:"learnings,omitempty"`
}

// DesignStage names a phase of the design progression timeline.
type DesignStage string

const (
	StageResearch  DesignStage = "research"
	StageWireframe DesignStage = "wireframe"
	StagePrototype DesignStage = "prototype"
	StageFinal     DesignStage = "final"
)

type DesignProgression struct {
	Stage       DesignStage `json:"stage"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Learnings   string      `json:"learnings,omitempty"`
	Image       string      `json:"image"`
}

type UserPersona struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Goals      string `json:"goals"`
	PainPoints string `json:"painPoints"`
	Image      string `json:"image"`
}

type UserFlow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FlowImage   string `json:"flowImage"`
}

// DesignDetails is the payload for website-design engagements.
type DesignDetails struct {
	Wireframes        []Wireframe         `json:"wireframes,omitempty"`
	DesignProgression []DesignProgression `json:"designProgression,omitempty"`
	DesignPrinciples  []string            `json:"designPrinciples,omitempty"`
	FigmaPrototype    string              `json:"figmaPrototype,omitempty"`
	UserPersonas      []UserPersona       `json:"userPersonas,omitempty"`
	UserFlows         []UserFlow          `json:"userFlows,omitempty"`
}

type TechStack struct {
	Frontend       []string `json:"frontend,omitempty"`
	Backend        []string `json:"backend,omitempty"`
	Database       []string `json:"database,omitempty"`
	Infrastructure []string `json:"infrastructure,omitempty"`
	Other          []string `json:"other,omitempty"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image"`
}

type CodeHighlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
	Language    string `json:"language,omitempty"`
}

// LighthouseScores are the four sub-scores, each 0-100.
type LighthouseScores struct {
	Performance   int `json:"performance"`
	Accessibility int `json:"accessibility"`
	BestPractices int `json:"bestPractices"`
	SEO           int `json:"seo"`
}

type PerformanceMetrics struct {
	Lighthouse   *LighthouseScores `json:"lighthouse,omitempty"`
	LoadTime     string            `json:"loadTime,omitempty"`
	OtherMetrics string            `json:"otherMetrics,omitempty"`
}

// DevelopmentDetails is the payload for website-development engagements.
type DevelopmentDetails struct {
	TechStack          *TechStack          `json:"techStack,omitempty"`
	Features           []Feature           `json:"features,omitempty"`
	CodeHighlights     []CodeHighlight     `json:"codeHighlights,omitempty"`
	PerformanceMetrics *PerformanceMetrics `json:"performanceMetrics,omitempty"`
	GithubURL          string              `json:"githubUrl,omitempty"`
	APIDocumentation   string              `json:"apiDocumentation,omitempty"`
}

type SEOMetrics struct {
	OrganicTraffic  string `json:"organicTraffic"`
	KeywordRankings string `json:"keywordRankings"`
	DomainAuthority int    `json:"domainAuthority"`
	Backlinks       int    `json:"backlinks"`
	ConversionRate  string `json:"conversionRate"`
}

type Strategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Results     string `json:"results"`
}

type KeywordTarget struct {
	Keyword      string `json:"keyword"`
	InitialRank  int    `json:"initialRank"`
	FinalRank    int    `json:"finalRank"`
	SearchVolume int    `json:"searchVolume"`
}

// SEODetails is the payload for SEO campaign engagements.
type SEODetails struct {
	CampaignDuration     string          `json:"campaignDuration,omitempty"`
	InitialMetrics       *SEOMetrics     `json:"initialMetrics,omitempty"`
	FinalMetrics         *SEOMetrics     `json:"finalMetrics,omitempty"`
	StrategyImplemented  []Strategy      `json:"strategyImplemented,omitempty"`
	KeywordTargets       []KeywordTarget `json:"keywordTargets,omitempty"`
	ContentStrategy      string          `json:"contentStrategy,omitempty"`
	TechnicalSEO         []string        `json:"technicalSEO,omitempty"`
	LinkBuildingStrategy string          `json:"linkBuildingStrategy,omitempty"`
	AnalyticsReport      string          `json:"analyticsReport,omitempty"`
}
