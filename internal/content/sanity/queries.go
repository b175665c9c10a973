package sanity

// GROQ queries against the studio dataset. Asset references are dereferenced to
// URLs at query time so records arrive with plain image links.

const projectFields = `
    _id,
    _type,
    title,
    "slug": slug.current,
    category,
    tags,
    year,
    description,
    overview,
    client,
    country,
    industry,
    tools,
    services,
    "heroImage": heroImage.asset->url,
    "gallery": gallery[].asset->url,
    highlights[] { step, title, content, "image": image.asset->url },
    moodboard {
      palette[] { color, label },
      images[] { "image": image.asset->url, caption }
    },
    brandStory,
    logoConceptualization,
    colorPalette[] { color, label },
    typography {
      primaryFont { name, weights },
      secondaryFont { name, weights },
      scale[] { name, size, weight, sample }
    },
    brandApplications[] { title, description, "image": image.asset->url },
    wireframes[] { title, description, "image": image.asset->url, type, learnings },
    designProgression[] { stage, title, description, learnings, "image": image.asset->url },
    designPrinciples,
    figmaPrototype,
    userPersonas[] { name, role, goals, painPoints, "image": image.asset->url },
    userFlows[] { title, description, "flowImage": flowImage.asset->url },
    techStack { frontend, backend, database, infrastructure, other },
    features[] { title, description, icon, "image": image.asset->url },
    codeHighlights[] { title, description, code, language },
    performanceMetrics {
      lighthouse { performance, accessibility, bestPractices, seo },
      loadTime,
      otherMetrics
    },
    githubUrl,
    apiDocumentation,
    campaignDuration,
    initialMetrics { organicTraffic, keywordRankings, domainAuthority, backlinks, conversionRate },
    finalMetrics { organicTraffic, keywordRankings, domainAuthority, backlinks, conversionRate },
    strategyImplemented[] { title, description, results },
    keywordTargets[] { keyword, initialRank, finalRank, searchVolume },
    contentStrategy,
    technicalSEO,
    linkBuildingStrategy,
    analyticsReport,
    liveUrl,
    videoUrl,
    featured,
    publishedAt`

const AllProjectsQuery = `
  *[
    _type in ["brandingProject", "websiteDesignProject", "websiteDevelopmentProject", "seoProject"]
  ] | order(publishedAt desc) {` + projectFields + `
  }`

const ProjectBySlugQuery = `
  *[
    _type in ["brandingProject", "websiteDesignProject", "websiteDevelopmentProject", "seoProject"]
    && slug.current == $slug
  ][0] {` + projectFields + `
  }`

const ProjectsByTypeQuery = `
  *[
    _type == $projectType
  ] | order(publishedAt desc) {` + projectFields + `
  }`

const FeaturedProjectsQuery = `
  *[
    _type in ["brandingProject", "websiteDesignProject", "websiteDevelopmentProject", "seoProject"]
    && featured == true
  ] | order(publishedAt desc) [0...6] {` + projectFields + `
  }`
