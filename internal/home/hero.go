package home

import (
	"portfolio-backend/internal/about"
	"portfolio-backend/internal/header"
)

// Fallbacks rendered when neither a header nor a profile provides the field.
const (
	defaultTitle            = "Welcome"
	defaultSubtitle         = "Online Platform"
	defaultDescription      = "Explore my projects, skills and experience."
	defaultCtaText          = "Get Started"
	defaultCtaLink          = "/projects"
	defaultSecondaryCtaText = "Contact Me"
	defaultSecondaryCtaLink = "/contact"
	defaultTotalProjects    = 15
	defaultExperience       = 2
	defaultRating           = 4.9
	defaultReviewCount      = 25
)

type Hero struct {
	Title            string  `json:"title"`
	Subtitle         string  `json:"subtitle"`
	Description      string  `json:"description"`
	CtaText          string  `json:"ctaText"`
	CtaLink          string  `json:"ctaLink"`
	SecondaryCtaText string  `json:"secondaryCtaText"`
	SecondaryCtaLink string  `json:"secondaryCtaLink"`
	BannerImage      string  `json:"bannerImage,omitempty"`
	TotalProjects    int     `json:"totalProjects"`
	Experience       float64 `json:"experience"`
	Rating           float64 `json:"rating"`
	ReviewCount      int     `json:"reviewCount"`
}

// ResolveHero merges the active header and profile into the hero the home
// page renders. Precedence is per field: header value, then profile value
// where one applies, then the hardcoded default. Either input may be nil.
func ResolveHero(h *header.Header, a *about.About) Hero {
	hero := Hero{
		Title:            defaultTitle,
		Subtitle:         defaultSubtitle,
		Description:      defaultDescription,
		CtaText:          defaultCtaText,
		CtaLink:          defaultCtaLink,
		SecondaryCtaText: defaultSecondaryCtaText,
		SecondaryCtaLink: defaultSecondaryCtaLink,
		TotalProjects:    defaultTotalProjects,
		Experience:       defaultExperience,
		Rating:           defaultRating,
		ReviewCount:      defaultReviewCount,
	}

	if a != nil {
		if a.Name != "" {
			hero.Title = a.Name
		}
		if a.ProfileImage != "" {
			hero.BannerImage = a.ProfileImage
		}
	}

	if h != nil {
		if h.Title != "" {
			hero.Title = h.Title
		}
		if h.Subtitle != "" {
			hero.Subtitle = h.Subtitle
		}
		if h.Description != "" {
			hero.Description = h.Description
		}
		if h.CtaText != "" {
			hero.CtaText = h.CtaText
		}
		if h.CtaLink != "" {
			hero.CtaLink = h.CtaLink
		}
		if h.SecondaryCtaText != "" {
			hero.SecondaryCtaText = h.SecondaryCtaText
		}
		if h.SecondaryCtaLink != "" {
			hero.SecondaryCtaLink = h.SecondaryCtaLink
		}
		if h.BannerImage != "" {
			hero.BannerImage = h.BannerImage
		}
		if h.TotalProjects > 0 {
			hero.TotalProjects = h.TotalProjects
		}
		if h.Experience > 0 {
			hero.Experience = h.Experience
		}
		if h.Rating > 0 {
			hero.Rating = h.Rating
		}
		if h.ReviewCount > 0 {
			hero.ReviewCount = h.ReviewCount
		}
	}

	return hero
}
