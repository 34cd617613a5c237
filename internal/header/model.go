package header

import "time"

// Header is the site hero content. More than one document can exist; the
// public site treats the oldest one as active.
type Header struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	Title            string    `bson:"title" json:"title"`
	Subtitle         string    `bson:"subtitle" json:"subtitle"`
	Description      string    `bson:"description" json:"description"`
	CtaText          string    `bson:"ctaText" json:"ctaText"`
	CtaLink          string    `bson:"ctaLink" json:"ctaLink"`
	SecondaryCtaText string    `bson:"secondaryCtaText" json:"secondaryCtaText"`
	SecondaryCtaLink string    `bson:"secondaryCtaLink" json:"secondaryCtaLink"`
	BannerImage      string    `bson:"bannerImage,omitempty" json:"bannerImage,omitempty"`
	BannerPublicID   string    `bson:"bannerPublicId,omitempty" json:"bannerPublicId,omitempty"`
	TotalProjects    int       `bson:"totalProjects" json:"totalProjects"`
	Experience       float64   `bson:"experience" json:"experience"`
	Rating           float64   `bson:"rating" json:"rating"`
	ReviewCount      int       `bson:"reviewCount" json:"reviewCount"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpsertRequest struct {
	Title            string   `json:"title" validate:"required"`
	Subtitle         string   `json:"subtitle"`
	Description      string   `json:"description"`
	CtaText          string   `json:"ctaText"`
	CtaLink          string   `json:"ctaLink"`
	SecondaryCtaText string   `json:"secondaryCtaText"`
	SecondaryCtaLink string   `json:"secondaryCtaLink"`
	BannerImage      string   `json:"bannerImage" validate:"omitempty,url"`
	BannerPublicID   string   `json:"bannerPublicId"`
	TotalProjects    *int     `json:"totalProjects" validate:"omitempty,gte=0"`
	Experience       *float64 `json:"experience" validate:"omitempty,gte=0"`
	Rating           *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount      *int     `json:"reviewCount" validate:"omitempty,gte=0"`
}
