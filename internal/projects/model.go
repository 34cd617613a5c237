package projects

import "time"

type Project struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Image         string    `bson:"image,omitempty" json:"image,omitempty"`
	ImagePublicID string    `bson:"imagePublicId,omitempty" json:"imagePublicId,omitempty"`
	Technologies  []string  `bson:"technologies" json:"technologies"`
	Category      string    `bson:"category" json:"category"`
	DemoURL       string    `bson:"demoUrl,omitempty" json:"demoUrl,omitempty"`
	GithubURL     string    `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	Featured      bool      `bson:"featured" json:"featured"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`

	// Older documents stored the image under imageUrl and the tech list under
	// tags. Read-only: normalized into Image/Technologies, never written back.
	LegacyImageURL string   `bson:"imageUrl,omitempty" json:"-"`
	LegacyTags     []string `bson:"tags,omitempty" json:"-"`
}

func (p *Project) normalize() {
	if p.Image == "" && p.LegacyImageURL != "" {
		p.Image = p.LegacyImageURL
	}
	if len(p.Technologies) == 0 && len(p.LegacyTags) > 0 {
		p.Technologies = p.LegacyTags
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	p.LegacyImageURL = ""
	p.LegacyTags = nil
}

// UpsertRequest carries the admin form fields. Technologies arrives as the
// comma-separated string the form edits and is split on save.
type UpsertRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Technologies  string `json:"technologies"`
	Image         string `json:"image" validate:"omitempty,url"`
	ImagePublicID string `json:"imagePublicId"`
	DemoURL       string `json:"demoUrl" validate:"omitempty,url"`
	GithubURL     string `json:"githubUrl" validate:"omitempty,url"`
	Featured      *bool  `json:"featured"`
}
