package about

import "time"

type Education struct {
	Institution  string `bson:"institution" json:"institution"`
	Degree       string `bson:"degree" json:"degree"`
	FieldOfStudy string `bson:"fieldOfStudy,omitempty" json:"fieldOfStudy,omitempty"`
	StartYear    string `bson:"startYear" json:"startYear"`
	EndYear      string `bson:"endYear,omitempty" json:"endYear,omitempty"`
	Current      bool   `bson:"current,omitempty" json:"current,omitempty"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
}

// DisplayEnd is what the site shows for the end year. A current entry's end
// year is not authoritative.
func (e Education) DisplayEnd() string {
	if e.Current {
		return "Present"
	}
	return e.EndYear
}

type Experience struct {
	Position    string `bson:"position" json:"position"`
	Company     string `bson:"company" json:"company"`
	StartDate   string `bson:"startDate" json:"startDate"`
	EndDate     string `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Current     bool   `bson:"current,omitempty" json:"current,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

func (e Experience) DisplayEnd() string {
	if e.Current {
		return "Present"
	}
	return e.EndDate
}

// About is the owner profile. Modeled as a collection for historical reasons;
// the public site uses the oldest document.
type About struct {
	ID              string       `bson:"_id,omitempty" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Title           string       `bson:"title" json:"title"`
	Bio             string       `bson:"bio" json:"bio"`
	BioExtended     string       `bson:"bioExtended,omitempty" json:"bioExtended,omitempty"`
	Email           string       `bson:"email" json:"email"`
	Location        string       `bson:"location" json:"location"`
	ProfileImage    string       `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	ProfilePublicID string       `bson:"profilePublicId,omitempty" json:"profilePublicId,omitempty"`
	ResumeURL       string       `bson:"resumeUrl,omitempty" json:"resumeUrl,omitempty"`
	Education       []Education  `bson:"education" json:"education"`
	Experience      []Experience `bson:"experience" json:"experience"`
	CreatedAt       time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`

	// Legacy field names, normalized on read.
	LegacyImageURL string `bson:"imageUrl,omitempty" json:"-"`
	LegacyRole     string `bson:"role,omitempty" json:"-"`
}

func (a *About) normalize() {
	if a.ProfileImage == "" && a.LegacyImageURL != "" {
		a.ProfileImage = a.LegacyImageURL
	}
	if a.Title == "" && a.LegacyRole != "" {
		a.Title = a.LegacyRole
	}
	if a.Education == nil {
		a.Education = []Education{}
	}
	if a.Experience == nil {
		a.Experience = []Experience{}
	}
	a.LegacyImageURL = ""
	a.LegacyRole = ""
}

type EducationRequest struct {
	Institution  string `json:"institution" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    string `json:"startYear" validate:"required,year"`
	EndYear      string `json:"endYear" validate:"omitempty,year"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

type ExperienceRequest struct {
	Position    string `json:"position" validate:"required"`
	Company     string `json:"company" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,monthdate"`
	EndDate     string `json:"endDate" validate:"omitempty,monthdate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// UpsertRequest saves the profile: updates when ID is set, creates otherwise.
type UpsertRequest struct {
	ID              string              `json:"id"`
	Name            string              `json:"name" validate:"required"`
	Title           string              `json:"title" validate:"required"`
	Bio             string              `json:"bio" validate:"required"`
	BioExtended     string              `json:"bioExtended"`
	Email           string              `json:"email" validate:"required,email"`
	Location        string              `json:"location"`
	ProfileImage    string              `json:"profileImage" validate:"omitempty,url"`
	ProfilePublicID string              `json:"profilePublicId"`
	ResumeURL       string              `json:"resumeUrl" validate:"omitempty,url"`
	Education       []EducationRequest  `json:"education" validate:"dive"`
	Experience      []ExperienceRequest `json:"experience" validate:"dive"`
}
