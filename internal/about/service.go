package about

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("about profile not found")

type ReplacedImage struct {
	URL      string
	PublicID string
}

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

// Save updates the profile identified by req.ID, or creates a new one when no
// id is supplied.
func (s *Service) Save(ctx context.Context, req UpsertRequest) (About, *ReplacedImage, error) {
	if strings.TrimSpace(req.ID) != "" {
		return s.update(ctx, strings.TrimSpace(req.ID), req)
	}
	item, err := s.create(ctx, req)
	return item, nil, err
}

func (s *Service) create(ctx context.Context, req UpsertRequest) (About, error) {
	now := time.Now().In(s.location)

	item := About{
		ID:              primitive.NewObjectID().Hex(),
		Name:            strings.TrimSpace(req.Name),
		Title:           strings.TrimSpace(req.Title),
		Bio:             strings.TrimSpace(req.Bio),
		BioExtended:     strings.TrimSpace(req.BioExtended),
		Email:           strings.TrimSpace(req.Email),
		Location:        strings.TrimSpace(req.Location),
		ProfileImage:    strings.TrimSpace(req.ProfileImage),
		ProfilePublicID: strings.TrimSpace(req.ProfilePublicID),
		ResumeURL:       strings.TrimSpace(req.ResumeURL),
		Education:       educationList(req.Education),
		Experience:      experienceList(req.Experience),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return About{}, err
	}
	return item, nil
}

func (s *Service) update(ctx context.Context, id string, req UpsertRequest) (About, *ReplacedImage, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return About{}, nil, ErrNotFound
		}
		return About{}, nil, err
	}

	set := bson.M{
		"name":        strings.TrimSpace(req.Name),
		"title":       strings.TrimSpace(req.Title),
		"bio":         strings.TrimSpace(req.Bio),
		"bioExtended": strings.TrimSpace(req.BioExtended),
		"email":       strings.TrimSpace(req.Email),
		"location":    strings.TrimSpace(req.Location),
		"resumeUrl":   strings.TrimSpace(req.ResumeURL),
		"education":   educationList(req.Education),
		"experience":  experienceList(req.Experience),
		"updatedAt":   time.Now().In(s.location),
	}

	var replaced *ReplacedImage
	newImage := strings.TrimSpace(req.ProfileImage)
	if newImage != "" {
		set["profileImage"] = newImage
		set["profilePublicId"] = strings.TrimSpace(req.ProfilePublicID)
		if existing.ProfileImage != "" && existing.ProfileImage != newImage {
			replaced = &ReplacedImage{URL: existing.ProfileImage, PublicID: existing.ProfilePublicID}
		}
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return About{}, nil, ErrNotFound
		}
		return About{}, nil, err
	}
	return updated, replaced, nil
}

func (s *Service) Get(ctx context.Context, id string) (About, error) {
	item, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return About{}, ErrNotFound
		}
		return About{}, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]About, error) {
	return s.repo.List(ctx)
}

// Active returns the profile the public site displays.
func (s *Service) Active(ctx context.Context) (About, error) {
	item, err := s.repo.First(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return About{}, ErrNotFound
		}
		return About{}, err
	}
	return item, nil
}

func educationList(reqs []EducationRequest) []Education {
	out := make([]Education, 0, len(reqs))
	for _, r := range reqs {
		entry := Education{
			Institution:  strings.TrimSpace(r.Institution),
			Degree:       strings.TrimSpace(r.Degree),
			FieldOfStudy: strings.TrimSpace(r.FieldOfStudy),
			StartYear:    strings.TrimSpace(r.StartYear),
			EndYear:      strings.TrimSpace(r.EndYear),
			Current:      r.Current,
			Description:  strings.TrimSpace(r.Description),
		}
		if entry.Current {
			entry.EndYear = ""
		}
		out = append(out, entry)
	}
	return out
}

func experienceList(reqs []ExperienceRequest) []Experience {
	out := make([]Experience, 0, len(reqs))
	for _, r := range reqs {
		entry := Experience{
			Position:    strings.TrimSpace(r.Position),
			Company:     strings.TrimSpace(r.Company),
			StartDate:   strings.TrimSpace(r.StartDate),
			EndDate:     strings.TrimSpace(r.EndDate),
			Current:     r.Current,
			Description: strings.TrimSpace(r.Description),
		}
		if entry.Current {
			entry.EndDate = ""
		}
		out = append(out, entry)
	}
	return out
}
