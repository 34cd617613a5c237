package header

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("header not found")

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Header, error) {
	now := time.Now().In(s.location)

	item := Header{
		ID:               primitive.NewObjectID().Hex(),
		Title:            strings.TrimSpace(req.Title),
		Subtitle:         strings.TrimSpace(req.Subtitle),
		Description:      strings.TrimSpace(req.Description),
		CtaText:          strings.TrimSpace(req.CtaText),
		CtaLink:          strings.TrimSpace(req.CtaLink),
		SecondaryCtaText: strings.TrimSpace(req.SecondaryCtaText),
		SecondaryCtaLink: strings.TrimSpace(req.SecondaryCtaLink),
		BannerImage:      strings.TrimSpace(req.BannerImage),
		BannerPublicID:   strings.TrimSpace(req.BannerPublicID),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.TotalProjects != nil {
		item.TotalProjects = *req.TotalProjects
	}
	if req.Experience != nil {
		item.Experience = *req.Experience
	}
	if req.Rating != nil {
		item.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		item.ReviewCount = *req.ReviewCount
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Header{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Header, *ReplacedImage, error) {
	id = strings.TrimSpace(id)

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Header{}, nil, ErrNotFound
		}
		return Header{}, nil, err
	}

	set := bson.M{
		"title":            strings.TrimSpace(req.Title),
		"subtitle":         strings.TrimSpace(req.Subtitle),
		"description":      strings.TrimSpace(req.Description),
		"ctaText":          strings.TrimSpace(req.CtaText),
		"ctaLink":          strings.TrimSpace(req.CtaLink),
		"secondaryCtaText": strings.TrimSpace(req.SecondaryCtaText),
		"secondaryCtaLink": strings.TrimSpace(req.SecondaryCtaLink),
		"updatedAt":        time.Now().In(s.location),
	}
	if req.TotalProjects != nil {
		set["totalProjects"] = *req.TotalProjects
	}
	if req.Experience != nil {
		set["experience"] = *req.Experience
	}
	if req.Rating != nil {
		set["rating"] = *req.Rating
	}
	if req.ReviewCount != nil {
		set["reviewCount"] = *req.ReviewCount
	}

	var replaced *ReplacedImage
	newImage := strings.TrimSpace(req.BannerImage)
	if newImage != "" {
		set["bannerImage"] = newImage
		set["bannerPublicId"] = strings.TrimSpace(req.BannerPublicID)
		if existing.BannerImage != "" && existing.BannerImage != newImage {
			replaced = &ReplacedImage{URL: existing.BannerImage, PublicID: existing.BannerPublicID}
		}
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Header{}, nil, ErrNotFound
		}
		return Header{}, nil, err
	}
	return updated, replaced, nil
}

func (s *Service) Get(ctx context.Context, id string) (Header, error) {
	item, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Header{}, ErrNotFound
		}
		return Header{}, err
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

func (s *Service) List(ctx context.Context) ([]Header, error) {
	return s.repo.List(ctx)
}

// Active returns the header the public site displays.
func (s *Service) Active(ctx context.Context) (Header, error) {
	item, err := s.repo.First(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Header{}, ErrNotFound
		}
		return Header{}, err
	}
	return item, nil
}
