package projects

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("project not found")

// ReplacedImage identifies the previous image of an updated project so the
// caller can clean it up best-effort.
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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Project, error) {
	now := time.Now().In(s.location)
	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}

	item := Project{
		ID:            primitive.NewObjectID().Hex(),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Image:         strings.TrimSpace(req.Image),
		ImagePublicID: strings.TrimSpace(req.ImagePublicID),
		Technologies:  SplitTechnologies(req.Technologies),
		Category:      strings.TrimSpace(req.Category),
		DemoURL:       strings.TrimSpace(req.DemoURL),
		GithubURL:     strings.TrimSpace(req.GithubURL),
		Featured:      featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Project{}, err
	}
	return item, nil
}

// Update merges the request into the stored document. An empty Image leaves
// the stored image untouched; a new one replaces it and the previous image is
// reported back for best-effort deletion.
func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Project, *ReplacedImage, error) {
	id = strings.TrimSpace(id)

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, nil, ErrNotFound
		}
		return Project{}, nil, err
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}

	set := bson.M{
		"title":        strings.TrimSpace(req.Title),
		"description":  strings.TrimSpace(req.Description),
		"technologies": SplitTechnologies(req.Technologies),
		"category":     strings.TrimSpace(req.Category),
		"demoUrl":      strings.TrimSpace(req.DemoURL),
		"githubUrl":    strings.TrimSpace(req.GithubURL),
		"featured":     featured,
		"updatedAt":    time.Now().In(s.location),
	}

	var replaced *ReplacedImage
	newImage := strings.TrimSpace(req.Image)
	if newImage != "" {
		set["image"] = newImage
		set["imagePublicId"] = strings.TrimSpace(req.ImagePublicID)
		if existing.Image != "" && existing.Image != newImage {
			replaced = &ReplacedImage{URL: existing.Image, PublicID: existing.ImagePublicID}
		}
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, nil, ErrNotFound
		}
		return Project{}, nil, err
	}
	return updated, replaced, nil
}

func (s *Service) Get(ctx context.Context, id string) (Project, error) {
	item, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
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

func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListAdmin(ctx context.Context, limit, offset int64) ([]Project, int64, error) {
	items, err := s.repo.ListAdmin(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// SplitTechnologies turns the form's comma-separated input into the stored
// list: split on commas, trim, drop empties, keep order.
func SplitTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct categories present, sorted, for the
// client-side "all"+category filter.
func Categories(items []Project) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	sort.Strings(out)
	return out
}
