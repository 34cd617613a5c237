package home

import (
	"testing"

	"portfolio-backend/internal/about"
	"portfolio-backend/internal/header"
)

func TestResolveHeroDefaults(t *testing.T) {
	hero := ResolveHero(nil, nil)
	if hero.Title != defaultTitle {
		t.Fatalf("title = %q, want %q", hero.Title, defaultTitle)
	}
	if hero.Subtitle != defaultSubtitle {
		t.Fatalf("subtitle = %q, want %q", hero.Subtitle, defaultSubtitle)
	}
	if hero.CtaLink != defaultCtaLink {
		t.Fatalf("ctaLink = %q, want %q", hero.CtaLink, defaultCtaLink)
	}
	if hero.Rating != defaultRating {
		t.Fatalf("rating = %v, want %v", hero.Rating, defaultRating)
	}
	if hero.BannerImage != "" {
		t.Fatalf("bannerImage = %q, want empty", hero.BannerImage)
	}
}

func TestResolveHeroProfileFallback(t *testing.T) {
	profile := &about.About{
		Name:         "Jane Doe",
		ProfileImage: "https://cdn.example.com/profile.jpg",
	}
	hero := ResolveHero(nil, profile)
	if hero.Title != "Jane Doe" {
		t.Fatalf("title = %q, want profile name", hero.Title)
	}
	if hero.BannerImage != "https://cdn.example.com/profile.jpg" {
		t.Fatalf("bannerImage = %q, want profile image", hero.BannerImage)
	}
	if hero.Subtitle != defaultSubtitle {
		t.Fatalf("subtitle = %q, want default", hero.Subtitle)
	}
}

func TestResolveHeroHeaderWins(t *testing.T) {
	profile := &about.About{
		Name:         "Jane Doe",
		ProfileImage: "https://cdn.example.com/profile.jpg",
	}
	hdr := &header.Header{
		Title:       "Hero Title",
		BannerImage: "https://cdn.example.com/banner.jpg",
		Rating:      4.5,
	}
	hero := ResolveHero(hdr, profile)
	if hero.Title != "Hero Title" {
		t.Fatalf("title = %q, want header title", hero.Title)
	}
	if hero.BannerImage != "https://cdn.example.com/banner.jpg" {
		t.Fatalf("bannerImage = %q, want header banner", hero.BannerImage)
	}
	if hero.Rating != 4.5 {
		t.Fatalf("rating = %v, want 4.5", hero.Rating)
	}
}

func TestResolveHeroEmptyHeaderFieldsFallThrough(t *testing.T) {
	profile := &about.About{Name: "Jane Doe"}
	hdr := &header.Header{Subtitle: "Designer"}
	hero := ResolveHero(hdr, profile)
	if hero.Title != "Jane Doe" {
		t.Fatalf("title = %q, want profile name when header title empty", hero.Title)
	}
	if hero.Subtitle != "Designer" {
		t.Fatalf("subtitle = %q, want header subtitle", hero.Subtitle)
	}
	if hero.TotalProjects != defaultTotalProjects {
		t.Fatalf("totalProjects = %d, want default", hero.TotalProjects)
	}
}
