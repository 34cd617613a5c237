package projects

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items   map[string]Project
	lastSet bson.M
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Project)}
}

func (f *fakeRepo) Create(_ context.Context, item Project) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (Project, error) {
	item, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, set bson.M) (Project, error) {
	item, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	f.lastSet = set
	if v, ok := set["title"].(string); ok {
		item.Title = v
	}
	if v, ok := set["image"].(string); ok {
		item.Image = v
	}
	if v, ok := set["imagePublicId"].(string); ok {
		item.ImagePublicID = v
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeRepo) List(_ context.Context) ([]Project, error) {
	out := make([]Project, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) ListAdmin(ctx context.Context, _, _ int64) ([]Project, error) {
	return f.List(ctx)
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func TestSplitTechnologies(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"React, Node.js, , Firebase ", []string{"React", "Node.js", "Firebase"}},
		{"Go", []string{"Go"}},
		{"", []string{}},
		{" , , ", []string{}},
		{"a,b,a", []string{"a", "b", "a"}},
	}
	for _, c := range cases {
		got := SplitTechnologies(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("SplitTechnologies(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("SplitTechnologies(%q) = %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestCategories(t *testing.T) {
	items := []Project{
		{Category: "Web"},
		{Category: "Mobile"},
		{Category: "Web"},
		{Category: ""},
	}
	got := Categories(items)
	if len(got) != 2 || got[0] != "Mobile" || got[1] != "Web" {
		t.Fatalf("Categories = %v, want [Mobile Web]", got)
	}
}

func TestCreateTrimsAndSplits(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	featured := true
	item, err := svc.Create(context.Background(), UpsertRequest{
		Title:        "  Portfolio  ",
		Description:  "desc",
		Category:     "Web",
		Technologies: "Next.js, MongoDB",
		Featured:     &featured,
	})
	require.NoError(t, err)
	require.Equal(t, "Portfolio", item.Title)
	require.Equal(t, []string{"Next.js", "MongoDB"}, item.Technologies)
	require.True(t, item.Featured)
	require.NotEmpty(t, item.ID)
	require.Len(t, repo.items, 1)
}

func TestUpdateKeepsImageWhenEmpty(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	repo.items["p1"] = Project{
		ID:            "p1",
		Title:         "Old",
		Image:         "https://cdn.example.com/upload/v1/projects/old.jpg",
		ImagePublicID: "projects/old",
	}

	updated, replaced, err := svc.Update(context.Background(), "p1", UpsertRequest{
		Title:       "New",
		Description: "desc",
		Category:    "Web",
	})
	require.NoError(t, err)
	require.Nil(t, replaced)
	require.Equal(t, "New", updated.Title)

	_, hasImage := repo.lastSet["image"]
	require.False(t, hasImage, "empty request image must not touch the stored image")
	require.Equal(t, "https://cdn.example.com/upload/v1/projects/old.jpg", updated.Image)
}

func TestUpdateReportsReplacedImage(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	repo.items["p1"] = Project{
		ID:            "p1",
		Image:         "https://cdn.example.com/old.jpg",
		ImagePublicID: "projects/old",
	}

	_, replaced, err := svc.Update(context.Background(), "p1", UpsertRequest{
		Title:         "New",
		Description:   "desc",
		Category:      "Web",
		Image:         "https://cdn.example.com/new.jpg",
		ImagePublicID: "projects/new",
	})
	require.NoError(t, err)
	require.NotNil(t, replaced)
	require.Equal(t, "https://cdn.example.com/old.jpg", replaced.URL)
	require.Equal(t, "projects/old", replaced.PublicID)
	require.Equal(t, "projects/new", repo.items["p1"].ImagePublicID)
}

func TestUpdateSameImageNotReplaced(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	repo.items["p1"] = Project{ID: "p1", Image: "https://cdn.example.com/same.jpg"}

	_, replaced, err := svc.Update(context.Background(), "p1", UpsertRequest{
		Title:       "New",
		Description: "desc",
		Category:    "Web",
		Image:       "https://cdn.example.com/same.jpg",
	})
	require.NoError(t, err)
	require.Nil(t, replaced)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	_, _, err := svc.Update(context.Background(), "missing", UpsertRequest{
		Title:       "x",
		Description: "y",
		Category:    "z",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	err := svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeLegacyFields(t *testing.T) {
	p := Project{
		LegacyImageURL: "https://cdn.example.com/legacy.jpg",
		LegacyTags:     []string{"react", "node"},
	}
	p.normalize()
	if p.Image != "https://cdn.example.com/legacy.jpg" {
		t.Fatalf("legacy imageUrl not promoted: %q", p.Image)
	}
	if len(p.Technologies) != 2 || p.Technologies[0] != "react" {
		t.Fatalf("legacy tags not promoted: %v", p.Technologies)
	}
	if p.LegacyImageURL != "" || p.LegacyTags != nil {
		t.Fatalf("legacy fields must be cleared after normalize")
	}
}

func TestNormalizePrefersCurrentFields(t *testing.T) {
	p := Project{
		Image:          "https://cdn.example.com/current.jpg",
		Technologies:   []string{"go"},
		LegacyImageURL: "https://cdn.example.com/legacy.jpg",
		LegacyTags:     []string{"react"},
	}
	p.normalize()
	if p.Image != "https://cdn.example.com/current.jpg" {
		t.Fatalf("current image overwritten: %q", p.Image)
	}
	if len(p.Technologies) != 1 || p.Technologies[0] != "go" {
		t.Fatalf("current technologies overwritten: %v", p.Technologies)
	}
}
