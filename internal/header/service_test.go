package header

import (
	"context"
	"sort"
	"testing"
	"time"

	"portfolio-backend/internal/validation"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items map[string]Header
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Header)}
}

func (f *fakeRepo) Create(_ context.Context, item Header) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (Header, error) {
	item, ok := f.items[id]
	if !ok {
		return Header{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, set bson.M) (Header, error) {
	item, ok := f.items[id]
	if !ok {
		return Header{}, mongo.ErrNoDocuments
	}
	if v, ok := set["title"].(string); ok {
		item.Title = v
	}
	if v, ok := set["bannerImage"].(string); ok {
		item.BannerImage = v
	}
	if v, ok := set["bannerPublicId"].(string); ok {
		item.BannerPublicID = v
	}
	if v, ok := set["rating"].(float64); ok {
		item.Rating = v
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

func (f *fakeRepo) List(_ context.Context) ([]Header, error) {
	out := make([]Header, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) First(ctx context.Context) (Header, error) {
	items, _ := f.List(ctx)
	if len(items) == 0 {
		return Header{}, mongo.ErrNoDocuments
	}
	return items[0], nil
}

func floatPtr(v float64) *float64 { return &v }

func TestRatingBounds(t *testing.T) {
	v := validation.New()
	cases := []struct {
		rating *float64
		valid  bool
	}{
		{floatPtr(0), true},
		{floatPtr(5), true},
		{floatPtr(4.9), true},
		{floatPtr(5.1), false},
		{floatPtr(-1), false},
		{nil, true},
	}
	for _, c := range cases {
		req := UpsertRequest{Title: "Hero", Rating: c.rating}
		err := v.Struct(req)
		if (err == nil) != c.valid {
			t.Fatalf("rating %v: got err=%v, want valid=%v", c.rating, err, c.valid)
		}
	}
}

func TestActiveIsOldest(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	repo.items["new"] = Header{ID: "new", Title: "Newer", CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	repo.items["old"] = Header{ID: "old", Title: "Older", CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}

	active, err := svc.Active(context.Background())
	require.NoError(t, err)
	require.Equal(t, "old", active.ID)
}

func TestActiveEmpty(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	_, err := svc.Active(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReportsReplacedBanner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	repo.items["h1"] = Header{
		ID:             "h1",
		BannerImage:    "https://cdn.example.com/old-banner.jpg",
		BannerPublicID: "header/old",
	}

	_, replaced, err := svc.Update(context.Background(), "h1", UpsertRequest{
		Title:          "Hero",
		BannerImage:    "https://cdn.example.com/new-banner.jpg",
		BannerPublicID: "header/new",
	})
	require.NoError(t, err)
	require.NotNil(t, replaced)
	require.Equal(t, "https://cdn.example.com/old-banner.jpg", replaced.URL)
	require.Equal(t, "header/old", replaced.PublicID)
}

func TestUpdateKeepsBannerWhenEmpty(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	repo.items["h1"] = Header{ID: "h1", BannerImage: "https://cdn.example.com/banner.jpg"}

	updated, replaced, err := svc.Update(context.Background(), "h1", UpsertRequest{Title: "Hero"})
	require.NoError(t, err)
	require.Nil(t, replaced)
	require.Equal(t, "https://cdn.example.com/banner.jpg", updated.BannerImage)
}

func TestCreateDereferencesStats(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	total := 10
	item, err := svc.Create(context.Background(), UpsertRequest{
		Title:         "Hero",
		TotalProjects: &total,
		Rating:        floatPtr(4.5),
	})
	require.NoError(t, err)
	require.Equal(t, 10, item.TotalProjects)
	require.Equal(t, 4.5, item.Rating)
	require.Zero(t, item.ReviewCount)
}
