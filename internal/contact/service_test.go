package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	items map[string]Message
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]Message)}
}

func (f *fakeRepo) Create(_ context.Context, item Message) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (Message, error) {
	item, ok := f.items[id]
	if !ok {
		return Message{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeRepo) List(_ context.Context, filter AdminListFilter, _, _ int64) ([]Message, error) {
	out := make([]Message, 0, len(f.items))
	for _, item := range f.items {
		if filter.Unread && item.Read {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepo) Count(_ context.Context, filter AdminListFilter) (int64, error) {
	items, _ := f.List(context.Background(), filter, 0, 0)
	return int64(len(items)), nil
}

func (f *fakeRepo) MarkRead(_ context.Context, id string, readAt time.Time) (bool, error) {
	item, ok := f.items[id]
	if !ok {
		return false, nil
	}
	if !item.Read {
		item.Read = true
		item.ReadAt = &readAt
		f.items[id] = item
	}
	return true, nil
}

func TestCreateStoresUnread(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{
		Name:    "  Jane  ",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})
	require.NoError(t, err)
	require.Equal(t, "Jane", item.Name)
	require.False(t, item.Read)
	require.Nil(t, item.ReadAt)
	require.NotEmpty(t, item.ID)
}

func TestMarkReadIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(context.Background(), item.ID))
	first := repo.items[item.ID]
	require.True(t, first.Read)
	require.NotNil(t, first.ReadAt)

	// Marking again succeeds and does not move readAt.
	require.NoError(t, svc.MarkRead(context.Background(), item.ID))
	second := repo.items[item.ID]
	require.True(t, second.Read)
	require.Equal(t, first.ReadAt, second.ReadAt)
}

func TestMarkReadMissing(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	err := svc.MarkRead(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListUnreadFilter(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	a, _ := svc.Create(context.Background(), CreateRequest{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"})
	_, _ = svc.Create(context.Background(), CreateRequest{Name: "B", Email: "b@example.com", Subject: "s", Message: "m"})
	require.NoError(t, svc.MarkRead(context.Background(), a.ID))

	items, total, err := svc.List(context.Background(), AdminListFilter{Unread: true}, 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(1), total)
	require.Equal(t, "B", items[0].Name)
}
