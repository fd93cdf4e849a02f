package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory ResumeStore keyed by résumé ID.
type fakeStore struct {
	rows map[uuid.UUID]*db.Resume
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[uuid.UUID]*db.Resume)}
}

func (f *fakeStore) CreateResume(_ context.Context, userID uuid.UUID, doc *types.Document) (*db.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := uuid.New()
	stored := doc.Clone()
	stored.ID = id.String()
	r := &db.Resume{ID: id, UserID: userID, Title: doc.Title, Document: stored, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.rows[id] = r
	return r, nil
}

func (f *fakeStore) GetResume(_ context.Context, id, userID uuid.UUID) (*db.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	return r, nil
}

func (f *fakeStore) UpdateResume(_ context.Context, id, userID uuid.UUID, doc *types.Document) (*db.Resume, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	stored := doc.Clone()
	stored.ID = id.String()
	r.Document = stored
	r.Title = doc.Title
	return r, nil
}

func (f *fakeStore) DeleteResume(_ context.Context, id, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func TestStoreGateway_SaveLoadDelete(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	gw := NewStoreGateway(store, owner)
	ctx := context.Background()

	doc := &types.Document{Title: "Resume", Skills: []string{"Go"}}
	saved, err := gw.SaveResume(ctx, doc)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	loaded, err := gw.LoadResume(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	loaded.Summary = "updated"
	updated, err := gw.SaveResume(ctx, loaded)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "updated", updated.Summary)

	require.NoError(t, gw.DeleteResume(ctx, saved.ID))
	_, err = gw.LoadResume(ctx, saved.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestStoreGateway_OwnerScoped(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	saved, err := NewStoreGateway(store, uuid.New()).SaveResume(ctx, &types.Document{Title: "Mine"})
	require.NoError(t, err)

	other := NewStoreGateway(store, uuid.New())
	_, err = other.LoadResume(ctx, saved.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindNotFound, KindOf(other.DeleteResume(ctx, saved.ID)))
}

func TestStoreGateway_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id is not found", func(t *testing.T) {
		gw := NewStoreGateway(newFakeStore(), uuid.New())
		_, err := gw.LoadResume(ctx, "not-a-uuid")
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("update of unknown id is not found", func(t *testing.T) {
		gw := NewStoreGateway(newFakeStore(), uuid.New())
		_, err := gw.SaveResume(ctx, &types.Document{ID: uuid.NewString()})
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("schema violation is validation", func(t *testing.T) {
		store := newFakeStore()
		gw := NewStoreGateway(store, uuid.New())
		_, err := gw.SaveResume(ctx, &types.Document{Title: strings.Repeat("x", 500)})
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Empty(t, store.rows, "nothing is persisted on a failed save")
	})

	t.Run("nil document is validation", func(t *testing.T) {
		gw := NewStoreGateway(newFakeStore(), uuid.New())
		_, err := gw.SaveResume(ctx, nil)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("store failure is network", func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("connection reset")
		gw := NewStoreGateway(store, uuid.New())
		_, err := gw.LoadResume(ctx, uuid.NewString())
		assert.Equal(t, KindNetwork, KindOf(err))
		_, err = gw.SaveResume(ctx, &types.Document{})
		assert.Equal(t, KindNetwork, KindOf(err))
	})
}
