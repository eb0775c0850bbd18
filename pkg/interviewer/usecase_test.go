package interviewer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/watch"
)

type memRepo struct {
	items map[uuid.UUID]Interviewer
	order []uuid.UUID
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[uuid.UUID]Interviewer)}
}

func (r *memRepo) Create(ctx context.Context, iv Interviewer) error {
	r.items[iv.ID] = iv
	r.order = append(r.order, iv.ID)
	return nil
}

func (r *memRepo) List(ctx context.Context) ([]Interviewer, error) {
	out := make([]Interviewer, 0, len(r.order))
	// newest first, the repository's list order
	for i := len(r.order) - 1; i >= 0; i-- {
		if iv, ok := r.items[r.order[i]]; ok {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, id uuid.UUID) (Interviewer, error) {
	iv, ok := r.items[id]
	if !ok {
		return Interviewer{}, ErrNotFound
	}
	return iv, nil
}

func (r *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newTestService() UseCase {
	return NewService(newMemRepo(), watch.NewHub())
}

func TestAddValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "", "ada@example.com", "backend")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = svc.Add(ctx, "Ada", "not-an-email", "backend")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Add(ctx, "Ada", "ada@example.com", "astrology")
	assert.ErrorIs(t, err, ErrUnknownSpecialization)
}

func TestAddNormalizesAndRoundTrips(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	iv, err := svc.Add(ctx, "  Ada Lovelace  ", " Ada@Example.COM ", " Backend ")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", iv.Name)
	assert.Equal(t, "ada@example.com", iv.Email)
	assert.Equal(t, "backend", iv.Specialization)
	assert.NotEqual(t, uuid.Nil, iv.ID)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, iv.ID, listed[0].ID)
}

func TestAddAllowsEmptySpecialization(t *testing.T) {
	svc := newTestService()
	iv, err := svc.Add(context.Background(), "Ada", "ada@example.com", "")
	require.NoError(t, err)
	assert.Empty(t, iv.Specialization)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Add(ctx, "Ada", "ada@example.com", "backend")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "Bob", "bob@example.com", "frontend")
	require.NoError(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestDeleteRemovesFromDirectory(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	iv, err := svc.Add(ctx, "Ada", "ada@example.com", "backend")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, iv.ID))
	assert.ErrorIs(t, svc.Delete(ctx, iv.ID), ErrNotFound)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestResolveDropsUnknownIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Add(ctx, "Ada", "ada@example.com", "backend")
	require.NoError(t, err)
	b, err := svc.Add(ctx, "Bob", "bob@example.com", "frontend")
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, []string{
		a.ID.String(),
		"not-a-uuid",
		uuid.NewString(), // valid uuid, unknown interviewer
		b.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, a.ID, resolved[0].ID)
	assert.Equal(t, b.ID, resolved[1].ID)
}

func TestWatchSeedsAndStreams(t *testing.T) {
	svc := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := svc.Add(ctx, "Ada", "ada@example.com", "backend")
	require.NoError(t, err)

	ch := svc.Watch(ctx)

	// first emission is the current directory
	select {
	case snapshot := <-ch:
		require.Len(t, snapshot, 1)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	_, err = svc.Add(ctx, "Bob", "bob@example.com", "frontend")
	require.NoError(t, err)

	select {
	case snapshot := <-ch:
		require.Len(t, snapshot, 2)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after add")
	}
}
