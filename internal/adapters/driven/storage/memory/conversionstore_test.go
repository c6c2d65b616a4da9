package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

func TestConversionStore_SaveAndGet(t *testing.T) {
	store := NewConversionStore()
	ctx := context.Background()

	conv := &domain.Conversion{ID: "c-1", Input: "C C O", Notation: "CCO", Canonical: "CCO"}
	require.NoError(t, store.Save(ctx, conv))

	got, err := store.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "CCO", got.Canonical)
	assert.Equal(t, "C C O", got.Input)
}

func TestConversionStore_Get_NotFound(t *testing.T) {
	store := NewConversionStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConversionStore_Save_RequiresID(t *testing.T) {
	store := NewConversionStore()

	assert.ErrorIs(t, store.Save(context.Background(), &domain.Conversion{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
}

func TestConversionStore_List_NewestFirst(t *testing.T) {
	store := NewConversionStore()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &domain.Conversion{ID: "old", CreatedAt: base}))
	require.NoError(t, store.Save(ctx, &domain.Conversion{ID: "new", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &domain.Conversion{ID: "mid", CreatedAt: base.Add(time.Minute)}))

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "mid", list[1].ID)
	assert.Equal(t, "old", list[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "new", limited[0].ID)
}

func TestConversionStore_List_SameTimestampUsesInsertionOrder(t *testing.T) {
	store := NewConversionStore()
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &domain.Conversion{ID: "first", CreatedAt: ts}))
	require.NoError(t, store.Save(ctx, &domain.Conversion{ID: "second", CreatedAt: ts}))

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "second", list[0].ID)
	assert.Equal(t, "first", list[1].ID)
}

func TestConversionStore_Clear(t *testing.T) {
	store := NewConversionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Conversion{ID: "c-1"}))

	require.NoError(t, store.Clear(ctx))

	list, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConversionStore_Close(t *testing.T) {
	store := NewConversionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Conversion{ID: "c-1"}))

	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.Save(ctx, &domain.Conversion{ID: "c-2"}), domain.ErrStoreClosed)
	_, err := store.Get(ctx, "c-1")
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
	_, err = store.List(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
	assert.ErrorIs(t, store.Clear(ctx), domain.ErrStoreClosed)
}
