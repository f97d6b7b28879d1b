package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/alexanderramin/pomonotch/internal/testutil"
	"github.com/alexanderramin/pomonotch/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ timer.SettingsStore = (*SQLiteKVStore)(nil)

func TestKVStore_GetMissingKey(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))

	_, err := store.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKVStore_SetThenGet(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestKVStore_SetOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteKVStore(database)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("one")))
	require.NoError(t, store.Set(ctx, "k", []byte("two")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	var rows int
	require.NoError(t, database.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_store`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestKVStore_Delete(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "k"), ErrNotFound)
}

func TestKVStore_BacksTimerSettings(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	saved := timer.New(store, timer.NewManualScheduler())
	saved.UpdateSettings(func(s *domain.Settings) { s.WorkDuration = 10 })
	saved.SaveSettings(ctx)

	fresh := timer.New(store, timer.NewManualScheduler())
	fresh.LoadSettings(ctx)
	assert.Equal(t, 10, fresh.Settings().WorkDuration)
}
