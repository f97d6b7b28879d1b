package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/alexanderramin/pomonotch/internal/repository"
	"github.com/alexanderramin/pomonotch/internal/testutil"
	"github.com/alexanderramin/pomonotch/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsService(t *testing.T, observers ...UseCaseObserver) (SettingsService, *repository.SQLiteKVStore) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteKVStore(database)
	return NewSettingsService(store, testutil.NewTestUoW(database), observers...), store
}

func TestSettingsService_GetDefaultsWhenEmpty(t *testing.T) {
	svc, _ := newTestSettingsService(t)

	got, stored, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsService_GetDefaultsWhenCorrupt(t *testing.T) {
	svc, store := newTestSettingsService(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, timer.SettingsKey, []byte("{broken")))

	got, stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsService_UpdatePatchesStoredRecord(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, func(s *domain.Settings) { s.WorkDuration = 600 })
	require.NoError(t, err)
	updated, err := svc.Update(ctx, func(s *domain.Settings) { s.SessionsBeforeLongBreak = 2 })
	require.NoError(t, err)

	assert.Equal(t, 600, updated.WorkDuration)
	assert.Equal(t, 2, updated.SessionsBeforeLongBreak)

	got, stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, updated, got)
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, func(s *domain.Settings) { s.LongBreakDuration = 0 })
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)

	_, stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored, "invalid record must not be written")
}

func TestSettingsService_UpdateIsVisibleToTimer(t *testing.T) {
	svc, store := newTestSettingsService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, func(s *domain.Settings) { s.ShortBreakDuration = 120 })
	require.NoError(t, err)

	m := timer.New(store, timer.NewManualScheduler())
	m.LoadSettings(ctx)
	assert.Equal(t, 120, m.Settings().ShortBreakDuration)
}

func TestSettingsService_Clear(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	ctx := context.Background()

	require.NoError(t, svc.Clear(ctx), "clearing an empty store is fine")
	_, err := svc.Update(ctx, func(s *domain.Settings) { s.WorkDuration = 60 })
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	got, stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestSettingsService_ObservesUpdates(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc, _ := newTestSettingsService(t, NewLogUseCaseObserver(logger))

	_, err := svc.Update(context.Background(), func(s *domain.Settings) { s.WorkDuration = 900 })
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "use_case=update-settings")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "work_sec=900")
}
