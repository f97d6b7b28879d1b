package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pomonotch/internal/db"
	"github.com/alexanderramin/pomonotch/internal/domain"
	"github.com/alexanderramin/pomonotch/internal/repository"
	"github.com/alexanderramin/pomonotch/internal/timer"
)

type settingsService struct {
	store    *repository.SQLiteKVStore
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSettingsService(store *repository.SQLiteKVStore, uow db.UnitOfWork, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		store:    store,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, bool, error) {
	return readSettings(ctx, s.store)
}

func (s *settingsService) Update(ctx context.Context, fn func(*domain.Settings)) (updated domain.Settings, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "update-settings",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"work_sec":        updated.WorkDuration,
				"short_break_sec": updated.ShortBreakDuration,
				"long_break_sec":  updated.LongBreakDuration,
				"cadence":         updated.SessionsBeforeLongBreak,
			},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStore := repository.NewSQLiteKVStore(tx)

		current, _, err := readSettings(ctx, txStore)
		if err != nil {
			return err
		}
		fn(&current)
		if err := current.Validate(); err != nil {
			return err
		}

		data, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("encoding settings: %w", err)
		}
		if err := txStore.Set(ctx, timer.SettingsKey, data); err != nil {
			return err
		}
		updated = current
		return nil
	})
	return updated, err
}

func (s *settingsService) Clear(ctx context.Context) error {
	err := s.store.Delete(ctx, timer.SettingsKey)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

// readSettings mirrors the timer's load rules: an absent, undecodable or
// invalid record yields the defaults. Only store failures are returned.
func readSettings(ctx context.Context, store timer.SettingsStore) (domain.Settings, bool, error) {
	defaults := domain.DefaultSettings()

	data, err := store.Get(ctx, timer.SettingsKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return defaults, false, nil
		}
		return defaults, false, err
	}

	var loaded domain.Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return defaults, false, nil
	}
	if loaded.Validate() != nil {
		return defaults, false, nil
	}
	return loaded, true, nil
}
