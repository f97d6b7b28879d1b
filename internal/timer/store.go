package timer

import "context"

// SettingsKey is the key the settings record is stored under.
const SettingsKey = "pomodoroSettings"

// SettingsStore is the key-value store the Model persists its settings in.
// Get returns an error wrapping domain.ErrNotFound when key is absent.
type SettingsStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
