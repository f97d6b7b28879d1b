package service

import (
	"context"

	"github.com/alexanderramin/pomonotch/internal/domain"
)

// SettingsService reads and edits the persisted settings record outside of a
// running timer, for the settings subcommands.
type SettingsService interface {
	// Get returns the stored settings, or the defaults when none are stored.
	// Stored is false when the defaults were returned.
	Get(ctx context.Context) (settings domain.Settings, stored bool, err error)
	// Update applies fn to the stored settings (or the defaults) and writes the
	// result back in one transaction. The edited record must validate.
	Update(ctx context.Context, fn func(*domain.Settings)) (domain.Settings, error)
	// Clear removes the stored record so the defaults apply again.
	Clear(ctx context.Context) error
}
