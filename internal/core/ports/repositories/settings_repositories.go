package repositories

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// SettingsReader defines read operations for the settings document
type SettingsReader interface {
	// GetSettings retrieves the stored settings merged over the defaults.
	GetSettings(ctx context.Context) (domain.Settings, error)
}

// SettingsWriter defines write operations for the settings document
type SettingsWriter interface {
	// SaveSettings persists the full settings document.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
