package services

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
)

// SettingsReaderSvc defines read operations for the company settings
type SettingsReaderSvc interface {
	// GetSettings retrieves the settings merged over the defaults.
	GetSettings(ctx context.Context) (domain.Settings, error)
}

// SettingsWriterSvc defines write operations for the company settings
type SettingsWriterSvc interface {
	// UpdateSettings applies the non-nil request fields and persists the
	// resulting document.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error)
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
