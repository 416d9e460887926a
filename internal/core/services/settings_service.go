package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
)

var maxURSSAFRate = decimal.NewFromInt(100)

// settingsService manages the company settings document.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	if req.Regime != nil {
		regime := domain.TaxRegime(*req.Regime)
		if regime != domain.RegimeBIC && regime != domain.RegimeBNC {
			return domain.Settings{}, fmt.Errorf("unknown tax regime %q: %w", *req.Regime, apperrors.ErrValidation)
		}
		settings.Regime = regime
	}
	if req.VATEnabled != nil {
		settings.VATEnabled = *req.VATEnabled
	}
	if req.LiberatoryTax != nil {
		settings.LiberatoryTax = *req.LiberatoryTax
	}
	if req.URSSAFRate != nil {
		if !req.URSSAFRate.IsPositive() || req.URSSAFRate.GreaterThan(maxURSSAFRate) {
			return domain.Settings{}, fmt.Errorf("URSSAF rate must be within (0, 100]: %w", apperrors.ErrValidation)
		}
		settings.URSSAFRate = *req.URSSAFRate
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	s.LogInfo(ctx, "Settings updated",
		"regime", string(settings.Regime),
		"vat_enabled", settings.VATEnabled,
		"urssaf_rate", settings.URSSAFRate.String())
	return settings, nil
}
