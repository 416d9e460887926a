package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// SettingsRepository persists the company settings document.
type SettingsRepository struct {
	store kv.Store
}

// NewSettingsRepository creates a settings repository over the given store.
func NewSettingsRepository(store kv.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// storedSettings uses pointer fields so partially written documents from
// older clients can be merged over the defaults field by field.
type storedSettings struct {
	Regime        *domain.TaxRegime `json:"regime"`
	VATEnabled    *bool             `json:"isVATEnabled"`
	LiberatoryTax *bool             `json:"hasLiberatoryTax"`
	URSSAFRate    *decimal.Decimal  `json:"urssafRate"`
}

// GetSettings returns the stored settings merged over the defaults. A
// missing key or malformed payload falls back to defaults without error;
// only a storage failure is surfaced.
func (r *SettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	raw, found, err := r.store.Get(ctx, keySettings)
	if err != nil {
		return settings, fmt.Errorf("load %s: %w", keySettings, err)
	}
	if !found {
		return settings, nil
	}

	var stored storedSettings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slog.WarnContext(ctx, "Discarding malformed stored settings, using defaults",
			slog.String("error", err.Error()))
		return settings, nil
	}

	if stored.Regime != nil && (*stored.Regime == domain.RegimeBIC || *stored.Regime == domain.RegimeBNC) {
		settings.Regime = *stored.Regime
	}
	if stored.VATEnabled != nil {
		settings.VATEnabled = *stored.VATEnabled
	}
	if stored.LiberatoryTax != nil {
		settings.LiberatoryTax = *stored.LiberatoryTax
	}
	if stored.URSSAFRate != nil && stored.URSSAFRate.IsPositive() {
		settings.URSSAFRate = *stored.URSSAFRate
	}
	return settings, nil
}

// SaveSettings persists the full settings document.
func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keySettings, err)
	}
	if err := r.store.Set(ctx, keySettings, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", keySettings, err)
	}
	return nil
}
