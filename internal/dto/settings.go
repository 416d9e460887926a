package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// UpdateSettingsRequest defines a partial settings update. Nil fields keep
// their stored value.
type UpdateSettingsRequest struct {
	Regime        *string          `json:"regime,omitempty"`
	VATEnabled    *bool            `json:"isVATEnabled,omitempty"`
	LiberatoryTax *bool            `json:"hasLiberatoryTax,omitempty"`
	URSSAFRate    *decimal.Decimal `json:"urssafRate,omitempty"`
}

// SettingsResponse defines the data returned for the company settings.
type SettingsResponse struct {
	Regime        string          `json:"regime"`
	VATEnabled    bool            `json:"isVATEnabled"`
	LiberatoryTax bool            `json:"hasLiberatoryTax"`
	URSSAFRate    decimal.Decimal `json:"urssafRate"`
}

// ToSettingsResponse converts domain.Settings to a SettingsResponse DTO
func ToSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		Regime:        string(s.Regime),
		VATEnabled:    s.VATEnabled,
		LiberatoryTax: s.LiberatoryTax,
		URSSAFRate:    s.URSSAFRate,
	}
}
