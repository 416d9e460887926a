package domain

import "github.com/shopspring/decimal"

// TaxRegime is the simplified tax regime of the business. It only affects
// display semantics; the contribution arithmetic is regime-independent.
type TaxRegime string

const (
	RegimeBIC TaxRegime = "BIC" // Bénéfices Industriels et Commerciaux
	RegimeBNC TaxRegime = "BNC" // Bénéfices Non Commerciaux
)

// Settings holds the company parameters that drive all obligation
// calculations. It is read-mostly configuration, re-read on every
// aggregation and mutated only by explicit user edits.
type Settings struct {
	Regime        TaxRegime       `json:"regime"`
	VATEnabled    bool            `json:"isVATEnabled"`
	LiberatoryTax bool            `json:"hasLiberatoryTax"`
	URSSAFRate    decimal.Decimal `json:"urssafRate"` // percent
}

// DefaultSettings returns the settings used when nothing is stored or the
// stored payload cannot be decoded.
func DefaultSettings() Settings {
	return Settings{
		Regime:        RegimeBNC,
		VATEnabled:    false,
		LiberatoryTax: false,
		URSSAFRate:    decimal.NewFromFloat(23.1),
	}
}
