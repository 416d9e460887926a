// Package taxcalc holds the pure arithmetic shared by services and handlers:
// converting tax-inclusive amounts into base/VAT splits and aggregating
// revenue entries into per-period obligation totals.
package taxcalc

import "github.com/shopspring/decimal"

var (
	hundred    = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
	centLimit  = decimal.NewFromFloat(0.01)
	formationP = decimal.NewFromFloat(0.2) // professional-training fee, percent of HT revenue
)

// Amounts is the result of splitting a tax-inclusive amount.
type Amounts struct {
	Base  decimal.Decimal // HT
	VAT   decimal.Decimal
	Total decimal.Decimal // TTC
}

// Round2 rounds to currency-cent precision using half-up rounding.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DeriveAmounts splits a tax-inclusive (TTC) amount into its pre-tax base
// and VAT portion for the given VAT rate in percent.
//
// Invalid input (negative gross or negative rate) degrades to all-zero
// amounts rather than failing. For any valid input,
// Base + VAT == Total within a 0.01 tolerance, and a zero rate always
// yields a zero VAT amount.
func DeriveAmounts(gross, vatRatePercent decimal.Decimal) Amounts {
	if gross.IsNegative() || vatRatePercent.IsNegative() {
		return Amounts{Base: decimal.Zero, VAT: decimal.Zero, Total: decimal.Zero}
	}
	if vatRatePercent.IsZero() {
		return Amounts{Base: gross, VAT: decimal.Zero, Total: gross}
	}
	divisor := one.Add(vatRatePercent.Div(hundred))
	base := Round2(gross.DivRound(divisor, 8))
	vat := Round2(gross.Sub(base))
	return Amounts{Base: base, VAT: vat, Total: gross}
}

// AddVAT computes the VAT and TTC total on top of a pre-tax base, as the
// standalone calculator does (the inverse direction of DeriveAmounts).
func AddVAT(base, vatRatePercent decimal.Decimal) Amounts {
	if base.IsNegative() || vatRatePercent.IsNegative() {
		return Amounts{Base: decimal.Zero, VAT: decimal.Zero, Total: decimal.Zero}
	}
	vat := Round2(base.Mul(vatRatePercent).Div(hundred))
	return Amounts{Base: base, VAT: vat, Total: base.Add(vat)}
}

// WithinTolerance reports whether a and b differ by at most one cent.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(centLimit)
}
