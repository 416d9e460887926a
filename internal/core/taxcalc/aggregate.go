package taxcalc

import (
	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// MonthlyTotals are the obligation figures for one declaration month,
// computed over pending revenue entries only.
type MonthlyTotals struct {
	Month        domain.MonthKey
	Revenue      decimal.Decimal // sum of HT bases
	URSSAFDue    decimal.Decimal
	FormationFee decimal.Decimal
	VATDue       decimal.Decimal
	TotalDue     decimal.Decimal // URSSAFDue + FormationFee, VAT excluded
	TotalWithVAT decimal.Decimal // TotalDue + VATDue when VAT is enabled
}

// YearlyTotals aggregates revenue entries across a calendar year,
// regardless of status. Both figures are recomputed from the entries
// themselves; no separately persisted running counter is consulted.
type YearlyTotals struct {
	Year     int
	Revenue  decimal.Decimal
	VATTotal decimal.Decimal
	Months   int // distinct declaration months seen
}

// PendingRevenue returns the pending revenue charges declared for month.
func PendingRevenue(charges []domain.Charge, month domain.MonthKey) []domain.Charge {
	var out []domain.Charge
	for _, c := range charges {
		if c.IsRevenue() && c.Status == domain.ChargeStatusPending && c.DeclarationMonth == month {
			out = append(out, c)
		}
	}
	return out
}

// AggregateMonth computes the month's obligation totals from the full
// charge collection and the current settings.
func AggregateMonth(charges []domain.Charge, settings domain.Settings, month domain.MonthKey) MonthlyTotals {
	totals := MonthlyTotals{
		Month:        month,
		Revenue:      decimal.Zero,
		URSSAFDue:    decimal.Zero,
		FormationFee: decimal.Zero,
		VATDue:       decimal.Zero,
		TotalDue:     decimal.Zero,
		TotalWithVAT: decimal.Zero,
	}
	for _, c := range PendingRevenue(charges, month) {
		totals.Revenue = totals.Revenue.Add(c.Amount)
		totals.VATDue = totals.VATDue.Add(c.VATAmount)
	}
	totals.URSSAFDue = Round2(totals.Revenue.Mul(settings.URSSAFRate).Div(hundred))
	totals.FormationFee = Round2(totals.Revenue.Mul(formationP).Div(hundred))
	totals.TotalDue = totals.URSSAFDue.Add(totals.FormationFee)
	totals.TotalWithVAT = totals.TotalDue
	if settings.VATEnabled {
		totals.TotalWithVAT = totals.TotalDue.Add(totals.VATDue)
	}
	return totals
}

// AggregateYear sums revenue bases and VAT across all revenue entries of
// the given year, whatever their status.
func AggregateYear(charges []domain.Charge, year int) YearlyTotals {
	totals := YearlyTotals{
		Year:     year,
		Revenue:  decimal.Zero,
		VATTotal: decimal.Zero,
	}
	months := make(map[domain.MonthKey]struct{})
	for _, c := range charges {
		if !c.IsRevenue() || c.DeclarationMonth.Year() != year {
			continue
		}
		totals.Revenue = totals.Revenue.Add(c.Amount)
		totals.VATTotal = totals.VATTotal.Add(c.VATAmount)
		months[c.DeclarationMonth] = struct{}{}
	}
	totals.Months = len(months)
	return totals
}
