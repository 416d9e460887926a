package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	"github.com/SoloCompta/solo_compta_app/internal/core/taxcalc"
)

// MonthlySummaryResponse carries a month's obligation figures together with
// the pending revenue entries they were computed from.
type MonthlySummaryResponse struct {
	Month          string           `json:"month"`
	Revenue        decimal.Decimal  `json:"revenue"`
	URSSAFDue      decimal.Decimal  `json:"urssafDue"`
	FormationFee   decimal.Decimal  `json:"formationFee"`
	VATDue         decimal.Decimal  `json:"vatDue"`
	TotalDue       decimal.Decimal  `json:"totalDue"`
	TotalWithVAT   decimal.Decimal  `json:"totalWithVAT"`
	PendingCharges []ChargeResponse `json:"pendingCharges"`
}

// ToMonthlySummaryResponse converts monthly totals and their pending charges
// to a MonthlySummaryResponse DTO
func ToMonthlySummaryResponse(totals taxcalc.MonthlyTotals, pending []domain.Charge) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:          string(totals.Month),
		Revenue:        totals.Revenue,
		URSSAFDue:      totals.URSSAFDue,
		FormationFee:   totals.FormationFee,
		VATDue:         totals.VATDue,
		TotalDue:       totals.TotalDue,
		TotalWithVAT:   totals.TotalWithVAT,
		PendingCharges: ToListChargeResponse(pending),
	}
}

// ValidationEntryResponse defines the data returned for a validated month.
type ValidationEntryResponse struct {
	Month         string           `json:"month"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	TotalVAT      decimal.Decimal  `json:"totalVAT"`
	SocialCharges decimal.Decimal  `json:"socialCharges"`
	FormationFee  decimal.Decimal  `json:"formationFee"`
	ValidatedAt   time.Time        `json:"validatedAt"`
	Charges       []ChargeResponse `json:"charges"`
}

// ToValidationEntryResponse converts a domain.ValidationEntry to a
// ValidationEntryResponse DTO
func ToValidationEntryResponse(entry *domain.ValidationEntry) ValidationEntryResponse {
	return ValidationEntryResponse{
		Month:         string(entry.Month),
		TotalAmount:   entry.TotalAmount,
		TotalVAT:      entry.TotalVAT,
		SocialCharges: entry.SocialCharges,
		FormationFee:  entry.FormationFee,
		ValidatedAt:   entry.ValidatedAt,
		Charges:       ToListChargeResponse(entry.Charges),
	}
}

// ToListValidationEntryResponse converts a slice of domain.ValidationEntry
// to ValidationEntryResponse DTOs
func ToListValidationEntryResponse(entries []domain.ValidationEntry) []ValidationEntryResponse {
	res := make([]ValidationEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToValidationEntryResponse(&e)
	}
	return res
}

// YearlySummaryResponse defines the recomputed yearly revenue figures.
type YearlySummaryResponse struct {
	Year     int             `json:"year"`
	Revenue  decimal.Decimal `json:"revenue"`
	VATTotal decimal.Decimal `json:"vatTotal"`
	Months   int             `json:"months"`
}

// ToYearlySummaryResponse converts yearly totals to a YearlySummaryResponse DTO
func ToYearlySummaryResponse(totals taxcalc.YearlyTotals) YearlySummaryResponse {
	return YearlySummaryResponse{
		Year:     totals.Year,
		Revenue:  totals.Revenue,
		VATTotal: totals.VATTotal,
		Months:   totals.Months,
	}
}
