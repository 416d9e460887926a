package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// CreateChargeRequest defines the data needed to log a monthly revenue entry.
// GrossAmount is tax inclusive (TTC); the pre-tax base is derived server side.
type CreateChargeRequest struct {
	GrossAmount decimal.Decimal `json:"grossAmount" binding:"required"`
	VATRate     decimal.Decimal `json:"vatRate"`
	DueDate     time.Time       `json:"dueDate" binding:"required"`
}

// UpdateChargeRequest defines the updatable fields of a charge. Nil fields
// are left untouched; amounts are re-derived when either money field changes.
type UpdateChargeRequest struct {
	GrossAmount *decimal.Decimal `json:"grossAmount,omitempty"`
	VATRate     *decimal.Decimal `json:"vatRate,omitempty"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
}

// CreateContributionRequest asks for a contribution charge to be declared
// against a month's pending revenue.
type CreateContributionRequest struct {
	Month string `json:"month" binding:"required,monthkey"`
}

// ChargeResponse defines the data returned for a charge.
type ChargeResponse struct {
	ChargeID         string          `json:"chargeID"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	VATRate          decimal.Decimal `json:"vatRate"`
	VATAmount        decimal.Decimal `json:"vatAmount"`
	GrossAmount      decimal.Decimal `json:"grossAmount"`
	DueDate          time.Time       `json:"dueDate"`
	DeclarationMonth string          `json:"declarationMonth,omitempty"`
	Status           string          `json:"status"`
	PaymentDate      *time.Time      `json:"paymentDate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToChargeResponse converts a domain.Charge to a ChargeResponse DTO
func ToChargeResponse(c *domain.Charge) ChargeResponse {
	return ChargeResponse{
		ChargeID:         c.ChargeID,
		Type:             string(c.Type),
		Amount:           c.Amount,
		VATRate:          c.VATRate,
		VATAmount:        c.VATAmount,
		GrossAmount:      c.GrossAmount,
		DueDate:          c.DueDate,
		DeclarationMonth: string(c.DeclarationMonth),
		Status:           string(c.Status),
		PaymentDate:      c.PaymentDate,
		CreatedAt:        c.CreatedAt,
	}
}

// ToListChargeResponse converts a slice of domain.Charge to ChargeResponse DTOs
func ToListChargeResponse(charges []domain.Charge) []ChargeResponse {
	res := make([]ChargeResponse, len(charges))
	for i, c := range charges {
		res[i] = ToChargeResponse(&c)
	}
	return res
}
