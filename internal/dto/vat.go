package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// CreateVATCalculationRequest defines the inputs of the standalone VAT
// calculator. BaseAmount is the pre-tax amount.
type CreateVATCalculationRequest struct {
	BaseAmount decimal.Decimal `json:"baseAmount" binding:"required"`
	VATRate    decimal.Decimal `json:"vatRate"`
}

// VATRecordResponse defines the data returned for a stored VAT calculation.
type VATRecordResponse struct {
	RecordID    string          `json:"recordID"`
	Month       string          `json:"month"`
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
	VATRate     decimal.Decimal `json:"vatRate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToVATRecordResponse converts a domain.VATRecord to a VATRecordResponse DTO
func ToVATRecordResponse(r *domain.VATRecord) VATRecordResponse {
	return VATRecordResponse{
		RecordID:    r.RecordID,
		Month:       string(r.Month),
		BaseAmount:  r.BaseAmount,
		VATAmount:   r.VATAmount,
		VATRate:     r.VATRate,
		TotalAmount: r.BaseAmount.Add(r.VATAmount),
		CreatedAt:   r.CreatedAt,
	}
}

// ToListVATRecordResponse converts a slice of domain.VATRecord to
// VATRecordResponse DTOs
func ToListVATRecordResponse(records []domain.VATRecord) []VATRecordResponse {
	res := make([]VATRecordResponse, len(records))
	for i, r := range records {
		res[i] = ToVATRecordResponse(&r)
	}
	return res
}
