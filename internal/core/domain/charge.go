package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeType discriminates the two kinds of entries held in the charges collection.
type ChargeType string

const (
	// ChargeTypeRevenue is a monthly gross revenue entry ("CA Mensuel"),
	// subject to social contributions and optionally VAT.
	ChargeTypeRevenue ChargeType = "CA_MENSUEL"
	// ChargeTypeContribution is a computed URSSAF obligation declared
	// against a month's accumulated revenue.
	ChargeTypeContribution ChargeType = "URSSAF"
)

// ChargeStatus is the lifecycle state of a charge.
// Revenue entries only move pending -> validated; contribution entries
// only move pending -> paid.
type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusValidated ChargeStatus = "validated"
	ChargeStatusPaid      ChargeStatus = "paid"
)

// Charge is a single entry in the charges ledger.
//
// For revenue entries, Amount is the pre-tax (HT) base derived from the
// tax-inclusive GrossAmount, and Amount + VATAmount == GrossAmount within
// a 0.01 rounding tolerance. For contribution entries the VAT fields are
// zero and GrossAmount equals Amount.
type Charge struct {
	ChargeID         string          `json:"chargeID"`
	Type             ChargeType      `json:"type"`
	Amount           decimal.Decimal `json:"amount"`      // HT base
	VATRate          decimal.Decimal `json:"vatRate"`     // percent, e.g. 20
	VATAmount        decimal.Decimal `json:"vatAmount"`   //
	GrossAmount      decimal.Decimal `json:"grossAmount"` // TTC
	DueDate          time.Time       `json:"dueDate"`
	DeclarationMonth MonthKey        `json:"declarationMonth,omitempty"` // revenue only
	Status           ChargeStatus    `json:"status"`
	PaymentDate      *time.Time      `json:"paymentDate,omitempty"` // contributions only
	CreatedAt        time.Time       `json:"createdAt"`
}

// IsRevenue reports whether the charge is a monthly revenue entry.
func (c Charge) IsRevenue() bool {
	return c.Type == ChargeTypeRevenue
}
