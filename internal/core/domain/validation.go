package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidationEntry is the frozen record produced by validating a month's
// pending revenue. The Charges slice is a snapshot copy taken at validation
// time; later edits or deletions of the live entries never alter it.
// History is keyed uniquely by Month: re-validating a month replaces its
// prior record.
type ValidationEntry struct {
	Month         MonthKey        `json:"month"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // sum of HT bases
	TotalVAT      decimal.Decimal `json:"totalVat"`
	SocialCharges decimal.Decimal `json:"socialCharges"` // URSSAF due
	FormationFee  decimal.Decimal `json:"formationFee"`
	ValidatedAt   time.Time       `json:"validatedAt"`
	Charges       []Charge        `json:"charges"`
}
