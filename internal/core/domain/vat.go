package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allowed VAT rates (percent). Zero means not subject to VAT.
var VATRates = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromFloat(5.5),
	decimal.NewFromInt(10),
	decimal.NewFromInt(20),
}

// ValidVATRate reports whether rate is one of the allowed French VAT rates.
func ValidVATRate(rate decimal.Decimal) bool {
	for _, r := range VATRates {
		if rate.Equal(r) {
			return true
		}
	}
	return false
}

// VATHistoryLimit caps the number of retained VAT records; the newest win.
const VATHistoryLimit = 50

// VATRecord is one entry in the append-only VAT log. A record is written
// for every taxed revenue addition and for every saved standalone
// calculation, independent of the validation history.
type VATRecord struct {
	RecordID   string          `json:"recordID"`
	Month      MonthKey        `json:"month"`
	BaseAmount decimal.Decimal `json:"baseAmount"`
	VATAmount  decimal.Decimal `json:"vatAmount"`
	VATRate    decimal.Decimal `json:"vatRate"`
	CreatedAt  time.Time       `json:"createdAt"`
}
