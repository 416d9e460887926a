package taxcalc_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	"github.com/SoloCompta/solo_compta_app/internal/core/taxcalc"
)

func revenueCharge(id string, base, vat float64, month domain.MonthKey, status domain.ChargeStatus) domain.Charge {
	b := decimal.NewFromFloat(base)
	v := decimal.NewFromFloat(vat)
	return domain.Charge{
		ChargeID:         id,
		Type:             domain.ChargeTypeRevenue,
		Amount:           b,
		VATAmount:        v,
		GrossAmount:      b.Add(v),
		DeclarationMonth: month,
		Status:           status,
		CreatedAt:        time.Now(),
	}
}

func testSettings(rate float64, vatEnabled bool) domain.Settings {
	s := domain.DefaultSettings()
	s.URSSAFRate = decimal.NewFromFloat(rate)
	s.VATEnabled = vatEnabled
	return s
}

func TestAggregateMonth(t *testing.T) {
	month := domain.MonthKey("2025-03")

	t.Run("single pending entry at 23.1 percent", func(t *testing.T) {
		charges := []domain.Charge{
			revenueCharge("1", 1000, 0, month, domain.ChargeStatusPending),
		}
		got := taxcalc.AggregateMonth(charges, testSettings(23.1, false), month)

		assert.Equal(t, "1000", got.Revenue.String())
		assert.Equal(t, "231", got.URSSAFDue.String())
		assert.Equal(t, "2", got.FormationFee.String())
		assert.Equal(t, "233", got.TotalDue.String())
		assert.Equal(t, "0", got.VATDue.String())
	})

	t.Run("validated and paid entries are excluded", func(t *testing.T) {
		charges := []domain.Charge{
			revenueCharge("1", 500, 100, month, domain.ChargeStatusPending),
			revenueCharge("2", 800, 160, month, domain.ChargeStatusValidated),
			revenueCharge("3", 300, 60, month, domain.ChargeStatusPaid),
		}
		got := taxcalc.AggregateMonth(charges, testSettings(23.1, true), month)

		assert.Equal(t, "500", got.Revenue.String())
		assert.Equal(t, "100", got.VATDue.String())
	})

	t.Run("other months and contribution entries are excluded", func(t *testing.T) {
		contribution := domain.Charge{
			ChargeID: "c1",
			Type:     domain.ChargeTypeContribution,
			Amount:   decimal.NewFromInt(231),
			Status:   domain.ChargeStatusPending,
		}
		charges := []domain.Charge{
			revenueCharge("1", 500, 0, month, domain.ChargeStatusPending),
			revenueCharge("2", 900, 0, domain.MonthKey("2025-02"), domain.ChargeStatusPending),
			contribution,
		}
		got := taxcalc.AggregateMonth(charges, testSettings(23.1, false), month)

		assert.Equal(t, "500", got.Revenue.String())
	})

	t.Run("VAT added to TTC total only when enabled", func(t *testing.T) {
		charges := []domain.Charge{
			revenueCharge("1", 1000, 200, month, domain.ChargeStatusPending),
		}

		off := taxcalc.AggregateMonth(charges, testSettings(23.1, false), month)
		assert.Equal(t, off.TotalDue.String(), off.TotalWithVAT.String())

		on := taxcalc.AggregateMonth(charges, testSettings(23.1, true), month)
		assert.Equal(t, "433", on.TotalWithVAT.String())
	})

	t.Run("empty month yields zero totals", func(t *testing.T) {
		got := taxcalc.AggregateMonth(nil, testSettings(23.1, true), month)
		assert.True(t, got.Revenue.IsZero())
		assert.True(t, got.TotalDue.IsZero())
	})
}

func TestAggregateYear(t *testing.T) {
	charges := []domain.Charge{
		revenueCharge("1", 1000, 200, domain.MonthKey("2025-01"), domain.ChargeStatusValidated),
		revenueCharge("2", 2000, 400, domain.MonthKey("2025-02"), domain.ChargeStatusPending),
		revenueCharge("3", 500, 0, domain.MonthKey("2025-02"), domain.ChargeStatusPaid),
		revenueCharge("4", 999, 0, domain.MonthKey("2024-12"), domain.ChargeStatusPending),
	}

	got := taxcalc.AggregateYear(charges, 2025)

	require.Equal(t, 2025, got.Year)
	assert.Equal(t, "3500", got.Revenue.String())
	assert.Equal(t, "600", got.VATTotal.String())
	assert.Equal(t, 2, got.Months)
}

func TestPendingRevenue(t *testing.T) {
	month := domain.MonthKey("2025-03")
	charges := []domain.Charge{
		revenueCharge("1", 100, 0, month, domain.ChargeStatusPending),
		revenueCharge("2", 200, 0, month, domain.ChargeStatusValidated),
	}

	pending := taxcalc.PendingRevenue(charges, month)
	require.Len(t, pending, 1)
	assert.Equal(t, "1", pending[0].ChargeID)
}
