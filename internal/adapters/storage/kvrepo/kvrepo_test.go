package kvrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kvrepo"
	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
)

// --- Test Suite ---
type KVRepoTestSuite struct {
	suite.Suite
	store *kv.MemoryStore
	repos *portsrepo.RepositoryProvider
}

func (suite *KVRepoTestSuite) SetupTest() {
	suite.store = kv.NewMemoryStore()
	suite.repos = kvrepo.NewRepositoryProvider(suite.store)
}

func (suite *KVRepoTestSuite) charge(id string, status domain.ChargeStatus) domain.Charge {
	return domain.Charge{
		ChargeID:         id,
		Type:             domain.ChargeTypeRevenue,
		Amount:           decimal.NewFromInt(100),
		GrossAmount:      decimal.NewFromInt(100),
		DeclarationMonth: "2025-03",
		Status:           status,
	}
}

// --- Charge repository ---

func (suite *KVRepoTestSuite) TestChargeRepository_SaveAndList() {
	ctx := context.Background()

	suite.Require().NoError(suite.repos.ChargeRepo.SaveCharge(ctx, suite.charge("c1", domain.ChargeStatusPending)))
	suite.Require().NoError(suite.repos.ChargeRepo.SaveCharge(ctx, suite.charge("c2", domain.ChargeStatusPending)))

	charges, err := suite.repos.ChargeRepo.ListCharges(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(charges, 2)
	suite.Equal("c1", charges[0].ChargeID)
	suite.Equal("c2", charges[1].ChargeID)
}

func (suite *KVRepoTestSuite) TestChargeRepository_UpdateMissing() {
	ctx := context.Background()

	err := suite.repos.ChargeRepo.UpdateCharge(ctx, suite.charge("ghost", domain.ChargeStatusPending))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *KVRepoTestSuite) TestChargeRepository_DeleteMissing() {
	ctx := context.Background()

	err := suite.repos.ChargeRepo.DeleteCharge(ctx, "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *KVRepoTestSuite) TestChargeRepository_DeletePendingKeepsSettled() {
	ctx := context.Background()

	suite.Require().NoError(suite.repos.ChargeRepo.SaveCharge(ctx, suite.charge("p1", domain.ChargeStatusPending)))
	suite.Require().NoError(suite.repos.ChargeRepo.SaveCharge(ctx, suite.charge("v1", domain.ChargeStatusValidated)))
	suite.Require().NoError(suite.repos.ChargeRepo.SaveCharge(ctx, suite.charge("d1", domain.ChargeStatusPaid)))

	suite.Require().NoError(suite.repos.ChargeRepo.DeletePendingCharges(ctx))

	charges, err := suite.repos.ChargeRepo.ListCharges(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(charges, 2)
	suite.Equal("v1", charges[0].ChargeID)
	suite.Equal("d1", charges[1].ChargeID)
}

func (suite *KVRepoTestSuite) TestChargeRepository_MarkChargesValidated() {
	ctx := context.Background()

	suite.Require().NoError(suite.repos.ChargeRepo.SaveCharge(ctx, suite.charge("c1", domain.ChargeStatusPending)))
	suite.Require().NoError(suite.repos.ChargeRepo.SaveCharge(ctx, suite.charge("c2", domain.ChargeStatusPending)))

	suite.Require().NoError(suite.repos.ChargeRepo.MarkChargesValidated(ctx, []string{"c1"}))

	charges, err := suite.repos.ChargeRepo.ListCharges(ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.ChargeStatusValidated, charges[0].Status)
	suite.Equal(domain.ChargeStatusPending, charges[1].Status)
}

func (suite *KVRepoTestSuite) TestChargeRepository_ClearLegacyCounters() {
	ctx := context.Background()
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	legacyKeys := []string{"@yearlyVAT_2025", "@validatedCA", "@currentMonthVAT"}
	for _, key := range legacyKeys {
		suite.Require().NoError(suite.store.Set(ctx, key, "123.45"))
	}

	suite.Require().NoError(suite.repos.ChargeRepo.ClearLegacyCounters(ctx, now))

	for _, key := range legacyKeys {
		_, found, err := suite.store.Get(ctx, key)
		suite.Require().NoError(err)
		suite.False(found, "key %s should be gone", key)
	}
}

func (suite *KVRepoTestSuite) TestChargeRepository_MalformedPayloadReadsEmpty() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Set(ctx, "charges", "{not json"))

	charges, err := suite.repos.ChargeRepo.ListCharges(ctx)

	suite.Require().NoError(err)
	suite.Empty(charges)
}

// --- Validation repository ---

func (suite *KVRepoTestSuite) TestValidationRepository_UpsertReplacesSameMonth() {
	ctx := context.Background()
	first := domain.ValidationEntry{Month: "2025-03", TotalAmount: decimal.NewFromInt(1000)}
	second := domain.ValidationEntry{Month: "2025-03", TotalAmount: decimal.NewFromInt(1500)}
	other := domain.ValidationEntry{Month: "2025-02", TotalAmount: decimal.NewFromInt(800)}

	suite.Require().NoError(suite.repos.ValidationRepo.UpsertValidationEntry(ctx, first))
	suite.Require().NoError(suite.repos.ValidationRepo.UpsertValidationEntry(ctx, other))
	suite.Require().NoError(suite.repos.ValidationRepo.UpsertValidationEntry(ctx, second))

	entries, err := suite.repos.ValidationRepo.ListValidationEntries(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)

	byMonth := make(map[domain.MonthKey]domain.ValidationEntry, len(entries))
	for _, e := range entries {
		byMonth[e.Month] = e
	}
	suite.True(byMonth["2025-03"].TotalAmount.Equal(decimal.NewFromInt(1500)))
	suite.True(byMonth["2025-02"].TotalAmount.Equal(decimal.NewFromInt(800)))
}

// --- VAT repository ---

func (suite *KVRepoTestSuite) TestVATRepository_AppendPrependsNewest() {
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		record := domain.VATRecord{RecordID: fmt.Sprintf("v%d", i)}
		suite.Require().NoError(suite.repos.VATRepo.AppendVATRecord(ctx, record))
	}

	records, err := suite.repos.VATRepo.ListVATRecords(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.Equal("v3", records[0].RecordID)
	suite.Equal("v1", records[2].RecordID)
}

func (suite *KVRepoTestSuite) TestVATRepository_HistoryCapDropsOldest() {
	ctx := context.Background()

	for i := 1; i <= domain.VATHistoryLimit+5; i++ {
		record := domain.VATRecord{RecordID: fmt.Sprintf("v%d", i)}
		suite.Require().NoError(suite.repos.VATRepo.AppendVATRecord(ctx, record))
	}

	records, err := suite.repos.VATRepo.ListVATRecords(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(records, domain.VATHistoryLimit)
	suite.Equal(fmt.Sprintf("v%d", domain.VATHistoryLimit+5), records[0].RecordID)
	suite.Equal("v6", records[len(records)-1].RecordID)
}

func (suite *KVRepoTestSuite) TestVATRepository_DeleteMissing() {
	ctx := context.Background()

	err := suite.repos.VATRepo.DeleteVATRecord(ctx, "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *KVRepoTestSuite) TestVATRepository_ClearHistory() {
	ctx := context.Background()
	suite.Require().NoError(suite.repos.VATRepo.AppendVATRecord(ctx, domain.VATRecord{RecordID: "v1"}))

	suite.Require().NoError(suite.repos.VATRepo.ClearVATHistory(ctx))

	records, err := suite.repos.VATRepo.ListVATRecords(ctx)
	suite.Require().NoError(err)
	suite.Empty(records)
}

// --- Settings repository ---

func (suite *KVRepoTestSuite) TestSettingsRepository_DefaultsWhenUnset() {
	ctx := context.Background()

	settings, err := suite.repos.SettingsRepo.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultSettings(), settings)
}

func (suite *KVRepoTestSuite) TestSettingsRepository_PartialPayloadMergesDefaults() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Set(ctx, "companySettings", `{"isVATEnabled":true}`))

	settings, err := suite.repos.SettingsRepo.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.True(settings.VATEnabled)
	suite.Equal(domain.RegimeBNC, settings.Regime)
	suite.True(settings.URSSAFRate.Equal(decimal.NewFromFloat(23.1)))
}

func (suite *KVRepoTestSuite) TestSettingsRepository_MalformedPayloadFallsBackToDefaults() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Set(ctx, "companySettings", "][oops"))

	settings, err := suite.repos.SettingsRepo.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultSettings(), settings)
}

func (suite *KVRepoTestSuite) TestSettingsRepository_SaveRoundTrip() {
	ctx := context.Background()
	saved := domain.Settings{
		Regime:        domain.RegimeBIC,
		VATEnabled:    true,
		LiberatoryTax: true,
		URSSAFRate:    decimal.RequireFromString("12.8"),
	}

	suite.Require().NoError(suite.repos.SettingsRepo.SaveSettings(ctx, saved))

	settings, err := suite.repos.SettingsRepo.GetSettings(ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.RegimeBIC, settings.Regime)
	suite.True(settings.VATEnabled)
	suite.True(settings.LiberatoryTax)
	suite.True(settings.URSSAFRate.Equal(saved.URSSAFRate))
}

// --- Company expense repository ---

func (suite *KVRepoTestSuite) TestCompanyExpenseRepository_DeleteByCategory() {
	ctx := context.Background()
	expenses := []domain.CompanyExpense{
		{ExpenseID: "e1", Category: domain.CategoryRent, Amount: decimal.NewFromInt(800)},
		{ExpenseID: "e2", Category: domain.CategorySupplies, Amount: decimal.NewFromInt(30)},
		{ExpenseID: "e3", Category: domain.CategoryRent, Amount: decimal.NewFromInt(800)},
	}
	for _, e := range expenses {
		suite.Require().NoError(suite.repos.CompanyExpenseRepo.SaveCompanyExpense(ctx, e))
	}

	suite.Require().NoError(suite.repos.CompanyExpenseRepo.DeleteCompanyExpensesByCategory(ctx, domain.CategoryRent))

	remaining, err := suite.repos.CompanyExpenseRepo.ListCompanyExpenses(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal("e2", remaining[0].ExpenseID)
}

func (suite *KVRepoTestSuite) TestCompanyExpenseRepository_UpdateMissing() {
	ctx := context.Background()

	err := suite.repos.CompanyExpenseRepo.UpdateCompanyExpense(ctx, domain.CompanyExpense{ExpenseID: "ghost"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Personal expense repository ---

func (suite *KVRepoTestSuite) TestExpenseRepository_SaveAndDelete() {
	ctx := context.Background()
	expense := domain.Expense{ExpenseID: "e1", Description: "Courses", Amount: decimal.NewFromInt(40)}

	suite.Require().NoError(suite.repos.ExpenseRepo.SaveExpense(ctx, expense))
	suite.Require().NoError(suite.repos.ExpenseRepo.DeleteExpense(ctx, "e1"))

	expenses, err := suite.repos.ExpenseRepo.ListExpenses(ctx)
	suite.Require().NoError(err)
	suite.Empty(expenses)

	err = suite.repos.ExpenseRepo.DeleteExpense(ctx, "e1")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestKVRepositories(t *testing.T) {
	suite.Run(t, new(KVRepoTestSuite))
}
