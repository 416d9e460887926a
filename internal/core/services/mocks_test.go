package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portsrepo "github.com/SoloCompta/solo_compta_app/internal/core/ports/repositories"
)

// --- Mock ChargeRepository ---
type MockChargeRepository struct {
	mock.Mock
}

func (m *MockChargeRepository) ListCharges(ctx context.Context) ([]domain.Charge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Charge), args.Error(1)
}

func (m *MockChargeRepository) SaveCharge(ctx context.Context, charge domain.Charge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockChargeRepository) UpdateCharge(ctx context.Context, charge domain.Charge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockChargeRepository) DeleteCharge(ctx context.Context, chargeID string) error {
	args := m.Called(ctx, chargeID)
	return args.Error(0)
}

func (m *MockChargeRepository) MarkChargesValidated(ctx context.Context, chargeIDs []string) error {
	args := m.Called(ctx, chargeIDs)
	return args.Error(0)
}

func (m *MockChargeRepository) DeletePendingCharges(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockChargeRepository) ClearLegacyCounters(ctx context.Context, now time.Time) error {
	args := m.Called(ctx, now)
	return args.Error(0)
}

var _ portsrepo.ChargeRepositoryFacade = (*MockChargeRepository)(nil)

// --- Mock ValidationRepository ---
type MockValidationRepository struct {
	mock.Mock
}

func (m *MockValidationRepository) ListValidationEntries(ctx context.Context) ([]domain.ValidationEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationEntry), args.Error(1)
}

func (m *MockValidationRepository) UpsertValidationEntry(ctx context.Context, entry domain.ValidationEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var _ portsrepo.ValidationRepositoryFacade = (*MockValidationRepository)(nil)

// --- Mock VATRepository ---
type MockVATRepository struct {
	mock.Mock
}

func (m *MockVATRepository) ListVATRecords(ctx context.Context) ([]domain.VATRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VATRecord), args.Error(1)
}

func (m *MockVATRepository) AppendVATRecord(ctx context.Context, record domain.VATRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVATRepository) DeleteVATRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func (m *MockVATRepository) ClearVATHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portsrepo.VATRepositoryFacade = (*MockVATRepository)(nil)

// --- Mock CompanyExpenseRepository ---
type MockCompanyExpenseRepository struct {
	mock.Mock
}

func (m *MockCompanyExpenseRepository) ListCompanyExpenses(ctx context.Context) ([]domain.CompanyExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyExpense), args.Error(1)
}

func (m *MockCompanyExpenseRepository) SaveCompanyExpense(ctx context.Context, expense domain.CompanyExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockCompanyExpenseRepository) UpdateCompanyExpense(ctx context.Context, expense domain.CompanyExpense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockCompanyExpenseRepository) DeleteCompanyExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockCompanyExpenseRepository) DeleteCompanyExpensesByCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

var _ portsrepo.CompanyExpenseRepositoryFacade = (*MockCompanyExpenseRepository)(nil)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)
