package services

import (
	"context"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
)

// CompanyExpenseReaderSvc defines read operations for company expenses
type CompanyExpenseReaderSvc interface {
	// ListCompanyExpenses retrieves all company expenses.
	ListCompanyExpenses(ctx context.Context) ([]domain.CompanyExpense, error)

	// Summary totals the expenses per category, zero-filled.
	Summary(ctx context.Context) (*domain.CompanyExpenseSummary, error)
}

// CompanyExpenseWriterSvc defines write operations for company expenses
type CompanyExpenseWriterSvc interface {
	// CreateCompanyExpense records a new company expense.
	CreateCompanyExpense(ctx context.Context, req dto.CreateCompanyExpenseRequest) (*domain.CompanyExpense, error)

	// UpdateCompanyExpense applies the non-nil request fields to an expense.
	UpdateCompanyExpense(ctx context.Context, expenseID string, req dto.UpdateCompanyExpenseRequest) (*domain.CompanyExpense, error)

	// DeleteCompanyExpense removes an expense by ID.
	DeleteCompanyExpense(ctx context.Context, expenseID string) error

	// DeleteByCategory removes every expense in a category.
	DeleteByCategory(ctx context.Context, category domain.ExpenseCategory) error
}

// CompanyExpenseSvcFacade combines all company expense service interfaces
type CompanyExpenseSvcFacade interface {
	CompanyExpenseReaderSvc
	CompanyExpenseWriterSvc
}

// ExpenseReaderSvc defines read operations for personal expenses
type ExpenseReaderSvc interface {
	// ListExpenses retrieves all personal expenses.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for personal expenses
type ExpenseWriterSvc interface {
	// CreateExpense records a new personal expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all personal expense service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
