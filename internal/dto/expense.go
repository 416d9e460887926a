package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// CreateCompanyExpenseRequest defines the data needed to record a company expense.
type CreateCompanyExpenseRequest struct {
	Category    string          `json:"category" binding:"required,expensecategory"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date"`
}

// UpdateCompanyExpenseRequest defines the updatable fields of a company
// expense. Nil fields are left untouched.
type UpdateCompanyExpenseRequest struct {
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

// CompanyExpenseResponse defines the data returned for a company expense.
type CompanyExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// ToCompanyExpenseResponse converts a domain.CompanyExpense to a
// CompanyExpenseResponse DTO
func ToCompanyExpenseResponse(e *domain.CompanyExpense) CompanyExpenseResponse {
	return CompanyExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
	}
}

// ToListCompanyExpenseResponse converts a slice of domain.CompanyExpense to
// CompanyExpenseResponse DTOs
func ToListCompanyExpenseResponse(expenses []domain.CompanyExpense) []CompanyExpenseResponse {
	res := make([]CompanyExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToCompanyExpenseResponse(&e)
	}
	return res
}

// CompanyExpenseSummaryResponse totals company expenses per category.
type CompanyExpenseSummaryResponse struct {
	Total      decimal.Decimal            `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
}

// ToCompanyExpenseSummaryResponse converts a domain.CompanyExpenseSummary to
// a CompanyExpenseSummaryResponse DTO
func ToCompanyExpenseSummaryResponse(s *domain.CompanyExpenseSummary) CompanyExpenseSummaryResponse {
	byCategory := make(map[string]decimal.Decimal, len(s.ByCategory))
	for category, total := range s.ByCategory {
		byCategory[string(category)] = total
	}
	return CompanyExpenseSummaryResponse{
		Total:      s.Total,
		ByCategory: byCategory,
	}
}

// CreateExpenseRequest defines the data needed to record a personal expense.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date"`
}

// ExpenseResponse defines the data returned for a personal expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
	}
}

// ExpensesResponse lists personal expenses with their running total.
type ExpensesResponse struct {
	Total    decimal.Decimal   `json:"total"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpensesResponse converts a slice of domain.Expense to an
// ExpensesResponse DTO, summing the total.
func ToExpensesResponse(expenses []domain.Expense) ExpensesResponse {
	res := ExpensesResponse{
		Total:    decimal.Zero,
		Expenses: make([]ExpenseResponse, len(expenses)),
	}
	for i, e := range expenses {
		res.Expenses[i] = ToExpenseResponse(&e)
		res.Total = res.Total.Add(e.Amount)
	}
	return res
}
