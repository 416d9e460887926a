package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
	"github.com/SoloCompta/solo_compta_app/internal/middleware"
)

// companyExpenseHandler handles HTTP requests for company expenses.
type companyExpenseHandler struct {
	expenseService portssvc.CompanyExpenseSvcFacade
}

// newCompanyExpenseHandler creates a new companyExpenseHandler.
func newCompanyExpenseHandler(es portssvc.CompanyExpenseSvcFacade) *companyExpenseHandler {
	return &companyExpenseHandler{
		expenseService: es,
	}
}

// registerCompanyExpenseRoutes registers routes related to company expenses.
func registerCompanyExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.CompanyExpenseSvcFacade) {
	h := newCompanyExpenseHandler(expenseService)

	expenses := rg.Group("/company-expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.GET("/summary", h.summary)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
		expenses.DELETE("/category/:category", h.deleteCategory)
	}
}

// listExpenses godoc
// @Summary List company expenses
// @Description Retrieves every recorded company expense
// @Tags company-expenses
// @Produce json
// @Success 200 {array} dto.CompanyExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /company-expenses [get]
func (h *companyExpenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenses, err := h.expenseService.ListCompanyExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list company expenses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompanyExpenseResponse(expenses))
}

// createExpense godoc
// @Summary Record a company expense
// @Description Stores a categorized business expense
// @Tags company-expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateCompanyExpenseRequest true "Expense details"
// @Success 201 {object} dto.CompanyExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create expense"
// @Router /company-expenses [post]
func (h *companyExpenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompanyExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateCompanyExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create company expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyExpenseResponse(expense))
}

// summary godoc
// @Summary Company expense summary
// @Description Totals company expenses per category, zero-filled for empty categories
// @Tags company-expenses
// @Produce json
// @Success 200 {object} dto.CompanyExpenseSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /company-expenses/summary [get]
func (h *companyExpenseHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.expenseService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute expense summary in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyExpenseSummaryResponse(summary))
}

// updateExpense godoc
// @Summary Update a company expense
// @Description Applies the provided fields to an existing expense
// @Tags company-expenses
// @Accept json
// @Produce json
// @Param expenseID path string true "Expense ID"
// @Param expense body dto.UpdateCompanyExpenseRequest true "Fields to update"
// @Success 200 {object} dto.CompanyExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to update expense"
// @Router /company-expenses/{expenseID} [put]
func (h *companyExpenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	var req dto.UpdateCompanyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompanyExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateCompanyExpense(c.Request.Context(), expenseID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update company expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete a company expense
// @Description Removes a company expense by ID
// @Tags company-expenses
// @Produce json
// @Param expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Router /company-expenses/{expenseID} [delete]
func (h *companyExpenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	if err := h.expenseService.DeleteCompanyExpense(c.Request.Context(), expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		} else {
			logger.Error("Failed to delete company expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteCategory godoc
// @Summary Delete a company expense category
// @Description Removes every expense in the category; an empty category is a no-op
// @Tags company-expenses
// @Produce json
// @Param category path string true "Expense category"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Router /company-expenses/category/{category} [delete]
func (h *companyExpenseHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category := domain.ExpenseCategory(c.Param("category"))

	if err := h.expenseService.DeleteByCategory(c.Request.Context(), category); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete expense category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
