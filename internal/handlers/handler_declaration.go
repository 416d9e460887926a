package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
	"github.com/SoloCompta/solo_compta_app/internal/middleware"
)

// declarationHandler handles HTTP requests for the validation workflow.
type declarationHandler struct {
	declarationService portssvc.DeclarationSvcFacade
}

// newDeclarationHandler creates a new declarationHandler.
func newDeclarationHandler(ds portssvc.DeclarationSvcFacade) *declarationHandler {
	return &declarationHandler{
		declarationService: ds,
	}
}

// registerDeclarationRoutes registers routes related to declarations.
func registerDeclarationRoutes(rg *gin.RouterGroup, declarationService portssvc.DeclarationSvcFacade) {
	h := newDeclarationHandler(declarationService)

	declarations := rg.Group("/declarations")
	{
		declarations.GET("", h.listValidations)
		declarations.GET("/current", h.currentSummary)
		declarations.GET("/year/:year", h.yearlySummary)
		declarations.GET("/:month", h.monthlySummary)
		declarations.POST("/:month/validate", h.validateMonth)
	}
}

// listValidations godoc
// @Summary List validated months
// @Description Retrieves the validation history, newest month first
// @Tags declarations
// @Produce json
// @Success 200 {array} dto.ValidationEntryResponse
// @Failure 500 {object} map[string]string "Failed to list validations"
// @Router /declarations [get]
func (h *declarationHandler) listValidations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.declarationService.ValidationHistory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list validations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list validations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListValidationEntryResponse(entries))
}

// currentSummary godoc
// @Summary Current month summary
// @Description Computes the obligation figures for the current calendar month
// @Tags declarations
// @Produce json
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /declarations/current [get]
func (h *declarationHandler) currentSummary(c *gin.Context) {
	h.summarize(c, domain.CurrentMonth())
}

// monthlySummary godoc
// @Summary Monthly summary
// @Description Computes the obligation figures for a given month (YYYY-MM)
// @Tags declarations
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /declarations/{month} [get]
func (h *declarationHandler) monthlySummary(c *gin.Context) {
	month, err := domain.ParseMonthKey(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.summarize(c, month)
}

func (h *declarationHandler) summarize(c *gin.Context, month domain.MonthKey) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, pending, err := h.declarationService.MonthlySummary(c.Request.Context(), month)
	if err != nil {
		logger.Error("Failed to compute monthly summary", slog.String("month", string(month)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(totals, pending))
}

// validateMonth godoc
// @Summary Validate a month
// @Description Freezes the month's pending revenue into the validation history and marks the entries validated
// @Tags declarations
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.ValidationEntryResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 409 {object} map[string]string "No pending revenue for the month"
// @Failure 500 {object} map[string]string "Failed to validate month"
// @Router /declarations/{month}/validate [post]
func (h *declarationHandler) validateMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month, err := domain.ParseMonthKey(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.declarationService.ValidateMonth(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoPendingRevenue) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to validate month in service", slog.String("month", string(month)), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate month"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToValidationEntryResponse(entry))
}

// yearlySummary godoc
// @Summary Yearly summary
// @Description Recomputes a year's revenue and VAT figures from the ledger entries
// @Tags declarations
// @Produce json
// @Param year path int true "Calendar year"
// @Success 200 {object} dto.YearlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /declarations/year/{year} [get]
func (h *declarationHandler) yearlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	totals, err := h.declarationService.YearlySummary(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to compute yearly summary", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToYearlySummaryResponse(totals))
}
