package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SoloCompta/solo_compta_app/internal/apperrors"
	portssvc "github.com/SoloCompta/solo_compta_app/internal/core/ports/services"
	"github.com/SoloCompta/solo_compta_app/internal/dto"
	"github.com/SoloCompta/solo_compta_app/internal/middleware"
)

// vatHandler handles HTTP requests for the standalone VAT calculator.
type vatHandler struct {
	vatService portssvc.VATSvcFacade
}

// newVATHandler creates a new vatHandler.
func newVATHandler(vs portssvc.VATSvcFacade) *vatHandler {
	return &vatHandler{
		vatService: vs,
	}
}

// registerVATRoutes registers routes related to the VAT calculator.
func registerVATRoutes(rg *gin.RouterGroup, vatService portssvc.VATSvcFacade) {
	h := newVATHandler(vatService)

	vat := rg.Group("/vat")
	{
		vat.POST("/calculations", h.saveCalculation)
		vat.GET("/calculations", h.listCalculations)
		vat.DELETE("/calculations/:recordID", h.deleteCalculation)
	}
}

// saveCalculation godoc
// @Summary Save a VAT calculation
// @Description Computes VAT on a pre-tax amount and stores the result in the history
// @Tags vat
// @Accept json
// @Produce json
// @Param calculation body dto.CreateVATCalculationRequest true "Calculation inputs"
// @Success 201 {object} dto.VATRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save calculation"
// @Router /vat/calculations [post]
func (h *vatHandler) saveCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVATCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveCalculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.vatService.SaveCalculation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save VAT calculation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save calculation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToVATRecordResponse(record))
}

// listCalculations godoc
// @Summary List VAT calculations
// @Description Retrieves the stored VAT calculations, newest first
// @Tags vat
// @Produce json
// @Success 200 {array} dto.VATRecordResponse
// @Failure 500 {object} map[string]string "Failed to list calculations"
// @Router /vat/calculations [get]
func (h *vatHandler) listCalculations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.vatService.History(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list VAT history from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list calculations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListVATRecordResponse(records))
}

// deleteCalculation godoc
// @Summary Delete a VAT calculation
// @Description Removes a stored calculation from the history
// @Tags vat
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to delete calculation"
// @Router /vat/calculations/{recordID} [delete]
func (h *vatHandler) deleteCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")

	if err := h.vatService.DeleteRecord(c.Request.Context(), recordID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to delete VAT record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete calculation"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
