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

// chargeHandler handles HTTP requests related to the charge ledger.
type chargeHandler struct {
	chargeService portssvc.ChargeSvcFacade
}

// newChargeHandler creates a new chargeHandler.
func newChargeHandler(cs portssvc.ChargeSvcFacade) *chargeHandler {
	return &chargeHandler{
		chargeService: cs,
	}
}

// RegisterChargeRoutes registers routes related to charges. Exported so the
// handler tests can mount the same routes on a bare router.
func RegisterChargeRoutes(rg *gin.RouterGroup, chargeService portssvc.ChargeSvcFacade) {
	h := newChargeHandler(chargeService)

	charges := rg.Group("/charges")
	{
		charges.GET("", h.listCharges)
		charges.POST("", h.createCharge)
		charges.POST("/contributions", h.declareContribution)
		charges.POST("/reset", h.resetPending)
		charges.PUT("/:chargeID", h.updateCharge)
		charges.DELETE("/:chargeID", h.deleteCharge)
		charges.POST("/:chargeID/pay", h.markPaid)
	}
}

// listCharges godoc
// @Summary List all charges
// @Description Retrieves every revenue and contribution entry, sorted by due date
// @Tags charges
// @Produce json
// @Success 200 {array} dto.ChargeResponse
// @Failure 500 {object} map[string]string "Failed to list charges"
// @Router /charges [get]
func (h *chargeHandler) listCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	charges, err := h.chargeService.ListCharges(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list charges from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list charges"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListChargeResponse(charges))
}

// createCharge godoc
// @Summary Log a revenue entry
// @Description Records a tax-inclusive revenue amount, deriving its base and VAT portions
// @Tags charges
// @Accept json
// @Produce json
// @Param charge body dto.CreateChargeRequest true "Charge details"
// @Success 201 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create charge"
// @Router /charges [post]
func (h *chargeHandler) createCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	charge, err := h.chargeService.CreateCharge(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating charge", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create charge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create charge"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChargeResponse(charge))
}

// declareContribution godoc
// @Summary Declare a contribution charge
// @Description Creates a contribution entry from a month's pending revenue totals
// @Tags charges
// @Accept json
// @Produce json
// @Param contribution body dto.CreateContributionRequest true "Declaration month"
// @Success 201 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "No pending revenue for the month"
// @Failure 500 {object} map[string]string "Failed to declare contribution"
// @Router /charges/contributions [post]
func (h *chargeHandler) declareContribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DeclareContribution", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	month, err := domain.ParseMonthKey(req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	charge, err := h.chargeService.DeclareContribution(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoPendingRevenue) {
			logger.Warn("No pending revenue to declare against", slog.String("month", string(month)))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to declare contribution in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to declare contribution"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChargeResponse(charge))
}

// updateCharge godoc
// @Summary Update a charge
// @Description Applies the provided fields to an existing charge, re-deriving amounts when needed
// @Tags charges
// @Accept json
// @Produce json
// @Param chargeID path string true "Charge ID"
// @Param charge body dto.UpdateChargeRequest true "Fields to update"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 500 {object} map[string]string "Failed to update charge"
// @Router /charges/{chargeID} [put]
func (h *chargeHandler) updateCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	var req dto.UpdateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	charge, err := h.chargeService.UpdateCharge(c.Request.Context(), chargeID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Charge not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update charge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update charge"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// deleteCharge godoc
// @Summary Delete a charge
// @Description Removes a charge whatever its status; validation snapshots are unaffected
// @Tags charges
// @Produce json
// @Param chargeID path string true "Charge ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 500 {object} map[string]string "Failed to delete charge"
// @Router /charges/{chargeID} [delete]
func (h *chargeHandler) deleteCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	if err := h.chargeService.DeleteCharge(c.Request.Context(), chargeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Charge not found"})
		} else {
			logger.Error("Failed to delete charge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete charge"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// markPaid godoc
// @Summary Mark a contribution as paid
// @Description Flips a contribution charge to paid and stamps the payment date
// @Tags charges
// @Produce json
// @Param chargeID path string true "Charge ID"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} map[string]string "Charge is not a contribution"
// @Failure 404 {object} map[string]string "Charge not found"
// @Failure 500 {object} map[string]string "Failed to mark charge paid"
// @Router /charges/{chargeID}/pay [post]
func (h *chargeHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chargeID := c.Param("chargeID")

	charge, err := h.chargeService.MarkContributionPaid(c.Request.Context(), chargeID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Charge not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to mark charge paid in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark charge paid"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChargeResponse(charge))
}

// resetPending godoc
// @Summary Reset pending charges
// @Description Removes every pending charge and the legacy counter keys, keeping validated and paid entries
// @Tags charges
// @Produce json
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to reset charges"
// @Router /charges/reset [post]
func (h *chargeHandler) resetPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.chargeService.ResetPending(c.Request.Context()); err != nil {
		logger.Error("Failed to reset pending charges in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset charges"})
		return
	}

	c.Status(http.StatusNoContent)
}
