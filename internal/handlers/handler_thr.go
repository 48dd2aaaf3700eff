package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerjapay/payroll_backend/internal/apperrors"
	portssvc "github.com/kerjapay/payroll_backend/internal/core/ports/services"
	"github.com/kerjapay/payroll_backend/internal/dto"
	"github.com/kerjapay/payroll_backend/internal/middleware"
	"github.com/kerjapay/payroll_backend/internal/platform/config"
)

// thrHandler handles HTTP requests for THR calculation and creation.
type thrHandler struct {
	thrService        portssvc.ThrSvcFacade
	workingDaysInYear int
}

func newThrHandler(thrService portssvc.ThrSvcFacade, cfg *config.Config) *thrHandler {
	return &thrHandler{
		thrService:        thrService,
		workingDaysInYear: cfg.DefaultWorkingDaysInYear,
	}
}

// previewThr calculates THR for one employee without persisting anything.
func (h *thrHandler) previewThr(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.ThrCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for previewThr", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	req.ApplyDefaults(h.workingDaysInYear)

	preview, err := h.thrService.PreviewThr(c.Request.Context(), req)
	if err != nil {
		respondThrError(c, logger, err, "Failed to preview THR")
		return
	}

	c.JSON(http.StatusOK, preview)
}

// createThr calculates THR and persists it as a payroll addition, at most
// once per (employee, period).
func (h *thrHandler) createThr(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.ThrCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createThr", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	req.ApplyDefaults(h.workingDaysInYear)

	creatorUserID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.thrService.CalculateAndCreateThr(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondThrError(c, logger, err, "Failed to create THR addition")
		return
	}

	logger.Info("THR addition created",
		slog.String("addition_id", created.Addition.AdditionID),
		slog.String("employee_id", created.Addition.EmployeeID),
		slog.String("period_id", created.Addition.PeriodID),
	)
	c.JSON(http.StatusCreated, created)
}

// previewThrBulk calculates THR for every eligible employee of a company for
// one period, without persisting anything.
func (h *thrHandler) previewThrBulk(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.BulkThrPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for previewThrBulk", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.WorkingDaysInYear == 0 {
		req.WorkingDaysInYear = h.workingDaysInYear
	}

	preview, err := h.thrService.PreviewThrForCompany(c.Request.Context(), req)
	if err != nil {
		respondThrError(c, logger, err, "Failed to preview THR for company")
		return
	}

	c.JSON(http.StatusOK, preview)
}

// respondThrError maps service errors onto HTTP statuses, preserving the
// distinct error kinds (not-found, conflict, validation).
func respondThrError(c *gin.Context, logger *slog.Logger, err error, logMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(logMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
	}
}

// RegisterThrRoutes registers the THR calculation and creation routes.
func RegisterThrRoutes(rg *gin.RouterGroup, thrService portssvc.ThrSvcFacade, cfg *config.Config) {
	h := newThrHandler(thrService, cfg)

	thr := rg.Group("/thr")
	{
		thr.POST("/preview", h.previewThr)
		thr.POST("/preview/bulk", h.previewThrBulk)
		thr.POST("", h.createThr)
	}
}
