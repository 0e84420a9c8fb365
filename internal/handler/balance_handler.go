package handler

import (
	"net/http"

	"asada-api/internal/service"
	apperrors "asada-api/pkg/app_errors"
	"asada-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	service service.BalanceService
}

func NewBalanceHandler(service service.BalanceService) *BalanceHandler {
	return &BalanceHandler{service: service}
}

func (h *BalanceHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/:publicId/balances", h.Sheet)
	}
}

func (h *BalanceHandler) Sheet(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	sheet, err := h.service.SheetByEventPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "Sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *BalanceHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
