package handler

import (
	"net/http"

	"asada-api/internal/model"
	"asada-api/internal/service"
	apperrors "asada-api/pkg/app_errors"
	"asada-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.PUT("events/:publicId/payments", h.Upsert)
		router.GET("events/:publicId/payments", h.List)
		router.PATCH("payments/:id/status", h.UpdateStatus)
		router.DELETE("payments/:id", h.Delete)
	}
}

type UpsertPaymentRequest struct {
	FromAttendeeID int    `json:"fromAttendeeId" binding:"required"`
	ToAttendeeID   int    `json:"toAttendeeId" binding:"required"`
	AmountCents    int64  `json:"amountCents" binding:"required,gt=0"`
	Status         string `json:"status" binding:"omitempty,oneof=pending confirmed"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed"`
}

func (h *PaymentHandler) Upsert(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	var req UpsertPaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.FromAttendeeID == req.ToAttendeeID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromAttendeeId and toAttendeeId must differ"})
		return
	}
	payment := &model.Payment{
		FromAttendeeID: req.FromAttendeeID,
		ToAttendeeID:   req.ToAttendeeID,
		AmountCents:    req.AmountCents,
		Status:         model.PaymentStatus(req.Status),
	}
	saved, err := h.service.Upsert(c, publicID, payment)
	if err != nil {
		h.handleError(c, err, "Upsert")
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *PaymentHandler) List(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	payments, err := h.service.ListByEventPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdatePaymentStatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.UpdateStatus(c, id, model.PaymentStatus(req.Status))
	if err != nil {
		h.handleError(c, err, "UpdateStatus")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrPaymentNotFound:
		log.Warn("Payment not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
	case err == apperrors.ErrAttendeeNotFound:
		log.Warn("Attendee not found")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attendee does not belong to this event"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
