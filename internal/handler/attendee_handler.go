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

type AttendeeHandler struct {
	service service.AttendeeService
}

func NewAttendeeHandler(service service.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{service: service}
}

func (h *AttendeeHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:publicId/attendees", h.Create)
		router.GET("events/:publicId/attendees", h.List)
		router.PATCH("attendees/:id", h.Update)
		router.DELETE("attendees/:id", h.Delete)
	}
}

type CreateAttendeeRequest struct {
	Name             string `json:"name" binding:"required,max=80"`
	ExcludeFromSplit bool   `json:"excludeFromSplit"`
}

type UpdateAttendeeRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=80"`
	ExcludeFromSplit *bool   `json:"excludeFromSplit"`
}

func (h *AttendeeHandler) Create(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	var req CreateAttendeeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	attendee := &model.Attendee{
		Name:             req.Name,
		ExcludeFromSplit: req.ExcludeFromSplit,
	}
	created, err := h.service.Create(c, publicID, attendee)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AttendeeHandler) List(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	attendees, err := h.service.ListByEventPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, attendees)
}

func (h *AttendeeHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdateAttendeeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.ExcludeFromSplit == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of name or excludeFromSplit is required"})
		return
	}
	params := model.UpdateAttendeeParams{
		Name:             req.Name,
		ExcludeFromSplit: req.ExcludeFromSplit,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AttendeeHandler) Delete(c *gin.Context) {
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

func (h *AttendeeHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrAttendeeNotFound:
		log.Warn("Attendee not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
