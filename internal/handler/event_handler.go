package handler

import (
	"net/http"
	"time"

	"asada-api/internal/model"
	"asada-api/internal/service"
	apperrors "asada-api/pkg/app_errors"
	"asada-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events", h.Create)
		router.GET("events/:publicId", h.GetByPublicID)
		router.PATCH("events/:publicId", h.UpdateByPublicID)
		router.POST("events/:publicId/cancel", h.CancelByPublicID)
		router.DELETE("events/:publicId", h.DeleteByPublicID)
		router.GET("events/:publicId/summary", h.SummaryByPublicID)
	}
}

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required,max=120"`
	StartsAt    string  `json:"startsAt" binding:"required"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	MapsURL     *string `json:"mapsUrl" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=120"`
	StartsAt    *string `json:"startsAt"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	MapsURL     *string `json:"mapsUrl" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startsAt must be an RFC 3339 timestamp"})
		return
	}
	// Future-date rule applies to creation only; edits may move an
	// event into the past.
	if !startsAt.After(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startsAt must be in the future"})
		return
	}

	event := &model.Event{
		Title:       req.Title,
		StartsAt:    startsAt,
		Location:    req.Location,
		MapsURL:     req.MapsURL,
		Description: req.Description,
	}
	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) GetByPublicID(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "GetByPublicID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) UpdateByPublicID(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Title == nil && req.StartsAt == nil && req.Location == nil && req.MapsURL == nil && req.Description == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	params := model.UpdateEventParams{
		Title:       req.Title,
		Location:    req.Location,
		MapsURL:     req.MapsURL,
		Description: req.Description,
	}
	if req.StartsAt != nil {
		startsAt, err := time.Parse(time.RFC3339, *req.StartsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startsAt must be an RFC 3339 timestamp"})
			return
		}
		params.StartsAt = &startsAt
	}

	updated, err := h.service.UpdateByPublicID(c, publicID, params)
	if err != nil {
		h.handleError(c, err, "UpdateByPublicID")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) CancelByPublicID(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	cancelled, err := h.service.CancelByPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "CancelByPublicID")
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

func (h *EventHandler) DeleteByPublicID(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteByPublicID(c, publicID); err != nil {
		h.handleError(c, err, "DeleteByPublicID")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) SummaryByPublicID(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	summary, err := h.service.SummaryByPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "SummaryByPublicID")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
