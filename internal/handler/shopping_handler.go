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

type ShoppingHandler struct {
	service service.ShoppingService
}

func NewShoppingHandler(service service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{service: service}
}

func (h *ShoppingHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:publicId/shopping-items", h.Create)
		router.GET("events/:publicId/shopping-items", h.List)
		router.PATCH("shopping-items/:id", h.Update)
		router.DELETE("shopping-items/:id", h.Delete)
	}
}

type CreateShoppingItemRequest struct {
	Name       string  `json:"name" binding:"required,max=120"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	Unit       string  `json:"unit" binding:"required,max=20"`
	CategoryID *int    `json:"categoryId"`
}

type UpdateShoppingItemRequest struct {
	Name       *string  `json:"name" binding:"omitempty,max=120"`
	Quantity   *float64 `json:"quantity" binding:"omitempty,gt=0"`
	Unit       *string  `json:"unit" binding:"omitempty,max=20"`
	CategoryID *int     `json:"categoryId"`
	Purchased  *bool    `json:"purchased"`
}

func (h *ShoppingHandler) Create(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	var req CreateShoppingItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	item := &model.ShoppingItem{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		CategoryID: req.CategoryID,
	}
	created, err := h.service.Create(c, publicID, item)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ShoppingHandler) List(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	items, err := h.service.ListByEventPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ShoppingHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdateShoppingItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.Quantity == nil && req.Unit == nil && req.CategoryID == nil && req.Purchased == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}
	params := model.UpdateShoppingItemParams{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		CategoryID: req.CategoryID,
		Purchased:  req.Purchased,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ShoppingHandler) Delete(c *gin.Context) {
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

func (h *ShoppingHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrShoppingItemNotFound:
		log.Warn("Shopping item not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Shopping item not found"})
	case err == apperrors.ErrCategoryNotFound:
		log.Warn("Category not found")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
