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

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("categories", h.List)
		router.POST("categories", h.Create)
		router.PATCH("categories/:id", h.Update)
		router.DELETE("categories/:id", h.Delete)
		router.GET("categories/:id/suggestions", h.ListSuggestions)
		router.POST("categories/:id/suggestions", h.CreateSuggestion)
		router.DELETE("suggestions/:id", h.DeleteSuggestion)
	}
}

type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,max=80"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=80"`
	SortOrder *int    `json:"sortOrder"`
}

type CreateSuggestionRequest struct {
	Name string `json:"name" binding:"required,max=120"`
	Unit string `json:"unit" binding:"required,max=20"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.Category{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.SortOrder == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of name or sortOrder is required"})
		return
	}
	updated, err := h.service.Update(c, id, req.Name, req.SortOrder)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
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

func (h *CategoryHandler) ListSuggestions(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	items, err := h.service.ListSuggestions(c, id)
	if err != nil {
		h.handleError(c, err, "ListSuggestions")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CategoryHandler) CreateSuggestion(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req CreateSuggestionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.CreateSuggestion(c, &model.SuggestedItem{
		CategoryID: id,
		Name:       req.Name,
		Unit:       req.Unit,
	})
	if err != nil {
		h.handleError(c, err, "CreateSuggestion")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) DeleteSuggestion(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSuggestion(c, id); err != nil {
		h.handleError(c, err, "DeleteSuggestion")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrCategoryNotFound:
		log.Warn("Category not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
	case err == apperrors.ErrSuggestionNotFound:
		log.Warn("Suggested item not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggested item not found"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
