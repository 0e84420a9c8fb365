package handler

import (
	"encoding/json"
	"net/http"

	"asada-api/internal/model"
	"asada-api/internal/service"
	apperrors "asada-api/pkg/app_errors"
	"asada-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	service  service.ExpenseService
	maxBytes int64
}

func NewExpenseHandler(service service.ExpenseService, maxUploadBytes int64) *ExpenseHandler {
	return &ExpenseHandler{service: service, maxBytes: maxUploadBytes}
}

func (h *ExpenseHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:publicId/expenses", h.Create)
		router.GET("events/:publicId/expenses", h.List)
		router.PATCH("expenses/:id", h.Update)
		router.DELETE("expenses/:id", h.Delete)
		router.POST("expenses/:id/receipts", h.AddReceipt)
		router.DELETE("receipts/:id", h.DeleteReceipt)
	}
}

type CreateExpenseRequest struct {
	Description         string `json:"description" binding:"required,max=200"`
	AmountCents         int64  `json:"amountCents" binding:"required,gt=0"`
	PayerID             *int   `json:"payerId"`
	ExcludedAttendeeIDs []int  `json:"excludedAttendeeIds"`
}

// UpdateExpenseRequest distinguishes an absent payerId from an
// explicit null, which clears the attribution.
type UpdateExpenseRequest struct {
	Description         *string         `json:"description" binding:"omitempty,max=200"`
	AmountCents         *int64          `json:"amountCents" binding:"omitempty,gt=0"`
	PayerID             json.RawMessage `json:"payerId"`
	ExcludedAttendeeIDs *[]int          `json:"excludedAttendeeIds"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	var req CreateExpenseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, publicID, service.CreateExpenseInput{
		Description:         req.Description,
		AmountCents:         req.AmountCents,
		PayerID:             req.PayerID,
		ExcludedAttendeeIDs: req.ExcludedAttendeeIDs,
	})
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	publicID, ok := EventPublicID(c)
	if !ok {
		return
	}
	expenses, err := h.service.ListByEventPublicID(c, publicID)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdateExpenseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	input := service.UpdateExpenseInput{
		Params: model.UpdateExpenseParams{
			Description: req.Description,
			AmountCents: req.AmountCents,
		},
	}

	if len(req.PayerID) > 0 {
		var payerID *int
		if err := json.Unmarshal(req.PayerID, &payerID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payerId must be a number or null"})
			return
		}
		if payerID == nil {
			input.Params.ClearPayer = true
		} else {
			input.Params.PayerID = payerID
		}
	}

	if req.ExcludedAttendeeIDs != nil {
		input.ReplaceExclusions = true
		input.ExcludedAttendeeIDs = *req.ExcludedAttendeeIDs
	}

	updated, err := h.service.Update(c, id, input)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
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

func (h *ExpenseHandler) AddReceipt(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > h.maxBytes {
		h.handleError(c, apperrors.ErrFileTooLarge, "AddReceipt")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err, "AddReceipt")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	receipt, err := h.service.AddReceipt(c, id, file, contentType, fileHeader.Size)
	if err != nil {
		h.handleError(c, err, "AddReceipt")
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

func (h *ExpenseHandler) DeleteReceipt(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteReceipt(c, id); err != nil {
		h.handleError(c, err, "DeleteReceipt")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrExpenseNotFound:
		log.Warn("Expense not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
	case err == apperrors.ErrReceiptNotFound:
		log.Warn("Receipt not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
	case err == apperrors.ErrAttendeeNotFound:
		log.Warn("Attendee not found")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attendee does not belong to this event"})
	case err == apperrors.ErrUnsupportedFileType:
		log.Warn("Unsupported file type")
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only JPEG, PNG, WebP and HEIC images are allowed"})
	case err == apperrors.ErrFileTooLarge:
		log.Warn("File too large")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the 5 MB limit"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
