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

type BankInfoHandler struct {
	service service.BankInfoService
}

func NewBankInfoHandler(service service.BankInfoService) *BankInfoHandler {
	return &BankInfoHandler{service: service}
}

func (h *BankInfoHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.PUT("attendees/:id/bank-info", h.Upsert)
		router.GET("attendees/:id/bank-info", h.Get)
		router.DELETE("attendees/:id/bank-info", h.Delete)
	}
}

type UpsertBankInfoRequest struct {
	HolderName    string  `json:"holderName" binding:"required,max=120"`
	BankName      string  `json:"bankName" binding:"required,max=80"`
	CLABE         string  `json:"clabe" binding:"required,len=18,numeric"`
	AccountNumber *string `json:"accountNumber" binding:"omitempty,max=30"`
}

func (h *BankInfoHandler) Upsert(c *gin.Context) {
	attendeeID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpsertBankInfoRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	info := &model.BankInfo{
		AttendeeID:    attendeeID,
		HolderName:    req.HolderName,
		BankName:      req.BankName,
		CLABE:         req.CLABE,
		AccountNumber: req.AccountNumber,
	}
	saved, err := h.service.Upsert(c, info)
	if err != nil {
		h.handleError(c, err, "Upsert")
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *BankInfoHandler) Get(c *gin.Context) {
	attendeeID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	info, err := h.service.GetByAttendeeID(c, attendeeID)
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *BankInfoHandler) Delete(c *gin.Context) {
	attendeeID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteByAttendeeID(c, attendeeID); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BankInfoHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrAttendeeNotFound:
		log.Warn("Attendee not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
	case err == apperrors.ErrBankInfoNotFound:
		log.Warn("Bank info not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank info not found"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
