package apperrors

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrAttendeeNotFound     = errors.New("attendee not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrReceiptNotFound      = errors.New("receipt not found")
	ErrShoppingItemNotFound = errors.New("shopping item not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrSuggestionNotFound   = errors.New("suggested item not found")
	ErrBankInfoNotFound     = errors.New("bank info not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPublicIDTaken        = errors.New("public id already taken")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrInternalServerError  = errors.New("internal server error")
)
