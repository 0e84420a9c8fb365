package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"asada-api/internal/handler"
	"asada-api/internal/model"
	"asada-api/internal/service"
	"asada-api/internal/service/mocks"
	apperrors "asada-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxUploadBytes = 5 << 20

func newExpenseRouter(maxBytes int64) (*gin.Engine, *mocks.ExpenseServiceMock) {
	svc := new(mocks.ExpenseServiceMock)
	r := gin.New()
	handler.NewExpenseHandler(svc, maxBytes).RegisterRoutes(r)
	return r, svc
}

func TestExpenseHandler_Create(t *testing.T) {
	t.Run("Success - returns 201 with the created expense", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)
		payerID := 1

		svc.On("Create", mock.Anything, "aB3xY9Zk01", mock.MatchedBy(func(in service.CreateExpenseInput) bool {
			return in.Description == "Carne" && in.AmountCents == 30000 &&
				in.PayerID != nil && *in.PayerID == 1 && len(in.ExcludedAttendeeIDs) == 1
		})).Return(&model.Expense{ID: 1, PayerID: &payerID, Description: "Carne", AmountCents: 30000,
			ReceiptURLs: []string{}, ExcludedAttendeeIDs: []int{3}}, nil).Once()

		w := performRequest(r, http.MethodPost, "/api/v1/events/aB3xY9Zk01/expenses", gin.H{
			"description":         "Carne",
			"amountCents":         30000,
			"payerId":             1,
			"excludedAttendeeIds": []int{3},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := responseBody(t, w)
		assert.Equal(t, float64(30000), body["amountCents"])
		svc.AssertExpectations(t)
	})

	t.Run("Failure - zero amount fails validation", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		w := performRequest(r, http.MethodPost, "/api/v1/events/aB3xY9Zk01/expenses", gin.H{
			"description": "Carne",
			"amountCents": 0,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("Failure - payer outside the event maps to 400", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		svc.On("Create", mock.Anything, "aB3xY9Zk01", mock.AnythingOfType("service.CreateExpenseInput")).
			Return(nil, apperrors.ErrAttendeeNotFound).Once()

		w := performRequest(r, http.MethodPost, "/api/v1/events/aB3xY9Zk01/expenses", gin.H{
			"description": "Carne",
			"amountCents": 30000,
			"payerId":     99,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Attendee does not belong to this event", responseBody(t, w)["error"])
	})
}

func TestExpenseHandler_Update(t *testing.T) {
	t.Run("Success - explicit null payerId clears the attribution", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		svc.On("Update", mock.Anything, 1, mock.MatchedBy(func(in service.UpdateExpenseInput) bool {
			return in.Params.ClearPayer && in.Params.PayerID == nil && !in.ReplaceExclusions
		})).Return(&model.Expense{ID: 1, Description: "Carne", AmountCents: 30000}, nil).Once()

		w := performRequest(r, http.MethodPatch, "/api/v1/expenses/1", map[string]interface{}{
			"payerId": nil,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Success - absent payerId leaves the attribution alone", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)
		newAmount := int64(45000)

		svc.On("Update", mock.Anything, 1, mock.MatchedBy(func(in service.UpdateExpenseInput) bool {
			return !in.Params.ClearPayer && in.Params.PayerID == nil &&
				in.Params.AmountCents != nil && *in.Params.AmountCents == newAmount
		})).Return(&model.Expense{ID: 1, Description: "Carne", AmountCents: newAmount}, nil).Once()

		w := performRequest(r, http.MethodPatch, "/api/v1/expenses/1", gin.H{
			"amountCents": newAmount,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Success - excludedAttendeeIds replaces the exclusion set", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		svc.On("Update", mock.Anything, 1, mock.MatchedBy(func(in service.UpdateExpenseInput) bool {
			return in.ReplaceExclusions && len(in.ExcludedAttendeeIDs) == 0
		})).Return(&model.Expense{ID: 1, Description: "Carne", AmountCents: 30000}, nil).Once()

		w := performRequest(r, http.MethodPatch, "/api/v1/expenses/1", gin.H{
			"excludedAttendeeIds": []int{},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Failure - unknown expense maps to 404", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		svc.On("Update", mock.Anything, 1, mock.AnythingOfType("service.UpdateExpenseInput")).
			Return(nil, apperrors.ErrExpenseNotFound).Once()

		w := performRequest(r, http.MethodPatch, "/api/v1/expenses/1", gin.H{
			"description": "Carbón",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExpenseHandler_Delete(t *testing.T) {
	t.Run("Success - returns 204", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		svc.On("Delete", mock.Anything, 1).Return(nil).Once()

		w := performRequest(r, http.MethodDelete, "/api/v1/expenses/1", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestExpenseHandler_AddReceipt(t *testing.T) {
	t.Run("Success - uploads a receipt image", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)
		content := []byte("jpeg bytes")
		body, contentType := multipartUpload(t, "file", "ticket.jpg", "image/jpeg", content)

		svc.On("AddReceipt", mock.Anything, 1, mock.Anything, "image/jpeg", int64(len(content))).
			Return(&model.Receipt{ID: 11, ExpenseID: 1, URL: "/uploads/a.jpg"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/1/receipts", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/uploads/a.jpg", responseBody(t, w)["url"])
		svc.AssertExpectations(t)
	})

	t.Run("Failure - missing file part is rejected", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)
		body, contentType := multipartUpload(t, "other", "ticket.jpg", "image/jpeg", []byte("jpeg bytes"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/1/receipts", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "file is required", responseBody(t, w)["error"])
		svc.AssertNotCalled(t, "AddReceipt")
	})

	t.Run("Failure - oversized upload maps to 413 before the service", func(t *testing.T) {
		r, svc := newExpenseRouter(8)
		body, contentType := multipartUpload(t, "file", "ticket.jpg", "image/jpeg", []byte("way more than eight bytes"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/1/receipts", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		svc.AssertNotCalled(t, "AddReceipt")
	})

	t.Run("Failure - unsupported type maps to 415", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)
		content := []byte("%PDF-1.4")
		body, contentType := multipartUpload(t, "file", "ticket.pdf", "application/pdf", content)

		svc.On("AddReceipt", mock.Anything, 1, mock.Anything, "application/pdf", int64(len(content))).
			Return(nil, apperrors.ErrUnsupportedFileType).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/1/receipts", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestExpenseHandler_DeleteReceipt(t *testing.T) {
	t.Run("Success - returns 204", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		svc.On("DeleteReceipt", mock.Anything, 11).Return(nil).Once()

		w := performRequest(r, http.MethodDelete, "/api/v1/receipts/11", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failure - unknown receipt maps to 404", func(t *testing.T) {
		r, svc := newExpenseRouter(testMaxUploadBytes)

		svc.On("DeleteReceipt", mock.Anything, 11).Return(apperrors.ErrReceiptNotFound).Once()

		w := performRequest(r, http.MethodDelete, "/api/v1/receipts/11", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
