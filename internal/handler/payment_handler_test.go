package handler_test

import (
	"net/http"
	"testing"

	"asada-api/internal/handler"
	"asada-api/internal/model"
	"asada-api/internal/service/mocks"
	apperrors "asada-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentRouter() (*gin.Engine, *mocks.PaymentServiceMock) {
	svc := new(mocks.PaymentServiceMock)
	r := gin.New()
	handler.NewPaymentHandler(svc).RegisterRoutes(r)
	return r, svc
}

func TestPaymentHandler_Upsert(t *testing.T) {
	t.Run("Success - records a payment for the pair", func(t *testing.T) {
		r, svc := newPaymentRouter()

		svc.On("Upsert", mock.Anything, "aB3xY9Zk01", mock.MatchedBy(func(p *model.Payment) bool {
			return p.FromAttendeeID == 2 && p.ToAttendeeID == 1 && p.AmountCents == 15000
		})).Return(&model.Payment{ID: 10, FromAttendeeID: 2, ToAttendeeID: 1, AmountCents: 15000, Status: model.PaymentStatusPending}, nil).Once()

		w := performRequest(r, http.MethodPut, "/api/v1/events/aB3xY9Zk01/payments", gin.H{
			"fromAttendeeId": 2,
			"toAttendeeId":   1,
			"amountCents":    15000,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pending", responseBody(t, w)["status"])
		svc.AssertExpectations(t)
	})

	t.Run("Failure - same payer and recipient is rejected before the service", func(t *testing.T) {
		r, svc := newPaymentRouter()

		w := performRequest(r, http.MethodPut, "/api/v1/events/aB3xY9Zk01/payments", gin.H{
			"fromAttendeeId": 1,
			"toAttendeeId":   1,
			"amountCents":    100,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "fromAttendeeId and toAttendeeId must differ", responseBody(t, w)["error"])
		svc.AssertNotCalled(t, "Upsert")
	})

	t.Run("Failure - zero amount fails validation", func(t *testing.T) {
		r, svc := newPaymentRouter()

		w := performRequest(r, http.MethodPut, "/api/v1/events/aB3xY9Zk01/payments", gin.H{
			"fromAttendeeId": 2,
			"toAttendeeId":   1,
			"amountCents":    0,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Upsert")
	})

	t.Run("Failure - unknown status fails validation", func(t *testing.T) {
		r, svc := newPaymentRouter()

		w := performRequest(r, http.MethodPut, "/api/v1/events/aB3xY9Zk01/payments", gin.H{
			"fromAttendeeId": 2,
			"toAttendeeId":   1,
			"amountCents":    100,
			"status":         "settled",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, responseBody(t, w)["error"], "must be one of")
		svc.AssertNotCalled(t, "Upsert")
	})

	t.Run("Failure - attendee outside the event maps to 400", func(t *testing.T) {
		r, svc := newPaymentRouter()

		svc.On("Upsert", mock.Anything, "aB3xY9Zk01", mock.AnythingOfType("*model.Payment")).
			Return(nil, apperrors.ErrAttendeeNotFound).Once()

		w := performRequest(r, http.MethodPut, "/api/v1/events/aB3xY9Zk01/payments", gin.H{
			"fromAttendeeId": 2,
			"toAttendeeId":   99,
			"amountCents":    100,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Attendee does not belong to this event", responseBody(t, w)["error"])
	})
}

func TestPaymentHandler_List(t *testing.T) {
	t.Run("Success - returns the event's payments", func(t *testing.T) {
		r, svc := newPaymentRouter()

		svc.On("ListByEventPublicID", mock.Anything, "aB3xY9Zk01").
			Return([]*model.Payment{
				{ID: 10, FromAttendeeID: 2, ToAttendeeID: 1, AmountCents: 15000, Status: model.PaymentStatusConfirmed},
			}, nil).Once()

		w := performRequest(r, http.MethodGet, "/api/v1/events/aB3xY9Zk01/payments", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "confirmed")
	})
}

func TestPaymentHandler_UpdateStatus(t *testing.T) {
	t.Run("Success - confirms a payment", func(t *testing.T) {
		r, svc := newPaymentRouter()

		svc.On("UpdateStatus", mock.Anything, 10, model.PaymentStatusConfirmed).
			Return(&model.Payment{ID: 10, Status: model.PaymentStatusConfirmed}, nil).Once()

		w := performRequest(r, http.MethodPatch, "/api/v1/payments/10/status", gin.H{
			"status": "confirmed",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "confirmed", responseBody(t, w)["status"])
	})

	t.Run("Failure - unknown payment maps to 404", func(t *testing.T) {
		r, svc := newPaymentRouter()

		svc.On("UpdateStatus", mock.Anything, 10, model.PaymentStatusConfirmed).
			Return(nil, apperrors.ErrPaymentNotFound).Once()

		w := performRequest(r, http.MethodPatch, "/api/v1/payments/10/status", gin.H{
			"status": "confirmed",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failure - malformed ID maps to 400", func(t *testing.T) {
		r, svc := newPaymentRouter()

		w := performRequest(r, http.MethodPatch, "/api/v1/payments/abc/status", gin.H{
			"status": "confirmed",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestPaymentHandler_Delete(t *testing.T) {
	t.Run("Success - returns 204", func(t *testing.T) {
		r, svc := newPaymentRouter()

		svc.On("Delete", mock.Anything, 10).Return(nil).Once()

		w := performRequest(r, http.MethodDelete, "/api/v1/payments/10", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
