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

func newAttendeeRouter() (*gin.Engine, *mocks.AttendeeServiceMock) {
	svc := new(mocks.AttendeeServiceMock)
	r := gin.New()
	handler.NewAttendeeHandler(svc).RegisterRoutes(r)
	return r, svc
}

func TestAttendeeHandler_Create(t *testing.T) {
	t.Run("Success - returns 201 with the created attendee", func(t *testing.T) {
		r, svc := newAttendeeRouter()

		svc.On("Create", mock.Anything, "aB3xY9Zk01", mock.MatchedBy(func(a *model.Attendee) bool {
			return a.Name == "Ana" && !a.ExcludeFromSplit
		})).Return(&model.Attendee{ID: 1, EventID: 7, Name: "Ana"}, nil).Once()

		w := performRequest(r, http.MethodPost, "/api/v1/events/aB3xY9Zk01/attendees", gin.H{
			"name": "Ana",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Ana", responseBody(t, w)["name"])
	})

	t.Run("Failure - missing name is rejected before the service", func(t *testing.T) {
		r, svc := newAttendeeRouter()

		w := performRequest(r, http.MethodPost, "/api/v1/events/aB3xY9Zk01/attendees", gin.H{
			"excludeFromSplit": true,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("Failure - unknown event maps to 404", func(t *testing.T) {
		r, svc := newAttendeeRouter()

		svc.On("Create", mock.Anything, "zzzzzzzzzz", mock.AnythingOfType("*model.Attendee")).
			Return(nil, apperrors.ErrEventNotFound).Once()

		w := performRequest(r, http.MethodPost, "/api/v1/events/zzzzzzzzzz/attendees", gin.H{
			"name": "Ana",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAttendeeHandler_Update(t *testing.T) {
	t.Run("Success - toggles the split exclusion", func(t *testing.T) {
		r, svc := newAttendeeRouter()

		svc.On("Update", mock.Anything, 1, mock.MatchedBy(func(p model.UpdateAttendeeParams) bool {
			return p.ExcludeFromSplit != nil && *p.ExcludeFromSplit && p.Name == nil
		})).Return(&model.Attendee{ID: 1, Name: "Ana", ExcludeFromSplit: true}, nil).Once()

		w := performRequest(r, http.MethodPatch, "/api/v1/attendees/1", gin.H{
			"excludeFromSplit": true,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, responseBody(t, w)["excludeFromSplit"])
	})

	t.Run("Failure - empty body is rejected", func(t *testing.T) {
		r, svc := newAttendeeRouter()

		w := performRequest(r, http.MethodPatch, "/api/v1/attendees/1", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Update")
	})
}

func TestAttendeeHandler_Delete(t *testing.T) {
	t.Run("Failure - unknown attendee maps to 404", func(t *testing.T) {
		r, svc := newAttendeeRouter()

		svc.On("Delete", mock.Anything, 1).Return(apperrors.ErrAttendeeNotFound).Once()

		w := performRequest(r, http.MethodDelete, "/api/v1/attendees/1", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
