package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-commerce/internal/handler"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/service/mocks"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupWaitlistTestRouter(mockService *mocks.MockWaitlistService) *gin.Engine {
	router, api := newTestRouter()
	handler.NewWaitlistHandler(mockService).RegisterRoutes(api, testAuth)
	return router
}

func TestJoinWaitlist(t *testing.T) {
	eventID := uuid.New()
	url := "/api/v1/events/" + eventID.String() + "/waitlist"
	body := handler.JoinWaitlistBody{Name: "Alice"}
	expected := model.JoinWaitlistRequest{Email: alice.Email, Name: "Alice"}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		mockService.EXPECT().Join(mock.Anything, eventID, expected).Return(&model.WaitlistEntry{
			Email: alice.Email, Position: 1, Status: model.WaitlistStatusWaiting,
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, createJSONHTTPRequest("POST", url, body), alice))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"position":1`)
	})

	t.Run("Email comes from the session, not the body", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		mockService.EXPECT().Join(mock.Anything, eventID, expected).Return(&model.WaitlistEntry{Email: alice.Email}, nil).Once()

		spoofed := map[string]string{"name": "Alice", "email": "victim@example.com"}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, createJSONHTTPRequest("POST", url, spoofed), alice))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - unauthenticated", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest("POST", url, body))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Join")
	})

	t.Run("Failed - ErrEventNotFull", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		mockService.EXPECT().Join(mock.Anything, eventID, expected).Return(nil, apperrors.ErrEventNotFull).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, createJSONHTTPRequest("POST", url, body), alice))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, createJSONHTTPRequest("POST", url, handler.JoinWaitlistBody{}), alice))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Join")
	})
}

func TestWaitlistStatusAndLeave(t *testing.T) {
	eventID := uuid.New()
	base := "/api/v1/events/" + eventID.String() + "/waitlist"

	t.Run("Status", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		mockService.EXPECT().Status(mock.Anything, eventID, "amy@example.com").Return(&model.WaitlistStatusView{
			Entry: &model.WaitlistEntry{Position: 3, Status: model.WaitlistStatusWaiting},
			Rank:  2,
		}, nil).Once()

		req, _ := http.NewRequest("GET", base+"/status?email=amy@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"rank":2`)
	})

	t.Run("Status - missing email", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		req, _ := http.NewRequest("GET", base+"/status", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Leave", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		mockService.EXPECT().Leave(mock.Anything, eventID, alice.Email).Return(nil).Once()

		// a query email never selects someone else's entry
		req, _ := http.NewRequest("DELETE", base+"?email=victim@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, req, alice))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Leave - unauthenticated", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		req, _ := http.NewRequest("DELETE", base+"?email=amy@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Leave")
	})

	t.Run("Leave - ErrWaitlistEntryNotFound", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		mockService.EXPECT().Leave(mock.Anything, eventID, alice.Email).Return(apperrors.ErrWaitlistEntryNotFound).Once()

		req, _ := http.NewRequest("DELETE", base, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, req, alice))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List requires a host session", func(t *testing.T) {
		mockService := mocks.NewMockWaitlistService(t)
		router := setupWaitlistTestRouter(mockService)

		req, _ := http.NewRequest("GET", base, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "List")
	})
}
