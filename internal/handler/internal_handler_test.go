package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-commerce/internal/handler"
	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/service"
	"go-gin-event-commerce/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testInternalToken = "internal-test-token"

func setupInternalTestRouter(waitlist *mocks.MockWaitlistService, reminders *mocks.MockReminderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewInternalHandler(waitlist, reminders).RegisterRoutes(router, testInternalToken)
	return router
}

func internalRequest(url string) *http.Request {
	req, _ := http.NewRequest("POST", url, nil)
	req.Header.Set(middleware.InternalTokenHeader, testInternalToken)
	return req
}

func TestSweepWaitlist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		waitlist := mocks.NewMockWaitlistService(t)
		router := setupInternalTestRouter(waitlist, mocks.NewMockReminderService(t))

		waitlist.EXPECT().SweepExpired(mock.Anything).Return(&service.SweepResult{Expired: 2, Promoted: 1}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, internalRequest("/internal/waitlist/sweep"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"expired":2,"promoted":1}`, w.Body.String())
	})

	t.Run("Failed - missing token", func(t *testing.T) {
		waitlist := mocks.NewMockWaitlistService(t)
		router := setupInternalTestRouter(waitlist, mocks.NewMockReminderService(t))

		req, _ := http.NewRequest("POST", "/internal/waitlist/sweep", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		waitlist.AssertNotCalled(t, "SweepExpired")
	})
}

func TestDispatchReminders(t *testing.T) {
	t.Run("Success - default limit", func(t *testing.T) {
		reminders := mocks.NewMockReminderService(t)
		router := setupInternalTestRouter(mocks.NewMockWaitlistService(t), reminders)

		reminders.EXPECT().DispatchDue(mock.Anything, 100).Return(3, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, internalRequest("/internal/reminders/dispatch"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"sent":3}`, w.Body.String())
	})

	t.Run("Success - custom limit", func(t *testing.T) {
		reminders := mocks.NewMockReminderService(t)
		router := setupInternalTestRouter(mocks.NewMockWaitlistService(t), reminders)

		reminders.EXPECT().DispatchDue(mock.Anything, 10).Return(0, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, internalRequest("/internal/reminders/dispatch?limit=10"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		reminders := mocks.NewMockReminderService(t)
		router := setupInternalTestRouter(mocks.NewMockWaitlistService(t), reminders)

		reminders.EXPECT().DispatchDue(mock.Anything, 100).Return(0, errors.New("db down")).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, internalRequest("/internal/reminders/dispatch"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
