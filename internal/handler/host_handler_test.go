package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-commerce/internal/handler"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/risk"
	"go-gin-event-commerce/internal/service"
	"go-gin-event-commerce/internal/service/mocks"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupHostTestRouter(refunds *mocks.MockRefundOrchestrator, riskService *mocks.MockRiskService) *gin.Engine {
	router, api := newTestRouter()
	handler.NewHostHandler(refunds, riskService).RegisterRoutes(api, testAuth)
	return router
}

func TestBulkRefund(t *testing.T) {
	eventID := uuid.New()
	url := "/api/v1/events/" + eventID.String() + "/bulk-refund"

	t.Run("Success - defaults to host initiated", func(t *testing.T) {
		refunds := mocks.NewMockRefundOrchestrator(t)
		router := setupHostTestRouter(refunds, mocks.NewMockRiskService(t))

		refunds.EXPECT().RefundEvent(mock.Anything, alice, eventID, model.BulkRefundOptions{HostInitiated: true}).
			Return(&model.BulkRefundResult{Refunded: 4, Failed: 1, TotalRefunded: 8400}, nil).Once()

		req, _ := http.NewRequest("POST", url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, req, alice))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"refunded":4`)
		assert.Contains(t, w.Body.String(), `"failed":1`)
	})

	t.Run("Failed - ErrLocked", func(t *testing.T) {
		refunds := mocks.NewMockRefundOrchestrator(t)
		router := setupHostTestRouter(refunds, mocks.NewMockRiskService(t))

		opts := model.BulkRefundOptions{HostInitiated: false, Reason: "venue closed"}
		refunds.EXPECT().RefundEvent(mock.Anything, alice, eventID, opts).Return(nil, apperrors.ErrLocked).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, createJSONHTTPRequest("POST", url, opts), alice))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestNoShowRisk(t *testing.T) {
	eventID := uuid.New()
	url := "/api/v1/events/" + eventID.String() + "/no-show-risk"

	t.Run("Success", func(t *testing.T) {
		riskService := mocks.NewMockRiskService(t)
		router := setupHostTestRouter(mocks.NewMockRefundOrchestrator(t), riskService)

		riskService.EXPECT().EventReport(mock.Anything, alice, eventID).Return([]*service.AttendeeRisk{
			{UserID: 2, Status: model.BookingStatusJoined, Assessment: risk.Assessment{Score: 75, Level: risk.LevelHigh}},
		}, nil).Once()

		req, _ := http.NewRequest("GET", url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, req, alice))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"score":75`)
	})

	t.Run("Failed - ErrForbidden", func(t *testing.T) {
		riskService := mocks.NewMockRiskService(t)
		router := setupHostTestRouter(mocks.NewMockRefundOrchestrator(t), riskService)

		riskService.EXPECT().EventReport(mock.Anything, alice, eventID).Return(nil, apperrors.ErrForbidden).Once()

		req, _ := http.NewRequest("GET", url, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, withActor(t, req, alice))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
