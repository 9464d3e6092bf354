package handler

import (
	"net/http"

	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/service"

	"github.com/gin-gonic/gin"
)

const hostComponent = "host_handler"

// HostHandler serves the host-only event operations.
type HostHandler struct {
	refunds service.RefundOrchestrator
	risk    service.RiskService
}

func NewHostHandler(refunds service.RefundOrchestrator, risk service.RiskService) *HostHandler {
	return &HostHandler{refunds: refunds, risk: risk}
}

func (h *HostHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Authenticator) {
	private := router.Group("", auth.RequireActor())
	{
		private.POST("events/:uuid/bulk-refund", h.BulkRefund)
		private.GET("events/:uuid/no-show-risk", h.NoShowRisk)
	}
}

func (h *HostHandler) BulkRefund(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	opts := model.BulkRefundOptions{HostInitiated: true}
	if c.Request.ContentLength > 0 {
		if err := BindJson(c, &opts); err != nil {
			return
		}
	}
	result, err := h.refunds.RefundEvent(c.Request.Context(), actor(c), eventID, opts)
	respond(c, result, err, http.StatusOK, hostComponent, "BulkRefund")
}

func (h *HostHandler) NoShowRisk(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	report, err := h.risk.EventReport(c.Request.Context(), actor(c), eventID)
	if err != nil {
		handleError(c, err, hostComponent, "NoShowRisk")
		return
	}
	c.JSON(http.StatusOK, report)
}
