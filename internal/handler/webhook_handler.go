package handler

import (
	"errors"
	"io"
	"net/http"

	"go-gin-event-commerce/internal/service"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	webhookComponent = "webhook_handler"
	// stripe 建議的 payload 上限
	maxWebhookBodyBytes = 65536
)

type WebhookHandler struct {
	reconciler service.WebhookReconciler
}

func NewWebhookHandler(reconciler service.WebhookReconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

func (h *WebhookHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/webhooks/stripe", h.Stripe)
}

// Stripe answers 2xx for every event that must not be redelivered.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	log := logger.WithComponent(webhookComponent)

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		log.Warn("Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	err = h.reconciler.Handle(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"received": true})
	case errors.Is(err, apperrors.ErrInvalidSignature):
		log.Warn("Rejected webhook with invalid signature")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
	default:
		log.Error("Webhook processing failed, gateway will redeliver", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Processing failed"})
	}
}
