package service

import (
	"context"
	"errors"
	"fmt"

	"go-gin-event-commerce/internal/clock"
	"go-gin-event-commerce/internal/gateway"
	"go-gin-event-commerce/internal/metrics"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/repository"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WebhookReconciler turns verified gateway notifications into booking
// transitions. Redelivered events are acknowledged without effect.
type WebhookReconciler interface {
	// Handle returns nil for every event the gateway should stop redelivering.
	// ErrInvalidSignature means the payload was rejected.
	Handle(ctx context.Context, payload []byte, signature string) error
}

type WebhookReconcilerImpl struct {
	gateway  gateway.PaymentGateway
	events   repository.GatewayEventRepository
	bookings BookingService
	clock    clock.Clock
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewWebhookReconciler(gw gateway.PaymentGateway, events repository.GatewayEventRepository, bookings BookingService, clk clock.Clock, m *metrics.Metrics) WebhookReconciler {
	if clk == nil {
		clk = clock.New()
	}
	return &WebhookReconcilerImpl{
		gateway:  gw,
		events:   events,
		bookings: bookings,
		clock:    clk,
		metrics:  m,
		log:      logger.WithComponent("webhook"),
	}
}

func (r *WebhookReconcilerImpl) Handle(ctx context.Context, payload []byte, signature string) error {
	ev, err := r.gateway.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventIgnored) {
			r.metrics.WebhookEvent("other", "ignored")
			return nil
		}
		// 簽章正確但內容無法解析，重送也一樣，直接確認並留下紀錄
		if errors.Is(err, apperrors.ErrValidation) {
			r.log.Error("Verified gateway event could not be decoded", zap.Error(err))
			r.metrics.WebhookEvent("unknown", "undecodable")
			return nil
		}
		r.metrics.WebhookEvent("unknown", "rejected")
		return err
	}

	processed, err := r.events.Record(ctx, &model.GatewayEventRecord{
		Provider:        r.gateway.Provider(),
		ProviderEventID: ev.ID,
		Type:            string(ev.Type),
		ReceivedAt:      r.clock.Now(),
	})
	if err != nil {
		return err
	}
	if processed {
		r.metrics.WebhookEvent(string(ev.Type), "duplicate")
		return nil
	}

	err = r.apply(ctx, ev)
	outcome := "applied"
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrAlreadyProcessed):
		outcome = "duplicate"
	case errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrEventIgnored):
		// retrying cannot change the outcome, acknowledge and keep a trace
		outcome = "unmatched"
		r.log.Warn("Gateway event did not apply",
			zap.String("event_id", ev.ID),
			zap.String("type", string(ev.Type)),
			zap.String("booking_id", ev.BookingID),
			zap.Error(err),
		)
	default:
		// leave unprocessed so the redelivery runs it again
		r.metrics.WebhookEvent(string(ev.Type), "error")
		return err
	}

	if err := r.events.MarkProcessed(ctx, r.gateway.Provider(), ev.ID, r.clock.Now()); err != nil {
		r.log.Warn("Failed to mark gateway event processed", zap.String("event_id", ev.ID), zap.Error(err))
	}
	r.metrics.WebhookEvent(string(ev.Type), outcome)
	return nil
}

func (r *WebhookReconcilerImpl) apply(ctx context.Context, ev *model.GatewayEvent) error {
	switch ev.Type {
	case model.GatewayEventPaymentSucceeded:
		bookingID, err := parseBookingRef(ev.BookingID)
		if err != nil {
			return err
		}
		_, err = r.bookings.ConfirmGatewayPayment(ctx, model.GatewayPaymentSettlement{
			BookingID:       bookingID,
			SessionID:       ev.SessionID,
			PaymentIntentID: ev.PaymentIntentID,
			Amount:          ev.Amount,
			Currency:        ev.Currency,
		})
		return err

	case model.GatewayEventPaymentFailed, model.GatewayEventSessionExpired:
		bookingID, err := parseBookingRef(ev.BookingID)
		if err != nil {
			return err
		}
		reason := ev.FailureReason
		if reason == "" {
			reason = string(ev.Type)
		}
		_, err = r.bookings.FailGatewayPayment(ctx, bookingID, ev.SessionID, reason)
		return err

	case model.GatewayEventChargeRefunded:
		if ev.PaymentIntentID == "" {
			return apperrors.Validation("refund event without payment intent")
		}
		_, err := r.bookings.RecordGatewayRefund(ctx, ev.PaymentIntentID, ev.RefundID, ev.AmountRefunded)
		return err
	}
	return fmt.Errorf("gateway event type %q: %w", ev.Type, apperrors.ErrEventIgnored)
}

func parseBookingRef(ref string) (uuid.UUID, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil, fmt.Errorf("booking reference %q: %w", ref, apperrors.ErrBookingNotFound)
	}
	return id, nil
}
