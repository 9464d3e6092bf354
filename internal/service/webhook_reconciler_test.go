package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go-gin-event-commerce/internal/clock"
	"go-gin-event-commerce/internal/gateway"
	gatewayMocks "go-gin-event-commerce/internal/gateway/mocks"
	"go-gin-event-commerce/internal/metrics"
	"go-gin-event-commerce/internal/model"
	repoMocks "go-gin-event-commerce/internal/repository/mocks"
	"go-gin-event-commerce/internal/service"
	serviceMocks "go-gin-event-commerce/internal/service/mocks"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookMocks struct {
	gateway  *gatewayMocks.MockPaymentGateway
	ledger   *repoMocks.MockGatewayEventRepository
	bookings *serviceMocks.MockBookingService
}

func setupWebhookReconciler(t *testing.T) (service.WebhookReconciler, webhookMocks) {
	m := webhookMocks{
		gateway:  gatewayMocks.NewMockPaymentGateway(t),
		ledger:   repoMocks.NewMockGatewayEventRepository(t),
		bookings: serviceMocks.NewMockBookingService(t),
	}
	m.gateway.EXPECT().Provider().Return("stripe").Maybe()
	r := service.NewWebhookReconciler(m.gateway, m.ledger, m.bookings, clock.NewFake(baseTime), nil)
	return r, m
}

func TestWebhookReconciler_Handle(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"id":"evt_1"}`)
	bookingID := uuid.New()

	succeeded := &model.GatewayEvent{
		ID:              "evt_1",
		Type:            model.GatewayEventPaymentSucceeded,
		BookingID:       bookingID.String(),
		SessionID:       "cs_1",
		PaymentIntentID: "pi_1",
		Amount:          2100,
		Currency:        "usd",
	}

	t.Run("Success - payment confirmed", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		m.gateway.EXPECT().ParseWebhook(payload, "sig").Return(succeeded, nil).Once()
		m.ledger.EXPECT().Record(mock.Anything, mock.MatchedBy(func(rec *model.GatewayEventRecord) bool {
			return rec.ProviderEventID == "evt_1" && rec.Provider == "stripe"
		})).Return(false, nil).Once()
		m.bookings.EXPECT().ConfirmGatewayPayment(mock.Anything, model.GatewayPaymentSettlement{
			BookingID:       bookingID,
			SessionID:       "cs_1",
			PaymentIntentID: "pi_1",
			Amount:          2100,
			Currency:        "usd",
		}).Return(&model.Booking{}, nil).Once()
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", baseTime).Return(nil).Once()

		assert.NoError(t, r.Handle(ctx, payload, "sig"))
	})

	t.Run("Failed - invalid signature", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		m.gateway.EXPECT().ParseWebhook(payload, "forged").Return(nil, apperrors.ErrInvalidSignature).Once()

		assert.ErrorIs(t, r.Handle(ctx, payload, "forged"), apperrors.ErrInvalidSignature)
	})

	t.Run("Ignored event type is acknowledged", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		m.gateway.EXPECT().ParseWebhook(payload, "sig").Return(nil, apperrors.ErrEventIgnored).Once()

		assert.NoError(t, r.Handle(ctx, payload, "sig"))
	})

	t.Run("Undecodable verified event is acknowledged", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		m.gateway.EXPECT().ParseWebhook(payload, "sig").
			Return(nil, fmt.Errorf("%w: decode checkout session: unexpected end of JSON input", apperrors.ErrValidation)).Once()

		assert.NoError(t, r.Handle(ctx, payload, "sig"))
		m.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
		m.bookings.AssertNotCalled(t, "ConfirmGatewayPayment", mock.Anything, mock.Anything)
	})

	t.Run("Redelivered event has no effect", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		m.gateway.EXPECT().ParseWebhook(payload, "sig").Return(succeeded, nil).Once()
		m.ledger.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil).Once()

		assert.NoError(t, r.Handle(ctx, payload, "sig"))
	})

	t.Run("Unmatched booking is acknowledged", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		m.gateway.EXPECT().ParseWebhook(payload, "sig").Return(succeeded, nil).Once()
		m.ledger.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil).Once()
		m.bookings.EXPECT().ConfirmGatewayPayment(mock.Anything, mock.Anything).Return(nil, apperrors.ErrBookingNotFound).Once()
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", baseTime).Return(nil).Once()

		assert.NoError(t, r.Handle(ctx, payload, "sig"))
	})

	t.Run("Malformed booking reference is acknowledged", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		bad := *succeeded
		bad.BookingID = "not-a-uuid"
		m.gateway.EXPECT().ParseWebhook(payload, "sig").Return(&bad, nil).Once()
		m.ledger.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil).Once()
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_1", baseTime).Return(nil).Once()

		assert.NoError(t, r.Handle(ctx, payload, "sig"))
	})

	t.Run("Failed - transient error leaves the event for redelivery", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		expired := &model.GatewayEvent{
			ID:        "evt_2",
			Type:      model.GatewayEventSessionExpired,
			BookingID: bookingID.String(),
			SessionID: "cs_1",
		}
		m.gateway.EXPECT().ParseWebhook(payload, "sig").Return(expired, nil).Once()
		m.ledger.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil).Once()
		m.bookings.EXPECT().FailGatewayPayment(mock.Anything, bookingID, "cs_1", "session_expired").
			Return(nil, errors.New("connection reset")).Once()

		assert.Error(t, r.Handle(ctx, payload, "sig"))
	})

	t.Run("Success - dashboard refund recorded", func(t *testing.T) {
		r, m := setupWebhookReconciler(t)
		refunded := &model.GatewayEvent{
			ID:              "evt_3",
			Type:            model.GatewayEventChargeRefunded,
			PaymentIntentID: "pi_1",
			RefundID:        "re_1",
			AmountRefunded:  500,
		}
		m.gateway.EXPECT().ParseWebhook(payload, "sig").Return(refunded, nil).Once()
		m.ledger.EXPECT().Record(mock.Anything, mock.Anything).Return(false, nil).Once()
		m.bookings.EXPECT().RecordGatewayRefund(mock.Anything, "pi_1", "re_1", int64(500)).Return(&model.Booking{}, nil).Once()
		m.ledger.EXPECT().MarkProcessed(mock.Anything, "stripe", "evt_3", baseTime).Return(nil).Once()

		assert.NoError(t, r.Handle(ctx, payload, "sig"))
	})
}

// memLedger is a gateway event ledger backed by a map.
type memLedger struct {
	mu        sync.Mutex
	processed map[string]bool
}

func (l *memLedger) Record(ctx context.Context, rec *model.GatewayEventRecord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	done, ok := l.processed[rec.ProviderEventID]
	if !ok {
		l.processed[rec.ProviderEventID] = false
	}
	return done, nil
}

func (l *memLedger) MarkProcessed(ctx context.Context, provider, providerEventID string, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.processed[providerEventID] = true
	return nil
}

func TestWebhookReconciler_DuplicateSettlement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	host, alice := f.user(t, "host"), f.user(t, "alice")
	event := f.event(t, host, eventOpts{capacity: 5, price: 2000})

	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.Anything).
		Return(&gateway.CheckoutSession{ID: "cs_1", URL: "u"}, nil).Once()
	res, err := f.bookings.Checkout(ctx, alice, event.EventID, model.CheckoutRequest{Method: model.PaymentMethodGateway})
	require.NoError(t, err)

	settled := func(id string) *model.GatewayEvent {
		return &model.GatewayEvent{
			ID:              id,
			Type:            model.GatewayEventPaymentSucceeded,
			BookingID:       res.Booking.BookingID.String(),
			SessionID:       "cs_1",
			PaymentIntentID: "pi_1",
			Amount:          2100,
		}
	}
	f.gateway.EXPECT().Provider().Return("stripe").Maybe()
	f.gateway.EXPECT().ParseWebhook([]byte("a"), "sig").Return(settled("evt_a"), nil).Times(2)
	f.gateway.EXPECT().ParseWebhook([]byte("b"), "sig").Return(settled("evt_b"), nil).Once()

	registry := metrics.NewRegistry()
	r := service.NewWebhookReconciler(f.gateway, &memLedger{processed: map[string]bool{}}, f.bookings, f.clock, metrics.New(registry))

	// the same charge arrives twice under one event id and once under another
	require.NoError(t, r.Handle(ctx, []byte("a"), "sig"))
	require.NoError(t, r.Handle(ctx, []byte("a"), "sig"))
	require.NoError(t, r.Handle(ctx, []byte("b"), "sig"))

	b := f.booking(t, res.Booking)
	assert.Equal(t, model.BookingStatusPaid, b.Status)
	assert.Len(t, memTransactions{f.store}.byBooking(b.ID), 1)
	assert.Len(t, f.notifications(model.NotificationPaymentConfirmed), 1)

	count, err := testutil.GatherAndCount(registry, "event_commerce_webhook_events_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
