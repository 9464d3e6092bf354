package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	cacheMocks "go-gin-event-commerce/internal/cache/mocks"
	"go-gin-event-commerce/internal/clock"
	"go-gin-event-commerce/internal/gateway"
	gatewayMocks "go-gin-event-commerce/internal/gateway/mocks"
	"go-gin-event-commerce/internal/metrics"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/pricing"
	queueMocks "go-gin-event-commerce/internal/queue/mocks"
	"go-gin-event-commerce/internal/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store   *memStore
	clock   *clock.FakeClock
	gateway *gatewayMocks.MockPaymentGateway
	queue   *queueMocks.MockNotificationQueue
	locker  *cacheMocks.MockEventLocker
	deps    service.Deps

	bookings service.BookingService
	waitlist service.WaitlistService
	refunds  service.RefundOrchestrator

	mu   sync.Mutex
	sent []*model.Notification
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   newMemStore(),
		clock:   clock.NewFake(baseTime),
		gateway: gatewayMocks.NewMockPaymentGateway(t),
		queue:   queueMocks.NewMockNotificationQueue(t),
		locker:  cacheMocks.NewMockEventLocker(t),
	}
	f.queue.EXPECT().Publish(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, n *model.Notification) error {
		f.mu.Lock()
		f.sent = append(f.sent, n)
		f.mu.Unlock()
		return nil
	}).Maybe()

	f.deps = service.Deps{
		Tx:           f.store,
		Events:       memEvents{f.store},
		Users:        memUsers{f.store},
		Bookings:     memBookings{f.store},
		Transactions: memTransactions{f.store},
		Waitlist:     memWaitlist{f.store},
		Reminders:    memReminders{f.store},
		Gateway:      f.gateway,
		Queue:        f.queue,
		Clock:        f.clock,
		Metrics:      metrics.New(metrics.NewRegistry()),
		Calculator:   pricing.NewCalculator(500),
		Settings: service.Settings{
			SuccessURL:           "https://example.com/ok",
			CancelURL:            "https://example.com/cancel",
			WaitlistNotifyWindow: 24 * time.Hour,
			ReminderLeadTime:     24 * time.Hour,
			RefundBatchSize:      2,
			BulkRefundLockTTL:    time.Minute,
		},
	}
	f.waitlist = service.NewWaitlistService(f.deps)
	f.bookings = service.NewBookingService(f.deps, f.waitlist)
	f.refunds = service.NewRefundOrchestrator(f.deps, f.locker, f.waitlist)
	return f
}

func (f *fixture) user(t *testing.T, name string) model.Actor {
	t.Helper()
	u, err := memUsers{f.store}.Create(context.Background(), &model.User{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
	})
	require.NoError(t, err)
	return model.Actor{UserID: u.ID, Email: u.Email}
}

type eventOpts struct {
	capacity int
	price    int64
	policy   model.FeePolicy
	tiers    []model.RefundTier
	startIn  time.Duration
}

func (f *fixture) event(t *testing.T, host model.Actor, o eventOpts) *model.Event {
	t.Helper()
	if o.policy == "" {
		o.policy = model.FeePolicyPassThrough
	}
	if o.startIn == 0 {
		o.startIn = 30 * 24 * time.Hour
	}
	e := &model.Event{
		HostID:       host.UserID,
		Name:         "Sunrise Run",
		PriceMinor:   o.price,
		Currency:     "USD",
		IsFree:       o.price == 0,
		FeePolicy:    o.policy,
		RefundPolicy: model.RefundPolicy{Tiers: o.tiers},
		StartTime:    baseTime.Add(o.startIn),
	}
	if o.capacity > 0 {
		c := o.capacity
		e.Capacity = &c
	}
	created, err := memEvents{f.store}.Create(context.Background(), e)
	require.NoError(t, err)
	return created
}

// paid drives a gateway checkout for actor through to a settled charge.
func (f *fixture) paid(t *testing.T, actor model.Actor, event *model.Event, intent string) *model.Booking {
	t.Helper()
	ctx := context.Background()
	session := "cs_" + intent
	f.gateway.EXPECT().CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(in gateway.CheckoutSessionInput) bool {
		return in.UserID == actor.UserID
	})).Return(&gateway.CheckoutSession{ID: session, URL: "https://pay.example.com/" + session}, nil).Once()

	res, err := f.bookings.Checkout(ctx, actor, event.EventID, model.CheckoutRequest{Method: model.PaymentMethodGateway})
	require.NoError(t, err)

	b, err := f.bookings.ConfirmGatewayPayment(ctx, model.GatewayPaymentSettlement{
		BookingID:       res.Booking.BookingID,
		SessionID:       session,
		PaymentIntentID: intent,
		Amount:          res.Booking.AmountCharged,
	})
	require.NoError(t, err)
	return b
}

func (f *fixture) notifications(kind model.NotificationKind) []*model.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Notification{}
	for _, n := range f.sent {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (f *fixture) booking(t *testing.T, b *model.Booking) *model.Booking {
	t.Helper()
	got, err := memBookings{f.store}.FindByBookingID(context.Background(), b.BookingID)
	require.NoError(t, err)
	return got
}

func (f *fixture) actorOf(t *testing.T, b *model.Booking) model.Actor {
	t.Helper()
	u, err := memUsers{f.store}.FindByID(context.Background(), b.UserID)
	require.NoError(t, err)
	return model.Actor{UserID: u.ID, Email: u.Email}
}
