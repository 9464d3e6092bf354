package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-gin-event-commerce/internal/cache"
	"go-gin-event-commerce/internal/gateway"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/pricing"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *fixture) expectLock(eventID int) *cache.Lease {
	lease := &cache.Lease{Key: fmt.Sprintf("lock:bulk-refund:%d", eventID), Token: "tok"}
	f.locker.EXPECT().AcquireBulkRefund(mock.Anything, eventID, time.Minute).Return(lease, nil).Once()
	f.locker.EXPECT().Release(mock.Anything, lease).Return(nil).Once()
	return lease
}

func TestRefundOrchestrator_RefundEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Settles every booking and reports partial failure", func(t *testing.T) {
		f := newFixture(t)
		host := f.user(t, "host")
		event := f.event(t, host, eventOpts{capacity: 10, price: 2000, tiers: pricing.DefaultRefundTiers()})

		paid := make([]*model.Booking, 0, 5)
		for i := 1; i <= 5; i++ {
			paid = append(paid, f.paid(t, f.user(t, fmt.Sprintf("runner%d", i)), event, fmt.Sprintf("pi_%d", i)))
		}

		res, err := f.bookings.Checkout(ctx, f.user(t, "cash"), event.EventID, model.CheckoutRequest{
			Method:          model.PaymentMethodManual,
			ManualReference: "BANK-7",
		})
		require.NoError(t, err)
		_, err = f.bookings.VerifyManualPayment(ctx, host, res.Booking.BookingID, model.ManualVerification{Approve: true})
		require.NoError(t, err)

		f.expectLock(event.ID)
		f.gateway.EXPECT().Refund(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, in gateway.RefundInput) (*gateway.RefundResult, error) {
			if in.PaymentIntentID == "pi_3" {
				return nil, &apperrors.GatewayError{Op: "refund", Err: errors.New("charge disputed")}
			}
			return &gateway.RefundResult{ID: "re_" + in.PaymentIntentID, Status: "succeeded", Amount: in.Amount}, nil
		}).Times(5)

		result, err := f.refunds.RefundEvent(ctx, host, event.EventID, model.BulkRefundOptions{HostInitiated: true, Reason: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, 4, result.Refunded)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, int64(4*2100), result.TotalRefunded)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, paid[2].BookingID, result.Failures[0].BookingID)

		assert.Equal(t, model.BookingStatusPaid, f.booking(t, paid[2]).Status)
		assert.Equal(t, model.BookingStatusRefunded, f.booking(t, paid[0]).Status)
		assert.Len(t, f.notifications(model.NotificationRefundIssued), 4)
	})

	t.Run("Host cancellation does not promote the waitlist", func(t *testing.T) {
		f := newFixture(t)
		host, alice := f.user(t, "host"), f.user(t, "alice")
		event := f.event(t, host, eventOpts{capacity: 1, price: 2000})
		f.paid(t, alice, event, "pi_a")
		joinWaitlist(t, f, event, "amy")

		f.expectLock(event.ID)
		f.gateway.EXPECT().Refund(mock.Anything, mock.Anything).
			Return(&gateway.RefundResult{ID: "re_a", Status: "succeeded", Amount: 2100}, nil).Once()

		result, err := f.refunds.RefundEvent(ctx, host, event.EventID, model.BulkRefundOptions{HostInitiated: true})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Refunded)

		view, err := f.waitlist.Status(ctx, event.EventID, "amy@example.com")
		require.NoError(t, err)
		assert.Equal(t, model.WaitlistStatusWaiting, view.Entry.Status)
	})

	t.Run("Ineligible bookings are skipped", func(t *testing.T) {
		f := newFixture(t)
		host := f.user(t, "host")
		event := f.event(t, host, eventOpts{capacity: 5, price: 2000, tiers: pricing.DefaultRefundTiers(), startIn: 6 * time.Hour})
		f.paid(t, f.user(t, "alice"), event, "pi_a")

		f.expectLock(event.ID)
		result, err := f.refunds.RefundEvent(ctx, host, event.EventID, model.BulkRefundOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Refunded)
		assert.Equal(t, 1, result.Skipped)
		assert.Empty(t, result.Failures)
	})

	t.Run("Failed - another run holds the lock", func(t *testing.T) {
		f := newFixture(t)
		host := f.user(t, "host")
		event := f.event(t, host, eventOpts{price: 2000})

		f.locker.EXPECT().AcquireBulkRefund(mock.Anything, event.ID, time.Minute).Return(nil, apperrors.ErrLocked).Once()

		_, err := f.refunds.RefundEvent(ctx, host, event.EventID, model.BulkRefundOptions{HostInitiated: true})
		assert.ErrorIs(t, err, apperrors.ErrLocked)
	})

	t.Run("Failed - not the host", func(t *testing.T) {
		f := newFixture(t)
		host := f.user(t, "host")
		event := f.event(t, host, eventOpts{price: 2000})

		_, err := f.refunds.RefundEvent(ctx, f.user(t, "mallory"), event.EventID, model.BulkRefundOptions{HostInitiated: true})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
