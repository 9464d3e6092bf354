package service

import (
	"context"
	"errors"
	"fmt"

	"go-gin-event-commerce/internal/gateway"
	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	refundSourceSingle  = "single"
	refundSourceBulk    = "bulk"
	refundSourceGateway = "gateway"
	refundSourceStray   = "stray"
)

// WaitlistPromoter offers a freed seat to the next person in line.
type WaitlistPromoter interface {
	Promote(ctx context.Context, eventID int) (*model.WaitlistEntry, error)
}

// refunder is the refund step shared by single and bulk refunds: money moves
// at the gateway first, then the booking and its transaction are updated in
// one database transaction.
type refunder struct {
	Deps
	promoter WaitlistPromoter
}

type refundJob struct {
	event         *model.Event
	booking       *model.Booking
	decision      model.RefundDecision
	hostInitiated bool
	reason        string
	source        string
}

func refundIdempotencyKey(bookingID uuid.UUID) string {
	return "refund-" + bookingID.String()
}

func (r *refunder) execute(ctx context.Context, job refundJob) (*model.Booking, error) {
	log := logger.WithComponent("refunder")
	b := job.booking

	var refundID string
	if b.Payment.IsGateway() {
		if b.Payment.PaymentIntentID == "" {
			return nil, fmt.Errorf("booking %s has no settled charge: %w", b.BookingID, apperrors.ErrRefundNotEligible)
		}
		res, err := r.Gateway.Refund(ctx, gateway.RefundInput{
			PaymentIntentID: b.Payment.PaymentIntentID,
			Amount:          job.decision.Amount,
			Reason:          job.reason,
			IdempotencyKey:  refundIdempotencyKey(b.BookingID),
		})
		if err != nil {
			r.Metrics.Refund(job.source, "gateway_error", 0)
			return nil, err
		}
		refundID = res.ID
	}

	updated, wasFull, err := r.applyRefund(ctx, b.BookingID, job.decision.Amount, refundID, job.reason)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyProcessed) {
			r.Metrics.Refund(job.source, "duplicate", 0)
			return updated, err
		}
		// the gateway refund went through, a retry replays it under the same key
		log.Error("Refund issued but booking update failed",
			zap.String("booking_id", b.BookingID.String()),
			zap.String("refund_id", refundID),
			zap.Error(err),
		)
		r.Metrics.Refund(job.source, "error", 0)
		return nil, err
	}

	r.Metrics.Refund(job.source, "refunded", job.decision.Amount)
	r.afterRefund(ctx, job.event, updated, job.decision.Percent, job.reason, wasFull && !(job.source == refundSourceBulk && job.hostInitiated))
	return updated, nil
}

// applyRefund records a refund that has already been issued. It reports
// whether the event was at capacity before the seat was released.
func (r *refunder) applyRefund(ctx context.Context, bookingID uuid.UUID, amount int64, refundID, reason string) (*model.Booking, bool, error) {
	var updated *model.Booking
	var wasFull bool

	err := r.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		b, err := r.Bookings.FindByBookingIDWithLock(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.Status == model.BookingStatusRefunded {
			updated = b
			return apperrors.ErrAlreadyProcessed
		}
		if !b.Status.CanTransitionTo(model.BookingStatusRefunded) {
			return fmt.Errorf("refund booking in %s: %w", b.Status, apperrors.ErrInvalidTransition)
		}

		event, err := r.Events.FindByIDWithLock(ctx, tx, b.EventID)
		if err != nil {
			return err
		}
		if wasFull, err = r.isFull(ctx, tx, event); err != nil {
			return err
		}

		now := r.now()
		b.MarkStatus(model.BookingStatusRefunded, now)
		b.AmountRefunded = amount
		saved, err := r.Bookings.Save(ctx, tx, b)
		if err != nil {
			return err
		}

		t, err := r.Transactions.FindByBookingID(ctx, tx, b.ID)
		if err != nil {
			return err
		}
		t.Status = model.TransactionStatusRefunded
		if amount < t.Gross {
			t.Status = model.TransactionStatusPartiallyRefunded
		}
		t.RefundAmount = amount
		t.RefundedAt = &now
		if reason != "" {
			t.RefundReason = &reason
		}
		if refundID != "" {
			t.GatewayRefundID = &refundID
		}
		if err := r.Transactions.UpdateRefund(ctx, tx, t); err != nil {
			return err
		}

		updated = saved
		return nil
	})
	return updated, wasFull, err
}

func (r *refunder) afterRefund(ctx context.Context, event *model.Event, b *model.Booking, percent int, reason string, promote bool) {
	log := logger.WithComponent("refunder")

	if user, err := r.Users.FindByID(ctx, b.UserID); err != nil {
		log.Warn("Failed to load attendee for refund notice", zap.Int("user_id", b.UserID), zap.Error(err))
	} else {
		r.publish(ctx, refundIssuedNotification(user, event, b, percent, reason))
	}

	if promote && r.promoter != nil {
		if _, err := r.promoter.Promote(context.WithoutCancel(ctx), event.ID); err != nil {
			log.Warn("Failed to promote waitlist after refund", zap.Int("event_id", event.ID), zap.Error(err))
		}
	}
}

func refundPercent(amount, charged int64) int {
	if charged <= 0 {
		return 0
	}
	return int(amount * 100 / charged)
}
