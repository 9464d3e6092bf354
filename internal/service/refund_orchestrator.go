package service

import (
	"context"
	"errors"
	"strings"

	"go-gin-event-commerce/internal/cache"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/pricing"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultRefundBatchSize = 5

type RefundOrchestrator interface {
	// RefundEvent refunds every paid booking of the event. Individual failures
	// are reported in the result and never stop the run.
	RefundEvent(ctx context.Context, actor model.Actor, eventID uuid.UUID, opts model.BulkRefundOptions) (*model.BulkRefundResult, error)
}

type RefundOrchestratorImpl struct {
	Deps
	refunds *refunder
	locker  cache.EventLocker
	log     *zap.Logger
}

func NewRefundOrchestrator(deps Deps, locker cache.EventLocker, promoter WaitlistPromoter) RefundOrchestrator {
	return &RefundOrchestratorImpl{
		Deps:    deps,
		refunds: &refunder{Deps: deps, promoter: promoter},
		locker:  locker,
		log:     logger.WithComponent("bulk_refund"),
	}
}

type refundOutcome struct {
	booking *model.Booking
	amount  int64
	err     error
}

func (o *RefundOrchestratorImpl) RefundEvent(ctx context.Context, actor model.Actor, eventID uuid.UUID, opts model.BulkRefundOptions) (*model.BulkRefundResult, error) {
	event, err := o.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}

	if o.locker != nil {
		lease, err := o.locker.AcquireBulkRefund(ctx, event.ID, o.Settings.BulkRefundLockTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := o.locker.Release(context.WithoutCancel(ctx), lease); err != nil {
				o.log.Warn("Failed to release bulk refund lock", zap.Int("event_id", event.ID), zap.Error(err))
			}
		}()
	}

	bookings, err := o.Bookings.ListByEvent(ctx, event.ID, model.BookingStatusPaid)
	if err != nil {
		return nil, err
	}

	result := &model.BulkRefundResult{Failures: []model.BulkRefundFailure{}}
	now := o.now()
	reason := strings.TrimSpace(opts.Reason)

	jobs := make([]refundJob, 0, len(bookings))
	for _, b := range bookings {
		// manual payments are returned by the host outside the gateway
		if !b.Payment.IsGateway() || b.Payment.PaymentIntentID == "" {
			result.Skipped++
			continue
		}
		decision := pricing.EvaluateRefund(event.RefundPolicy, event.StartTime, now, opts.HostInitiated, b.AmountCharged)
		if !decision.Eligible {
			result.Skipped++
			continue
		}
		jobs = append(jobs, refundJob{
			event:         event,
			booking:       b,
			decision:      decision,
			hostInitiated: opts.HostInitiated,
			reason:        reason,
			source:        refundSourceBulk,
		})
	}

	batchSize := o.Settings.RefundBatchSize
	if batchSize <= 0 {
		batchSize = defaultRefundBatchSize
	}

	for start := 0; start < len(jobs); start += batchSize {
		end := min(start+batchSize, len(jobs))
		for _, out := range o.runBatch(ctx, jobs[start:end]) {
			switch {
			case out.err == nil:
				result.Refunded++
				result.TotalRefunded += out.amount
			case errors.Is(out.err, apperrors.ErrAlreadyProcessed):
				result.Skipped++
			default:
				result.Failed++
				result.Failures = append(result.Failures, model.BulkRefundFailure{
					BookingID: out.booking.BookingID,
					Error:     out.err.Error(),
				})
			}
		}
	}

	o.log.Info("Bulk refund finished",
		zap.String("event_id", event.EventID.String()),
		zap.Int("refunded", result.Refunded),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
		zap.Int64("total_refunded", result.TotalRefunded),
	)
	return result, nil
}

// runBatch refunds a batch concurrently and waits for every member to settle.
func (o *RefundOrchestratorImpl) runBatch(ctx context.Context, batch []refundJob) []refundOutcome {
	outcomes := make([]refundOutcome, len(batch))
	var g errgroup.Group
	for i, job := range batch {
		g.Go(func() error {
			_, err := o.refunds.execute(ctx, job)
			outcomes[i] = refundOutcome{booking: job.booking, amount: job.decision.Amount, err: err}
			if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
				o.log.Warn("Booking refund failed",
					zap.String("booking_id", job.booking.BookingID.String()),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}
