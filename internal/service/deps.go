package service

import (
	"context"
	"errors"
	"time"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/internal/clock"
	"go-gin-event-commerce/internal/database"
	"go-gin-event-commerce/internal/gateway"
	"go-gin-event-commerce/internal/metrics"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/pricing"
	"go-gin-event-commerce/internal/queue"
	"go-gin-event-commerce/internal/repository"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Settings are the engine knobs the services read at runtime.
type Settings struct {
	SuccessURL           string
	CancelURL            string
	WaitlistNotifyWindow time.Duration
	ReminderLeadTime     time.Duration
	RefundBatchSize      int
	BulkRefundLockTTL    time.Duration
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		SuccessURL:           cfg.Stripe.SuccessURL,
		CancelURL:            cfg.Stripe.CancelURL,
		WaitlistNotifyWindow: cfg.Engine.WaitlistNotifyWindow,
		ReminderLeadTime:     cfg.Engine.ReminderLeadTime,
		RefundBatchSize:      cfg.Engine.RefundBatchSize,
		BulkRefundLockTTL:    cfg.Engine.BulkRefundLockTTL,
	}
}

// Deps bundles the collaborators shared by the booking engine services.
type Deps struct {
	Tx           database.TxRunner
	Events       repository.EventRepository
	Users        repository.UserRepository
	Bookings     repository.BookingRepository
	Transactions repository.TransactionRepository
	Waitlist     repository.WaitlistRepository
	Reminders    repository.ReminderRepository
	Gateway      gateway.PaymentGateway
	Queue        queue.NotificationQueue
	Clock        clock.Clock
	Metrics      *metrics.Metrics
	Calculator   pricing.Calculator
	Settings     Settings
}

func (d Deps) now() time.Time {
	if d.Clock == nil {
		return time.Now().UTC()
	}
	return d.Clock.Now()
}

// publish hands notifications to the queue once the state change that caused
// them has committed. A failed publish is logged and never undoes the change.
func (d Deps) publish(ctx context.Context, notifications ...*model.Notification) {
	if d.Queue == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, n := range notifications {
		if n == nil || n.To == "" {
			continue
		}
		if err := d.Queue.Publish(ctx, n); err != nil {
			logger.WithComponent("notifier").Warn("Failed to publish notification",
				zap.String("kind", string(n.Kind)),
				zap.Error(err),
			)
		}
	}
}

// isFull reports whether the event's held seats already reach its capacity.
// Callers hold the event row lock.
func (d Deps) isFull(ctx context.Context, tx pgx.Tx, event *model.Event) (bool, error) {
	if !event.HasCapacityLimit() {
		return false, nil
	}
	held, err := d.Bookings.CountHeldSeats(ctx, tx, event.ID)
	if err != nil {
		return false, err
	}
	return held >= *event.Capacity, nil
}

// convertWaitlistEntry marks the user's open waitlist entry as converted once
// they hold a confirmed booking.
func (d Deps) convertWaitlistEntry(ctx context.Context, tx pgx.Tx, eventID int, email string, at time.Time) error {
	if d.Waitlist == nil || email == "" {
		return nil
	}
	entry, err := d.Waitlist.FindByEventAndEmail(ctx, tx, eventID, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrWaitlistEntryNotFound) {
			return nil
		}
		return err
	}
	if entry.Status != model.WaitlistStatusWaiting && entry.Status != model.WaitlistStatusNotified {
		return nil
	}
	t := at
	entry.Status = model.WaitlistStatusConverted
	entry.ConvertedAt = &t
	return d.Waitlist.UpdateStatus(ctx, tx, entry)
}

// scheduleReminder queues the pre-event reminder for a confirmed booking.
// Events already started get none; a lead time that has passed sends on the
// next dispatch.
func (d Deps) scheduleReminder(ctx context.Context, tx pgx.Tx, booking *model.Booking, event *model.Event, now time.Time) error {
	if d.Reminders == nil || !event.StartTime.After(now) {
		return nil
	}
	sendAt := event.StartTime.Add(-d.Settings.ReminderLeadTime)
	if sendAt.Before(now) {
		sendAt = now
	}
	return d.Reminders.Schedule(ctx, tx, booking.ID, sendAt)
}
