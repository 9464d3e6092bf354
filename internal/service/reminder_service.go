package service

import (
	"context"

	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const defaultReminderBatch = 100

type ReminderService interface {
	// DispatchDue sends reminders that have come due and returns how many were queued.
	DispatchDue(ctx context.Context, limit int) (int, error)
}

type ReminderServiceImpl struct {
	Deps
}

func NewReminderService(deps Deps) ReminderService {
	return &ReminderServiceImpl{Deps: deps}
}

func (s *ReminderServiceImpl) DispatchDue(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultReminderBatch
	}

	var due []*model.DueReminder
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		now := s.now()
		claimed, err := s.Reminders.ClaimDue(ctx, tx, now, limit)
		if err != nil {
			return err
		}
		// 先標記已送出：通知最多送一次
		for _, r := range claimed {
			if err := s.Reminders.MarkSent(ctx, tx, r.ID, now); err != nil {
				return err
			}
		}
		due = claimed
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, r := range due {
		s.publish(ctx, reminderNotification(r))
	}
	if len(due) > 0 {
		logger.WithComponent("reminder").Info("Reminders dispatched", zap.Int("count", len(due)))
	}
	return len(due), nil
}
