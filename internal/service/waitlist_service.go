package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SweepResult struct {
	Expired  int `json:"expired"`
	Promoted int `json:"promoted"`
}

type WaitlistService interface {
	// Join 活動額滿時加入候補，重複加入回傳原本的紀錄
	Join(ctx context.Context, eventID uuid.UUID, req model.JoinWaitlistRequest) (*model.WaitlistEntry, error)
	Status(ctx context.Context, eventID uuid.UUID, email string) (*model.WaitlistStatusView, error)
	Leave(ctx context.Context, eventID uuid.UUID, email string) error
	List(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*model.WaitlistEntry, error)
	// Promote offers a freed seat to the earliest waiting entry. It returns nil
	// when the event has no free seat or nobody is waiting.
	Promote(ctx context.Context, eventID int) (*model.WaitlistEntry, error)
	// SweepExpired closes offers whose window has passed and passes each seat on.
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type WaitlistServiceImpl struct {
	Deps
	log *zap.Logger
}

func NewWaitlistService(deps Deps) WaitlistService {
	return &WaitlistServiceImpl{
		Deps: deps,
		log:  logger.WithComponent("waitlist"),
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.Validation("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", apperrors.Validation("invalid email %q", email)
	}
	return email, nil
}

func (s *WaitlistServiceImpl) Join(ctx context.Context, eventID uuid.UUID, req model.JoinWaitlistRequest) (*model.WaitlistEntry, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}

	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var entry *model.WaitlistEntry
	err = s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		locked, err := s.Events.FindByIDWithLock(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		full, err := s.isFull(ctx, tx, locked)
		if err != nil {
			return err
		}
		if !full {
			return apperrors.ErrEventNotFull
		}
		confirmed, err := s.Bookings.HasConfirmedByEmail(ctx, tx, event.ID, email)
		if err != nil {
			return err
		}
		if confirmed {
			return apperrors.ErrAlreadyBooked
		}

		existing, err := s.Waitlist.FindByEventAndEmail(ctx, tx, event.ID, email)
		if err == nil {
			entry = existing
			return nil
		}
		if !errors.Is(err, apperrors.ErrWaitlistEntryNotFound) {
			return err
		}

		position, err := s.Events.NextWaitlistPosition(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		entry, err = s.Waitlist.Create(ctx, tx, &model.WaitlistEntry{
			EventID:  event.ID,
			Email:    email,
			Name:     name,
			Position: position,
			Status:   model.WaitlistStatusWaiting,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.Waitlist(string(entry.Status))
	return entry, nil
}

func (s *WaitlistServiceImpl) Status(ctx context.Context, eventID uuid.UUID, email string) (*model.WaitlistStatusView, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	entry, err := s.Waitlist.FindByEventAndEmail(ctx, nil, event.ID, email)
	if err != nil {
		return nil, err
	}

	view := &model.WaitlistStatusView{Entry: entry}
	if entry.Status == model.WaitlistStatusWaiting {
		ahead, err := s.Waitlist.CountWaitingBefore(ctx, event.ID, entry.Position)
		if err != nil {
			return nil, err
		}
		view.Rank = ahead + 1
	}
	return view, nil
}

func (s *WaitlistServiceImpl) Leave(ctx context.Context, eventID uuid.UUID, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	return s.Waitlist.Delete(ctx, nil, event.ID, email)
}

func (s *WaitlistServiceImpl) List(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*model.WaitlistEntry, error) {
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}
	return s.Waitlist.ListByEvent(ctx, event.ID)
}

func (s *WaitlistServiceImpl) Promote(ctx context.Context, eventID int) (*model.WaitlistEntry, error) {
	var promoted *model.WaitlistEntry
	var event *model.Event
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		event, err = s.Events.FindByIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if !event.HasCapacityLimit() {
			return nil
		}
		held, err := s.Bookings.CountHeldSeats(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		offered, err := s.Waitlist.CountNotified(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		if held+offered >= *event.Capacity {
			return nil
		}

		entry, err := s.Waitlist.NextWaiting(ctx, tx, event.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrWaitlistEntryNotFound) {
				return nil
			}
			return err
		}
		now := s.now()
		expires := now.Add(s.Settings.WaitlistNotifyWindow)
		entry.Status = model.WaitlistStatusNotified
		entry.NotifiedAt = &now
		entry.NotificationExpiresAt = &expires
		if err := s.Waitlist.UpdateStatus(ctx, tx, entry); err != nil {
			return err
		}
		promoted = entry
		return nil
	})
	if err != nil || promoted == nil {
		return nil, err
	}

	s.log.Info("Waitlist entry notified",
		zap.Int("event_id", eventID),
		zap.Int("position", promoted.Position),
	)
	s.Metrics.Waitlist(string(promoted.Status))
	s.publish(ctx, waitlistSpotNotification(promoted, event))
	return promoted, nil
}

func (s *WaitlistServiceImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	var expired []*model.WaitlistEntry
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		entries, err := s.Waitlist.ListExpired(ctx, tx, s.now())
		if err != nil {
			return err
		}
		for _, e := range entries {
			e.Status = model.WaitlistStatusExpired
			if err := s.Waitlist.UpdateStatus(ctx, tx, e); err != nil {
				return err
			}
		}
		expired = entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SweepResult{Expired: len(expired)}
	for _, e := range expired {
		s.Metrics.Waitlist(string(e.Status))
		promoted, err := s.Promote(ctx, e.EventID)
		if err != nil {
			s.log.Warn("Failed to promote after expiry", zap.Int("event_id", e.EventID), zap.Error(err))
			continue
		}
		if promoted != nil {
			result.Promoted++
		}
	}
	return result, nil
}
