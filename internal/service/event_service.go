package service

import (
	"context"
	"strings"

	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/pricing"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	ListByHost(ctx context.Context, actor model.Actor) ([]*model.Event, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, actor model.Actor, req model.CreateEventRequest) (*model.Event, error)
	UpdateByEventID(ctx context.Context, actor model.Actor, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	// Quote 試算票價與手續費，不建立預約
	Quote(ctx context.Context, eventID uuid.UUID, quantity int) (model.FeeBreakdown, error)
}

type EventServiceImpl struct {
	Deps
	promoter WaitlistPromoter
	log      *zap.Logger
}

func NewEventService(deps Deps, promoter WaitlistPromoter) EventService {
	return &EventServiceImpl{
		Deps:     deps,
		promoter: promoter,
		log:      logger.WithComponent("event"),
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.Events.List(ctx)
}

func (s *EventServiceImpl) ListByHost(ctx context.Context, actor model.Actor) ([]*model.Event, error) {
	if actor.IsZero() {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.Events.ListByHost(ctx, actor.UserID)
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.Events.FindByEventID(ctx, eventID)
}

func (s *EventServiceImpl) Create(ctx context.Context, actor model.Actor, req model.CreateEventRequest) (*model.Event, error) {
	if actor.IsZero() {
		return nil, apperrors.ErrUnauthenticated
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}
	if req.PriceMinor < 0 {
		return nil, apperrors.Validation("price cannot be negative")
	}
	if req.Capacity != nil && *req.Capacity < 1 {
		return nil, apperrors.Validation("capacity must be at least 1")
	}
	if len(strings.TrimSpace(req.Currency)) != 3 {
		return nil, apperrors.Validation("currency must be a 3-letter code")
	}

	policy := req.FeePolicy
	if policy == "" {
		policy = model.FeePolicyAbsorb
	}
	if !policy.IsValid() {
		return nil, apperrors.Validation("unknown fee policy %q", policy)
	}
	if err := pricing.ValidateRefundPolicy(req.RefundPolicy); err != nil {
		return nil, err
	}

	event := &model.Event{
		EventID:           uuid.New(),
		HostID:            actor.UserID,
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		Capacity:          req.Capacity,
		PriceMinor:        req.PriceMinor,
		Currency:          strings.ToUpper(strings.TrimSpace(req.Currency)),
		IsFree:            req.PriceMinor == 0,
		FeePolicy:         policy,
		RefundPolicy:      req.RefundPolicy,
		StartTime:         req.StartTime.UTC(),
		HostPayoutAccount: req.HostPayoutAccount,
	}
	return s.Events.Create(ctx, event)
}

func (s *EventServiceImpl) UpdateByEventID(ctx context.Context, actor model.Actor, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}
	if params.Capacity != nil && *params.Capacity < 1 {
		return nil, apperrors.Validation("capacity must be at least 1")
	}
	updated, err := s.Events.Update(ctx, event.ID, params)
	if err != nil {
		return nil, err
	}
	s.offerAddedSeats(ctx, event, updated)
	return updated, nil
}

// 擴充名額後，每多一個座位通知一位候補
func (s *EventServiceImpl) offerAddedSeats(ctx context.Context, before, after *model.Event) {
	if s.promoter == nil || before.Capacity == nil || after.Capacity == nil {
		return
	}
	added := *after.Capacity - *before.Capacity
	ctx = context.WithoutCancel(ctx)
	for i := 0; i < added; i++ {
		promoted, err := s.promoter.Promote(ctx, after.ID)
		if err != nil {
			s.log.Warn("Failed to promote waitlist after capacity change",
				zap.Int("event_id", after.ID), zap.Error(err))
			return
		}
		if promoted == nil {
			return
		}
	}
}

func (s *EventServiceImpl) Quote(ctx context.Context, eventID uuid.UUID, quantity int) (model.FeeBreakdown, error) {
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return model.FeeBreakdown{}, err
	}
	return s.Calculator.ForEvent(event, quantity)
}
