package service

import (
	"context"
	"sort"
	"time"

	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/risk"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/google/uuid"
)

type AttendeeRisk struct {
	BookingID uuid.UUID           `json:"booking_id"`
	UserID    int                 `json:"user_id"`
	Name      string              `json:"name,omitempty"`
	Email     string              `json:"email,omitempty"`
	Status    model.BookingStatus `json:"status"`
	History   risk.History        `json:"history"`
	risk.Assessment
}

type RiskService interface {
	// EventReport scores every confirmed or pending attendee, highest risk first.
	EventReport(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*AttendeeRisk, error)
}

type RiskServiceImpl struct {
	Deps
}

func NewRiskService(deps Deps) RiskService {
	return &RiskServiceImpl{Deps: deps}
}

func registeredAt(b *model.Booking) time.Time {
	for _, t := range []*time.Time{b.JoinedAt, b.PendingAt, b.InterestedAt} {
		if t != nil {
			return *t
		}
	}
	return b.CreatedAt
}

func (s *RiskServiceImpl) EventReport(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*AttendeeRisk, error) {
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}

	bookings, err := s.Bookings.ListByEvent(ctx, event.ID,
		model.BookingStatusPaid, model.BookingStatusPendingPayment, model.BookingStatusJoined)
	if err != nil {
		return nil, err
	}

	userIDs := make([]int, 0, len(bookings))
	for _, b := range bookings {
		userIDs = append(userIDs, b.UserID)
	}
	// history stops at whichever comes first, now or this event
	cutoff := s.now()
	if event.StartTime.Before(cutoff) {
		cutoff = event.StartTime
	}
	stats, err := s.Bookings.AttendanceStats(ctx, userIDs, cutoff)
	if err != nil {
		return nil, err
	}

	report := make([]*AttendeeRisk, 0, len(bookings))
	for _, b := range bookings {
		st := stats[b.UserID]
		history := risk.History{Attended: st.Attended, NoShows: st.NoShows}
		row := &AttendeeRisk{
			BookingID: b.BookingID,
			UserID:    b.UserID,
			Status:    b.Status,
			History:   history,
			Assessment: risk.Score(risk.Input{
				History:      history,
				Status:       b.Status,
				RegisteredAt: registeredAt(b),
				EventStart:   event.StartTime,
			}),
		}
		if user, err := s.Users.FindByID(ctx, b.UserID); err == nil {
			row.Name = user.Name
			row.Email = user.Email
		}
		report = append(report, row)
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].Score > report[j].Score
	})
	return report, nil
}
