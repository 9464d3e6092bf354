package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-gin-event-commerce/internal/gateway"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/pricing"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingService interface {
	MarkInterested(ctx context.Context, actor model.Actor, eventID uuid.UUID) (*model.Booking, error)
	Checkout(ctx context.Context, actor model.Actor, eventID uuid.UUID, req model.CheckoutRequest) (*model.CheckoutResult, error)
	Join(ctx context.Context, actor model.Actor, eventID uuid.UUID) (*model.Booking, error)
	GetBooking(ctx context.Context, actor model.Actor, bookingID uuid.UUID) (*model.Booking, error)
	ListEventBookings(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*model.Booking, error)

	// ConfirmGatewayPayment 由 webhook 呼叫，同一筆付款重送回傳 ErrAlreadyProcessed
	ConfirmGatewayPayment(ctx context.Context, settlement model.GatewayPaymentSettlement) (*model.Booking, error)
	FailGatewayPayment(ctx context.Context, bookingID uuid.UUID, sessionID string, reason string) (*model.Booking, error)
	VerifyManualPayment(ctx context.Context, actor model.Actor, bookingID uuid.UUID, v model.ManualVerification) (*model.Booking, error)

	RefundBooking(ctx context.Context, actor model.Actor, bookingID uuid.UUID, req model.RefundRequest) (*model.Booking, error)
	// RecordGatewayRefund applies a refund issued outside the engine, such as from the gateway dashboard.
	RecordGatewayRefund(ctx context.Context, paymentIntentID, refundID string, amountRefunded int64) (*model.Booking, error)

	Cancel(ctx context.Context, actor model.Actor, bookingID uuid.UUID) (*model.Booking, error)
	CheckIn(ctx context.Context, actor model.Actor, bookingID uuid.UUID) (*model.Booking, error)
}

type BookingServiceImpl struct {
	Deps
	refunds *refunder
	log     *zap.Logger
}

func NewBookingService(deps Deps, promoter WaitlistPromoter) BookingService {
	return &BookingServiceImpl{
		Deps:    deps,
		refunds: &refunder{Deps: deps, promoter: promoter},
		log:     logger.WithComponent("booking"),
	}
}

func (s *BookingServiceImpl) loadUserBooking(ctx context.Context, tx pgx.Tx, userID, eventID int) (*model.Booking, error) {
	b, err := s.Bookings.FindByUserAndEventWithLock(ctx, tx, userID, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func statusOf(b *model.Booking) model.BookingStatus {
	if b == nil {
		return model.BookingStatusNone
	}
	return b.Status
}

func (s *BookingServiceImpl) MarkInterested(ctx context.Context, actor model.Actor, eventID uuid.UUID) (*model.Booking, error) {
	if actor.IsZero() {
		return nil, apperrors.ErrUnauthenticated
	}
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var result *model.Booking
	err = s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		existing, err := s.loadUserBooking(ctx, tx, actor.UserID, event.ID)
		if err != nil {
			return err
		}
		// interest never moves an existing booking backwards
		if existing != nil {
			result = existing
			return nil
		}
		b := &model.Booking{UserID: actor.UserID, EventID: event.ID, Currency: event.Currency}
		b.MarkStatus(model.BookingStatusInterested, s.now())
		result, err = s.Bookings.Save(ctx, tx, b)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *BookingServiceImpl) Checkout(ctx context.Context, actor model.Actor, eventID uuid.UUID, req model.CheckoutRequest) (*model.CheckoutResult, error) {
	if actor.IsZero() {
		return nil, apperrors.ErrUnauthenticated
	}
	if !req.Method.IsValid() {
		return nil, apperrors.Validation("unknown payment method %q", req.Method)
	}
	manualRef := strings.TrimSpace(req.ManualReference)
	if req.Method == model.PaymentMethodManual && manualRef == "" {
		return nil, apperrors.Validation("manual payments need a transfer reference")
	}

	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsFree {
		return nil, apperrors.Validation("free events are joined, not checked out")
	}
	fees, err := s.Calculator.ForEvent(event, 1)
	if err != nil {
		return nil, err
	}

	var booking *model.Booking
	var staleSession string
	err = s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		locked, err := s.Events.FindByIDWithLock(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		existing, err := s.loadUserBooking(ctx, tx, actor.UserID, event.ID)
		if err != nil {
			return err
		}
		current := statusOf(existing)
		if current.IsConfirmed() {
			return apperrors.ErrAlreadyBooked
		}
		staleSession = openSessionRef(existing)
		if !current.CanTransitionTo(model.BookingStatusPendingPayment) {
			return fmt.Errorf("checkout from %s: %w", current, apperrors.ErrInvalidTransition)
		}
		// a retry from PENDING_PAYMENT already holds its seat
		if !current.HoldsSeat() {
			full, err := s.isFull(ctx, tx, locked)
			if err != nil {
				return err
			}
			if full {
				return apperrors.ErrCapacityExceeded
			}
		}

		b := existing
		if b == nil {
			b = &model.Booking{UserID: actor.UserID, EventID: event.ID}
		}
		b.MarkStatus(model.BookingStatusPendingPayment, s.now())
		b.AmountCharged = fees.AttendeePays
		b.PlatformFee = fees.PlatformFee
		b.AmountRefunded = 0
		b.Currency = event.Currency
		b.RejectionReason = nil
		b.VerifiedBy = nil
		b.VerifiedAt = nil
		b.Payment = nil
		if req.Method == model.PaymentMethodManual {
			b.Payment = model.ManualPayment(manualRef)
		}
		booking, err = s.Bookings.Save(ctx, tx, b)
		return err
	})
	if err != nil {
		s.Metrics.Checkout(string(req.Method), outcomeOf(err))
		return nil, err
	}

	s.expireSession(ctx, booking.BookingID, staleSession)

	result := &model.CheckoutResult{Booking: booking, Fees: fees}
	if req.Method == model.PaymentMethodGateway {
		session, err := s.openSession(ctx, actor, event, booking, fees)
		if err != nil {
			s.Metrics.Checkout(string(req.Method), "gateway_error")
			return nil, err
		}
		result.Booking = session.booking
		result.CheckoutURL = session.url
	}

	s.Metrics.Checkout(string(req.Method), "pending")
	return result, nil
}

type openedSession struct {
	booking *model.Booking
	url     string
}

// openSession creates the hosted checkout session and attaches it to the
// pending booking. When the gateway refuses, the booking moves to FAILED so
// the seat is released and the attendee can retry.
func (s *BookingServiceImpl) openSession(ctx context.Context, actor model.Actor, event *model.Event, booking *model.Booking, fees model.FeeBreakdown) (*openedSession, error) {
	input := gateway.CheckoutSessionInput{
		BookingID:     booking.BookingID.String(),
		EventID:       event.EventID.String(),
		UserID:        actor.UserID,
		CustomerEmail: actor.Email,
		ProductName:   event.Name,
		Currency:      strings.ToLower(event.Currency),
		UnitAmount:    fees.AttendeePays,
		Quantity:      1,
		SuccessURL:    s.Settings.SuccessURL,
		CancelURL:     s.Settings.CancelURL,
	}
	if event.HostPayoutAccount != nil && *event.HostPayoutAccount != "" {
		input.DestinationAccount = *event.HostPayoutAccount
		input.ApplicationFee = fees.PlatformFee
	}

	session, gwErr := s.Gateway.CreateCheckoutSession(ctx, input)

	var updated *model.Booking
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		b, err := s.Bookings.FindByBookingIDWithLock(ctx, tx, booking.BookingID)
		if err != nil {
			return err
		}
		if b.Status != model.BookingStatusPendingPayment {
			return fmt.Errorf("attach session to %s booking: %w", b.Status, apperrors.ErrInvalidTransition)
		}
		if gwErr != nil {
			b.MarkStatus(model.BookingStatusFailed, s.now())
		} else {
			b.Payment = model.GatewayPayment(session.ID)
		}
		updated, err = s.Bookings.Save(ctx, tx, b)
		return err
	})
	if gwErr != nil {
		if err != nil {
			s.log.Error("Failed to release seat after gateway error",
				zap.String("booking_id", booking.BookingID.String()),
				zap.Error(err),
			)
		}
		return nil, gwErr
	}
	if err != nil {
		return nil, err
	}
	return &openedSession{booking: updated, url: session.URL}, nil
}

func (s *BookingServiceImpl) Join(ctx context.Context, actor model.Actor, eventID uuid.UUID) (*model.Booking, error) {
	if actor.IsZero() {
		return nil, apperrors.ErrUnauthenticated
	}
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsFree {
		return nil, apperrors.Validation("paid events require checkout")
	}

	var booking *model.Booking
	err = s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		locked, err := s.Events.FindByIDWithLock(ctx, tx, event.ID)
		if err != nil {
			return err
		}
		existing, err := s.loadUserBooking(ctx, tx, actor.UserID, event.ID)
		if err != nil {
			return err
		}
		current := statusOf(existing)
		if current.IsConfirmed() {
			return apperrors.ErrAlreadyBooked
		}
		if !current.CanTransitionTo(model.BookingStatusJoined) {
			return fmt.Errorf("join from %s: %w", current, apperrors.ErrInvalidTransition)
		}
		full, err := s.isFull(ctx, tx, locked)
		if err != nil {
			return err
		}
		if full {
			return apperrors.ErrCapacityExceeded
		}

		b := existing
		if b == nil {
			b = &model.Booking{UserID: actor.UserID, EventID: event.ID, Currency: event.Currency}
		}
		now := s.now()
		b.MarkStatus(model.BookingStatusJoined, now)
		if booking, err = s.Bookings.Save(ctx, tx, b); err != nil {
			return err
		}
		if err := s.convertWaitlistEntry(ctx, tx, event.ID, actor.Email, now); err != nil {
			return err
		}
		return s.scheduleReminder(ctx, tx, booking, locked, now)
	})
	s.Metrics.Checkout("free", outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, actor model.Actor, bookingID uuid.UUID) (*model.Booking, error) {
	b, err := s.Bookings.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID == actor.UserID {
		return b, nil
	}
	event, err := s.Events.FindByID(ctx, b.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}
	return b, nil
}

func (s *BookingServiceImpl) ListEventBookings(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*model.Booking, error) {
	event, err := s.Events.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}
	return s.Bookings.ListByEvent(ctx, event.ID)
}

func (s *BookingServiceImpl) ConfirmGatewayPayment(ctx context.Context, settlement model.GatewayPaymentSettlement) (*model.Booking, error) {
	if settlement.PaymentIntentID == "" {
		return nil, apperrors.Validation("settlement without payment intent")
	}

	var booking *model.Booking
	var event *model.Event
	var stray bool
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		b, err := s.Bookings.FindByBookingIDWithLock(ctx, tx, settlement.BookingID)
		if err != nil {
			return err
		}
		if _, err := s.Transactions.FindByExternalRef(ctx, tx, settlement.PaymentIntentID); err == nil {
			booking = b
			return apperrors.ErrAlreadyProcessed
		} else if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			return err
		}
		// a paid booking already holds another charge
		if b.Status == model.BookingStatusPaid || !b.Status.CanTransitionTo(model.BookingStatusPaid) {
			booking = b
			stray = true
			return nil
		}
		if settlement.Amount > 0 && settlement.Amount != b.AmountCharged {
			s.log.Warn("Settled amount differs from quoted amount",
				zap.String("booking_id", b.BookingID.String()),
				zap.Int64("quoted", b.AmountCharged),
				zap.Int64("settled", settlement.Amount),
			)
		}

		if event, err = s.Events.FindByID(ctx, b.EventID); err != nil {
			return err
		}

		sessionID := settlement.SessionID
		if sessionID == "" && b.Payment.IsGateway() {
			sessionID = b.Payment.Reference
		}
		b.Payment = model.GatewayPayment(sessionID)
		b.Payment.PaymentIntentID = settlement.PaymentIntentID

		booking, err = s.settle(ctx, tx, b, event)
		return err
	})
	if err != nil {
		return booking, err
	}
	if stray {
		return s.reverseStrayCharge(ctx, booking, settlement)
	}

	s.notifyPaid(ctx, booking, event)
	return booking, nil
}

func strayRefundIdempotencyKey(paymentIntentID string) string {
	return "refund-" + paymentIntentID
}

// reverseStrayCharge refunds a charge that settled against a booking which can
// no longer take it and keeps a REVERSED transaction as the ledger record.
// A gateway error is returned so the webhook is redelivered.
func (s *BookingServiceImpl) reverseStrayCharge(ctx context.Context, b *model.Booking, settlement model.GatewayPaymentSettlement) (*model.Booking, error) {
	s.log.Warn("Charge settled for a booking that cannot take it, refunding",
		zap.String("booking_id", b.BookingID.String()),
		zap.String("status", string(b.Status)),
		zap.String("payment_intent_id", settlement.PaymentIntentID),
	)

	res, err := s.Gateway.Refund(ctx, gateway.RefundInput{
		PaymentIntentID: settlement.PaymentIntentID,
		Amount:          settlement.Amount,
		Reason:          "booking no longer payable",
		IdempotencyKey:  strayRefundIdempotencyKey(settlement.PaymentIntentID),
	})
	if err != nil {
		s.Metrics.Refund(refundSourceStray, "gateway_error", 0)
		return b, err
	}

	amount := settlement.Amount
	if amount <= 0 {
		amount = res.Amount
	}
	now := s.now()
	reason := fmt.Sprintf("charge arrived for %s booking", strings.ToLower(string(b.Status)))
	refundID := res.ID

	err = s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		t, err := s.Transactions.Create(ctx, tx, &model.Transaction{
			BookingID:   b.ID,
			ExternalRef: settlement.PaymentIntentID,
			Gross:       amount,
			Currency:    b.Currency,
			Status:      model.TransactionStatusReversed,
		})
		if err != nil {
			return err
		}
		t.RefundAmount = amount
		t.RefundedAt = &now
		t.RefundReason = &reason
		t.GatewayRefundID = &refundID
		return s.Transactions.UpdateRefund(ctx, tx, t)
	})
	if err != nil && !errors.Is(err, apperrors.ErrAlreadyProcessed) {
		s.log.Error("Stray charge refunded but not recorded",
			zap.String("payment_intent_id", settlement.PaymentIntentID),
			zap.String("refund_id", refundID),
			zap.Error(err),
		)
		return b, err
	}

	s.Metrics.Refund(refundSourceStray, "reversed", amount)
	return b, nil
}

// expireSession closes a checkout session that was replaced or abandoned.
// A session that already completed cannot be expired; its charge is
// reversed when the webhook arrives.
func (s *BookingServiceImpl) expireSession(ctx context.Context, bookingID uuid.UUID, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.Gateway.ExpireCheckoutSession(context.WithoutCancel(ctx), sessionID); err != nil {
		s.log.Warn("Failed to expire checkout session",
			zap.String("booking_id", bookingID.String()),
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

// openSessionRef returns the live checkout session of a pending gateway booking.
func openSessionRef(b *model.Booking) string {
	if b == nil || b.Status != model.BookingStatusPendingPayment || !b.Payment.IsGateway() {
		return ""
	}
	return b.Payment.Reference
}

// settle moves a pending booking to PAID and writes its transaction record.
func (s *BookingServiceImpl) settle(ctx context.Context, tx pgx.Tx, b *model.Booking, event *model.Event) (*model.Booking, error) {
	now := s.now()
	b.MarkStatus(model.BookingStatusPaid, now)
	saved, err := s.Bookings.Save(ctx, tx, b)
	if err != nil {
		return nil, err
	}

	_, err = s.Transactions.Create(ctx, tx, &model.Transaction{
		BookingID:   saved.ID,
		ExternalRef: saved.SettlementRef(),
		Gross:       saved.AmountCharged,
		PlatformFee: saved.PlatformFee,
		HostNet:     saved.AmountCharged - saved.PlatformFee,
		Currency:    saved.Currency,
		Status:      model.TransactionStatusSucceeded,
	})
	if err != nil {
		return nil, err
	}

	if user, err := s.Users.FindByID(ctx, saved.UserID); err == nil {
		if err := s.convertWaitlistEntry(ctx, tx, event.ID, user.Email, now); err != nil {
			return nil, err
		}
	}
	if err := s.scheduleReminder(ctx, tx, saved, event, now); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *BookingServiceImpl) notifyPaid(ctx context.Context, b *model.Booking, event *model.Event) {
	user, err := s.Users.FindByID(ctx, b.UserID)
	if err != nil {
		s.log.Warn("Failed to load attendee for payment notice", zap.Int("user_id", b.UserID), zap.Error(err))
		return
	}
	s.publish(ctx, paymentConfirmedNotification(user, event, b))
}

func (s *BookingServiceImpl) FailGatewayPayment(ctx context.Context, bookingID uuid.UUID, sessionID string, reason string) (*model.Booking, error) {
	var booking *model.Booking
	var wasFull bool
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		b, err := s.Bookings.FindByBookingIDWithLock(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		// only the live attempt may fail the booking, a stale session never regresses it
		if b.Status != model.BookingStatusPendingPayment || !b.Payment.IsGateway() || b.Payment.Reference != sessionID {
			booking = b
			return apperrors.ErrAlreadyProcessed
		}
		event, err := s.Events.FindByIDWithLock(ctx, tx, b.EventID)
		if err != nil {
			return err
		}
		if wasFull, err = s.isFull(ctx, tx, event); err != nil {
			return err
		}
		b.MarkStatus(model.BookingStatusFailed, s.now())
		if reason != "" {
			b.RejectionReason = &reason
		}
		booking, err = s.Bookings.Save(ctx, tx, b)
		return err
	})
	if err != nil {
		return booking, err
	}

	if wasFull {
		s.promote(ctx, booking.EventID)
	}
	return booking, nil
}

func (s *BookingServiceImpl) VerifyManualPayment(ctx context.Context, actor model.Actor, bookingID uuid.UUID, v model.ManualVerification) (*model.Booking, error) {
	b, err := s.Bookings.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	event, err := s.Events.FindByID(ctx, b.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}

	var booking *model.Booking
	var wasFull bool
	err = s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		b, err := s.Bookings.FindByBookingIDWithLock(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.Payment.IsManual() {
			return apperrors.Validation("booking is not awaiting manual verification")
		}
		if b.Status == model.BookingStatusPaid && v.Approve {
			booking = b
			return apperrors.ErrAlreadyProcessed
		}
		if b.Status != model.BookingStatusPendingPayment {
			return fmt.Errorf("verify booking in %s: %w", b.Status, apperrors.ErrInvalidTransition)
		}

		now := s.now()
		verifier := actor.UserID
		b.VerifiedBy = &verifier
		b.VerifiedAt = &now

		if v.Approve {
			booking, err = s.settle(ctx, tx, b, event)
			return err
		}

		locked, err := s.Events.FindByIDWithLock(ctx, tx, b.EventID)
		if err != nil {
			return err
		}
		if wasFull, err = s.isFull(ctx, tx, locked); err != nil {
			return err
		}
		reason := strings.TrimSpace(v.Reason)
		if reason != "" {
			b.RejectionReason = &reason
		}
		b.MarkStatus(model.BookingStatusFailed, now)
		booking, err = s.Bookings.Save(ctx, tx, b)
		return err
	})
	if err != nil {
		return booking, err
	}

	if v.Approve {
		s.notifyPaid(ctx, booking, event)
		return booking, nil
	}

	if user, err := s.Users.FindByID(ctx, booking.UserID); err == nil {
		s.publish(ctx, paymentRejectedNotification(user, event, strings.TrimSpace(v.Reason)))
	}
	if wasFull {
		s.promote(ctx, event.ID)
	}
	return booking, nil
}

func (s *BookingServiceImpl) RefundBooking(ctx context.Context, actor model.Actor, bookingID uuid.UUID, req model.RefundRequest) (*model.Booking, error) {
	b, err := s.Bookings.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	event, err := s.Events.FindByID(ctx, b.EventID)
	if err != nil {
		return nil, err
	}

	hostInitiated := event.IsHost(actor)
	if !hostInitiated && b.UserID != actor.UserID {
		return nil, apperrors.ErrForbidden
	}
	if b.Status == model.BookingStatusRefunded {
		return b, apperrors.ErrAlreadyProcessed
	}
	if b.Status != model.BookingStatusPaid {
		return nil, fmt.Errorf("refund booking in %s: %w", b.Status, apperrors.ErrInvalidTransition)
	}
	// manual payments are returned out of band, only the host can confirm that
	if b.Payment.IsManual() && !hostInitiated {
		return nil, apperrors.ErrForbidden
	}

	decision := pricing.EvaluateRefund(event.RefundPolicy, event.StartTime, s.now(), hostInitiated, b.AmountCharged)
	if !decision.Eligible {
		s.Metrics.Refund(refundSourceSingle, "not_eligible", 0)
		return nil, apperrors.ErrRefundNotEligible
	}

	return s.refunds.execute(ctx, refundJob{
		event:         event,
		booking:       b,
		decision:      decision,
		hostInitiated: hostInitiated,
		reason:        strings.TrimSpace(req.Reason),
		source:        refundSourceSingle,
	})
}

func (s *BookingServiceImpl) RecordGatewayRefund(ctx context.Context, paymentIntentID, refundID string, amountRefunded int64) (*model.Booking, error) {
	b, err := s.Bookings.FindByPaymentIntent(ctx, nil, paymentIntentID)
	if err != nil {
		return nil, err
	}
	if b.Status == model.BookingStatusRefunded {
		return b, apperrors.ErrAlreadyProcessed
	}
	if amountRefunded <= 0 || amountRefunded > b.AmountCharged {
		amountRefunded = b.AmountCharged
	}

	updated, wasFull, err := s.refunds.applyRefund(ctx, b.BookingID, amountRefunded, refundID, "")
	if err != nil {
		return updated, err
	}
	s.Metrics.Refund(refundSourceGateway, "refunded", amountRefunded)

	event, err := s.Events.FindByID(ctx, updated.EventID)
	if err != nil {
		s.log.Warn("Failed to load event after gateway refund", zap.Int("event_id", updated.EventID), zap.Error(err))
		return updated, nil
	}
	s.refunds.afterRefund(ctx, event, updated, refundPercent(amountRefunded, updated.AmountCharged), "", wasFull)
	return updated, nil
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, actor model.Actor, bookingID uuid.UUID) (*model.Booking, error) {
	var booking *model.Booking
	var wasFull bool
	var liveSession string
	err := s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		b, err := s.Bookings.FindByBookingIDWithLock(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if b.UserID != actor.UserID {
			return apperrors.ErrForbidden
		}
		if b.Status == model.BookingStatusCancelled {
			booking = b
			return apperrors.ErrAlreadyProcessed
		}
		// paid bookings leave through a refund
		if !b.Status.CanTransitionTo(model.BookingStatusCancelled) {
			return fmt.Errorf("cancel booking in %s: %w", b.Status, apperrors.ErrInvalidTransition)
		}
		if b.Status.HoldsSeat() {
			event, err := s.Events.FindByIDWithLock(ctx, tx, b.EventID)
			if err != nil {
				return err
			}
			if wasFull, err = s.isFull(ctx, tx, event); err != nil {
				return err
			}
		}
		liveSession = openSessionRef(b)
		b.MarkStatus(model.BookingStatusCancelled, s.now())
		booking, err = s.Bookings.Save(ctx, tx, b)
		return err
	})
	if err != nil {
		return booking, err
	}

	s.expireSession(ctx, booking.BookingID, liveSession)
	if wasFull {
		s.promote(ctx, booking.EventID)
	}
	return booking, nil
}

func (s *BookingServiceImpl) CheckIn(ctx context.Context, actor model.Actor, bookingID uuid.UUID) (*model.Booking, error) {
	b, err := s.Bookings.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	event, err := s.Events.FindByID(ctx, b.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsHost(actor) {
		return nil, apperrors.ErrForbidden
	}

	var booking *model.Booking
	err = s.Tx.WithinTx(ctx, func(tx pgx.Tx) error {
		b, err := s.Bookings.FindByBookingIDWithLock(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !b.Status.IsConfirmed() {
			return fmt.Errorf("check in booking in %s: %w", b.Status, apperrors.ErrInvalidTransition)
		}
		if b.CheckedInAt != nil {
			booking = b
			return apperrors.ErrAlreadyProcessed
		}
		now := s.now()
		b.CheckedInAt = &now
		booking, err = s.Bookings.Save(ctx, tx, b)
		return err
	})
	return booking, err
}

func (s *BookingServiceImpl) promote(ctx context.Context, eventID int) {
	if s.refunds.promoter == nil {
		return
	}
	if _, err := s.refunds.promoter.Promote(context.WithoutCancel(ctx), eventID); err != nil {
		s.log.Warn("Failed to promote waitlist", zap.Int("event_id", eventID), zap.Error(err))
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, apperrors.ErrAlreadyBooked):
		return "already_booked"
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "error"
	}
}
