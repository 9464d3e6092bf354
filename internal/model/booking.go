package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus 預約狀態類型
type BookingStatus string

const (
	// BookingStatusNone marks a (user, event) pair that has no row yet.
	BookingStatusNone           BookingStatus = ""
	BookingStatusInterested     BookingStatus = "INTERESTED"
	BookingStatusPendingPayment BookingStatus = "PENDING_PAYMENT"
	BookingStatusPaid           BookingStatus = "PAID"
	BookingStatusFailed         BookingStatus = "FAILED"
	BookingStatusRefunded       BookingStatus = "REFUNDED"
	BookingStatusJoined         BookingStatus = "JOINED"
	BookingStatusCancelled      BookingStatus = "CANCELLED"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusNone:       {BookingStatusInterested, BookingStatusPendingPayment, BookingStatusJoined},
	BookingStatusInterested: {BookingStatusPendingPayment, BookingStatusJoined, BookingStatusCancelled},
	// PENDING_PAYMENT -> PENDING_PAYMENT is a re-attempt with a fresh payment reference
	BookingStatusPendingPayment: {BookingStatusPendingPayment, BookingStatusPaid, BookingStatusFailed, BookingStatusCancelled},
	BookingStatusFailed:         {BookingStatusPendingPayment, BookingStatusCancelled},
	BookingStatusPaid:           {BookingStatusRefunded},
	BookingStatusJoined:         {BookingStatusCancelled},
	BookingStatusRefunded:       {}, // 終態
	BookingStatusCancelled:      {}, // 終態
}

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusInterested, BookingStatusPendingPayment, BookingStatusPaid, BookingStatusFailed,
		BookingStatusRefunded, BookingStatusJoined, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, ok := bookingTransitions[s]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// HoldsSeat reports whether a booking in this state counts against capacity.
func (s BookingStatus) HoldsSeat() bool {
	switch s {
	case BookingStatusPendingPayment, BookingStatusPaid, BookingStatusJoined:
		return true
	}
	return false
}

// IsConfirmed reports whether the attendee is confirmed for the event.
func (s BookingStatus) IsConfirmed() bool {
	return s == BookingStatusPaid || s == BookingStatusJoined
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRefunded || s == BookingStatusCancelled
}

type PaymentMethod string

const (
	PaymentMethodGateway PaymentMethod = "gateway"
	PaymentMethodManual  PaymentMethod = "manual"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodGateway || m == PaymentMethodManual
}

// PaymentRef is the payment attempt attached to a booking. Reference holds the
// checkout session id for the gateway method and the payer supplied transfer
// reference for the manual method, so a booking carries exactly one reference.
// PaymentIntentID is only set for the gateway method once the charge settles.
type PaymentRef struct {
	Method          PaymentMethod `json:"method"`
	Reference       string        `json:"reference"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"`
}

func GatewayPayment(sessionID string) *PaymentRef {
	return &PaymentRef{Method: PaymentMethodGateway, Reference: sessionID}
}

func ManualPayment(reference string) *PaymentRef {
	return &PaymentRef{Method: PaymentMethodManual, Reference: reference}
}

func (p *PaymentRef) IsGateway() bool {
	return p != nil && p.Method == PaymentMethodGateway
}

func (p *PaymentRef) IsManual() bool {
	return p != nil && p.Method == PaymentMethodManual
}

// SettlementRef is the key a settled payment is recorded under.
func (p *PaymentRef) SettlementRef() string {
	if p == nil {
		return ""
	}
	if p.Method == PaymentMethodGateway && p.PaymentIntentID != "" {
		return p.PaymentIntentID
	}
	return string(p.Method) + ":" + p.Reference
}

// Booking 一位使用者對一場活動的預約紀錄，永不刪除
type Booking struct {
	ID              int           `json:"-" db:"id"`
	BookingID       uuid.UUID     `json:"booking_id" db:"booking_id"`
	UserID          int           `json:"user_id" db:"user_id"`
	EventID         int           `json:"-" db:"event_id"`
	Status          BookingStatus `json:"status" db:"status"`
	Payment         *PaymentRef   `json:"payment,omitempty"`
	AmountCharged   int64         `json:"amount_charged" db:"amount_charged"`
	PlatformFee     int64         `json:"platform_fee" db:"platform_fee"`
	AmountRefunded  int64         `json:"amount_refunded" db:"amount_refunded"`
	Currency        string        `json:"currency" db:"currency"`
	VerifiedBy      *int          `json:"verified_by,omitempty" db:"verified_by"`
	VerifiedAt      *time.Time    `json:"verified_at,omitempty" db:"verified_at"`
	RejectionReason *string       `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CheckedInAt     *time.Time    `json:"checked_in_at,omitempty" db:"checked_in_at"`
	InterestedAt    *time.Time    `json:"interested_at,omitempty" db:"interested_at"`
	PendingAt       *time.Time    `json:"pending_at,omitempty" db:"pending_at"`
	PaidAt          *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	FailedAt        *time.Time    `json:"failed_at,omitempty" db:"failed_at"`
	RefundedAt      *time.Time    `json:"refunded_at,omitempty" db:"refunded_at"`
	JoinedAt        *time.Time    `json:"joined_at,omitempty" db:"joined_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// MarkStatus moves the booking to target and stamps the matching timestamp.
// Callers check CanTransitionTo first.
func (b *Booking) MarkStatus(target BookingStatus, at time.Time) {
	t := at
	switch target {
	case BookingStatusInterested:
		b.InterestedAt = &t
	case BookingStatusPendingPayment:
		b.PendingAt = &t
	case BookingStatusPaid:
		b.PaidAt = &t
	case BookingStatusFailed:
		b.FailedAt = &t
	case BookingStatusRefunded:
		b.RefundedAt = &t
	case BookingStatusJoined:
		b.JoinedAt = &t
	case BookingStatusCancelled:
		b.CancelledAt = &t
	}
	b.Status = target
}

// SettlementRef is the ledger key of the booking's settled payment. Manual
// references are payer supplied, so they are scoped to the booking.
func (b *Booking) SettlementRef() string {
	if b.Payment.IsManual() {
		return b.Payment.SettlementRef() + "@" + b.BookingID.String()
	}
	return b.Payment.SettlementRef()
}

type CheckoutRequest struct {
	Method          PaymentMethod `json:"method" binding:"required,oneof=gateway manual"`
	ManualReference string        `json:"manual_reference"`
}

type CheckoutResult struct {
	Booking     *Booking     `json:"booking"`
	Fees        FeeBreakdown `json:"fees"`
	CheckoutURL string       `json:"checkout_url,omitempty"`
}

// FeeBreakdown is the output of the fee calculator, in minor currency units.
type FeeBreakdown struct {
	Subtotal     int64 `json:"subtotal"`
	ServiceFee   int64 `json:"service_fee"`
	PlatformFee  int64 `json:"platform_fee"`
	AttendeePays int64 `json:"attendee_pays"`
	HostReceives int64 `json:"host_receives"`
}

type ManualVerification struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

type RefundRequest struct {
	Reason string `json:"reason"`
}

// RefundDecision is the refund policy outcome for one booking.
type RefundDecision struct {
	Eligible bool  `json:"eligible"`
	Percent  int   `json:"percent"`
	Amount   int64 `json:"amount"`
}

// GatewayPaymentSettlement carries a settled gateway charge into the state machine.
type GatewayPaymentSettlement struct {
	BookingID       uuid.UUID
	SessionID       string
	PaymentIntentID string
	Amount          int64
	Currency        string
}

type BulkRefundOptions struct {
	HostInitiated bool   `json:"host_initiated"`
	Reason        string `json:"reason"`
}

type BulkRefundFailure struct {
	BookingID uuid.UUID `json:"booking_id"`
	Error     string    `json:"error"`
}

type BulkRefundResult struct {
	Refunded      int                 `json:"refunded"`
	Failed        int                 `json:"failed"`
	Skipped       int                 `json:"skipped"`
	TotalRefunded int64               `json:"total_refunded"`
	Failures      []BulkRefundFailure `json:"failures,omitempty"`
}

// AttendanceStats counts how a user's past confirmed bookings turned out.
type AttendanceStats struct {
	Attended int
	NoShows  int
}
