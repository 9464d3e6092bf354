package gateway

import (
	"context"

	"go-gin-event-commerce/internal/model"
)

// Correlation metadata keys attached to every checkout session.
const (
	MetadataBookingID = "booking_id"
	MetadataEventID   = "event_id"
	MetadataUserID    = "user_id"
)

type CheckoutSessionInput struct {
	BookingID          string
	EventID            string
	UserID             int
	CustomerEmail      string
	ProductName        string
	Currency           string
	UnitAmount         int64
	Quantity           int64
	ApplicationFee     int64
	DestinationAccount string
	SuccessURL         string
	CancelURL          string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type RefundInput struct {
	PaymentIntentID string
	// Amount 為 0 時全額退款
	Amount          int64
	Reason          string
	IdempotencyKey  string
}

type RefundResult struct {
	ID     string
	Status string
	Amount int64
}

// PaymentGateway is the engine's view of the card processor.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error)
	// ExpireCheckoutSession closes an open session so it can no longer be paid.
	ExpireCheckoutSession(ctx context.Context, sessionID string) error
	Refund(ctx context.Context, in RefundInput) (*RefundResult, error)
	// ParseWebhook verifies the signature and reduces the payload to a GatewayEvent.
	// It returns ErrInvalidSignature for forged payloads and ErrEventIgnored for
	// event types the engine does not act on.
	ParseWebhook(payload []byte, signature string) (*model.GatewayEvent, error)
	Provider() string
}
