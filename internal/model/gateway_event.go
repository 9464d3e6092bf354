package model

import "time"

type GatewayEventType string

const (
	GatewayEventPaymentSucceeded GatewayEventType = "payment_succeeded"
	GatewayEventPaymentFailed    GatewayEventType = "payment_failed"
	GatewayEventSessionExpired   GatewayEventType = "session_expired"
	GatewayEventChargeRefunded   GatewayEventType = "charge_refunded"
)

// GatewayEvent is a verified gateway notification reduced to the fields the
// engine correlates on.
type GatewayEvent struct {
	ID              string
	Type            GatewayEventType
	BookingID       string
	SessionID       string
	PaymentIntentID string
	RefundID        string
	Amount          int64
	AmountRefunded  int64
	Currency        string
	FailureReason   string
}

// GatewayEventRecord is the dedupe ledger row for a received gateway event.
type GatewayEventRecord struct {
	ID              int        `db:"id"`
	Provider        string     `db:"provider"`
	ProviderEventID string     `db:"provider_event_id"`
	Type            string     `db:"type"`
	ReceivedAt      time.Time  `db:"received_at"`
	ProcessedAt     *time.Time `db:"processed_at"`
}
