package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionStatusSucceeded         TransactionStatus = "SUCCEEDED"
	TransactionStatusRefunded          TransactionStatus = "REFUNDED"
	TransactionStatusPartiallyRefunded TransactionStatus = "PARTIALLY_REFUNDED"
	// TransactionStatusReversed marks a charge that settled against a booking
	// that could not take it and was returned in full.
	TransactionStatusReversed TransactionStatus = "REVERSED"
)

// Transaction is the financial record of a settled booking payment. Only the
// refund columns change after creation.
type Transaction struct {
	ID              int               `json:"-" db:"id"`
	TransactionID   uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	BookingID       int               `json:"-" db:"booking_id"`
	ExternalRef     string            `json:"external_ref" db:"external_ref"`
	Gross           int64             `json:"gross" db:"gross"`
	PlatformFee     int64             `json:"platform_fee" db:"platform_fee"`
	HostNet         int64             `json:"host_net" db:"host_net"`
	Currency        string            `json:"currency" db:"currency"`
	Status          TransactionStatus `json:"status" db:"status"`
	RefundAmount    int64             `json:"refund_amount" db:"refund_amount"`
	RefundedAt      *time.Time        `json:"refunded_at,omitempty" db:"refunded_at"`
	RefundReason    *string           `json:"refund_reason,omitempty" db:"refund_reason"`
	GatewayRefundID *string           `json:"gateway_refund_id,omitempty" db:"gateway_refund_id"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}
