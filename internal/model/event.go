package model

import (
	"time"

	"github.com/google/uuid"
)

// FeePolicy 決定平台手續費由誰負擔
type FeePolicy string

const (
	FeePolicyAbsorb      FeePolicy = "ABSORB"
	FeePolicyPassThrough FeePolicy = "PASS_THROUGH"
)

func (p FeePolicy) IsValid() bool {
	switch p {
	case FeePolicyAbsorb, FeePolicyPassThrough:
		return true
	}
	return false
}

// RefundTier grants Percent of the charged amount when the event is at least
// MinDaysBefore days away.
type RefundTier struct {
	MinDaysBefore float64 `json:"min_days_before"`
	Percent       int     `json:"percent"`
}

type RefundPolicy struct {
	Tiers []RefundTier `json:"tiers"`
}

type Event struct {
	ID                int          `json:"-" db:"id"`
	EventID           uuid.UUID    `json:"event_id" db:"event_id"`
	HostID            int          `json:"host_id" db:"host_id"`
	Name              string       `json:"name" db:"name"`
	Description       *string      `json:"description,omitempty" db:"description"`
	Capacity          *int         `json:"capacity,omitempty" db:"capacity"`
	PriceMinor        int64        `json:"price_minor" db:"price_minor"`
	Currency          string       `json:"currency" db:"currency"`
	IsFree            bool         `json:"is_free" db:"is_free"`
	FeePolicy         FeePolicy    `json:"fee_policy" db:"fee_policy"`
	RefundPolicy      RefundPolicy `json:"refund_policy" db:"refund_policy"`
	StartTime         time.Time    `json:"start_time" db:"start_time"`
	HostPayoutAccount *string      `json:"-" db:"host_payout_account"`
	WaitlistSeq       int          `json:"-" db:"waitlist_seq"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" db:"updated_at"`
}

// IsHost 判斷操作者是否為活動主辦
func (e *Event) IsHost(actor Actor) bool {
	return actor.UserID != 0 && actor.UserID == e.HostID
}

// HasCapacityLimit reports whether the event caps the number of held seats.
func (e *Event) HasCapacityLimit() bool {
	return e.Capacity != nil
}

type CreateEventRequest struct {
	Name              string       `json:"name" binding:"required"`
	Description       *string      `json:"description"`
	Capacity          *int         `json:"capacity" binding:"omitempty,min=1"`
	PriceMinor        int64        `json:"price_minor" binding:"min=0"`
	Currency          string       `json:"currency" binding:"required,len=3"`
	FeePolicy         FeePolicy    `json:"fee_policy"`
	RefundPolicy      RefundPolicy `json:"refund_policy"`
	StartTime         time.Time    `json:"start_time" binding:"required"`
	HostPayoutAccount *string      `json:"host_payout_account"`
}

type UpdateEventParams struct {
	Name        *string
	Description *string
	Capacity    *int
	StartTime   *time.Time
}
