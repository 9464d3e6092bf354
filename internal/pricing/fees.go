package pricing

import (
	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"
)

const bpsDenominator = 10000

// CalculateFees splits a ticket purchase into what the attendee pays, what the
// platform keeps and what the host receives. rateBps is the platform fee rate
// in basis points. Quantity multiplies the subtotal before a single rounding.
func CalculateFees(basePrice int64, quantity int, policy model.FeePolicy, rateBps int64) (model.FeeBreakdown, error) {
	if basePrice < 0 {
		return model.FeeBreakdown{}, apperrors.Validation("base price must not be negative")
	}
	if quantity < 1 {
		return model.FeeBreakdown{}, apperrors.Validation("quantity must be at least 1")
	}
	if !policy.IsValid() {
		return model.FeeBreakdown{}, apperrors.Validation("unknown fee policy %q", policy)
	}
	if rateBps < 0 || rateBps > bpsDenominator {
		return model.FeeBreakdown{}, apperrors.Validation("fee rate %d bps out of range", rateBps)
	}

	// 免費活動不進入費率計算
	if basePrice == 0 {
		return model.FeeBreakdown{}, nil
	}

	subtotal := basePrice * int64(quantity)
	fee := divRoundHalfEven(subtotal*rateBps, bpsDenominator)

	if policy == model.FeePolicyAbsorb {
		return model.FeeBreakdown{
			Subtotal:     subtotal,
			ServiceFee:   0,
			PlatformFee:  fee,
			AttendeePays: subtotal,
			HostReceives: subtotal - fee,
		}, nil
	}

	return model.FeeBreakdown{
		Subtotal:     subtotal,
		ServiceFee:   fee,
		PlatformFee:  fee,
		AttendeePays: subtotal + fee,
		HostReceives: subtotal,
	}, nil
}

// Calculator binds the configured platform rate so every caller, from quotes to
// checkout to the ledger, goes through the same computation.
type Calculator struct {
	RateBps int64
}

func NewCalculator(rateBps int64) Calculator {
	return Calculator{RateBps: rateBps}
}

// ForEvent prices quantity tickets of the event.
func (c Calculator) ForEvent(event *model.Event, quantity int) (model.FeeBreakdown, error) {
	if event.IsFree {
		if quantity < 1 {
			return model.FeeBreakdown{}, apperrors.Validation("quantity must be at least 1")
		}
		return model.FeeBreakdown{}, nil
	}
	return CalculateFees(event.PriceMinor, quantity, event.FeePolicy, c.RateBps)
}
