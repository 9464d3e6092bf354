package pricing

import (
	"sort"
	"time"

	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"
)

// DefaultRefundTiers is the policy offered to hosts who opt in to the standard
// schedule. Events without tiers never refund.
func DefaultRefundTiers() []model.RefundTier {
	return []model.RefundTier{
		{MinDaysBefore: 7, Percent: 100},
		{MinDaysBefore: 1, Percent: 50},
		{MinDaysBefore: 0, Percent: 0},
	}
}

// EvaluateRefund decides how much of charged is returned when a booking is
// refunded at now for an event starting at start.
func EvaluateRefund(policy model.RefundPolicy, start, now time.Time, hostInitiated bool, charged int64) model.RefundDecision {
	if charged < 0 {
		charged = 0
	}

	if hostInitiated {
		return decision(100, charged)
	}
	if len(policy.Tiers) == 0 {
		return model.RefundDecision{}
	}

	tiers := make([]model.RefundTier, len(policy.Tiers))
	copy(tiers, policy.Tiers)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinDaysBefore > tiers[j].MinDaysBefore
	})

	daysUntil := start.Sub(now).Hours() / 24

	for _, tier := range tiers {
		if tier.MinDaysBefore <= daysUntil {
			return decision(clampPercent(tier.Percent), charged)
		}
	}
	return model.RefundDecision{}
}

func decision(percent int, charged int64) model.RefundDecision {
	amount := divRoundHalfEven(charged*int64(percent), 100)
	return model.RefundDecision{
		Eligible: percent > 0 && amount > 0,
		Percent:  percent,
		Amount:   amount,
	}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ValidateRefundPolicy rejects tiers that cannot be evaluated.
func ValidateRefundPolicy(policy model.RefundPolicy) error {
	for _, tier := range policy.Tiers {
		if tier.Percent < 0 || tier.Percent > 100 {
			return apperrors.Validation("refund tier percent %d must be within 0..100", tier.Percent)
		}
	}
	return nil
}
