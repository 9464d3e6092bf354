// Package risk scores how likely an attendee is to miss an event. Scores are
// advisory and never change booking state.
package risk

import (
	"math"
	"time"

	"go-gin-event-commerce/internal/model"
)

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

const (
	baseScore = 25

	noHistoryAdjust    = 10
	historyWeight      = 50
	historyOffset      = -10
	paidAdjust         = -15
	pendingAdjust      = 5
	freeJoinAdjust     = 10
	sameDayAdjust      = 20
	veryEarlyAdjust    = 5
	veryEarlyThreshold = 60 * 24 * time.Hour

	lowMax    = 30
	mediumMax = 60
)

// History is an attendee's record on past events they were confirmed for.
type History struct {
	Attended int `json:"attended"`
	NoShows  int `json:"no_shows"`
}

func (h History) Total() int {
	return h.Attended + h.NoShows
}

type Input struct {
	History      History
	Status       model.BookingStatus
	RegisteredAt time.Time
	EventStart   time.Time
}

type Factor struct {
	Name   string `json:"name"`
	Impact int    `json:"impact"`
}

type Assessment struct {
	Score   int      `json:"score"`
	Level   Level    `json:"level"`
	Factors []Factor `json:"factors"`
}

func Score(in Input) Assessment {
	score := baseScore
	var factors []Factor

	add := func(name string, impact int) {
		if impact == 0 {
			return
		}
		score += impact
		factors = append(factors, Factor{Name: name, Impact: impact})
	}

	if total := in.History.Total(); total == 0 {
		add("no_attendance_history", noHistoryAdjust)
	} else {
		rate := float64(in.History.NoShows) / float64(total)
		add("historical_no_show_rate", int(math.Round(rate*historyWeight))+historyOffset)
	}

	switch in.Status {
	case model.BookingStatusPaid:
		add("paid", paidAdjust)
	case model.BookingStatusPendingPayment:
		add("payment_pending", pendingAdjust)
	case model.BookingStatusJoined:
		add("free_registration", freeJoinAdjust)
	}

	if !in.RegisteredAt.IsZero() && !in.EventStart.IsZero() {
		lead := in.EventStart.Sub(in.RegisteredAt)
		switch {
		case lead < 24*time.Hour:
			add("same_day_registration", sameDayAdjust)
		case lead > veryEarlyThreshold:
			add("very_early_registration", veryEarlyAdjust)
		}
	}

	score = clamp(score, 0, 100)
	return Assessment{Score: score, Level: levelFor(score), Factors: factors}
}

func levelFor(score int) Level {
	switch {
	case score <= lowMax:
		return LevelLow
	case score <= mediumMax:
		return LevelMedium
	}
	return LevelHigh
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
