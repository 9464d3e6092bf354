package risk_test

import (
	"testing"
	"time"

	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/risk"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		in        risk.Input
		wantScore int
		wantLevel risk.Level
	}{
		{
			// 25 + 10 - 15
			name:      "paid with no history",
			in:        risk.Input{Status: model.BookingStatusPaid, RegisteredAt: start.Add(-10 * 24 * time.Hour), EventStart: start},
			wantScore: 20, wantLevel: risk.LevelLow,
		},
		{
			// 25 + (25 - 10) + 10 + 20
			name: "free same day with half no-shows",
			in: risk.Input{
				History: risk.History{Attended: 2, NoShows: 2}, Status: model.BookingStatusJoined,
				RegisteredAt: start.Add(-2 * time.Hour), EventStart: start,
			},
			wantScore: 70, wantLevel: risk.LevelHigh,
		},
		{
			// 25 - 10 - 15 = 0
			name: "reliable paid attendee",
			in: risk.Input{
				History: risk.History{Attended: 10}, Status: model.BookingStatusPaid,
				RegisteredAt: start.Add(-5 * 24 * time.Hour), EventStart: start,
			},
			wantScore: 0, wantLevel: risk.LevelLow,
		},
		{
			// 25 + 40 + 10 + 20 = 95
			name: "habitual no-show",
			in: risk.Input{
				History: risk.History{NoShows: 5}, Status: model.BookingStatusJoined,
				RegisteredAt: start.Add(-time.Hour), EventStart: start,
			},
			wantScore: 95, wantLevel: risk.LevelHigh,
		},
		{
			// 25 + 10 + 5 + 5
			name: "pending and very early",
			in: risk.Input{
				Status: model.BookingStatusPendingPayment, RegisteredAt: start.Add(-90 * 24 * time.Hour), EventStart: start,
			},
			wantScore: 45, wantLevel: risk.LevelMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := risk.Score(tt.in)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLevel, got.Level)
		})
	}
}

func TestScore_Clamped(t *testing.T) {
	for attended := 0; attended <= 5; attended++ {
		for noShows := 0; noShows <= 5; noShows++ {
			got := risk.Score(risk.Input{History: risk.History{Attended: attended, NoShows: noShows}, Status: model.BookingStatusJoined})
			assert.GreaterOrEqual(t, got.Score, 0)
			assert.LessOrEqual(t, got.Score, 100)
		}
	}
}

func TestScore_Boundaries(t *testing.T) {
	// 25 - 10 + 5
	assert.Equal(t, risk.LevelLow, risk.Score(risk.Input{History: risk.History{Attended: 4}, Status: model.BookingStatusPendingPayment}).Level)
	// 25 + 10 + 5
	assert.Equal(t, risk.LevelMedium, risk.Score(risk.Input{Status: model.BookingStatusPendingPayment}).Level)
	// 25 + 10 - 15 + 20 = 40, paid same day stays medium
	got := risk.Score(risk.Input{Status: model.BookingStatusPaid, RegisteredAt: time.Unix(0, 0), EventStart: time.Unix(3600, 0)})
	assert.Equal(t, 40, got.Score)
	assert.Len(t, got.Factors, 3)
}
