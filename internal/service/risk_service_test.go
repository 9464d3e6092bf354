package service_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/risk"
	"go-gin-event-commerce/internal/service"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskService_EventReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := service.NewRiskService(f.deps)

	host := f.user(t, "host")
	alice, bob, carol := f.user(t, "alice"), f.user(t, "bob"), f.user(t, "carol")

	past := f.event(t, host, eventOpts{capacity: 10, startIn: -10 * 24 * time.Hour})
	_, err := f.bookings.Join(ctx, alice, past.EventID)
	require.NoError(t, err)
	attended, err := f.bookings.Join(ctx, bob, past.EventID)
	require.NoError(t, err)
	_, err = f.bookings.CheckIn(ctx, host, attended.BookingID)
	require.NoError(t, err)

	upcoming := f.event(t, host, eventOpts{capacity: 10})
	for _, a := range []model.Actor{alice, bob, carol} {
		_, err := f.bookings.Join(ctx, a, upcoming.EventID)
		require.NoError(t, err)
	}
	// interest alone is not scored
	_, err = f.bookings.MarkInterested(ctx, f.user(t, "dave"), upcoming.EventID)
	require.NoError(t, err)

	report, err := svc.EventReport(ctx, host, upcoming.EventID)
	require.NoError(t, err)
	require.Len(t, report, 3)

	assert.Equal(t, "alice@example.com", report[0].Email)
	assert.Equal(t, 75, report[0].Score)
	assert.Equal(t, risk.LevelHigh, report[0].Level)
	assert.Equal(t, risk.History{NoShows: 1}, report[0].History)

	assert.Equal(t, "carol@example.com", report[1].Email)
	assert.Equal(t, 45, report[1].Score)
	assert.Equal(t, risk.LevelMedium, report[1].Level)

	assert.Equal(t, "bob@example.com", report[2].Email)
	assert.Equal(t, 25, report[2].Score)
	assert.Equal(t, risk.LevelLow, report[2].Level)

	_, err = svc.EventReport(ctx, alice, upcoming.EventID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
