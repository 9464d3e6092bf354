package repository_test

import (
	"context"
	"testing"
	"time"

	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/repository"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - insert then update", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(pool)
		host := createTestUser(t, pool, "host")
		alice := createTestUser(t, pool, "alice")
		event := createTestEvent(t, pool, host.ID, 10, 72*time.Hour)

		b := createTestBooking(t, pool, alice.ID, event.ID, model.BookingStatusPendingPayment, model.GatewayPayment("cs_1"))
		assert.NotZero(t, b.ID)
		assert.NotEqual(t, uuid.Nil, b.BookingID)
		assert.Equal(t, model.BookingStatusPendingPayment, b.Status)
		require.NotNil(t, b.Payment)
		assert.Equal(t, "cs_1", b.Payment.Reference)
		assert.NotNil(t, b.PendingAt)

		b.Payment.PaymentIntentID = "pi_1"
		b.AmountCharged = 2100
		b.PlatformFee = 100
		b.MarkStatus(model.BookingStatusPaid, time.Now().UTC())

		saved, err := repo.Save(ctx, nil, b)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusPaid, saved.Status)
		assert.Equal(t, int64(2100), saved.AmountCharged)
		assert.Equal(t, "pi_1", saved.Payment.PaymentIntentID)
		assert.NotNil(t, saved.PaidAt)

		found, err := repo.FindByPaymentIntent(ctx, nil, "pi_1")
		require.NoError(t, err)
		assert.Equal(t, b.BookingID, found.BookingID)
	})

	t.Run("Failed - one booking per user and event", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(pool)
		host := createTestUser(t, pool, "host")
		alice := createTestUser(t, pool, "alice")
		event := createTestEvent(t, pool, host.ID, 10, 72*time.Hour)
		createTestBooking(t, pool, alice.ID, event.ID, model.BookingStatusInterested, nil)

		dup := &model.Booking{UserID: alice.ID, EventID: event.ID, Currency: "USD"}
		dup.MarkStatus(model.BookingStatusJoined, time.Now().UTC())
		_, err := repo.Save(ctx, nil, dup)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyProcessed)
	})

	t.Run("Failed - manual payment cannot carry an intent", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewBookingRepository(pool)
		host := createTestUser(t, pool, "host")
		alice := createTestUser(t, pool, "alice")
		event := createTestEvent(t, pool, host.ID, 10, 72*time.Hour)

		b := &model.Booking{
			UserID:   alice.ID,
			EventID:  event.ID,
			Currency: "USD",
			Payment:  &model.PaymentRef{Method: model.PaymentMethodManual, Reference: "BANK-1", PaymentIntentID: "pi_x"},
		}
		b.MarkStatus(model.BookingStatusPendingPayment, time.Now().UTC())
		_, err := repo.Save(ctx, nil, b)
		assert.Error(t, err)
	})
}

func TestBookingRepository_Find(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewBookingRepository(pool)
	host := createTestUser(t, pool, "host")
	alice := createTestUser(t, pool, "alice")
	event := createTestEvent(t, pool, host.ID, 10, 72*time.Hour)
	b := createTestBooking(t, pool, alice.ID, event.ID, model.BookingStatusJoined, nil)

	t.Run("Success", func(t *testing.T) {
		found, err := repo.FindByBookingID(ctx, b.BookingID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, found.ID)
		assert.Nil(t, found.Payment)

		tx := setupTestWithTransaction(t, pool)
		locked, err := repo.FindByUserAndEventWithLock(ctx, tx, alice.ID, event.ID)
		require.NoError(t, err)
		assert.Equal(t, b.BookingID, locked.BookingID)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByBookingID(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

		_, err = repo.FindByPaymentIntent(ctx, nil, "pi_missing")
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

func TestBookingRepository_CountHeldSeats(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewBookingRepository(pool)
	host := createTestUser(t, pool, "host")
	event := createTestEvent(t, pool, host.ID, 10, 72*time.Hour)

	statuses := []model.BookingStatus{
		model.BookingStatusInterested,
		model.BookingStatusPendingPayment,
		model.BookingStatusPaid,
		model.BookingStatusJoined,
		model.BookingStatusFailed,
		model.BookingStatusCancelled,
	}
	for i, s := range statuses {
		u := createTestUser(t, pool, "user"+string(rune('a'+i)))
		var payment *model.PaymentRef
		if s == model.BookingStatusPendingPayment || s == model.BookingStatusPaid {
			payment = model.GatewayPayment("cs_" + string(s))
		}
		createTestBooking(t, pool, u.ID, event.ID, s, payment)
	}

	held, err := repo.CountHeldSeats(ctx, nil, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, held)

	confirmed, err := repo.ListByEvent(ctx, event.ID, model.BookingStatusPaid, model.BookingStatusJoined)
	require.NoError(t, err)
	assert.Len(t, confirmed, 2)

	all, err := repo.ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, all, len(statuses))
}

func TestBookingRepository_HasConfirmedByEmail(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewBookingRepository(pool)
	host := createTestUser(t, pool, "host")
	alice := createTestUser(t, pool, "alice")
	bob := createTestUser(t, pool, "bob")
	event := createTestEvent(t, pool, host.ID, 10, 72*time.Hour)
	createTestBooking(t, pool, alice.ID, event.ID, model.BookingStatusJoined, nil)
	createTestBooking(t, pool, bob.ID, event.ID, model.BookingStatusInterested, nil)

	ok, err := repo.HasConfirmedByEmail(ctx, nil, event.ID, "ALICE@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasConfirmedByEmail(ctx, nil, event.ID, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookingRepository_AttendanceStats(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewBookingRepository(pool)
	host := createTestUser(t, pool, "host")
	alice := createTestUser(t, pool, "alice")
	bob := createTestUser(t, pool, "bob")

	past1 := createTestEvent(t, pool, host.ID, 10, -48*time.Hour)
	past2 := createTestEvent(t, pool, host.ID, 10, -24*time.Hour)
	upcoming := createTestEvent(t, pool, host.ID, 10, 48*time.Hour)

	createTestBooking(t, pool, alice.ID, past1.ID, model.BookingStatusJoined, nil)
	attended := createTestBooking(t, pool, alice.ID, past2.ID, model.BookingStatusJoined, nil)
	now := time.Now().UTC()
	attended.CheckedInAt = &now
	_, err := repo.Save(ctx, nil, attended)
	require.NoError(t, err)
	createTestBooking(t, pool, alice.ID, upcoming.ID, model.BookingStatusJoined, nil)
	createTestBooking(t, pool, bob.ID, past1.ID, model.BookingStatusCancelled, nil)

	stats, err := repo.AttendanceStats(ctx, []int{alice.ID, bob.ID}, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceStats{Attended: 1, NoShows: 1}, stats[alice.ID])
	_, ok := stats[bob.ID]
	assert.False(t, ok)

	empty, err := repo.AttendanceStats(ctx, nil, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
