package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory stand-in for the Postgres repositories. Transactions
// are serialized and roll back by restoring a snapshot.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	seq          int
	users        map[int]model.User
	events       map[int]model.Event
	bookings     map[int]model.Booking
	transactions map[int]model.Transaction
	waitlist     map[int]model.WaitlistEntry
	reminders    map[int]model.Reminder
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[int]model.User{},
		events:       map[int]model.Event{},
		bookings:     map[int]model.Booking{},
		transactions: map[int]model.Transaction{},
		waitlist:     map[int]model.WaitlistEntry{},
		reminders:    map[int]model.Reminder{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := &memStore{
		seq:          s.seq,
		users:        cloneMap(s.users),
		events:       cloneMap(s.events),
		bookings:     cloneMap(s.bookings),
		transactions: cloneMap(s.transactions),
		waitlist:     cloneMap(s.waitlist),
		reminders:    cloneMap(s.reminders),
	}
	s.mu.Unlock()

	if err := fn(nil); err != nil {
		s.mu.Lock()
		s.seq = snapshot.seq
		s.users = snapshot.users
		s.events = snapshot.events
		s.bookings = snapshot.bookings
		s.transactions = snapshot.transactions
		s.waitlist = snapshot.waitlist
		s.reminders = snapshot.reminders
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) nextID() int {
	s.seq++
	return s.seq
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// users

type memUsers struct{ *memStore }

func (r memUsers) Create(ctx context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	cp.ID = r.nextID()
	cp.Email = strings.ToLower(cp.Email)
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	r.users[cp.ID] = cp
	return &cp, nil
}

func (r memUsers) List(ctx context.Context) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.User{}
	for _, id := range sortedKeys(r.users) {
		u := r.users[id]
		out = append(out, &u)
	}
	return out, nil
}

func (r memUsers) FindByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r memUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// events

type memEvents struct{ *memStore }

func (r memEvents) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	cp.ID = r.nextID()
	if cp.EventID == uuid.Nil {
		cp.EventID = uuid.New()
	}
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	r.events[cp.ID] = cp
	return &cp, nil
}

func (r memEvents) List(ctx context.Context) ([]*model.Event, error) {
	return r.ListByHost(ctx, 0)
}

func (r memEvents) ListByHost(ctx context.Context, hostID int) ([]*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Event{}
	for _, id := range sortedKeys(r.events) {
		e := r.events[id]
		if hostID == 0 || e.HostID == hostID {
			out = append(out, &e)
		}
	}
	return out, nil
}

func (r memEvents) FindByID(ctx context.Context, id int) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return &e, nil
}

func (r memEvents) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.EventID == eventID {
			return &e, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (r memEvents) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	if params.Name != nil {
		e.Name = *params.Name
	}
	if params.Description != nil {
		e.Description = params.Description
	}
	if params.Capacity != nil {
		c := *params.Capacity
		e.Capacity = &c
	}
	if params.StartTime != nil {
		e.StartTime = *params.StartTime
	}
	r.events[id] = e
	return &e, nil
}

func (r memEvents) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error) {
	return r.FindByID(ctx, id)
}

func (r memEvents) NextWaitlistPosition(ctx context.Context, tx pgx.Tx, id int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return 0, apperrors.ErrEventNotFound
	}
	e.WaitlistSeq++
	r.events[id] = e
	return e.WaitlistSeq, nil
}

// bookings

type memBookings struct{ *memStore }

func (r memBookings) find(match func(b model.Booking) bool) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range sortedKeys(r.bookings) {
		b := r.bookings[id]
		if match(b) {
			return &b, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r memBookings) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*model.Booking, error) {
	return r.find(func(b model.Booking) bool { return b.BookingID == bookingID })
}

func (r memBookings) FindByBookingIDWithLock(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID) (*model.Booking, error) {
	return r.FindByBookingID(ctx, bookingID)
}

func (r memBookings) FindByUserAndEventWithLock(ctx context.Context, tx pgx.Tx, userID, eventID int) (*model.Booking, error) {
	return r.find(func(b model.Booking) bool { return b.UserID == userID && b.EventID == eventID })
}

func (r memBookings) FindByPaymentIntent(ctx context.Context, tx pgx.Tx, paymentIntentID string) (*model.Booking, error) {
	return r.find(func(b model.Booking) bool {
		return b.Payment.IsGateway() && b.Payment.PaymentIntentID == paymentIntentID
	})
}

func (r memBookings) ListByEvent(ctx context.Context, eventID int, statuses ...model.BookingStatus) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Booking{}
	for _, id := range sortedKeys(r.bookings) {
		b := r.bookings[id]
		if b.EventID != eventID {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if b.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, &b)
	}
	return out, nil
}

func (r memBookings) AttendanceStats(ctx context.Context, userIDs []int, before time.Time) (map[int]model.AttendanceStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[int]bool{}
	for _, id := range userIDs {
		wanted[id] = true
	}
	stats := map[int]model.AttendanceStats{}
	for _, b := range r.bookings {
		e := r.events[b.EventID]
		if !wanted[b.UserID] || !b.Status.IsConfirmed() || !e.StartTime.Before(before) {
			continue
		}
		s := stats[b.UserID]
		if b.CheckedInAt != nil {
			s.Attended++
		} else {
			s.NoShows++
		}
		stats[b.UserID] = s
	}
	return stats, nil
}

func (r memBookings) CountHeldSeats(ctx context.Context, tx pgx.Tx, eventID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, b := range r.bookings {
		if b.EventID == eventID && b.Status.HoldsSeat() {
			n++
		}
	}
	return n, nil
}

func (r memBookings) HasConfirmedByEmail(ctx context.Context, tx pgx.Tx, eventID int, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.EventID == eventID && b.Status.IsConfirmed() && r.users[b.UserID].Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

func (r memBookings) Save(ctx context.Context, tx pgx.Tx, b *model.Booking) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	if cp.Payment != nil {
		p := *cp.Payment
		cp.Payment = &p
	}
	if cp.ID == 0 {
		for _, existing := range r.bookings {
			if existing.UserID == cp.UserID && existing.EventID == cp.EventID {
				return nil, apperrors.ErrAlreadyProcessed
			}
		}
		cp.ID = r.nextID()
		if cp.BookingID == uuid.Nil {
			cp.BookingID = uuid.New()
		}
		cp.CreatedAt = time.Now().UTC()
	}
	cp.UpdatedAt = time.Now().UTC()
	r.bookings[cp.ID] = cp
	out := cp
	return &out, nil
}

// transactions

type memTransactions struct{ *memStore }

func (r memTransactions) Create(ctx context.Context, tx pgx.Tx, t *model.Transaction) (*model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.transactions {
		if existing.ExternalRef == t.ExternalRef {
			return nil, apperrors.ErrAlreadyProcessed
		}
	}
	cp := *t
	cp.ID = r.nextID()
	cp.TransactionID = uuid.New()
	cp.CreatedAt = time.Now().UTC()
	r.transactions[cp.ID] = cp
	return &cp, nil
}

func (r memTransactions) FindByExternalRef(ctx context.Context, tx pgx.Tx, externalRef string) (*model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.ExternalRef == externalRef {
			return &t, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (r memTransactions) FindByBookingID(ctx context.Context, tx pgx.Tx, bookingID int) (*model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *model.Transaction
	for _, id := range sortedKeys(r.transactions) {
		t := r.transactions[id]
		if t.BookingID == bookingID && t.Status != model.TransactionStatusReversed {
			found = &t
		}
	}
	if found == nil {
		return nil, apperrors.ErrTransactionNotFound
	}
	return found, nil
}

func (r memTransactions) UpdateRefund(ctx context.Context, tx pgx.Tx, t *model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[t.ID]; !ok {
		return apperrors.ErrTransactionNotFound
	}
	r.transactions[t.ID] = *t
	return nil
}

func (r memTransactions) byBooking(bookingID int) []model.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Transaction{}
	for _, id := range sortedKeys(r.transactions) {
		if t := r.transactions[id]; t.BookingID == bookingID {
			out = append(out, t)
		}
	}
	return out
}

// waitlist

type memWaitlist struct{ *memStore }

func (r memWaitlist) Create(ctx context.Context, tx pgx.Tx, e *model.WaitlistEntry) (*model.WaitlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.waitlist {
		if existing.EventID == e.EventID && (existing.Email == e.Email || existing.Position == e.Position) {
			return nil, apperrors.ErrAlreadyProcessed
		}
	}
	cp := *e
	cp.ID = r.nextID()
	cp.EntryID = uuid.New()
	cp.Email = strings.ToLower(cp.Email)
	cp.CreatedAt = time.Now().UTC()
	r.waitlist[cp.ID] = cp
	return &cp, nil
}

func (r memWaitlist) FindByEventAndEmail(ctx context.Context, tx pgx.Tx, eventID int, email string) (*model.WaitlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.waitlist {
		if e.EventID == eventID && e.Email == strings.ToLower(email) {
			return &e, nil
		}
	}
	return nil, apperrors.ErrWaitlistEntryNotFound
}

func (r memWaitlist) ListByEvent(ctx context.Context, eventID int) ([]*model.WaitlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.WaitlistEntry{}
	for _, e := range r.waitlist {
		if e.EventID == eventID {
			cp := e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r memWaitlist) CountWaitingBefore(ctx context.Context, eventID int, position int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.waitlist {
		if e.EventID == eventID && e.Status == model.WaitlistStatusWaiting && e.Position < position {
			n++
		}
	}
	return n, nil
}

func (r memWaitlist) CountNotified(ctx context.Context, tx pgx.Tx, eventID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.waitlist {
		if e.EventID == eventID && e.Status == model.WaitlistStatusNotified {
			n++
		}
	}
	return n, nil
}

func (r memWaitlist) Delete(ctx context.Context, tx pgx.Tx, eventID int, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.waitlist {
		if e.EventID == eventID && e.Email == strings.ToLower(email) {
			delete(r.waitlist, id)
			return nil
		}
	}
	return apperrors.ErrWaitlistEntryNotFound
}

func (r memWaitlist) NextWaiting(ctx context.Context, tx pgx.Tx, eventID int) (*model.WaitlistEntry, error) {
	entries, _ := r.ListByEvent(ctx, eventID)
	for _, e := range entries {
		if e.Status == model.WaitlistStatusWaiting {
			return e, nil
		}
	}
	return nil, apperrors.ErrWaitlistEntryNotFound
}

func (r memWaitlist) ListExpired(ctx context.Context, tx pgx.Tx, now time.Time) ([]*model.WaitlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.WaitlistEntry{}
	for _, id := range sortedKeys(r.waitlist) {
		e := r.waitlist[id]
		if e.Status == model.WaitlistStatusNotified && e.NotificationExpiresAt != nil && !e.NotificationExpiresAt.After(now) {
			out = append(out, &e)
		}
	}
	return out, nil
}

func (r memWaitlist) UpdateStatus(ctx context.Context, tx pgx.Tx, e *model.WaitlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.waitlist[e.ID]; !ok {
		return apperrors.ErrWaitlistEntryNotFound
	}
	r.waitlist[e.ID] = *e
	return nil
}

// reminders

type memReminders struct{ *memStore }

func (r memReminders) Schedule(ctx context.Context, tx pgx.Tx, bookingID int, sendAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rem := range r.reminders {
		if rem.BookingID == bookingID {
			return nil
		}
	}
	id := r.nextID()
	r.reminders[id] = model.Reminder{ID: id, BookingID: bookingID, SendAt: sendAt, CreatedAt: time.Now().UTC()}
	return nil
}

func (r memReminders) ClaimDue(ctx context.Context, tx pgx.Tx, now time.Time, limit int) ([]*model.DueReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.DueReminder{}
	for _, id := range sortedKeys(r.reminders) {
		rem := r.reminders[id]
		b := r.bookings[rem.BookingID]
		if rem.SentAt != nil || rem.SendAt.After(now) || !b.Status.IsConfirmed() {
			continue
		}
		e := r.events[b.EventID]
		out = append(out, &model.DueReminder{
			Reminder:  rem,
			Email:     r.users[b.UserID].Email,
			EventName: e.Name,
			StartTime: e.StartTime,
		})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r memReminders) MarkSent(ctx context.Context, tx pgx.Tx, id int, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rem := r.reminders[id]
	t := sentAt
	rem.SentAt = &t
	r.reminders[id] = rem
	return nil
}

func (r memReminders) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reminders)
}
