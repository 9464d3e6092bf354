package model

import "time"

type Reminder struct {
	ID        int        `db:"id"`
	BookingID int        `db:"booking_id"`
	SendAt    time.Time  `db:"send_at"`
	SentAt    *time.Time `db:"sent_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// DueReminder joins a reminder with what is needed to address it.
type DueReminder struct {
	Reminder
	Email     string
	EventName string
	StartTime time.Time
}
