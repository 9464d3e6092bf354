package model

type NotificationKind string

const (
	NotificationPaymentConfirmed NotificationKind = "payment_confirmed"
	NotificationPaymentRejected  NotificationKind = "payment_rejected"
	NotificationRefundIssued     NotificationKind = "refund_issued"
	NotificationWaitlistSpot     NotificationKind = "waitlist_spot_available"
	NotificationEventReminder    NotificationKind = "event_reminder"
)

// Notification is an outbound message handed to the notification queue after
// the state change that caused it has committed.
type Notification struct {
	Kind    NotificationKind  `json:"kind"`
	To      string            `json:"to"`
	Subject string            `json:"subject"`
	Data    map[string]string `json:"data,omitempty"`
}
