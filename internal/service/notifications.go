package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-gin-event-commerce/internal/model"
)

func formatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

func paymentConfirmedNotification(user *model.User, event *model.Event, b *model.Booking) *model.Notification {
	return &model.Notification{
		Kind:    model.NotificationPaymentConfirmed,
		To:      user.Email,
		Subject: "You're in: " + event.Name,
		Data: map[string]string{
			"name":       user.Name,
			"event_name": event.Name,
			"booking_id": b.BookingID.String(),
			"amount":     formatAmount(b.AmountCharged),
			"currency":   strings.ToUpper(b.Currency),
		},
	}
}

func paymentRejectedNotification(user *model.User, event *model.Event, reason string) *model.Notification {
	return &model.Notification{
		Kind:    model.NotificationPaymentRejected,
		To:      user.Email,
		Subject: "Payment not verified: " + event.Name,
		Data: map[string]string{
			"name":       user.Name,
			"event_name": event.Name,
			"reason":     reason,
		},
	}
}

func refundIssuedNotification(user *model.User, event *model.Event, b *model.Booking, percent int, reason string) *model.Notification {
	return &model.Notification{
		Kind:    model.NotificationRefundIssued,
		To:      user.Email,
		Subject: "Refund issued: " + event.Name,
		Data: map[string]string{
			"name":       user.Name,
			"event_name": event.Name,
			"amount":     formatAmount(b.AmountRefunded),
			"currency":   strings.ToUpper(b.Currency),
			"percent":    strconv.Itoa(percent),
			"reason":     reason,
		},
	}
}

func waitlistSpotNotification(entry *model.WaitlistEntry, event *model.Event) *model.Notification {
	expires := ""
	if entry.NotificationExpiresAt != nil {
		expires = entry.NotificationExpiresAt.Format(time.RFC1123)
	}
	return &model.Notification{
		Kind:    model.NotificationWaitlistSpot,
		To:      entry.Email,
		Subject: "A spot opened up: " + event.Name,
		Data: map[string]string{
			"name":       entry.Name,
			"event_name": event.Name,
			"expires_at": expires,
		},
	}
}

func reminderNotification(r *model.DueReminder) *model.Notification {
	return &model.Notification{
		Kind:    model.NotificationEventReminder,
		To:      r.Email,
		Subject: "Reminder: " + r.EventName,
		Data: map[string]string{
			"event_name": r.EventName,
			"start_time": r.StartTime.Format(time.RFC1123),
		},
	}
}
