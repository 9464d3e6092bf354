package model

import (
	"time"

	"github.com/google/uuid"
)

type WaitlistStatus string

const (
	WaitlistStatusWaiting   WaitlistStatus = "WAITING"
	WaitlistStatusNotified  WaitlistStatus = "NOTIFIED"
	WaitlistStatusConverted WaitlistStatus = "CONVERTED"
	WaitlistStatusExpired   WaitlistStatus = "EXPIRED"
)

type WaitlistEntry struct {
	ID                    int            `json:"-" db:"id"`
	EntryID               uuid.UUID      `json:"entry_id" db:"entry_id"`
	EventID               int            `json:"-" db:"event_id"`
	Email                 string         `json:"email" db:"email"`
	Name                  string         `json:"name" db:"name"`
	Position              int            `json:"position" db:"position"`
	Status                WaitlistStatus `json:"status" db:"status"`
	NotifiedAt            *time.Time     `json:"notified_at,omitempty" db:"notified_at"`
	NotificationExpiresAt *time.Time     `json:"notification_expires_at,omitempty" db:"notification_expires_at"`
	ConvertedAt           *time.Time     `json:"converted_at,omitempty" db:"converted_at"`
	CreatedAt             time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at" db:"updated_at"`
}

// WaitlistStatusView 排隊狀態查詢結果，Rank 僅在 WAITING 時有意義
type WaitlistStatusView struct {
	Entry *WaitlistEntry `json:"entry"`
	Rank  int            `json:"rank"`
}

type JoinWaitlistRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
