package models

import "time"

// ChildSession backs the server-issued child session token. The browser keeps
// the device/child payload locally, but every child-route request is checked
// against this row so sessions expire and can be revoked.
type ChildSession struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ChildID   string    `json:"child_id" gorm:"index;size:36;not null"`
	DeviceID  string    `json:"device_id" gorm:"size:36;not null"` // Device row ID
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *ChildSession) Valid(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
