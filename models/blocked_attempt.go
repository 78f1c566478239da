package models

import "time"

// BlockedAttempt is an append-only record of a denied access attempt. The
// reason is derived from the matching content rule at recording time; there
// is no live filter in this service.
type BlockedAttempt struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ChildID   string    `json:"child_id" gorm:"index;size:36;not null"`
	DeviceID  string    `json:"device_id,omitempty" gorm:"size:36"`
	URL       string    `json:"url,omitempty"`
	AppName   string    `json:"app_name,omitempty"`
	Reason    string    `json:"reason" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
