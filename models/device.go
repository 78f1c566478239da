package models

import "time"

// Device type values.
const (
	DeviceTypePhone    = "phone"
	DeviceTypeTablet   = "tablet"
	DeviceTypeComputer = "computer"
)

// Device is a registered endpoint belonging to exactly one child. DeviceID is
// the opaque external identifier the child logs in with (paired with the
// child's PIN).
type Device struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	ChildID    string     `json:"child_id" gorm:"index;size:36;not null"`
	DeviceID   string     `json:"device_id" gorm:"uniqueIndex;not null"`
	DeviceName string     `json:"device_name" gorm:"not null"`
	DeviceType string     `json:"device_type" gorm:"not null"`
	OSType     string     `json:"os_type"`
	LastActive *time.Time `json:"last_active"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
