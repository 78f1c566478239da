package models

import "time"

// UsageLog is an append-only record of one usage session reported by a
// device.
type UsageLog struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	ChildID   string     `json:"child_id" gorm:"index;size:36;not null"`
	DeviceID  string     `json:"device_id,omitempty" gorm:"size:36"`
	AppName   string     `json:"app_name" gorm:"not null"`
	URL       string     `json:"url,omitempty"`
	Category  string     `json:"category,omitempty"`
	Duration  int        `json:"duration"` // minutes
	StartTime time.Time  `json:"start_time" gorm:"index"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
