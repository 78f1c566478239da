package models

import "time"

// Known alert types. The column is free-form; these are the types the
// dashboard and the alert settings know about.
const (
	AlertInappropriateContent = "inappropriate_content"
	AlertTimeLimit            = "time_limit"
	AlertUnknownApp           = "unknown_app"
	AlertBedtime              = "bedtime"
	AlertLocation             = "location"
)

type Alert struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ParentID  string    `json:"parent_id" gorm:"index;size:36;not null"`
	ChildID   string    `json:"child_id" gorm:"index;size:36;not null"`
	Type      string    `json:"type" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Read      bool      `json:"read"`
	Urgent    bool      `json:"urgent"`
	CreatedAt time.Time `json:"created_at"`
}
