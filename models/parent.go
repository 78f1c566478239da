package models

import "time"

// NotificationPreferences is stored on the parent row as a JSON document.
type NotificationPreferences struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

type Parent struct {
	ID                      string    `json:"id" gorm:"primaryKey;size:36"`
	Email                   string    `json:"email" gorm:"uniqueIndex;not null"`
	Name                    string    `json:"name"`
	PasswordHash            string    `json:"-" gorm:"not null"`
	AvatarURL               string    `json:"avatar_url"`
	PhoneNumber             string    `json:"phone_number"`
	NotificationPreferences string    `json:"notification_preferences" gorm:"type:jsonb;default:'{}'"`
	DeviceToken             string    `json:"-"` // FCM token for push delivery
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}
