package models

import "time"

// AlertSetting is one row per alert type per parent. Rows are created lazily;
// DefaultAlertSettings defines the state assumed when a row is absent.
type AlertSetting struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	ParentID          string    `json:"parent_id" gorm:"index:idx_alert_settings_parent_type,unique;size:36;not null"`
	AlertType         string    `json:"alert_type" gorm:"index:idx_alert_settings_parent_type,unique;not null"`
	Enabled           bool      `json:"enabled"`
	EmailNotification bool      `json:"email_notification"`
	PushNotification  bool      `json:"push_notification"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultAlertSettings returns the assumed settings for a parent with no
// stored rows: everything enabled, email only for inappropriate content,
// push for everything except location.
func DefaultAlertSettings(parentID string) []AlertSetting {
	return []AlertSetting{
		{ParentID: parentID, AlertType: AlertInappropriateContent, Enabled: true, EmailNotification: true, PushNotification: true},
		{ParentID: parentID, AlertType: AlertTimeLimit, Enabled: true, EmailNotification: false, PushNotification: true},
		{ParentID: parentID, AlertType: AlertUnknownApp, Enabled: true, EmailNotification: false, PushNotification: true},
		{ParentID: parentID, AlertType: AlertBedtime, Enabled: true, EmailNotification: false, PushNotification: true},
		{ParentID: parentID, AlertType: AlertLocation, Enabled: true, EmailNotification: false, PushNotification: false},
	}
}
