package models

import "time"

// AppSetting is the per-parent application preference document.
type AppSetting struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	ParentID       string    `json:"parent_id" gorm:"uniqueIndex;size:36;not null"`
	Theme          string    `json:"theme" gorm:"default:system"`
	Language       string    `json:"language" gorm:"default:en"`
	AutoLock       bool      `json:"auto_lock" gorm:"default:true"`
	BedtimeMode    bool      `json:"bedtime_mode" gorm:"default:true"`
	DataCollection bool      `json:"data_collection" gorm:"default:false"`
	AutoUpdates    bool      `json:"auto_updates" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultAppSetting returns the settings assumed before the parent saves any.
func DefaultAppSetting(parentID string) AppSetting {
	return AppSetting{
		ParentID:       parentID,
		Theme:          "system",
		Language:       "en",
		AutoLock:       true,
		BedtimeMode:    true,
		DataCollection: false,
		AutoUpdates:    true,
	}
}
