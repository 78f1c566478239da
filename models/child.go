package models

import "time"

// Child status values.
const (
	StatusActive     = "active"
	StatusOffline    = "offline"
	StatusRestricted = "restricted"
	StatusLocked     = "locked"
)

type Child struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	ParentID       string     `json:"parent_id" gorm:"index;size:36;not null"`
	Name           string     `json:"name" gorm:"not null"`
	Age            int        `json:"age,omitempty"`
	AvatarURL      string     `json:"avatar_url"`
	PIN            string     `json:"-" gorm:"column:pin"`
	DailyLimit     int        `json:"daily_limit" gorm:"default:180"` // minutes
	TimeUsed       int        `json:"time_used" gorm:"default:0"`    // minutes, today
	Status         string     `json:"status" gorm:"default:active"`
	LastActive     *time.Time `json:"last_active"`
	BedtimeStart   string     `json:"bedtime_start" gorm:"size:5"` // "HH:MM"
	BedtimeEnd     string     `json:"bedtime_end" gorm:"size:5"`
	BedtimeEnabled bool       `json:"bedtime_enabled"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TimeRemaining is never negative, whatever time_used says.
func (c *Child) TimeRemaining() int {
	remaining := c.DailyLimit - c.TimeUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PercentUsed reports time_used as a share of the daily limit, clamped to
// [0,100]. A limit of zero means "no limit display" and yields 0.
func (c *Child) PercentUsed() float64 {
	if c.DailyLimit <= 0 {
		return 0
	}
	pct := float64(c.TimeUsed) / float64(c.DailyLimit) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
