package repositories

import (
	"time"

	"KidSafe/models"
)

type UsageLogRepository interface {
	// FindInWindow returns logs whose start_time falls in [start, end).
	FindInWindow(childID string, start, end time.Time) ([]models.UsageLog, error)
	FindRecentByChildIDs(childIDs []string, limit int) ([]models.UsageLog, error)
	Create(log models.UsageLog) error
}
