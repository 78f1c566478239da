package impl

import (
	"time"

	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type UsageLogRepositoryImpl struct {
	DB *gorm.DB
}

func NewUsageLogRepository(db *gorm.DB) repositories.UsageLogRepository {
	return &UsageLogRepositoryImpl{DB: db}
}

func (r *UsageLogRepositoryImpl) FindInWindow(childID string, start, end time.Time) ([]models.UsageLog, error) {
	var logs []models.UsageLog
	err := r.DB.
		Where("child_id = ? AND start_time >= ? AND start_time < ?", childID, start, end).
		Order("start_time asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *UsageLogRepositoryImpl) FindRecentByChildIDs(childIDs []string, limit int) ([]models.UsageLog, error) {
	var logs []models.UsageLog
	err := r.DB.
		Where("child_id IN ?", childIDs).
		Order("start_time desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *UsageLogRepositoryImpl) Create(log models.UsageLog) error {
	return r.DB.Create(&log).Error
}
