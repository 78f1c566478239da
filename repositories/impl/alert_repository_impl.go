package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type AlertRepositoryImpl struct {
	DB *gorm.DB
}

func NewAlertRepository(db *gorm.DB) repositories.AlertRepository {
	return &AlertRepositoryImpl{DB: db}
}

func (r *AlertRepositoryImpl) FindByID(id string) (models.Alert, error) {
	var alert models.Alert
	if err := r.DB.Where("id = ?", id).First(&alert).Error; err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

func (r *AlertRepositoryImpl) FindByParentID(parentID string, unreadOnly bool) ([]models.Alert, error) {
	var alerts []models.Alert
	q := r.DB.Where("parent_id = ?", parentID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	if err := q.Order("created_at desc").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *AlertRepositoryImpl) Save(alert models.Alert) error {
	return r.DB.Save(&alert).Error
}

func (r *AlertRepositoryImpl) MarkAllRead(parentID string) error {
	return r.DB.Model(&models.Alert{}).
		Where("parent_id = ? AND read = ?", parentID, false).
		Update("read", true).Error
}
