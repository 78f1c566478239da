package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type AlertSettingRepositoryImpl struct {
	DB *gorm.DB
}

func NewAlertSettingRepository(db *gorm.DB) repositories.AlertSettingRepository {
	return &AlertSettingRepositoryImpl{DB: db}
}

func (r *AlertSettingRepositoryImpl) FindByParentID(parentID string) ([]models.AlertSetting, error) {
	var settings []models.AlertSetting
	if err := r.DB.Where("parent_id = ?", parentID).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *AlertSettingRepositoryImpl) FindByParentAndType(parentID, alertType string) (models.AlertSetting, error) {
	var setting models.AlertSetting
	err := r.DB.Where("parent_id = ? AND alert_type = ?", parentID, alertType).First(&setting).Error
	if err != nil {
		return models.AlertSetting{}, err
	}
	return setting, nil
}

func (r *AlertSettingRepositoryImpl) Save(setting models.AlertSetting) error {
	return r.DB.Save(&setting).Error
}
