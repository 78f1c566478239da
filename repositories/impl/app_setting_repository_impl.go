package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type AppSettingRepositoryImpl struct {
	DB *gorm.DB
}

func NewAppSettingRepository(db *gorm.DB) repositories.AppSettingRepository {
	return &AppSettingRepositoryImpl{DB: db}
}

func (r *AppSettingRepositoryImpl) FindByParentID(parentID string) (models.AppSetting, error) {
	var setting models.AppSetting
	if err := r.DB.Where("parent_id = ?", parentID).First(&setting).Error; err != nil {
		return models.AppSetting{}, err
	}
	return setting, nil
}

func (r *AppSettingRepositoryImpl) Save(setting models.AppSetting) error {
	return r.DB.Save(&setting).Error
}
