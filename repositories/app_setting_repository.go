package repositories

import "KidSafe/models"

type AppSettingRepository interface {
	FindByParentID(parentID string) (models.AppSetting, error)
	Save(setting models.AppSetting) error
}
