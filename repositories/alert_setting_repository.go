package repositories

import "KidSafe/models"

type AlertSettingRepository interface {
	FindByParentID(parentID string) ([]models.AlertSetting, error)
	FindByParentAndType(parentID, alertType string) (models.AlertSetting, error)
	Save(setting models.AlertSetting) error
}
