package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type AlertSettingRepository struct {
	mock.Mock
}

func (m *AlertSettingRepository) FindByParentID(parentID string) ([]models.AlertSetting, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AlertSetting), args.Error(1)
}

func (m *AlertSettingRepository) FindByParentAndType(parentID, alertType string) (models.AlertSetting, error) {
	args := m.Called(parentID, alertType)
	return args.Get(0).(models.AlertSetting), args.Error(1)
}

func (m *AlertSettingRepository) Save(setting models.AlertSetting) error {
	args := m.Called(setting)
	return args.Error(0)
}
