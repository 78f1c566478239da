package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type AppSettingRepository struct {
	mock.Mock
}

func (m *AppSettingRepository) FindByParentID(parentID string) (models.AppSetting, error) {
	args := m.Called(parentID)
	return args.Get(0).(models.AppSetting), args.Error(1)
}

func (m *AppSettingRepository) Save(setting models.AppSetting) error {
	args := m.Called(setting)
	return args.Error(0)
}
