package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"KidSafe/models"
	"KidSafe/repositories/mocks"
)

func TestAppSettingsFallBackToDefaults(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	mockAppSettingRepo := new(mocks.AppSettingRepository)
	service := NewSettingsService(mockParentRepo, new(mocks.ChildRepository), mockAppSettingRepo)

	mockAppSettingRepo.On("FindByParentID", "parent-1").
		Return(models.AppSetting{}, gorm.ErrRecordNotFound)

	setting, err := service.AppSettings("parent-1")
	assert.NoError(t, err)
	assert.Equal(t, "system", setting.Theme)
	assert.Equal(t, "en", setting.Language)
	assert.True(t, setting.AutoLock)
	assert.False(t, setting.DataCollection)
}

func TestUpdateAppSettingsUpserts(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	mockAppSettingRepo := new(mocks.AppSettingRepository)
	service := NewSettingsService(mockParentRepo, new(mocks.ChildRepository), mockAppSettingRepo)

	mockAppSettingRepo.On("FindByParentID", "parent-1").
		Return(models.AppSetting{}, gorm.ErrRecordNotFound)
	mockAppSettingRepo.On("Save", mock.MatchedBy(func(s models.AppSetting) bool {
		return s.ParentID == "parent-1" && s.Theme == "dark" && s.ID != "" && !s.AutoUpdates
	})).Return(nil)

	setting, err := service.UpdateAppSettings("parent-1", models.AppSetting{
		Theme: "dark", AutoLock: true, BedtimeMode: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "dark", setting.Theme)
	mockAppSettingRepo.AssertExpectations(t)
}

func TestUpdateNotificationPreferencesStoresDocument(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	service := NewSettingsService(mockParentRepo, new(mocks.ChildRepository), new(mocks.AppSettingRepository))

	mockParentRepo.On("FindByID", "parent-1").
		Return(models.Parent{ID: "parent-1"}, nil)
	mockParentRepo.On("Save", mock.MatchedBy(func(parent models.Parent) bool {
		return parent.NotificationPreferences == `{"email":true,"push":false,"sms":false}`
	})).Return(nil)

	parent, err := service.UpdateNotificationPreferences("parent-1",
		models.NotificationPreferences{Email: true})
	assert.NoError(t, err)
	assert.Contains(t, parent.NotificationPreferences, `"email":true`)
	mockParentRepo.AssertExpectations(t)
}

func TestDeleteAccountRemovesParentAndChildren(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	mockChildRepo := new(mocks.ChildRepository)
	service := NewSettingsService(mockParentRepo, mockChildRepo, new(mocks.AppSettingRepository))

	emma := models.Child{ID: "child-1", ParentID: "parent-1"}
	liam := models.Child{ID: "child-2", ParentID: "parent-1"}
	mockChildRepo.On("FindByParentID", "parent-1").Return([]models.Child{emma, liam}, nil)
	mockChildRepo.On("Delete", emma).Return(nil)
	mockChildRepo.On("Delete", liam).Return(nil)
	mockParentRepo.On("DeleteByID", "parent-1").Return(nil)

	assert.NoError(t, service.DeleteAccount("parent-1"))
	mockChildRepo.AssertExpectations(t)
	mockParentRepo.AssertExpectations(t)
}

func TestUpdateDeviceToken(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	service := NewSettingsService(mockParentRepo, new(mocks.ChildRepository), new(mocks.AppSettingRepository))

	mockParentRepo.On("FindByID", "parent-1").
		Return(models.Parent{ID: "parent-1"}, nil)
	mockParentRepo.On("Save", mock.MatchedBy(func(parent models.Parent) bool {
		return parent.DeviceToken == "fcm-token"
	})).Return(nil)

	assert.NoError(t, service.UpdateDeviceToken("parent-1", "fcm-token"))
	mockParentRepo.AssertExpectations(t)
}
