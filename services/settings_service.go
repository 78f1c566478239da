package services

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"KidSafe/models"
	"KidSafe/repositories"
)

type SettingsService struct {
	ParentRepo     repositories.ParentRepository
	ChildRepo      repositories.ChildRepository
	AppSettingRepo repositories.AppSettingRepository
}

func NewSettingsService(
	parentRepo repositories.ParentRepository,
	childRepo repositories.ChildRepository,
	appSettingRepo repositories.AppSettingRepository,
) *SettingsService {
	return &SettingsService{ParentRepo: parentRepo, ChildRepo: childRepo, AppSettingRepo: appSettingRepo}
}

// AppSettings returns the stored settings or the defaults when the parent
// never saved any.
func (s *SettingsService) AppSettings(parentID string) (models.AppSetting, error) {
	setting, err := s.AppSettingRepo.FindByParentID(parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultAppSetting(parentID), nil
		}
		return models.AppSetting{}, err
	}
	return setting, nil
}

// UpdateAppSettings upserts the parent's settings row.
func (s *SettingsService) UpdateAppSettings(parentID string, update models.AppSetting) (models.AppSetting, error) {
	setting, err := s.AppSettingRepo.FindByParentID(parentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AppSetting{}, err
		}
		setting = models.DefaultAppSetting(parentID)
		setting.ID = uuid.NewString()
	}

	if update.Theme != "" {
		setting.Theme = update.Theme
	}
	if update.Language != "" {
		setting.Language = update.Language
	}
	setting.AutoLock = update.AutoLock
	setting.BedtimeMode = update.BedtimeMode
	setting.DataCollection = update.DataCollection
	setting.AutoUpdates = update.AutoUpdates

	if err := s.AppSettingRepo.Save(setting); err != nil {
		return models.AppSetting{}, err
	}
	return setting, nil
}

// UpdateProfile changes the parent's account fields.
func (s *SettingsService) UpdateProfile(parentID, name, avatarURL, phoneNumber string) (models.Parent, error) {
	parent, err := s.ParentRepo.FindByID(parentID)
	if err != nil {
		return models.Parent{}, err
	}

	if name != "" {
		parent.Name = name
	}
	if avatarURL != "" {
		parent.AvatarURL = avatarURL
	}
	if phoneNumber != "" {
		parent.PhoneNumber = phoneNumber
	}

	if err := s.ParentRepo.Save(parent); err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

// UpdateNotificationPreferences replaces the preference document.
func (s *SettingsService) UpdateNotificationPreferences(parentID string, prefs models.NotificationPreferences) (models.Parent, error) {
	parent, err := s.ParentRepo.FindByID(parentID)
	if err != nil {
		return models.Parent{}, err
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return models.Parent{}, err
	}
	parent.NotificationPreferences = string(raw)

	if err := s.ParentRepo.Save(parent); err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

// DeleteAccount removes the parent account and every child profile under it.
func (s *SettingsService) DeleteAccount(parentID string) error {
	children, err := s.ChildRepo.FindByParentID(parentID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.ChildRepo.Delete(child); err != nil {
			return err
		}
	}
	return s.ParentRepo.DeleteByID(parentID)
}

// UpdateDeviceToken stores the parent's FCM token for push delivery.
func (s *SettingsService) UpdateDeviceToken(parentID, token string) error {
	parent, err := s.ParentRepo.FindByID(parentID)
	if err != nil {
		return err
	}
	parent.DeviceToken = token
	return s.ParentRepo.Save(parent)
}
