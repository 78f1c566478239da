package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"KidSafe/models"
	"KidSafe/repositories"
)

var ErrAlertNotFound = errors.New("alert not found")

// PushSender delivers a push notification to a device token.
type PushSender interface {
	SendPush(token, title, body string, data map[string]string) error
}

// EmailSender delivers a plain-text email.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// AlertBroadcaster pushes a new alert to the parent's connected dashboard
// clients.
type AlertBroadcaster interface {
	BroadcastAlert(parentID string, alert models.Alert)
}

type AlertService struct {
	AlertRepo   repositories.AlertRepository
	SettingRepo repositories.AlertSettingRepository
	ParentRepo  repositories.ParentRepository
	Push        PushSender
	Email       EmailSender
	Broadcaster AlertBroadcaster
	Logger      *zap.Logger
}

func NewAlertService(
	alertRepo repositories.AlertRepository,
	settingRepo repositories.AlertSettingRepository,
	parentRepo repositories.ParentRepository,
	push PushSender,
	email EmailSender,
	broadcaster AlertBroadcaster,
	logger *zap.Logger,
) *AlertService {
	return &AlertService{
		AlertRepo:   alertRepo,
		SettingRepo: settingRepo,
		ParentRepo:  parentRepo,
		Push:        push,
		Email:       email,
		Broadcaster: broadcaster,
		Logger:      logger,
	}
}

func (s *AlertService) List(parentID string, unreadOnly bool) ([]models.Alert, error) {
	return s.AlertRepo.FindByParentID(parentID, unreadOnly)
}

// MarkRead flips a single alert. The alert must belong to the parent.
func (s *AlertService) MarkRead(parentID, alertID string) (models.Alert, error) {
	alert, err := s.AlertRepo.FindByID(alertID)
	if err != nil || alert.ParentID != parentID {
		return models.Alert{}, ErrAlertNotFound
	}
	if alert.Read {
		return alert, nil
	}
	alert.Read = true
	if err := s.AlertRepo.Save(alert); err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

func (s *AlertService) MarkAllRead(parentID string) error {
	return s.AlertRepo.MarkAllRead(parentID)
}

// Settings returns one entry per known alert type: the stored row when one
// exists, the default otherwise.
func (s *AlertService) Settings(parentID string) ([]models.AlertSetting, error) {
	stored, err := s.SettingRepo.FindByParentID(parentID)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]models.AlertSetting, len(stored))
	for _, setting := range stored {
		byType[setting.AlertType] = setting
	}

	settings := make([]models.AlertSetting, 0, 5)
	for _, def := range models.DefaultAlertSettings(parentID) {
		if setting, ok := byType[def.AlertType]; ok {
			settings = append(settings, setting)
		} else {
			settings = append(settings, def)
		}
	}
	return settings, nil
}

// UpdateSetting upserts the row for one alert type.
func (s *AlertService) UpdateSetting(parentID, alertType string, enabled, email, push bool) (models.AlertSetting, error) {
	setting, err := s.SettingRepo.FindByParentAndType(parentID, alertType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AlertSetting{}, err
		}
		setting = models.AlertSetting{
			ID:        uuid.NewString(),
			ParentID:  parentID,
			AlertType: alertType,
		}
	}

	setting.Enabled = enabled
	setting.EmailNotification = email
	setting.PushNotification = push
	if err := s.SettingRepo.Save(setting); err != nil {
		return models.AlertSetting{}, err
	}
	return setting, nil
}

// Raise stores a new alert and fans it out per the parent's settings. A
// disabled alert type is dropped entirely. Delivery failures are logged and
// never fail the triggering write.
func (s *AlertService) Raise(parentID, childID, alertType, message string, urgent bool) (models.Alert, error) {
	if enabled, err := s.typeEnabled(parentID, alertType); err == nil && !enabled {
		return models.Alert{}, nil
	}

	alert := models.Alert{
		ID:        uuid.NewString(),
		ParentID:  parentID,
		ChildID:   childID,
		Type:      alertType,
		Message:   message,
		Urgent:    urgent,
		CreatedAt: time.Now(),
	}
	if err := s.AlertRepo.Save(alert); err != nil {
		return models.Alert{}, err
	}

	s.deliver(alert)
	return alert, nil
}

func (s *AlertService) typeEnabled(parentID, alertType string) (bool, error) {
	setting, err := s.SettingRepo.FindByParentAndType(parentID, alertType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No row means the default state, and every default is enabled.
			return true, nil
		}
		return true, err
	}
	return setting.Enabled, nil
}

func (s *AlertService) deliver(alert models.Alert) {
	if s.Broadcaster != nil {
		s.Broadcaster.BroadcastAlert(alert.ParentID, alert)
	}

	setting, err := s.SettingRepo.FindByParentAndType(alert.ParentID, alert.Type)
	if err != nil {
		setting = defaultSettingFor(alert.ParentID, alert.Type)
	}

	if !setting.EmailNotification && !setting.PushNotification {
		return
	}

	parent, err := s.ParentRepo.FindByID(alert.ParentID)
	if err != nil {
		s.Logger.Warn("alert delivery skipped, parent lookup failed",
			zap.String("alert_id", alert.ID), zap.Error(err))
		return
	}

	if setting.EmailNotification && s.Email != nil && parent.Email != "" {
		if err := s.Email.SendEmail(parent.Email, "KidSafe alert", alert.Message); err != nil {
			s.Logger.Warn("alert email failed", zap.String("alert_id", alert.ID), zap.Error(err))
		}
	}

	if setting.PushNotification && s.Push != nil && parent.DeviceToken != "" {
		data := map[string]string{"alert_id": alert.ID, "type": alert.Type, "child_id": alert.ChildID}
		if err := s.Push.SendPush(parent.DeviceToken, "KidSafe", alert.Message, data); err != nil {
			s.Logger.Warn("alert push failed", zap.String("alert_id", alert.ID), zap.Error(err))
		}
	}
}

func defaultSettingFor(parentID, alertType string) models.AlertSetting {
	for _, def := range models.DefaultAlertSettings(parentID) {
		if def.AlertType == alertType {
			return def
		}
	}
	// Free-form types outside the known set get the quiet default.
	return models.AlertSetting{ParentID: parentID, AlertType: alertType, Enabled: true}
}
