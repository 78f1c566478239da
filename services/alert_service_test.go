package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"KidSafe/models"
	"KidSafe/repositories/mocks"
)

type stubPush struct {
	tokens []string
	err    error
}

func (s *stubPush) SendPush(token, title, body string, data map[string]string) error {
	s.tokens = append(s.tokens, token)
	return s.err
}

type stubEmail struct {
	recipients []string
	err        error
}

func (s *stubEmail) SendEmail(to, subject, body string) error {
	s.recipients = append(s.recipients, to)
	return s.err
}

type stubBroadcaster struct {
	alerts []models.Alert
}

func (s *stubBroadcaster) BroadcastAlert(parentID string, alert models.Alert) {
	s.alerts = append(s.alerts, alert)
}

type alertMocks struct {
	alerts   *mocks.AlertRepository
	settings *mocks.AlertSettingRepository
	parents  *mocks.ParentRepository
	push     *stubPush
	email    *stubEmail
	stream   *stubBroadcaster
}

func newAlertService() (*AlertService, alertMocks) {
	m := alertMocks{
		alerts:   new(mocks.AlertRepository),
		settings: new(mocks.AlertSettingRepository),
		parents:  new(mocks.ParentRepository),
		push:     &stubPush{},
		email:    &stubEmail{},
		stream:   &stubBroadcaster{},
	}
	service := NewAlertService(m.alerts, m.settings, m.parents,
		m.push, m.email, m.stream, zap.NewNop())
	return service, m
}

func TestSettingsMergeDefaults(t *testing.T) {
	service, m := newAlertService()

	stored := []models.AlertSetting{
		{ID: "s1", ParentID: "parent-1", AlertType: models.AlertTimeLimit, Enabled: false},
	}
	m.settings.On("FindByParentID", "parent-1").Return(stored, nil)

	settings, err := service.Settings("parent-1")
	assert.NoError(t, err)
	assert.Len(t, settings, 5)

	byType := make(map[string]models.AlertSetting)
	for _, setting := range settings {
		byType[setting.AlertType] = setting
	}
	// The stored row wins over the default.
	assert.False(t, byType[models.AlertTimeLimit].Enabled)
	// Unstored types come back as defaults.
	assert.True(t, byType[models.AlertInappropriateContent].Enabled)
	assert.True(t, byType[models.AlertInappropriateContent].EmailNotification)
	assert.False(t, byType[models.AlertLocation].PushNotification)
}

func TestRaiseFansOutPerSettings(t *testing.T) {
	service, m := newAlertService()

	setting := models.AlertSetting{
		ParentID: "parent-1", AlertType: models.AlertTimeLimit,
		Enabled: true, EmailNotification: true, PushNotification: true,
	}
	m.settings.On("FindByParentAndType", "parent-1", models.AlertTimeLimit).Return(setting, nil)
	m.alerts.On("Save", mock.MatchedBy(func(alert models.Alert) bool {
		return alert.ParentID == "parent-1" && alert.Urgent && alert.ID != ""
	})).Return(nil)
	m.parents.On("FindByID", "parent-1").
		Return(models.Parent{ID: "parent-1", Email: "jane@example.com", DeviceToken: "fcm-token"}, nil)

	alert, err := service.Raise("parent-1", "child-1", models.AlertTimeLimit, "Emma hit the limit", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, alert.ID)

	assert.Len(t, m.stream.alerts, 1)
	assert.Equal(t, []string{"jane@example.com"}, m.email.recipients)
	assert.Equal(t, []string{"fcm-token"}, m.push.tokens)
}

func TestRaiseDropsDisabledType(t *testing.T) {
	service, m := newAlertService()

	setting := models.AlertSetting{ParentID: "parent-1", AlertType: models.AlertBedtime, Enabled: false}
	m.settings.On("FindByParentAndType", "parent-1", models.AlertBedtime).Return(setting, nil)

	alert, err := service.Raise("parent-1", "child-1", models.AlertBedtime, "bedtime", false)
	assert.NoError(t, err)
	assert.Empty(t, alert.ID)
	m.alerts.AssertNotCalled(t, "Save", mock.Anything)
	assert.Empty(t, m.stream.alerts)
}

func TestRaiseSurvivesDeliveryFailures(t *testing.T) {
	service, m := newAlertService()
	m.email.err = errors.New("smtp down")
	m.push.err = errors.New("fcm down")

	m.settings.On("FindByParentAndType", "parent-1", models.AlertInappropriateContent).
		Return(models.AlertSetting{}, gorm.ErrRecordNotFound)
	m.alerts.On("Save", mock.Anything).Return(nil)
	m.parents.On("FindByID", "parent-1").
		Return(models.Parent{ID: "parent-1", Email: "jane@example.com", DeviceToken: "tok"}, nil)

	// Delivery failures never fail the write.
	alert, err := service.Raise("parent-1", "child-1", models.AlertInappropriateContent, "blocked site", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, alert.ID)
}

func TestMarkReadChecksOwnership(t *testing.T) {
	service, m := newAlertService()

	alert := models.Alert{ID: "a1", ParentID: "parent-1"}
	m.alerts.On("FindByID", "a1").Return(alert, nil)

	_, err := service.MarkRead("someone-else", "a1")
	assert.ErrorIs(t, err, ErrAlertNotFound)

	m.alerts.On("Save", mock.MatchedBy(func(a models.Alert) bool {
		return a.ID == "a1" && a.Read
	})).Return(nil)
	updated, err := service.MarkRead("parent-1", "a1")
	assert.NoError(t, err)
	assert.True(t, updated.Read)
}

func TestUpdateSettingUpserts(t *testing.T) {
	service, m := newAlertService()

	m.settings.On("FindByParentAndType", "parent-1", models.AlertLocation).
		Return(models.AlertSetting{}, gorm.ErrRecordNotFound)
	m.settings.On("Save", mock.MatchedBy(func(s models.AlertSetting) bool {
		return s.ParentID == "parent-1" && s.AlertType == models.AlertLocation &&
			s.Enabled && s.PushNotification && s.ID != ""
	})).Return(nil)

	setting, err := service.UpdateSetting("parent-1", models.AlertLocation, true, false, true)
	assert.NoError(t, err)
	assert.True(t, setting.PushNotification)
	m.settings.AssertExpectations(t)
}
