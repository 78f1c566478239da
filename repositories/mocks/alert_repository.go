package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type AlertRepository struct {
	mock.Mock
}

func (m *AlertRepository) FindByID(id string) (models.Alert, error) {
	args := m.Called(id)
	return args.Get(0).(models.Alert), args.Error(1)
}

func (m *AlertRepository) FindByParentID(parentID string, unreadOnly bool) ([]models.Alert, error) {
	args := m.Called(parentID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *AlertRepository) Save(alert models.Alert) error {
	args := m.Called(alert)
	return args.Error(0)
}

func (m *AlertRepository) MarkAllRead(parentID string) error {
	args := m.Called(parentID)
	return args.Error(0)
}
