package mocks

import (
	"time"

	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type UsageLogRepository struct {
	mock.Mock
}

func (m *UsageLogRepository) FindInWindow(childID string, start, end time.Time) ([]models.UsageLog, error) {
	args := m.Called(childID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UsageLog), args.Error(1)
}

func (m *UsageLogRepository) FindRecentByChildIDs(childIDs []string, limit int) ([]models.UsageLog, error) {
	args := m.Called(childIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UsageLog), args.Error(1)
}

func (m *UsageLogRepository) Create(log models.UsageLog) error {
	args := m.Called(log)
	return args.Error(0)
}
