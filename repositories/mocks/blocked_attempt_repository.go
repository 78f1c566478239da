package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type BlockedAttemptRepository struct {
	mock.Mock
}

func (m *BlockedAttemptRepository) FindByChildID(childID string, limit int) ([]models.BlockedAttempt, error) {
	args := m.Called(childID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlockedAttempt), args.Error(1)
}

func (m *BlockedAttemptRepository) Create(attempt models.BlockedAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}
