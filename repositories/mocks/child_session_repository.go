package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type ChildSessionRepository struct {
	mock.Mock
}

func (m *ChildSessionRepository) FindByID(id string) (models.ChildSession, error) {
	args := m.Called(id)
	return args.Get(0).(models.ChildSession), args.Error(1)
}

func (m *ChildSessionRepository) Save(session models.ChildSession) error {
	args := m.Called(session)
	return args.Error(0)
}
