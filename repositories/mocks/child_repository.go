package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type ChildRepository struct {
	mock.Mock
}

func (m *ChildRepository) FindByID(id string) (models.Child, error) {
	args := m.Called(id)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) FindByParentID(parentID string) ([]models.Child, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Child), args.Error(1)
}

func (m *ChildRepository) Save(child models.Child) error {
	args := m.Called(child)
	return args.Error(0)
}

func (m *ChildRepository) Delete(child models.Child) error {
	args := m.Called(child)
	return args.Error(0)
}
