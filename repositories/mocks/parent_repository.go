package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type ParentRepository struct {
	mock.Mock
}

func (m *ParentRepository) FindByID(id string) (models.Parent, error) {
	args := m.Called(id)
	return args.Get(0).(models.Parent), args.Error(1)
}

func (m *ParentRepository) FindByEmail(email string) (models.Parent, error) {
	args := m.Called(email)
	return args.Get(0).(models.Parent), args.Error(1)
}

func (m *ParentRepository) CountByEmail(email string, count *int64) error {
	args := m.Called(email, count)
	return args.Error(0)
}

func (m *ParentRepository) Save(parent models.Parent) error {
	args := m.Called(parent)
	return args.Error(0)
}

func (m *ParentRepository) DeleteByID(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
