package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type ContentRuleRepository struct {
	mock.Mock
}

func (m *ContentRuleRepository) FindByChildID(childID string) ([]models.ContentRule, error) {
	args := m.Called(childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContentRule), args.Error(1)
}

func (m *ContentRuleRepository) FindURLRule(childID, url string) (models.ContentRule, error) {
	args := m.Called(childID, url)
	return args.Get(0).(models.ContentRule), args.Error(1)
}

func (m *ContentRuleRepository) FindCategoryRule(childID, category string) (models.ContentRule, error) {
	args := m.Called(childID, category)
	return args.Get(0).(models.ContentRule), args.Error(1)
}

func (m *ContentRuleRepository) Save(rule models.ContentRule) error {
	args := m.Called(rule)
	return args.Error(0)
}

func (m *ContentRuleRepository) Delete(rule models.ContentRule) error {
	args := m.Called(rule)
	return args.Error(0)
}
