package repositories

import "KidSafe/models"

type ContentRuleRepository interface {
	FindByChildID(childID string) ([]models.ContentRule, error)
	FindURLRule(childID, url string) (models.ContentRule, error)
	FindCategoryRule(childID, category string) (models.ContentRule, error)
	Save(rule models.ContentRule) error
	Delete(rule models.ContentRule) error
}
