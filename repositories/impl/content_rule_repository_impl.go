package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type ContentRuleRepositoryImpl struct {
	DB *gorm.DB
}

func NewContentRuleRepository(db *gorm.DB) repositories.ContentRuleRepository {
	return &ContentRuleRepositoryImpl{DB: db}
}

func (r *ContentRuleRepositoryImpl) FindByChildID(childID string) ([]models.ContentRule, error) {
	var rules []models.ContentRule
	if err := r.DB.Where("child_id = ?", childID).Order("created_at asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ContentRuleRepositoryImpl) FindURLRule(childID, url string) (models.ContentRule, error) {
	var rule models.ContentRule
	err := r.DB.Where("child_id = ? AND rule_type = ? AND url = ?", childID, models.RuleTypeURL, url).First(&rule).Error
	if err != nil {
		return models.ContentRule{}, err
	}
	return rule, nil
}

func (r *ContentRuleRepositoryImpl) FindCategoryRule(childID, category string) (models.ContentRule, error) {
	var rule models.ContentRule
	err := r.DB.Where("child_id = ? AND rule_type = ? AND category = ?", childID, models.RuleTypeCategory, category).First(&rule).Error
	if err != nil {
		return models.ContentRule{}, err
	}
	return rule, nil
}

func (r *ContentRuleRepositoryImpl) Save(rule models.ContentRule) error {
	return r.DB.Save(&rule).Error
}

func (r *ContentRuleRepositoryImpl) Delete(rule models.ContentRule) error {
	return r.DB.Delete(&rule).Error
}
