package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"KidSafe/models"
	"KidSafe/repositories"
)

var (
	ErrRuleNotFound    = errors.New("rule not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// CategoryState is one category toggle as the dashboard shows it: every
// category of the fixed set, blocked or not, whether a row exists.
type CategoryState struct {
	Category string `json:"category"`
	Blocked  bool   `json:"blocked"`
}

// RuleService evaluates and maintains a child's content rules. URLs match
// exactly, case-sensitive as stored; absence of a rule means allowed.
type RuleService struct {
	RuleRepo repositories.ContentRuleRepository
}

func NewRuleService(ruleRepo repositories.ContentRuleRepository) *RuleService {
	return &RuleService{RuleRepo: ruleRepo}
}

// BlockedURLs lists the child's explicit site blocks.
func (s *RuleService) BlockedURLs(childID string) ([]models.ContentRule, error) {
	rules, err := s.RuleRepo.FindByChildID(childID)
	if err != nil {
		return nil, err
	}
	urls := make([]models.ContentRule, 0, len(rules))
	for _, rule := range rules {
		if rule.RuleType == models.RuleTypeURL && rule.IsBlocked {
			urls = append(urls, rule)
		}
	}
	return urls, nil
}

// CategoryStates returns the full fixed category set with each toggle's
// current state. Categories without a stored row are allowed.
func (s *RuleService) CategoryStates(childID string) ([]CategoryState, error) {
	rules, err := s.RuleRepo.FindByChildID(childID)
	if err != nil {
		return nil, err
	}

	stored := make(map[string]bool)
	for _, rule := range rules {
		if rule.RuleType == models.RuleTypeCategory {
			stored[rule.Category] = rule.IsBlocked
		}
	}

	states := make([]CategoryState, 0, len(models.BlockableCategories))
	for _, category := range models.BlockableCategories {
		states = append(states, CategoryState{Category: category, Blocked: stored[category]})
	}
	return states, nil
}

// AddURLRule blocks a site. Idempotent by URL string: adding an existing URL
// returns the stored rule unchanged.
func (s *RuleService) AddURLRule(childID, url string) (models.ContentRule, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return models.ContentRule{}, errors.New("url is required")
	}

	existing, err := s.RuleRepo.FindURLRule(childID, url)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ContentRule{}, err
	}

	rule := models.ContentRule{
		ID:        uuid.NewString(),
		ChildID:   childID,
		RuleType:  models.RuleTypeURL,
		URL:       url,
		IsBlocked: true,
	}
	if err := s.RuleRepo.Save(rule); err != nil {
		return models.ContentRule{}, err
	}
	return rule, nil
}

func (s *RuleService) RemoveURLRule(childID, url string) error {
	rule, err := s.RuleRepo.FindURLRule(childID, url)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRuleNotFound
		}
		return err
	}
	return s.RuleRepo.Delete(rule)
}

// ToggleCategory flips a category's block state with upsert semantics: the
// existing row is updated when present, one row is inserted otherwise. Two
// toggles round-trip to the original state with still exactly one row.
func (s *RuleService) ToggleCategory(childID, category string) (models.ContentRule, error) {
	if !models.IsKnownCategory(category) {
		return models.ContentRule{}, ErrUnknownCategory
	}

	rule, err := s.RuleRepo.FindCategoryRule(childID, category)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ContentRule{}, err
		}
		rule = models.ContentRule{
			ID:       uuid.NewString(),
			ChildID:  childID,
			RuleType: models.RuleTypeCategory,
			Category: category,
		}
	}

	rule.IsBlocked = !rule.IsBlocked
	if err := s.RuleRepo.Save(rule); err != nil {
		return models.ContentRule{}, err
	}
	return rule, nil
}

// IsURLBlocked: true only when an explicit url rule matches and is blocked.
func (s *RuleService) IsURLBlocked(childID, url string) (bool, error) {
	rule, err := s.RuleRepo.FindURLRule(childID, url)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return rule.IsBlocked, nil
}

// IsCategoryBlocked: the stored flag when a row exists, allowed otherwise.
func (s *RuleService) IsCategoryBlocked(childID, category string) (bool, error) {
	rule, err := s.RuleRepo.FindCategoryRule(childID, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return rule.IsBlocked, nil
}

// EvaluateAttempt derives the reason string recorded with a blocked attempt.
// The url rule wins over the category toggle. Matched reports whether any
// rule actually applied; attempts are recorded either way, matched ones also
// raise an alert.
func (s *RuleService) EvaluateAttempt(childID, url, category string) (matched bool, reason string, err error) {
	if url != "" {
		blocked, err := s.IsURLBlocked(childID, url)
		if err != nil {
			return false, "", err
		}
		if blocked {
			return true, fmt.Sprintf("Blocked website: %s", url), nil
		}
	}
	if category != "" {
		blocked, err := s.IsCategoryBlocked(childID, category)
		if err != nil {
			return false, "", err
		}
		if blocked {
			return true, fmt.Sprintf("Blocked category: %s", category), nil
		}
	}
	return false, "Blocked by device policy", nil
}
