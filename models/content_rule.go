package models

import "time"

const (
	RuleTypeURL      = "url"
	RuleTypeCategory = "category"
)

// BlockableCategories is the fixed category set offered by the dashboard.
var BlockableCategories = []string{
	"Social Media",
	"Gaming",
	"Adult Content",
	"Gambling",
	"Violence",
}

// ContentRule is one explicit block decision: either a url rule or a category
// toggle. Absence of a category row means the category is allowed.
type ContentRule struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ChildID   string    `json:"child_id" gorm:"index;size:36;not null"`
	RuleType  string    `json:"rule_type" gorm:"not null"`
	URL       string    `json:"url,omitempty"`
	Category  string    `json:"category,omitempty"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsKnownCategory reports whether name is in the fixed category set.
func IsKnownCategory(name string) bool {
	for _, c := range BlockableCategories {
		if c == name {
			return true
		}
	}
	return false
}
