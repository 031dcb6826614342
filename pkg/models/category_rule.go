package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to quick-added transactions whose
// description matches the glob pattern.
type CategoryRule struct {
	DefaultModel
	BudgetID   uuid.UUID `gorm:"type:uuid;uniqueIndex:category_rule_budget_pattern,where:deleted_at IS NULL"`
	Budget     Budget    `json:"-"`
	CategoryID uuid.UUID `gorm:"type:uuid"`
	Category   Category  `json:"-"`
	Pattern    string    `gorm:"uniqueIndex:category_rule_budget_pattern,where:deleted_at IS NULL"`
	Priority   uint
}

func (r *CategoryRule) BeforeSave(tx *gorm.DB) error {
	r.Pattern = strings.ToLower(strings.TrimSpace(r.Pattern))

	if r.Pattern == "" {
		return ErrPatternEmpty
	}

	return checkReferences(tx, r.BudgetID, reference{&Category{}, &r.CategoryID})
}

// MatchCategory returns the category ID of the first rule of the budget
// matching the description. Rules are checked by ascending priority,
// then by age.
func MatchCategory(db *gorm.DB, budgetID uuid.UUID, description string) (*uuid.UUID, error) {
	var rules []CategoryRule
	err := db.
		Where(&CategoryRule{BudgetID: budgetID}).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	description = strings.ToLower(strings.TrimSpace(description))
	for _, rule := range rules {
		if glob.Glob(rule.Pattern, description) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
