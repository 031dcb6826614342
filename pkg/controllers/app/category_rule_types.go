package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"gorm.io/gorm"
)

type CategoryRuleEditable struct {
	BudgetID   uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // ID of the budget the rule belongs to
	CategoryID uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category assigned by the rule
	Pattern    string    `json:"pattern" example:"*supermarket*" default:""`                // Glob pattern matched against the lower-cased description
	Priority   uint      `json:"priority" example:"10" default:"0"`                         // Rules with lower numbers are checked first
}

// model returns the database resource for the editable fields
func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		BudgetID:   editable.BudgetID,
		CategoryID: editable.CategoryID,
		Pattern:    editable.Pattern,
		Priority:   editable.Priority,
	}
}

type CategoryRuleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/app/category-rules/5d7e3a1c-8f2b-4e6a-9c0d-1b2a3c4d5e6f"` // The rule itself
	Category string `json:"category" example:"https://example.com/api/app/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category assigned by the rule
}

// CategoryRule is the API representation of a CategoryRule.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			BudgetID:   model.BudgetID,
			CategoryID: model.CategoryID,
			Pattern:    model.Pattern,
			Priority:   model.Priority,
		},
		Links: CategoryRuleLinks{
			Self:     fmt.Sprintf("%s/app/category-rules/%s", url, model.ID),
			Category: fmt.Sprintf("%s/app/categories/%s", url, model.CategoryID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of category rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created category rules
}

func (r *CategoryRuleCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, CategoryRuleResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the category rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryRuleQueryFilter struct {
	BudgetID   string `form:"budget"`                      // By budget ID
	CategoryID string `form:"category"`                    // By category ID
	Pattern    string `form:"pattern" filterField:"false"` // By pattern
	Offset     uint   `form:"offset" filterField:"false"`  // The offset of the first rule returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`   // Maximum number of rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() (models.CategoryRule, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.CategoryRule{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.CategoryRule{}, err
	}

	return models.CategoryRule{
		BudgetID:   budgetID,
		CategoryID: categoryID,
	}, nil
}

func (f CategoryRuleQueryFilter) apply(q *gorm.DB, _ []string) *gorm.DB {
	if f.Pattern != "" {
		q = q.Where("pattern LIKE ?", fmt.Sprintf("%%%s%%", f.Pattern))
	}

	return q
}
