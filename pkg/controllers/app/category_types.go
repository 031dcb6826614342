package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CategoryEditable struct {
	BudgetID     uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                    // ID of the budget the category belongs to
	Name         string          `json:"name" example:"Groceries" default:""`                                                                        // Name of the category
	Note         string          `json:"note" example:"Food and household supplies" default:""`                                                      // A longer description of the category
	Kind         models.Kind     `json:"kind" example:"expense" default:"expense" enums:"expense,income"`                                            // Is the category used for expenses or income?
	Color        string          `json:"color" example:"#4caf50" default:""`                                                                         // Color of the category in clients
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" example:"450" default:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Maximum amount to spend per month. 0 means no limit
	Archived     bool            `json:"archived" example:"false" default:"false"`                                                                   // Is the category archived?
}

// model returns the database resource for the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		BudgetID:     editable.BudgetID,
		Name:         editable.Name,
		Note:         editable.Note,
		Kind:         editable.Kind,
		Color:        editable.Color,
		MonthlyLimit: editable.MonthlyLimit,
		Archived:     editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/app/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/app/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions of the category
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			BudgetID:     model.BudgetID,
			Name:         model.Name,
			Note:         model.Note,
			Kind:         model.Kind,
			Color:        model.Color,
			MonthlyLimit: model.MonthlyLimit,
			Archived:     model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/app/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/app/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories
}

func (r *CategoryCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, CategoryResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Kind     string `form:"kind"`                       // By kind
	Archived bool   `form:"archived"`                   // Is the category archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.Category{}, err
	}

	return models.Category{
		BudgetID: budgetID,
		Kind:     models.Kind(f.Kind),
		Archived: f.Archived,
	}, nil
}

func (f CategoryQueryFilter) apply(q *gorm.DB, setFields []string) *gorm.DB {
	return stringFilters(models.DB, q, setFields, f.Name, f.Note, f.Search)
}
