package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IncomeSourceEditable struct {
	BudgetID   uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                            // ID of the budget the income source belongs to
	MemberID   *uuid.UUID      `json:"memberId" example:"2a4c9c5e-44b0-4b38-9e58-c1fbd5c5b8a3"`                                            // ID of the member earning the income. Optional
	AccountID  *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                           // ID of the account the income is paid to. Optional
	CategoryID *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                          // ID of the category of the generated transactions. Optional
	Name       string          `json:"name" example:"Salary" default:""`                                                                   // Name of the income source
	Amount     decimal.Decimal `json:"amount" example:"3200" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount received every month
	DayOfMonth int             `json:"dayOfMonth" example:"28" minimum:"1" maximum:"31"`                                                   // Day of the month the income is received. Clamped to the last day of shorter months
	StartMonth types.Month     `json:"startMonth" example:"2026-01"`                                                                       // First month with income. Defaults to the current month
	EndMonth   *types.Month    `json:"endMonth" example:"2026-12"`                                                                         // Last month with income. Optional
	Active     *bool           `json:"active" example:"true" default:"true"`                                                               // Is the income source active? Only active sources generate pending transactions
}

// model returns the database resource for the editable fields
func (editable IncomeSourceEditable) model() models.IncomeSource {
	return models.IncomeSource{
		BudgetID:   editable.BudgetID,
		MemberID:   editable.MemberID,
		AccountID:  editable.AccountID,
		CategoryID: editable.CategoryID,
		Name:       editable.Name,
		Amount:     editable.Amount,
		DayOfMonth: editable.DayOfMonth,
		StartMonth: editable.StartMonth,
		EndMonth:   editable.EndMonth,
		Active:     editable.Active == nil || *editable.Active,
	}
}

type IncomeSourceLinks struct {
	Self         string `json:"self" example:"https://example.com/api/app/income-sources/7e8b0f0a-4c4e-4bd2-8a43-3e6c9a8f9d11"`                          // The income source itself
	Transactions string `json:"transactions" example:"https://example.com/api/app/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf&kind=income"` // Income transactions of the budget
}

// IncomeSource is the API representation of an IncomeSource.
type IncomeSource struct {
	models.DefaultModel
	IncomeSourceEditable
	Links IncomeSourceLinks `json:"links"`
}

func newIncomeSource(c *gin.Context, model models.IncomeSource) IncomeSource {
	url := c.GetString(string(models.DBContextURL))
	active := model.Active

	return IncomeSource{
		DefaultModel: model.DefaultModel,
		IncomeSourceEditable: IncomeSourceEditable{
			BudgetID:   model.BudgetID,
			MemberID:   model.MemberID,
			AccountID:  model.AccountID,
			CategoryID: model.CategoryID,
			Name:       model.Name,
			Amount:     model.Amount,
			DayOfMonth: model.DayOfMonth,
			StartMonth: model.StartMonth,
			EndMonth:   model.EndMonth,
			Active:     &active,
		},
		Links: IncomeSourceLinks{
			Self:         fmt.Sprintf("%s/app/income-sources/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/app/transactions?budget=%s&kind=income", url, model.BudgetID),
		},
	}
}

type IncomeSourceListResponse struct {
	Data       []IncomeSource `json:"data"`                                                          // List of income sources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type IncomeSourceCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeSourceResponse `json:"data"`                                                          // List of created income sources
}

func (r *IncomeSourceCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, IncomeSourceResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeSourceResponse struct {
	Data  *IncomeSource `json:"data"`                                                          // Data for the income source
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeSourceQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	MemberID string `form:"member"`                     // By member ID
	Name     string `form:"name" filterField:"false"`   // By name
	Active   bool   `form:"active"`                     // Is the income source active?
	Search   string `form:"search" filterField:"false"` // By string in name
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first income source returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of income sources to return. Defaults to 50.
}

func (f IncomeSourceQueryFilter) model() (models.IncomeSource, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.IncomeSource{}, err
	}

	memberID, err := httputil.UUIDFromString(f.MemberID)
	if err != nil {
		return models.IncomeSource{}, err
	}

	return models.IncomeSource{
		BudgetID: budgetID,
		MemberID: optionalID(memberID),
		Active:   f.Active,
	}, nil
}

func (f IncomeSourceQueryFilter) apply(q *gorm.DB, setFields []string) *gorm.DB {
	return nameFilters(q, setFields, f.Name, f.Search)
}
