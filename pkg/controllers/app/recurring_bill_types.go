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

type RecurringBillEditable struct {
	BudgetID   uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                            // ID of the budget the recurring bill belongs to
	AccountID  *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                           // ID of the account the bill is paid from. Optional
	CategoryID *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                          // ID of the category of the generated transactions. Optional
	Name       string          `json:"name" example:"Rent" default:""`                                                                     // Name of the recurring bill
	Amount     decimal.Decimal `json:"amount" example:"1150" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount due every month
	DueDay     int             `json:"dueDay" example:"1" minimum:"1" maximum:"31"`                                                        // Day of the month the bill is due. Clamped to the last day of shorter months
	StartMonth types.Month     `json:"startMonth" example:"2026-01"`                                                                       // First month the bill is due. Defaults to the current month
	EndMonth   *types.Month    `json:"endMonth" example:"2026-12"`                                                                         // Last month the bill is due. Optional
	Active     *bool           `json:"active" example:"true" default:"true"`                                                               // Is the recurring bill active? Only active bills generate pending transactions
}

// model returns the database resource for the editable fields
func (editable RecurringBillEditable) model() models.RecurringBill {
	return models.RecurringBill{
		BudgetID:   editable.BudgetID,
		AccountID:  editable.AccountID,
		CategoryID: editable.CategoryID,
		Name:       editable.Name,
		Amount:     editable.Amount,
		DueDay:     editable.DueDay,
		StartMonth: editable.StartMonth,
		EndMonth:   editable.EndMonth,
		Active:     editable.Active == nil || *editable.Active,
	}
}

type RecurringBillLinks struct {
	Self         string `json:"self" example:"https://example.com/api/app/recurring-bills/c1b6a2f5-93d7-4e0e-b5a4-6f8d2e9a0b37"`                          // The recurring bill itself
	Transactions string `json:"transactions" example:"https://example.com/api/app/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf&kind=expense"` // Expense transactions of the budget
}

// RecurringBill is the API representation of a RecurringBill.
type RecurringBill struct {
	models.DefaultModel
	RecurringBillEditable
	Links RecurringBillLinks `json:"links"`
}

func newRecurringBill(c *gin.Context, model models.RecurringBill) RecurringBill {
	url := c.GetString(string(models.DBContextURL))
	active := model.Active

	return RecurringBill{
		DefaultModel: model.DefaultModel,
		RecurringBillEditable: RecurringBillEditable{
			BudgetID:   model.BudgetID,
			AccountID:  model.AccountID,
			CategoryID: model.CategoryID,
			Name:       model.Name,
			Amount:     model.Amount,
			DueDay:     model.DueDay,
			StartMonth: model.StartMonth,
			EndMonth:   model.EndMonth,
			Active:     &active,
		},
		Links: RecurringBillLinks{
			Self:         fmt.Sprintf("%s/app/recurring-bills/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/app/transactions?budget=%s&kind=expense", url, model.BudgetID),
		},
	}
}

type RecurringBillListResponse struct {
	Data       []RecurringBill `json:"data"`                                                          // List of recurring bills
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type RecurringBillCreateResponse struct {
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecurringBillResponse `json:"data"`                                                          // List of created recurring bills
}

func (r *RecurringBillCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, RecurringBillResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecurringBillResponse struct {
	Data  *RecurringBill `json:"data"`                                                          // Data for the recurring bill
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecurringBillQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	Name     string `form:"name" filterField:"false"`   // By name
	Active   bool   `form:"active"`                     // Is the recurring bill active?
	Search   string `form:"search" filterField:"false"` // By string in name
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first recurring bill returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of recurring bills to return. Defaults to 50.
}

func (f RecurringBillQueryFilter) model() (models.RecurringBill, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.RecurringBill{}, err
	}

	return models.RecurringBill{
		BudgetID: budgetID,
		Active:   f.Active,
	}, nil
}

func (f RecurringBillQueryFilter) apply(q *gorm.DB, setFields []string) *gorm.DB {
	return nameFilters(q, setFields, f.Name, f.Search)
}
