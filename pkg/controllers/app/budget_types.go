package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Name     string `json:"name" example:"Our household" default:""`              // Name of the budget
	Note     string `json:"note" example:"All expenses of the family" default:""` // A longer description of the budget
	Currency string `json:"currency" example:"EUR" default:"USD"`                 // ISO 4217 code of the currency of the budget
	Archived bool   `json:"archived" example:"false" default:"false"`             // Is the budget archived?
}

// model returns the database resource for the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Archived: editable.Archived,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/app/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                     // The budget itself
	Month        string `json:"month" example:"https://example.com/api/app/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/months/YYYY-MM"`     // The month overview. Replace YYYY-MM with the month
	Members      string `json:"members" example:"https://example.com/api/app/members?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`           // Members of the budget
	Invites      string `json:"invites" example:"https://example.com/api/app/invites?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`           // Open invites to the budget
	Categories   string `json:"categories" example:"https://example.com/api/app/categories?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`     // Categories of the budget
	Accounts     string `json:"accounts" example:"https://example.com/api/app/accounts?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`         // Accounts of the budget
	Transactions string `json:"transactions" example:"https://example.com/api/app/transactions?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // Transactions of the budget
	Goals        string `json:"goals" example:"https://example.com/api/app/goals?budget=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`               // Savings goals of the budget
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	OwnerID string      `json:"ownerId" example:"f2dbf3e1-1e20-4a6b-8a5c-9f8e4b5dbd1a"` // ID of the user owning the budget
	Links   BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Archived: model.Archived,
		},
		OwnerID: model.OwnerID.String(),
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/app/budgets/%s", url, model.ID),
			Month:        fmt.Sprintf("%s/app/budgets/%s/months/YYYY-MM", url, model.ID),
			Members:      fmt.Sprintf("%s/app/members?budget=%s", url, model.ID),
			Invites:      fmt.Sprintf("%s/app/invites?budget=%s", url, model.ID),
			Categories:   fmt.Sprintf("%s/app/categories?budget=%s", url, model.ID),
			Accounts:     fmt.Sprintf("%s/app/accounts?budget=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/app/transactions?budget=%s", url, model.ID),
			Goals:        fmt.Sprintf("%s/app/goals?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (b *BudgetCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	b.Data = append(b.Data, BudgetResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By currency
	Archived bool   `form:"archived"`                   // Is the budget archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Currency: f.Currency,
		Archived: f.Archived,
	}
}

// MonthSummary is the overview of a budget for one month.
type MonthSummary struct {
	BudgetID        string            `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget
	Month           types.Month       `json:"month" example:"2026-03"`                                 // The month
	Income          decimal.Decimal   `json:"income" example:"4200"`                                   // Sum of all paid income
	Expenses        decimal.Decimal   `json:"expenses" example:"3180.55"`                              // Sum of all paid expenses
	PendingIncome   decimal.Decimal   `json:"pendingIncome" example:"0"`                               // Sum of all pending income
	PendingExpenses decimal.Decimal   `json:"pendingExpenses" example:"950"`                           // Sum of all pending expenses
	Net             decimal.Decimal   `json:"net" example:"1019.45"`                                   // Paid income minus paid expenses
	Categories      []CategorySummary `json:"categories"`                                              // Spending per category
	Pending         []Transaction     `json:"pending"`                                                 // Pending transactions, ordered by date
}

// CategorySummary is the spending of a category in a month.
type CategorySummary struct {
	Category  Category         `json:"category"`                  // The category
	Spent     decimal.Decimal  `json:"spent" example:"320.10"`    // Sum of paid transactions
	Pending   decimal.Decimal  `json:"pending" example:"80"`      // Sum of pending transactions
	Limit     *decimal.Decimal `json:"limit" example:"500"`       // The monthly limit, if set
	Remaining *decimal.Decimal `json:"remaining" example:"99.90"` // Limit minus spent and pending, if a limit is set
}

func newMonthSummary(c *gin.Context, model models.MonthSummary, budgetID string) MonthSummary {
	summary := MonthSummary{
		BudgetID:        budgetID,
		Month:           model.Month,
		Income:          model.Income,
		Expenses:        model.Expenses,
		PendingIncome:   model.PendingIncome,
		PendingExpenses: model.PendingExpenses,
		Net:             model.Net,
		Categories:      make([]CategorySummary, 0, len(model.Categories)),
		Pending:         make([]Transaction, 0, len(model.Pending)),
	}

	for _, cs := range model.Categories {
		s := CategorySummary{
			Category:  newCategory(c, cs.Category),
			Spent:     cs.Spent,
			Pending:   cs.Pending,
			Remaining: cs.Remaining,
		}

		if cs.Category.MonthlyLimit.IsPositive() {
			limit := cs.Category.MonthlyLimit
			s.Limit = &limit
		}

		summary.Categories = append(summary.Categories, s)
	}

	for _, t := range model.Pending {
		summary.Pending = append(summary.Pending, newTransaction(c, t))
	}

	return summary
}

type MonthSummaryResponse struct {
	Data  *MonthSummary `json:"data"`                                                          // Data for the month
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GenerateResult struct {
	Created int `json:"created" example:"4"` // Number of pending transactions that were created
}

type GenerateResponse struct {
	Data  *GenerateResult `json:"data"`                                                          // Result of the generation
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
