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

type AccountEditable struct {
	BudgetID       uuid.UUID          `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                              // ID of the budget the account belongs to
	Name           string             `json:"name" example:"Checking" default:""`                                                                   // Name of the account
	Note           string             `json:"note" example:"Joint account at the local bank" default:""`                                            // A longer description of the account
	Kind           models.AccountKind `json:"kind" example:"credit_card" default:"checking" enums:"checking,savings,cash,credit_card"`              // Kind of the account
	InitialBalance decimal.Decimal    `json:"initialBalance" example:"1250.40" default:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Balance of the account before any transactions were recorded
	ClosingDay     int                `json:"closingDay" example:"25" default:"0" minimum:"0" maximum:"31"`                                         // Day of month the credit card statement closes. Only for credit cards
	DueDay         int                `json:"dueDay" example:"5" default:"0" minimum:"0" maximum:"31"`                                              // Day of month the credit card statement is due. Only for credit cards
	Archived       bool               `json:"archived" example:"false" default:"false"`                                                             // Is the account archived?
}

// model returns the database resource for the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		BudgetID:       editable.BudgetID,
		Name:           editable.Name,
		Note:           editable.Note,
		Kind:           editable.Kind,
		InitialBalance: editable.InitialBalance,
		ClosingDay:     editable.ClosingDay,
		DueDay:         editable.DueDay,
		Archived:       editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/app/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/app/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions of the account
}

// Account is the API representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Balance decimal.Decimal `json:"balance" example:"2735.17"` // Initial balance plus paid income minus paid expenses
	Links   AccountLinks    `json:"links"`
}

// newAccount returns the API representation of the account. The balance
// is calculated with models.DB.
func newAccount(c *gin.Context, model models.Account) (Account, error) {
	url := c.GetString(string(models.DBContextURL))

	balance, err := model.Balance(models.DB)
	if err != nil {
		return Account{}, err
	}

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			BudgetID:       model.BudgetID,
			Name:           model.Name,
			Note:           model.Note,
			Kind:           model.Kind,
			InitialBalance: model.InitialBalance,
			ClosingDay:     model.ClosingDay,
			DueDay:         model.DueDay,
			Archived:       model.Archived,
		},
		Balance: balance,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/app/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/app/transactions?account=%s", url, model.ID),
		},
	}, nil
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created accounts
}

func (r *AccountCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, AccountResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Kind     string `form:"kind"`                       // By kind
	Archived bool   `form:"archived"`                   // Is the account archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() (models.Account, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.Account{}, err
	}

	return models.Account{
		BudgetID: budgetID,
		Kind:     models.AccountKind(f.Kind),
		Archived: f.Archived,
	}, nil
}

func (f AccountQueryFilter) apply(q *gorm.DB, setFields []string) *gorm.DB {
	return stringFilters(models.DB, q, setFields, f.Name, f.Note, f.Search)
}
