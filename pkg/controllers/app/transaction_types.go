package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionEditable struct {
	BudgetID    uuid.UUID                `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                             // ID of the budget the transaction belongs to
	AccountID   *uuid.UUID               `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                            // ID of the account. Optional
	CategoryID  *uuid.UUID               `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                           // ID of the category. Optional
	MemberID    *uuid.UUID               `json:"memberId" example:"2a4c9c5e-44b0-4b38-9e58-c1fbd5c5b8a3"`                                             // ID of the member the transaction is attributed to. Optional
	Kind        models.Kind              `json:"kind" example:"expense" default:"expense" enums:"expense,income"`                                     // Is the transaction an expense or income?
	Status      models.TransactionStatus `json:"status" example:"paid" default:"paid" enums:"paid,pending"`                                           // Has the money already moved?
	Amount      decimal.Decimal          `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction
	Date        time.Time                `json:"date" example:"2026-03-12T00:00:00Z"`                                                                 // Date of the transaction. Defaults to now
	Month       types.Month              `json:"month" example:"2026-03"`                                                                             // Month the transaction is accounted in. Defaults to the month of the date
	Description string                   `json:"description" example:"Weekly groceries" default:""`                                                   // A description of the transaction
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		BudgetID:    editable.BudgetID,
		AccountID:   editable.AccountID,
		CategoryID:  editable.CategoryID,
		MemberID:    editable.MemberID,
		Kind:        editable.Kind,
		Status:      editable.Status,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Month:       editable.Month,
		Description: editable.Description,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/app/transactions/d0ec9d4a-3a6e-4b7a-8b0e-5a9e2c1f7d3b"` // The transaction itself
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	RecurringBillID    *uuid.UUID       `json:"recurringBillId" example:"c1b6a2f5-93d7-4e0e-b5a4-6f8d2e9a0b37"`    // ID of the recurring bill the transaction was generated for
	IncomeSourceID     *uuid.UUID       `json:"incomeSourceId" example:"7e8b0f0a-4c4e-4bd2-8a43-3e6c9a8f9d11"`     // ID of the income source the transaction was generated for
	InstallmentGroupID *uuid.UUID       `json:"installmentGroupId" example:"9f3c2b1a-6d5e-4f7a-8b9c-0d1e2f3a4b5c"` // Shared by all installments of a purchase
	InstallmentNumber  int              `json:"installmentNumber" example:"2"`                                     // Number of the installment, starting at 1
	InstallmentCount   int              `json:"installmentCount" example:"12"`                                     // Number of installments of the purchase
	Links              TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			BudgetID:    model.BudgetID,
			AccountID:   model.AccountID,
			CategoryID:  model.CategoryID,
			MemberID:    model.MemberID,
			Kind:        model.Kind,
			Status:      model.Status,
			Amount:      model.Amount,
			Date:        model.Date,
			Month:       model.Month,
			Description: model.Description,
		},
		RecurringBillID:    model.RecurringBillID,
		IncomeSourceID:     model.IncomeSourceID,
		InstallmentGroupID: model.InstallmentGroupID,
		InstallmentNumber:  model.InstallmentNumber,
		InstallmentCount:   model.InstallmentCount,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/app/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (r *TransactionCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, TransactionResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	BudgetID   string    `form:"budget"`                        // By budget ID
	AccountID  string    `form:"account"`                       // By account ID
	CategoryID string    `form:"category"`                      // By category ID
	MemberID   string    `form:"member"`                        // By member ID
	Kind       string    `form:"kind"`                          // By kind
	Status     string    `form:"status"`                        // By status
	Month      string    `form:"month"`                         // By accounting month in YYYY-MM format
	FromDate   time.Time `form:"fromDate" filterField:"false"`  // From this date. Time is ignored.
	UntilDate  time.Time `form:"untilDate" filterField:"false"` // Until this date. Time is ignored.
	Search     string    `form:"search" filterField:"false"`    // By string in the description
	Offset     uint      `form:"offset" filterField:"false"`    // The offset of the first transaction returned. Defaults to 0.
	Limit      int       `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.Transaction{}, err
	}

	accountID, err := httputil.UUIDFromString(f.AccountID)
	if err != nil {
		return models.Transaction{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.Transaction{}, err
	}

	memberID, err := httputil.UUIDFromString(f.MemberID)
	if err != nil {
		return models.Transaction{}, err
	}

	var month types.Month
	if f.Month != "" {
		month, err = types.ParseMonth(f.Month)
		if err != nil {
			return models.Transaction{}, err
		}
	}

	return models.Transaction{
		BudgetID:   budgetID,
		AccountID:  optionalID(accountID),
		CategoryID: optionalID(categoryID),
		MemberID:   optionalID(memberID),
		Kind:       models.Kind(f.Kind),
		Status:     models.TransactionStatus(f.Status),
		Month:      month,
	}, nil
}

func (f TransactionQueryFilter) apply(q *gorm.DB, _ []string) *gorm.DB {
	if !f.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", time.Date(f.FromDate.Year(), f.FromDate.Month(), f.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !f.UntilDate.IsZero() {
		q = q.Where("transactions.date < date(?)", time.Date(f.UntilDate.Year(), f.UntilDate.Month(), f.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if f.Search != "" {
		q = q.Where("description LIKE ?", fmt.Sprintf("%%%s%%", f.Search))
	}

	return q
}

// InstallmentPurchase is a purchase paid in installments.
type InstallmentPurchase struct {
	BudgetID     uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`      // ID of the budget
	AccountID    *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`     // ID of the account. For credit cards, installments follow the statement dates
	CategoryID   *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`    // ID of the category. Optional
	MemberID     *uuid.UUID      `json:"memberId" example:"2a4c9c5e-44b0-4b38-9e58-c1fbd5c5b8a3"`      // ID of the member. Optional
	Amount       decimal.Decimal `json:"amount" example:"1200" minimum:"0.00000001" multipleOf:"0.01"` // Total amount of the purchase
	Installments int             `json:"installments" example:"12" minimum:"1" maximum:"72"`           // Number of installments
	Date         time.Time       `json:"date" example:"2026-03-20T00:00:00Z"`                          // Date of the purchase. Defaults to now
	Description  string          `json:"description" example:"Laptop" default:""`                      // Description of the purchase. The installment number is appended
}

type InstallmentResponse struct {
	Data  []Transaction `json:"data"`                                                                // The installments, first installment first
	Error *string       `json:"error" example:"the number of installments must be between 1 and 72"` // The error, if any occurred
}
