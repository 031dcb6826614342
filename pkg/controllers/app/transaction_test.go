package app_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food"})

	transaction := createTestTransaction(suite.T(), "ada", app.TransactionEditable{
		BudgetID:    budget.Data.ID,
		CategoryID:  &category.Data.ID,
		Amount:      decimal.NewFromFloat(14.03),
		Date:        time.Date(2026, 3, 31, 22, 0, 0, 0, time.UTC),
		Description: " Groceries ",
	})

	suite.Assert().Equal(models.KindExpense, transaction.Data.Kind)
	suite.Assert().Equal(models.StatusPaid, transaction.Data.Status)
	suite.Assert().Equal("Groceries", transaction.Data.Description)
	suite.Assert().Equal("2026-03", transaction.Data.Month.String(), "the month defaults to the month of the date")
	suite.Assert().Equal(fmt.Sprintf("%s/transactions/%s", baseURL, transaction.Data.ID), transaction.Data.Links.Self)

	// The accounting month can differ from the date
	transaction = createTestTransaction(suite.T(), "ada", app.TransactionEditable{
		BudgetID: budget.Data.ID,
		Amount:   decimal.NewFromInt(50),
		Date:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Month:    month(2026, 4),
	})
	suite.Assert().Equal("2026-04", transaction.Data.Month.String())

	// Transactions without date happen now
	transaction = createTestTransaction(suite.T(), "ada", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(1)})
	suite.Assert().WithinDuration(time.Now(), transaction.Data.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	foreign := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Other"})
	foreignCategory := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: foreign.Data.ID, Name: "Food"})
	foreignAccount := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: foreign.Data.ID, Name: "Cash"})
	stranger := createTestBudget(suite.T(), "grace", app.BudgetEditable{})

	tests := []struct {
		name        string
		transaction app.TransactionEditable
		status      int
	}{
		{"Zero amount", app.TransactionEditable{BudgetID: budget.Data.ID}, http.StatusBadRequest},
		{"Negative amount", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest},
		{"Invalid kind", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(5), Kind: "transfer"}, http.StatusBadRequest},
		{"Invalid status", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(5), Status: "maybe"}, http.StatusBadRequest},
		{"Category of other budget", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(5), CategoryID: &foreignCategory.Data.ID}, http.StatusBadRequest},
		{"Account of other budget", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(5), AccountID: &foreignAccount.Data.ID}, http.StatusBadRequest},
		{"Budget of other user", app.TransactionEditable{BudgetID: stranger.Data.ID, Amount: decimal.NewFromInt(5)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestTransaction(t, "ada", tt.transaction, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsChildContributes() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)

	transaction := createTestTransaction(suite.T(), "kid", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(3), Description: "Ice cream"})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"amount": "3.50"}, as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(decimal.NewFromFloat(3.5).Equal(updated.Data.Amount), updated.Data.Amount.String())
	suite.Assert().Equal("Ice cream", updated.Data.Description)

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	other := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Other"})
	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food"})
	transaction := createTestTransaction(suite.T(), "ada", app.TransactionEditable{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(10), Status: models.StatusPending})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"status": "paid", "categoryId": category.Data.ID}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(models.StatusPaid, updated.Data.Status)
	suite.Require().NotNil(updated.Data.CategoryID)
	suite.Assert().Equal(category.Data.ID, *updated.Data.CategoryID)

	// Removing the category
	r = test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{"categoryId": nil}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Nil(updated.Data.CategoryID)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Other budget", map[string]any{"budgetId": other.Data.ID}},
		{"Zero amount", map[string]any{"amount": "0"}},
		{"Invalid status", map[string]any{"status": "sometimes"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body, as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilter() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	other := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Other"})
	account := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food"})

	for _, t := range []app.TransactionEditable{
		{BudgetID: budget.Data.ID, AccountID: &account.Data.ID, CategoryID: &category.Data.ID, Amount: decimal.NewFromInt(10), Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Description: "Bakery"},
		{BudgetID: budget.Data.ID, AccountID: &account.Data.ID, Amount: decimal.NewFromInt(20), Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Status: models.StatusPending},
		{BudgetID: budget.Data.ID, Kind: models.KindIncome, Amount: decimal.NewFromInt(30), Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{BudgetID: other.Data.ID, Amount: decimal.NewFromInt(40), Date: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), Description: "Bakery"},
	} {
		createTestTransaction(suite.T(), "ada", t)
	}

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Budget", fmt.Sprintf("budget=%s", budget.Data.ID), 3},
		{"Account", fmt.Sprintf("account=%s", account.Data.ID), 2},
		{"Category", fmt.Sprintf("category=%s", category.Data.ID), 1},
		{"Kind", "kind=income", 1},
		{"Status", "status=pending", 1},
		{"Month", "month=2026-03", 3},
		{"From date", "fromDate=2026-03-15T00:00:00Z", 3},
		{"Until date", "untilDate=2026-03-15T00:00:00Z", 2},
		{"Date range", "fromDate=2026-03-02T00:00:00Z&untilDate=2026-03-31T00:00:00Z", 2},
		{"Search", "search=bakery", 2},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"/transactions?"+tt.query, "", as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list app.TransactionListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/transactions?month=March", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Newest first
	r = test.Request(suite.T(), http.MethodGet, baseURL+"/transactions?budget="+budget.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)
	suite.Assert().True(decimal.NewFromInt(30).Equal(list.Data[0].Amount))
	suite.Assert().True(decimal.NewFromInt(10).Equal(list.Data[2].Amount))
}

func (suite *TestSuiteStandard) TestTransactionsInstallments() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	card := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Visa", Kind: models.AccountCreditCard, ClosingDay: 25, DueDay: 5})

	purchase := app.InstallmentPurchase{
		BudgetID:     budget.Data.ID,
		AccountID:    &card.Data.ID,
		Amount:       decimal.NewFromInt(100),
		Installments: 3,
		Date:         time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
		Description:  "Headphones",
	}

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/transactions/installments", purchase, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response app.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)

	// Bought after the closing day, the first installment is on the
	// February statement, paid in March
	expected := []struct {
		amount      string
		month       string
		date        time.Time
		description string
	}{
		{"33.34", "2026-02", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), "Headphones (1/3)"},
		{"33.33", "2026-03", time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC), "Headphones (2/3)"},
		{"33.33", "2026-04", time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC), "Headphones (3/3)"},
	}

	for i, e := range expected {
		installment := response.Data[i]
		suite.Assert().True(decimal.RequireFromString(e.amount).Equal(installment.Amount), "installment %d: %s", i+1, installment.Amount)
		suite.Assert().Equal(e.month, installment.Month.String(), "installment %d", i+1)
		suite.Assert().True(e.date.Equal(installment.Date), "installment %d: %s", i+1, installment.Date)
		suite.Assert().Equal(e.description, installment.Description)
		suite.Assert().Equal(i+1, installment.InstallmentNumber)
		suite.Assert().Equal(3, installment.InstallmentCount)
		suite.Assert().Equal(response.Data[0].InstallmentGroupID, installment.InstallmentGroupID)
	}

	tests := []struct {
		name     string
		purchase app.InstallmentPurchase
		status   int
	}{
		{"No installments", app.InstallmentPurchase{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
		{"Too many installments", app.InstallmentPurchase{BudgetID: budget.Data.ID, Amount: decimal.NewFromInt(10), Installments: 73}, http.StatusBadRequest},
		{"Amount too small", app.InstallmentPurchase{BudgetID: budget.Data.ID, Amount: decimal.RequireFromString("0.05"), Installments: 6}, http.StatusBadRequest},
		{"No amount", app.InstallmentPurchase{BudgetID: budget.Data.ID, Installments: 2}, http.StatusBadRequest},
		{"Unknown budget", app.InstallmentPurchase{BudgetID: createTestBudget(suite.T(), "grace", app.BudgetEditable{}).Data.ID, Amount: decimal.NewFromInt(10), Installments: 2}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, baseURL+"/transactions/installments", tt.purchase, as(t, "ada"))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
