package app_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	checking := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking", InitialBalance: decimal.NewFromInt(1000), ClosingDay: 5})
	suite.Assert().Equal(models.AccountChecking, checking.Data.Kind)
	suite.Assert().Equal(0, checking.Data.ClosingDay, "only credit cards have statement days")
	suite.Assert().True(decimal.NewFromInt(1000).Equal(checking.Data.Balance))
	suite.Assert().Equal(fmt.Sprintf("%s/transactions?account=%s", baseURL, checking.Data.ID), checking.Data.Links.Transactions)

	card := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Visa", Kind: models.AccountCreditCard, ClosingDay: 25, DueDay: 5})
	suite.Assert().Equal(25, card.Data.ClosingDay)
	suite.Assert().Equal(5, card.Data.DueDay)

	tests := []struct {
		name    string
		account app.AccountEditable
	}{
		{"Duplicate name", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"}},
		{"No name", app.AccountEditable{BudgetID: budget.Data.ID}},
		{"Invalid kind", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Stocks", Kind: "brokerage"}},
		{"Credit card without days", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Amex", Kind: models.AccountCreditCard}},
		{"Credit card with invalid day", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Amex", Kind: models.AccountCreditCard, ClosingDay: 32, DueDay: 1}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestAccount(t, "ada", tt.account, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsBalance() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	account := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking", InitialBalance: decimal.NewFromInt(100)})

	for _, t := range []app.TransactionEditable{
		{Kind: models.KindIncome, Amount: decimal.NewFromInt(50)},
		{Amount: decimal.NewFromFloat(20.5)},
		{Amount: decimal.NewFromInt(1000), Status: models.StatusPending},
	} {
		t.BudgetID = budget.Data.ID
		t.AccountID = &account.Data.ID
		createTestTransaction(suite.T(), "ada", t)
	}

	r := test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response app.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(decimal.NewFromFloat(129.5).Equal(response.Data.Balance), response.Data.Balance.String())
}

func (suite *TestSuiteStandard) TestAccountsList() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Wallet", Kind: models.AccountCash})
	createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Visa", Kind: models.AccountCreditCard, ClosingDay: 1, DueDay: 10, Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Kind", "kind=cash", 1},
		{"Archived", "archived=true", 1},
		{"Search", "search=wal", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"/accounts?"+tt.query, "", as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list app.AccountListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/accounts", "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	account := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Card", Kind: models.AccountCreditCard, ClosingDay: 20, DueDay: 1})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{"dueDay": 28}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.AccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(20, updated.Data.ClosingDay)
	suite.Assert().Equal(28, updated.Data.DueDay)

	// Statement days are validated on the updated account
	r = test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{"closingDay": 0}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Turning the card into a checking account drops the statement days
	r = test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{"kind": "checking"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(0, updated.Data.ClosingDay)
	suite.Assert().Equal(0, updated.Data.DueDay)
}
