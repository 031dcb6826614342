package app_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomeSourcesCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	foreign := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Other"})
	foreignMember := createTestMember(suite.T(), "ada", app.MemberEditable{BudgetID: foreign.Data.ID, Name: "Tim"})

	source := createTestIncomeSource(suite.T(), "ada", app.IncomeSourceEditable{
		BudgetID:   budget.Data.ID,
		Name:       "Salary",
		Amount:     decimal.NewFromInt(3200),
		DayOfMonth: 28,
		StartMonth: month(2026, 1),
	})
	suite.Require().NotNil(source.Data.Active)
	suite.Assert().True(*source.Data.Active, "income sources are active by default")
	suite.Assert().Equal(fmt.Sprintf("%s/income-sources/%s", baseURL, source.Data.ID), source.Data.Links.Self)

	end := month(2025, 12)
	inactive := false
	tests := []struct {
		name   string
		source app.IncomeSourceEditable
		status int
	}{
		{"Duplicate name", app.IncomeSourceEditable{BudgetID: budget.Data.ID, Name: "Salary", Amount: decimal.NewFromInt(1), DayOfMonth: 1}, http.StatusBadRequest},
		{"No amount", app.IncomeSourceEditable{BudgetID: budget.Data.ID, Name: "Rent income", DayOfMonth: 1}, http.StatusBadRequest},
		{"Invalid day", app.IncomeSourceEditable{BudgetID: budget.Data.ID, Name: "Rent income", Amount: decimal.NewFromInt(1), DayOfMonth: 32}, http.StatusBadRequest},
		{"End before start", app.IncomeSourceEditable{BudgetID: budget.Data.ID, Name: "Rent income", Amount: decimal.NewFromInt(1), DayOfMonth: 1, StartMonth: month(2026, 1), EndMonth: &end}, http.StatusBadRequest},
		{"Member of other budget", app.IncomeSourceEditable{BudgetID: budget.Data.ID, MemberID: &foreignMember.Data.ID, Name: "Pocket money", Amount: decimal.NewFromInt(1), DayOfMonth: 1}, http.StatusBadRequest},
		{"Inactive", app.IncomeSourceEditable{BudgetID: budget.Data.ID, Name: "Side job", Amount: decimal.NewFromInt(1), DayOfMonth: 1, Active: &inactive}, http.StatusCreated},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestIncomeSource(t, "ada", tt.source, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/income-sources?active=false", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.IncomeSourceListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("Side job", list.Data[0].Name)
}

func (suite *TestSuiteStandard) TestIncomeSourcesPermissions() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)

	createTestIncomeSource(suite.T(), "kid", app.IncomeSourceEditable{BudgetID: budget.Data.ID, Name: "Allowance", Amount: decimal.NewFromInt(10), DayOfMonth: 1}, http.StatusForbidden)

	source := createTestIncomeSource(suite.T(), "ada", app.IncomeSourceEditable{BudgetID: budget.Data.ID, Name: "Allowance", Amount: decimal.NewFromInt(10), DayOfMonth: 1})

	r := test.Request(suite.T(), http.MethodGet, source.Data.Links.Self, "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, source.Data.Links.Self, "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestRecurringBillsLifecycle() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	bill := createTestRecurringBill(suite.T(), "ada", app.RecurringBillEditable{
		BudgetID:   budget.Data.ID,
		Name:       "Internet",
		Amount:     decimal.NewFromFloat(39.99),
		DueDay:     15,
		StartMonth: month(2026, 1),
	})
	suite.Require().NotNil(bill.Data.Active)
	suite.Assert().True(*bill.Data.Active)

	createTestRecurringBill(suite.T(), "ada", app.RecurringBillEditable{BudgetID: budget.Data.ID, Name: "Internet", Amount: decimal.NewFromInt(1), DueDay: 1}, http.StatusBadRequest)
	createTestRecurringBill(suite.T(), "ada", app.RecurringBillEditable{BudgetID: budget.Data.ID, Name: "Water", Amount: decimal.NewFromInt(1)}, http.StatusBadRequest)

	generate := func(m string) int {
		r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("%s/months/%s/generate", budget.Data.Links.Self, m), "", as(suite.T(), "ada"))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response app.GenerateResponse
		test.DecodeResponse(suite.T(), &r, &response)
		return response.Data.Created
	}

	suite.Assert().Equal(0, generate("2025-12"), "nothing before the start month")
	suite.Assert().Equal(1, generate("2026-01"))

	// Inactive bills do not generate transactions
	r := test.Request(suite.T(), http.MethodPatch, bill.Data.Links.Self, map[string]any{"active": false}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.RecurringBillResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().False(*updated.Data.Active)
	suite.Assert().Equal(0, generate("2026-02"))

	// The bill ends in March
	r = test.Request(suite.T(), http.MethodPatch, bill.Data.Links.Self, map[string]any{"active": true, "endMonth": "2026-03"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(1, generate("2026-03"))
	suite.Assert().Equal(0, generate("2026-04"))

	// Generated transactions are linked to the bill
	r = test.Request(suite.T(), http.MethodGet, baseURL+"/transactions?budget="+budget.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions app.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Require().Len(transactions.Data, 2)
	for _, transaction := range transactions.Data {
		suite.Assert().Equal(models.StatusPending, transaction.Status)
		suite.Require().NotNil(transaction.RecurringBillID)
		suite.Assert().Equal(bill.Data.ID, *transaction.RecurringBillID)
		suite.Assert().Equal(15, transaction.Date.Day())
	}

	r = test.Request(suite.T(), http.MethodDelete, bill.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
