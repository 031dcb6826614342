package app_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsAuthentication() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/budgets", "", map[string]string{"Authorization": "Bearer not-a-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: " Household ", Currency: "eur"})
	suite.Assert().Equal("Household", budget.Data.Name)
	suite.Assert().Equal("EUR", budget.Data.Currency)
	suite.Assert().Equal(fmt.Sprintf("%s/budgets/%s", baseURL, budget.Data.ID), budget.Data.Links.Self)

	// The creator is the owner member
	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Members, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var members app.MemberListResponse
	test.DecodeResponse(suite.T(), &r, &members)
	suite.Require().Len(members.Data, 1)
	suite.Assert().Equal(models.RoleOwner, members.Data[0].Role)
	suite.Assert().Equal("ada@example.com", members.Data[0].Name)

	// Currency defaults to USD
	budget = createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Vacation"})
	suite.Assert().Equal("USD", budget.Data.Currency)

	createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Invalid", Currency: "EURO"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsCreateBadRequest() {
	r := test.Request(suite.T(), http.MethodPost, baseURL+"/budgets", `[{ "name": 2 }]`, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, baseURL+"/budgets", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsPlanLimit() {
	suite.Require().Nil(models.DB.Create(&models.Plan{Code: models.FreePlanCode, Name: "Free", MaxBudgets: 1}).Error)

	createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "First"})
	createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Second"}, http.StatusPaymentRequired)
}

func (suite *TestSuiteStandard) TestBudgetsIsolation() {
	own := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Ada's"})
	other := createTestBudget(suite.T(), "grace", app.BudgetEditable{Name: "Grace's"})

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/budgets", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(own.Data.ID, list.Data[0].ID)
	suite.Assert().Equal(int64(1), list.Pagination.Total)

	// Budgets of other users do not exist for the user
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		r = test.Request(suite.T(), method, other.Data.Links.Self, `{ "name": "Mine now" }`, as(suite.T(), "ada"))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = test.Request(suite.T(), http.MethodGet, other.Data.Links.Self+"/months/2026-03", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsFilter() {
	createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Household", Note: "Daily expenses", Currency: "EUR"})
	createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Vacation", Currency: "USD"})
	createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Old", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Currency", "currency=EUR", 1},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 2},
		{"Search", "search=daily", 1},
		{"Name", "name=Vacation", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"/budgets?"+tt.query, "", as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list app.BudgetListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Household", Note: "Keep me"})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{"name": "Home", "currency": "chf"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Home", updated.Data.Name)
	suite.Assert().Equal("CHF", updated.Data.Currency)
	suite.Assert().Equal("Keep me", updated.Data.Note)

	r = test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{"name": ""}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, `{ "name": 2 }`, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsPermissions() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "grace", budget, models.RolePartner)
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)

	tests := []struct {
		name    string
		subject string
		method  string
		status  int
	}{
		{"Partner reads", "grace", http.MethodGet, http.StatusOK},
		{"Partner updates", "grace", http.MethodPatch, http.StatusOK},
		{"Partner cannot delete", "grace", http.MethodDelete, http.StatusForbidden},
		{"Child reads", "kid", http.MethodGet, http.StatusOK},
		{"Child cannot update", "kid", http.MethodPatch, http.StatusForbidden},
		{"Child cannot delete", "kid", http.MethodDelete, http.StatusForbidden},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, budget.Data.Links.Self, map[string]any{"note": tt.name}, as(t, tt.subject))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleted budgets are gone for all members
	for _, subject := range []string{"ada", "grace"} {
		r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", as(suite.T(), subject))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}

func (suite *TestSuiteStandard) TestBudgetsNilID() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/budgets/00000000-0000-0000-0000-000000000000", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/budgets/not-a-uuid", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodOptions, baseURL+"/budgets", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, budget.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, budget.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsMonth() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{Currency: "EUR"})
	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Housing", MonthlyLimit: decimal.NewFromInt(1500)})

	createTestRecurringBill(suite.T(), "ada", app.RecurringBillEditable{
		BudgetID:   budget.Data.ID,
		CategoryID: &category.Data.ID,
		Name:       "Rent",
		Amount:     decimal.NewFromInt(1200),
		DueDay:     31,
		StartMonth: month(2026, 1),
	})

	createTestIncomeSource(suite.T(), "ada", app.IncomeSourceEditable{
		BudgetID:   budget.Data.ID,
		Name:       "Salary",
		Amount:     decimal.NewFromInt(3000),
		DayOfMonth: 25,
		StartMonth: month(2026, 1),
	})

	createTestTransaction(suite.T(), "ada", app.TransactionEditable{
		BudgetID:   budget.Data.ID,
		CategoryID: &category.Data.ID,
		Amount:     decimal.NewFromInt(100),
		Date:       month(2026, 2).Day(3),
	})

	// Requesting a month generates its pending transactions
	r := test.Request(suite.T(), http.MethodGet, strings.Replace(budget.Data.Links.Month, "YYYY-MM", "2026-02", 1), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary app.MonthSummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().Equal("2026-02", summary.Data.Month.String())
	suite.Assert().True(decimal.NewFromInt(100).Equal(summary.Data.Expenses), summary.Data.Expenses.String())
	suite.Assert().True(decimal.NewFromInt(1200).Equal(summary.Data.PendingExpenses), summary.Data.PendingExpenses.String())
	suite.Assert().True(decimal.NewFromInt(3000).Equal(summary.Data.PendingIncome), summary.Data.PendingIncome.String())
	suite.Assert().True(decimal.NewFromInt(-100).Equal(summary.Data.Net), summary.Data.Net.String())

	suite.Require().Len(summary.Data.Pending, 2)
	suite.Assert().True(month(2026, 2).Day(25).Equal(summary.Data.Pending[0].Date), summary.Data.Pending[0].Date)
	suite.Assert().True(month(2026, 2).Day(28).Equal(summary.Data.Pending[1].Date), "due days are clamped to the end of the month")

	suite.Require().Len(summary.Data.Categories, 1)
	suite.Require().NotNil(summary.Data.Categories[0].Remaining)
	suite.Assert().True(decimal.NewFromInt(200).Equal(*summary.Data.Categories[0].Remaining), summary.Data.Categories[0].Remaining.String())

	// Generation is idempotent
	r = test.Request(suite.T(), http.MethodPost, budget.Data.Links.Self+"/months/2026-02/generate", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var generated app.GenerateResponse
	test.DecodeResponse(suite.T(), &r, &generated)
	suite.Assert().Equal(0, generated.Data.Created)

	r = test.Request(suite.T(), http.MethodPost, budget.Data.Links.Self+"/months/2026-03/generate", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &generated)
	suite.Assert().Equal(2, generated.Data.Created)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self+"/months/March", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsMonthChildCannotGenerate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self+"/months/2026-02", "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, budget.Data.Links.Self+"/months/2026-02/generate", "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/budgets", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
