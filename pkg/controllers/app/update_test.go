package app_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpdateClearsOptionalFields verifies that setting an optional field
// to null removes the stored value.
func (suite *TestSuiteStandard) TestUpdateClearsOptionalFields() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	account := createTestAccount(suite.T(), "ada", app.AccountEditable{BudgetID: budget.Data.ID, Name: "Checking"})
	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Rent"})
	member := createTestMember(suite.T(), "ada", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Tim"})

	end := month(2026, 12)
	target := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		self  string
		field string
	}{
		{
			"Recurring bill end month",
			createTestRecurringBill(suite.T(), "ada", app.RecurringBillEditable{BudgetID: budget.Data.ID, Name: "Rent", Amount: decimal.NewFromInt(1150), DueDay: 1, StartMonth: month(2026, 1), EndMonth: &end}).Data.Links.Self,
			"endMonth",
		},
		{
			"Recurring bill category",
			createTestRecurringBill(suite.T(), "ada", app.RecurringBillEditable{BudgetID: budget.Data.ID, CategoryID: &category.Data.ID, Name: "Power", Amount: decimal.NewFromInt(80), DueDay: 5, StartMonth: month(2026, 1)}).Data.Links.Self,
			"categoryId",
		},
		{
			"Income source account",
			createTestIncomeSource(suite.T(), "ada", app.IncomeSourceEditable{BudgetID: budget.Data.ID, AccountID: &account.Data.ID, Name: "Salary", Amount: decimal.NewFromInt(3200), DayOfMonth: 28, StartMonth: month(2026, 1)}).Data.Links.Self,
			"accountId",
		},
		{
			"Goal target date",
			createTestGoal(suite.T(), "ada", app.GoalEditable{BudgetID: budget.Data.ID, Name: "Car", TargetAmount: decimal.NewFromInt(15000), TargetDate: &target}).Data.Links.Self,
			"targetDate",
		},
		{
			"Transaction member",
			createTestTransaction(suite.T(), "ada", app.TransactionEditable{BudgetID: budget.Data.ID, MemberID: &member.Data.ID, Amount: decimal.NewFromInt(12)}).Data.Links.Self,
			"memberId",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response struct {
				Data map[string]any `json:"data"`
			}

			r := test.Request(t, http.MethodGet, tt.self, "", as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data[tt.field], "%s must be set before the update", tt.field)

			r = test.Request(t, http.MethodPatch, tt.self, map[string]any{tt.field: nil}, as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data[tt.field], "PATCH response")

			r = test.Request(t, http.MethodGet, tt.self, "", as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			response.Data = nil
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data[tt.field], "stored resource")
		})
	}
}
