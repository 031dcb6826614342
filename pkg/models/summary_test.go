package models_test

import (
	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBuildMonthSummary() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	food := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Food", MonthlyLimit: decimal.NewFromInt(500)})
	fun := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Fun"})
	suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Old", Archived: true})

	march := types.NewMonth(2026, 3)
	april := march.AddDate(0, 1)

	for _, t := range []models.Transaction{
		{Kind: models.KindIncome, Amount: decimal.NewFromInt(3000), Date: march.Day(1)},
		{Kind: models.KindIncome, Amount: decimal.NewFromInt(200), Date: march.Day(28), Status: models.StatusPending},
		{CategoryID: &food.ID, Amount: decimal.NewFromInt(120), Date: march.Day(3)},
		{CategoryID: &food.ID, Amount: decimal.NewFromInt(80), Date: march.Day(20), Status: models.StatusPending},
		{CategoryID: &fun.ID, Amount: decimal.NewFromInt(40), Date: march.Day(10)},
		{Amount: decimal.NewFromInt(1000), Date: march.Day(15), Status: models.StatusPending},

		// Other month
		{CategoryID: &food.ID, Amount: decimal.NewFromInt(999), Date: april.Day(1)},

		// Bought in March, accounted in April
		{CategoryID: &food.ID, Amount: decimal.NewFromInt(50), Date: march.Day(31), Month: april},
	} {
		t.BudgetID = budget.ID
		suite.createTestTransaction(t)
	}

	summary, err := models.BuildMonthSummary(models.DB, budget.ID, march)
	suite.Require().Nil(err)

	suite.Assert().True(decimal.NewFromInt(3000).Equal(summary.Income), summary.Income.String())
	suite.Assert().True(decimal.NewFromInt(160).Equal(summary.Expenses), summary.Expenses.String())
	suite.Assert().True(decimal.NewFromInt(200).Equal(summary.PendingIncome), summary.PendingIncome.String())
	suite.Assert().True(decimal.NewFromInt(1080).Equal(summary.PendingExpenses), summary.PendingExpenses.String())
	suite.Assert().True(decimal.NewFromInt(2840).Equal(summary.Net), summary.Net.String())

	suite.Require().Len(summary.Categories, 2, "archived categories are not listed")
	suite.Assert().Equal("Food", summary.Categories[0].Category.Name)
	suite.Assert().True(decimal.NewFromInt(120).Equal(summary.Categories[0].Spent))
	suite.Assert().True(decimal.NewFromInt(80).Equal(summary.Categories[0].Pending))
	suite.Require().NotNil(summary.Categories[0].Remaining)
	suite.Assert().True(decimal.NewFromInt(300).Equal(*summary.Categories[0].Remaining), summary.Categories[0].Remaining.String())

	suite.Assert().Equal("Fun", summary.Categories[1].Category.Name)
	suite.Assert().Nil(summary.Categories[1].Remaining)

	suite.Require().Len(summary.Pending, 3)
	suite.Assert().Equal(march.Day(15), summary.Pending[0].Date)
	suite.Assert().Equal(march.Day(20), summary.Pending[1].Date)
	suite.Assert().Equal(march.Day(28), summary.Pending[2].Date)
}

func (suite *TestSuiteStandard) TestBuildMonthSummaryEmpty() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	summary, err := models.BuildMonthSummary(models.DB, budget.ID, types.NewMonth(2026, 1))
	suite.Require().Nil(err)
	suite.Assert().True(summary.Net.IsZero())
	suite.Assert().NotNil(summary.Categories)
	suite.Assert().NotNil(summary.Pending)
}
