package models_test

import (
	"time"

	"github.com/hivebudget/backend/internal/types"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestEnsurePendingTransactions() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})
	housing := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: "Housing"})

	var member models.Member
	suite.Require().Nil(models.DB.Where(&models.Member{BudgetID: budget.ID}).First(&member).Error)

	february := types.NewMonth(2026, 2)
	end := types.NewMonth(2026, 3)

	bills := []models.RecurringBill{
		{BudgetID: budget.ID, Name: "Rent", Amount: decimal.NewFromInt(1200), DueDay: 31, StartMonth: types.NewMonth(2026, 1), AccountID: &account.ID, CategoryID: &housing.ID, Active: true},
		{BudgetID: budget.ID, Name: "Gym", Amount: decimal.NewFromInt(30), DueDay: 5, StartMonth: types.NewMonth(2026, 3), Active: true},
		{BudgetID: budget.ID, Name: "Old phone", Amount: decimal.NewFromInt(20), DueDay: 5, StartMonth: types.NewMonth(2025, 1), EndMonth: &types.Month{}, Active: false},
		{BudgetID: budget.ID, Name: "Insurance", Amount: decimal.NewFromInt(80), DueDay: 15, StartMonth: types.NewMonth(2025, 1), EndMonth: &end, Active: true},
	}
	for i := range bills {
		suite.Require().Nil(models.DB.Create(&bills[i]).Error)
	}

	income := models.IncomeSource{BudgetID: budget.ID, MemberID: &member.ID, Name: "Salary", Amount: decimal.NewFromInt(3000), DayOfMonth: 28, StartMonth: types.NewMonth(2026, 1), Active: true}
	suite.Require().Nil(models.DB.Create(&income).Error)

	created, err := models.EnsurePendingTransactions(models.DB, budget.ID, february)
	suite.Require().Nil(err)
	suite.Assert().Equal(3, created, "rent, insurance and salary")

	var transactions []models.Transaction
	suite.Require().Nil(models.DB.Where(&models.Transaction{BudgetID: budget.ID}).Order("amount DESC").Find(&transactions).Error)
	suite.Require().Len(transactions, 3)

	salary := transactions[0]
	suite.Assert().Equal(models.KindIncome, salary.Kind)
	suite.Assert().Equal(models.StatusPending, salary.Status)
	suite.Assert().Equal(member.ID, *salary.MemberID)
	suite.Assert().Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), salary.Date)

	rent := transactions[1]
	suite.Assert().Equal(models.KindExpense, rent.Kind)
	suite.Assert().Equal("Rent", rent.Description)
	suite.Assert().Equal(account.ID, *rent.AccountID)
	suite.Assert().Equal(housing.ID, *rent.CategoryID)
	suite.Assert().True(february.Equal(rent.Month))

	// Due day 31 is clamped to the end of February
	suite.Assert().Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), rent.Date)

	// Running again creates nothing
	created, err = models.EnsurePendingTransactions(models.DB, budget.ID, february)
	suite.Require().Nil(err)
	suite.Assert().Equal(0, created)
}

func (suite *TestSuiteStandard) TestEnsurePendingTransactionsDoesNotResurrect() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	month := types.NewMonth(2026, 5)
	bill := models.RecurringBill{BudgetID: budget.ID, Name: "Streaming", Amount: decimal.NewFromInt(12), DueDay: 10, StartMonth: month, Active: true}
	suite.Require().Nil(models.DB.Create(&bill).Error)

	created, err := models.EnsurePendingTransactions(models.DB, budget.ID, month)
	suite.Require().Nil(err)
	suite.Require().Equal(1, created)

	suite.Require().Nil(models.DB.Where(&models.Transaction{RecurringBillID: &bill.ID}).Delete(&models.Transaction{}).Error)

	created, err = models.EnsurePendingTransactions(models.DB, budget.ID, month)
	suite.Require().Nil(err)
	suite.Assert().Equal(0, created)

	// The next month is generated normally
	created, err = models.EnsurePendingTransactions(models.DB, budget.ID, month.AddDate(0, 1))
	suite.Require().Nil(err)
	suite.Assert().Equal(1, created)
}

func (suite *TestSuiteStandard) TestEnsurePendingTransactionsSkipsDeletedReferences() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})
	account := suite.createTestAccount(models.Account{BudgetID: budget.ID})

	month := types.NewMonth(2026, 7)
	bill := models.RecurringBill{BudgetID: budget.ID, Name: "Loan", Amount: decimal.NewFromInt(250), DueDay: 1, StartMonth: month, AccountID: &account.ID, Active: true}
	suite.Require().Nil(models.DB.Create(&bill).Error)
	suite.Require().Nil(models.DB.Delete(&account).Error)

	created, err := models.EnsurePendingTransactions(models.DB, budget.ID, month)
	suite.Require().Nil(err)
	suite.Assert().Equal(0, created)
}

func (suite *TestSuiteStandard) TestScheduleValidation() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})
	start := types.NewMonth(2026, 6)
	before := types.NewMonth(2026, 5)

	tests := []struct {
		name string
		bill models.RecurringBill
		err  error
	}{
		{"No name", models.RecurringBill{Amount: decimal.NewFromInt(1), DueDay: 1}, models.ErrNameEmpty},
		{"No amount", models.RecurringBill{Name: "A", DueDay: 1}, models.ErrAmountNotPositive},
		{"Day too large", models.RecurringBill{Name: "A", Amount: decimal.NewFromInt(1), DueDay: 32}, models.ErrDayOfMonth},
		{"End before start", models.RecurringBill{Name: "A", Amount: decimal.NewFromInt(1), DueDay: 1, StartMonth: start, EndMonth: &before}, models.ErrMonthRange},
	}

	for _, tt := range tests {
		bill := tt.bill
		bill.BudgetID = budget.ID
		suite.Assert().ErrorIs(models.DB.Create(&bill).Error, tt.err, tt.name)
	}

	// The start month defaults to the current month
	bill := models.RecurringBill{BudgetID: budget.ID, Name: "Water", Amount: decimal.NewFromInt(40), DueDay: 20}
	suite.Require().Nil(models.DB.Create(&bill).Error)
	suite.Assert().True(types.MonthOf(time.Now().UTC()).Equal(bill.StartMonth))
}
