package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoleAllows() {
	tests := []struct {
		role models.Role
		want []bool // read, contribute, write, manage
	}{
		{models.RoleOwner, []bool{true, true, true, true}},
		{models.RolePartner, []bool{true, true, true, false}},
		{models.RoleChild, []bool{true, true, false, false}},
		{models.RolePet, []bool{false, false, false, false}},
	}

	permissions := []models.Permission{models.PermissionRead, models.PermissionContribute, models.PermissionWrite, models.PermissionManage}

	for _, tt := range tests {
		suite.T().Run(string(tt.role), func(t *testing.T) {
			for i, p := range permissions {
				assert.Equal(t, tt.want[i], tt.role.Allows(p), "permission %d", p)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAuthorize() {
	owner := suite.createTestUser(models.User{})
	child := suite.createTestUser(models.User{})
	stranger := suite.createTestUser(models.User{})

	budget := suite.createTestBudget(owner, models.Budget{})
	suite.createTestMember(models.Member{BudgetID: budget.ID, UserID: &child.ID, Role: models.RoleChild})

	member, err := models.Authorize(models.DB, owner.ID, budget.ID, models.PermissionManage)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.RoleOwner, member.Role)

	_, err = models.Authorize(models.DB, child.ID, budget.ID, models.PermissionContribute)
	suite.Assert().Nil(err)

	_, err = models.Authorize(models.DB, child.ID, budget.ID, models.PermissionWrite)
	suite.Assert().ErrorIs(err, models.ErrForbidden)

	_, err = models.Authorize(models.DB, stranger.ID, budget.ID, models.PermissionRead)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no budget matching your query", err.Error())

	_, err = models.Authorize(models.DB, owner.ID, uuid.New(), models.PermissionRead)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAuthorizeArchivedMember() {
	owner := suite.createTestUser(models.User{})
	partner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	suite.createTestMember(models.Member{BudgetID: budget.ID, UserID: &partner.ID, Role: models.RolePartner, Archived: true})

	_, err := models.Authorize(models.DB, partner.ID, budget.ID, models.PermissionRead)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAuthorizeDeletedBudget() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	suite.Require().Nil(models.DeleteBudget(models.DB, budget))

	_, err := models.Authorize(models.DB, owner.ID, budget.ID, models.PermissionRead)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMemberBudgetIDs() {
	owner := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	mine := suite.createTestBudget(owner, models.Budget{Name: "Mine"})
	suite.createTestBudget(other, models.Budget{Name: "Theirs"})

	var budgets []models.Budget
	err := models.DB.Where("id IN (?)", models.MemberBudgetIDs(models.DB, owner.ID)).Find(&budgets).Error
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(mine.ID, budgets[0].ID)
}

func (suite *TestSuiteStandard) TestCrossBudgetReference() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{Name: "One"})
	other := suite.createTestBudget(owner, models.Budget{Name: "Two"})

	foreign := suite.createTestAccount(models.Account{BudgetID: other.ID})

	err := models.DB.Create(&models.Transaction{
		BudgetID:  budget.ID,
		AccountID: &foreign.ID,
		Amount:    decimal.NewFromInt(5),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCrossBudget)

	missing := uuid.New()
	err = models.DB.Create(&models.Transaction{
		BudgetID:   budget.ID,
		CategoryID: &missing,
		Amount:     decimal.NewFromInt(5),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
