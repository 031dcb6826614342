package models_test

import (
	"strings"
	"testing"

	"github.com/hivebudget/backend/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateBudgetAddsOwner() {
	owner := suite.createTestUser(models.User{Name: "Ada"})
	budget := suite.createTestBudget(owner, models.Budget{Name: "  Family  ", Currency: "eur"})

	suite.Assert().Equal("Family", budget.Name)
	suite.Assert().Equal("EUR", budget.Currency)
	suite.Assert().Equal(owner.ID, budget.OwnerID)

	var members []models.Member
	suite.Require().Nil(models.DB.Where(&models.Member{BudgetID: budget.ID}).Find(&members).Error)
	suite.Require().Len(members, 1)
	suite.Assert().Equal(models.RoleOwner, members[0].Role)
	suite.Assert().Equal("Ada", members[0].Name)
	suite.Assert().Equal(owner.ID, *members[0].UserID)
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	owner := suite.createTestUser(models.User{})

	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"Empty name", models.Budget{Name: " "}, models.ErrNameEmpty},
		{"Invalid currency", models.Budget{Name: "Home", Currency: "DOLLARS"}, models.ErrInvalidCurrency},
		{"Default currency", models.Budget{Name: "Home"}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := tt.budget
			err := models.CreateBudget(models.DB, owner, &budget)
			assert.ErrorIs(t, err, tt.err)

			if tt.err == nil {
				assert.Equal(t, "USD", budget.Currency)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetPlanLimit() {
	suite.createTestPlan(models.Plan{Code: models.FreePlanCode, MaxBudgets: 1})
	owner := suite.createTestUser(models.User{})

	suite.createTestBudget(owner, models.Budget{})

	budget := models.Budget{Name: "Second"}
	err := models.CreateBudget(models.DB, owner, &budget)
	suite.Assert().ErrorIs(err, models.ErrPlanLimit)

	// The failed budget must not leave an owner member behind
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Member{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestDeleteBudgetDeletesMembers() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})
	suite.createTestMember(models.Member{BudgetID: budget.ID, Role: models.RolePet, Name: "Rex"})

	suite.Require().Nil(models.DeleteBudget(models.DB, budget))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Member{}).Where(&models.Member{BudgetID: budget.ID}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestMemberValidation() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})
	user := suite.createTestUser(models.User{})

	tests := []struct {
		name   string
		member models.Member
		err    error
	}{
		{"Pet with user", models.Member{Name: "Rex", Role: models.RolePet, UserID: &user.ID}, models.ErrPetWithUser},
		{"Invalid role", models.Member{Name: "Rex", Role: "dog"}, models.ErrInvalidRole},
		{"Empty name", models.Member{Name: "  ", Role: models.RoleChild}, models.ErrNameEmpty},
		{"Owner role", models.Member{Name: "Other", Role: models.RoleOwner}, models.ErrOwnerRole},
		{"Already member", models.Member{Name: "Me", Role: models.RolePartner, UserID: &owner.ID}, models.ErrAlreadyMember},
		{"Valid pet", models.Member{Name: "Rex", Role: models.RolePet}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			member := tt.member
			member.BudgetID = budget.ID

			err := models.AddMember(models.DB, &member)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestMemberPlanLimit() {
	suite.createTestPlan(models.Plan{Code: models.FreePlanCode, MaxMembers: 2})
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	suite.Require().Nil(models.AddMember(models.DB, &models.Member{BudgetID: budget.ID, Name: "Kid", Role: models.RoleChild}))

	err := models.AddMember(models.DB, &models.Member{BudgetID: budget.ID, Name: "Rex", Role: models.RolePet})
	suite.Assert().ErrorIs(err, models.ErrPlanLimit)
}

func (suite *TestSuiteStandard) TestUserForSubject() {
	user, err := models.UserForSubject(models.DB, "auth0|123", "Ada@Example.com", "Ada")
	suite.Require().Nil(err)
	suite.Assert().Equal("ada@example.com", user.Email)
	suite.Assert().Equal("Ada", user.Name)

	// Email is refreshed, the name is kept once set
	again, err := models.UserForSubject(models.DB, "auth0|123", "ada@new.example.com", "Someone Else")
	suite.Require().Nil(err)
	suite.Assert().Equal(user.ID, again.ID)
	suite.Assert().Equal("ada@new.example.com", again.Email)
	suite.Assert().Equal("Ada", again.Name)
}

func (suite *TestSuiteStandard) TestUserForSubjectDeleted() {
	user, err := models.UserForSubject(models.DB, "deleted-user", "gone@example.com", "")
	suite.Require().Nil(err)

	suite.Require().Nil(models.DeleteUser(models.DB, user))

	_, err = models.UserForSubject(models.DB, "deleted-user", "gone@example.com", "")
	suite.Assert().ErrorIs(err, models.ErrUnauthorized)
}

func (suite *TestSuiteStandard) TestDeleteUserDeletesOwnedBudgets() {
	owner := suite.createTestUser(models.User{})
	partner := suite.createTestUser(models.User{})

	owned := suite.createTestBudget(owner, models.Budget{Name: "Owned"})
	shared := suite.createTestBudget(partner, models.Budget{Name: "Shared"})
	suite.createTestMember(models.Member{BudgetID: shared.ID, UserID: &owner.ID, Role: models.RolePartner})

	suite.Require().Nil(models.DeleteUser(models.DB, owner))

	err := models.DB.First(&models.Budget{}, "id = ?", owned.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = models.DB.First(&models.Budget{}, "id = ?", shared.ID).Error
	suite.Assert().Nil(err)

	_, err = models.Authorize(models.DB, owner.ID, shared.ID, models.PermissionRead)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTrimWhitespace() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	name := "  There is whitespace here  \t"
	category := suite.createTestCategory(models.Category{BudgetID: budget.ID, Name: name, Note: " note "})

	suite.Assert().Equal(strings.TrimSpace(name), category.Name)
	suite.Assert().Equal("note", category.Note)
}
