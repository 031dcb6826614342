package app_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/stretchr/testify/assert"
)

// ownerOf returns the owner member of the budget.
func ownerOf(t *testing.T, subject string, budget app.BudgetResponse) app.Member {
	r := test.Request(t, http.MethodGet, budget.Data.Links.Members+"&role=owner", "", as(t, subject))
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list app.MemberListResponse
	test.DecodeResponse(t, &r, &list)
	assert.Len(t, list.Data, 1)

	return list.Data[0]
}

func (suite *TestSuiteStandard) TestMembersCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	pet := createTestMember(suite.T(), "ada", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Luna", Role: models.RolePet})
	suite.Assert().Equal(models.RolePet, pet.Data.Role)
	suite.Assert().Nil(pet.Data.UserID)
	suite.Assert().Equal(fmt.Sprintf("%s/transactions?member=%s", baseURL, pet.Data.ID), pet.Data.Links.Transactions)

	// The role defaults to child
	child := createTestMember(suite.T(), "ada", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Tim"})
	suite.Assert().Equal(models.RoleChild, child.Data.Role)

	tests := []struct {
		name   string
		member app.MemberEditable
	}{
		{"No name", app.MemberEditable{BudgetID: budget.Data.ID, Role: models.RolePet}},
		{"Owner", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Boss", Role: models.RoleOwner}},
		{"Partner", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Grace", Role: models.RolePartner}},
		{"Invalid role", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Rex", Role: "dog"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestMember(t, "ada", tt.member, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMembersPlanLimit() {
	suite.Require().Nil(models.DB.Create(&models.Plan{Code: models.FreePlanCode, Name: "Free", MaxMembers: 2}).Error)
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	createTestMember(suite.T(), "ada", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Luna", Role: models.RolePet})
	createTestMember(suite.T(), "ada", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Tim"}, http.StatusPaymentRequired)
}

func (suite *TestSuiteStandard) TestMembersManagement() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "grace", budget, models.RolePartner)
	pet := createTestMember(suite.T(), "ada", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Luna", Role: models.RolePet})

	// Only the owner manages members
	createTestMember(suite.T(), "grace", app.MemberEditable{BudgetID: budget.Data.ID, Name: "Rex", Role: models.RolePet}, http.StatusForbidden)

	r := test.Request(suite.T(), http.MethodPatch, pet.Data.Links.Self, map[string]any{"name": "Rex"}, as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPatch, pet.Data.Links.Self, map[string]any{"name": "Luna Lovegood", "archived": true}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.MemberResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Luna Lovegood", updated.Data.Name)
	suite.Assert().True(updated.Data.Archived)

	// Nobody can become the owner
	r = test.Request(suite.T(), http.MethodPatch, pet.Data.Links.Self, map[string]any{"role": "owner"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The owner cannot be changed or removed
	owner := ownerOf(suite.T(), "ada", budget)
	r = test.Request(suite.T(), http.MethodPatch, owner.Links.Self, map[string]any{"role": "child"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, owner.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, pet.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestMembersRemovedLoseAccess() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "grace", budget, models.RolePartner)

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Members+"&role=partner", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.MemberListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	partner := list.Data[0]
	suite.Assert().Equal("grace@example.com", partner.Name)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Archived members cannot access the budget
	r = test.Request(suite.T(), http.MethodPatch, partner.Links.Self, map[string]any{"archived": true}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPatch, partner.Links.Self, map[string]any{"archived": false}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodDelete, partner.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
