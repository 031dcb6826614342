package app_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
)

func (suite *TestSuiteStandard) TestInvitesCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	invite := createTestInvite(suite.T(), "ada", app.InviteEditable{BudgetID: budget.Data.ID, Role: models.RolePartner, Email: " Grace@Example.com"})
	suite.Assert().Equal("grace@example.com", invite.Data.Email)
	suite.Assert().Len(invite.Data.Token, 32)
	suite.Assert().Nil(invite.Data.AcceptedAt)
	suite.Assert().WithinDuration(time.Now().Add(7*24*time.Hour), invite.Data.ExpiresAt, time.Minute)
	suite.Assert().Equal(fmt.Sprintf("%s/invites/accept", baseURL), invite.Data.Links.Accept)

	for _, role := range []models.Role{models.RoleOwner, models.RolePet} {
		createTestInvite(suite.T(), "ada", app.InviteEditable{BudgetID: budget.Data.ID, Role: role}, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestInvitesVisibleToOwner() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "grace", budget, models.RolePartner)
	invite := createTestInvite(suite.T(), "ada", app.InviteEditable{BudgetID: budget.Data.ID, Role: models.RoleChild})

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/invites?budget="+budget.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.InviteListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 2, "the accepted invite and the open one")

	// Partners can neither list nor create invites
	r = test.Request(suite.T(), http.MethodGet, baseURL+"/invites", "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)

	r = test.Request(suite.T(), http.MethodGet, invite.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	createTestInvite(suite.T(), "grace", app.InviteEditable{BudgetID: budget.Data.ID, Role: models.RoleChild}, http.StatusForbidden)

	// Revoked invites cannot be accepted
	r = test.Request(suite.T(), http.MethodDelete, invite.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodPost, baseURL+"/invites/accept", app.InviteAccept{Token: invite.Data.Token}, as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInvitesAccept() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	invite := createTestInvite(suite.T(), "ada", app.InviteEditable{BudgetID: budget.Data.ID, Role: models.RolePartner, Email: "grace@example.com"})

	// Only the invited email can accept
	r := test.Request(suite.T(), http.MethodPost, invite.Data.Links.Accept, app.InviteAccept{Token: invite.Data.Token}, as(suite.T(), "mallory"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, invite.Data.Links.Accept, app.InviteAccept{Token: invite.Data.Token}, as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var member app.MemberResponse
	test.DecodeResponse(suite.T(), &r, &member)
	suite.Assert().Equal(models.RolePartner, member.Data.Role)
	suite.Assert().Equal(budget.Data.ID, member.Data.BudgetID)
	suite.Require().NotNil(member.Data.UserID)

	// Invites are single use
	r = test.Request(suite.T(), http.MethodPost, invite.Data.Links.Accept, app.InviteAccept{Token: invite.Data.Token}, as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, invite.Data.Links.Accept, app.InviteAccept{Token: "unknown"}, as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
