package models_test

import (
	"time"

	"github.com/hivebudget/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestAcceptInvite() {
	owner := suite.createTestUser(models.User{})
	partner := suite.createTestUser(models.User{Email: "partner@example.com", Name: "Grace"})
	budget := suite.createTestBudget(owner, models.Budget{})

	invite := models.Invite{BudgetID: budget.ID, Role: models.RolePartner, Email: " Partner@Example.com", InvitedByID: owner.ID}
	suite.Require().Nil(models.DB.Create(&invite).Error)
	suite.Assert().Equal("partner@example.com", invite.Email)
	suite.Assert().Len(invite.Token, 32)

	member, err := models.AcceptInvite(models.DB, partner, invite.Token, time.Now())
	suite.Require().Nil(err)
	suite.Assert().Equal(models.RolePartner, member.Role)
	suite.Assert().Equal("Grace", member.Name)
	suite.Assert().Equal(partner.ID, *member.UserID)

	_, err = models.Authorize(models.DB, partner.ID, budget.ID, models.PermissionWrite)
	suite.Assert().Nil(err)

	suite.Require().Nil(models.DB.First(&invite, "id = ?", invite.ID).Error)
	suite.Assert().NotNil(invite.AcceptedAt)
	suite.Assert().Equal(partner.ID, *invite.AcceptedByID)

	// An invite can only be accepted once
	_, err = models.AcceptInvite(models.DB, partner, invite.Token, time.Now())
	suite.Assert().ErrorIs(err, models.ErrInviteInvalid)
}

func (suite *TestSuiteStandard) TestAcceptInviteFailures() {
	owner := suite.createTestUser(models.User{Email: "owner@example.com"})
	user := suite.createTestUser(models.User{Email: "user@example.com"})
	budget := suite.createTestBudget(owner, models.Budget{})

	expired := models.Invite{BudgetID: budget.ID, Role: models.RoleChild, InvitedByID: owner.ID, ExpiresAt: time.Now().Add(-time.Minute)}
	wrongEmail := models.Invite{BudgetID: budget.ID, Role: models.RoleChild, InvitedByID: owner.ID, Email: "someone@example.com"}
	self := models.Invite{BudgetID: budget.ID, Role: models.RoleChild, InvitedByID: owner.ID}
	for _, i := range []*models.Invite{&expired, &wrongEmail, &self} {
		suite.Require().Nil(models.DB.Create(i).Error)
	}

	tests := []struct {
		name  string
		user  models.User
		token string
		err   error
	}{
		{"Expired", user, expired.Token, models.ErrInviteInvalid},
		{"Wrong email", user, wrongEmail.Token, models.ErrInviteEmail},
		{"Already member", owner, self.Token, models.ErrAlreadyMember},
		{"Unknown token", user, "nope", models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		_, err := models.AcceptInvite(models.DB, tt.user, tt.token, time.Now())
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestAcceptInvitePlanLimit() {
	suite.createTestPlan(models.Plan{Code: models.FreePlanCode, MaxMembers: 1})
	owner := suite.createTestUser(models.User{})
	user := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	invite := models.Invite{BudgetID: budget.ID, Role: models.RoleChild, InvitedByID: owner.ID}
	suite.Require().Nil(models.DB.Create(&invite).Error)

	_, err := models.AcceptInvite(models.DB, user, invite.Token, time.Now())
	suite.Assert().ErrorIs(err, models.ErrPlanLimit)

	// The invite stays open
	suite.Require().Nil(models.DB.First(&invite, "id = ?", invite.ID).Error)
	suite.Assert().Nil(invite.AcceptedAt)
}

func (suite *TestSuiteStandard) TestInviteRole() {
	owner := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(owner, models.Budget{})

	for _, role := range []models.Role{models.RoleOwner, models.RolePet, "admin"} {
		err := models.DB.Create(&models.Invite{BudgetID: budget.ID, Role: role, InvitedByID: owner.ID}).Error
		suite.Assert().ErrorIs(err, models.ErrInviteRole, string(role))
	}
}

func (suite *TestSuiteStandard) TestLinkChat() {
	user := suite.createTestUser(models.User{})
	budget := suite.createTestBudget(user, models.Budget{})

	link := models.BotLink{UserID: user.ID, BudgetID: &budget.ID}
	suite.Require().Nil(models.DB.Create(&link).Error)
	suite.Assert().Len(link.Code, 8)
	suite.Assert().Equal(models.PlatformTelegram, link.Platform)

	_, err := models.LinkedChat(models.DB, models.PlatformTelegram, 42)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	linked, err := models.LinkChat(models.DB, models.PlatformTelegram, " "+link.Code+" ", 42, time.Now())
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(42), *linked.ChatID)

	found, err := models.LinkedChat(models.DB, models.PlatformTelegram, 42)
	suite.Require().Nil(err)
	suite.Assert().Equal(link.ID, found.ID)
	suite.Assert().Equal(budget.ID, *found.BudgetID)

	// Codes are single use
	_, err = models.LinkChat(models.DB, models.PlatformTelegram, link.Code, 43, time.Now())
	suite.Assert().ErrorIs(err, models.ErrCodeExpired)

	// A new code replaces the link of the chat
	second := models.BotLink{UserID: user.ID, BudgetID: &budget.ID}
	suite.Require().Nil(models.DB.Create(&second).Error)

	_, err = models.LinkChat(models.DB, models.PlatformTelegram, second.Code, 42, time.Now())
	suite.Require().Nil(err)

	found, err = models.LinkedChat(models.DB, models.PlatformTelegram, 42)
	suite.Require().Nil(err)
	suite.Assert().Equal(second.ID, found.ID)
}

func (suite *TestSuiteStandard) TestLinkChatExpiredCode() {
	user := suite.createTestUser(models.User{})

	link := models.BotLink{UserID: user.ID}
	suite.Require().Nil(models.DB.Create(&link).Error)

	_, err := models.LinkChat(models.DB, models.PlatformTelegram, link.Code, 7, time.Now().Add(models.BotLinkCodeValidity+time.Second))
	suite.Assert().ErrorIs(err, models.ErrCodeExpired)
}
