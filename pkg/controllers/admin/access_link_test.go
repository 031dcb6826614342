package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hivebudget/backend/pkg/controllers/admin"
	"github.com/hivebudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestAccessLink(t *testing.T, link admin.AccessLinkEditable, expectedStatus ...int) admin.AccessLinkResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, baseURL+"/access-links", []admin.AccessLinkEditable{link}, asAdmin(t))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response admin.AccessLinkCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return admin.AccessLinkResponse{}
}

func (suite *TestSuiteStandard) TestAccessLinksCreate() {
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: "beta"})

	link := createTestAccessLink(suite.T(), admin.AccessLinkEditable{PlanID: &plan.Data.ID, Beta: true, Lifetime: true, Note: " Early testers "})
	suite.Assert().Len(link.Data.Token, 32)
	suite.Assert().Equal(1, link.Data.MaxRedemptions, "links can be used at least once")
	suite.Assert().Equal("Early testers", link.Data.Note)
	suite.Assert().Equal("http://example.com/api/app/account/redeem", link.Data.Links.Redeem)

	other := createTestAccessLink(suite.T(), admin.AccessLinkEditable{Beta: true, MaxRedemptions: 50})
	suite.Assert().NotEqual(link.Data.Token, other.Data.Token)
	suite.Assert().Nil(other.Data.PlanID)
}

func (suite *TestSuiteStandard) TestAccessLinksGetFilter() {
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: "beta"})

	createTestAccessLink(suite.T(), admin.AccessLinkEditable{PlanID: &plan.Data.ID, Note: "Conference"})
	createTestAccessLink(suite.T(), admin.AccessLinkEditable{Beta: true, Note: "Newsletter"})
	createTestAccessLink(suite.T(), admin.AccessLinkEditable{Beta: true, Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Plan", fmt.Sprintf("plan=%s", plan.Data.ID), 1},
		{"Beta", "beta=true", 2},
		{"Archived", "archived=true", 1},
		{"Note", "note=news", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/access-links?%s", baseURL, tt.query), "", asAdmin(t))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response admin.AccessLinkListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestAccessLinksUpdate() {
	link := createTestAccessLink(suite.T(), admin.AccessLinkEditable{Beta: true})

	r := test.Request(suite.T(), http.MethodPatch, link.Data.Links.Self, map[string]any{"maxRedemptions": 0, "archived": true}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated admin.AccessLinkResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(1, updated.Data.MaxRedemptions)
	suite.Assert().True(updated.Data.Archived)
	suite.Assert().Equal(link.Data.Token, updated.Data.Token, "the token is not editable")

	// Removing the plan and the expiry
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: "beta"})
	expires := time.Now().Add(24 * time.Hour).UTC()
	limited := createTestAccessLink(suite.T(), admin.AccessLinkEditable{PlanID: &plan.Data.ID, ExpiresAt: &expires})
	suite.Require().NotNil(limited.Data.PlanID)
	suite.Require().NotNil(limited.Data.ExpiresAt)

	r = test.Request(suite.T(), http.MethodPatch, limited.Data.Links.Self, map[string]any{"planId": nil, "expiresAt": nil}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Nil(updated.Data.PlanID)
	suite.Assert().Nil(updated.Data.ExpiresAt)

	r = test.Request(suite.T(), http.MethodGet, limited.Data.Links.Self, "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var stored admin.AccessLinkResponse
	test.DecodeResponse(suite.T(), &r, &stored)
	suite.Assert().Nil(stored.Data.PlanID)
	suite.Assert().Nil(stored.Data.ExpiresAt)
}
