package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/controllers/admin"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestCoupon(t *testing.T, coupon admin.CouponEditable, expectedStatus ...int) admin.CouponResponse {
	if coupon.PlanID == uuid.Nil {
		coupon.PlanID = createTestPlan(t, admin.PlanEditable{Code: uuid.NewString()}).Data.ID
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, baseURL+"/coupons", []admin.CouponEditable{coupon}, asAdmin(t))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response admin.CouponCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return admin.CouponResponse{}
}

func (suite *TestSuiteStandard) TestCouponsCreate() {
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: "family"})

	coupon := createTestCoupon(suite.T(), admin.CouponEditable{Code: " spring26 ", PlanID: plan.Data.ID, DurationDays: 30})
	suite.Assert().Equal("SPRING26", coupon.Data.Code)
	suite.Assert().Equal(0, coupon.Data.Redemptions)
	suite.Assert().Equal(plan.Data.Links.Self, coupon.Data.Links.Plan)

	tests := []struct {
		name   string
		coupon admin.CouponEditable
	}{
		{"Duplicate code", admin.CouponEditable{Code: "Spring26", PlanID: plan.Data.ID}},
		{"Empty code", admin.CouponEditable{PlanID: plan.Data.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestCoupon(t, tt.coupon, http.StatusBadRequest)
		})
	}

	// Coupons need a plan
	r := test.Request(suite.T(), http.MethodPost, baseURL+"/coupons", []admin.CouponEditable{{Code: "NOPLAN"}}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response admin.CouponCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrPlanRequired.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestCouponsCreateMixed() {
	plan := createTestPlan(suite.T(), admin.PlanEditable{Code: "family"})

	body := []admin.CouponEditable{
		{Code: "GOOD", PlanID: plan.Data.ID},
		{Code: "", PlanID: plan.Data.ID},
	}

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/coupons", body, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response admin.CouponCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("GOOD", response.Data[0].Data.Code)
	suite.Assert().NotNil(response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestCouponsGetFilter() {
	family := createTestPlan(suite.T(), admin.PlanEditable{Code: "family"})
	pro := createTestPlan(suite.T(), admin.PlanEditable{Code: "pro"})
	expiry := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	createTestCoupon(suite.T(), admin.CouponEditable{Code: "SPRING", PlanID: family.Data.ID, DurationDays: 30, ExpiresAt: &expiry})
	createTestCoupon(suite.T(), admin.CouponEditable{Code: "FOREVER", PlanID: family.Data.ID, Lifetime: true})
	createTestCoupon(suite.T(), admin.CouponEditable{Code: "SUMMER", PlanID: pro.Data.ID, Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Plan", fmt.Sprintf("plan=%s", family.Data.ID), 2},
		{"Code", "code=s", 2},
		{"Code lower case", "code=forever", 1},
		{"Lifetime", "lifetime=true", 1},
		{"Archived", "archived=true", 1},
		{"Unknown plan", fmt.Sprintf("plan=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s/coupons?%s", baseURL, tt.query), "", asAdmin(t))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response admin.CouponListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/coupons?plan=not-a-uuid", "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCouponsUpdate() {
	coupon := createTestCoupon(suite.T(), admin.CouponEditable{Code: "SPRING", MaxRedemptions: 10})

	r := test.Request(suite.T(), http.MethodPatch, coupon.Data.Links.Self, map[string]any{"archived": true, "maxRedemptions": 20}, asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated admin.CouponResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Data.Archived)
	suite.Assert().Equal(20, updated.Data.MaxRedemptions)
	suite.Assert().Equal("SPRING", updated.Data.Code)
	suite.Assert().Equal(coupon.Data.PlanID, updated.Data.PlanID)

	r = test.Request(suite.T(), http.MethodDelete, coupon.Data.Links.Self, "", asAdmin(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
