package app_test

import (
	"net/http"
	"testing"

	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryRules() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	other := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Other"})
	food := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food"})
	fuel := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Fuel"})
	foreign := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: other.Data.ID, Name: "Food"})

	rule := createTestCategoryRule(suite.T(), "ada", app.CategoryRuleEditable{BudgetID: budget.Data.ID, CategoryID: food.Data.ID, Pattern: " *Supermarket* ", Priority: 10})
	suite.Assert().Equal("*supermarket*", rule.Data.Pattern)
	suite.Assert().Equal(food.Data.Links.Self, rule.Data.Links.Category)

	createTestCategoryRule(suite.T(), "ada", app.CategoryRuleEditable{BudgetID: budget.Data.ID, CategoryID: fuel.Data.ID, Pattern: "*station*", Priority: 1})

	tests := []struct {
		name string
		rule app.CategoryRuleEditable
	}{
		{"Duplicate pattern", app.CategoryRuleEditable{BudgetID: budget.Data.ID, CategoryID: fuel.Data.ID, Pattern: "*SUPERMARKET*"}},
		{"No pattern", app.CategoryRuleEditable{BudgetID: budget.Data.ID, CategoryID: fuel.Data.ID, Pattern: "  "}},
		{"Category of other budget", app.CategoryRuleEditable{BudgetID: budget.Data.ID, CategoryID: foreign.Data.ID, Pattern: "*bakery*"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestCategoryRule(t, "ada", tt.rule, http.StatusBadRequest)
		})
	}

	// Rules are listed in the order they are checked
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/category-rules?budget="+budget.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("*station*", list.Data[0].Pattern)
	suite.Assert().Equal("*supermarket*", list.Data[1].Pattern)

	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"priority": 0}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/category-rules?budget="+budget.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Equal("*supermarket*", list.Data[0].Pattern)

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/category-rules?category="+fuel.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 1)

	r = test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCategoryRulesPartnerManages() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "grace", budget, models.RolePartner)
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)
	food := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food"})

	createTestCategoryRule(suite.T(), "grace", app.CategoryRuleEditable{BudgetID: budget.Data.ID, CategoryID: food.Data.ID, Pattern: "*market*"})
	createTestCategoryRule(suite.T(), "kid", app.CategoryRuleEditable{BudgetID: budget.Data.ID, CategoryID: food.Data.ID, Pattern: "*candy*"}, http.StatusForbidden)
}
