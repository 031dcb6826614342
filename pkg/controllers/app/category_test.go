package app_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries", MonthlyLimit: decimal.NewFromInt(450)})
	suite.Assert().Equal(models.KindExpense, category.Data.Kind)
	suite.Assert().Equal(fmt.Sprintf("%s/categories/%s", baseURL, category.Data.ID), category.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("%s/transactions?category=%s", baseURL, category.Data.ID), category.Data.Links.Transactions)

	tests := []struct {
		name     string
		category app.CategoryEditable
		status   int
	}{
		{"Duplicate name", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"}, http.StatusBadRequest},
		{"No name", app.CategoryEditable{BudgetID: budget.Data.ID}, http.StatusBadRequest},
		{"Invalid kind", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Other", Kind: "transfer"}, http.StatusBadRequest},
		{"Negative limit", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Other", MonthlyLimit: decimal.NewFromInt(-1)}, http.StatusBadRequest},
		{"Unknown budget", app.CategoryEditable{BudgetID: uuid.New(), Name: "Other"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestCategory(t, "ada", tt.category, tt.status)
		})
	}

	// Names are unique among categories that are not deleted
	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Groceries"})
}

func (suite *TestSuiteStandard) TestCategoriesCreateMixed() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/categories", []app.CategoryEditable{
		{BudgetID: budget.Data.ID, Name: "Food"},
		{BudgetID: budget.Data.ID},
	}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response app.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Food", response.Data[0].Data.Name)
	suite.Require().NotNil(response.Data[1].Error)
	suite.Assert().Equal(models.ErrNameEmpty.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	other := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Other"})
	foreign := createTestBudget(suite.T(), "grace", app.BudgetEditable{})

	createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food", Note: "Groceries and restaurants"})
	createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Salary", Kind: models.KindIncome})
	createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Gym", Archived: true})
	createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: other.Data.ID, Name: "Food"})
	createTestCategory(suite.T(), "grace", app.CategoryEditable{BudgetID: foreign.Data.ID, Name: "Food"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Budget", fmt.Sprintf("budget=%s", budget.Data.ID), 3},
		{"Foreign budget", fmt.Sprintf("budget=%s", foreign.Data.ID), 0},
		{"Kind", "kind=income", 1},
		{"Archived", "archived=true", 1},
		{"Name", "name=Food", 2},
		{"Search", "search=restaurant", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"/categories?"+tt.query, "", as(t, "ada"))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list app.CategoryListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/categories?budget=nope", "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	other := createTestBudget(suite.T(), "ada", app.BudgetEditable{Name: "Other"})
	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food", Color: "#ff0000"})
	createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Fun"})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{"monthlyLimit": "300", "note": "Groceries"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(decimal.NewFromInt(300).Equal(updated.Data.MonthlyLimit))
	suite.Assert().Equal("Groceries", updated.Data.Note)
	suite.Assert().Equal("#ff0000", updated.Data.Color)

	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"Duplicate name", map[string]any{"name": "Fun"}, http.StatusBadRequest},
		{"Other budget", map[string]any{"budgetId": other.Data.ID}, http.StatusBadRequest},
		{"Invalid kind", map[string]any{"kind": "gift"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, category.Data.Links.Self, tt.body, as(t, "ada"))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesPermissions() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)
	category := createTestCategory(suite.T(), "ada", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Food"})

	// Children can see categories, but not change them
	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	createTestCategory(suite.T(), "kid", app.CategoryEditable{BudgetID: budget.Data.ID, Name: "Toys"}, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{"name": "Sweets"}, as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// Strangers do not see it at all
	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/categories/"+uuid.NewString(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
