package app_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/controllers/app"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/test"
	"github.com/shopspring/decimal"
)

func contribute(t *testing.T, subject string, goal app.GoalResponse, contribution app.GoalContributionEditable, expectedStatus int) app.GoalContributionResponse {
	r := test.Request(t, http.MethodPost, goal.Data.Links.Contributions, contribution, as(t, subject))
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response app.GoalContributionResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})

	goal := createTestGoal(suite.T(), "ada", app.GoalEditable{BudgetID: budget.Data.ID, Name: "New car", TargetAmount: decimal.NewFromInt(15000)})
	suite.Assert().Equal(goal.Data.Links.Self+"/contributions", goal.Data.Links.Contributions)
	suite.Assert().Nil(goal.Data.Metrics, "lists and creations do not carry metrics")

	tests := []struct {
		name string
		goal app.GoalEditable
	}{
		{"Duplicate name", app.GoalEditable{BudgetID: budget.Data.ID, Name: "New car", TargetAmount: decimal.NewFromInt(1)}},
		{"No name", app.GoalEditable{BudgetID: budget.Data.ID, TargetAmount: decimal.NewFromInt(1)}},
		{"No target", app.GoalEditable{BudgetID: budget.Data.ID, Name: "Bike"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestGoal(t, "ada", tt.goal, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsContributions() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)
	goal := createTestGoal(suite.T(), "ada", app.GoalEditable{BudgetID: budget.Data.ID, Name: "Vacation", TargetAmount: decimal.NewFromInt(2000)})

	first := contribute(suite.T(), "ada", goal, app.GoalContributionEditable{Amount: decimal.NewFromInt(500), Note: "Bonus"}, http.StatusCreated)
	suite.Assert().Equal(goal.Data.ID, first.Data.GoalID)
	suite.Assert().Equal("Bonus", first.Data.Note)

	// Children contribute too
	contribute(suite.T(), "kid", goal, app.GoalContributionEditable{Amount: decimal.NewFromInt(20)}, http.StatusCreated)

	// Withdrawals are negative contributions
	contribute(suite.T(), "ada", goal, app.GoalContributionEditable{Amount: decimal.NewFromInt(-20)}, http.StatusCreated)
	contribute(suite.T(), "ada", goal, app.GoalContributionEditable{}, http.StatusBadRequest)

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response app.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data.Metrics)
	suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data.Metrics.Saved), response.Data.Metrics.Saved.String())
	suite.Assert().True(decimal.NewFromInt(1500).Equal(response.Data.Metrics.Remaining), response.Data.Metrics.Remaining.String())
	suite.Assert().True(decimal.NewFromInt(25).Equal(response.Data.Metrics.Progress), response.Data.Metrics.Progress.String())
	suite.Assert().False(response.Data.Metrics.Completed)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Contributions, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list app.GoalContributionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Contributions+"/"+first.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Contributions+"/"+first.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Contributions, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 2)
}

func (suite *TestSuiteStandard) TestGoalsContributionOfOtherGoal() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	car := createTestGoal(suite.T(), "ada", app.GoalEditable{BudgetID: budget.Data.ID, Name: "Car", TargetAmount: decimal.NewFromInt(100)})
	bike := createTestGoal(suite.T(), "ada", app.GoalEditable{BudgetID: budget.Data.ID, Name: "Bike", TargetAmount: decimal.NewFromInt(100)})

	contribution := contribute(suite.T(), "ada", car, app.GoalContributionEditable{Amount: decimal.NewFromInt(10)}, http.StatusCreated)

	r := test.Request(suite.T(), http.MethodDelete, bike.Data.Links.Contributions+"/"+contribution.Data.ID.String(), "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, car.Data.Links.Contributions+"/"+uuid.NewString(), "", as(suite.T(), "grace"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	budget := createTestBudget(suite.T(), "ada", app.BudgetEditable{})
	joinBudget(suite.T(), "ada", "kid", budget, models.RoleChild)
	goal := createTestGoal(suite.T(), "ada", app.GoalEditable{BudgetID: budget.Data.ID, Name: "Car", TargetAmount: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{"targetAmount": "250", "targetDate": "2027-06-01T00:00:00Z"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated app.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(decimal.NewFromInt(250).Equal(updated.Data.TargetAmount))
	suite.Require().NotNil(updated.Data.TargetDate)
	suite.Assert().Equal(2027, updated.Data.TargetDate.Year())

	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{"targetAmount": "0"}, as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{"name": "Bike"}, as(suite.T(), "kid"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", as(suite.T(), "ada"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
