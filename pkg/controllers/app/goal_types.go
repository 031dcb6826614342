package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalEditable struct {
	BudgetID     uuid.UUID       `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                   // ID of the budget the goal belongs to
	Name         string          `json:"name" example:"New car" default:""`                                                                         // Name of the goal
	Note         string          `json:"note" example:"Something electric" default:""`                                                              // A longer description of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"15000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount to save
	TargetDate   *time.Time      `json:"targetDate" example:"2027-06-01T00:00:00Z"`                                                                 // Date by which the target amount should be saved. Optional
	Archived     bool            `json:"archived" example:"false" default:"false"`                                                                  // Is the goal archived?
}

// model returns the database resource for the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		BudgetID:     editable.BudgetID,
		Name:         editable.Name,
		Note:         editable.Note,
		TargetAmount: editable.TargetAmount,
		TargetDate:   editable.TargetDate,
		Archived:     editable.Archived,
	}
}

type GoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/app/goals/0b6fd5d0-4b8a-4c62-a1d5-2b2e46ef1f0c"`                        // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/app/goals/0b6fd5d0-4b8a-4c62-a1d5-2b2e46ef1f0c/contributions"` // Contributions to the goal
}

// Goal is the API representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Metrics *models.GoalMetrics `json:"metrics,omitempty"` // Progress of the goal. Only set for single goals
	Links   GoalLinks           `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			BudgetID:     model.BudgetID,
			Name:         model.Name,
			Note:         model.Note,
			TargetAmount: model.TargetAmount,
			TargetDate:   model.TargetDate,
			Archived:     model.Archived,
		},
		Links: GoalLinks{
			Self:          fmt.Sprintf("%s/app/goals/%s", url, model.ID),
			Contributions: fmt.Sprintf("%s/app/goals/%s/contributions", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
}

func (r *GoalCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, GoalResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Archived bool   `form:"archived"`                   // Is the goal archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() (models.Goal, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.Goal{}, err
	}

	return models.Goal{
		BudgetID: budgetID,
		Archived: f.Archived,
	}, nil
}

func (f GoalQueryFilter) apply(q *gorm.DB, setFields []string) *gorm.DB {
	return stringFilters(models.DB, q, setFields, f.Name, f.Note, f.Search)
}

type GoalContributionEditable struct {
	MemberID *uuid.UUID      `json:"memberId" example:"2a4c9c5e-44b0-4b38-9e58-c1fbd5c5b8a3"` // ID of the member who contributed. Optional
	Amount   decimal.Decimal `json:"amount" example:"250" multipleOf:"0.00000001"`            // Amount of the contribution. Negative amounts are withdrawals
	Date     time.Time       `json:"date" example:"2026-03-01T00:00:00Z"`                     // Date of the contribution. Defaults to now
	Note     string          `json:"note" example:"Birthday money" default:""`                // A note for the contribution
}

// GoalContribution is the API representation of a GoalContribution.
type GoalContribution struct {
	models.DefaultModel
	GoalID uuid.UUID `json:"goalId" example:"0b6fd5d0-4b8a-4c62-a1d5-2b2e46ef1f0c"` // ID of the goal
	GoalContributionEditable
}

func newGoalContribution(model models.GoalContribution) GoalContribution {
	return GoalContribution{
		DefaultModel: model.DefaultModel,
		GoalID:       model.GoalID,
		GoalContributionEditable: GoalContributionEditable{
			MemberID: model.MemberID,
			Amount:   model.Amount,
			Date:     model.Date,
			Note:     model.Note,
		},
	}
}

type GoalContributionListResponse struct {
	Data  []GoalContribution `json:"data"`                                                          // Contributions to the goal, oldest first
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalContributionResponse struct {
	Data  *GoalContribution `json:"data"`                                                          // Data for the contribution
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
