package admin

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/models"
	"gorm.io/gorm"
)

type PlanEditable struct {
	Code          string `json:"code" example:"family" default:""`                // Unique code of the plan. Normalized to lower case
	Name          string `json:"name" example:"Family" default:""`                // Name of the plan
	StripePriceID string `json:"stripePriceId" example:"price_1PbYk2" default:""` // Stripe price used at checkout. Plans without one cannot be bought
	MaxBudgets    int    `json:"maxBudgets" example:"3" default:"0" minimum:"0"`  // Maximum number of budgets a user can own. 0 means unlimited
	MaxMembers    int    `json:"maxMembers" example:"6" default:"0" minimum:"0"`  // Maximum number of members per budget. 0 means unlimited
	Archived      bool   `json:"archived" example:"false" default:"false"`        // Archived plans cannot be bought
}

func (editable PlanEditable) model() models.Plan {
	return models.Plan{
		Code:          editable.Code,
		Name:          editable.Name,
		StripePriceID: editable.StripePriceID,
		MaxBudgets:    editable.MaxBudgets,
		MaxMembers:    editable.MaxMembers,
		Archived:      editable.Archived,
	}
}

type PlanLinks struct {
	Self    string `json:"self" example:"https://example.com/api/super-admin/plans/1f9e0a1c-53a0-4bc6-8a35-fa7ab2f9a1b7"`           // The plan itself
	Coupons string `json:"coupons" example:"https://example.com/api/super-admin/coupons?plan=1f9e0a1c-53a0-4bc6-8a35-fa7ab2f9a1b7"` // Coupons for the plan
}

// Plan is the API representation of a Plan.
type Plan struct {
	models.DefaultModel
	PlanEditable
	Links PlanLinks `json:"links"`
}

func newPlan(c *gin.Context, model models.Plan) Plan {
	url := c.GetString(string(models.DBContextURL))

	return Plan{
		DefaultModel: model.DefaultModel,
		PlanEditable: PlanEditable{
			Code:          model.Code,
			Name:          model.Name,
			StripePriceID: model.StripePriceID,
			MaxBudgets:    model.MaxBudgets,
			MaxMembers:    model.MaxMembers,
			Archived:      model.Archived,
		},
		Links: PlanLinks{
			Self:    fmt.Sprintf("%s/super-admin/plans/%s", url, model.ID),
			Coupons: fmt.Sprintf("%s/super-admin/coupons?plan=%s", url, model.ID),
		},
	}
}

type PlanListResponse struct {
	Data       []Plan      `json:"data"`                                                          // List of plans
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PlanCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PlanResponse `json:"data"`                                                          // List of created plans
}

func (r *PlanCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, PlanResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PlanResponse struct {
	Data  *Plan   `json:"data"`                                                          // Data for the plan
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PlanQueryFilter struct {
	Code     string `form:"code"`                       // By code
	Name     string `form:"name" filterField:"false"`   // By name
	Archived bool   `form:"archived"`                   // Is the plan archived?
	Search   string `form:"search" filterField:"false"` // By string in code or name
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first plan returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of plans to return. Defaults to 50.
}

func (f PlanQueryFilter) model() (models.Plan, error) {
	return models.Plan{
		Code:     f.Code,
		Archived: f.Archived,
	}, nil
}

func (f PlanQueryFilter) apply(q *gorm.DB, _ []string) *gorm.DB {
	if f.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", f.Name))
	}

	if f.Search != "" {
		q = q.Where(
			models.DB.Where("code LIKE ?", fmt.Sprintf("%%%s%%", f.Search)).Or(
				models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", f.Search)),
			),
		)
	}

	return q
}
