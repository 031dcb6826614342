package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

type PlanStats struct {
	PlanID        uuid.UUID `json:"planId" example:"1f9e0a1c-53a0-4bc6-8a35-fa7ab2f9a1b7"` // ID of the plan
	Code          string    `json:"code" example:"family"`                                 // Code of the plan
	Subscriptions int64     `json:"subscriptions" example:"17"`                            // Number of active subscriptions for the plan
}

type Stats struct {
	Users               int64       `json:"users" example:"230"`              // Number of users
	Budgets             int64       `json:"budgets" example:"198"`            // Number of budgets
	ActiveSubscriptions int64       `json:"activeSubscriptions" example:"41"` // Number of active subscriptions
	Plans               []PlanStats `json:"plans"`                            // Active subscriptions per plan
}

type StatsResponse struct {
	Data  *Stats  `json:"data"`                                                              // Server statistics
	Error *string `json:"error" example:"you do not have permission to perform this action"` // The error, if any occurred
}

// RegisterStatsRoutes registers the statistics route with the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Security		Bearer
// @Success		204
// @Router			/super-admin/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns the number of users, budgets and active subscriptions
// @Tags			Stats
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/super-admin/stats [get]
func GetStats(c *gin.Context) {
	var stats Stats

	err := models.DB.Model(&models.User{}).Count(&stats.Users).Error
	if err != nil {
		c.JSON(status(err), StatsResponse{Error: message(c, err)})
		return
	}

	err = models.DB.Model(&models.Budget{}).Count(&stats.Budgets).Error
	if err != nil {
		c.JSON(status(err), StatsResponse{Error: message(c, err)})
		return
	}

	stats.Plans = make([]PlanStats, 0)
	err = models.DB.
		Model(&models.Subscription{}).
		Select("plans.id AS plan_id, plans.code AS code, COUNT(subscriptions.id) AS subscriptions").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Where("subscriptions.status = ?", models.SubscriptionActive).
		Group("plans.id, plans.code").
		Order("plans.code ASC").
		Scan(&stats.Plans).Error
	if err != nil {
		c.JSON(status(err), StatsResponse{Error: message(c, err)})
		return
	}

	for _, p := range stats.Plans {
		stats.ActiveSubscriptions += p.Subscriptions
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}
