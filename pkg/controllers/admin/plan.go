package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterPlanRoutes registers the routes for plans with
// the RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPlanList)
		r.GET("", GetPlans)
		r.POST("", CreatePlans)
	}

	// Plan with ID
	{
		r.OPTIONS("/:id", OptionsPlanDetail)
		r.GET("/:id", GetPlan)
		r.PATCH("/:id", UpdatePlan)
		r.DELETE("/:id", DeletePlan)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Security		Bearer
// @Success		204
// @Router			/super-admin/plans [options]
func OptionsPlanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/plans/{id} [options]
func OptionsPlanDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Plan](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create plans
// @Description	Creates new plans
// @Tags			Plans
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	PlanCreateResponse
// @Failure		400		{object}	PlanCreateResponse
// @Failure		403		{object}	PlanCreateResponse
// @Failure		500		{object}	PlanCreateResponse
// @Param			plans	body		[]PlanEditable	true	"Plans"
// @Router			/super-admin/plans [post]
func CreatePlans(c *gin.Context) {
	var editables []PlanEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), PlanCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PlanCreateResponse{}

	for _, editable := range editables {
		plan := editable.model()
		err = models.DB.Create(&plan).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newPlan(c, plan)
		r.Data = append(r.Data, PlanResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List plans
// @Description	Returns a list of plans
// @Tags			Plans
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	PlanListResponse
// @Failure		400	{object}	PlanListResponse
// @Failure		500	{object}	PlanListResponse
// @Router			/super-admin/plans [get]
// @Param			code		query	string	false	"Filter by code"
// @Param			name		query	string	false	"Filter by name"
// @Param			archived	query	bool	false	"Is the plan archived?"
// @Param			search		query	string	false	"Search for this text in code and name"
// @Param			offset		query	uint	false	"The offset of the first plan returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of plans to return. Defaults to 50."
func GetPlans(c *gin.Context) {
	var filter PlanQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, PlanListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), PlanListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("code ASC").
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	plans, pagination, err := page[models.Plan](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), PlanListResponse{Error: message(c, err)})
		return
	}

	data := make([]Plan, 0, len(plans))
	for _, plan := range plans {
		data = append(data, newPlan(c, plan))
	}

	c.JSON(http.StatusOK, PlanListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get plan
// @Description	Returns a specific plan
// @Tags			Plans
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		404	{object}	PlanResponse
// @Failure		500	{object}	PlanResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/plans/{id} [get]
func GetPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), PlanResponse{Error: message(c, err)})
		return
	}

	plan, err := getResource[models.Plan](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), PlanResponse{Error: message(c, err)})
		return
	}

	data := newPlan(c, plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Update plan
// @Description	Updates a plan. Only values to be updated need to be specified.
// @Tags			Plans
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	PlanResponse
// @Failure		403		{object}	PlanResponse
// @Failure		404		{object}	PlanResponse
// @Failure		500		{object}	PlanResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			plan	body		PlanEditable	true	"Plan"
// @Router			/super-admin/plans/{id} [patch]
func UpdatePlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), PlanResponse{Error: message(c, err)})
		return
	}

	plan, err := getResource[models.Plan](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), PlanResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PlanEditable{})
	if err != nil {
		c.JSON(status(err), PlanResponse{Error: message(c, err)})
		return
	}

	var data PlanEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), PlanResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&plan, updateFields, data.model())
	if err != nil {
		c.JSON(status(err), PlanResponse{Error: message(c, err)})
		return
	}

	apiResource := newPlan(c, plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &apiResource})
}

// @Summary		Delete plan
// @Description	Deletes a plan
// @Tags			Plans
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/plans/{id} [delete]
func DeletePlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	plan, err := getResource[models.Plan](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&plan).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
