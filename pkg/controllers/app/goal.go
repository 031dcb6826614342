package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoals)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)

		r.GET("/:id/contributions", GetGoalContributions)
		r.POST("/:id/contributions", CreateGoalContribution)
		r.DELETE("/:id/contributions/:contributionId", DeleteGoalContribution)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Security		Bearer
// @Success		204
// @Router			/app/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Goal](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create goals
// @Description	Creates new goals
// @Tags			Goals
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	GoalCreateResponse
// @Failure		400		{object}	GoalCreateResponse
// @Failure		403		{object}	GoalCreateResponse
// @Failure		404		{object}	GoalCreateResponse
// @Failure		500		{object}	GoalCreateResponse
// @Param			goals	body		[]GoalEditable	true	"Goals"
// @Router			/app/goals [post]
func CreateGoals(c *gin.Context) {
	var editables []GoalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), GoalCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := GoalCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionWrite)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		goal := editable.model()
		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newGoal(c, goal)
		r.Data = append(r.Data, GoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List goals
// @Description	Returns a list of goals in the budgets of the current user
// @Tags			Goals
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		400	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/app/goals [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			archived	query	bool	false	"Is the goal archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, GoalListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), GoalListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("name ASC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	goals, pagination, err := page[models.Goal](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), GoalListResponse{Error: message(c, err)})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get goal
// @Description	Returns a specific goal including its progress
// @Tags			Goals
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/goals/{id} [get]
func GetGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	goal, err := getResource[models.Goal](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	metrics, err := goal.Metrics(models.DB, time.Now())
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	data := newGoal(c, goal)
	data.Metrics = &metrics
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Update goal
// @Description	Updates a goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		403		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/app/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	goal, err := getResource[models.Goal](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, goal.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&goal, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: message(c, err)})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	goal, err := getResource[models.Goal](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		List contributions
// @Description	Returns all contributions to a goal, oldest first
// @Tags			Goals
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	GoalContributionListResponse
// @Failure		400	{object}	GoalContributionListResponse
// @Failure		404	{object}	GoalContributionListResponse
// @Failure		500	{object}	GoalContributionListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/goals/{id}/contributions [get]
func GetGoalContributions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), GoalContributionListResponse{Error: message(c, err)})
		return
	}

	goal, err := getResource[models.Goal](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), GoalContributionListResponse{Error: message(c, err)})
		return
	}

	contributions, err := goal.Contributions(models.DB)
	if err != nil {
		c.JSON(status(err), GoalContributionListResponse{Error: message(c, err)})
		return
	}

	data := make([]GoalContribution, 0, len(contributions))
	for _, contribution := range contributions {
		data = append(data, newGoalContribution(contribution))
	}

	c.JSON(http.StatusOK, GoalContributionListResponse{Data: data})
}

// @Summary		Create contribution
// @Description	Adds money to a goal. Negative amounts withdraw money from it.
// @Tags			Goals
// @Security		Bearer
// @Produce		json
// @Success		201				{object}	GoalContributionResponse
// @Failure		400				{object}	GoalContributionResponse
// @Failure		403				{object}	GoalContributionResponse
// @Failure		404				{object}	GoalContributionResponse
// @Failure		500				{object}	GoalContributionResponse
// @Param			id				path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contribution	body		GoalContributionEditable	true	"Contribution"
// @Router			/app/goals/{id}/contributions [post]
func CreateGoalContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), GoalContributionResponse{Error: message(c, err)})
		return
	}

	goal, err := getResource[models.Goal](c, uri.ID.UUID, models.PermissionContribute)
	if err != nil {
		c.JSON(status(err), GoalContributionResponse{Error: message(c, err)})
		return
	}

	var editable GoalContributionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), GoalContributionResponse{Error: message(c, err)})
		return
	}

	contribution := models.GoalContribution{
		GoalID:   goal.ID,
		MemberID: editable.MemberID,
		Amount:   editable.Amount,
		Date:     editable.Date,
		Note:     editable.Note,
	}

	err = models.DB.Create(&contribution).Error
	if err != nil {
		c.JSON(status(err), GoalContributionResponse{Error: message(c, err)})
		return
	}

	data := newGoalContribution(contribution)
	c.JSON(http.StatusCreated, GoalContributionResponse{Data: &data})
}

// @Summary		Delete contribution
// @Description	Deletes a contribution to a goal
// @Tags			Goals
// @Security		Bearer
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		403				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contributionId	path		string	true	"ID of the contribution"
// @Router			/app/goals/{id}/contributions/{contributionId} [delete]
func DeleteGoalContribution(c *gin.Context) {
	var uri URIContribution
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	goal, err := getResource[models.Goal](c, uri.ID.UUID, models.PermissionContribute)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	var contribution models.GoalContribution
	err = models.DB.Where(&models.GoalContribution{GoalID: goal.ID}).First(&contribution, "id = ?", uri.ContributionID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&contribution).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
