package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/auth"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
		r.GET("/:id/months/:month", GetBudgetMonth)
		r.POST("/:id/months/:month/generate", GenerateBudgetMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Security		Bearer
// @Success		204
// @Router			/app/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	_, err := getBudget(c, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// getBudget returns the budget for the ID in the URI if the current user
// has the permission.
func getBudget(c *gin.Context, p models.Permission) (models.Budget, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Budget{}, err
	}

	if uri.ID.UUID == uuid.Nil {
		return models.Budget{}, errNoID
	}

	_, err = authorize(c, uri.ID.UUID, p)
	if err != nil {
		return models.Budget{}, err
	}

	var budget models.Budget
	err = models.DB.First(&budget, "id = ?", uri.ID.UUID).Error
	return budget, err
}

// @Summary		Create budgets
// @Description	Creates new budgets. The current user becomes the owner of each budget.
// @Tags			Budgets
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		402		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/app/budgets [post]
func CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), BudgetCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()
		err = models.CreateBudget(models.DB, auth.CurrentUser(c), &budget)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List budgets
// @Description	Returns the list of budgets the current user is a member of
// @Tags			Budgets
// @Security		Bearer
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	BudgetListResponse
// @Failure		500			{object}	BudgetListResponse
// @Router			/app/budgets [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			archived	query	bool	false	"Is the budget archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, BudgetListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Order("name ASC").
		Scopes(memberBudgets(c, "id")).
		Where(&model, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	budgets, pagination, err := page[models.Budget](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), BudgetListResponse{Error: message(c, err)})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, err := getBudget(c, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: message(c, err)})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Update an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Security		Bearer
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		403		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/app/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	budget, err := getBudget(c, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: message(c, err)})
		return
	}

	var data BudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&budget, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), BudgetResponse{Error: message(c, err)})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Only the owner can delete a budget.
// @Tags			Budgets
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	budget, err := getBudget(c, models.PermissionManage)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DeleteBudget(models.DB, budget)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// getBudgetMonth returns the budget and month from the URI if the current
// user has the permission on the budget.
func getBudgetMonth(c *gin.Context, p models.Permission) (models.Budget, URIMonth, error) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Budget{}, uri, errMonthRequired
	}

	budget, err := getBudget(c, p)
	return budget, uri, err
}

// @Summary		Get month
// @Description	Returns the overview of the budget for a month. Pending transactions for recurring bills and income sources are created for the month if they do not exist yet.
// @Tags			Budgets
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	MonthSummaryResponse
// @Failure		400		{object}	MonthSummaryResponse
// @Failure		404		{object}	MonthSummaryResponse
// @Failure		500		{object}	MonthSummaryResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/app/budgets/{id}/months/{month} [get]
func GetBudgetMonth(c *gin.Context) {
	budget, uri, err := getBudgetMonth(c, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), MonthSummaryResponse{Error: message(c, err)})
		return
	}

	_, err = models.EnsurePendingTransactions(models.DB, budget.ID, uri.Month)
	if err != nil {
		c.JSON(status(err), MonthSummaryResponse{Error: message(c, err)})
		return
	}

	summary, err := models.BuildMonthSummary(models.DB, budget.ID, uri.Month)
	if err != nil {
		c.JSON(status(err), MonthSummaryResponse{Error: message(c, err)})
		return
	}

	data := newMonthSummary(c, summary, budget.ID.String())
	c.JSON(http.StatusOK, MonthSummaryResponse{Data: &data})
}

// @Summary		Generate pending transactions
// @Description	Creates the pending transactions of all recurring bills and income sources for the month. Occurrences that already have a transaction are skipped.
// @Tags			Budgets
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	GenerateResponse
// @Failure		400		{object}	GenerateResponse
// @Failure		403		{object}	GenerateResponse
// @Failure		404		{object}	GenerateResponse
// @Failure		500		{object}	GenerateResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/app/budgets/{id}/months/{month}/generate [post]
func GenerateBudgetMonth(c *gin.Context) {
	budget, uri, err := getBudgetMonth(c, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), GenerateResponse{Error: message(c, err)})
		return
	}

	created, err := models.EnsurePendingTransactions(models.DB, budget.ID, uri.Month)
	if err != nil {
		c.JSON(status(err), GenerateResponse{Error: message(c, err)})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Data: &GenerateResult{Created: created}})
}
