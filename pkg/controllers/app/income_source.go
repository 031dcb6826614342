package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterIncomeSourceRoutes registers the routes for income sources with
// the RouterGroup that is passed.
func RegisterIncomeSourceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeSourceList)
		r.GET("", GetIncomeSources)
		r.POST("", CreateIncomeSources)
	}

	// Income source with ID
	{
		r.OPTIONS("/:id", OptionsIncomeSourceDetail)
		r.GET("/:id", GetIncomeSource)
		r.PATCH("/:id", UpdateIncomeSource)
		r.DELETE("/:id", DeleteIncomeSource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income Sources
// @Security		Bearer
// @Success		204
// @Router			/app/income-sources [options]
func OptionsIncomeSourceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income Sources
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/income-sources/{id} [options]
func OptionsIncomeSourceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.IncomeSource](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create income sources
// @Description	Creates new income sources
// @Tags			Income Sources
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	IncomeSourceCreateResponse
// @Failure		400		{object}	IncomeSourceCreateResponse
// @Failure		403		{object}	IncomeSourceCreateResponse
// @Failure		404		{object}	IncomeSourceCreateResponse
// @Failure		500		{object}	IncomeSourceCreateResponse
// @Param			incomeSources	body		[]IncomeSourceEditable	true	"IncomeSources"
// @Router			/app/income-sources [post]
func CreateIncomeSources(c *gin.Context) {
	var editables []IncomeSourceEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), IncomeSourceCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeSourceCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionWrite)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		incomeSource := editable.model()
		err = models.DB.Create(&incomeSource).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newIncomeSource(c, incomeSource)
		r.Data = append(r.Data, IncomeSourceResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List income sources
// @Description	Returns a list of income sources in the budgets of the current user
// @Tags			Income Sources
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	IncomeSourceListResponse
// @Failure		400	{object}	IncomeSourceListResponse
// @Failure		500	{object}	IncomeSourceListResponse
// @Router			/app/income-sources [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			member	query	string	false	"Filter by member ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			active	query	bool	false	"Is the income source active?"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first income source returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of income sources to return. Defaults to 50."
func GetIncomeSources(c *gin.Context) {
	var filter IncomeSourceQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, IncomeSourceListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), IncomeSourceListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("name ASC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	incomeSources, pagination, err := page[models.IncomeSource](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), IncomeSourceListResponse{Error: message(c, err)})
		return
	}

	data := make([]IncomeSource, 0, len(incomeSources))
	for _, incomeSource := range incomeSources {
		data = append(data, newIncomeSource(c, incomeSource))
	}

	c.JSON(http.StatusOK, IncomeSourceListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get income source
// @Description	Returns a specific income source
// @Tags			Income Sources
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	IncomeSourceResponse
// @Failure		400	{object}	IncomeSourceResponse
// @Failure		404	{object}	IncomeSourceResponse
// @Failure		500	{object}	IncomeSourceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/income-sources/{id} [get]
func GetIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	incomeSource, err := getResource[models.IncomeSource](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	data := newIncomeSource(c, incomeSource)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &data})
}

// @Summary		Update income source
// @Description	Updates an income source. Only values to be updated need to be specified.
// @Tags			Income Sources
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	IncomeSourceResponse
// @Failure		400		{object}	IncomeSourceResponse
// @Failure		403		{object}	IncomeSourceResponse
// @Failure		404		{object}	IncomeSourceResponse
// @Failure		500		{object}	IncomeSourceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			incomeSource	body		IncomeSourceEditable	true	"Income source"
// @Router			/app/income-sources/{id} [patch]
func UpdateIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	incomeSource, err := getResource[models.IncomeSource](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeSourceEditable{})
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	var data IncomeSourceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, incomeSource.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&incomeSource, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), IncomeSourceResponse{Error: message(c, err)})
		return
	}

	apiResource := newIncomeSource(c, incomeSource)
	c.JSON(http.StatusOK, IncomeSourceResponse{Data: &apiResource})
}

// @Summary		Delete income source
// @Description	Deletes an income source
// @Tags			Income Sources
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/income-sources/{id} [delete]
func DeleteIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	incomeSource, err := getResource[models.IncomeSource](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&incomeSource).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
