package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterCategoryRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRules)
	}

	// Category rule with ID
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.PATCH("/:id", UpdateCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Security		Bearer
// @Success		204
// @Router			/app/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.CategoryRule](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category rules
// @Description	Creates new category rules
// @Tags			Category Rules
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		403		{object}	CategoryRuleCreateResponse
// @Failure		404		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			categoryRules	body		[]CategoryRuleEditable	true	"CategoryRules"
// @Router			/app/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	var editables []CategoryRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), CategoryRuleCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionWrite)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		categoryRule := editable.model()
		err = models.DB.Create(&categoryRule).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newCategoryRule(c, categoryRule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List category rules
// @Description	Returns a list of category rules in the budgets of the current user
// @Tags			Category Rules
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	CategoryRuleListResponse
// @Failure		400	{object}	CategoryRuleListResponse
// @Failure		500	{object}	CategoryRuleListResponse
// @Router			/app/category-rules [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			pattern		query	string	false	"Filter by text in the pattern"
// @Param			offset		query	uint	false	"The offset of the first category rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of category rules to return. Defaults to 50."
func GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), CategoryRuleListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("priority ASC, created_at ASC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	categoryRules, pagination, err := page[models.CategoryRule](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), CategoryRuleListResponse{Error: message(c, err)})
		return
	}

	data := make([]CategoryRule, 0, len(categoryRules))
	for _, categoryRule := range categoryRules {
		data = append(data, newCategoryRule(c, categoryRule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	categoryRule, err := getResource[models.CategoryRule](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	data := newCategoryRule(c, categoryRule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &data})
}

// @Summary		Update category rule
// @Description	Updates a category rule. Only values to be updated need to be specified.
// @Tags			Category Rules
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		403		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryRule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/app/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	categoryRule, err := getResource[models.CategoryRule](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryRuleEditable{})
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	var data CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, categoryRule.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&categoryRule, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{Error: message(c, err)})
		return
	}

	apiResource := newCategoryRule(c, categoryRule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &apiResource})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	categoryRule, err := getResource[models.CategoryRule](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&categoryRule).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
