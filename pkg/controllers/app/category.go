package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Security		Bearer
// @Success		204
// @Router			/app/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Category](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create categories
// @Description	Creates new categories
// @Tags			Categories
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	CategoryCreateResponse
// @Failure		400		{object}	CategoryCreateResponse
// @Failure		403		{object}	CategoryCreateResponse
// @Failure		404		{object}	CategoryCreateResponse
// @Failure		500		{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/app/categories [post]
func CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), CategoryCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionWrite)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		category := editable.model()
		err = models.DB.Create(&category).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List categories
// @Description	Returns a list of categories in the budgets of the current user
// @Tags			Categories
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/app/categories [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			kind		query	string	false	"Filter by kind"
// @Param			archived	query	bool	false	"Is the category archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first category returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CategoryListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), CategoryListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("name ASC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	categories, pagination, err := page[models.Category](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), CategoryListResponse{Error: message(c, err)})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	category, err := getResource[models.Category](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	CategoryResponse
// @Failure		400		{object}	CategoryResponse
// @Failure		403		{object}	CategoryResponse
// @Failure		404		{object}	CategoryResponse
// @Failure		500		{object}	CategoryResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/app/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	category, err := getResource[models.Category](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, category.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&category, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: message(c, err)})
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Delete category
// @Description	Deletes a category
// @Tags			Categories
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	category, err := getResource[models.Category](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
