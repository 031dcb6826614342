package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterAccessLinkRoutes registers the routes for access links with
// the RouterGroup that is passed.
func RegisterAccessLinkRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccessLinkList)
		r.GET("", GetAccessLinks)
		r.POST("", CreateAccessLinks)
	}

	// Access link with ID
	{
		r.OPTIONS("/:id", OptionsAccessLinkDetail)
		r.GET("/:id", GetAccessLink)
		r.PATCH("/:id", UpdateAccessLink)
		r.DELETE("/:id", DeleteAccessLink)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Access links
// @Security		Bearer
// @Success		204
// @Router			/super-admin/access-links [options]
func OptionsAccessLinkList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Access links
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/access-links/{id} [options]
func OptionsAccessLinkDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.AccessLink](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create access links
// @Description	Creates new access links
// @Tags			Access links
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	AccessLinkCreateResponse
// @Failure		400		{object}	AccessLinkCreateResponse
// @Failure		403		{object}	AccessLinkCreateResponse
// @Failure		500		{object}	AccessLinkCreateResponse
// @Param			links	body		[]AccessLinkEditable	true	"AccessLinks"
// @Router			/super-admin/access-links [post]
func CreateAccessLinks(c *gin.Context) {
	var editables []AccessLinkEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), AccessLinkCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccessLinkCreateResponse{}

	for _, editable := range editables {
		link := editable.model()
		err = models.DB.Create(&link).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newAccessLink(c, link)
		r.Data = append(r.Data, AccessLinkResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List access links
// @Description	Returns a list of access links
// @Tags			Access links
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	AccessLinkListResponse
// @Failure		400	{object}	AccessLinkListResponse
// @Failure		500	{object}	AccessLinkListResponse
// @Router			/super-admin/access-links [get]
// @Param			plan		query	string	false	"Filter by plan ID"
// @Param			beta		query	bool	false	"Does the link grant beta access?"
// @Param			archived	query	bool	false	"Is the link archived?"
// @Param			note		query	string	false	"Filter by note"
// @Param			offset		query	uint	false	"The offset of the first link returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of links to return. Defaults to 50."
func GetAccessLinks(c *gin.Context) {
	var filter AccessLinkQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, AccessLinkListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), AccessLinkListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	links, pagination, err := page[models.AccessLink](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), AccessLinkListResponse{Error: message(c, err)})
		return
	}

	data := make([]AccessLink, 0, len(links))
	for _, link := range links {
		data = append(data, newAccessLink(c, link))
	}

	c.JSON(http.StatusOK, AccessLinkListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get access link
// @Description	Returns a specific access link
// @Tags			Access links
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	AccessLinkResponse
// @Failure		400	{object}	AccessLinkResponse
// @Failure		404	{object}	AccessLinkResponse
// @Failure		500	{object}	AccessLinkResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/access-links/{id} [get]
func GetAccessLink(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), AccessLinkResponse{Error: message(c, err)})
		return
	}

	link, err := getResource[models.AccessLink](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), AccessLinkResponse{Error: message(c, err)})
		return
	}

	data := newAccessLink(c, link)
	c.JSON(http.StatusOK, AccessLinkResponse{Data: &data})
}

// @Summary		Update access link
// @Description	Updates an access link. Only values to be updated need to be specified.
// @Tags			Access links
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	AccessLinkResponse
// @Failure		400		{object}	AccessLinkResponse
// @Failure		403		{object}	AccessLinkResponse
// @Failure		404		{object}	AccessLinkResponse
// @Failure		500		{object}	AccessLinkResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			link	body		AccessLinkEditable	true	"Access link"
// @Router			/super-admin/access-links/{id} [patch]
func UpdateAccessLink(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), AccessLinkResponse{Error: message(c, err)})
		return
	}

	link, err := getResource[models.AccessLink](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), AccessLinkResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccessLinkEditable{})
	if err != nil {
		c.JSON(status(err), AccessLinkResponse{Error: message(c, err)})
		return
	}

	var data AccessLinkEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), AccessLinkResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&link, updateFields, data.model())
	if err != nil {
		c.JSON(status(err), AccessLinkResponse{Error: message(c, err)})
		return
	}

	apiResource := newAccessLink(c, link)
	c.JSON(http.StatusOK, AccessLinkResponse{Data: &apiResource})
}

// @Summary		Delete access link
// @Description	Deletes an access link
// @Tags			Access links
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/access-links/{id} [delete]
func DeleteAccessLink(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	link, err := getResource[models.AccessLink](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&link).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
