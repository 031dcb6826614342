package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"gorm.io/gorm"
)

// RegisterMemberRoutes registers the routes for members with
// the RouterGroup that is passed.
func RegisterMemberRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMemberList)
		r.GET("", GetMembers)
		r.POST("", CreateMembers)
	}

	// Member with ID
	{
		r.OPTIONS("/:id", OptionsMemberDetail)
		r.GET("/:id", GetMember)
		r.PATCH("/:id", UpdateMember)
		r.DELETE("/:id", DeleteMember)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Security		Bearer
// @Success		204
// @Router			/app/members [options]
func OptionsMemberList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/members/{id} [options]
func OptionsMemberDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Member](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create members
// @Description	Creates new members without a user, e.g. for young children or pets. Users join budgets through invites.
// @Tags			Members
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	MemberCreateResponse
// @Failure		400		{object}	MemberCreateResponse
// @Failure		403		{object}	MemberCreateResponse
// @Failure		404		{object}	MemberCreateResponse
// @Failure		500		{object}	MemberCreateResponse
// @Param			members	body		[]MemberEditable	true	"Members"
// @Router			/app/members [post]
func CreateMembers(c *gin.Context) {
	var editables []MemberEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), MemberCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := MemberCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionManage)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		if editable.Role != models.RoleChild && editable.Role != models.RolePet && editable.Role != "" {
			status = r.appendError(c, errMemberUserLinked, status)
			continue
		}

		member := editable.model()
		err = models.AddMember(models.DB, &member)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newMember(c, member)
		r.Data = append(r.Data, MemberResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List members
// @Description	Returns a list of members in the budgets of the current user
// @Tags			Members
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	MemberListResponse
// @Failure		400	{object}	MemberListResponse
// @Failure		500	{object}	MemberListResponse
// @Router			/app/members [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			role		query	string	false	"Filter by role"
// @Param			archived	query	bool	false	"Is the member archived?"
// @Param			offset		query	uint	false	"The offset of the first member returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of members to return. Defaults to 50."
func GetMembers(c *gin.Context) {
	var filter MemberQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, MemberListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), MemberListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("created_at ASC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	members, pagination, err := page[models.Member](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), MemberListResponse{Error: message(c, err)})
		return
	}

	data := make([]Member, 0, len(members))
	for _, member := range members {
		data = append(data, newMember(c, member))
	}

	c.JSON(http.StatusOK, MemberListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get member
// @Description	Returns a specific member
// @Tags			Members
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	MemberResponse
// @Failure		400	{object}	MemberResponse
// @Failure		404	{object}	MemberResponse
// @Failure		500	{object}	MemberResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/members/{id} [get]
func GetMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	member, err := getResource[models.Member](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	data := newMember(c, member)
	c.JSON(http.StatusOK, MemberResponse{Data: &data})
}

// @Summary		Update member
// @Description	Updates a member. Only values to be updated need to be specified. The owner of a budget cannot be changed.
// @Tags			Members
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		403		{object}	MemberResponse
// @Failure		404		{object}	MemberResponse
// @Failure		500		{object}	MemberResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/app/members/{id} [patch]
func UpdateMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	member, err := getResource[models.Member](c, uri.ID.UUID, models.PermissionManage)
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MemberEditable{})
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	var data MemberEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, member.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	if member.Role == models.RoleOwner {
		c.JSON(status(models.ErrOwnerImmutable), MemberResponse{Error: message(c, models.ErrOwnerImmutable)})
		return
	}

	err = updateResource(&member, updateFields, data.model(), func(_ *gorm.DB, updated models.Member) error {
		if updated.Role == models.RoleOwner {
			return models.ErrOwnerRole
		}
		return nil
	})
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	apiResource := newMember(c, member)
	c.JSON(http.StatusOK, MemberResponse{Data: &apiResource})
}

// @Summary		Delete member
// @Description	Deletes a member. The owner of a budget cannot be deleted.
// @Tags			Members
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/members/{id} [delete]
func DeleteMember(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	member, err := getResource[models.Member](c, uri.ID.UUID, models.PermissionManage)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	if member.Role == models.RoleOwner {
		c.JSON(status(models.ErrOwnerImmutable), httpError{Error: models.ErrOwnerImmutable.Error()})
		return
	}

	err = models.DB.Delete(&member).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
