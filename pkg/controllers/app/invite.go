package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/auth"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterInviteRoutes registers the routes for invites with
// the RouterGroup that is passed.
func RegisterInviteRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInviteList)
		r.GET("", GetInvites)
		r.POST("", CreateInvites)
		r.OPTIONS("/accept", OptionsInviteAccept)
		r.POST("/accept", AcceptInvite)
	}

	// Invite with ID
	{
		r.OPTIONS("/:id", OptionsInviteDetail)
		r.GET("/:id", GetInvite)
		r.DELETE("/:id", DeleteInvite)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invites
// @Security		Bearer
// @Success		204
// @Router			/app/invites [options]
func OptionsInviteList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invites
// @Security		Bearer
// @Success		204
// @Router			/app/invites/accept [options]
func OptionsInviteAccept(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invites
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/invites/{id} [options]
func OptionsInviteDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Invite](c, uri.ID.UUID, models.PermissionManage)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create invites
// @Description	Creates invites to budgets. Share the token of an invite with the person who should join the budget.
// @Tags			Invites
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	InviteCreateResponse
// @Failure		400		{object}	InviteCreateResponse
// @Failure		403		{object}	InviteCreateResponse
// @Failure		404		{object}	InviteCreateResponse
// @Failure		500		{object}	InviteCreateResponse
// @Param			invites	body		[]InviteEditable	true	"Invites"
// @Router			/app/invites [post]
func CreateInvites(c *gin.Context) {
	var editables []InviteEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), InviteCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InviteCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionManage)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		invite := editable.model()
		invite.InvitedByID = auth.CurrentUser(c).ID

		err = models.DB.Create(&invite).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newInvite(c, invite)
		r.Data = append(r.Data, InviteResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List invites
// @Description	Returns a list of invites to the budgets owned by the current user
// @Tags			Invites
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	InviteListResponse
// @Failure		400	{object}	InviteListResponse
// @Failure		500	{object}	InviteListResponse
// @Router			/app/invites [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			role	query	string	false	"Filter by role"
// @Param			email	query	string	false	"Filter by email"
// @Param			offset	query	uint	false	"The offset of the first invite returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of invites to return. Defaults to 50."
func GetInvites(c *gin.Context) {
	var filter InviteQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, InviteListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), InviteListResponse{Error: message(c, err)})
		return
	}

	// Only owners can see invites
	owned := models.MemberBudgetIDs(models.DB, auth.CurrentUser(c).ID).Where("role = ?", models.RoleOwner)

	q := models.DB.
		Order("created_at DESC").
		Where("budget_id IN (?)", owned).
		Where(&model, queryFields...)


	invites, pagination, err := page[models.Invite](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), InviteListResponse{Error: message(c, err)})
		return
	}

	data := make([]Invite, 0, len(invites))
	for _, invite := range invites {
		data = append(data, newInvite(c, invite))
	}

	c.JSON(http.StatusOK, InviteListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get invite
// @Description	Returns a specific invite
// @Tags			Invites
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	InviteResponse
// @Failure		400	{object}	InviteResponse
// @Failure		403	{object}	InviteResponse
// @Failure		404	{object}	InviteResponse
// @Failure		500	{object}	InviteResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/invites/{id} [get]
func GetInvite(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), InviteResponse{Error: message(c, err)})
		return
	}

	invite, err := getResource[models.Invite](c, uri.ID.UUID, models.PermissionManage)
	if err != nil {
		c.JSON(status(err), InviteResponse{Error: message(c, err)})
		return
	}

	data := newInvite(c, invite)
	c.JSON(http.StatusOK, InviteResponse{Data: &data})
}

// @Summary		Delete invite
// @Description	Deletes an invite. It can no longer be accepted afterwards.
// @Tags			Invites
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/invites/{id} [delete]
func DeleteInvite(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	invite, err := getResource[models.Invite](c, uri.ID.UUID, models.PermissionManage)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&invite).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Accept invite
// @Description	Joins the budget of the invite with the role of the invite
// @Tags			Invites
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		402		{object}	MemberResponse
// @Failure		404		{object}	MemberResponse
// @Failure		500		{object}	MemberResponse
// @Param			invite	body		InviteAccept	true	"Invite"
// @Router			/app/invites/accept [post]
func AcceptInvite(c *gin.Context) {
	var accept InviteAccept
	err := httputil.BindData(c, &accept)
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	member, err := models.AcceptInvite(models.DB, auth.CurrentUser(c), accept.Token, time.Now())
	if err != nil {
		c.JSON(status(err), MemberResponse{Error: message(c, err)})
		return
	}

	data := newMember(c, member)
	c.JSON(http.StatusCreated, MemberResponse{Data: &data})
}
