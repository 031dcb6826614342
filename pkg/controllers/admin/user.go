package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.PATCH("/:id", UpdateUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Security		Bearer
// @Success		204
// @Router			/super-admin/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.User](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List users
// @Description	Returns a list of users
// @Tags			Users
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		400	{object}	UserListResponse
// @Failure		500	{object}	UserListResponse
// @Router			/super-admin/users [get]
// @Param			email		query	string	false	"Filter by email"
// @Param			superAdmin	query	bool	false	"Is the user a super admin?"
// @Param			betaAccess	query	bool	false	"Does the user have beta access?"
// @Param			search		query	string	false	"Search for this text in email and name"
// @Param			offset		query	uint	false	"The offset of the first user returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of users to return. Defaults to 50."
func GetUsers(c *gin.Context) {
	var filter UserQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, UserListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.
		Order("email ASC, created_at ASC").
		Where(&model, queryFields...)

	q = filter.apply(q)

	users, pagination, err := page[models.User](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), UserListResponse{Error: message(c, err)})
		return
	}

	subs, err := subscriptions(users)
	if err != nil {
		c.JSON(status(err), UserListResponse{Error: message(c, err)})
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		var subscription *models.Subscription
		if s, ok := subs[user.ID]; ok {
			subscription = &s
		}

		data = append(data, newUser(c, user, subscription))
	}

	c.JSON(http.StatusOK, UserListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/users/{id} [get]
func GetUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	user, err := getResource[models.User](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	respondUser(c, user)
}

// @Summary		Update user
// @Description	Grants or revokes super admin rights and beta access
// @Tags			Users
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		404		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			user	body		UserEditable	true	"User"
// @Router			/super-admin/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	user, err := getResource[models.User](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&user, updateFields, data.model())
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	respondUser(c, user)
}

func respondUser(c *gin.Context, user models.User) {
	subs, err := subscriptions([]models.User{user})
	if err != nil {
		c.JSON(status(err), UserResponse{Error: message(c, err)})
		return
	}

	var subscription *models.Subscription
	if s, ok := subs[user.ID]; ok {
		subscription = &s
	}

	data := newUser(c, user, subscription)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
