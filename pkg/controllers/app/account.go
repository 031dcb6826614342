package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccounts)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", OptionsAccountDetail)
		r.GET("/:id", GetAccount)
		r.PATCH("/:id", UpdateAccount)
		r.DELETE("/:id", DeleteAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Security		Bearer
// @Success		204
// @Router			/app/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Account](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create accounts
// @Description	Creates new accounts
// @Tags			Accounts
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	AccountCreateResponse
// @Failure		400		{object}	AccountCreateResponse
// @Failure		403		{object}	AccountCreateResponse
// @Failure		404		{object}	AccountCreateResponse
// @Failure		500		{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Router			/app/accounts [post]
func CreateAccounts(c *gin.Context) {
	var editables []AccountEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), AccountCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccountCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionWrite)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		account := editable.model()
		err = models.DB.Create(&account).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data, err := newAccount(c, account)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}
		r.Data = append(r.Data, AccountResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List accounts
// @Description	Returns a list of accounts in the budgets of the current user
// @Tags			Accounts
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		400	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/app/accounts [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			kind		query	string	false	"Filter by kind"
// @Param			archived	query	bool	false	"Is the account archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first account returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of accounts to return. Defaults to 50."
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, AccountListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), AccountListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("name ASC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	accounts, pagination, err := page[models.Account](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), AccountListResponse{Error: message(c, err)})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		apiResource, err := newAccount(c, account)
		if err != nil {
			c.JSON(status(err), AccountListResponse{Error: message(c, err)})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, AccountListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/accounts/{id} [get]
func GetAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	account, err := getResource[models.Account](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	data, err := newAccount(c, account)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		403		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/app/accounts/{id} [patch]
func UpdateAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	account, err := getResource[models.Account](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	var data AccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, account.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&account, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	apiResource, err := newAccount(c, account)
	if err != nil {
		c.JSON(status(err), AccountResponse{Error: message(c, err)})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: &apiResource})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	account, err := getResource[models.Account](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&account).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
