package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterRecurringBillRoutes registers the routes for recurring bills with
// the RouterGroup that is passed.
func RegisterRecurringBillRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringBillList)
		r.GET("", GetRecurringBills)
		r.POST("", CreateRecurringBills)
	}

	// Recurring bill with ID
	{
		r.OPTIONS("/:id", OptionsRecurringBillDetail)
		r.GET("/:id", GetRecurringBill)
		r.PATCH("/:id", UpdateRecurringBill)
		r.DELETE("/:id", DeleteRecurringBill)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Bills
// @Security		Bearer
// @Success		204
// @Router			/app/recurring-bills [options]
func OptionsRecurringBillList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Bills
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/recurring-bills/{id} [options]
func OptionsRecurringBillDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.RecurringBill](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring bills
// @Description	Creates new recurring bills
// @Tags			Recurring Bills
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	RecurringBillCreateResponse
// @Failure		400		{object}	RecurringBillCreateResponse
// @Failure		403		{object}	RecurringBillCreateResponse
// @Failure		404		{object}	RecurringBillCreateResponse
// @Failure		500		{object}	RecurringBillCreateResponse
// @Param			recurringBills	body		[]RecurringBillEditable	true	"RecurringBills"
// @Router			/app/recurring-bills [post]
func CreateRecurringBills(c *gin.Context) {
	var editables []RecurringBillEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), RecurringBillCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecurringBillCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionWrite)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		recurringBill := editable.model()
		err = models.DB.Create(&recurringBill).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newRecurringBill(c, recurringBill)
		r.Data = append(r.Data, RecurringBillResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List recurring bills
// @Description	Returns a list of recurring bills in the budgets of the current user
// @Tags			Recurring Bills
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	RecurringBillListResponse
// @Failure		400	{object}	RecurringBillListResponse
// @Failure		500	{object}	RecurringBillListResponse
// @Router			/app/recurring-bills [get]
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			active	query	bool	false	"Is the recurring bill active?"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first recurring bill returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of recurring bills to return. Defaults to 50."
func GetRecurringBills(c *gin.Context) {
	var filter RecurringBillQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, RecurringBillListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), RecurringBillListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("name ASC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	recurringBills, pagination, err := page[models.RecurringBill](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), RecurringBillListResponse{Error: message(c, err)})
		return
	}

	data := make([]RecurringBill, 0, len(recurringBills))
	for _, recurringBill := range recurringBills {
		data = append(data, newRecurringBill(c, recurringBill))
	}

	c.JSON(http.StatusOK, RecurringBillListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get recurring bill
// @Description	Returns a specific recurring bill
// @Tags			Recurring Bills
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	RecurringBillResponse
// @Failure		400	{object}	RecurringBillResponse
// @Failure		404	{object}	RecurringBillResponse
// @Failure		500	{object}	RecurringBillResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/recurring-bills/{id} [get]
func GetRecurringBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	recurringBill, err := getResource[models.RecurringBill](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	data := newRecurringBill(c, recurringBill)
	c.JSON(http.StatusOK, RecurringBillResponse{Data: &data})
}

// @Summary		Update recurring bill
// @Description	Updates a recurring bill. Only values to be updated need to be specified.
// @Tags			Recurring Bills
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	RecurringBillResponse
// @Failure		400		{object}	RecurringBillResponse
// @Failure		403		{object}	RecurringBillResponse
// @Failure		404		{object}	RecurringBillResponse
// @Failure		500		{object}	RecurringBillResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			recurringBill	body		RecurringBillEditable	true	"Recurring bill"
// @Router			/app/recurring-bills/{id} [patch]
func UpdateRecurringBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	recurringBill, err := getResource[models.RecurringBill](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringBillEditable{})
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	var data RecurringBillEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, recurringBill.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&recurringBill, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), RecurringBillResponse{Error: message(c, err)})
		return
	}

	apiResource := newRecurringBill(c, recurringBill)
	c.JSON(http.StatusOK, RecurringBillResponse{Data: &apiResource})
}

// @Summary		Delete recurring bill
// @Description	Deletes a recurring bill
// @Tags			Recurring Bills
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/recurring-bills/{id} [delete]
func DeleteRecurringBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	recurringBill, err := getResource[models.RecurringBill](c, uri.ID.UUID, models.PermissionWrite)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&recurringBill).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
