package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
		r.POST("/installments", CreateInstallments)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Security		Bearer
// @Success		204
// @Router			/app/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Transaction](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transactions
// @Description	Creates new transactions
// @Tags			Transactions
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	TransactionCreateResponse
// @Failure		400		{object}	TransactionCreateResponse
// @Failure		403		{object}	TransactionCreateResponse
// @Failure		404		{object}	TransactionCreateResponse
// @Failure		500		{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/app/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), TransactionCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		_, err = authorize(c, editable.BudgetID, models.PermissionContribute)
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		transaction := editable.model()
		err = models.DB.Create(&transaction).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List transactions
// @Description	Returns a list of transactions in the budgets of the current user
// @Tags			Transactions
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/app/transactions [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			member		query	string	false	"Filter by member ID"
// @Param			kind		query	string	false	"Filter by kind"
// @Param			status		query	string	false	"Filter by status"
// @Param			month		query	string	false	"Filter by accounting month in YYYY-MM format"
// @Param			fromDate	query	string	false	"Transactions at and after this date"
// @Param			untilDate	query	string	false	"Transactions before and at this date"
// @Param			search		query	string	false	"Search for this text in the description"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("date DESC, created_at DESC").
		Scopes(memberBudgets(c, "budget_id")).
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	transactions, pagination, err := page[models.Transaction](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: message(c, err)})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	transaction, err := getResource[models.Transaction](c, uri.ID.UUID, models.PermissionRead)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		403		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/app/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	transaction, err := getResource[models.Transaction](c, uri.ID.UUID, models.PermissionContribute)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	err = checkBudgetUnchanged(updateFields, transaction.BudgetID, data.BudgetID)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&transaction, updateFields, data.model(), nil)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/app/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	transaction, err := getResource[models.Transaction](c, uri.ID.UUID, models.PermissionContribute)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Create installments
// @Description	Creates one transaction per installment of a purchase. For credit card accounts, the installments follow the statement closing and due days of the account.
// @Tags			Transactions
// @Security		Bearer
// @Produce		json
// @Success		201			{object}	InstallmentResponse
// @Failure		400			{object}	InstallmentResponse
// @Failure		403			{object}	InstallmentResponse
// @Failure		404			{object}	InstallmentResponse
// @Failure		500			{object}	InstallmentResponse
// @Param			purchase	body		InstallmentPurchase	true	"Purchase"
// @Router			/app/transactions/installments [post]
func CreateInstallments(c *gin.Context) {
	var purchase InstallmentPurchase
	err := httputil.BindData(c, &purchase)
	if err != nil {
		c.JSON(status(err), InstallmentResponse{Error: message(c, err)})
		return
	}

	_, err = authorize(c, purchase.BudgetID, models.PermissionContribute)
	if err != nil {
		c.JSON(status(err), InstallmentResponse{Error: message(c, err)})
		return
	}

	transactions, err := models.CreateInstallments(models.DB, models.Transaction{
		BudgetID:    purchase.BudgetID,
		AccountID:   purchase.AccountID,
		CategoryID:  purchase.CategoryID,
		MemberID:    purchase.MemberID,
		Amount:      purchase.Amount,
		Date:        purchase.Date,
		Description: purchase.Description,
	}, purchase.Installments, time.Now())
	if err != nil {
		c.JSON(status(err), InstallmentResponse{Error: message(c, err)})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusCreated, InstallmentResponse{Data: data})
}
