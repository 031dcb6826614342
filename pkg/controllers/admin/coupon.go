package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

// RegisterCouponRoutes registers the routes for coupons with
// the RouterGroup that is passed.
func RegisterCouponRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCouponList)
		r.GET("", GetCoupons)
		r.POST("", CreateCoupons)
	}

	// Coupon with ID
	{
		r.OPTIONS("/:id", OptionsCouponDetail)
		r.GET("/:id", GetCoupon)
		r.PATCH("/:id", UpdateCoupon)
		r.DELETE("/:id", DeleteCoupon)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Coupons
// @Security		Bearer
// @Success		204
// @Router			/super-admin/coupons [options]
func OptionsCouponList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Coupons
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/coupons/{id} [options]
func OptionsCouponDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = getResource[models.Coupon](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create coupons
// @Description	Creates new coupons
// @Tags			Coupons
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	CouponCreateResponse
// @Failure		400		{object}	CouponCreateResponse
// @Failure		403		{object}	CouponCreateResponse
// @Failure		500		{object}	CouponCreateResponse
// @Param			coupons	body		[]CouponEditable	true	"Coupons"
// @Router			/super-admin/coupons [post]
func CreateCoupons(c *gin.Context) {
	var editables []CouponEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), CouponCreateResponse{Error: message(c, err)})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CouponCreateResponse{}

	for _, editable := range editables {
		coupon := editable.model()
		err = models.DB.Create(&coupon).Error
		if err != nil {
			status = r.appendError(c, err, status)
			continue
		}

		data := newCoupon(c, coupon)
		r.Data = append(r.Data, CouponResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List coupons
// @Description	Returns a list of coupons
// @Tags			Coupons
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	CouponListResponse
// @Failure		400	{object}	CouponListResponse
// @Failure		500	{object}	CouponListResponse
// @Router			/super-admin/coupons [get]
// @Param			plan		query	string	false	"Filter by plan ID"
// @Param			code		query	string	false	"Filter by code"
// @Param			lifetime	query	bool	false	"Does the coupon grant lifetime access?"
// @Param			archived	query	bool	false	"Is the coupon archived?"
// @Param			offset		query	uint	false	"The offset of the first coupon returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of coupons to return. Defaults to 50."
func GetCoupons(c *gin.Context) {
	var filter CouponQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CouponListResponse{Error: message(c, err)})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		c.JSON(status(err), CouponListResponse{Error: message(c, err)})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&model, queryFields...)

	q = filter.apply(q, setFields)

	coupons, pagination, err := page[models.Coupon](q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		c.JSON(status(err), CouponListResponse{Error: message(c, err)})
		return
	}

	data := make([]Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		data = append(data, newCoupon(c, coupon))
	}

	c.JSON(http.StatusOK, CouponListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get coupon
// @Description	Returns a specific coupon
// @Tags			Coupons
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	CouponResponse
// @Failure		400	{object}	CouponResponse
// @Failure		404	{object}	CouponResponse
// @Failure		500	{object}	CouponResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/coupons/{id} [get]
func GetCoupon(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), CouponResponse{Error: message(c, err)})
		return
	}

	coupon, err := getResource[models.Coupon](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), CouponResponse{Error: message(c, err)})
		return
	}

	data := newCoupon(c, coupon)
	c.JSON(http.StatusOK, CouponResponse{Data: &data})
}

// @Summary		Update coupon
// @Description	Updates a coupon. Only values to be updated need to be specified.
// @Tags			Coupons
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	CouponResponse
// @Failure		400		{object}	CouponResponse
// @Failure		403		{object}	CouponResponse
// @Failure		404		{object}	CouponResponse
// @Failure		500		{object}	CouponResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			coupon	body		CouponEditable	true	"Coupon"
// @Router			/super-admin/coupons/{id} [patch]
func UpdateCoupon(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), CouponResponse{Error: message(c, err)})
		return
	}

	coupon, err := getResource[models.Coupon](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), CouponResponse{Error: message(c, err)})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CouponEditable{})
	if err != nil {
		c.JSON(status(err), CouponResponse{Error: message(c, err)})
		return
	}

	var data CouponEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), CouponResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&coupon, updateFields, data.model())
	if err != nil {
		c.JSON(status(err), CouponResponse{Error: message(c, err)})
		return
	}

	apiResource := newCoupon(c, coupon)
	c.JSON(http.StatusOK, CouponResponse{Data: &apiResource})
}

// @Summary		Delete coupon
// @Description	Deletes a coupon
// @Tags			Coupons
// @Security		Bearer
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/super-admin/coupons/{id} [delete]
func DeleteCoupon(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	coupon, err := getResource[models.Coupon](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	err = models.DB.Delete(&coupon).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
