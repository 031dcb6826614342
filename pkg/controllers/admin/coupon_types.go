package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"gorm.io/gorm"
)

type CouponEditable struct {
	Code           string     `json:"code" example:"SPRING26" default:""`                    // Code users redeem. Normalized to upper case
	PlanID         uuid.UUID  `json:"planId" example:"1f9e0a1c-53a0-4bc6-8a35-fa7ab2f9a1b7"` // ID of the plan the coupon grants
	DurationDays   int        `json:"durationDays" example:"30" default:"0" minimum:"0"`     // Number of days the plan is granted for
	Lifetime       bool       `json:"lifetime" example:"false" default:"false"`              // Does the coupon grant the plan forever?
	MaxRedemptions int        `json:"maxRedemptions" example:"100" default:"0" minimum:"0"`  // How often the coupon can be redeemed. 0 means unlimited
	ExpiresAt      *time.Time `json:"expiresAt" example:"2026-12-31T23:59:59Z"`              // After this time, the coupon cannot be redeemed anymore
	StripeCouponID string     `json:"stripeCouponId" example:"SPRING26" default:""`          // Stripe coupon applied as discount at checkout
	Archived       bool       `json:"archived" example:"false" default:"false"`              // Archived coupons cannot be redeemed
}

func (editable CouponEditable) model() models.Coupon {
	return models.Coupon{
		Code:           editable.Code,
		PlanID:         editable.PlanID,
		DurationDays:   editable.DurationDays,
		Lifetime:       editable.Lifetime,
		MaxRedemptions: editable.MaxRedemptions,
		ExpiresAt:      editable.ExpiresAt,
		StripeCouponID: editable.StripeCouponID,
		Archived:       editable.Archived,
	}
}

type CouponLinks struct {
	Self string `json:"self" example:"https://example.com/api/super-admin/coupons/5fa3a0f6-5a1e-4d26-9f3a-38e2b9e0c0a4"` // The coupon itself
	Plan string `json:"plan" example:"https://example.com/api/super-admin/plans/1f9e0a1c-53a0-4bc6-8a35-fa7ab2f9a1b7"`   // The plan the coupon grants
}

// Coupon is the API representation of a Coupon.
type Coupon struct {
	models.DefaultModel
	CouponEditable
	Redemptions int         `json:"redemptions" example:"12"` // How often the coupon has been redeemed
	Links       CouponLinks `json:"links"`
}

func newCoupon(c *gin.Context, model models.Coupon) Coupon {
	url := c.GetString(string(models.DBContextURL))

	return Coupon{
		DefaultModel: model.DefaultModel,
		CouponEditable: CouponEditable{
			Code:           model.Code,
			PlanID:         model.PlanID,
			DurationDays:   model.DurationDays,
			Lifetime:       model.Lifetime,
			MaxRedemptions: model.MaxRedemptions,
			ExpiresAt:      model.ExpiresAt,
			StripeCouponID: model.StripeCouponID,
			Archived:       model.Archived,
		},
		Redemptions: model.Redemptions,
		Links: CouponLinks{
			Self: fmt.Sprintf("%s/super-admin/coupons/%s", url, model.ID),
			Plan: fmt.Sprintf("%s/super-admin/plans/%s", url, model.PlanID),
		},
	}
}

type CouponListResponse struct {
	Data       []Coupon    `json:"data"`                                                          // List of coupons
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CouponCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CouponResponse `json:"data"`                                                          // List of created coupons
}

func (r *CouponCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, CouponResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CouponResponse struct {
	Data  *Coupon `json:"data"`                                                          // Data for the coupon
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CouponQueryFilter struct {
	PlanID   string `form:"plan"`                       // By plan ID
	Code     string `form:"code" filterField:"false"`   // By code
	Lifetime bool   `form:"lifetime"`                   // Does the coupon grant lifetime access?
	Archived bool   `form:"archived"`                   // Is the coupon archived?
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first coupon returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of coupons to return. Defaults to 50.
}

func (f CouponQueryFilter) model() (models.Coupon, error) {
	planID, err := httputil.UUIDFromString(f.PlanID)
	if err != nil {
		return models.Coupon{}, err
	}

	return models.Coupon{
		PlanID:   planID,
		Lifetime: f.Lifetime,
		Archived: f.Archived,
	}, nil
}

func (f CouponQueryFilter) apply(q *gorm.DB, _ []string) *gorm.DB {
	if f.Code != "" {
		q = q.Where("code LIKE ?", fmt.Sprintf("%%%s%%", strings.ToUpper(f.Code)))
	}

	return q
}
