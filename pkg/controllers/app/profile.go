package app

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/pkg/auth"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

type profile struct {
	payments Payments
}

// RegisterProfileRoutes registers the routes for the current user with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup, payments Payments) {
	p := profile{payments: payments}

	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
	r.DELETE("", DeleteProfile)

	r.OPTIONS("/redeem", OptionsPost)
	r.POST("/redeem", Redeem)
	r.OPTIONS("/checkout", OptionsPost)
	r.POST("/checkout", p.Checkout)
	r.OPTIONS("/bot-link", OptionsPost)
	r.POST("/bot-link", CreateBotLink)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Account
// @Security		Bearer
// @Success		204
// @Router			/app/account [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Account
// @Security		Bearer
// @Success		204
// @Router			/app/account/redeem [options]
// @Router			/app/account/checkout [options]
// @Router			/app/account/bot-link [options]
func OptionsPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// newProfile returns the profile of the user with the subscription and
// the plan in effect.
func newProfile(user models.User) (Profile, error) {
	p := Profile{
		User: User{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			SuperAdmin: user.SuperAdmin,
			BetaAccess: user.BetaAccess,
		},
	}

	var subscription models.Subscription
	err := models.DB.Where(&models.Subscription{UserID: user.ID}).First(&subscription).Error
	if err == nil {
		p.Subscription = &Subscription{
			PlanID:    subscription.PlanID,
			Status:    subscription.Status,
			Source:    subscription.Source,
			Lifetime:  subscription.Lifetime,
			ExpiresAt: subscription.ExpiresAt,
		}
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		return Profile{}, err
	}

	plan, err := models.EffectivePlan(models.DB, user.ID, time.Now())
	if err != nil {
		return Profile{}, err
	}

	if plan != nil {
		apiPlan := newPlan(*plan)
		p.Plan = &apiPlan
	}

	return p, nil
}

// respondProfile writes the profile of the user
func respondProfile(c *gin.Context, user models.User, code int) {
	p, err := newProfile(user)
	if err != nil {
		c.JSON(status(err), ProfileResponse{Error: message(c, err)})
		return
	}

	c.JSON(code, ProfileResponse{Data: &p})
}

// @Summary		Get account
// @Description	Returns the current user, their subscription and the plan in effect
// @Tags			Account
// @Security		Bearer
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		401	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/app/account [get]
func GetProfile(c *gin.Context) {
	respondProfile(c, auth.CurrentUser(c), http.StatusOK)
}

// @Summary		Update account
// @Description	Updates the name of the current user
// @Tags			Account
// @Security		Bearer
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		401		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			account	body		ProfileEditable	true	"Account"
// @Router			/app/account [patch]
func UpdateProfile(c *gin.Context) {
	user := auth.CurrentUser(c)

	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		c.JSON(status(err), ProfileResponse{Error: message(c, err)})
		return
	}

	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), ProfileResponse{Error: message(c, err)})
		return
	}

	err = updateResource(&user, updateFields, models.User{Name: data.Name}, nil)
	if err != nil {
		c.JSON(status(err), ProfileResponse{Error: message(c, err)})
		return
	}

	respondProfile(c, user, http.StatusOK)
}

// @Summary		Delete account
// @Description	Deletes the current user, their memberships and all budgets they own
// @Tags			Account
// @Security		Bearer
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/app/account [delete]
func DeleteProfile(c *gin.Context) {
	err := models.DeleteUser(models.DB, auth.CurrentUser(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Redeem code
// @Description	Redeems a coupon code or an access link token for the current user
// @Tags			Account
// @Security		Bearer
// @Produce		json
// @Success		200			{object}	ProfileResponse
// @Failure		400			{object}	ProfileResponse
// @Failure		404			{object}	ProfileResponse
// @Failure		500			{object}	ProfileResponse
// @Param			redemption	body		Redemption	true	"Code"
// @Router			/app/account/redeem [post]
func Redeem(c *gin.Context) {
	var redemption Redemption
	err := httputil.BindData(c, &redemption)
	if err != nil {
		c.JSON(status(err), ProfileResponse{Error: message(c, err)})
		return
	}

	user := auth.CurrentUser(c)
	_, err = models.Redeem(models.DB, user, redemption.Code, time.Now())
	if err != nil {
		c.JSON(status(err), ProfileResponse{Error: message(c, err)})
		return
	}

	// Access links can grant beta access
	err = models.DB.First(&user, "id = ?", user.ID).Error
	if err != nil {
		c.JSON(status(err), ProfileResponse{Error: message(c, err)})
		return
	}

	respondProfile(c, user, http.StatusOK)
}

// @Summary		Buy plan
// @Description	Creates a Stripe checkout session for a subscription to the plan
// @Tags			Account
// @Security		Bearer
// @Produce		json
// @Success		201			{object}	CheckoutResponse
// @Failure		400			{object}	CheckoutResponse
// @Failure		404			{object}	CheckoutResponse
// @Failure		500			{object}	CheckoutResponse
// @Failure		503			{object}	CheckoutResponse
// @Param			checkout	body		CheckoutRequest	true	"Checkout"
// @Router			/app/account/checkout [post]
func (p profile) Checkout(c *gin.Context) {
	if p.payments == nil || !p.payments.Enabled() {
		c.JSON(http.StatusServiceUnavailable, CheckoutResponse{Error: message(c, errCheckoutDisabled)})
		return
	}

	var request CheckoutRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), CheckoutResponse{Error: message(c, err)})
		return
	}

	var plan models.Plan
	err = models.DB.First(&plan, "id = ?", request.PlanID).Error
	if err != nil {
		c.JSON(status(err), CheckoutResponse{Error: message(c, err)})
		return
	}

	var coupon *models.Coupon
	if code := strings.ToUpper(strings.TrimSpace(request.Coupon)); code != "" {
		coupon = &models.Coupon{}
		err = models.DB.Where(&models.Coupon{Code: code}).First(coupon).Error
		if err != nil {
			c.JSON(status(err), CheckoutResponse{Error: message(c, err)})
			return
		}
	}

	url, err := p.payments.Checkout(auth.CurrentUser(c), plan, coupon)
	if err != nil {
		c.JSON(status(err), CheckoutResponse{Error: message(c, err)})
		return
	}

	c.JSON(http.StatusCreated, CheckoutResponse{Data: &Checkout{URL: url}})
}

// @Summary		Link chat
// @Description	Creates a one-time code to link a chat with the bot to the current user and the budget
// @Tags			Account
// @Security		Bearer
// @Produce		json
// @Success		201		{object}	BotLinkResponse
// @Failure		400		{object}	BotLinkResponse
// @Failure		403		{object}	BotLinkResponse
// @Failure		404		{object}	BotLinkResponse
// @Failure		500		{object}	BotLinkResponse
// @Param			link	body		BotLinkRequest	true	"Link"
// @Router			/app/account/bot-link [post]
func CreateBotLink(c *gin.Context) {
	var request BotLinkRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), BotLinkResponse{Error: message(c, err)})
		return
	}

	_, err = authorize(c, request.BudgetID, models.PermissionContribute)
	if err != nil {
		c.JSON(status(err), BotLinkResponse{Error: message(c, err)})
		return
	}

	link := models.BotLink{
		UserID:   auth.CurrentUser(c).ID,
		BudgetID: &request.BudgetID,
	}

	err = models.DB.Create(&link).Error
	if err != nil {
		c.JSON(status(err), BotLinkResponse{Error: message(c, err)})
		return
	}

	c.JSON(http.StatusCreated, BotLinkResponse{Data: &BotLink{Code: link.Code, ExpiresAt: link.CodeExpiresAt}})
}
