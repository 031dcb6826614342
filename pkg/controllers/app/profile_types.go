package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/models"
)

// Payments sells plans.
type Payments interface {
	Enabled() bool
	Checkout(user models.User, plan models.Plan, coupon *models.Coupon) (string, error)
}

type User struct {
	ID         uuid.UUID `json:"id" example:"4e1c7b3d-2f6a-4d8e-9b0c-5a7d3e1f9c2b"` // ID of the user
	Email      string    `json:"email" example:"ada@example.com"`                   // Email address from the identity provider
	Name       string    `json:"name" example:"Ada"`                                // Name of the user
	SuperAdmin bool      `json:"superAdmin" example:"false"`                        // Can the user administrate the server?
	BetaAccess bool      `json:"betaAccess" example:"true"`                         // Does the user have access to beta features?
}

type ProfileEditable struct {
	Name string `json:"name" example:"Ada"` // Name of the user
}

type Plan struct {
	ID         uuid.UUID `json:"id" example:"1f0e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b"` // ID of the plan
	Code       string    `json:"code" example:"family"`                             // Code of the plan
	Name       string    `json:"name" example:"Family"`                             // Name of the plan
	MaxBudgets int       `json:"maxBudgets" example:"3"`                            // Number of budgets the user can own. 0 means unlimited
	MaxMembers int       `json:"maxMembers" example:"8"`                            // Number of members per budget. 0 means unlimited
}

func newPlan(model models.Plan) Plan {
	return Plan{
		ID:         model.ID,
		Code:       model.Code,
		Name:       model.Name,
		MaxBudgets: model.MaxBudgets,
		MaxMembers: model.MaxMembers,
	}
}

type Subscription struct {
	PlanID    uuid.UUID                 `json:"planId" example:"1f0e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b"`            // ID of the subscribed plan
	Status    models.SubscriptionStatus `json:"status" example:"active" enums:"active,past_due,canceled,expired"` // Status of the subscription
	Source    models.SubscriptionSource `json:"source" example:"coupon" enums:"stripe,coupon,access_link"`        // How the subscription was obtained
	Lifetime  bool                      `json:"lifetime" example:"false"`                                         // Does the subscription never expire?
	ExpiresAt *time.Time                `json:"expiresAt" example:"2026-12-31T00:00:00Z"`                         // When the subscription expires
}

type Profile struct {
	User         User          `json:"user"`         // The current user
	Subscription *Subscription `json:"subscription"` // The subscription of the user, if any
	Plan         *Plan         `json:"plan"`         // The plan in effect. Null if no limits apply
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                             // The profile
	Error *string  `json:"error" example:"a valid bearer token is required"` // The error, if any occurred
}

type Redemption struct {
	Code string `json:"code" example:"SPRING26"` // Coupon code or access link token
}

type CheckoutRequest struct {
	PlanID uuid.UUID `json:"planId" example:"1f0e2d3c-4b5a-6978-8a9b-0c1d2e3f4a5b"` // ID of the plan to buy
	Coupon string    `json:"coupon" example:"SPRING26"`                             // Code of a coupon with a Stripe discount. Optional
}

type Checkout struct {
	URL string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_a1b2c3"` // Redirect the user here to pay
}

type CheckoutResponse struct {
	Data  *Checkout `json:"data"`                                                       // The checkout session
	Error *string   `json:"error" example:"payments are not configured on this server"` // The error, if any occurred
}

type BotLinkRequest struct {
	BudgetID uuid.UUID `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget the chat records transactions in
}

type BotLink struct {
	Code      string    `json:"code" example:"7F3A9C2E"`                  // Send "/link CODE" to the bot to link the chat
	ExpiresAt time.Time `json:"expiresAt" example:"2026-03-12T12:15:00Z"` // The code cannot be used after this time
}

type BotLinkResponse struct {
	Data  *BotLink `json:"data"`                                                   // The link code
	Error *string  `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
}
