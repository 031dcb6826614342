package admin

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/models"
	"gorm.io/gorm"
)

type UserEditable struct {
	SuperAdmin bool `json:"superAdmin" example:"false" default:"false"` // Can the user administrate the server?
	BetaAccess bool `json:"betaAccess" example:"true" default:"false"`  // Does the user have access to beta features?
}

func (editable UserEditable) model() models.User {
	return models.User{
		SuperAdmin: editable.SuperAdmin,
		BetaAccess: editable.BetaAccess,
	}
}

type UserSubscription struct {
	PlanID    uuid.UUID                 `json:"planId" example:"1f9e0a1c-53a0-4bc6-8a35-fa7ab2f9a1b7"`            // ID of the subscribed plan
	Status    models.SubscriptionStatus `json:"status" example:"active" enums:"active,past_due,canceled,expired"` // Status of the subscription
	Source    models.SubscriptionSource `json:"source" example:"stripe" enums:"stripe,coupon,access_link"`        // How the subscription was obtained
	Lifetime  bool                      `json:"lifetime" example:"false"`                                         // Does the subscription never expire?
	ExpiresAt *time.Time                `json:"expiresAt" example:"2026-12-31T00:00:00Z"`                         // When the subscription expires
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/super-admin/users/4e1c7b3d-2f6a-4d8e-9b0c-5a7d3e1f9c2b"` // The user itself
}

// User is the API representation of a User.
type User struct {
	models.DefaultModel
	UserEditable
	Subject      string            `json:"subject" example:"auth0|64b7e1f2"` // Subject of the user at the identity provider
	Email        string            `json:"email" example:"ada@example.com"`  // Email address from the identity provider
	Name         string            `json:"name" example:"Ada"`               // Name of the user
	Subscription *UserSubscription `json:"subscription"`                     // The subscription of the user, if any
	Links        UserLinks         `json:"links"`
}

func newUser(c *gin.Context, model models.User, subscription *models.Subscription) User {
	url := c.GetString(string(models.DBContextURL))

	u := User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			SuperAdmin: model.SuperAdmin,
			BetaAccess: model.BetaAccess,
		},
		Subject: model.Subject,
		Email:   model.Email,
		Name:    model.Name,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/super-admin/users/%s", url, model.ID),
		},
	}

	if subscription != nil {
		u.Subscription = &UserSubscription{
			PlanID:    subscription.PlanID,
			Status:    subscription.Status,
			Source:    subscription.Source,
			Lifetime:  subscription.Lifetime,
			ExpiresAt: subscription.ExpiresAt,
		}
	}

	return u
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Email      string `form:"email" filterField:"false"`  // By email
	SuperAdmin bool   `form:"superAdmin"`                 // Is the user a super admin?
	BetaAccess bool   `form:"betaAccess"`                 // Does the user have beta access?
	Search     string `form:"search" filterField:"false"` // By string in email or name
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first user returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		SuperAdmin: f.SuperAdmin,
		BetaAccess: f.BetaAccess,
	}
}

func (f UserQueryFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Email != "" {
		q = q.Where("email LIKE ?", fmt.Sprintf("%%%s%%", f.Email))
	}

	if f.Search != "" {
		q = q.Where(
			models.DB.Where("email LIKE ?", fmt.Sprintf("%%%s%%", f.Search)).Or(
				models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", f.Search)),
			),
		)
	}

	return q
}

// subscriptions returns the subscriptions of the users by user ID.
func subscriptions(users []models.User) (map[uuid.UUID]models.Subscription, error) {
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	result := make(map[uuid.UUID]models.Subscription, len(users))
	if len(ids) == 0 {
		return result, nil
	}

	var list []models.Subscription
	err := models.DB.Where("user_id IN ?", ids).Find(&list).Error
	if err != nil {
		return nil, err
	}

	for _, s := range list {
		result[s.UserID] = s
	}

	return result, nil
}
