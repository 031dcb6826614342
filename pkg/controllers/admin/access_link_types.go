package admin

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"gorm.io/gorm"
)

type AccessLinkEditable struct {
	PlanID         *uuid.UUID `json:"planId" example:"1f9e0a1c-53a0-4bc6-8a35-fa7ab2f9a1b7"`     // ID of the plan the link grants. Links without a plan only grant beta access
	Beta           bool       `json:"beta" example:"true" default:"false"`                       // Does the link grant beta access?
	Lifetime       bool       `json:"lifetime" example:"false" default:"false"`                  // Is the plan granted forever?
	DurationDays   int        `json:"durationDays" example:"90" default:"0" minimum:"0"`         // Number of days the plan is granted for
	MaxRedemptions int        `json:"maxRedemptions" example:"1" default:"1" minimum:"1"`        // How often the link can be used
	ExpiresAt      *time.Time `json:"expiresAt" example:"2026-12-31T23:59:59Z"`                  // After this time, the link cannot be used anymore
	Note           string     `json:"note" example:"Invitation for the beta testers" default:""` // Note for administrators
	Archived       bool       `json:"archived" example:"false" default:"false"`                  // Archived links cannot be used
}

func (editable AccessLinkEditable) model() models.AccessLink {
	return models.AccessLink{
		PlanID:         editable.PlanID,
		Beta:           editable.Beta,
		Lifetime:       editable.Lifetime,
		DurationDays:   editable.DurationDays,
		MaxRedemptions: editable.MaxRedemptions,
		ExpiresAt:      editable.ExpiresAt,
		Note:           editable.Note,
		Archived:       editable.Archived,
	}
}

type AccessLinkLinks struct {
	Self   string `json:"self" example:"https://example.com/api/super-admin/access-links/0b8e2b8d-7a3c-4b63-b1a4-0fa2e0f51c4e"` // The access link itself
	Redeem string `json:"redeem" example:"https://example.com/api/app/account/redeem"`                                          // Endpoint where users redeem the token
}

// AccessLink is the API representation of an AccessLink.
type AccessLink struct {
	models.DefaultModel
	AccessLinkEditable
	Token       string          `json:"token" example:"c2b7e1bb0f2a4b79a6a5d1d1f0e0d9a4"` // Token users redeem
	Redemptions int             `json:"redemptions" example:"0"`                          // How often the link has been used
	Links       AccessLinkLinks `json:"links"`
}

func newAccessLink(c *gin.Context, model models.AccessLink) AccessLink {
	url := c.GetString(string(models.DBContextURL))

	return AccessLink{
		DefaultModel: model.DefaultModel,
		AccessLinkEditable: AccessLinkEditable{
			PlanID:         model.PlanID,
			Beta:           model.Beta,
			Lifetime:       model.Lifetime,
			DurationDays:   model.DurationDays,
			MaxRedemptions: model.MaxRedemptions,
			ExpiresAt:      model.ExpiresAt,
			Note:           model.Note,
			Archived:       model.Archived,
		},
		Token:       model.Token,
		Redemptions: model.Redemptions,
		Links: AccessLinkLinks{
			Self:   fmt.Sprintf("%s/super-admin/access-links/%s", url, model.ID),
			Redeem: fmt.Sprintf("%s/app/account/redeem", url),
		},
	}
}

type AccessLinkListResponse struct {
	Data       []AccessLink `json:"data"`                                                          // List of access links
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AccessLinkCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccessLinkResponse `json:"data"`                                                          // List of created access links
}

func (r *AccessLinkCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, AccessLinkResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccessLinkResponse struct {
	Data  *AccessLink `json:"data"`                                                          // Data for the access link
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccessLinkQueryFilter struct {
	PlanID   string `form:"plan"`                       // By plan ID
	Beta     bool   `form:"beta"`                       // Does the link grant beta access?
	Archived bool   `form:"archived"`                   // Is the link archived?
	Note     string `form:"note" filterField:"false"`   // By note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first link returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of links to return. Defaults to 50.
}

func (f AccessLinkQueryFilter) model() (models.AccessLink, error) {
	planID, err := httputil.UUIDFromString(f.PlanID)
	if err != nil {
		return models.AccessLink{}, err
	}

	link := models.AccessLink{
		Beta:     f.Beta,
		Archived: f.Archived,
	}

	if planID != uuid.Nil {
		link.PlanID = &planID
	}

	return link, nil
}

func (f AccessLinkQueryFilter) apply(q *gorm.DB, _ []string) *gorm.DB {
	if f.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", f.Note))
	}

	return q
}
