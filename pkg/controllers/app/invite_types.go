package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
)

type InviteEditable struct {
	BudgetID uuid.UUID   `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the budget the invite is for
	Role     models.Role `json:"role" example:"partner" enums:"partner,child"`            // Role of the member created when the invite is accepted
	Email    string      `json:"email" example:"partner@example.com" default:""`          // If set, only the user with this email can accept the invite
}

// model returns the database resource for the editable fields
func (editable InviteEditable) model() models.Invite {
	return models.Invite{
		BudgetID: editable.BudgetID,
		Role:     editable.Role,
		Email:    editable.Email,
	}
}

type InviteLinks struct {
	Self   string `json:"self" example:"https://example.com/api/app/invites/8c2d4e6f-1a3b-4c5d-9e7f-0a1b2c3d4e5f"` // The invite itself
	Accept string `json:"accept" example:"https://example.com/api/app/invites/accept"`                             // Send the token here to accept the invite
}

// Invite is the API representation of an Invite.
type Invite struct {
	models.DefaultModel
	InviteEditable
	Token        string      `json:"token" example:"3f9d1c2b7a6e4d5c8b9a0f1e2d3c4b5a"`            // Token to accept the invite with
	ExpiresAt    time.Time   `json:"expiresAt" example:"2026-03-19T12:00:00Z"`                    // The invite cannot be accepted after this time
	InvitedByID  uuid.UUID   `json:"invitedById" example:"4e1c7b3d-2f6a-4d8e-9b0c-5a7d3e1f9c2b"`  // ID of the user who created the invite
	AcceptedByID *uuid.UUID  `json:"acceptedById" example:"6a2b8c4d-0e1f-4a3b-8c5d-7e9f1a2b3c4d"` // ID of the user who accepted the invite
	AcceptedAt   *time.Time  `json:"acceptedAt" example:"2026-03-13T08:15:00Z"`                   // When the invite was accepted
	Links        InviteLinks `json:"links"`
}

func newInvite(c *gin.Context, model models.Invite) Invite {
	url := c.GetString(string(models.DBContextURL))

	return Invite{
		DefaultModel: model.DefaultModel,
		InviteEditable: InviteEditable{
			BudgetID: model.BudgetID,
			Role:     model.Role,
			Email:    model.Email,
		},
		Token:        model.Token,
		ExpiresAt:    model.ExpiresAt,
		InvitedByID:  model.InvitedByID,
		AcceptedByID: model.AcceptedByID,
		AcceptedAt:   model.AcceptedAt,
		Links: InviteLinks{
			Self:   fmt.Sprintf("%s/app/invites/%s", url, model.ID),
			Accept: fmt.Sprintf("%s/app/invites/accept", url),
		},
	}
}

type InviteListResponse struct {
	Data       []Invite    `json:"data"`                                                          // List of invites
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InviteCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []InviteResponse `json:"data"`                                                          // List of created invites
}

func (r *InviteCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, InviteResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InviteResponse struct {
	Data  *Invite `json:"data"`                                                          // Data for the invite
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InviteQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	Role     string `form:"role"`                       // By role
	Email    string `form:"email"`                      // By email
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first invite returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of invites to return. Defaults to 50.
}

func (f InviteQueryFilter) model() (models.Invite, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.Invite{}, err
	}

	return models.Invite{
		BudgetID: budgetID,
		Role:     models.Role(f.Role),
		Email:    f.Email,
	}, nil
}

type InviteAccept struct {
	Token string `json:"token" example:"3f9d1c2b7a6e4d5c8b9a0f1e2d3c4b5a"` // Token of the invite
}
