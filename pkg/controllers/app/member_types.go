package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/httputil"
	"github.com/hivebudget/backend/pkg/models"
	"gorm.io/gorm"
)

type MemberEditable struct {
	BudgetID uuid.UUID   `json:"budgetId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`            // ID of the budget the member belongs to
	Name     string      `json:"name" example:"Luna" default:""`                                     // Name of the member
	Role     models.Role `json:"role" example:"pet" default:"child" enums:"owner,partner,child,pet"` // Role of the member. The owner role cannot be assigned
	Archived bool        `json:"archived" example:"false" default:"false"`                           // Is the member archived? Archived members lose access to the budget
}

// model returns the database resource for the editable fields
func (editable MemberEditable) model() models.Member {
	return models.Member{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Role:     editable.Role,
		Archived: editable.Archived,
	}
}

type MemberLinks struct {
	Self         string `json:"self" example:"https://example.com/api/app/members/2a4c9c5e-44b0-4b38-9e58-c1fbd5c5b8a3"`                     // The member itself
	Transactions string `json:"transactions" example:"https://example.com/api/app/transactions?member=2a4c9c5e-44b0-4b38-9e58-c1fbd5c5b8a3"` // Transactions attributed to the member
}

// Member is the API representation of a Member.
type Member struct {
	models.DefaultModel
	MemberEditable
	UserID *uuid.UUID  `json:"userId" example:"4e1c7b3d-2f6a-4d8e-9b0c-5a7d3e1f9c2b"` // ID of the user of the member. Members without a user cannot log in
	Links  MemberLinks `json:"links"`
}

func newMember(c *gin.Context, model models.Member) Member {
	url := c.GetString(string(models.DBContextURL))

	return Member{
		DefaultModel: model.DefaultModel,
		MemberEditable: MemberEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Role:     model.Role,
			Archived: model.Archived,
		},
		UserID: model.UserID,
		Links: MemberLinks{
			Self:         fmt.Sprintf("%s/app/members/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/app/transactions?member=%s", url, model.ID),
		},
	}
}

type MemberListResponse struct {
	Data       []Member    `json:"data"`                                                          // List of members
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MemberCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MemberResponse `json:"data"`                                                          // List of created members
}

func (r *MemberCreateResponse) appendError(c *gin.Context, err error, currentStatus int) int {
	r.Data = append(r.Data, MemberResponse{Error: message(c, err)})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MemberResponse struct {
	Data  *Member `json:"data"`                                                          // Data for the member
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MemberQueryFilter struct {
	BudgetID string `form:"budget"`                     // By budget ID
	Name     string `form:"name" filterField:"false"`   // By name
	Role     string `form:"role"`                       // By role
	Archived bool   `form:"archived"`                   // Is the member archived?
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first member returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of members to return. Defaults to 50.
}

func (f MemberQueryFilter) model() (models.Member, error) {
	budgetID, err := httputil.UUIDFromString(f.BudgetID)
	if err != nil {
		return models.Member{}, err
	}

	return models.Member{
		BudgetID: budgetID,
		Role:     models.Role(f.Role),
		Archived: f.Archived,
	}, nil
}

func (f MemberQueryFilter) apply(q *gorm.DB, setFields []string) *gorm.DB {
	return nameFilters(q, setFields, f.Name, "")
}
