package app

import (
	"github.com/hivebudget/backend/internal/types"
	hb_uuid "github.com/hivebudget/backend/internal/uuid"
)

type URIID struct {
	ID hb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	URIID
	Month types.Month `uri:"month" binding:"required" example:"2026-03"` // Year and month in YYYY-MM format
}

type URIContribution struct {
	URIID
	ContributionID hb_uuid.UUID `uri:"contributionId" binding:"required" format:"UUID"` // ID of the contribution
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
