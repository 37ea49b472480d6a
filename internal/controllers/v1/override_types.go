package v1

import (
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	cp_uuid "github.com/cashplan/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// OverrideStatusRequest sets the status of one occurrence.
type OverrideStatusRequest struct {
	ItemID cp_uuid.UUID          `json:"itemId" binding:"required"`
	Date   types.Date            `json:"date" binding:"required" example:"2025-03-01"`
	Status models.OverrideStatus `json:"status" binding:"required" example:"paid"`
}

// OverrideAmountRequest edits the amount of one occurrence.
type OverrideAmountRequest struct {
	ItemID cp_uuid.UUID    `json:"itemId" binding:"required"`
	Date   types.Date      `json:"date" binding:"required" example:"2025-03-01"`
	Amount decimal.Decimal `json:"amount" example:"1450.00"`
}

// OverrideRevertRequest reverts the amount edit of one occurrence.
type OverrideRevertRequest struct {
	ItemID cp_uuid.UUID `json:"itemId" binding:"required"`
	Date   types.Date   `json:"date" binding:"required" example:"2025-03-01"`
}

// LoanRecompute reports the loan term redetermination an override action
// triggered.
type LoanRecompute struct {
	TrueTermMonths int        `json:"trueTermMonths" example:"362"` // Payoff term after applying all overrides
	PayoffDate     types.Date `json:"payoffDate" example:"2055-03-01"`
	TermUpdated    bool       `json:"termUpdated" example:"true"` // Whether the stored term was changed
}

// OverrideEvent is the result of an override action: the persisted record
// and, for loan items, the recomputed schedule summary.
type OverrideEvent struct {
	Record models.OverrideRecord `json:"record"`
	Loan   *LoanRecompute        `json:"loan,omitempty"`
}

// OverrideEventResponse is the response for override actions.
type OverrideEventResponse struct {
	Data  *OverrideEvent `json:"data"`  // The applied override
	Error *string        `json:"error"` // The error, if any occurred
}

// OverrideListResponse is the response for an override record list.
type OverrideListResponse struct {
	Data  []models.OverrideRecord `json:"data"`  // List of override records
	Error *string                 `json:"error"` // The error, if any occurred
}

// OverrideQueryFilter contains the fields override records can be filtered by.
type OverrideQueryFilter struct {
	Item  string `form:"item"`  // Filter by item ID
	Month string `form:"month"` // Filter by month in YYYY-MM format
}
