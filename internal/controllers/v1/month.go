package v1

import (
	"net/http"

	"github.com/cashplan/backend/internal/httputil"
	"github.com/cashplan/backend/internal/ledger"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/planner"
	"github.com/cashplan/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MonthResponse is the response for the month grid endpoint.
type MonthResponse struct {
	Data  *planner.Grid `json:"data"`  // The month grid
	Error *string       `json:"error"` // The error, if any occurred
}

// MonthQuery are the query parameters of the month grid endpoint.
type MonthQuery struct {
	Month   string          `form:"month" binding:"required" example:"2025-03"` // Month in YYYY-MM format
	Carried decimal.Decimal `form:"carried" example:"3000"`                     // Running net carried into the month
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get a month grid
// @Description	Returns the calendar of cash events for one month with override-aware totals
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			carried	query		string	false	"Running net carried into the month, defaults to 0"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query MonthQuery
	if err := c.Bind(&query); err != nil {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &e,
		})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &e,
		})
		return
	}

	items, overrides, err := loadSnapshots()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	grid := planner.GridMonth(items, overrides, month, query.Carried)
	c.JSON(http.StatusOK, MonthResponse{Data: &grid})
}

// loadSnapshots loads the item and override ledger snapshots the calculation
// engines consume.
func loadSnapshots() ([]models.RecurringItem, *ledger.Snapshot, error) {
	var items []models.RecurringItem
	err := models.DB.Find(&items).Error
	if err != nil {
		return nil, nil, err
	}

	var records []models.OverrideRecord
	err = models.DB.Find(&records).Error
	if err != nil {
		return nil, nil, err
	}

	return items, ledger.FromRecords(records), nil
}
