package v1

import (
	"net/http"

	"github.com/cashplan/backend/internal/httputil"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/planner"
	"github.com/gin-gonic/gin"
)

// SummaryResponse is the response for the dashboard summary endpoint.
type SummaryResponse struct {
	Data  *planner.Summary `json:"data"`  // The interval-normalized totals
	Error *string          `json:"error"` // The error, if any occurred
}

// RegisterSummaryRoutes registers the routes for the dashboard summary with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard summary
// @Description	Returns the monthly-equivalent income and expense totals over all active items. One-time items are excluded, this is a normalization for dashboards, not a calendar total.
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	var items []models.RecurringItem
	err := models.DB.Find(&items).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	summary := planner.Summarize(items)
	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
