package v1

import (
	"net/http"

	"github.com/cashplan/backend/internal/amortization"
	"github.com/cashplan/backend/internal/httputil"
	"github.com/cashplan/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// LoanSchedule is the dynamic schedule of a loan item together with the
// configured term for comparison.
type LoanSchedule struct {
	amortization.Schedule
	ConfiguredTermMonths int  `json:"configuredTermMonths" example:"360"` // The stored loan term
	TermDiverged         bool `json:"termDiverged" example:"false"`      // Whether overrides changed the payoff term
}

// LoanScheduleResponse is the response for the loan schedule endpoint.
type LoanScheduleResponse struct {
	Data  *LoanSchedule `json:"data"`  // The loan schedule
	Error *string       `json:"error"` // The error, if any occurred
}

// RegisterLoanRoutes registers the routes for loans with
// the RouterGroup that is passed.
func RegisterLoanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/schedule", OptionsLoanSchedule)
	r.GET("/:id/schedule", GetLoanSchedule)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id}/schedule [options]
func OptionsLoanSchedule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.RecurringItem{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get loan schedule
// @Description	Returns the amortization schedule of a loan item with all payment overrides applied and the true payoff term
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	LoanScheduleResponse
// @Failure		400	{object}	LoanScheduleResponse
// @Failure		404	{object}	LoanScheduleResponse
// @Failure		500	{object}	LoanScheduleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id}/schedule [get]
func GetLoanSchedule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanScheduleResponse{
			Error: &e,
		})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanScheduleResponse{
			Error: &e,
		})
		return
	}

	terms, ok := item.LoanTerms()
	if !ok {
		e := errNotALoan.Error()
		c.JSON(http.StatusBadRequest, LoanScheduleResponse{
			Error: &e,
		})
		return
	}

	overrides, err := loadLedger(item.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanScheduleResponse{
			Error: &e,
		})
		return
	}

	schedule, err := amortization.Dynamic(item, overrides)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanScheduleResponse{
			Error: &e,
		})
		return
	}

	data := LoanSchedule{
		Schedule:             schedule,
		ConfiguredTermMonths: terms.TermMonths,
		TermDiverged:         terms.TermMonths != schedule.TrueTermMonths,
	}

	c.JSON(http.StatusOK, LoanScheduleResponse{Data: &data})
}
