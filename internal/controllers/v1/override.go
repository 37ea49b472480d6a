package v1

import (
	"net/http"

	"github.com/cashplan/backend/internal/amortization"
	"github.com/cashplan/backend/internal/httputil"
	"github.com/cashplan/backend/internal/ledger"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterOverrideRoutes registers the routes for override records with
// the RouterGroup that is passed.
func RegisterOverrideRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsOverrides)
		r.GET("", GetOverrides)
	}

	// Override actions
	{
		r.OPTIONS("/status", OptionsOverrideAction)
		r.POST("/status", SetOverrideStatus)
		r.OPTIONS("/amount", OptionsOverrideAction)
		r.POST("/amount", SetOverrideAmount)
		r.OPTIONS("/revert", OptionsOverrideAction)
		r.POST("/revert", RevertOverride)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Overrides
// @Success		204
// @Router			/v1/overrides [options]
func OptionsOverrides(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Overrides
// @Success		204
// @Router			/v1/overrides/status [options]
func OptionsOverrideAction(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get override records
// @Description	Returns a list of override records
// @Tags			Overrides
// @Produce		json
// @Success		200	{object}	OverrideListResponse
// @Failure		400	{object}	OverrideListResponse
// @Failure		500	{object}	OverrideListResponse
// @Router			/v1/overrides [get]
// @Param			item	query	string	false	"Filter by item ID"
// @Param			month	query	string	false	"Filter by month in YYYY-MM format"
func GetOverrides(c *gin.Context) {
	var filter OverrideQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, OverrideListResponse{
			Error: &s,
		})
		return
	}

	query := models.DB.Order("date ASC")

	if filter.Item != "" {
		id, err := uuid.Parse(filter.Item)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, OverrideListResponse{
				Error: &e,
			})
			return
		}

		query = query.Where(&models.OverrideRecord{ItemID: id})
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, OverrideListResponse{
				Error: &e,
			})
			return
		}

		query = query.Where("date >= ? AND date <= ?", month.FirstDay(), month.LastDay())
	}

	var records []models.OverrideRecord
	err := query.Find(&records).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverrideListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, OverrideListResponse{Data: records})
}

// @Summary		Set occurrence status
// @Description	Sets the status of one occurrence. Amount edits are not touched.
// @Tags			Overrides
// @Accept			json
// @Produce		json
// @Success		200		{object}	OverrideEventResponse
// @Failure		400		{object}	OverrideEventResponse
// @Failure		404		{object}	OverrideEventResponse
// @Failure		500		{object}	OverrideEventResponse
// @Param			request	body		OverrideStatusRequest	true	"Status change"
// @Router			/v1/overrides/status [post]
func SetOverrideStatus(c *gin.Context) {
	var request OverrideStatusRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverrideEventResponse{
			Error: &e,
		})
		return
	}

	if !request.Status.Valid() {
		e := models.ErrOverrideStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, OverrideEventResponse{
			Error: &e,
		})
		return
	}

	applyOverrideAction(c, request.ItemID.UUID, func(item models.RecurringItem, overrides *ledger.Snapshot) (ledger.Mutation, bool) {
		return overrides.UpsertStatus(item.ID, item.Kind, request.Date, request.Status), true
	})
}

// @Summary		Edit occurrence amount
// @Description	Sets the effective amount of one occurrence. The first edit captures the nominal amount for audit and revert.
// @Tags			Overrides
// @Accept			json
// @Produce		json
// @Success		200		{object}	OverrideEventResponse
// @Failure		400		{object}	OverrideEventResponse
// @Failure		404		{object}	OverrideEventResponse
// @Failure		500		{object}	OverrideEventResponse
// @Param			request	body		OverrideAmountRequest	true	"Amount edit"
// @Router			/v1/overrides/amount [post]
func SetOverrideAmount(c *gin.Context) {
	var request OverrideAmountRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverrideEventResponse{
			Error: &e,
		})
		return
	}

	if request.Amount.IsNegative() {
		e := models.ErrItemAmountNegative.Error()
		c.JSON(http.StatusBadRequest, OverrideEventResponse{
			Error: &e,
		})
		return
	}

	applyOverrideAction(c, request.ItemID.UUID, func(item models.RecurringItem, overrides *ledger.Snapshot) (ledger.Mutation, bool) {
		return overrides.UpsertAmount(item, request.Date, request.Amount), true
	})
}

// @Summary		Revert occurrence amount
// @Description	Clears the amount edit of one occurrence. The originally captured amount is kept for audit.
// @Tags			Overrides
// @Accept			json
// @Produce		json
// @Success		200		{object}	OverrideEventResponse
// @Failure		400		{object}	OverrideEventResponse
// @Failure		404		{object}	OverrideEventResponse
// @Failure		500		{object}	OverrideEventResponse
// @Param			request	body		OverrideRevertRequest	true	"Revert"
// @Router			/v1/overrides/revert [post]
func RevertOverride(c *gin.Context) {
	var request OverrideRevertRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverrideEventResponse{
			Error: &e,
		})
		return
	}

	applyOverrideAction(c, request.ItemID.UUID, func(item models.RecurringItem, overrides *ledger.Snapshot) (ledger.Mutation, bool) {
		return overrides.Revert(item.ID, item.Kind, request.Date)
	})
}

// applyOverrideAction runs the edit → recompute → persist protocol for one
// override action: the ledger computes the mutation on the snapshot, the
// mutation is persisted, and for loan items the true payoff term is
// redetermined and written back to the stored loan terms so that occurrence
// clipping stays consistent.
func applyOverrideAction(c *gin.Context, itemID uuid.UUID, action func(models.RecurringItem, *ledger.Snapshot) (ledger.Mutation, bool)) {
	var item models.RecurringItem
	err := models.DB.First(&item, itemID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverrideEventResponse{
			Error: &e,
		})
		return
	}

	overrides, err := loadLedger(item.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverrideEventResponse{
			Error: &e,
		})
		return
	}

	mutation, ok := action(item, overrides)
	if !ok {
		e := errRevertWithoutEdit.Error()
		c.JSON(http.StatusNotFound, OverrideEventResponse{
			Error: &e,
		})
		return
	}

	record, err := persistMutation(mutation)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverrideEventResponse{
			Error: &e,
		})
		return
	}

	event := OverrideEvent{Record: record}

	if _, isLoan := item.LoanTerms(); isLoan {
		recompute, err := recomputeLoanTerm(&item, overrides)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), OverrideEventResponse{
				Error: &e,
			})
			return
		}

		event.Loan = recompute
	}

	c.JSON(http.StatusOK, OverrideEventResponse{Data: &event})
}

// loadLedger builds the override snapshot for one item from the database.
func loadLedger(itemID uuid.UUID) (*ledger.Snapshot, error) {
	var records []models.OverrideRecord
	err := models.DB.Where(&models.OverrideRecord{ItemID: itemID}).Find(&records).Error
	if err != nil {
		return nil, err
	}

	return ledger.FromRecords(records), nil
}

// persistMutation applies a ledger mutation to the database and returns the
// persisted record. On first create the ID is assigned by the database layer
// and is only known afterwards.
func persistMutation(mutation ledger.Mutation) (models.OverrideRecord, error) {
	record := mutation.Record

	if record.ID == uuid.Nil {
		err := models.DB.Create(&record).Error
		return record, err
	}

	err := models.DB.Save(&record).Error
	return record, err
}

// recomputeLoanTerm redetermines the true payoff term of a loan item and
// persists the stored term change the schedule requires, if any.
func recomputeLoanTerm(item *models.RecurringItem, overrides *ledger.Snapshot) (*LoanRecompute, error) {
	schedule, err := amortization.Dynamic(*item, overrides)
	if err != nil {
		return nil, err
	}

	recompute := LoanRecompute{
		TrueTermMonths: schedule.TrueTermMonths,
		PayoffDate:     schedule.PayoffDate,
	}

	update, needed := schedule.RequiredUpdate(*item)
	if needed {
		err = models.DB.Model(item).Update("loan_term_months", update.TermMonths).Error
		if err != nil {
			return nil, err
		}

		recompute.TermUpdated = true
	}

	return &recompute, nil
}
