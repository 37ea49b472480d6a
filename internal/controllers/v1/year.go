package v1

import (
	"net/http"
	"time"

	"github.com/cashplan/backend/internal/httputil"
	"github.com/cashplan/backend/internal/planner"
	"github.com/gin-gonic/gin"
)

// YearListResponse is the response for the yearly summary endpoint.
type YearListResponse struct {
	Data  []planner.YearRow `json:"data"`  // Yearly summary rows
	Error *string           `json:"error"` // The error, if any occurred
}

// YearDetailResponse is the response for the year detail endpoint.
type YearDetailResponse struct {
	Data  []planner.Grid `json:"data"`  // The twelve month grids of the year
	Error *string        `json:"error"` // The error, if any occurred
}

// YearsQuery are the query parameters of the yearly summary endpoint.
type YearsQuery struct {
	From  int `form:"from" example:"2025"` // First year, defaults to the current year
	Count int `form:"count" example:"5"`   // Number of years, defaults to 5
}

// YearDetailURI is the URI parameter of the year detail endpoint.
type YearDetailURI struct {
	Year int `uri:"year" binding:"required" example:"2027"`
}

// RegisterYearRoutes registers the routes for years with
// the RouterGroup that is passed.
func RegisterYearRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsYears)
		r.GET("", GetYears)
	}

	{
		r.OPTIONS("/:year", OptionsYearDetail)
		r.GET("/:year", GetYearDetail)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Years
// @Success		204
// @Router			/v1/years [options]
func OptionsYears(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Years
// @Success		204
// @Router			/v1/years/{year} [options]
func OptionsYearDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get yearly summary
// @Description	Returns yearly totals with a cumulative running net for a range of years
// @Tags			Years
// @Produce		json
// @Success		200		{object}	YearListResponse
// @Failure		400		{object}	YearListResponse
// @Failure		500		{object}	YearListResponse
// @Param			from	query		int	false	"First year, defaults to the current year"
// @Param			count	query		int	false	"Number of years, defaults to 5"
// @Router			/v1/years [get]
func GetYears(c *gin.Context) {
	var query YearsQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, YearListResponse{
			Error: &e,
		})
		return
	}

	if query.From == 0 {
		query.From = time.Now().In(time.UTC).Year()
	}

	if query.Count < 1 {
		query.Count = 5
	}

	items, overrides, err := loadSnapshots()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearListResponse{
			Error: &e,
		})
		return
	}

	rows := planner.YearlySummary(items, overrides, query.From, query.Count)
	c.JSON(http.StatusOK, YearListResponse{Data: rows})
}

// @Summary		Get year detail
// @Description	Returns the twelve month grids of one year. The carried net is seeded by replaying every year from the summary start, so the cost grows with the distance between the two.
// @Tags			Years
// @Produce		json
// @Success		200		{object}	YearDetailResponse
// @Failure		400		{object}	YearDetailResponse
// @Failure		500		{object}	YearDetailResponse
// @Param			year	path		int	true	"The year"
// @Param			from	query		int	false	"Summary start year the running net is replayed from, defaults to the requested year"
// @Router			/v1/years/{year} [get]
func GetYearDetail(c *gin.Context) {
	var uri YearDetailURI
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, YearDetailResponse{
			Error: &e,
		})
		return
	}

	var query YearsQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, YearDetailResponse{
			Error: &e,
		})
		return
	}

	if query.From == 0 {
		query.From = uri.Year
	}

	if query.From > uri.Year {
		e := errYearBeforeStart.Error()
		c.JSON(http.StatusBadRequest, YearDetailResponse{
			Error: &e,
		})
		return
	}

	items, overrides, err := loadSnapshots()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearDetailResponse{
			Error: &e,
		})
		return
	}

	grids := planner.YearDetail(items, overrides, query.From, uri.Year)
	c.JSON(http.StatusOK, YearDetailResponse{Data: grids})
}
