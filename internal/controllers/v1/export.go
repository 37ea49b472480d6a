package v1

import (
	"encoding/json"
	"net/http"

	"github.com/cashplan/backend/internal/httputil"
	"github.com/cashplan/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ExportResponse is the response for the export endpoint.
type ExportResponse struct {
	Data  map[string]json.RawMessage `json:"data"`  // All resources by type
	Error *string                    `json:"error"` // The error, if any occurred
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export all data
// @Description	Returns all items and override records, including soft-deleted ones, for backup
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	items, err := models.RecurringItem{}.Export()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &e,
		})
		return
	}

	overrides, err := models.OverrideRecord{}.Export()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{Data: map[string]json.RawMessage{
		"recurringItems":  items,
		"overrideRecords": overrides,
	}})
}
