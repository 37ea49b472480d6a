package v1

import (
	"net/http"

	"github.com/cashplan/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the v1 API root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Items     string `json:"items" example:"https://example.com/api/v1/items"`         // URL of the item collection endpoint
	Overrides string `json:"overrides" example:"https://example.com/api/v1/overrides"` // URL of the override record endpoint
	Months    string `json:"months" example:"https://example.com/api/v1/months"`       // URL of the month grid endpoint
	Years     string `json:"years" example:"https://example.com/api/v1/years"`         // URL of the yearly summary endpoint
	Loans     string `json:"loans" example:"https://example.com/api/v1/loans"`         // URL of the loan schedule endpoint
	Summary   string `json:"summary" example:"https://example.com/api/v1/summary"`     // URL of the dashboard summary endpoint
	Export    string `json:"export" example:"https://example.com/api/v1/export"`       // URL of the export endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Items:     url + "/items",
			Overrides: url + "/overrides",
			Months:    url + "/months",
			Years:     url + "/years",
			Loans:     url + "/loans",
			Summary:   url + "/summary",
			Export:    url + "/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
