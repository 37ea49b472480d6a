package v1_test

import (
	"net/http"

	v1 "github.com/cashplan/backend/internal/controllers/v1"
	"github.com/cashplan/backend/test"
)

func (suite *TestSuiteStandard) TestRootGet() {
	r := test.Request(suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().NotEmpty(response.Links.Items)
	suite.Assert().NotEmpty(response.Links.Overrides)
	suite.Assert().NotEmpty(response.Links.Months)
	suite.Assert().NotEmpty(response.Links.Years)
	suite.Assert().NotEmpty(response.Links.Loans)
	suite.Assert().NotEmpty(response.Links.Summary)
	suite.Assert().NotEmpty(response.Links.Export)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}
