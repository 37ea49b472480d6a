package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/cashplan/backend/internal/controllers/v1"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/test"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExportGet() {
	item := createTestItem(suite.T(), v1.ItemEditable{})
	_ = overrideAction(suite.T(), "status", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"status": "paid",
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	var items []models.RecurringItem
	suite.Require().Nil(json.Unmarshal(response.Data["recurringItems"], &items))
	suite.Assert().Len(items, 1)

	var overrides []models.OverrideRecord
	suite.Require().Nil(json.Unmarshal(response.Data["overrideRecords"], &overrides))
	suite.Assert().Len(overrides, 1)
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
