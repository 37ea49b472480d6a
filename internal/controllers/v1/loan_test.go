package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/cashplan/backend/internal/controllers/v1"
	"github.com/cashplan/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestLoanScheduleOptions() {
	item := createTestItem(suite.T(), testLoanEditable())

	r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/loans/%s/schedule", item.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/loans/%s/schedule", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestLoanSchedule() {
	item := createTestItem(suite.T(), testLoanEditable())

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/loans/%s/schedule", item.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LoanScheduleResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Rows, 360)
	suite.Assert().Equal(360, response.Data.TrueTermMonths)
	suite.Assert().Equal(360, response.Data.ConfiguredTermMonths)
	suite.Assert().False(response.Data.TermDiverged)
	suite.Assert().True(response.Data.Rows[359].Balance.IsZero())
}

func (suite *TestSuiteStandard) TestLoanScheduleWithOverride() {
	item := createTestItem(suite.T(), testLoanEditable())

	// An extra payment before the schedule is requested. The term update is
	// persisted by the override action, so the schedule reports no divergence
	// afterwards.
	response := overrideAction(suite.T(), "amount", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"amount": "100000",
	})
	suite.Require().NotNil(response.Data.Loan)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/loans/%s/schedule", item.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var schedule v1.LoanScheduleResponse
	test.DecodeResponse(suite.T(), &r, &schedule)

	suite.Assert().Equal(response.Data.Loan.TrueTermMonths, schedule.Data.TrueTermMonths)
	suite.Assert().Equal(response.Data.Loan.TrueTermMonths, schedule.Data.ConfiguredTermMonths)
	suite.Assert().False(schedule.Data.TermDiverged)

	// The edited payment shows up in its row
	row := schedule.Data.Rows[2]
	suite.Assert().True(row.Payment.Equal(decimal.NewFromInt(100000)))
}

func (suite *TestSuiteStandard) TestLoanScheduleNotALoan() {
	item := createTestItem(suite.T(), v1.ItemEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/loans/%s/schedule", item.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLoanScheduleNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/loans/%s/schedule", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
