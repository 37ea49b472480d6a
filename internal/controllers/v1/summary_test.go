package v1_test

import (
	"net/http"

	v1 "github.com/cashplan/backend/internal/controllers/v1"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSummaryGet() {
	_ = createTestItem(suite.T(), v1.ItemEditable{
		Kind:     models.ItemKindIncome,
		Name:     "Salary",
		Amount:   decimal.NewFromInt(4800),
		Interval: models.IntervalMonthly,
	})

	_ = createTestItem(suite.T(), v1.ItemEditable{
		Kind:     models.ItemKindIncome,
		Name:     "Bonus",
		Amount:   decimal.NewFromInt(1200),
		Interval: models.IntervalAnnually,
	})

	_ = createTestItem(suite.T(), v1.ItemEditable{
		Kind:     models.ItemKindExpense,
		Name:     "Rent",
		Amount:   decimal.NewFromInt(1500),
		Interval: models.IntervalMonthly,
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.MonthlyIncome.Equal(decimal.NewFromInt(4900)))
	suite.Assert().True(response.Data.MonthlyExpense.Equal(decimal.NewFromInt(1500)))
	suite.Assert().True(response.Data.MonthlyNet.Equal(decimal.NewFromInt(3400)))
}

func (suite *TestSuiteStandard) TestSummaryDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
