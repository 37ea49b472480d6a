package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/cashplan/backend/internal/controllers/v1"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/cashplan/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createYearTestItems() {
	_ = createTestItem(suite.T(), v1.ItemEditable{
		Kind:      models.ItemKindIncome,
		Name:      "Salary",
		Amount:    decimal.NewFromInt(1000),
		Interval:  models.IntervalMonthly,
		StartDate: types.NewDate(2025, 1, 25),
	})

	_ = createTestItem(suite.T(), v1.ItemEditable{
		Kind:      models.ItemKindExpense,
		Name:      "Rent",
		Amount:    decimal.NewFromInt(400),
		Interval:  models.IntervalMonthly,
		StartDate: types.NewDate(2025, 1, 1),
	})
}

func (suite *TestSuiteStandard) TestYearsGet() {
	suite.createYearTestItems()

	r := test.Request(suite.T(), http.MethodGet, "/v1/years?from=2025&count=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.YearListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(2025, response.Data[0].Year)
	suite.Assert().True(response.Data[0].IncomeTotal.Equal(decimal.NewFromInt(12000)))
	suite.Assert().True(response.Data[0].ExpenseTotal.Equal(decimal.NewFromInt(4800)))
	suite.Assert().True(response.Data[2].RunningNet.Equal(decimal.NewFromInt(21600)))
}

func (suite *TestSuiteStandard) TestYearsGetDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/years", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.YearListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 5)
	suite.Assert().Equal(time.Now().In(time.UTC).Year(), response.Data[0].Year)
}

func (suite *TestSuiteStandard) TestYearDetail() {
	suite.createYearTestItems()

	r := test.Request(suite.T(), http.MethodGet, "/v1/years/2027?from=2025", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.YearDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 12)

	// Two full years carried in
	suite.Assert().True(response.Data[0].CarriedNet.Equal(decimal.NewFromInt(14400)))
	suite.Assert().True(response.Data[11].RunningNet.Equal(decimal.NewFromInt(21600)))
}

func (suite *TestSuiteStandard) TestYearDetailBeforeStart() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/years/2024?from=2025", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestYearDetailInvalidYear() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/years/twentytwentyfive", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
