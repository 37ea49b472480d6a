package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/cashplan/backend/internal/controllers/v1"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/cashplan/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthGrid() {
	_ = createTestItem(suite.T(), v1.ItemEditable{
		Kind:      models.ItemKindIncome,
		Name:      "Salary",
		Amount:    decimal.NewFromInt(1500),
		Interval:  models.IntervalMonthly,
		StartDate: types.NewDate(2024, 1, 25),
	})

	_ = createTestItem(suite.T(), v1.ItemEditable{
		Kind:      models.ItemKindExpense,
		Name:      "Rent",
		Amount:    decimal.NewFromInt(500),
		Interval:  models.IntervalMonthly,
		StartDate: types.NewDate(2024, 1, 1),
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/months?month=2025-03&carried=3000", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.RecurringIncome, 1)
	suite.Require().Len(response.Data.RecurringExpense, 1)
	suite.Assert().True(response.Data.MonthlyNet.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.CarriedNet.Equal(decimal.NewFromInt(3000)))
	suite.Assert().True(response.Data.RunningNet.Equal(decimal.NewFromInt(4000)))
}

func (suite *TestSuiteStandard) TestMonthGridAppliesOverrides() {
	item := createTestItem(suite.T(), v1.ItemEditable{
		Kind:      models.ItemKindExpense,
		Name:      "Rent",
		Amount:    decimal.NewFromInt(1500),
		Interval:  models.IntervalMonthly,
		StartDate: types.NewDate(2024, 1, 1),
	})

	_ = overrideAction(suite.T(), "amount", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"amount": "1400",
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/months?month=2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.RecurringExpense, 1)
	suite.Assert().True(response.Data.RecurringExpense[0].Amount.Equal(decimal.NewFromInt(1400)))
	suite.Assert().True(response.Data.RecurringExpense[0].Edited)
}

func (suite *TestSuiteStandard) TestMonthGridInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"month not set", ""},
		{"month invalid", "month=March-2025"},
		{"carried invalid", "month=2025-03&carried=one"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "/v1/months?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.MonthResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}
