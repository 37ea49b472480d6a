package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cashplan/backend/internal/controllers/v1"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideAction(t *testing.T, action string, body any, expectedStatus ...int) v1.OverrideEventResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, fmt.Sprintf("/v1/overrides/%s", action), body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.OverrideEventResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestOverridesOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/overrides", "GET"},
		{"/v1/overrides/status", "POST"},
		{"/v1/overrides/amount", "POST"},
		{"/v1/overrides/revert", "POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOverrideStatus() {
	item := createTestItem(suite.T(), v1.ItemEditable{Amount: decimal.NewFromInt(1500)})

	response := overrideAction(suite.T(), "status", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"status": "paid",
	})

	require.NotNil(suite.T(), response.Data)
	suite.Assert().NotEqual(uuid.Nil, response.Data.Record.ID, "created record must carry its assigned ID")
	suite.Assert().Equal(models.StatusPaid, response.Data.Record.Status)
	suite.Assert().Nil(response.Data.Record.EditedAmount)
	suite.Assert().Nil(response.Data.Loan)

	// Setting another status updates the same record
	second := overrideAction(suite.T(), "status", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"status": "overdue",
	})

	suite.Assert().Equal(response.Data.Record.ID, second.Data.Record.ID)
	suite.Assert().Equal(models.StatusOverdue, second.Data.Record.Status)

	var records []models.OverrideRecord
	suite.Require().Nil(models.DB.Find(&records).Error)
	suite.Assert().Len(records, 1)
}

func (suite *TestSuiteStandard) TestOverrideStatusInvalid() {
	item := createTestItem(suite.T(), v1.ItemEditable{})

	overrideAction(suite.T(), "status", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"status": "cancelled",
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOverrideStatusItemNotFound() {
	overrideAction(suite.T(), "status", map[string]any{
		"itemId": uuid.New(),
		"date":   "2025-03-01",
		"status": "paid",
	}, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOverrideAmount() {
	item := createTestItem(suite.T(), v1.ItemEditable{Amount: decimal.NewFromInt(1500)})

	response := overrideAction(suite.T(), "amount", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"amount": "1400",
	})

	require.NotNil(suite.T(), response.Data)
	record := response.Data.Record
	require.NotNil(suite.T(), record.EditedAmount)
	suite.Assert().True(record.EditedAmount.Equal(decimal.NewFromInt(1400)))
	require.NotNil(suite.T(), record.OriginalAmount)
	suite.Assert().True(record.OriginalAmount.Equal(decimal.NewFromInt(1500)))

	// The second edit keeps the originally captured amount
	second := overrideAction(suite.T(), "amount", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"amount": "1300",
	})

	suite.Assert().True(second.Data.Record.EditedAmount.Equal(decimal.NewFromInt(1300)))
	suite.Assert().True(second.Data.Record.OriginalAmount.Equal(decimal.NewFromInt(1500)))
}

func (suite *TestSuiteStandard) TestOverrideAmountNegative() {
	item := createTestItem(suite.T(), v1.ItemEditable{})

	overrideAction(suite.T(), "amount", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"amount": "-1",
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOverrideRevert() {
	item := createTestItem(suite.T(), v1.ItemEditable{Amount: decimal.NewFromInt(1500)})

	_ = overrideAction(suite.T(), "amount", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"amount": "1400",
	})

	response := overrideAction(suite.T(), "revert", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
	})

	require.NotNil(suite.T(), response.Data)
	suite.Assert().Nil(response.Data.Record.EditedAmount)

	// The originally captured amount stays for audit
	require.NotNil(suite.T(), response.Data.Record.OriginalAmount)
	suite.Assert().True(response.Data.Record.OriginalAmount.Equal(decimal.NewFromInt(1500)))
}

func (suite *TestSuiteStandard) TestOverrideRevertWithoutEdit() {
	item := createTestItem(suite.T(), v1.ItemEditable{})

	overrideAction(suite.T(), "revert", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
	}, http.StatusNotFound)
}

// TestOverrideAmountLoanFeedback verifies that editing a loan payment
// recomputes the true payoff term and persists it on the item.
func (suite *TestSuiteStandard) TestOverrideAmountLoanFeedback() {
	item := createTestItem(suite.T(), testLoanEditable())

	// A large extra payment shortens the loan
	response := overrideAction(suite.T(), "amount", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"amount": "100000",
	})

	require.NotNil(suite.T(), response.Data)
	require.NotNil(suite.T(), response.Data.Loan)
	suite.Assert().Less(response.Data.Loan.TrueTermMonths, 360)
	suite.Assert().True(response.Data.Loan.TermUpdated)

	// The stored term follows the true payoff term
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/items/%s", item.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var reloaded v1.ItemResponse
	test.DecodeResponse(suite.T(), &r, &reloaded)
	suite.Require().NotNil(reloaded.Data.Loan)
	suite.Assert().Equal(response.Data.Loan.TrueTermMonths, reloaded.Data.Loan.TermMonths)

	// Reverting the edit restores the nominal schedule
	revert := overrideAction(suite.T(), "revert", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
	})

	require.NotNil(suite.T(), revert.Data.Loan)
	suite.Assert().Equal(360, revert.Data.Loan.TrueTermMonths)
	suite.Assert().True(revert.Data.Loan.TermUpdated)
}

func (suite *TestSuiteStandard) TestOverrideStatusLoanNoTermChange() {
	item := createTestItem(suite.T(), testLoanEditable())

	// A status change does not touch amounts, the term stays
	response := overrideAction(suite.T(), "status", map[string]any{
		"itemId": item.Data.ID,
		"date":   "2025-03-01",
		"status": "paid",
	})

	require.NotNil(suite.T(), response.Data.Loan)
	suite.Assert().Equal(360, response.Data.Loan.TrueTermMonths)
	suite.Assert().False(response.Data.Loan.TermUpdated)
}

func (suite *TestSuiteStandard) TestOverridesGet() {
	first := createTestItem(suite.T(), v1.ItemEditable{})
	second := createTestItem(suite.T(), v1.ItemEditable{})

	_ = overrideAction(suite.T(), "status", map[string]any{"itemId": first.Data.ID, "date": "2025-03-01", "status": "paid"})
	_ = overrideAction(suite.T(), "status", map[string]any{"itemId": first.Data.ID, "date": "2025-04-01", "status": "paid"})
	_ = overrideAction(suite.T(), "status", map[string]any{"itemId": second.Data.ID, "date": "2025-03-01", "status": "overdue"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"all", "", 3},
		{"by item", fmt.Sprintf("item=%s", first.Data.ID), 2},
		{"by month", "month=2025-03", 2},
		{"by item and month", fmt.Sprintf("item=%s&month=2025-04", first.Data.ID), 1},
		{"empty month", "month=2026-01", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/overrides?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.OverrideListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestOverridesGetInvalidFilters() {
	tests := []struct {
		name  string
		query string
	}{
		{"invalid item ID", "item=notaUUID"},
		{"invalid month", "month=March"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/overrides?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
