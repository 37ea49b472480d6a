package planner

import (
	"time"

	"github.com/cashplan/backend/internal/ledger"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// YearRow is the aggregate of one calendar year in a multi-year summary.
type YearRow struct {
	Year         int             `json:"year" example:"2025"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal" example:"62400"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal" example:"46800"`
	YearlyNet    decimal.Decimal `json:"yearlyNet" example:"15600"`
	RunningNet   decimal.Decimal `json:"runningNet" example:"31200"` // Cumulative net at the end of the year
}

// YearlyTotal sums the effective occurrence amounts of all items over the 12
// months of a year. It is built strictly from the month grids so that it can
// never drift from what the months show.
func YearlyTotal(items []models.RecurringItem, overrides *ledger.Snapshot, year int) (income, expense decimal.Decimal) {
	income = decimal.Zero
	expense = decimal.Zero

	for m := time.January; m <= time.December; m++ {
		g := GridMonth(items, overrides, types.NewMonth(year, m), decimal.Zero)
		income = income.Add(g.IncomeTotal).Add(sumAmounts(g.OneTimeIncome))
		expense = expense.Add(g.ExpenseTotal).Add(sumAmounts(g.OneTimeExpense))
	}

	return income, expense
}

// YearlySummary aggregates numYears consecutive years starting at startYear,
// carrying the running net forward across years.
func YearlySummary(items []models.RecurringItem, overrides *ledger.Snapshot, startYear, numYears int) []YearRow {
	rows := make([]YearRow, 0, numYears)

	running := decimal.Zero
	for year := startYear; year < startYear+numYears; year++ {
		income, expense := YearlyTotal(items, overrides, year)
		net := income.Sub(expense)
		running = running.Add(net)

		rows = append(rows, YearRow{
			Year:         year,
			IncomeTotal:  income,
			ExpenseTotal: expense,
			YearlyNet:    net,
			RunningNet:   running,
		})
	}

	return rows
}

// YearDetail returns the twelve month grids of one year, seeded with the
// running net accumulated since startYear.
//
// Seeding requires replaying every year from startYear up to the requested
// year, so the cost grows linearly with the distance between the two.
func YearDetail(items []models.RecurringItem, overrides *ledger.Snapshot, startYear, year int) []Grid {
	carried := decimal.Zero
	for y := startYear; y < year; y++ {
		income, expense := YearlyTotal(items, overrides, y)
		carried = carried.Add(income.Sub(expense))
	}

	grids := make([]Grid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		g := GridMonth(items, overrides, types.NewMonth(year, m), carried)
		carried = g.RunningNet
		grids = append(grids, g)
	}

	return grids
}
