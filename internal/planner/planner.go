// Package planner composes recurrence expansion, the override ledger and the
// amortization engine into month and year views with running-net carry
// forward. All functions are pure: they take item and ledger snapshots plus a
// reference period and return new values.
package planner

import (
	"sort"

	"github.com/cashplan/backend/internal/ledger"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/recurrence"
	"github.com/cashplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	twelve        = decimal.NewFromInt(12)
	weeksYearly   = decimal.NewFromInt(52)
	biWeeksYearly = decimal.NewFromInt(26)
	three         = decimal.NewFromInt(3)
)

// Occurrence is one concrete calendar-dated cash event in a grid.
type Occurrence struct {
	ItemID   uuid.UUID             `json:"itemId"`
	Kind     models.ItemKind       `json:"kind" example:"expense"`
	Name     string                `json:"name" example:"Rent"`
	Category string                `json:"category" example:"Housing"`
	Date     types.Date            `json:"date" example:"2025-03-01"`
	Amount   decimal.Decimal       `json:"amount" example:"1500"` // Effective amount, overrides applied
	Status   models.OverrideStatus `json:"status" example:"pending"`
	Edited   bool                  `json:"edited" example:"false"` // Whether an amount override is in effect
}

// Grid is the calendar of cash events for one month, partitioned the way the
// month view renders them.
type Grid struct {
	Month            types.Month     `json:"month" example:"2025-03"`
	RecurringIncome  []Occurrence    `json:"recurringIncome"`
	RecurringExpense []Occurrence    `json:"recurringExpense"`
	OneTimeIncome    []Occurrence    `json:"oneTimeIncome"`
	OneTimeExpense   []Occurrence    `json:"oneTimeExpense"`
	IncomeTotal      decimal.Decimal `json:"incomeTotal" example:"4500"`  // Sum of recurring income
	ExpenseTotal     decimal.Decimal `json:"expenseTotal" example:"3100"` // Sum of recurring expenses
	OneTimeNet       decimal.Decimal `json:"oneTimeNet" example:"-250"`   // One-time income minus one-time expenses
	MonthlyNet       decimal.Decimal `json:"monthlyNet" example:"1150"`
	CarriedNet       decimal.Decimal `json:"carriedNet" example:"3000"` // Running net carried into the month
	RunningNet       decimal.Decimal `json:"runningNet" example:"4150"` // Running net after the month
}

// GridMonth expands all items for one month and computes the month's totals.
// carriedNet is the running net carried in from preceding periods.
//
// Within each partition occurrences are ordered by day; occurrences on the
// same day keep the input order of their items.
func GridMonth(items []models.RecurringItem, overrides *ledger.Snapshot, month types.Month, carriedNet decimal.Decimal) Grid {
	g := Grid{
		Month:      month,
		CarriedNet: carriedNet,
	}

	for _, item := range items {
		if item.Archived {
			continue
		}

		for _, date := range recurrence.InMonth(item, month) {
			record, found := overrides.Lookup(item.ID, item.Kind, date)

			o := Occurrence{
				ItemID:   item.ID,
				Kind:     item.Kind,
				Name:     item.Name,
				Category: item.Category,
				Date:     date,
				Amount:   item.Amount,
				Status:   models.StatusPending,
			}

			if found {
				o.Status = record.Status
				if record.EditedAmount != nil {
					o.Amount = *record.EditedAmount
					o.Edited = true
				}
			}

			switch {
			case item.Interval == models.IntervalOneTime && item.Kind == models.ItemKindIncome:
				g.OneTimeIncome = append(g.OneTimeIncome, o)
			case item.Interval == models.IntervalOneTime:
				g.OneTimeExpense = append(g.OneTimeExpense, o)
			case item.Kind == models.ItemKindIncome:
				g.RecurringIncome = append(g.RecurringIncome, o)
			default:
				g.RecurringExpense = append(g.RecurringExpense, o)
			}
		}
	}

	for _, partition := range [][]Occurrence{g.RecurringIncome, g.RecurringExpense, g.OneTimeIncome, g.OneTimeExpense} {
		sort.SliceStable(partition, func(i, j int) bool {
			return partition[i].Date.Before(partition[j].Date)
		})
	}

	g.IncomeTotal = sumAmounts(g.RecurringIncome)
	g.ExpenseTotal = sumAmounts(g.RecurringExpense)
	g.OneTimeNet = sumAmounts(g.OneTimeIncome).Sub(sumAmounts(g.OneTimeExpense))
	g.MonthlyNet = g.IncomeTotal.Sub(g.ExpenseTotal).Add(g.OneTimeNet)
	g.RunningNet = carriedNet.Add(g.MonthlyNet)

	return g
}

// MonthlyEquivalent normalizes an item's amount to a monthly figure for
// dashboard summaries. One-time items have no monthly equivalent; the second
// return value is false for them.
//
// This is a normalization, not a calendar expansion: grid totals must be
// built from GridMonth instead.
func MonthlyEquivalent(item models.RecurringItem) (decimal.Decimal, bool) {
	switch item.Interval {
	case models.IntervalMonthly:
		return item.Amount, true
	case models.IntervalAnnually:
		return item.Amount.Div(twelve), true
	case models.IntervalQuarterly:
		return item.Amount.Div(three), true
	case models.IntervalBiWeekly:
		return item.Amount.Mul(biWeeksYearly).Div(twelve), true
	case models.IntervalWeekly:
		return item.Amount.Mul(weeksYearly).Div(twelve), true
	}

	return decimal.Decimal{}, false
}

// Summary is the interval-normalized dashboard view over all items.
type Summary struct {
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome" example:"5200"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense" example:"3900.50"`
	MonthlyNet     decimal.Decimal `json:"monthlyNet" example:"1299.50"`
}

// Summarize computes the monthly-equivalent totals over all active items.
func Summarize(items []models.RecurringItem) Summary {
	var s Summary

	for _, item := range items {
		if item.Archived {
			continue
		}

		equivalent, ok := MonthlyEquivalent(item)
		if !ok {
			continue
		}

		if item.Kind == models.ItemKindIncome {
			s.MonthlyIncome = s.MonthlyIncome.Add(equivalent)
		} else {
			s.MonthlyExpense = s.MonthlyExpense.Add(equivalent)
		}
	}

	s.MonthlyNet = s.MonthlyIncome.Sub(s.MonthlyExpense)
	return s
}

func sumAmounts(occurrences []Occurrence) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range occurrences {
		sum = sum.Add(o.Amount)
	}

	return sum
}
