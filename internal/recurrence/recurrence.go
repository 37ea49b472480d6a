// Package recurrence expands recurring items into the concrete calendar dates
// they occur on. Expansion is pure: it reads the item snapshot and returns a
// new slice, items are never modified.
package recurrence

import (
	"time"

	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// InMonth returns the dates an item occurs on within a month, in ascending
// order.
//
// Items without a start date are treated as not yet active and yield nothing.
// Unknown intervals yield nothing as well; they are logged so that a malformed
// record degrades to "contributes nothing" instead of aborting a whole grid.
//
// Date stepping uses time.AddDate semantics throughout: a monthly item
// starting on the 31st overflows short months into the next month instead of
// clamping to the month end.
func InMonth(item models.RecurringItem, month types.Month) []types.Date {
	if item.StartDate.IsZero() {
		return nil
	}

	first := month.FirstDay()
	last := month.LastDay()

	// Loan payoff is an exclusive bound: the last real payment occurs in the
	// month before the payoff date.
	payoff, hasPayoff := payoffDate(item)
	if hasPayoff && !payoff.After(first) {
		return nil
	}

	if item.StartDate.After(last) {
		return nil
	}

	var dates []types.Date

	include := func(d types.Date) {
		if d.Before(first) || d.After(last) {
			return
		}

		if hasPayoff && !d.Before(payoff) {
			return
		}

		dates = append(dates, d)
	}

	switch item.Interval {
	case models.IntervalOneTime:
		include(item.StartDate)
	case models.IntervalMonthly:
		expandMonthSteps(item.StartDate, 1, last, include)
	case models.IntervalQuarterly:
		expandMonthSteps(item.StartDate, 3, last, include)
	case models.IntervalAnnually:
		expandMonthSteps(item.StartDate, 12, last, include)
	case models.IntervalWeekly:
		expandDaySteps(item.StartDate, 7, first, last, include)
	case models.IntervalBiWeekly:
		expandDaySteps(item.StartDate, 14, first, last, include)
	default:
		log.Warn().
			Str("item", item.Name).
			Str("interval", string(item.Interval)).
			Msg("unknown interval, item yields no occurrences")
	}

	return dates
}

// PayoffDate returns the exclusive payoff bound of a loan item. The second
// return value is false for items without loan terms.
func PayoffDate(item models.RecurringItem) (types.Date, bool) {
	return payoffDate(item)
}

func payoffDate(item models.RecurringItem) (types.Date, bool) {
	terms, ok := item.LoanTerms()
	if !ok || terms.TermMonths < 1 || item.StartDate.IsZero() {
		return types.Date{}, false
	}

	return item.StartDate.AddDate(0, terms.TermMonths, 0), true
}

// expandMonthSteps visits start + k*stepMonths for ascending k and calls
// include for each date up to the last day of the window.
//
// Dates are strictly increasing in k even when short-month overflow rolls a
// date forward, so stopping at the first date beyond the window is safe.
func expandMonthSteps(start types.Date, stepMonths int, last types.Date, include func(types.Date)) {
	k := monthsBetween(start, last)/stepMonths - 2
	if k < 0 {
		k = 0
	}

	for {
		d := start.AddDate(0, k*stepMonths, 0)
		if d.After(last) {
			return
		}

		include(d)
		k++
	}
}

// expandDaySteps visits start + k*stepDays for ascending k, beginning at the
// first step landing on or after the window start.
func expandDaySteps(start types.Date, stepDays int, first, last types.Date, include func(types.Date)) {
	k := 0
	if diff := first.DaysSince(start); diff > 0 {
		k = (diff + stepDays - 1) / stepDays
	}

	for {
		d := start.AddDate(0, 0, k*stepDays)
		if d.After(last) {
			return
		}

		include(d)
		k++
	}
}

func monthsBetween(from, until types.Date) int {
	f := time.Time(from)
	u := time.Time(until)

	months := (u.Year()-f.Year())*12 + int(u.Month()) - int(f.Month())
	if months < 0 {
		return 0
	}

	return months
}
