package amortization

import (
	"errors"

	"github.com/cashplan/backend/internal/ledger"
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxScheduleMonths bounds the dynamic schedule. Overrides below the
// interest-only amount make a loan amortize negatively and never converge;
// the walk stops here instead of looping forever.
const MaxScheduleMonths = 1000

// ErrNotALoan is returned when a dynamic schedule is requested for an item
// without loan terms.
var ErrNotALoan = errors.New("the item has no loan terms")

// Schedule is the real repayment schedule of a loan once overrides are
// applied.
type Schedule struct {
	Rows           []Row      `json:"rows"`
	TrueTermMonths int        `json:"trueTermMonths" example:"360"` // Number of months until the loan is paid off
	PayoffDate     types.Date `json:"payoffDate" example:"2055-01-01"`
}

// ItemUpdate is a stored-item change the caller must persist. It is emitted
// when a recomputed schedule disagrees with the stored loan term, so that
// occurrence expansion keeps clipping at the true payoff date.
type ItemUpdate struct {
	ItemID     uuid.UUID `json:"itemId"`
	TermMonths int       `json:"termMonths" example:"362"`
}

// Dynamic walks a loan month by month and recomputes its real schedule.
//
// For every month the payment is the ledger's edited amount for that
// occurrence if one exists, the item's nominal amount otherwise. The stored
// loan term is never read back into the computation: it follows the schedule
// through ItemUpdate, so the same ledger always yields the same schedule.
// With no overrides in the ledger the result is identical to Static for a
// loan whose nominal amount is its level payment.
func Dynamic(item models.RecurringItem, overrides *ledger.Snapshot) (Schedule, error) {
	terms, ok := item.LoanTerms()
	if !ok {
		return Schedule{}, ErrNotALoan
	}

	if !terms.Principal.IsPositive() || terms.AnnualRate.IsNegative() || terms.TermMonths < 1 {
		return Schedule{}, ErrInvalidInput
	}

	rate := terms.AnnualRate.Div(twelve)
	balance := terms.Principal

	// Cent-rounding the interest drifts the reported balance a few cents off
	// the exact repayment path over hundreds of months. The close test also
	// runs on an unrounded shadow balance, so a drift residual is absorbed
	// into the last scheduled payment instead of spilling into an extra row.
	exact := terms.Principal

	var rows []Row
	for month := 1; month <= MaxScheduleMonths; month++ {
		date := item.StartDate.AddDate(0, month-1, 0)

		payment := item.Amount
		if r, found := overrides.Lookup(item.ID, item.Kind, date); found && r.EditedAmount != nil {
			payment = *r.EditedAmount
		}

		interest := balance.Mul(rate).Round(2)

		// Final month: the remaining balance fits into the payment. The
		// principal portion is clamped to the balance so the schedule closes
		// at exactly zero.
		if balance.Add(interest).LessThanOrEqual(payment) || exact.Add(exact.Mul(rate)).LessThanOrEqual(payment) {
			rows = append(rows, Row{
				Month:     month,
				Payment:   balance.Add(interest),
				Principal: balance,
				Interest:  interest,
				Balance:   decimal.Zero,
			})

			break
		}

		principalPortion := payment.Sub(interest)
		balance = balance.Sub(principalPortion)
		exact = exact.Add(exact.Mul(rate)).Sub(payment).Round(8)

		rows = append(rows, Row{
			Month:     month,
			Payment:   payment,
			Principal: principalPortion,
			Interest:  interest,
			Balance:   balance,
		})
	}

	term := len(rows)

	return Schedule{
		Rows:           rows,
		TrueTermMonths: term,
		PayoffDate:     item.StartDate.AddDate(0, term, 0),
	}, nil
}

// RequiredUpdate returns the stored-item change implied by the schedule.
// The second return value is false when the stored term already matches and
// nothing needs to be persisted.
func (s Schedule) RequiredUpdate(item models.RecurringItem) (ItemUpdate, bool) {
	terms, ok := item.LoanTerms()
	if !ok || terms.TermMonths == s.TrueTermMonths {
		return ItemUpdate{}, false
	}

	return ItemUpdate{ItemID: item.ID, TermMonths: s.TrueTermMonths}, true
}
