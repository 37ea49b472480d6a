// Package amortization computes loan amortization schedules: the static
// level-payment schedule from the loan terms, and the dynamic schedule that
// honors per-occurrence payment overrides and redetermines the true term.
package amortization

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for loan terms that do not describe a
// repayable loan.
var ErrInvalidInput = errors.New("principal must be positive, the rate must not be negative and the term must be at least one month")

var (
	twelve = decimal.NewFromInt(12)
	one    = decimal.NewFromInt(1)
)

// Row is one month of an amortization schedule. All money values are rounded
// to cents.
type Row struct {
	Month     int             `json:"month" example:"1"`             // 1-based month number
	Payment   decimal.Decimal `json:"payment" example:"1896.20"`     // Total paid this month
	Principal decimal.Decimal `json:"principal" example:"271.20"`    // Part of the payment reducing the balance
	Interest  decimal.Decimal `json:"interest" example:"1625.00"`    // Part of the payment covering interest
	Balance   decimal.Decimal `json:"balance" example:"299728.80"`   // Remaining balance after the payment
}

// LevelPayment returns the constant monthly payment that repays the principal
// over the term, rounded to cents.
func LevelPayment(principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if !principal.IsPositive() || annualRate.IsNegative() || termMonths < 1 {
		return decimal.Decimal{}, ErrInvalidInput
	}

	term := decimal.NewFromInt(int64(termMonths))

	// Rounding up makes the level payment overpay by a fraction of a cent
	// instead of underpaying. The residual is absorbed by the final payment,
	// never by an extra month after the term.
	rate := annualRate.Div(twelve)
	if rate.IsZero() {
		return principal.Div(term).RoundUp(2), nil
	}

	// principal * r * (1+r)^n / ((1+r)^n - 1)
	compound := one.Add(rate).Pow(term)
	payment := principal.Mul(rate).Mul(compound).Div(compound.Sub(one))

	return payment.RoundUp(2), nil
}

// Static computes the level-payment schedule for the given loan terms.
//
// The final row is corrected so that the balance lands exactly at zero: its
// principal portion absorbs the rounding residual of all earlier rows and the
// reported payment is the amount actually needed to close the loan.
func Static(principal, annualRate decimal.Decimal, termMonths int) ([]Row, error) {
	payment, err := LevelPayment(principal, annualRate, termMonths)
	if err != nil {
		return nil, err
	}

	rate := annualRate.Div(twelve)
	balance := principal

	rows := make([]Row, 0, termMonths)
	for month := 1; month <= termMonths; month++ {
		interest := balance.Mul(rate).Round(2)

		// The rounded-up payment can close the loan a month early for very
		// small principals, the schedule ends there instead of going negative
		if month == termMonths || balance.Add(interest).LessThanOrEqual(payment) {
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

		rows = append(rows, Row{
			Month:     month,
			Payment:   payment,
			Principal: principalPortion,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return rows, nil
}
