package models

import (
	"encoding/json"
	"strings"

	"github.com/cashplan/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemKind is the cash direction of a recurring item.
type ItemKind string

const (
	ItemKindIncome  ItemKind = "income"
	ItemKindExpense ItemKind = "expense"
)

// Valid reports whether the kind is one of the supported kinds.
func (k ItemKind) Valid() bool {
	return k == ItemKindIncome || k == ItemKindExpense
}

// Interval is the recurrence interval of an item.
type Interval string

const (
	IntervalOneTime   Interval = "one-time"
	IntervalWeekly    Interval = "weekly"
	IntervalBiWeekly  Interval = "bi-weekly"
	IntervalMonthly   Interval = "monthly"
	IntervalQuarterly Interval = "quarterly"
	IntervalAnnually  Interval = "annually"
)

// Valid reports whether the interval is one of the supported intervals.
func (i Interval) Valid() bool {
	switch i {
	case IntervalOneTime, IntervalWeekly, IntervalBiWeekly, IntervalMonthly, IntervalQuarterly, IntervalAnnually:
		return true
	}

	return false
}

// LoanDetails are the terms of a loan item. Only items carrying them are
// eligible for amortization.
type LoanDetails struct {
	Principal  decimal.Decimal `json:"principal" gorm:"type:DECIMAL(20,8)" example:"300000"`   // Loan principal
	AnnualRate decimal.Decimal `json:"annualRate" gorm:"type:DECIMAL(20,8)" example:"0.065"`   // Annual interest rate as a fraction
	TermMonths int             `json:"termMonths" example:"360"`                               // Configured term. Updated when overrides change the true payoff term
}

// CreditCardDetails are the terms of a credit card item.
type CreditCardDetails struct {
	Limit        decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)" example:"5000"`      // Credit limit
	StatementDay int             `json:"statementDay" example:"15"`                           // Day of month the statement closes
	AnnualRate   decimal.Decimal `json:"annualRate" gorm:"type:DECIMAL(20,8)" example:"0.19"` // Annual interest rate as a fraction
}

// RecurringItem is a recurring income or expense. The variant details decide
// what the item is beyond a plain recurring amount: items with Loan set are
// amortizing loans, items with CreditCard set are credit cards. At most one
// variant is expected to be set.
type RecurringItem struct {
	DefaultModel
	Kind       ItemKind           `json:"kind" example:"expense"`
	Name       string             `json:"name" example:"Mortgage"`
	Category   string             `json:"category" example:"Housing"`
	Amount     decimal.Decimal    `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1896.20"` // Nominal amount per occurrence
	Interval   Interval           `json:"interval" example:"monthly"`
	StartDate  types.Date         `json:"startDate" example:"2025-01-01"` // First occurrence. Items without it are not active
	Archived   bool               `json:"archived" example:"false"`       // Archived items are kept but no longer expanded
	Loan       *LoanDetails       `json:"loan,omitempty" gorm:"embedded;embeddedPrefix:loan_"`
	CreditCard *CreditCardDetails `json:"creditCard,omitempty" gorm:"embedded;embeddedPrefix:card_"`
}

// LoanTerms returns the loan terms of the item and whether it has any.
func (i RecurringItem) LoanTerms() (LoanDetails, bool) {
	if i.Loan == nil {
		return LoanDetails{}, false
	}

	return *i.Loan, true
}

func (i *RecurringItem) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)

	return nil
}

func (i *RecurringItem) AfterSave(_ *gorm.DB) error {
	if !i.Kind.Valid() {
		return ErrItemKindInvalid
	}

	if !i.Interval.Valid() {
		return ErrItemIntervalInvalid
	}

	if i.Amount.IsNegative() {
		return ErrItemAmountNegative
	}

	if i.Loan != nil {
		if !i.Loan.Principal.IsPositive() {
			return ErrLoanPrincipalInvalid
		}

		if i.Loan.AnnualRate.IsNegative() {
			return ErrLoanRateNegative
		}

		if i.Loan.TermMonths < 1 {
			return ErrLoanTermInvalid
		}
	}

	if i.CreditCard != nil && (i.CreditCard.StatementDay < 1 || i.CreditCard.StatementDay > 28) {
		return ErrStatementDayInvalid
	}

	return nil
}

// Export returns all recurring items on this instance for export.
func (RecurringItem) Export() (json.RawMessage, error) {
	var items []RecurringItem
	err := DB.Unscoped().Where(&RecurringItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&items)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
