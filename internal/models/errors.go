package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// RecurringItem errors
var (
	ErrItemKindInvalid      = errors.New("the item kind must be income or expense")
	ErrItemIntervalInvalid  = errors.New("the item interval is not supported")
	ErrItemAmountNegative   = errors.New("item amounts must be zero or positive")
	ErrLoanPrincipalInvalid = errors.New("the loan principal must be larger than zero")
	ErrLoanRateNegative     = errors.New("the loan interest rate must be zero or positive")
	ErrLoanTermInvalid      = errors.New("the loan term must be at least one month")
	ErrStatementDayInvalid  = errors.New("the statement day must be between 1 and 28")
)

// OverrideRecord errors
var (
	ErrOverrideStatusInvalid = errors.New("the override status is not supported")
	ErrOverrideNotUnique     = errors.New("an override already exists for this occurrence")
)
