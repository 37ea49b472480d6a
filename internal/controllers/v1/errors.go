package v1

import (
	"errors"
	"net/http"

	"github.com/cashplan/backend/internal/amortization"
	"github.com/cashplan/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"` // The error message
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errNotALoan           = amortization.ErrNotALoan
	errRevertWithoutEdit  = errors.New("there is no override to revert for this occurrence")
	errYearBeforeStart    = errors.New("the requested year must not be before the summary start year")
)
