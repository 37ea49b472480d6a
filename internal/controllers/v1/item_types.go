package v1

import (
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Item is the API representation of a recurring item.
type Item struct {
	models.RecurringItem
}

func newItem(item models.RecurringItem) Item {
	return Item{RecurringItem: item}
}

// ItemEditable contains the fields of a recurring item that clients can set.
type ItemEditable struct {
	Kind       models.ItemKind           `json:"kind" example:"expense"`
	Name       string                    `json:"name" example:"Mortgage"`
	Category   string                    `json:"category" example:"Housing"`
	Amount     decimal.Decimal           `json:"amount" example:"1896.20"`
	Interval   models.Interval           `json:"interval" example:"monthly"`
	StartDate  types.Date                `json:"startDate" example:"2025-01-01"`
	Archived   bool                      `json:"archived" example:"false"`
	Loan       *models.LoanDetails       `json:"loan"`
	CreditCard *models.CreditCardDetails `json:"creditCard"`
}

// model returns the database resource for the editable fields.
func (editable ItemEditable) model() models.RecurringItem {
	return models.RecurringItem{
		Kind:       editable.Kind,
		Name:       editable.Name,
		Category:   editable.Category,
		Amount:     editable.Amount,
		Interval:   editable.Interval,
		StartDate:  editable.StartDate,
		Archived:   editable.Archived,
		Loan:       editable.Loan,
		CreditCard: editable.CreditCard,
	}
}

// ItemQueryFilter contains the fields items can be filtered by.
type ItemQueryFilter struct {
	Kind     models.ItemKind `form:"kind"`
	Interval models.Interval `form:"interval"`
	Category string          `form:"category"`
	Name     string          `form:"name" filterField:"false"`     // Glob match, checked after the database query
	Archived *bool           `form:"archived" filterField:"false"` // Tristate, checked after the database query
}

// model returns the database query for the filter fields usable in gorm.
func (filter ItemQueryFilter) model() models.RecurringItem {
	return models.RecurringItem{
		Kind:     filter.Kind,
		Interval: filter.Interval,
		Category: filter.Category,
	}
}

// ItemResponse is the response for a single item.
type ItemResponse struct {
	Data  *Item   `json:"data"`  // Data for the item
	Error *string `json:"error"` // The error, if any occurred
}

// ItemCreateResponse is the response for creating items.
type ItemCreateResponse struct {
	Data  []ItemResponse `json:"data"`  // List of created items
	Error *string        `json:"error"` // The error for the whole request, if any
}

// ItemListResponse is the response for an item list.
type ItemListResponse struct {
	Data  []Item  `json:"data"`  // List of items
	Error *string `json:"error"` // The error, if any occurred
}
