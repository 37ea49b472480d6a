package models

import (
	"encoding/json"

	"github.com/cashplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OverrideStatus is the per-occurrence state a user can set.
type OverrideStatus string

const (
	StatusPending     OverrideStatus = "pending"
	StatusPaid        OverrideStatus = "paid"
	StatusOverdue     OverrideStatus = "overdue"
	StatusHighlighted OverrideStatus = "highlighted"
)

// Valid reports whether the status is one of the supported statuses.
func (s OverrideStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusHighlighted:
		return true
	}

	return false
}

// OverrideRecord is the durable record of one occurrence's status and amount
// edits. There is at most one record per (item, kind, date) occurrence.
//
// OriginalAmount is captured once at the first amount edit and kept even after
// a revert so that the pre-edit amount stays auditable. EditedAmount, when
// set, is the effective amount of the occurrence.
type OverrideRecord struct {
	DefaultModel
	ItemID         uuid.UUID        `json:"itemId" gorm:"uniqueIndex:override_occurrence"`
	Kind           ItemKind         `json:"kind" gorm:"uniqueIndex:override_occurrence" example:"expense"`
	Date           types.Date       `json:"date" gorm:"uniqueIndex:override_occurrence" example:"2025-03-01"`
	Status         OverrideStatus   `json:"status" example:"paid"`
	OriginalAmount *decimal.Decimal `json:"originalAmount" gorm:"type:DECIMAL(20,8)"`
	EditedAmount   *decimal.Decimal `json:"editedAmount" gorm:"type:DECIMAL(20,8)"`
}

func (o *OverrideRecord) BeforeSave(_ *gorm.DB) error {
	if o.Status == "" {
		o.Status = StatusPending
	}

	return nil
}

func (o *OverrideRecord) AfterSave(_ *gorm.DB) error {
	if !o.Status.Valid() {
		return ErrOverrideStatusInvalid
	}

	if !o.Kind.Valid() {
		return ErrItemKindInvalid
	}

	return nil
}

// Export returns all override records on this instance for export.
func (OverrideRecord) Export() (json.RawMessage, error) {
	var overrides []OverrideRecord
	err := DB.Unscoped().Where(&OverrideRecord{}).Find(&overrides).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&overrides)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
