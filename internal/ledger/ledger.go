// Package ledger implements the override ledger: per-occurrence status and
// amount edits layered over the nominal amounts of recurring items.
//
// A Snapshot is an in-memory view of the persisted override records. Writes
// update the snapshot and return a Mutation that the caller must persist;
// the ledger itself never touches storage. A single logical writer is
// assumed, concurrent sessions overwrite each other last-writer-wins.
package ledger

import (
	"github.com/cashplan/backend/internal/models"
	"github.com/cashplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mutation is a write the caller must apply to the persisted override
// records to make it durable.
type Mutation struct {
	Record models.OverrideRecord
}

type key struct {
	itemID uuid.UUID
	kind   models.ItemKind
	date   string
}

// Snapshot is a point-in-time view of the override records for one user.
type Snapshot struct {
	records map[key]models.OverrideRecord
}

// FromRecords builds a snapshot from persisted override records. Later
// duplicates for the same occurrence win, matching last-writer-wins on the
// unique index.
func FromRecords(records []models.OverrideRecord) *Snapshot {
	s := &Snapshot{records: make(map[key]models.OverrideRecord, len(records))}
	for _, r := range records {
		s.records[keyOf(r.ItemID, r.Kind, r.Date)] = r
	}

	return s
}

// Lookup returns the override record for an occurrence, if any.
func (s *Snapshot) Lookup(itemID uuid.UUID, kind models.ItemKind, date types.Date) (models.OverrideRecord, bool) {
	r, ok := s.records[keyOf(itemID, kind, date)]
	return r, ok
}

// EffectiveAmount returns the amount an occurrence of the item on the given
// date counts with: the edited amount if one is recorded, the item's nominal
// amount otherwise. A missing record is not an error.
func (s *Snapshot) EffectiveAmount(item models.RecurringItem, date types.Date) decimal.Decimal {
	if r, ok := s.Lookup(item.ID, item.Kind, date); ok && r.EditedAmount != nil {
		return *r.EditedAmount
	}

	return item.Amount
}

// Status returns the status of an occurrence, defaulting to pending when no
// record exists.
func (s *Snapshot) Status(itemID uuid.UUID, kind models.ItemKind, date types.Date) models.OverrideStatus {
	if r, ok := s.Lookup(itemID, kind, date); ok {
		return r.Status
	}

	return models.StatusPending
}

// UpsertStatus sets the status of an occurrence. Amount fields are left
// untouched.
func (s *Snapshot) UpsertStatus(itemID uuid.UUID, kind models.ItemKind, date types.Date, status models.OverrideStatus) Mutation {
	r := s.recordFor(itemID, kind, date)
	r.Status = status

	s.records[keyOf(itemID, kind, date)] = r
	return Mutation{Record: r}
}

// UpsertAmount sets the edited amount of an occurrence of the item. On the
// first edit the pre-edit nominal amount is captured as the original amount;
// later edits never overwrite that capture.
func (s *Snapshot) UpsertAmount(item models.RecurringItem, date types.Date, amount decimal.Decimal) Mutation {
	r := s.recordFor(item.ID, item.Kind, date)

	if r.OriginalAmount == nil {
		original := item.Amount
		r.OriginalAmount = &original
	}

	edited := amount
	r.EditedAmount = &edited

	s.records[keyOf(item.ID, item.Kind, date)] = r
	return Mutation{Record: r}
}

// Revert clears the edited amount of an occurrence. The original amount is
// retained as an audit trail and the record itself is kept. The second return
// value is false when no record exists, in which case there is nothing to
// persist.
func (s *Snapshot) Revert(itemID uuid.UUID, kind models.ItemKind, date types.Date) (Mutation, bool) {
	k := keyOf(itemID, kind, date)
	r, ok := s.records[k]
	if !ok {
		return Mutation{}, false
	}

	r.EditedAmount = nil

	s.records[k] = r
	return Mutation{Record: r}, true
}

// recordFor returns the existing record for an occurrence or a fresh pending
// one.
func (s *Snapshot) recordFor(itemID uuid.UUID, kind models.ItemKind, date types.Date) models.OverrideRecord {
	if r, ok := s.records[keyOf(itemID, kind, date)]; ok {
		return r
	}

	return models.OverrideRecord{
		ItemID: itemID,
		Kind:   kind,
		Date:   date,
		Status: models.StatusPending,
	}
}

func keyOf(itemID uuid.UUID, kind models.ItemKind, date types.Date) key {
	return key{itemID: itemID, kind: kind, date: date.String()}
}
