// Package v1 implements the v1 API of cashplan.
//
// The handlers here are the orchestration layer the calculation engines are
// explicitly free of: they load item and override snapshots from the
// database, call the pure engines, persist whatever mutations the engines
// emit and render the results.
package v1

import (
	cp_uuid "github.com/cashplan/backend/internal/uuid"
)

type URIID struct {
	ID cp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
