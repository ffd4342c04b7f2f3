package domain

import (
	"time"

	"github.com/google/uuid"
)

// CatalogEntityID is the entity id used for audit entries that span the
// whole catalog rather than a single plan (reorder).
var CatalogEntityID = uuid.Nil

// AuditEntry is an immutable record of one catalog mutation.
// PreviousData is nil for created and reordered entries.
type AuditEntry struct {
	ID           uuid.UUID
	EntityID     uuid.UUID
	Action       AuditAction
	PerformedBy  Actor
	Timestamp    time.Time
	PreviousData *PlanSnapshot
	NewData      *PlanSnapshot
	Details      string
}

// CanRollback reports whether the entry holds a prior state to restore.
func (e *AuditEntry) CanRollback() bool {
	return e.PreviousData != nil
}
