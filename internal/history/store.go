// Package history persists past calculations. The engine stays independent
// of storage; callers inject whichever Store implementation fits: in-memory,
// a flat JSON file, or an embedded sqlite database.
package history

import (
	"time"

	"compound-calc/internal/model"

	"github.com/google/uuid"
)

// Record is one persisted calculation: the input params and the computed
// result, plus a unique id and creation timestamp assigned at save time.
// Records are immutable once saved.
type Record struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	model.CalculationParams
	model.CalculationResult
}

// Store holds an ordered collection of records, most-recently-saved first.
//
// List never fails on corrupted persisted data; it degrades to an empty
// collection so the caller's UI stays available. Write failures do surface,
// so callers can report that a calculation succeeded but was not saved.
type Store interface {
	Save(params model.CalculationParams, result model.CalculationResult) (Record, error)
	List() ([]Record, error)
	// DeleteByID removes the record with the given id. Deleting an absent
	// id is a no-op, not an error.
	DeleteByID(id string) error
	Clear() error
}

func newRecord(params model.CalculationParams, result model.CalculationResult) Record {
	return Record{
		ID:                uuid.NewString(),
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
		CalculationParams: params,
		CalculationResult: result,
	}
}
