package history

import (
	"sync"

	"compound-calc/internal/model"
)

// MemoryStore keeps records in process memory. Used by tests and by the
// "memory" backend for ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(params model.CalculationParams, result model.CalculationResult) (Record, error) {
	rec := newRecord(params, result)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]Record{rec}, s.records...)
	return rec, nil
}

func (s *MemoryStore) List() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) DeleteByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}
