package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"compound-calc/internal/model"
)

// FileStore persists the whole collection as a single JSON array on disk.
// Each operation is a full read-modify-write; concurrent processes are
// last-writer-wins, which matches the single-user scope of this tool.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(params model.CalculationParams, result model.CalculationResult) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := newRecord(params, result)
	records := append([]Record{rec}, s.load()...)
	if err := s.write(records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *FileStore) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(), nil
}

func (s *FileStore) DeleteByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return s.write(kept)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write([]Record{})
}

// load reads the persisted collection. A missing or unparsable file yields
// an empty collection rather than an error: availability of the history UI
// wins over surfacing a corrupt-storage failure.
func (s *FileStore) load() []Record {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	return records
}

func (s *FileStore) write(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
