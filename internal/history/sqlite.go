package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"compound-calc/internal/model"

	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists records in an embedded sqlite database. Each record
// is stored as a JSON payload so old rows stay readable when new optional
// fields are added.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS calculations(
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		payload TEXT NOT NULL
	)`)
	return err
}

func (s *SQLiteStore) Save(params model.CalculationParams, result model.CalculationResult) (Record, error) {
	rec := newRecord(params, result)
	payload, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("encode record: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO calculations(id, created_at, payload) VALUES(?,?,?)`,
		rec.ID, rec.CreatedAt, string(payload))
	if err != nil {
		return Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// List returns records most-recently-saved first. Rows whose payload no
// longer parses are skipped rather than failing the whole listing.
func (s *SQLiteStore) List() ([]Record, error) {
	rows, err := s.db.Query(`SELECT payload FROM calculations ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteByID(id string) error {
	_, err := s.db.Exec(`DELETE FROM calculations WHERE id=?`, id)
	return err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM calculations`)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
