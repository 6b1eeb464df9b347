package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"compound-calc/internal/model"
)

// withStores runs a test against every backend so they share one contract.
func withStores(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore())
	})
	t.Run("file", func(t *testing.T) {
		fn(t, NewFileStore(filepath.Join(t.TempDir(), "history.json")))
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
		if err != nil {
			t.Fatalf("OpenSQLite() error = %v", err)
		}
		defer s.Close()
		fn(t, s)
	})
}

func sampleParams(principal float64) model.CalculationParams {
	return model.CalculationParams{
		Principal: principal,
		Rate:      5,
		Time:      3,
		Frequency: model.Annually,
	}
}

func sampleResult(final float64) model.CalculationResult {
	return model.CalculationResult{
		FinalAmount:   final,
		TotalInterest: final - 10000,
		YearlyBreakdown: []model.YearlyBreakdownRow{
			{Year: 1, Amount: 10500, InterestEarned: 500},
			{Year: 2, Amount: 11025, InterestEarned: 525},
			{Year: 3, Amount: final, InterestEarned: 551.25},
		},
		Formula: "A = P(1 + r/n)^(nt)",
	}
}

func TestSaveAndList(t *testing.T) {
	withStores(t, func(t *testing.T, s Store) {
		first, err := s.Save(sampleParams(10000), sampleResult(11576.25))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		second, err := s.Save(sampleParams(20000), sampleResult(23152.50))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if first.ID == "" || first.CreatedAt == "" {
			t.Error("saved record is missing id or createdAt")
		}
		if first.ID == second.ID {
			t.Error("record ids must be unique")
		}

		records, err := s.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		// Most recently saved first.
		if records[0].ID != second.ID || records[1].ID != first.ID {
			t.Errorf("expected order [%s %s], got [%s %s]",
				second.ID, first.ID, records[0].ID, records[1].ID)
		}

		got := records[1]
		if got.Principal != 10000 || got.Rate != 5 || got.Time != 3 || got.Frequency != model.Annually {
			t.Errorf("params did not round trip: %+v", got.CalculationParams)
		}
		if got.FinalAmount != 11576.25 || len(got.YearlyBreakdown) != 3 {
			t.Errorf("result did not round trip: %+v", got.CalculationResult)
		}
	})
}

func TestListEmpty(t *testing.T) {
	withStores(t, func(t *testing.T, s Store) {
		records, err := s.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected empty history, got %d records", len(records))
		}
	})
}

func TestDeleteByID(t *testing.T) {
	withStores(t, func(t *testing.T, s Store) {
		a, _ := s.Save(sampleParams(1000), sampleResult(1157.625))
		b, _ := s.Save(sampleParams(2000), sampleResult(2315.25))
		c, _ := s.Save(sampleParams(3000), sampleResult(3472.875))

		if err := s.DeleteByID(b.ID); err != nil {
			t.Fatalf("DeleteByID() error = %v", err)
		}

		records, err := s.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records after delete, got %d", len(records))
		}
		// Remaining records keep their relative order.
		if records[0].ID != c.ID || records[1].ID != a.ID {
			t.Errorf("unexpected order after delete: [%s %s]", records[0].ID, records[1].ID)
		}

		// Deleting an unknown id is a no-op.
		if err := s.DeleteByID("no-such-id"); err != nil {
			t.Fatalf("DeleteByID(unknown) error = %v", err)
		}
		records, _ = s.List()
		if len(records) != 2 {
			t.Errorf("unknown-id delete changed the collection: %d records", len(records))
		}
	})
}

func TestClear(t *testing.T) {
	withStores(t, func(t *testing.T, s Store) {
		s.Save(sampleParams(1000), sampleResult(1157.625))
		s.Save(sampleParams(2000), sampleResult(2315.25))

		if err := s.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		records, err := s.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected empty history after clear, got %d records", len(records))
		}
	})
}

func TestFileStoreCorruptDataDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{{{ not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	records, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v, corrupt data must not surface", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}

	// Saving over corrupt data starts a fresh collection.
	if _, err := s.Save(sampleParams(1000), sampleResult(1157.625)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	records, _ = s.List()
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestFileStoreWriteErrorSurfaces(t *testing.T) {
	// Point the store below a regular file so every write fails with
	// ENOTDIR, independent of the uid running the tests.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(filepath.Join(blocker, "nested", "history.json"))
	if _, err := s.Save(sampleParams(1000), sampleResult(1157.625)); err == nil {
		t.Error("expected Save to surface the write failure")
	}
	if err := s.Clear(); err == nil {
		t.Error("expected Clear to surface the write failure")
	}

	// Reads still degrade gracefully.
	records, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}

func TestSQLiteStoreSkipsUnreadableRows(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()

	good, err := s.Save(sampleParams(10000), sampleResult(11576.25))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	_, err = s.db.Exec(`INSERT INTO calculations(id, created_at, payload) VALUES(?,?,?)`,
		"mangled-row", "2026-08-23T00:00:00Z", "{{{ not json")
	if err != nil {
		t.Fatalf("insert mangled row: %v", err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected the mangled row to be skipped, got %d records", len(records))
	}
	if records[0].ID != good.ID {
		t.Errorf("expected surviving record %s, got %s", good.ID, records[0].ID)
	}
}

func TestRecordWireFormat(t *testing.T) {
	d := model.NewDate(2025, 1, 1)
	params := sampleParams(10000)
	params.StartDate = &d

	rec := newRecord(params, sampleResult(11576.25))
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"id", "createdAt",
		"principal", "rate", "time", "frequency", "startDate",
		"finalAmount", "totalInterest", "yearlyBreakdown", "formula",
	} {
		if _, present := decoded[key]; !present {
			t.Errorf("persisted record is missing field %q", key)
		}
	}
	if decoded["startDate"] != "2025-01-01" {
		t.Errorf("expected ISO startDate, got %v", decoded["startDate"])
	}
}
