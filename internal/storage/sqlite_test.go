package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	store.Save(1, Record{"ann", 14})
	store.Close()

	store, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	records, err := store.Top(1, 5)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(records) != 1 || records[0] != (Record{"ann", 14}) {
		t.Errorf("records after reopen = %v", records)
	}
}

func TestSQLiteClearLevel(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	store.Save(1, Record{"ann", 1})
	store.Save(2, Record{"ann", 2})

	if err := store.ClearLevel(1); err != nil {
		t.Fatalf("ClearLevel() failed: %v", err)
	}
	l1, _ := store.Load(1)
	l2, _ := store.Load(2)
	if len(l1) != 0 || len(l2) != 1 {
		t.Errorf("after clear: level 1 %v, level 2 %v", l1, l2)
	}
}
