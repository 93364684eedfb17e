// Package storage persists per-level high scores. The flat text store is the
// canonical format; an SQLite store backed by the pure-Go modernc.org/sqlite
// driver can be selected instead.
package storage

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// ErrMalformedRecord is returned when a persisted score cannot be parsed.
var ErrMalformedRecord = errors.New("storage: malformed score record")

// DefaultLimit is the leaderboard size shown by the UI and the CLI.
const DefaultLimit = 5

// Record is one leaderboard entry. A level holds at most one record per name.
type Record struct {
	Name  string
	Score int
}

// Store is a per-level score store.
type Store interface {
	// Load returns every record for the level, highest score first.
	// A level with no scores yields an empty list.
	Load(level int) ([]Record, error)

	// Top returns at most n records for the level, highest score first.
	Top(level, n int) ([]Record, error)

	// Save upserts rec, keeping the higher of the stored and new score.
	Save(level int, rec Record) error

	Close() error
}

// upsert merges rec into records keeping the max score per name, then sorts.
func upsert(records []Record, rec Record) []Record {
	i := slices.IndexFunc(records, func(r Record) bool { return r.Name == rec.Name })
	if i < 0 {
		records = append(records, rec)
	} else {
		records[i].Score = max(records[i].Score, rec.Score)
	}
	sortRecords(records)
	return records
}

// sortRecords orders records by score descending. Ties keep their order.
func sortRecords(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

func top(records []Record, n int) []Record {
	if n > 0 && len(records) > n {
		return records[:n]
	}
	return records
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
