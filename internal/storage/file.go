package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// KindFile names the flat text backend.
const KindFile = "file"

func init() {
	Register(KindFile, func(dir string) (Store, error) {
		return NewFileStore(dir)
	})
}

// FileStore keeps one scores_level{N}.txt per level, one "name,score" line
// per record, sorted by score descending.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the score file for a level.
func (s *FileStore) Path(level int) string {
	return filepath.Join(s.dir, fmt.Sprintf("scores_level%d.txt", level))
}

// Load reads every record for the level. A missing file is an empty list.
func (s *FileStore) Load(level int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(level)
}

func (s *FileStore) load(level int) ([]Record, error) {
	path := s.Path(level)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedRecord, path, n, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", path, err)
	}

	sortRecords(records)
	return records, nil
}

func parseLine(line string) (Record, error) {
	i := strings.LastIndexByte(line, ',')
	if i <= 0 {
		return Record{}, fmt.Errorf("want name,score, got %q", line)
	}
	score, err := strconv.Atoi(strings.TrimSpace(line[i+1:]))
	if err != nil || score < 0 {
		return Record{}, fmt.Errorf("bad score in %q", line)
	}
	return Record{Name: line[:i], Score: score}, nil
}

// Top returns at most n records for the level.
func (s *FileStore) Top(level, n int) ([]Record, error) {
	records, err := s.Load(level)
	if err != nil {
		return nil, err
	}
	return top(records, n), nil
}

// Save upserts rec and rewrites the level file. A file that cannot be read
// counts as no prior scores and is replaced. A file that reads but does not
// parse is left untouched and the error is returned.
func (s *FileStore) Save(level int, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(level)
	switch {
	case errors.Is(err, ErrMalformedRecord):
		return err
	case err != nil:
		records = nil
	}
	return s.write(level, upsert(records, rec))
}

// write replaces the level file atomically through a temp file and rename.
func (s *FileStore) write(level int, records []Record) error {
	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf("scores_level%d-*.tmp", level))
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, r := range records {
		fmt.Fprintf(w, "%s,%d\n", r.Name, r.Score)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(level)); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.Path(level), err)
	}
	return nil
}

// Close is a no-op; files are closed after every operation.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
