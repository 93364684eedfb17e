// Package replay records one row per processed tick to a parquet file and
// reads recordings back for summaries.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/vovakirdan/snake-plus/internal/snake"
)

// schemaVersion is stored in the file metadata.
const schemaVersion = "snake_frame_v1"

// Frame is one recorded tick.
type Frame struct {
	Tick        int64  `parquet:"tick"`
	Level       int32  `parquet:"level"`
	HeadX       int32  `parquet:"head_x"`
	HeadY       int32  `parquet:"head_y"`
	Length      int32  `parquet:"length"`
	Rate        int32  `parquet:"rate"`
	Boost       bool   `parquet:"boost"`
	State       string `parquet:"state,dict"`
	Ate         bool   `parquet:"ate"`
	BoostPicked bool   `parquet:"boost_picked"`
	Truncated   bool   `parquet:"truncated"`
	Teleported  bool   `parquet:"teleported"`
}

// FrameOf builds the row for a tick from its result and the snapshot taken
// after it.
func FrameOf(snap snake.Snapshot, res snake.StepResult) Frame {
	head := snap.Head()
	return Frame{
		Tick:        int64(snap.Tick),
		Level:       int32(snap.Level),
		HeadX:       int32(head.X),
		HeadY:       int32(head.Y),
		Length:      int32(snap.Length()),
		Rate:        int32(snap.Rate),
		Boost:       snap.Boosted(),
		State:       snap.State.String(),
		Ate:         res.Ate,
		BoostPicked: res.Boosted,
		Truncated:   res.Truncated,
		Teleported:  res.Teleported,
	}
}

// Recorder streams frames to a temp file next to the target and moves it
// into place on Close.
type Recorder struct {
	tmpPath string
	outPath string

	file   *os.File
	writer *parquet.GenericWriter[Frame]

	rows int
}

// NewRecorder starts a recording that will be written to path.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, errors.New("replay: output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("replay: create output dir: %w", err)
	}

	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("replay: open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[Frame](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	w.SetKeyValueMetadata("schema", schemaVersion)

	return &Recorder{
		tmpPath: tmpPath,
		outPath: path,
		file:    f,
		writer:  w,
	}, nil
}

// Path returns the final file path.
func (r *Recorder) Path() string { return r.outPath }

// Rows returns the number of frames recorded so far.
func (r *Recorder) Rows() int { return r.rows }

// Record appends one frame.
func (r *Recorder) Record(f Frame) error {
	if r.writer == nil {
		return errors.New("replay: recorder is closed")
	}
	if _, err := r.writer.Write([]Frame{f}); err != nil {
		return fmt.Errorf("replay: write frame: %w", err)
	}
	r.rows++
	return nil
}

// Close flushes the file and renames it into place. Calling Close twice is
// a no-op.
func (r *Recorder) Close() error {
	if r.writer == nil {
		return nil
	}

	closeErr := r.writer.Close()
	r.writer = nil
	_ = r.file.Sync()
	fileErr := r.file.Close()
	r.file = nil

	if closeErr != nil {
		_ = os.Remove(r.tmpPath)
		return fmt.Errorf("replay: close parquet writer: %w", closeErr)
	}
	if fileErr != nil {
		_ = os.Remove(r.tmpPath)
		return fmt.Errorf("replay: close parquet file: %w", fileErr)
	}
	if err := os.Rename(r.tmpPath, r.outPath); err != nil {
		return fmt.Errorf("replay: rename parquet: %w", err)
	}
	return nil
}

// ReadFile loads every frame from a recording.
func ReadFile(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("replay: open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[Frame](pf)
	defer reader.Close()

	frames := make([]Frame, reader.NumRows())
	n, err := reader.Read(frames)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return frames[:n], nil
}

// Summary aggregates a recording.
type Summary struct {
	Ticks       int
	Levels      []int
	MaxLength   int
	FinalLength int
	MaxRate     int
	GameOvers   int
	Truncations int
	FoodsEaten  int
	BoostsTaken int
	Teleports   int
}

// Summarize scans frames in order.
func Summarize(frames []Frame) Summary {
	var s Summary
	for _, f := range frames {
		s.Ticks++
		s.MaxLength = max(s.MaxLength, int(f.Length))
		s.FinalLength = int(f.Length)
		s.MaxRate = max(s.MaxRate, int(f.Rate))
		if len(s.Levels) == 0 || s.Levels[len(s.Levels)-1] != int(f.Level) {
			s.Levels = append(s.Levels, int(f.Level))
		}
		if f.State == snake.StateGameOver.String() {
			s.GameOvers++
		}
		if f.Truncated {
			s.Truncations++
		}
		if f.Ate {
			s.FoodsEaten++
		}
		if f.BoostPicked {
			s.BoostsTaken++
		}
		if f.Teleported {
			s.Teleports++
		}
	}
	return s
}
