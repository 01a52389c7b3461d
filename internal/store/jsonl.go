package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// JSONL is a Store backed by an append-only JSONL file. Each line is a
// JSON-serialized wheel.Event. The file is synced after every Append.
//
// Session identity: "<unix-timestamp>-<pid>.jsonl", so file names sort
// chronologically.
type JSONL struct {
	file       *os.File
	path       string
	mu         sync.Mutex
	idx        *fileIndex
	sessionID  string
	startedAt  time.Time
	pos        int64 // current write position in the file
	lastWinner string
	logger     *slog.Logger
}

// NewJSONL creates (or reopens) the session JSONL log in dir. dir is created
// with os.MkdirAll if it does not exist. A nil logger discards output.
func NewJSONL(dir string, logger *slog.Logger) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: mkdir %q: %w", dir, err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := time.Now()
	sessionID := fmt.Sprintf("%d-%d", now.Unix(), os.Getpid())
	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	// Seek to end in case the file already has content.
	pos, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("store: seek: %w", err)
	}
	return &JSONL{
		file:      f,
		path:      path,
		idx:       newFileIndex(),
		sessionID: sessionID,
		startedAt: now,
		pos:       pos,
		logger:    logger.With("session", sessionID),
	}, nil
}

// Path returns the session log file path.
func (j *JSONL) Path() string { return j.path }

// Append serializes e as a JSON line, writes it to the file, and syncs.
// It is safe to call from multiple goroutines.
func (j *JSONL) Append(e wheel.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	lineOffset := j.pos
	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("store: sync: %w", err)
	}
	lineLen := int64(len(data))
	j.pos += lineLen
	j.idx.onAppend(e, lineOffset, lineLen)
	if e.Kind == wheel.EventSettled {
		j.lastWinner = e.Name
		j.logger.Debug("spin recorded", "spin_id", e.SpinID, "winner", e.Name)
	}
	return nil
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// Spins returns summaries for all settled spins in this session.
// The returned slice is a copy and safe to mutate.
func (j *JSONL) Spins() ([]SpinSummary, error) {
	j.mu.Lock()
	result := make([]SpinSummary, len(j.idx.summaries))
	copy(result, j.idx.summaries)
	j.mu.Unlock()
	return result, nil
}

// SpinLog returns the events of a settled spin, reading from the JSONL
// file using the in-memory byte-offset index. Returns ErrNotFound if the
// spin has not settled (or was never started).
func (j *JSONL) SpinLog(id string) ([]wheel.Event, error) {
	j.mu.Lock()
	r, ok := j.idx.ranges[id]
	j.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("store: spin %s: %w", id, ErrNotFound)
	}
	size := r.end - r.start
	if size <= 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	if _, err := j.file.ReadAt(buf, r.start); err != nil {
		return nil, fmt.Errorf("store: read spin %s: %w", id, err)
	}
	var events []wheel.Event
	for _, line := range bytes.Split(buf, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var e wheel.Event
		if err := json.Unmarshal(line, &e); err != nil {
			j.logger.Warn("skipping malformed line", "spin_id", id, "error", err)
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

// Tally returns win counts per name for this session, most wins first.
func (j *JSONL) Tally() ([]NameCount, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return tally(j.idx.summaries), nil
}

// SessionSummary returns metadata about the current session derived from
// the in-memory spin index.
func (j *JSONL) SessionSummary() (SessionSummary, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	rigged := 0
	for _, s := range j.idx.summaries {
		if s.Rigged {
			rigged++
		}
	}
	return SessionSummary{
		SessionID:  j.sessionID,
		StartedAt:  j.startedAt,
		Spins:      len(j.idx.summaries),
		Rigged:     rigged,
		LastWinner: j.lastWinner,
	}, nil
}

// ListSessions returns the session log paths in dir, oldest first. Returns
// nil if dir does not exist.
func ListSessions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read dir %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files) // timestamp-prefixed names sort chronologically

	paths := make([]string, len(files))
	for i, name := range files {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// ReadSession replays a session log file and returns its settled spins.
// Malformed lines are logged and skipped.
func ReadSession(path string, logger *slog.Logger) ([]SpinSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	defer f.Close()

	idx := newFileIndex()
	var offset int64
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		lineLen := int64(len(line)) + 1
		if len(line) > 0 {
			var e wheel.Event
			if err := json.Unmarshal(line, &e); err != nil {
				if logger != nil {
					logger.Warn("skipping malformed line", "path", path, "offset", offset, "error", err)
				}
			} else {
				idx.onAppend(e, offset, lineLen)
			}
		}
		offset += lineLen
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("store: scan %q: %w", path, err)
	}
	return idx.summaries, nil
}

// ReadAll replays every session log in dir, oldest first.
func ReadAll(dir string, logger *slog.Logger) ([]SpinSummary, error) {
	paths, err := ListSessions(dir)
	if err != nil {
		return nil, err
	}
	var all []SpinSummary
	for _, p := range paths {
		spins, err := ReadSession(p, logger)
		if err != nil {
			return nil, err
		}
		all = append(all, spins...)
	}
	return all, nil
}

// TallyOf returns win counts for summaries, most wins first.
func TallyOf(summaries []SpinSummary) []NameCount {
	return tally(summaries)
}

// EnforceRetention removes the oldest session log files in dir, keeping at most
// maxKeep files. If maxKeep is 0, no files are removed. Returns nil if dir does
// not exist or is empty.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	paths, err := ListSessions(dir)
	if err != nil {
		return err
	}

	toDelete := len(paths) - maxKeep
	for i := 0; i < toDelete; i++ {
		if err := os.Remove(paths[i]); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("store: remove %q: %w", paths[i], err)
		}
	}
	return nil
}
