// Package audit appends one JSON line per verdict to a log file. Multiple
// hook processes may fire concurrently, so writes are serialized with a file
// lock next to the log. Auditing is best effort: a failed write must never
// change a verdict.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

//go:generate mockgen -source=audit.go -destination=mock_recorder.go -package=audit

// Event is one audited evaluation.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	ToolName  string    `json:"tool_name"`
	Command   string    `json:"command"`
	Decision  string    `json:"decision"`
	RuleName  string    `json:"rule_name,omitempty"`
	Reasons   []string  `json:"reasons,omitempty"`
}

// Recorder persists audit events.
type Recorder interface {
	// Record appends a single event.
	Record(event Event) error
	// Close releases any resources held by the recorder.
	Close() error
}

// fileRecorder appends JSONL events, guarded by a flock so concurrent hook
// processes do not interleave partial lines.
type fileRecorder struct {
	path string
	lock *flock.Flock
	mu   sync.Mutex
}

// NewFileRecorder creates a recorder appending to the given path.
func NewFileRecorder(path string) Recorder {
	return &fileRecorder{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Record appends the event as one JSON line.
func (r *fileRecorder) Record(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode audit event: %w", err)
	}
	data = append(data, '\n')

	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire audit lock: %w", err)
	}
	defer r.lock.Unlock()

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}

	return nil
}

// Close is a no-op: the file is opened per write.
func (r *fileRecorder) Close() error {
	return nil
}

// nopRecorder discards all events.
type nopRecorder struct{}

// NewNopRecorder creates a recorder that drops every event. Used when no
// audit log path is configured.
func NewNopRecorder() Recorder {
	return nopRecorder{}
}

func (nopRecorder) Record(Event) error { return nil }
func (nopRecorder) Close() error       { return nil }
