package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecorder_Record(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	recorder := NewFileRecorder(path)
	defer recorder.Close()

	events := []Event{
		{
			Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			ToolName:  "Bash",
			Command:   "git status",
			Decision:  "allow",
		},
		{
			Timestamp: time.Date(2026, 8, 1, 10, 0, 1, 0, time.UTC),
			ToolName:  "Bash",
			Command:   "git push origin main",
			Decision:  "block",
			RuleName:  "git-guard",
			Reasons:   []string{"git push/pull/fetch is blocked: it synchronizes state with a remote"},
		},
	}

	for _, event := range events {
		require.NoError(t, recorder.Record(event))
	}

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var got []Event
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var event Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event), "each line must be standalone JSON")
		got = append(got, event)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, got, 2)
	assert.Equal(t, events[0].Command, got[0].Command)
	assert.Equal(t, "allow", got[0].Decision)
	assert.Empty(t, got[0].RuleName)
	assert.Equal(t, "block", got[1].Decision)
	assert.Equal(t, "git-guard", got[1].RuleName)
	assert.Equal(t, events[1].Reasons, got[1].Reasons)
}

func TestFileRecorder_RecordAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")

	// A second recorder on the same path must append, not truncate.
	first := NewFileRecorder(path)
	require.NoError(t, first.Record(Event{Decision: "allow", Command: "git log"}))
	require.NoError(t, first.Close())

	second := NewFileRecorder(path)
	require.NoError(t, second.Record(Event{Decision: "block", Command: "git push"}))
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "git log")
	assert.Contains(t, string(data), "git push")
}

func TestFileRecorder_RecordToUnwritablePath(t *testing.T) {
	recorder := NewFileRecorder(filepath.Join(t.TempDir(), "missing-dir", "audit.jsonl"))
	defer recorder.Close()

	err := recorder.Record(Event{Decision: "allow"})
	assert.Error(t, err)
}

func TestNopRecorder(t *testing.T) {
	recorder := NewNopRecorder()
	assert.NoError(t, recorder.Record(Event{Decision: "allow"}))
	assert.NoError(t, recorder.Close())
}
