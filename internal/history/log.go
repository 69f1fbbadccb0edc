// Package history keeps the append-only usage log: one timestamped,
// human-readable line per model event.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/llamactl/llamactl/internal/errors"
)

// Event names recorded in the log.
const (
	EventPull    = "pull"
	EventUse     = "use"
	EventRun     = "run"
	EventRemove  = "remove"
	EventInstall = "install"
)

// timeFormat is the timestamp layout for log lines.
const timeFormat = "2006-01-02 15:04:05"

// Log is an append-only usage log backed by a plain text file.
type Log struct {
	// Path of the log file. Parent directories are created on first append.
	Path string

	// MaxEntries trims the file to the newest N lines after each append.
	// 0 disables trimming.
	MaxEntries int

	// now is swappable for tests.
	now func() time.Time
}

// New creates a Log for the given path.
func New(path string, maxEntries int) *Log {
	return &Log{Path: path, MaxEntries: maxEntries, now: time.Now}
}

// Entry is one parsed log line.
type Entry struct {
	Time   string `json:"time"`
	Event  string `json:"event"`
	Model  string `json:"model"`
	Detail string `json:"detail,omitempty"`
}

// String renders the entry in the on-disk line format.
func (e Entry) String() string {
	return fmt.Sprintf("%s | %s | %s | %s", e.Time, e.Event, e.Model, e.Detail)
}

// Append records an event. The write is a plain O_APPEND so concurrent
// invocations interleave whole lines.
func (l *Log) Append(event, model, detail string) error {
	if err := os.MkdirAll(filepath.Dir(l.Path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create the history directory",
			"Check permissions on "+filepath.Dir(l.Path))
	}

	entry := Entry{
		Time:   l.now().Format(timeFormat),
		Event:  event,
		Model:  model,
		Detail: detail,
	}

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open the history log",
			"Check permissions on "+l.Path)
	}
	_, werr := f.WriteString(entry.String() + "\n")
	cerr := f.Close()
	if werr != nil {
		return errors.WrapWithCode(werr, errors.ErrConfig, "Couldn't write to the history log", "")
	}
	if cerr != nil {
		return errors.WrapWithCode(cerr, errors.ErrConfig, "Couldn't write to the history log", "")
	}

	if l.MaxEntries > 0 {
		return l.trim()
	}
	return nil
}

// Tail returns the newest n entries, oldest first. n <= 0 returns everything.
func (l *Log) Tail(n int) ([]Entry, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read the history log",
			"Check permissions on "+l.Path)
	}

	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		if e, ok := ParseLine(line); ok {
			entries = append(entries, e)
		}
	}

	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Clear removes the log file. A missing file is already clear.
func (l *Log) Clear() error {
	if err := os.Remove(l.Path); err != nil && !os.IsNotExist(err) {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't clear the history log",
			"Check permissions on "+l.Path)
	}
	return nil
}

// ParseLine parses one log line. Blank and malformed lines report ok=false.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	parts := strings.SplitN(line, "|", 4)
	if len(parts) < 3 {
		return Entry{}, false
	}

	e := Entry{
		Time:  strings.TrimSpace(parts[0]),
		Event: strings.TrimSpace(parts[1]),
		Model: strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		e.Detail = strings.TrimSpace(parts[3])
	}
	if e.Time == "" || e.Event == "" || e.Model == "" {
		return Entry{}, false
	}
	return e, true
}

// trim rewrites the file keeping the newest MaxEntries lines.
func (l *Log) trim() error {
	entries, err := l.Tail(0)
	if err != nil {
		return err
	}
	if len(entries) <= l.MaxEntries {
		return nil
	}

	keep := entries[len(entries)-l.MaxEntries:]
	var b strings.Builder
	for _, e := range keep {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	if err := os.WriteFile(l.Path, []byte(b.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't trim the history log", "")
	}
	return nil
}
