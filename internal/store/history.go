package store

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one completed generation.
type Entry struct {
	ID         uuid.UUID
	RunID      uuid.UUID
	Ordinal    int
	Characters []string
	Summary    string
	At         time.Time
}

// History is the session's append-only log of completed generations. It lives in memory only.
type History struct {
	entries []Entry
	now     func() time.Time
}

func NewHistory() *History { return &History{now: time.Now} }

// Record appends an entry. Entries are never modified or removed.
func (h *History) Record(runID uuid.UUID, names []string, summary string) {
	h.entries = append(h.entries, Entry{
		ID:         uuid.New(),
		RunID:      runID,
		Ordinal:    len(h.entries) + 1,
		Characters: append([]string(nil), names...),
		Summary:    summary,
		At:         h.now(),
	})
}

func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		e.Characters = append([]string(nil), e.Characters...)
		out[i] = e
	}
	return out
}

// Summaries returns the summary lines, oldest first.
func (h *History) Summaries() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Summary
	}
	return out
}

// Last returns the newest entry.
func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	e := h.entries[len(h.entries)-1]
	e.Characters = append([]string(nil), e.Characters...)
	return e, true
}
