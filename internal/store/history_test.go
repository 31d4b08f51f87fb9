package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHistoryAppendOnly(t *testing.T) {
	h := NewHistory()
	fixed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	run1, run2 := uuid.New(), uuid.New()
	h.Record(run1, []string{"A", "B", "C"}, "Video 1: A vs B vs C")
	h.Record(run2, []string{"D", "E", "F"}, "Video 2: D vs E vs F")

	if h.Len() != 2 {
		t.Fatalf("len = %d", h.Len())
	}
	entries := h.Entries()
	if entries[0].Ordinal != 1 || entries[1].Ordinal != 2 {
		t.Fatalf("ordinals = %d,%d", entries[0].Ordinal, entries[1].Ordinal)
	}
	if entries[0].RunID != run1 || entries[1].RunID != run2 {
		t.Fatal("run ids not preserved in order")
	}
	if entries[0].ID == entries[1].ID || entries[0].ID == uuid.Nil {
		t.Fatal("entry ids not unique")
	}
	if !entries[0].At.Equal(fixed) {
		t.Fatalf("timestamp = %s", entries[0].At)
	}

	// mutating returned copies must not reach the log
	entries[0].Summary = "changed"
	entries[0].Characters[0] = "Z"
	again := h.Entries()
	if again[0].Summary != "Video 1: A vs B vs C" || again[0].Characters[0] != "A" {
		t.Fatal("history mutated through returned entries")
	}

	sums := h.Summaries()
	if len(sums) != 2 || sums[1] != "Video 2: D vs E vs F" {
		t.Fatalf("summaries = %v", sums)
	}
	last, ok := h.Last()
	if !ok || last.RunID != run2 {
		t.Fatal("Last did not return newest entry")
	}
}

func TestHistoryRecordCopiesNames(t *testing.T) {
	h := NewHistory()
	names := []string{"A", "B", "C"}
	h.Record(uuid.New(), names, "Video 1: A vs B vs C")
	names[0] = "Z"
	if e, _ := h.Last(); e.Characters[0] != "A" {
		t.Fatal("Record kept a reference to the caller's slice")
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Last(); ok {
		t.Fatal("Last on empty history")
	}
	if len(h.Summaries()) != 0 || h.Len() != 0 {
		t.Fatal("empty history not empty")
	}
}
