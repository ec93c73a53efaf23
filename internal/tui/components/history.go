package components

import "strings"

// HistoryEntry is one submitted expression line.
type HistoryEntry struct {
	Input string
	Err   error
}

// OK reports whether the line evaluated cleanly.
func (e HistoryEntry) OK() bool { return e.Err == nil }

// History keeps submitted lines, newest last, up to a fixed capacity.
type History struct {
	entries []HistoryEntry
	limit   int
}

// NewHistory creates a history holding at most limit entries.
func NewHistory(limit int) History {
	if limit <= 0 {
		limit = 1
	}
	return History{limit: limit}
}

// Push records a line, dropping the oldest entry when full. Blank lines are ignored.
func (h History) Push(input string, err error) History {
	input = strings.TrimSpace(input)
	if input == "" {
		return h
	}
	entries := make([]HistoryEntry, 0, len(h.entries)+1)
	entries = append(entries, h.entries...)
	entries = append(entries, HistoryEntry{Input: input, Err: err})
	if len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}
	h.entries = entries
	return h
}

// Len returns the number of stored entries.
func (h History) Len() int { return len(h.entries) }

// At returns the entry i steps back from the newest (0 is the newest).
func (h History) At(back int) (HistoryEntry, bool) {
	i := len(h.entries) - 1 - back
	if back < 0 || i < 0 {
		return HistoryEntry{}, false
	}
	return h.entries[i], true
}

// Entries returns the stored entries, oldest first.
func (h History) Entries() []HistoryEntry {
	clone := make([]HistoryEntry, len(h.entries))
	copy(clone, h.entries)
	return clone
}
