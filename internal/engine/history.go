package engine

// HistoryLimit is the number of entries the activity log retains.
const HistoryLimit = 50

// History is the activity log, newest first.
type History []HistoryEntry

// Append returns a new log with e prepended and the oldest entries beyond
// HistoryLimit dropped. The receiver is not modified.
func (h History) Append(e HistoryEntry) History {
	n := len(h) + 1
	if n > HistoryLimit {
		n = HistoryLimit
	}
	out := make(History, 0, n)
	out = append(out, e)
	out = append(out, h[:n-1]...)
	return out
}

// Entries returns a copy of the log for read-only iteration.
func (h History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h))
	copy(out, h)
	return out
}

func (h History) truncate() History {
	if len(h) > HistoryLimit {
		return h[:HistoryLimit]
	}
	return h
}
