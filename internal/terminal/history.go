package terminal

// History is the append-only log of submitted lines plus the recall cursor.
//
// The cursor counts back from the newest entry: -1 means not navigating, 0 is
// the newest entry and Len()-1 the oldest.
type History struct {
	entries []string
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Append records line and stops any navigation in progress.
func (h *History) Append(line string) {
	h.entries = append(h.entries, line)
	h.cursor = -1
}

// ResetCursor ends any navigation in progress.
func (h *History) ResetCursor() { h.cursor = -1 }

// Len returns the number of recorded lines.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the recall cursor.
func (h *History) Cursor() int { return h.cursor }

// Entries returns a copy of the recorded lines, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Older moves the cursor one step into the past and returns the entry under
// it. It stops at the oldest entry and reports false only when the history
// is empty.
func (h *History) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Newer moves the cursor one step toward the present. Stepping past the
// newest entry ends navigation and reports false, meaning the input should be
// emptied.
func (h *History) Newer() (string, bool) {
	if h.cursor <= 0 {
		h.cursor = -1
		return "", false
	}
	h.cursor--
	return h.entries[len(h.entries)-1-h.cursor], true
}
