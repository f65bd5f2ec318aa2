package terminal

// Entry is one transcript item. Command holds the line as the user typed it
// and is empty for system messages.
type Entry struct {
	Command string
	Output  Output
	IsError bool
}

// IsSystem reports whether the entry was produced by the terminal itself
// rather than by a submitted line.
func (e Entry) IsSystem() bool { return e.Command == "" }

// Transcript is the ordered list of entries shown to the user. Entries are
// only ever appended, or dropped all at once by Clear.
type Transcript struct {
	entries  []Entry
	revision uint64
}

// Append adds e at the end of the transcript.
func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
	t.revision++
}

// Clear drops every entry.
func (t *Transcript) Clear() {
	t.entries = nil
	t.revision++
}

// Len returns the number of entries.
func (t *Transcript) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in insertion order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Since returns the entries from index i onwards.
func (t *Transcript) Since(i int) []Entry {
	if i < 0 {
		i = 0
	}
	if i >= len(t.entries) {
		return nil
	}
	out := make([]Entry, len(t.entries)-i)
	copy(out, t.entries[i:])
	return out
}

// Revision changes every time the transcript changes. Views compare it
// against the revision they last rendered to decide when to redraw and
// scroll to the bottom.
func (t *Transcript) Revision() uint64 { return t.revision }
