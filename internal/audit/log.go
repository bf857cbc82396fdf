package audit

import "sync"

// View is a read-only window onto a live Log. Reads always reflect the
// entries appended so far; nothing obtained through a View aliases the
// log's storage.
type View interface {
	Len() int
	At(i int) Entry
	Entries() []Entry
	Lines() []string
}

// Log is an append-only audit trail. Entries are never removed or rewritten.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

// Append adds entries at the end of the trail.
func (l *Log) Append(entries ...Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entries...)
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// At returns the i-th entry. It panics when i is out of range, like a slice
// index would.
func (l *Log) At(i int) Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[i]
}

// Entries returns a copy of every entry in append order.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Entry{}, l.entries...)
}

// Lines returns the rendered trail in append order.
func (l *Log) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		lines[i] = e.String()
	}
	return lines
}

// View exposes l without its Append method.
func (l *Log) View() View {
	return readOnly{log: l}
}

type readOnly struct {
	log *Log
}

func (r readOnly) Len() int         { return r.log.Len() }
func (r readOnly) At(i int) Entry   { return r.log.At(i) }
func (r readOnly) Entries() []Entry { return r.log.Entries() }
func (r readOnly) Lines() []string  { return r.log.Lines() }
