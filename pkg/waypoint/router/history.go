package router

import "sync"

// MemoryHistory is an in-process History with back and forward support.
// It backs headless runs and tests; the browser build uses the real
// history API instead.
//
// Entries behave like a browser session history: pushing while not at the
// newest entry discards everything ahead of the cursor.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	cursor  int
	pushes  int
}

// NewMemoryHistory creates a history whose only entry is start.
func NewMemoryHistory(start string) *MemoryHistory {
	return &MemoryHistory{
		entries: []string{start},
	}
}

// Push adds a new entry after the cursor and moves to it.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.cursor+1], path)
	h.cursor = len(h.entries) - 1
	h.pushes++
}

// Location returns the entry under the cursor.
func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor]
}

// Back moves the cursor one entry back. It returns false at the oldest entry.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Forward moves the cursor one entry forward. It returns false at the newest entry.
func (h *MemoryHistory) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == len(h.entries)-1 {
		return false
	}
	h.cursor++
	return true
}

// Entries returns a copy of every entry, oldest first.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Pushes returns how many times Push has been called.
func (h *MemoryHistory) Pushes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pushes
}
