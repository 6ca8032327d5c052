package history

import "github.com/cwbudde/algo-peakfit/curve"

// DefaultCapacity is the number of fit states kept for undo.
const DefaultCapacity = 15

// History is a fixed-capacity ring of composite snapshots with a read
// cursor. The head is the most recent snapshot; offset tracks how far undo
// has walked back from it. Push always resets the cursor and truncates
// every entry ahead of the new head.
//
// The zero value is not usable; construct with New or NewWithCapacity.
type History struct {
	entries []*curve.Composite
	head    int
	size    int
	offset  int
}

// New returns an empty history with DefaultCapacity slots.
func New() *History {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity returns an empty history holding up to capacity snapshots.
// Capacities below one are raised to one.
func NewWithCapacity(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}

	return &History{entries: make([]*curve.Composite, capacity)}
}

// Push stores a clone of c as the new head. Any redo entries beyond the
// cursor are discarded and the oldest entry falls off once the ring is full.
func (h *History) Push(c *curve.Composite) {
	if h.size == 0 {
		h.head = 0
		h.entries[0] = c.Clone()
		h.size = 1

		return
	}

	cursor := h.index(h.offset)
	h.head = (cursor + 1) % len(h.entries)
	h.entries[h.head] = c.Clone()

	h.size -= h.offset
	if h.size < len(h.entries) {
		h.size++
	}

	h.offset = 0
}

// Undo steps the cursor one snapshot back and returns a clone of it. At the
// oldest stored snapshot it returns (nil, false) and changes nothing.
func (h *History) Undo() (*curve.Composite, bool) {
	if !h.CanUndo() {
		return nil, false
	}

	h.offset++

	return h.entries[h.index(h.offset)].Clone(), true
}

// Redo steps the cursor one snapshot forward and returns a clone of it.
// When the cursor is already at the head it returns (nil, false) and
// changes nothing.
func (h *History) Redo() (*curve.Composite, bool) {
	if !h.CanRedo() {
		return nil, false
	}

	h.offset--

	return h.entries[h.index(h.offset)].Clone(), true
}

// Peek returns a clone of the snapshot at the cursor, or (nil, false) when
// the history is empty.
func (h *History) Peek() (*curve.Composite, bool) {
	if h.size == 0 {
		return nil, false
	}

	return h.entries[h.index(h.offset)].Clone(), true
}

// CanUndo reports whether a snapshot exists behind the cursor.
func (h *History) CanUndo() bool { return h.offset < h.size-1 }

// CanRedo reports whether the cursor is behind the head.
func (h *History) CanRedo() bool { return h.offset > 0 }

// Len returns the number of stored snapshots.
func (h *History) Len() int { return h.size }

// index maps a backward distance from the head to a ring slot.
func (h *History) index(back int) int {
	n := len(h.entries)
	return ((h.head-back)%n + n) % n
}
