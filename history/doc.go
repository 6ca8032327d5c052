// Package history keeps a bounded, doubly-navigable log of composite curve
// snapshots for undo and redo.
//
// The log is a fixed-capacity ring: pushing a snapshot makes it the new head,
// discards anything that undo had walked past, and evicts the oldest entry
// once the ring is full. Every snapshot stored or restored is an independent
// clone, so later edits never retroactively alter history.
package history
