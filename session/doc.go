// Package session owns the mutable state of one loaded profile: the raw
// samples, the single active composite curve, the bounded undo history and
// the locked-widths mode.
//
// The exported methods are the operations an event source maps user intents
// onto: drag and shift-drag reducers, add/delete peak, the fit commands, and
// undo/redo. All of them are driven from a single event loop; a Session is
// not safe for concurrent use, and introducing real concurrency requires
// explicit locking around every mutation including the history calls.
package session
