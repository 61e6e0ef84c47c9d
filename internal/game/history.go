package game

// UndoCapacity is the number of snapshot slots in the undo ring. The
// bottommost live entry is the irreducible baseline the player is looking
// at after unwinding, so the ring grants at most UndoCapacity-1
// consecutive undos.
const UndoCapacity = 4

// history is a fixed ring of snapshots. top indexes the most recently
// pushed entry; size counts live entries, capped at UndoCapacity.
type history struct {
	entries [UndoCapacity]Snapshot
	top     int
	size    int
}

// push records snap as the newest entry, overwriting the oldest once the
// ring is full. It always succeeds.
func (h *history) push(snap Snapshot) {
	h.top = (h.top + 1) % UndoCapacity
	if h.size < UndoCapacity {
		h.size++
	}
	h.entries[h.top] = snap
}

// pop discards the newest entry and returns the one preceding it. It
// reports false, leaving the ring untouched, when only the baseline
// remains.
func (h *history) pop() (Snapshot, bool) {
	if h.size <= 1 {
		return Snapshot{}, false
	}
	prev := h.top - 1
	if prev < 0 {
		prev = UndoCapacity - 1
	}
	snap := h.entries[prev]
	h.top = prev
	h.size--
	return snap, true
}

// reset empties the ring.
func (h *history) reset() {
	h.top = 0
	h.size = 0
}
