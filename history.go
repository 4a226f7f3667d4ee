package blocktree

import (
	"github.com/nextpress/blocktree.go/pkg/models"
)

// DefaultHistoryCap bounds how many snapshots a History retains.
const DefaultHistoryCap = 50

// History is the bounded undo/redo stack of one editing session. Entries are
// whole-tree snapshots; the mutators' structural sharing keeps them cheap,
// so snapshots are stored as-is and never copied or mutated.
//
// A History is owned by exactly one session and is not safe for concurrent
// use; the engine's callers are event-driven and serialize edits anyway.
type History struct {
	snapshots []models.Tree
	index     int
	limit     int
}

// NewHistory starts a history containing only the initial tree.
func NewHistory(initial models.Tree) *History {
	return NewHistoryWithCap(initial, DefaultHistoryCap)
}

// NewHistoryWithCap is NewHistory with a custom snapshot cap. Caps below 1
// fall back to DefaultHistoryCap.
func NewHistoryWithCap(initial models.Tree, limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryCap
	}
	return &History{
		snapshots: []models.Tree{initial},
		index:     0,
		limit:     limit,
	}
}

// Push records a new snapshot as the current state. Any redo branch beyond
// the current index is discarded: once a new edit lands after an undo, the
// undone states are unreachable. When the stack exceeds its cap the oldest
// snapshot is evicted and the index shifts down with it.
func (h *History) Push(snapshot models.Tree) {
	h.snapshots = append(h.snapshots[:h.index+1], snapshot)
	h.index++

	if over := len(h.snapshots) - h.limit; over > 0 {
		keep := len(h.snapshots) - over
		copy(h.snapshots, h.snapshots[over:])
		// Drop the tail references so evicted snapshots can be collected.
		for i := keep; i < len(h.snapshots); i++ {
			h.snapshots[i] = nil
		}
		h.snapshots = h.snapshots[:keep]
		h.index -= over
	}
}

// Undo steps back one snapshot and returns the now-current tree. At the
// oldest snapshot it is a no-op.
func (h *History) Undo() models.Tree {
	if h.index > 0 {
		h.index--
	}
	return h.Current()
}

// Redo steps forward one snapshot and returns the now-current tree. At the
// newest snapshot it is a no-op.
func (h *History) Redo() models.Tree {
	if h.index < len(h.snapshots)-1 {
		h.index++
	}
	return h.Current()
}

// Current returns the snapshot the session is looking at.
func (h *History) Current() models.Tree {
	return h.snapshots[h.index]
}

func (h *History) CanUndo() bool {
	return h.index > 0
}

func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

// Len reports how many snapshots are retained, undone branches included.
func (h *History) Len() int {
	return len(h.snapshots)
}
