package blocktree

import (
	"github.com/nextpress/blocktree.go/pkg/idgen"
	"github.com/nextpress/blocktree.go/pkg/logger"
	"github.com/nextpress/blocktree.go/pkg/models"
	"github.com/nextpress/blocktree.go/pkg/registry"
)

// Editor is one editing session over one page: the current tree, its
// history, and the resolver, wired together. Every successful mutation
// pushes a snapshot, so undo and redo come for free.
//
// The pure functions (Find, Update, Remove, Duplicate, Resolver.Resolve)
// remain available to callers that manage their own snapshots; Editor is the
// convenience layer over them.
type Editor struct {
	history  *History
	resolver *Resolver
	registry registry.Registry
	gen      models.IDGenerator
	log      logger.Logger
	limit    int
}

// Option configures an Editor.
type Option func(*Editor)

// WithRegistry sets the palette used for blocks dragged in from the palette.
// Defaults to the builtin nextpress palette.
func WithRegistry(reg registry.Registry) Option {
	return func(e *Editor) {
		e.registry = reg
	}
}

// WithIDGenerator sets the id source for new and duplicated blocks.
// Defaults to UUIDs.
func WithIDGenerator(gen models.IDGenerator) Option {
	return func(e *Editor) {
		e.gen = gen
	}
}

// WithLogger routes the session's logs somewhere. Defaults to discarding
// them.
func WithLogger(log logger.Logger) Option {
	return func(e *Editor) {
		e.log = log
	}
}

// WithHistoryCap bounds the undo stack. Defaults to DefaultHistoryCap.
func WithHistoryCap(limit int) Option {
	return func(e *Editor) {
		e.limit = limit
	}
}

// NewEditor starts a session on the given tree.
func NewEditor(initial models.Tree, opts ...Option) *Editor {
	e := &Editor{
		registry: registry.Builtin(),
		gen:      idgen.UUID(),
		log:      logger.Nop(),
		limit:    DefaultHistoryCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = NewHistoryWithCap(initial, e.limit)
	e.resolver = NewResolver(e.registry, e.gen, e.log)
	return e
}

// Tree returns the session's current tree.
func (e *Editor) Tree() models.Tree {
	return e.history.Current()
}

// Find locates a block in the current tree.
func (e *Editor) Find(id models.BlockID) (*models.Block, []int, bool) {
	return Find(e.Tree(), id)
}

// Update patches a block and records the result. Reports whether the block
// was found; an unknown id leaves the session untouched.
func (e *Editor) Update(id models.BlockID, patch Patch) bool {
	next, found := Update(e.Tree(), id, patch)
	if !found {
		return false
	}
	e.history.Push(next)
	e.log.Debug("block updated", "blockId", id.String())
	return true
}

// Remove deletes a block's subtree and records the result.
func (e *Editor) Remove(id models.BlockID) bool {
	next, found := Remove(e.Tree(), id)
	if !found {
		return false
	}
	e.history.Push(next)
	e.log.Debug("block removed", "blockId", id.String())
	return true
}

// Duplicate copies a block's subtree next to the original and records the
// result, returning the copy's root id for selection.
func (e *Editor) Duplicate(id models.BlockID) (models.BlockID, bool) {
	next, newID, found := Duplicate(e.Tree(), id, e.gen)
	if !found {
		return "", false
	}
	e.history.Push(next)
	e.log.Debug("block duplicated", "blockId", id.String(), "copyId", newID.String())
	return newID, true
}

// ResolveDrag resolves a drag gesture against the current tree, recording
// the new snapshot when the gesture applied. No-op and unresolved gestures
// leave the history untouched.
func (e *Editor) ResolveDrag(g Gesture) Outcome {
	out := e.resolver.Resolve(e.Tree(), g)
	if out.Applied() {
		e.history.Push(out.Tree)
	}
	return out
}

// Undo steps the session back one snapshot and returns the current tree.
func (e *Editor) Undo() models.Tree {
	return e.history.Undo()
}

// Redo steps the session forward one snapshot and returns the current tree.
func (e *Editor) Redo() models.Tree {
	return e.history.Redo()
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }
