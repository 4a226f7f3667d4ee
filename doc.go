// The [blocktree] package implements the block-tree editing engine behind
// the nextpress page builder: the in-memory page tree, the pure mutators
// over it, the drag-and-drop resolver, and the bounded undo/redo history.
//
// # Trees and blocks
//
// A page is a [models.Tree], an ordered list of [models.Block] nodes. Leaf
// blocks carry content; containers carry children, and multi-zone containers
// additionally partition their children across named zones (columns). The
// invariants every tree upholds are documented in
// [github.com/nextpress/blocktree.go/pkg/models].
//
// # Pure mutators
//
// [Find], [Update], [Remove] and [Duplicate] never modify their input. Each
// mutator returns a new tree that shares every untouched subtree with its
// input by pointer, so view layers can diff versions with cheap pointer
// comparisons. An id that is not in the tree is reported through the
// returned bool, never through an error: stale ids are an expected outcome
// of concurrent UI state, not a failure.
//
// # Drag and drop
//
// A [Resolver] classifies both ends of a [Gesture] as the palette, the root
// canvas, or a container zone, then dispatches to one of six move patterns.
// The [Outcome] reports whether the gesture applied, was a deliberate no-op,
// or could not be resolved against the current tree. Blocks dragged in from
// the palette are instantiated through the registry contract in
// [github.com/nextpress/blocktree.go/pkg/registry].
//
// # History
//
// [History] keeps bounded whole-tree snapshots with undo and redo. Pushing
// after an undo discards the redo branch; exceeding the cap evicts the
// oldest snapshot. Structural sharing between snapshots keeps the memory
// cost of fifty versions close to one.
//
// # Sessions
//
// [Editor] wires the pieces into one editing session: every successful
// mutation or applied gesture pushes a snapshot. Applications that manage
// their own snapshots use the pure functions directly.
package blocktree
