// Package models defines the page-tree data model shared by the blocktree
// engine and its callers: the Block node, the closed content union, zone
// maps for multi-zone containers, and the invariants every well-formed tree
// upholds.
//
// The engine never mutates a Block in place. Every mutation produces a new
// tree that shares untouched subtrees with its predecessor by pointer, so
// two tree versions can be compared cheaply by the view layer.
package models

// BlockID is an opaque identifier, unique across an entire page tree (not
// just among siblings). The engine never mints ids itself; they come from an
// injected IDGenerator.
type BlockID string

func (id BlockID) String() string { return string(id) }

func (id BlockID) IsZero() bool { return id == "" }

// IDGenerator produces fresh block ids. Implementations live in pkg/idgen;
// tests typically inject a deterministic one.
type IDGenerator func() BlockID

// Kind separates leaf blocks from containers. A leaf never carries children;
// a container may hold zero or more and, when multi-zone, a zone map in its
// settings.
type Kind string

const (
	KindBlock     Kind = "block"
	KindContainer Kind = "container"
)

// Styles is an open map of presentation properties. The engine stores and
// copies it but never interprets it.
type Styles map[string]any

// Block is one node of a page tree.
type Block struct {
	ID       BlockID
	Name     string // canonical type key, e.g. "core/heading"; immutable after creation
	Label    string
	Kind     Kind
	Content  Content
	Styles   Styles
	Settings Settings
	Children []*Block
}

// Tree is the ordered root-level block list of one page.
type Tree []*Block

func (b *Block) IsContainer() bool {
	return b != nil && b.Kind == KindContainer
}

// IsMultiZone reports whether the container partitions its children across
// named zones. Containers without a zone map are single-zone: their Children
// list is the one zone, in order.
func (b *Block) IsMultiZone() bool {
	return b.IsContainer() && len(b.Settings.Zones()) > 0
}
