package blocktree

import (
	"github.com/nextpress/blocktree.go/pkg/models"
)

// Find locates a block by id. It returns the block, the child-index path
// from the root to it, and whether it was found. Traversal is depth first,
// pre-order, following Children order; zone maps never change traversal
// order, they are read separately by zone-aware consumers.
//
// The returned block is the live node, not a copy. Callers must not mutate
// it; use Update instead.
func Find(tree models.Tree, id models.BlockID) (*models.Block, []int, bool) {
	return findIn(tree, id, nil)
}

func findIn(blocks []*models.Block, id models.BlockID, prefix []int) (*models.Block, []int, bool) {
	for i, b := range blocks {
		path := append(append([]int(nil), prefix...), i)
		if b.ID == id {
			return b, path, true
		}
		if found, fullPath, ok := findIn(b.Children, id, path); ok {
			return found, fullPath, ok
		}
	}
	return nil, nil, false
}

// Patch is the set of block fields Update may replace. Nil fields are left
// alone; non-nil fields replace the block's wholesale. There is no deep
// merge: a caller changing one style key pre-merges the Styles map itself.
// Identity fields (ID, Name, Kind) and tree structure (Children) are not
// patchable.
type Patch struct {
	Label    *string
	Content  models.Content
	Styles   models.Styles
	Settings models.Settings
}

func (p Patch) apply(b *models.Block) {
	if p.Label != nil {
		b.Label = *p.Label
	}
	if p.Content != nil {
		b.Content = p.Content
	}
	if p.Styles != nil {
		b.Styles = p.Styles
	}
	if p.Settings != nil {
		b.Settings = p.Settings
	}
}

// Update returns a tree in which the identified block carries the patched
// fields. Only the nodes on the path from the root to the target are fresh;
// every unaffected subtree keeps its identity, so the view layer can compare
// versions by pointer. When id is absent the input tree is returned
// unchanged with found = false; absence is an outcome, not an error.
func Update(tree models.Tree, id models.BlockID, patch Patch) (models.Tree, bool) {
	return rewrite(tree, id, func(b *models.Block) *models.Block {
		next := *b
		patch.apply(&next)
		return &next
	})
}

// rewrite replaces the identified block with fn(block), copying only the
// sibling lists and ancestor nodes on the path to it.
func rewrite(blocks []*models.Block, id models.BlockID, fn func(*models.Block) *models.Block) ([]*models.Block, bool) {
	for i, b := range blocks {
		if b.ID == id {
			out := append([]*models.Block(nil), blocks...)
			out[i] = fn(b)
			return out, true
		}
		if children, ok := rewrite(b.Children, id, fn); ok {
			next := *b
			next.Children = children
			out := append([]*models.Block(nil), blocks...)
			out[i] = &next
			return out, true
		}
	}
	return blocks, false
}

// Remove returns a tree without the identified block and its subtree. When
// the parent is a multi-zone container the id is also purged from whichever
// zone held it, keeping the partition invariant. Removal from the tree is
// destruction; there is no separate release step.
func Remove(tree models.Tree, id models.BlockID) (models.Tree, bool) {
	return removeIn(tree, id)
}

func removeIn(blocks []*models.Block, id models.BlockID) ([]*models.Block, bool) {
	for i, b := range blocks {
		if b.ID == id {
			return append(blocks[:i:i], blocks[i+1:]...), true
		}
		if children, ok := removeIn(b.Children, id); ok {
			next := *b
			next.Children = children
			// Zone maps only reference direct children, so this is a no-op
			// for removals deeper in the subtree.
			if zones := next.Settings.Zones(); zones != nil {
				if zm, purged := zones.Remove(id); purged {
					next.Settings = next.Settings.WithZones(zm)
				}
			}
			out := append([]*models.Block(nil), blocks...)
			out[i] = &next
			return out, true
		}
	}
	return blocks, false
}

// Duplicate returns a tree in which a deep copy of the identified subtree
// sits immediately after the original among its siblings, in the same zone
// when the parent is multi-zone. Every node in the copy gets a fresh id from
// gen, and zone membership inside the copy follows the new ids. The second
// return is the copy's root id, so callers can select it.
func Duplicate(tree models.Tree, id models.BlockID, gen models.IDGenerator) (models.Tree, models.BlockID, bool) {
	if gen == nil {
		return tree, "", false
	}
	var newID models.BlockID
	next, found := duplicateIn(tree, id, gen, &newID)
	return next, newID, found
}

func duplicateIn(blocks []*models.Block, id models.BlockID, gen models.IDGenerator, newID *models.BlockID) ([]*models.Block, bool) {
	for i, b := range blocks {
		if b.ID == id {
			dup := b.CloneWithIDs(gen)
			*newID = dup.ID
			out := make([]*models.Block, 0, len(blocks)+1)
			out = append(out, blocks[:i+1]...)
			out = append(out, dup)
			out = append(out, blocks[i+1:]...)
			return out, true
		}
		if children, ok := duplicateIn(b.Children, id, gen, newID); ok {
			next := *b
			next.Children = children
			// When the original is a direct member of one of this
			// container's zones, the copy slots in right behind it.
			if zones := next.Settings.Zones(); zones != nil {
				if zm, member := zones.InsertAfter(id, *newID); member {
					next.Settings = next.Settings.WithZones(zm)
				}
			}
			out := append([]*models.Block(nil), blocks...)
			out[i] = &next
			return out, true
		}
	}
	return blocks, false
}
