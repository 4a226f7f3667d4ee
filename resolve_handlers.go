package blocktree

import (
	"github.com/nextpress/blocktree.go/pkg/models"
)

// Case 1: palette onto the root canvas. Instantiates the type and splices it
// into the root list.
func (r *Resolver) paletteToCanvas(tree models.Tree, g Gesture) Outcome {
	blk := r.createFromPalette(g.Dragged)
	if blk == nil {
		return unresolved(tree)
	}
	next := spliceBlocks(tree, g.DestinationIndex, blk)
	return Outcome{Tree: next, Resolution: ResolutionApplied, Select: blk.ID, Focus: PanelSettings}
}

// Case 2: palette into a container zone. Instantiates the type, appends it
// to the container's children and splices its id into the zone membership.
func (r *Resolver) paletteToZone(tree models.Tree, g Gesture) Outcome {
	blk := r.createFromPalette(g.Dragged)
	if blk == nil {
		return unresolved(tree)
	}
	next, ok := insertIntoZone(tree, g.Destination.Container, g.Destination.Zone, g.DestinationIndex, blk)
	if !ok {
		return unresolved(tree)
	}
	return Outcome{Tree: next, Resolution: ResolutionApplied, Select: blk.ID, Focus: PanelSettings}
}

// Case 3: reorder within the root list. The destination index addresses the
// list after removal; inserting into the pre-removal list would shift the
// block one slot whenever it moves toward the end.
func (r *Resolver) canvasReorder(tree models.Tree, g Gesture) Outcome {
	if g.SourceIndex == g.DestinationIndex {
		return noop(tree)
	}
	moved, ok := blockAt(tree, g.SourceIndex, g.Dragged)
	if !ok {
		return unresolved(tree)
	}
	rest := removeAt(tree, g.SourceIndex)
	next := spliceBlocks(rest, g.DestinationIndex, moved)
	return Outcome{Tree: next, Resolution: ResolutionApplied}
}

// Case 4: root block into a container zone.
func (r *Resolver) canvasToZone(tree models.Tree, g Gesture) Outcome {
	moved, ok := blockAt(tree, g.SourceIndex, g.Dragged)
	if !ok {
		return unresolved(tree)
	}
	rest := removeAt(tree, g.SourceIndex)
	next, ok := insertIntoZone(rest, g.Destination.Container, g.Destination.Zone, g.DestinationIndex, moved)
	if !ok {
		// The destination may have been the dragged block itself or inside
		// it; the original tree stands.
		return unresolved(tree)
	}
	return Outcome{Tree: next, Resolution: ResolutionApplied}
}

// Case 5: zone member out to the root canvas. Remove purges both the
// container's children and its zone membership; the block then splices into
// the root list.
func (r *Resolver) zoneToCanvas(tree models.Tree, g Gesture) Outcome {
	moved, _, ok := Find(tree, models.BlockID(g.Dragged))
	if !ok {
		return unresolved(tree)
	}
	rest, found := Remove(tree, moved.ID)
	if !found {
		return unresolved(tree)
	}
	next := spliceBlocks(rest, g.DestinationIndex, moved)
	return Outcome{Tree: next, Resolution: ResolutionApplied}
}

// Case 6: zone to zone, within one container or across two.
func (r *Resolver) zoneToZone(tree models.Tree, g Gesture) Outcome {
	if g.Source.Container == g.Destination.Container {
		return r.zoneMoveWithin(tree, g)
	}

	moved, _, ok := Find(tree, models.BlockID(g.Dragged))
	if !ok {
		return unresolved(tree)
	}
	rest, found := Remove(tree, moved.ID)
	if !found {
		return unresolved(tree)
	}
	next, ok := insertIntoZone(rest, g.Destination.Container, g.Destination.Zone, g.DestinationIndex, moved)
	if !ok {
		return unresolved(tree)
	}
	return Outcome{Tree: next, Resolution: ResolutionApplied}
}

// zoneMoveWithin handles case 6 when both ends name the same container. The
// block stays a child of the container, so only the zone map moves; the
// children list keeps its order and identity.
func (r *Resolver) zoneMoveWithin(tree models.Tree, g Gesture) Outcome {
	container, _, ok := Find(tree, g.Source.Container)
	if !ok || !container.IsContainer() {
		return unresolved(tree)
	}

	zones := container.Settings.Zones()
	if zones == nil {
		// Containers without a usable zone map are treated as single-zone:
		// their children list is the one zone, whatever the gesture named.
		return r.reorderChildren(tree, container, g)
	}

	srcZone := zones.Index(g.Source.Zone)
	if srcZone < 0 || zones.Index(g.Destination.Zone) < 0 {
		return unresolved(tree)
	}
	if g.Source.Zone == g.Destination.Zone && g.SourceIndex == g.DestinationIndex {
		return noop(tree)
	}

	id := models.BlockID(g.Dragged)
	members := zones[srcZone].Members
	if g.SourceIndex < 0 || g.SourceIndex >= len(members) || members[g.SourceIndex] != id {
		return unresolved(tree)
	}

	zm, _ := zones.Remove(id)
	zm, ok = zm.InsertAt(g.Destination.Zone, g.DestinationIndex, id)
	if !ok {
		return unresolved(tree)
	}

	next, _ := rewrite(tree, container.ID, func(c *models.Block) *models.Block {
		nc := *c
		nc.Settings = nc.Settings.WithZones(zm)
		return &nc
	})
	return Outcome{Tree: next, Resolution: ResolutionApplied}
}

// reorderChildren is the single-zone fallback for in-container moves.
func (r *Resolver) reorderChildren(tree models.Tree, container *models.Block, g Gesture) Outcome {
	if g.SourceIndex == g.DestinationIndex {
		return noop(tree)
	}
	moved, ok := blockAt(container.Children, g.SourceIndex, g.Dragged)
	if !ok {
		return unresolved(tree)
	}
	next, _ := rewrite(tree, container.ID, func(c *models.Block) *models.Block {
		nc := *c
		nc.Children = spliceBlocks(removeAt(c.Children, g.SourceIndex), g.DestinationIndex, moved)
		return &nc
	})
	return Outcome{Tree: next, Resolution: ResolutionApplied}
}

func (r *Resolver) createFromPalette(key string) *models.Block {
	if r.registry == nil || r.gen == nil {
		return nil
	}
	blk := r.registry.CreateDefault(key, r.gen())
	if blk == nil {
		r.log.Debug("palette key unknown to registry", "key", key)
	}
	return blk
}

// blockAt fetches the block at index, verifying it is the one the gesture
// claims to move. A mismatch means the gesture is stale.
func blockAt(blocks []*models.Block, index int, dragged string) (*models.Block, bool) {
	if index < 0 || index >= len(blocks) {
		return nil, false
	}
	b := blocks[index]
	if b.ID != models.BlockID(dragged) {
		return nil, false
	}
	return b, true
}

// insertIntoZone places blk under the named container: appended to Children
// with its id spliced into the zone's membership at index. Containers
// without a zone map fall back to single-zone behavior, splicing Children
// directly. Reports false when the container or the named zone is missing,
// in which case the input tree stands.
func insertIntoZone(tree models.Tree, containerID models.BlockID, zoneID models.ZoneID, index int, blk *models.Block) (models.Tree, bool) {
	inserted := false
	next, found := rewrite(tree, containerID, func(c *models.Block) *models.Block {
		if !c.IsContainer() {
			return c
		}
		nc := *c
		zones := nc.Settings.Zones()
		if zones == nil {
			nc.Children = spliceBlocks(nc.Children, index, blk)
			inserted = true
			return &nc
		}
		zm, ok := zones.InsertAt(zoneID, index, blk.ID)
		if !ok {
			return c
		}
		nc.Children = append(append([]*models.Block(nil), nc.Children...), blk)
		nc.Settings = nc.Settings.WithZones(zm)
		inserted = true
		return &nc
	})
	if !found || !inserted {
		return tree, false
	}
	return next, true
}

func spliceBlocks(blocks []*models.Block, index int, b *models.Block) []*models.Block {
	index = clampIndex(index, len(blocks))
	out := make([]*models.Block, 0, len(blocks)+1)
	out = append(out, blocks[:index]...)
	out = append(out, b)
	out = append(out, blocks[index:]...)
	return out
}

func removeAt(blocks []*models.Block, i int) []*models.Block {
	return append(blocks[:i:i], blocks[i+1:]...)
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func unresolved(tree models.Tree) Outcome {
	return Outcome{Tree: tree, Resolution: ResolutionUnresolved}
}

func noop(tree models.Tree) Outcome {
	return Outcome{Tree: tree, Resolution: ResolutionNoop}
}
