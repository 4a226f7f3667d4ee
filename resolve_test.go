package blocktree_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextpress/blocktree.go"
	"github.com/nextpress/blocktree.go/pkg/models"
	"github.com/nextpress/blocktree.go/pkg/registry"
)

func newTestResolver() *blocktree.Resolver {
	return blocktree.NewResolver(registry.Builtin(), seqGen("new"), nil)
}

func TestParseDropRef(t *testing.T) {
	t.Run("Palette", func(t *testing.T) {
		ref, err := blocktree.ParseDropRef("palette")
		require.NoError(t, err)
		assert.True(t, ref.IsPalette())
	})

	t.Run("Canvas", func(t *testing.T) {
		ref, err := blocktree.ParseDropRef("canvas")
		require.NoError(t, err)
		assert.True(t, ref.IsCanvas())
	})

	t.Run("Zone", func(t *testing.T) {
		ref, err := blocktree.ParseDropRef("zone:cols:z1")
		require.NoError(t, err)
		require.True(t, ref.IsZone())
		assert.Equal(t, models.BlockID("cols"), ref.Container)
		assert.Equal(t, models.ZoneID("z1"), ref.Zone)
		assert.Equal(t, "zone:cols:z1", ref.String())
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, s := range []string{"", "zone:cols", "zone::z1", "zone:cols:", "shelf", "palette:extra"} {
			_, err := blocktree.ParseDropRef(s)
			assert.ErrorIs(t, err, blocktree.ErrBadDropRef, "input %q", s)
		}
	})

	t.Run("GestureJSON", func(t *testing.T) {
		raw := `{
		  "source": "zone:cols:z1",
		  "destination": "canvas",
		  "sourceIndex": 0,
		  "destinationIndex": 2,
		  "dragged": "blk-x"
		}`
		var g blocktree.Gesture
		require.NoError(t, json.Unmarshal([]byte(raw), &g))
		assert.True(t, g.Source.IsZone())
		assert.True(t, g.Destination.IsCanvas())
		assert.Equal(t, 2, g.DestinationIndex)

		out, err := json.Marshal(g)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"zone:cols:z1"`)
	})
}

func TestResolvePaletteToCanvas(t *testing.T) {
	r := newTestResolver()
	tree := models.Tree{para("a", ""), para("b", "")}

	t.Run("SpliceAtIndex", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.PaletteRef(),
			Destination:      blocktree.CanvasRef(),
			DestinationIndex: 1,
			Dragged:          "core/heading",
		})

		require.Equal(t, blocktree.ResolutionApplied, out.Resolution)
		require.Len(t, out.Tree, 3)
		created := out.Tree[1]
		assert.Equal(t, "core/heading", created.Name)
		assert.Equal(t, created.ID, out.Select, "new block is selected")
		assert.Equal(t, blocktree.PanelSettings, out.Focus)
		assert.Equal(t, []string{"a", "b"}, rootIDs(tree), "input tree untouched")
		require.NoError(t, models.ValidateTree(out.Tree))
	})

	t.Run("IndexClamped", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.PaletteRef(),
			Destination:      blocktree.CanvasRef(),
			DestinationIndex: 99,
			Dragged:          "core/divider",
		})
		require.True(t, out.Applied())
		assert.Equal(t, "core/divider", out.Tree[len(out.Tree)-1].Name)
	})

	t.Run("UnknownTypeKey", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:      blocktree.PaletteRef(),
			Destination: blocktree.CanvasRef(),
			Dragged:     "core/hologram",
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
		requireSameTree(t, tree, out.Tree)
		assert.True(t, out.Select.IsZero())
	})
}

func TestResolvePaletteToZone(t *testing.T) {
	r := newTestResolver()

	t.Run("SpliceIntoZone", func(t *testing.T) {
		tree := models.Tree{columns("cols", []*models.Block{para("l1", "")}, []*models.Block{para("r1", "")})}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.PaletteRef(),
			Destination:      blocktree.ZoneRef("cols", "z2"),
			DestinationIndex: 0,
			Dragged:          "core/paragraph",
		})

		require.True(t, out.Applied())
		cols := out.Tree[0]
		require.Len(t, cols.Children, 3, "new block joins the children list")
		assert.Equal(t, out.Select.String(), cols.Children[2].ID.String(), "children append, zone decides position")
		assert.Equal(t, []string{out.Select.String(), "r1"}, memberIDs(cols.Settings.Zones(), "z2"))
		assert.Equal(t, []string{"l1"}, memberIDs(cols.Settings.Zones(), "z1"))
		assert.Equal(t, blocktree.PanelSettings, out.Focus)
		require.NoError(t, models.ValidateTree(out.Tree))
	})

	t.Run("SingleZoneFallback", func(t *testing.T) {
		tree := models.Tree{group("grp", para("x", ""))}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.PaletteRef(),
			Destination:      blocktree.ZoneRef("grp", "anything"),
			DestinationIndex: 0,
			Dragged:          "core/paragraph",
		})

		require.True(t, out.Applied(), "containers without a zone map take the drop into children")
		grp := out.Tree[0]
		require.Len(t, grp.Children, 2)
		assert.Equal(t, out.Select, grp.Children[0].ID)
		require.NoError(t, models.ValidateTree(out.Tree))
	})

	t.Run("UnknownZone", func(t *testing.T) {
		tree := models.Tree{columns("cols", nil, nil)}
		out := r.Resolve(tree, blocktree.Gesture{
			Source:      blocktree.PaletteRef(),
			Destination: blocktree.ZoneRef("cols", "z9"),
			Dragged:     "core/paragraph",
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
		requireSameTree(t, tree, out.Tree)
	})

	t.Run("UnknownContainer", func(t *testing.T) {
		tree := models.Tree{para("a", "")}
		out := r.Resolve(tree, blocktree.Gesture{
			Source:      blocktree.PaletteRef(),
			Destination: blocktree.ZoneRef("ghost", "z1"),
			Dragged:     "core/paragraph",
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
		requireSameTree(t, tree, out.Tree)
	})
}

func TestResolveCanvasReorder(t *testing.T) {
	r := newTestResolver()
	tree := models.Tree{para("A", ""), para("B", ""), para("C", "")}

	t.Run("ForwardMove", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.CanvasRef(),
			Destination:      blocktree.CanvasRef(),
			SourceIndex:      1,
			DestinationIndex: 2,
			Dragged:          "B",
		})

		require.True(t, out.Applied())
		assert.Equal(t, []string{"A", "C", "B"}, rootIDs(out.Tree),
			"destination index addresses the list after removal")
		assert.Same(t, tree[0], out.Tree[0], "unmoved blocks keep identity")
		assert.True(t, out.Select.IsZero(), "moves carry no hints")
	})

	t.Run("BackwardMove", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.CanvasRef(),
			Destination:      blocktree.CanvasRef(),
			SourceIndex:      2,
			DestinationIndex: 0,
			Dragged:          "C",
		})
		require.True(t, out.Applied())
		assert.Equal(t, []string{"C", "A", "B"}, rootIDs(out.Tree))
	})

	t.Run("SameIndexIsNoop", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.CanvasRef(),
			Destination:      blocktree.CanvasRef(),
			SourceIndex:      1,
			DestinationIndex: 1,
			Dragged:          "B",
		})
		assert.Equal(t, blocktree.ResolutionNoop, out.Resolution)
		requireSameTree(t, tree, out.Tree)
		assert.True(t, out.Select.IsZero())
		assert.Equal(t, blocktree.PanelNone, out.Focus)
	})

	t.Run("StaleGesture", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.CanvasRef(),
			Destination:      blocktree.CanvasRef(),
			SourceIndex:      0,
			DestinationIndex: 2,
			Dragged:          "B", // index 0 holds A, not B
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
		requireSameTree(t, tree, out.Tree)
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.CanvasRef(),
			Destination:      blocktree.CanvasRef(),
			SourceIndex:      7,
			DestinationIndex: 0,
			Dragged:          "B",
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
	})
}

func TestResolveCanvasToZone(t *testing.T) {
	r := newTestResolver()

	t.Run("MoveIntoZone", func(t *testing.T) {
		tree := models.Tree{
			para("a", ""),
			columns("cols", []*models.Block{para("l1", "")}, []*models.Block{para("r1", "")}),
		}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.CanvasRef(),
			Destination:      blocktree.ZoneRef("cols", "z1"),
			SourceIndex:      0,
			DestinationIndex: 1,
			Dragged:          "a",
		})

		require.True(t, out.Applied())
		assert.Equal(t, []string{"cols"}, rootIDs(out.Tree))

		cols := out.Tree[0]
		assert.Equal(t, []string{"l1", "a"}, memberIDs(cols.Settings.Zones(), "z1"))
		assert.Equal(t, []string{"l1", "r1", "a"}, rootIDs(models.Tree(cols.Children)))
		require.NoError(t, models.ValidateTree(out.Tree))
	})

	t.Run("IntoOwnZone", func(t *testing.T) {
		tree := models.Tree{columns("cols", nil, nil)}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.CanvasRef(),
			Destination:      blocktree.ZoneRef("cols", "z1"),
			SourceIndex:      0,
			DestinationIndex: 0,
			Dragged:          "cols",
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution,
			"a container cannot be dropped into itself")
		requireSameTree(t, tree, out.Tree)
	})
}

func TestResolveZoneToCanvas(t *testing.T) {
	r := newTestResolver()
	tree := models.Tree{
		columns("cols", []*models.Block{para("l1", "")}, []*models.Block{para("r1", "")}),
		para("a", ""),
	}

	out := r.Resolve(tree, blocktree.Gesture{
		Source:           blocktree.ZoneRef("cols", "z1"),
		Destination:      blocktree.CanvasRef(),
		SourceIndex:      0,
		DestinationIndex: 1,
		Dragged:          "l1",
	})

	require.True(t, out.Applied())
	assert.Equal(t, []string{"cols", "l1", "a"}, rootIDs(out.Tree))

	cols := out.Tree[0]
	assert.Empty(t, memberIDs(cols.Settings.Zones(), "z1"), "zone membership purged")
	assert.Equal(t, []string{"r1"}, rootIDs(models.Tree(cols.Children)))
	require.NoError(t, models.ValidateTree(out.Tree))
}

func TestResolveZoneToZone(t *testing.T) {
	r := newTestResolver()

	t.Run("CrossZoneSameContainer", func(t *testing.T) {
		a, b, c := para("A", ""), para("B", ""), para("C", "")
		tree := models.Tree{columns("X", []*models.Block{a, b}, []*models.Block{c})}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.ZoneRef("X", "z1"),
			Destination:      blocktree.ZoneRef("X", "z2"),
			SourceIndex:      1,
			DestinationIndex: 1,
			Dragged:          "B",
		})

		require.True(t, out.Applied())
		x := out.Tree[0]
		assert.Equal(t, []string{"A"}, memberIDs(x.Settings.Zones(), "z1"))
		assert.Equal(t, []string{"C", "B"}, memberIDs(x.Settings.Zones(), "z2"))
		assert.Equal(t, []string{"A", "B", "C"}, rootIDs(models.Tree(x.Children)),
			"children keep their order, only the zone map moves")
		for i := range tree[0].Children {
			assert.Same(t, tree[0].Children[i], x.Children[i])
		}
		require.NoError(t, models.ValidateTree(out.Tree))
	})

	t.Run("ReorderWithinZone", func(t *testing.T) {
		a, b := para("A", ""), para("B", "")
		tree := models.Tree{columns("X", []*models.Block{a, b}, nil)}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.ZoneRef("X", "z1"),
			Destination:      blocktree.ZoneRef("X", "z1"),
			SourceIndex:      0,
			DestinationIndex: 1,
			Dragged:          "A",
		})

		require.True(t, out.Applied())
		assert.Equal(t, []string{"B", "A"}, memberIDs(out.Tree[0].Settings.Zones(), "z1"))
		require.NoError(t, models.ValidateTree(out.Tree))
	})

	t.Run("SamePositionIsNoop", func(t *testing.T) {
		tree := models.Tree{columns("X", []*models.Block{para("A", "")}, nil)}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.ZoneRef("X", "z1"),
			Destination:      blocktree.ZoneRef("X", "z1"),
			SourceIndex:      0,
			DestinationIndex: 0,
			Dragged:          "A",
		})
		assert.Equal(t, blocktree.ResolutionNoop, out.Resolution)
		requireSameTree(t, tree, out.Tree)
	})

	t.Run("CrossContainer", func(t *testing.T) {
		tree := models.Tree{
			columns("c1", []*models.Block{para("l1", "")}, nil),
			columns("c2", nil, []*models.Block{para("r2", "")}),
		}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.ZoneRef("c1", "z1"),
			Destination:      blocktree.ZoneRef("c2", "z2"),
			SourceIndex:      0,
			DestinationIndex: 1,
			Dragged:          "l1",
		})

		require.True(t, out.Applied())
		c1, c2 := out.Tree[0], out.Tree[1]
		assert.Empty(t, c1.Children, "old owner loses the child")
		assert.Empty(t, memberIDs(c1.Settings.Zones(), "z1"))
		assert.Equal(t, []string{"r2", "l1"}, memberIDs(c2.Settings.Zones(), "z2"))
		assert.Equal(t, []string{"r2", "l1"}, rootIDs(models.Tree(c2.Children)))
		require.NoError(t, models.ValidateTree(out.Tree))
	})

	t.Run("IntoOwnDescendant", func(t *testing.T) {
		inner := columns("inner", nil, nil)
		tree := models.Tree{columns("outer", []*models.Block{inner}, nil)}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.ZoneRef("outer", "z1"),
			Destination:      blocktree.ZoneRef("inner", "z1"),
			SourceIndex:      0,
			DestinationIndex: 0,
			Dragged:          "inner",
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution,
			"a block cannot move into its own subtree")
		requireSameTree(t, tree, out.Tree)
	})

	t.Run("SingleZoneFallbackReorder", func(t *testing.T) {
		tree := models.Tree{group("grp", para("x", ""), para("y", ""))}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.ZoneRef("grp", "legacy"),
			Destination:      blocktree.ZoneRef("grp", "legacy"),
			SourceIndex:      0,
			DestinationIndex: 1,
			Dragged:          "x",
		})

		require.True(t, out.Applied())
		assert.Equal(t, []string{"y", "x"}, rootIDs(models.Tree(out.Tree[0].Children)))
	})

	t.Run("StaleMembership", func(t *testing.T) {
		tree := models.Tree{columns("X", []*models.Block{para("A", "")}, nil)}

		out := r.Resolve(tree, blocktree.Gesture{
			Source:           blocktree.ZoneRef("X", "z1"),
			Destination:      blocktree.ZoneRef("X", "z2"),
			SourceIndex:      0,
			DestinationIndex: 0,
			Dragged:          "B", // z1[0] holds A
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
		requireSameTree(t, tree, out.Tree)
	})
}

func TestResolveUnsupportedShape(t *testing.T) {
	r := newTestResolver()
	tree := models.Tree{para("a", "")}

	t.Run("PaletteAsDestination", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{
			Source:      blocktree.CanvasRef(),
			Destination: blocktree.PaletteRef(),
			Dragged:     "a",
		})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
		requireSameTree(t, tree, out.Tree)
	})

	t.Run("ZeroRefs", func(t *testing.T) {
		out := r.Resolve(tree, blocktree.Gesture{Dragged: "a"})
		assert.Equal(t, blocktree.ResolutionUnresolved, out.Resolution)
		requireSameTree(t, tree, out.Tree)
	})
}
