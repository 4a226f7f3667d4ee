package blocktree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextpress/blocktree.go/pkg/models"
)

// seqGen returns a deterministic id generator for fixtures, counting
// "prefix-1", "prefix-2", ...
func seqGen(prefix string) models.IDGenerator {
	n := 0
	return func() models.BlockID {
		n++
		return models.BlockID(fmt.Sprintf("%s-%d", prefix, n))
	}
}

func para(id models.BlockID, text string) *models.Block {
	return &models.Block{
		ID:      id,
		Name:    "core/paragraph",
		Kind:    models.KindBlock,
		Content: models.TextContent{Value: text},
	}
}

func group(id models.BlockID, children ...*models.Block) *models.Block {
	return &models.Block{
		ID:       id,
		Name:     "core/group",
		Kind:     models.KindContainer,
		Content:  models.EmptyContent{},
		Children: children,
	}
}

// columns builds a two-zone container with the given blocks split across
// zones "z1" and "z2".
func columns(id models.BlockID, z1, z2 []*models.Block) *models.Block {
	children := make([]*models.Block, 0, len(z1)+len(z2))
	children = append(children, z1...)
	children = append(children, z2...)

	return &models.Block{
		ID:       id,
		Name:     "core/columns",
		Kind:     models.KindContainer,
		Content:  models.EmptyContent{},
		Children: children,
		Settings: models.Settings{}.WithZones(models.ZoneMap{
			{ID: "z1", Width: "50%", Members: blockIDs(z1)},
			{ID: "z2", Width: "50%", Members: blockIDs(z2)},
		}),
	}
}

func blockIDs(blocks []*models.Block) []models.BlockID {
	ids := make([]models.BlockID, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	return ids
}

// rootIDs flattens the root list to plain strings for readable asserts.
func rootIDs(tree models.Tree) []string {
	ids := make([]string, len(tree))
	for i, b := range tree {
		ids[i] = b.ID.String()
	}
	return ids
}

func memberIDs(zones models.ZoneMap, zone models.ZoneID) []string {
	i := zones.Index(zone)
	if i < 0 {
		return nil
	}
	ids := make([]string, len(zones[i].Members))
	for mi, m := range zones[i].Members {
		ids[mi] = m.String()
	}
	return ids
}

// requireSameTree asserts got is the same tree value as want, root pointers
// included, which is how no-op outcomes are told apart from rebuilt trees.
func requireSameTree(t *testing.T, want, got models.Tree, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, len(want), len(got), msgAndArgs...)
	for i := range want {
		require.Same(t, want[i], got[i], msgAndArgs...)
	}
}
