package models

// Walk visits every block in document order (depth first, parents before
// children). Returning false from fn stops the walk early.
func Walk(t Tree, fn func(b *Block) bool) {
	walkBlocks(t, fn)
}

func walkBlocks(blocks []*Block, fn func(b *Block) bool) bool {
	for _, b := range blocks {
		if !fn(b) {
			return false
		}
		if !walkBlocks(b.Children, fn) {
			return false
		}
	}
	return true
}

// Count reports the number of blocks in the tree, containers included.
func Count(t Tree) int {
	n := 0
	Walk(t, func(*Block) bool {
		n++
		return true
	})
	return n
}

// IDs returns the ids of every block in document order.
func IDs(t Tree) []BlockID {
	ids := make([]BlockID, 0, Count(t))
	Walk(t, func(b *Block) bool {
		ids = append(ids, b.ID)
		return true
	})
	return ids
}
