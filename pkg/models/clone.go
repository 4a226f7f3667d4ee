package models

// Clone returns a deep copy of the block. IDs are preserved, so the copy is
// interchangeable with the original; use CloneWithIDs when the copy must be
// insertable next to the original.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}

	out := &Block{
		ID:       b.ID,
		Name:     b.Name,
		Label:    b.Label,
		Kind:     b.Kind,
		Content:  cloneContent(b.Content),
		Styles:   cloneStringMap(b.Styles),
		Settings: cloneStringMap(b.Settings),
	}
	if b.Children != nil {
		out.Children = make([]*Block, len(b.Children))
		for i, child := range b.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// CloneWithIDs returns a deep copy of the block in which every node carries a
// fresh ID drawn from gen. Zone membership lists inside the copy are remapped
// to the new child IDs so multi-zone containers stay consistent.
func (b *Block) CloneWithIDs(gen IDGenerator) *Block {
	if b == nil {
		return nil
	}

	out := b.Clone()
	remap := make(map[BlockID]BlockID)
	reassignIDs(out, gen, remap)
	remapZones(out, remap)
	return out
}

func reassignIDs(b *Block, gen IDGenerator, remap map[BlockID]BlockID) {
	fresh := gen()
	remap[b.ID] = fresh
	b.ID = fresh
	for _, child := range b.Children {
		reassignIDs(child, gen, remap)
	}
}

func remapZones(b *Block, remap map[BlockID]BlockID) {
	if zones := b.Settings.Zones(); zones != nil {
		mapped := zones.clone()
		for zi := range mapped {
			for mi, member := range mapped[zi].Members {
				if fresh, ok := remap[member]; ok {
					mapped[zi].Members[mi] = fresh
				}
			}
		}
		b.Settings = b.Settings.WithZones(mapped)
	}
	for _, child := range b.Children {
		remapZones(child, remap)
	}
}

func cloneContent(c Content) Content {
	switch v := c.(type) {
	case StructuredContent:
		fields := make(map[string]any, len(v.Fields))
		for k, val := range v.Fields {
			fields[k] = cloneValue(val)
		}
		return StructuredContent{Fields: fields}
	default:
		// Remaining variants hold only scalars and are value types.
		return c
	}
}

func cloneStringMap[M ~map[string]any](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneStringMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case ZoneMap:
		return val.clone()
	default:
		return v
	}
}
