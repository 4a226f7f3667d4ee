package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingID        = errors.New("block has no id")
	ErrDuplicateID      = errors.New("block id already in use")
	ErrLeafWithChildren = errors.New("non-container block has children")
	ErrZonePartition    = errors.New("zone map does not partition children")
)

// ValidateTree checks the structural invariants every well-formed page obeys:
// globally unique ids, children only under containers, non-nil content on
// every node, and zone maps that partition their container's children
// exactly. All violations are reported, not just the first.
func ValidateTree(t Tree) error {
	seen := make(map[BlockID]struct{})
	var errs []error

	var visit func(b *Block)
	visit = func(b *Block) {
		switch {
		case b.ID.IsZero():
			errs = append(errs, fmt.Errorf("%w (name %q)", ErrMissingID, b.Name))
		default:
			if _, dup := seen[b.ID]; dup {
				errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, b.ID))
			}
			seen[b.ID] = struct{}{}
		}

		if b.Content == nil {
			errs = append(errs, fmt.Errorf("%w: block %s", ErrNilContent, b.ID))
		}
		if !b.IsContainer() && len(b.Children) > 0 {
			errs = append(errs, fmt.Errorf("%w: block %s", ErrLeafWithChildren, b.ID))
		}
		if err := validateZones(b); err != nil {
			errs = append(errs, err)
		}

		for _, child := range b.Children {
			visit(child)
		}
	}

	for _, b := range t {
		visit(b)
	}
	return errors.Join(errs...)
}

func validateZones(b *Block) error {
	zones := b.Settings.Zones()
	if zones == nil {
		return nil
	}

	children := make(map[BlockID]struct{}, len(b.Children))
	for _, child := range b.Children {
		children[child.ID] = struct{}{}
	}

	placed := make(map[BlockID]ZoneID, len(b.Children))
	for _, z := range zones {
		for _, member := range z.Members {
			if prev, ok := placed[member]; ok {
				return fmt.Errorf("%w: block %s appears in zones %s and %s of container %s",
					ErrZonePartition, member, prev, z.ID, b.ID)
			}
			placed[member] = z.ID
			if _, ok := children[member]; !ok {
				return fmt.Errorf("%w: zone %s of container %s references non-child %s",
					ErrZonePartition, z.ID, b.ID, member)
			}
		}
	}
	for _, child := range b.Children {
		if _, ok := placed[child.ID]; !ok {
			return fmt.Errorf("%w: child %s of container %s belongs to no zone",
				ErrZonePartition, child.ID, b.ID)
		}
	}
	return nil
}
