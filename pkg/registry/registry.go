// Package registry maps block type keys to the default instances the editor
// palette creates. The engine consumes the Registry interface only; the
// concrete palette is application configuration.
package registry

import (
	"github.com/nextpress/blocktree.go/pkg/models"
)

// Registry is the engine's window onto the block-type palette.
type Registry interface {
	// IsContainer reports whether the type key names a container type.
	// Unknown keys report false.
	IsContainer(name string) bool

	// CreateDefault returns a fully formed default block for the type key,
	// carrying the given id, or nil for an unknown key. Callers must treat
	// nil as "ignore the request", not as an error.
	CreateDefault(name string, id models.BlockID) *models.Block
}

// Definition describes one registrable block type.
type Definition struct {
	Name  string
	Label string
	Kind  models.Kind

	// Build fills in the type's default content, styles, settings and
	// children on a freshly identified instance. It must produce fresh
	// values on every call; instances never share mutable state.
	Build func(b *models.Block)
}

// TypeRegistry is the standard map-backed Registry.
type TypeRegistry struct {
	defs map[string]Definition
}

func New(defs ...Definition) *TypeRegistry {
	r := &TypeRegistry{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		r.Register(def)
	}
	return r
}

// Register adds or replaces a type definition.
func (r *TypeRegistry) Register(def Definition) {
	r.defs[def.Name] = def
}

func (r *TypeRegistry) IsContainer(name string) bool {
	def, ok := r.defs[name]
	return ok && def.Kind == models.KindContainer
}

func (r *TypeRegistry) CreateDefault(name string, id models.BlockID) *models.Block {
	def, ok := r.defs[name]
	if !ok {
		return nil
	}

	b := &models.Block{
		ID:      id,
		Name:    def.Name,
		Label:   def.Label,
		Kind:    def.Kind,
		Content: models.EmptyContent{},
	}
	if def.Kind == models.KindContainer {
		b.Children = []*models.Block{}
	}
	if def.Build != nil {
		def.Build(b)
	}
	return b
}
