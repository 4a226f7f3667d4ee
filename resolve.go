package blocktree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nextpress/blocktree.go/pkg/logger"
	"github.com/nextpress/blocktree.go/pkg/models"
	"github.com/nextpress/blocktree.go/pkg/registry"
)

// refKind classifies one end of a drag gesture.
type refKind int

const (
	refInvalid refKind = iota
	refPalette
	refCanvas
	refZone
)

const (
	paletteToken = "palette"
	canvasToken  = "canvas"
	zoneToken    = "zone"
)

// ErrBadDropRef is returned when a drop reference string matches none of the
// three known shapes.
var ErrBadDropRef = errors.New("unrecognized drop reference")

// DropRef identifies one end of a drag gesture: the palette, the root
// canvas, or one zone of a multi-zone container. The zero value is invalid.
type DropRef struct {
	kind      refKind
	Container models.BlockID
	Zone      models.ZoneID
}

// PaletteRef marks a drag that starts on the block palette.
func PaletteRef() DropRef { return DropRef{kind: refPalette} }

// CanvasRef marks the page's root block list.
func CanvasRef() DropRef { return DropRef{kind: refCanvas} }

// ZoneRef marks one zone of a multi-zone container. For single-zone
// containers the zone id is ignored when the gesture is applied.
func ZoneRef(container models.BlockID, zone models.ZoneID) DropRef {
	return DropRef{kind: refZone, Container: container, Zone: zone}
}

// ParseDropRef decodes the wire form used by drop targets: "palette",
// "canvas", or "zone:<containerId>:<zoneId>".
func ParseDropRef(s string) (DropRef, error) {
	switch s {
	case paletteToken:
		return PaletteRef(), nil
	case canvasToken:
		return CanvasRef(), nil
	}
	parts := strings.SplitN(s, ":", 3)
	if len(parts) == 3 && parts[0] == zoneToken && parts[1] != "" && parts[2] != "" {
		return ZoneRef(models.BlockID(parts[1]), models.ZoneID(parts[2])), nil
	}
	return DropRef{}, fmt.Errorf("%w: %q", ErrBadDropRef, s)
}

func (r DropRef) IsPalette() bool { return r.kind == refPalette }
func (r DropRef) IsCanvas() bool  { return r.kind == refCanvas }
func (r DropRef) IsZone() bool    { return r.kind == refZone }

func (r DropRef) String() string {
	switch r.kind {
	case refPalette:
		return paletteToken
	case refCanvas:
		return canvasToken
	case refZone:
		return fmt.Sprintf("%s:%s:%s", zoneToken, r.Container, r.Zone)
	default:
		return "invalid"
	}
}

// MarshalText encodes the wire form, letting gestures travel as JSON.
func (r DropRef) MarshalText() ([]byte, error) {
	if r.kind == refInvalid {
		return nil, ErrBadDropRef
	}
	return []byte(r.String()), nil
}

func (r *DropRef) UnmarshalText(text []byte) error {
	parsed, err := ParseDropRef(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Gesture is one completed drag. Dragged carries the moved block's id, or
// the palette type key when the drag starts on the palette. Indices are
// positions within the source and destination lists; for moves within one
// list the destination index addresses the list after removal.
type Gesture struct {
	Source           DropRef `json:"source"`
	Destination      DropRef `json:"destination"`
	SourceIndex      int     `json:"sourceIndex"`
	DestinationIndex int     `json:"destinationIndex"`
	Dragged          string  `json:"dragged"`
}

// Resolution states what a drag gesture amounted to.
type Resolution int

const (
	// ResolutionUnresolved marks gestures the resolver could not map onto
	// the tree: unknown palette keys, stale ids, vanished drop targets. The
	// tree is returned unchanged.
	ResolutionUnresolved Resolution = iota

	// ResolutionNoop marks gestures that map onto the tree but change
	// nothing, such as dropping a block back onto its own position. The
	// tree is returned unchanged, by reference.
	ResolutionNoop

	// ResolutionApplied marks gestures that produced a new tree.
	ResolutionApplied
)

func (r Resolution) String() string {
	switch r {
	case ResolutionUnresolved:
		return "Unresolved"
	case ResolutionNoop:
		return "Noop"
	case ResolutionApplied:
		return "Applied"
	default:
		return "InvalidResolution"
	}
}

// Panel names a UI panel a gesture suggests focusing.
type Panel string

const (
	PanelNone     Panel = ""
	PanelSettings Panel = "settings"
)

// Outcome is the result of resolving one gesture. Tree is the input tree
// unless Resolution is ResolutionApplied. Select and Focus are UI hints,
// only set when a new block enters the tree.
type Outcome struct {
	Tree       models.Tree
	Resolution Resolution
	Select     models.BlockID
	Focus      Panel
}

// Applied reports whether the gesture produced a new tree.
func (o Outcome) Applied() bool { return o.Resolution == ResolutionApplied }

// Resolver turns drag gestures into tree mutations. It holds no tree state;
// the registry and id generator are fixed at construction so they never
// regress into package globals.
type Resolver struct {
	registry registry.Registry
	gen      models.IDGenerator
	log      logger.Logger
}

func NewResolver(reg registry.Registry, gen models.IDGenerator, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{registry: reg, gen: gen, log: log}
}

// Resolve classifies the gesture's two ends and dispatches to exactly one of
// the six move patterns. Gestures that fit no pattern resolve to
// ResolutionUnresolved with the tree untouched; dropping a gesture is never
// an error.
func (r *Resolver) Resolve(tree models.Tree, g Gesture) Outcome {
	var out Outcome
	switch {
	case g.Source.IsPalette() && g.Destination.IsCanvas():
		out = r.paletteToCanvas(tree, g)
	case g.Source.IsPalette() && g.Destination.IsZone():
		out = r.paletteToZone(tree, g)
	case g.Source.IsCanvas() && g.Destination.IsCanvas():
		out = r.canvasReorder(tree, g)
	case g.Source.IsCanvas() && g.Destination.IsZone():
		out = r.canvasToZone(tree, g)
	case g.Source.IsZone() && g.Destination.IsCanvas():
		out = r.zoneToCanvas(tree, g)
	case g.Source.IsZone() && g.Destination.IsZone():
		out = r.zoneToZone(tree, g)
	default:
		out = Outcome{Tree: tree, Resolution: ResolutionUnresolved}
	}

	r.log.Debug("drag resolved",
		"source", g.Source.String(),
		"destination", g.Destination.String(),
		"dragged", g.Dragged,
		"resolution", out.Resolution.String(),
	)
	return out
}
