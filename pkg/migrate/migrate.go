// Package migrate converts legacy page documents into the canonical tree
// encoding. Historically the columns container stored its children nested
// inside per-column objects; the engine only accepts the flat form, a
// children list plus a zone map in settings. Conversion happens here, at the
// persistence boundary, so the engine never sees both encodings.
package migrate

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"

	"github.com/nextpress/blocktree.go/pkg/models"
)

// Normalize decodes a page document in either encoding into a canonical
// tree. The bool reports whether any legacy container was converted, so
// callers know the document is worth rewriting.
func Normalize(data []byte) (models.Tree, bool, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, false, fmt.Errorf("page document is not a block list: %w", err)
	}

	tree := make(models.Tree, 0, len(raws))
	changed := false
	for _, raw := range raws {
		b, c, err := convertBlock(raw)
		if err != nil {
			return nil, false, err
		}
		changed = changed || c
		tree = append(tree, b)
	}
	return tree, changed, nil
}

// blockShell is the decodable surface of one block in either encoding.
// Children stay raw so nested legacy containers can be converted on the way
// down.
type blockShell struct {
	ID       models.BlockID    `json:"id"`
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Kind     models.Kind       `json:"kind"`
	Content  json.RawMessage   `json:"content"`
	Styles   models.Styles     `json:"styles"`
	Settings models.Settings   `json:"settings"`
	Children []json.RawMessage `json:"children"`
	Columns  []columnShell     `json:"columns"`
}

type columnShell struct {
	ID       models.ZoneID     `json:"id"`
	Width    string            `json:"width"`
	Children []json.RawMessage `json:"children"`
}

func convertBlock(raw []byte) (*models.Block, bool, error) {
	var shell blockShell
	if err := json.Unmarshal(raw, &shell); err != nil {
		return nil, false, err
	}

	b := &models.Block{
		ID:       shell.ID,
		Name:     shell.Name,
		Label:    shell.Label,
		Kind:     shell.Kind,
		Styles:   shell.Styles,
		Settings: shell.Settings,
	}

	content, err := decodeContent(shell.Content)
	if err != nil {
		return nil, false, fmt.Errorf("block %s: %w", shell.ID, err)
	}
	b.Content = content

	if len(shell.Columns) > 0 {
		changed, err := convertColumns(b, shell.Columns)
		if err != nil {
			return nil, false, err
		}
		return b, changed, nil
	}

	changed := false
	if len(shell.Children) > 0 {
		b.Children = make([]*models.Block, 0, len(shell.Children))
		for _, rawChild := range shell.Children {
			child, c, err := convertBlock(rawChild)
			if err != nil {
				return nil, false, err
			}
			changed = changed || c
			b.Children = append(b.Children, child)
		}
	}

	normalizeZones(b, raw)
	return b, changed, nil
}

// convertColumns flattens the legacy nested-per-column encoding: column
// children concatenate into one children list, and each column becomes a
// zone referencing its blocks by id.
func convertColumns(b *models.Block, columns []columnShell) (bool, error) {
	b.Kind = models.KindContainer

	zones := make(models.ZoneMap, 0, len(columns))
	for i, col := range columns {
		zoneID := col.ID
		if zoneID == "" {
			zoneID = models.ZoneID(fmt.Sprintf("col-%d", i+1))
		}

		members := make([]models.BlockID, 0, len(col.Children))
		for _, rawChild := range col.Children {
			child, _, err := convertBlock(rawChild)
			if err != nil {
				return false, fmt.Errorf("container %s column %s: %w", b.ID, zoneID, err)
			}
			members = append(members, child.ID)
			b.Children = append(b.Children, child)
		}
		zones = append(zones, models.Zone{ID: zoneID, Width: col.Width, Members: members})
	}

	b.Settings = b.Settings.WithZones(zones)
	return true, nil
}

func decodeContent(raw json.RawMessage) (models.Content, error) {
	if len(raw) == 0 {
		return models.EmptyContent{}, nil
	}
	return models.UnmarshalContent(raw)
}

// normalizeZones retypes a canonical block's zone map, which a generic
// settings decode leaves as []any. Unusable zone data is dropped, falling
// back to single-zone, matching the engine's repair policy.
func normalizeZones(b *models.Block, raw []byte) {
	if b.Settings == nil {
		return
	}
	if _, ok := b.Settings["zones"]; !ok {
		return
	}

	rawZones, _, _, err := jsonparser.Get(raw, "settings", "zones")
	if err != nil {
		delete(b.Settings, "zones")
		return
	}
	var zm models.ZoneMap
	if err := json.Unmarshal(rawZones, &zm); err != nil {
		delete(b.Settings, "zones")
		return
	}
	b.Settings["zones"] = zm
}
