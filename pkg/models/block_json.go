package models

import (
	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
)

// blockJSON is the wire shape of a Block. Content is kept raw so the tagged
// union codec can do the variant dispatch.
type blockJSON struct {
	ID       BlockID         `json:"id"`
	Name     string          `json:"name"`
	Label    string          `json:"label,omitempty"`
	Kind     Kind            `json:"kind"`
	Content  json.RawMessage `json:"content,omitempty"`
	Styles   Styles          `json:"styles,omitempty"`
	Settings Settings        `json:"settings,omitempty"`
	Children []*Block        `json:"children,omitempty"`
}

func (b *Block) MarshalJSON() ([]byte, error) {
	content := b.Content
	if content == nil {
		content = EmptyContent{}
	}
	raw, err := MarshalContent(content)
	if err != nil {
		return nil, err
	}

	return json.Marshal(blockJSON{
		ID:       b.ID,
		Name:     b.Name,
		Label:    b.Label,
		Kind:     b.Kind,
		Content:  raw,
		Styles:   b.Styles,
		Settings: b.Settings,
		Children: b.Children,
	})
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var wire blockJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	b.ID = wire.ID
	b.Name = wire.Name
	b.Label = wire.Label
	b.Kind = wire.Kind
	b.Styles = wire.Styles
	b.Settings = wire.Settings
	b.Children = wire.Children

	if len(wire.Content) == 0 {
		b.Content = EmptyContent{}
	} else {
		content, err := UnmarshalContent(wire.Content)
		if err != nil {
			return err
		}
		b.Content = content
	}

	// A generic map decode leaves the zone map as []any; re-decode it into
	// its typed form so zone-aware consumers never see raw JSON shapes.
	if b.Settings != nil {
		if _, ok := b.Settings[zonesKey]; ok {
			rawZones, _, _, err := jsonparser.Get(data, "settings", zonesKey)
			if err != nil {
				delete(b.Settings, zonesKey)
				return nil
			}
			var zm ZoneMap
			if err := json.Unmarshal(rawZones, &zm); err != nil {
				// Unusable zone data: fall back to single-zone rather than
				// failing the whole page load.
				delete(b.Settings, zonesKey)
				return nil
			}
			b.Settings[zonesKey] = zm
		}
	}

	return nil
}

// UnmarshalTree decodes a page's root block list.
func UnmarshalTree(data []byte) (Tree, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return t, nil
}

// MarshalTree encodes a page's root block list.
func MarshalTree(t Tree) ([]byte, error) {
	return json.Marshal(t)
}

// MarshalTreeIndent is MarshalTree for human consumption.
func MarshalTreeIndent(t Tree) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
