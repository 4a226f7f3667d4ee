package models

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
)

var (
	// ErrNilContent is returned when marshaling a block whose content union
	// was never set.
	ErrNilContent = errors.New("content is not set")

	// ErrMissingContentKind is returned when a content object carries no
	// "kind" discriminator.
	ErrMissingContentKind = errors.New(`content has no "kind" discriminator`)

	// ErrUnknownContentKind is returned for discriminators outside the
	// closed union.
	ErrUnknownContentKind = errors.New("unknown content kind")
)

// MarshalContent encodes one union variant as a tagged envelope: the
// variant's own fields plus a "kind" discriminator.
func MarshalContent(c Content) ([]byte, error) {
	if c == nil {
		return nil, ErrNilContent
	}

	body, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	kind, err := json.Marshal(c.Kind())
	if err != nil {
		return nil, err
	}

	return jsonparser.Set(body, kind, "kind")
}

// UnmarshalContent decodes a tagged envelope back into the matching union
// variant. The discriminator is probed first so only the matching variant is
// ever unmarshaled.
func UnmarshalContent(data []byte) (Content, error) {
	kind, err := jsonparser.GetString(data, "kind")
	if err != nil {
		return nil, ErrMissingContentKind
	}

	switch ContentKind(kind) {
	case ContentText:
		var v TextContent
		err = json.Unmarshal(data, &v)
		return v, err
	case ContentMarkdown:
		var v MarkdownContent
		err = json.Unmarshal(data, &v)
		return v, err
	case ContentMedia:
		var v MediaContent
		err = json.Unmarshal(data, &v)
		return v, err
	case ContentHTML:
		var v HTMLContent
		err = json.Unmarshal(data, &v)
		return v, err
	case ContentStructured:
		var v StructuredContent
		err = json.Unmarshal(data, &v)
		return v, err
	case ContentEmpty:
		return EmptyContent{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentKind, kind)
	}
}
