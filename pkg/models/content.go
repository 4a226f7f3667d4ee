package models

// ContentKind names one variant of the content union.
type ContentKind string

const (
	ContentText       ContentKind = "text"
	ContentMarkdown   ContentKind = "markdown"
	ContentMedia      ContentKind = "media"
	ContentHTML       ContentKind = "html"
	ContentStructured ContentKind = "structured"
	ContentEmpty      ContentKind = "empty"
)

// Content is the closed union of block payloads. Exactly one variant is
// active per block; the sealed method keeps the set closed to this package.
type Content interface {
	// Kind reports which variant this is.
	Kind() ContentKind

	sealed()
}

// TextContent is plain text with an optional alignment.
type TextContent struct {
	Value string `json:"value"`
	Align string `json:"align,omitempty"`
}

// MarkdownContent carries markdown source rendered by the view layer.
type MarkdownContent struct {
	Source string `json:"source"`
}

// MediaContent references an external asset by URL.
type MediaContent struct {
	URL       string `json:"url"`
	MediaType string `json:"mediaType,omitempty"` // "image", "video", ...
}

// HTMLContent carries raw embed markup. The engine never sanitizes it; that
// is the renderer's concern.
type HTMLContent struct {
	Source string `json:"source"`
}

// StructuredContent is the open key/value payload used by container types
// for configuration that is neither styles nor settings.
type StructuredContent struct {
	Fields map[string]any `json:"fields"`
}

// EmptyContent marks blocks with no payload of their own (dividers, spacers,
// most containers).
type EmptyContent struct{}

func (TextContent) Kind() ContentKind       { return ContentText }
func (MarkdownContent) Kind() ContentKind   { return ContentMarkdown }
func (MediaContent) Kind() ContentKind      { return ContentMedia }
func (HTMLContent) Kind() ContentKind       { return ContentHTML }
func (StructuredContent) Kind() ContentKind { return ContentStructured }
func (EmptyContent) Kind() ContentKind      { return ContentEmpty }

func (TextContent) sealed()       {}
func (MarkdownContent) sealed()   {}
func (MediaContent) sealed()      {}
func (HTMLContent) sealed()       {}
func (StructuredContent) sealed() {}
func (EmptyContent) sealed()      {}
