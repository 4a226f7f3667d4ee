package registry

import (
	"github.com/nextpress/blocktree.go/pkg/models"
)

// Builtin returns the standard nextpress palette. Applications extend it
// with Register or build their own from scratch.
func Builtin() *TypeRegistry {
	return New(
		Definition{
			Name: "core/paragraph", Label: "Paragraph", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.TextContent{Value: ""}
			},
		},
		Definition{
			Name: "core/heading", Label: "Heading", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.TextContent{Value: ""}
				b.Settings = models.Settings{"level": 2}
			},
		},
		Definition{
			Name: "core/quote", Label: "Quote", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.TextContent{Value: ""}
				b.Styles = models.Styles{"fontStyle": "italic"}
			},
		},
		Definition{
			Name: "core/image", Label: "Image", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.MediaContent{MediaType: "image"}
			},
		},
		Definition{
			Name: "core/video", Label: "Video", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.MediaContent{MediaType: "video"}
			},
		},
		Definition{
			Name: "core/markdown", Label: "Markdown", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.MarkdownContent{}
			},
		},
		Definition{
			Name: "core/html", Label: "Custom HTML", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.HTMLContent{}
			},
		},
		Definition{
			Name: "core/button", Label: "Button", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Content = models.StructuredContent{Fields: map[string]any{
					"text": "Click here",
					"url":  "",
				}}
			},
		},
		Definition{
			Name: "core/divider", Label: "Divider", Kind: models.KindBlock,
		},
		Definition{
			Name: "core/spacer", Label: "Spacer", Kind: models.KindBlock,
			Build: func(b *models.Block) {
				b.Styles = models.Styles{"height": "32px"}
			},
		},
		Definition{
			Name: "core/group", Label: "Group", Kind: models.KindContainer,
		},
		Definition{
			Name: "core/columns", Label: "Columns", Kind: models.KindContainer,
			Build: func(b *models.Block) {
				b.Settings = models.Settings{}.WithZones(models.ZoneMap{
					{ID: "col-1", Width: "50%", Members: []models.BlockID{}},
					{ID: "col-2", Width: "50%", Members: []models.BlockID{}},
				})
			},
		},
	)
}
