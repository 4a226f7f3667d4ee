package models_test

import (
	"testing"

	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextpress/blocktree.go/pkg/models"
)

func TestMarshalContent(t *testing.T) {
	t.Run("TaggedEnvelope", func(t *testing.T) {
		data, err := models.MarshalContent(models.TextContent{Value: "Hello", Align: "center"})
		require.NoError(t, err)

		kind, err := jsonparser.GetString(data, "kind")
		require.NoError(t, err)
		assert.Equal(t, "text", kind)

		value, err := jsonparser.GetString(data, "value")
		require.NoError(t, err)
		assert.Equal(t, "Hello", value)
	})

	t.Run("EmptyVariant", func(t *testing.T) {
		data, err := models.MarshalContent(models.EmptyContent{})
		require.NoError(t, err)

		kind, err := jsonparser.GetString(data, "kind")
		require.NoError(t, err)
		assert.Equal(t, "empty", kind)
	})

	t.Run("NilContent", func(t *testing.T) {
		_, err := models.MarshalContent(nil)
		assert.ErrorIs(t, err, models.ErrNilContent)
	})
}

func TestUnmarshalContent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want models.Content
	}{
		{
			name: "Text",
			data: `{"kind":"text","value":"Hello","align":"center"}`,
			want: models.TextContent{Value: "Hello", Align: "center"},
		},
		{
			name: "Markdown",
			data: `{"kind":"markdown","source":"# Title"}`,
			want: models.MarkdownContent{Source: "# Title"},
		},
		{
			name: "Media",
			data: `{"kind":"media","url":"https://cdn.example/cat.png","mediaType":"image"}`,
			want: models.MediaContent{URL: "https://cdn.example/cat.png", MediaType: "image"},
		},
		{
			name: "HTML",
			data: `{"kind":"html","source":"<aside>hi</aside>"}`,
			want: models.HTMLContent{Source: "<aside>hi</aside>"},
		},
		{
			name: "Structured",
			data: `{"kind":"structured","fields":{"target":"_blank"}}`,
			want: models.StructuredContent{Fields: map[string]any{"target": "_blank"}},
		},
		{
			name: "Empty",
			data: `{"kind":"empty"}`,
			want: models.EmptyContent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.UnmarshalContent([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("MissingKind", func(t *testing.T) {
		_, err := models.UnmarshalContent([]byte(`{"value":"Hello"}`))
		assert.ErrorIs(t, err, models.ErrMissingContentKind)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := models.UnmarshalContent([]byte(`{"kind":"hologram"}`))
		assert.ErrorIs(t, err, models.ErrUnknownContentKind)
		assert.Contains(t, err.Error(), "hologram")
	})
}

func TestContentRoundTrip(t *testing.T) {
	original := models.StructuredContent{Fields: map[string]any{"columns": 2.0, "gap": "16px"}}

	data, err := models.MarshalContent(original)
	require.NoError(t, err)

	decoded, err := models.UnmarshalContent(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
