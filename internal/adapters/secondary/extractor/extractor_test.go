package extractor

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
	"github.com/fredcamaral/pptx2slidev/internal/test/builders"
)

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func extractOne(t *testing.T, slide ports.SourceSlide) entities.SlideRecord {
	t.Helper()
	records, err := newTestService().Extract(context.Background(), builders.Presentation(slide), t.TempDir())
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]
}

func TestExtract_TitleNormalization(t *testing.T) {
	t.Run("collapses embedded newlines and repeated whitespace", func(t *testing.T) {
		slide := builders.NewSourceSlideBuilder().
			WithTitle("Integrating\n  AI   in Java").
			Build()

		record := extractOne(t, slide)
		assert.Equal(t, "Integrating AI in Java", record.Title)
	})

	t.Run("missing title placeholder is not an error", func(t *testing.T) {
		slide := builders.NewSourceSlideBuilder().
			WithBody(ports.SourceParagraph{Text: "body only"}).
			Build()

		record := extractOne(t, slide)
		assert.Empty(t, record.Title)
	})
}

func TestExtract_Escaping(t *testing.T) {
	t.Run("escapes angle brackets once at model entry", func(t *testing.T) {
		slide := builders.NewSourceSlideBuilder().
			WithTitle("Generics <T> in Java").
			WithBody(ports.SourceParagraph{Text: "List<String> -> Stream<String>"}).
			Build()

		record := extractOne(t, slide)
		assert.Equal(t, "Generics &lt;T&gt; in Java", record.Title)
		require.Len(t, record.Content, 1)
		assert.Equal(t, "List&lt;String&gt; -&gt; Stream&lt;String&gt;", record.Content[0].Text)
	})

	t.Run("escaping is idempotent", func(t *testing.T) {
		once := normalize("a < b")
		twice := normalize(once)
		assert.Equal(t, once, twice)
	})
}

func TestExtract_BodyHierarchy(t *testing.T) {
	t.Run("preserves levels in source order", func(t *testing.T) {
		slide := builders.NewSourceSlideBuilder().
			WithBody(
				ports.SourceParagraph{Level: 0, Text: "A"},
				ports.SourceParagraph{Level: 1, Text: "B"},
				ports.SourceParagraph{Level: 1, Text: "C"},
				ports.SourceParagraph{Level: 0, Text: "D"},
			).
			Build()

		record := extractOne(t, slide)
		assert.Equal(t, []entities.BulletLine{
			{Level: 0, Text: "A"},
			{Level: 1, Text: "B"},
			{Level: 1, Text: "C"},
			{Level: 0, Text: "D"},
		}, record.Content)
		assert.NoError(t, record.Validate())
	})

	t.Run("clamps levels that skip a parent", func(t *testing.T) {
		slide := builders.NewSourceSlideBuilder().
			WithBody(
				ports.SourceParagraph{Level: 0, Text: "A"},
				ports.SourceParagraph{Level: 3, Text: "B"},
			).
			Build()

		record := extractOne(t, slide)
		assert.Equal(t, 1, record.Content[1].Level)
		assert.NoError(t, record.Validate())
	})

	t.Run("skips empty paragraphs", func(t *testing.T) {
		slide := builders.NewSourceSlideBuilder().
			WithBody(
				ports.SourceParagraph{Level: 0, Text: "A"},
				ports.SourceParagraph{Level: 0, Text: "   "},
				ports.SourceParagraph{Level: 0, Text: "B"},
			).
			Build()

		record := extractOne(t, slide)
		require.Len(t, record.Content, 2)
	})
}

func TestExtract_Images(t *testing.T) {
	t.Run("writes images under deterministic names", func(t *testing.T) {
		dir := t.TempDir()
		slide := builders.NewSourceSlideBuilder().
			WithImage(builders.PNGBlob("ppt/media/image1.png")).
			WithImage(builders.PNGBlob("ppt/media/image2.png")).
			Build()

		records, err := newTestService().Extract(context.Background(), builders.Presentation(slide), dir)
		require.NoError(t, err)
		require.Equal(t, []string{"slide_1_image_1.png", "slide_1_image_2.png"}, records[0].Images)

		for _, name := range records[0].Images {
			_, err := os.Stat(filepath.Join(dir, name))
			assert.NoError(t, err, "image %s must exist before rendering", name)
		}
	})

	t.Run("corrupt blob is skipped without aborting the slide", func(t *testing.T) {
		dir := t.TempDir()
		slide := builders.NewSourceSlideBuilder().
			WithTitle("Pictures").
			WithImage(builders.CorruptBlob("ppt/media/broken.bin")).
			WithImage(builders.PNGBlob("ppt/media/image2.png")).
			Build()

		records, err := newTestService().Extract(context.Background(), builders.Presentation(slide), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"slide_1_image_1.png"}, records[0].Images)
	})

	t.Run("sniffs the real format over the part extension", func(t *testing.T) {
		ext := imageExt(builders.TinyPNG(), "ppt/media/image1.jpeg")
		assert.Equal(t, ".png", ext)
	})

	t.Run("falls back to part extension for unknown data", func(t *testing.T) {
		ext := imageExt([]byte{0x00, 0x01}, "ppt/media/image1.emf")
		assert.Equal(t, ".emf", ext)
	})

	t.Run("falls back to png as a last resort", func(t *testing.T) {
		ext := imageExt([]byte{0x00, 0x01}, "ppt/media/blob.bin")
		assert.Equal(t, ".png", ext)
	})
}

func TestExtract_Notes(t *testing.T) {
	slide := builders.NewSourceSlideBuilder().
		WithTitle("With notes").
		WithNotes("remember   the <demo>\nsecond line").
		Build()

	record := extractOne(t, slide)
	assert.Equal(t, "remember the &lt;demo&gt;\nsecond line", record.Notes)
}

func TestExtract_Classification(t *testing.T) {
	first := builders.NewSourceSlideBuilder().WithTitle("Deck Title").Build()
	section := builders.NewSourceSlideBuilder().WithTitle("Part One").Build()
	content := builders.NewSourceSlideBuilder().
		WithTitle("Points").
		WithBody(ports.SourceParagraph{Text: "a point"}).
		Build()

	records, err := newTestService().Extract(context.Background(),
		builders.Presentation(first, section, content), t.TempDir())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, entities.SlideTypeTitle, records[0].Type)
	assert.Equal(t, entities.SlideTypeSection, records[1].Type)
	assert.Equal(t, entities.SlideTypeContent, records[2].Type)
}

func TestExtract_UnknownShapesIgnored(t *testing.T) {
	slide := ports.SourceSlide{Shapes: []ports.SourceShape{
		{Kind: ports.ShapeUnknown},
		{Kind: ports.ShapeText, Paragraphs: []ports.SourceParagraph{{Text: "kept"}}},
	}}

	record := extractOne(t, slide)
	require.Len(t, record.Content, 1)
	assert.Equal(t, "kept", record.Content[0].Text)
}

func TestExtract_TableAndVideoCounts(t *testing.T) {
	slide := builders.NewSourceSlideBuilder().WithTitle("Data").WithTable().Build()
	slide.Shapes = append(slide.Shapes, ports.SourceShape{Kind: ports.ShapeVideo})

	record := extractOne(t, slide)
	assert.Equal(t, 1, record.Tables)
	assert.Equal(t, 1, record.Videos)
}
