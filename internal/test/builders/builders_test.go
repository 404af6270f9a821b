package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

func TestSlideRecordBuilder(t *testing.T) {
	record := NewSlideRecordBuilder().
		WithIndex(2).
		WithTitle("Built").
		WithLine(0, "a").
		WithLine(1, "b").
		WithNotes("note").
		WithImages("slide_2_image_1.png").
		Build()

	require.NoError(t, record.Validate())
	assert.Equal(t, 2, record.Index)
	assert.Equal(t, "Built", record.Title)
	assert.Len(t, record.Content, 2)
	assert.Equal(t, entities.SlideTypeContent, record.Type)
}

func TestSourceSlideBuilder(t *testing.T) {
	slide := NewSourceSlideBuilder().
		WithTitle("Heading").
		WithBody(ports.SourceParagraph{Text: "line"}).
		WithImage(PNGBlob("ppt/media/image1.png")).
		WithTable().
		WithNotes("note").
		Build()

	require.Len(t, slide.Shapes, 4)
	assert.True(t, slide.Shapes[0].IsTitle)
	assert.Equal(t, ports.ShapeText, slide.Shapes[1].Kind)
	assert.Equal(t, ports.ShapeImage, slide.Shapes[2].Kind)
	assert.Equal(t, ports.ShapeTable, slide.Shapes[3].Kind)
	assert.Equal(t, "note", slide.Notes)
}

func TestFakeBlob(t *testing.T) {
	t.Run("corrupt blob always errors", func(t *testing.T) {
		_, err := CorruptBlob("broken.bin").Bytes()
		assert.Error(t, err)
	})

	t.Run("png blob carries a decodable header", func(t *testing.T) {
		data, err := PNGBlob("image1.png").Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
	})
}
