package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideRecord_Validate(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := SlideRecord{
			Index: 1,
			Title: "Integrating AI in Java",
			Content: []BulletLine{
				{Level: 0, Text: "A"},
				{Level: 1, Text: "B"},
				{Level: 1, Text: "C"},
				{Level: 0, Text: "D"},
			},
			Images: []string{"slide_1_image_1.png"},
		}
		require.NoError(t, record.Validate())
	})

	t.Run("rejects zero index", func(t *testing.T) {
		record := SlideRecord{Index: 0}
		assert.Error(t, record.Validate())
	})

	t.Run("rejects newline in title", func(t *testing.T) {
		record := SlideRecord{Index: 1, Title: "two\nlines"}
		assert.Error(t, record.Validate())
	})

	t.Run("rejects orphan indentation", func(t *testing.T) {
		record := SlideRecord{
			Index:   1,
			Content: []BulletLine{{Level: 0, Text: "A"}, {Level: 2, Text: "B"}},
		}
		assert.Error(t, record.Validate())
	})

	t.Run("rejects leading non-zero level", func(t *testing.T) {
		record := SlideRecord{
			Index:   1,
			Content: []BulletLine{{Level: 1, Text: "orphan"}},
		}
		assert.Error(t, record.Validate())
	})

	t.Run("allows dedent to any earlier level", func(t *testing.T) {
		record := SlideRecord{
			Index: 1,
			Content: []BulletLine{
				{Level: 0, Text: "A"},
				{Level: 1, Text: "B"},
				{Level: 2, Text: "C"},
				{Level: 0, Text: "D"},
			},
		}
		assert.NoError(t, record.Validate())
	})

	t.Run("rejects empty image reference", func(t *testing.T) {
		record := SlideRecord{Index: 1, Images: []string{"  "}}
		assert.Error(t, record.Validate())
	})
}

func TestSlideRecord_Classify(t *testing.T) {
	tests := []struct {
		name   string
		record SlideRecord
		want   SlideType
	}{
		{
			name:   "first slide with title is the deck title",
			record: SlideRecord{Index: 1, Title: "Opening"},
			want:   SlideTypeTitle,
		},
		{
			name: "first slide with title and minimal body is still the deck title",
			record: SlideRecord{
				Index:   1,
				Title:   "Opening",
				Content: []BulletLine{{Level: 0, Text: "Subtitle"}},
			},
			want: SlideTypeTitle,
		},
		{
			name:   "first slide without title is content",
			record: SlideRecord{Index: 1},
			want:   SlideTypeContent,
		},
		{
			name:   "later title-only slide is a section divider",
			record: SlideRecord{Index: 3, Title: "Part Two"},
			want:   SlideTypeSection,
		},
		{
			name:   "image-only slide",
			record: SlideRecord{Index: 4, Images: []string{"slide_4_image_1.png"}},
			want:   SlideTypeImage,
		},
		{
			name: "title plus body is content",
			record: SlideRecord{
				Index:   2,
				Title:   "Details",
				Content: []BulletLine{{Level: 0, Text: "A"}},
			},
			want: SlideTypeContent,
		},
		{
			name: "title plus images and no body uses the image template",
			record: SlideRecord{
				Index:  2,
				Title:  "Diagram",
				Images: []string{"slide_2_image_1.png"},
			},
			want: SlideTypeImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Classify())
		})
	}
}
