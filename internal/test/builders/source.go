package builders

import (
	"errors"

	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

// FakeBlob is an in-memory ImageBlob for tests. A non-nil Err simulates
// a corrupt or unreadable media part.
type FakeBlob struct {
	BlobName string
	Data     []byte
	Err      error
}

// Name implements ports.ImageBlob.
func (f *FakeBlob) Name() string { return f.BlobName }

// Bytes implements ports.ImageBlob.
func (f *FakeBlob) Bytes() ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Data, nil
}

// CorruptBlob returns a blob whose read always fails.
func CorruptBlob(name string) *FakeBlob {
	return &FakeBlob{BlobName: name, Err: errors.New("corrupt media part")}
}

// PNGBlob returns a blob holding a minimal valid PNG header so format
// sniffing recognizes it.
func PNGBlob(name string) *FakeBlob {
	return &FakeBlob{BlobName: name, Data: TinyPNG()}
}

// TinyPNG returns the bytes of a 1x1 opaque PNG.
func TinyPNG() []byte {
	return []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, // signature
		0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52, // IHDR
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
		0xde, 0x00, 0x00, 0x00, 0x0c, 0x49, 0x44, 0x41, // IDAT
		0x54, 0x08, 0xd7, 0x63, 0xf8, 0xcf, 0xc0, 0x00,
		0x00, 0x00, 0x03, 0x00, 0x01, 0x5e, 0xf3, 0x2a,
		0x3a, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, // IEND
		0x44, 0xae, 0x42, 0x60, 0x82,
	}
}

// SourceSlideBuilder helps build SourceSlide values for testing.
type SourceSlideBuilder struct {
	slide ports.SourceSlide
}

// NewSourceSlideBuilder creates an empty slide builder.
func NewSourceSlideBuilder() *SourceSlideBuilder {
	return &SourceSlideBuilder{}
}

// WithTitle adds a title placeholder shape.
func (b *SourceSlideBuilder) WithTitle(text string) *SourceSlideBuilder {
	b.slide.Shapes = append(b.slide.Shapes, ports.SourceShape{
		Kind:        ports.ShapeText,
		IsTitle:     true,
		Placeholder: "title",
		Paragraphs:  []ports.SourceParagraph{{Text: text}},
	})
	return b
}

// WithBody adds one text shape holding the given paragraphs.
func (b *SourceSlideBuilder) WithBody(paragraphs ...ports.SourceParagraph) *SourceSlideBuilder {
	b.slide.Shapes = append(b.slide.Shapes, ports.SourceShape{
		Kind:       ports.ShapeText,
		Paragraphs: paragraphs,
	})
	return b
}

// WithImage adds a picture shape backed by the given blob.
func (b *SourceSlideBuilder) WithImage(blob ports.ImageBlob) *SourceSlideBuilder {
	b.slide.Shapes = append(b.slide.Shapes, ports.SourceShape{
		Kind:  ports.ShapeImage,
		Image: blob,
	})
	return b
}

// WithTable adds a table shape.
func (b *SourceSlideBuilder) WithTable() *SourceSlideBuilder {
	b.slide.Shapes = append(b.slide.Shapes, ports.SourceShape{Kind: ports.ShapeTable})
	return b
}

// WithNotes sets the slide's raw speaker notes.
func (b *SourceSlideBuilder) WithNotes(notes string) *SourceSlideBuilder {
	b.slide.Notes = notes
	return b
}

// Build returns the slide.
func (b *SourceSlideBuilder) Build() ports.SourceSlide {
	return b.slide
}

// Presentation bundles slides into a SourcePresentation.
func Presentation(slides ...ports.SourceSlide) *ports.SourcePresentation {
	return &ports.SourcePresentation{Slides: slides}
}
