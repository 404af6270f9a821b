package ports

import (
	"context"
)

// PresentationReader abstracts the presentation-file parser. The rest of
// the pipeline depends only on this capability: enumerate slides, per
// slide enumerate shapes with their roles, and read raw image bytes.
type PresentationReader interface {
	Read(ctx context.Context, path string) (*SourcePresentation, error)
}

// SourcePresentation is the parsed form of one input file.
type SourcePresentation struct {
	// Slides in source order.
	Slides []SourceSlide
}

// SourceSlide is one parsed slide: its shapes in source order plus the
// raw text of the attached notes slide, if any.
type SourceSlide struct {
	Shapes []SourceShape
	Notes  string
}

// ShapeKind is the role of a shape within a slide.
type ShapeKind int

const (
	// ShapeText is a shape carrying a text frame.
	ShapeText ShapeKind = iota

	// ShapeImage is a picture shape with embedded image data.
	ShapeImage

	// ShapeVideo is a media placeholder; its poster image may be
	// present but the media itself is never extracted.
	ShapeVideo

	// ShapeTable is a table graphic frame; cell content is not
	// extracted.
	ShapeTable

	// ShapeUnknown is any shape the reader does not recognize.
	// Unknown shapes never abort a run.
	ShapeUnknown
)

// SourceShape is one shape of a slide. Exactly the fields matching the
// shape's kind are populated.
type SourceShape struct {
	Kind ShapeKind

	// IsTitle marks the slide's title placeholder.
	IsTitle bool

	// Placeholder is the raw placeholder type attribute ("title",
	// "body", "sldNum", ...); empty for non-placeholder shapes.
	Placeholder string

	// Paragraphs holds the text frame content for ShapeText shapes.
	Paragraphs []SourceParagraph

	// Image is non-nil for ShapeImage and may be non-nil for
	// ShapeVideo (the poster frame).
	Image ImageBlob
}

// SourceParagraph is one paragraph of a text frame: its run-concatenated
// raw text and its outline indentation depth (0 = top-level).
type SourceParagraph struct {
	Level int
	Text  string
}

// ImageBlob gives deferred access to one embedded image. Bytes returns
// an error for corrupt or unreadable media parts; callers are expected
// to skip such blobs rather than abort.
type ImageBlob interface {
	// Name is the source part name, used for extension hints.
	Name() string

	// Bytes returns the raw image data.
	Bytes() ([]byte, error)
}
