package entities

import (
	"errors"
	"fmt"
	"strings"
)

// SlideType classifies a slide for template selection during rendering.
type SlideType string

const (
	// SlideTypeTitle is the opening slide of the deck.
	SlideTypeTitle SlideType = "title"

	// SlideTypeContent is a regular slide with bulleted body content.
	SlideTypeContent SlideType = "content"

	// SlideTypeSection is a divider slide: a title with no body lines.
	SlideTypeSection SlideType = "section"

	// SlideTypeImage is a slide whose only content is images.
	SlideTypeImage SlideType = "image"

	// SlideTypeClosing is the synthetic thank-you slide appended by the
	// renderer; it never originates from a source slide.
	SlideTypeClosing SlideType = "closing"
)

// BulletLine is one flattened line of body content. Level is the
// indentation depth from the source outline (0 = top-level); Text is
// already whitespace-normalized and entity-escaped.
type BulletLine struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// SlideRecord is the normalized intermediate form of one source slide.
// It is constructed once by the extractor and never mutated afterwards;
// the renderer only reads it. Images holds file names already flushed to
// the output directory, not binary payloads.
type SlideRecord struct {
	// Index is the 1-based position of the slide in the source deck.
	Index int `json:"index"`

	// Title is the normalized slide heading; empty when the source
	// slide has no title placeholder.
	Title string `json:"title,omitempty"`

	// Content is the flattened bullet hierarchy in source shape order.
	Content []BulletLine `json:"content,omitempty"`

	// Notes contains the speaker notes, normalized and escaped like
	// body text. Never rendered into the visible deck.
	Notes string `json:"notes,omitempty"`

	// Images lists file names of images extracted from this slide, in
	// source shape order.
	Images []string `json:"images,omitempty"`

	// Tables counts table shapes found on the slide. Tables are not
	// reconstructed; the renderer emits a manual-fix placeholder per
	// table.
	Tables int `json:"tables,omitempty"`

	// Videos counts video placeholders found on the slide, handled
	// like tables.
	Videos int `json:"videos,omitempty"`

	// Type selects the rendering template.
	Type SlideType `json:"type"`
}

// HasTitle reports whether the source slide carried a title placeholder.
func (s *SlideRecord) HasTitle() bool {
	return s.Title != ""
}

// HasBody reports whether the slide contributed any bullet lines.
func (s *SlideRecord) HasBody() bool {
	return len(s.Content) > 0
}

// Validate checks the record invariants: a 1-based index, a newline-free
// title, levels forming a valid hierarchy (a line may indent at most one
// step past its predecessor), and non-empty image references.
func (s *SlideRecord) Validate() error {
	if s.Index < 1 {
		return errors.New("slide index must be 1-based")
	}

	if strings.ContainsAny(s.Title, "\n\r") {
		return errors.New("title must not contain newlines")
	}

	prev := -1
	for i, line := range s.Content {
		if line.Level < 0 {
			return fmt.Errorf("line %d: negative level %d", i, line.Level)
		}
		if line.Level > prev+1 {
			return fmt.Errorf("line %d: level %d has no parent at level %d", i, line.Level, line.Level-1)
		}
		prev = line.Level
	}

	for i, name := range s.Images {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("image %d: empty file name", i)
		}
	}

	return nil
}

// Classify determines the slide type from the record's own content.
// The rule is deliberately explicit: the first slide is the deck title
// whenever it has a heading, regardless of how little body it carries;
// any later slide with a heading and no body lines or images is a
// section divider; a slide whose only payload is images renders through
// the image template; everything else is a content slide.
func (s *SlideRecord) Classify() SlideType {
	switch {
	case s.Index == 1 && s.HasTitle():
		return SlideTypeTitle
	case s.HasTitle() && !s.HasBody() && len(s.Images) == 0:
		return SlideTypeSection
	case !s.HasBody() && len(s.Images) > 0:
		return SlideTypeImage
	default:
		return SlideTypeContent
	}
}
