// Package builders provides fluent test-data builders for the converter
// domain types.
package builders

import (
	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
)

// SlideRecordBuilder helps build SlideRecord values for testing.
type SlideRecordBuilder struct {
	record entities.SlideRecord
}

// NewSlideRecordBuilder creates a builder with sensible defaults.
func NewSlideRecordBuilder() *SlideRecordBuilder {
	return &SlideRecordBuilder{
		record: entities.SlideRecord{
			Index: 1,
			Title: "Test Slide",
			Type:  entities.SlideTypeContent,
		},
	}
}

// WithIndex sets the 1-based slide index.
func (b *SlideRecordBuilder) WithIndex(index int) *SlideRecordBuilder {
	b.record.Index = index
	return b
}

// WithTitle sets the slide title.
func (b *SlideRecordBuilder) WithTitle(title string) *SlideRecordBuilder {
	b.record.Title = title
	return b
}

// WithoutTitle clears the slide title.
func (b *SlideRecordBuilder) WithoutTitle() *SlideRecordBuilder {
	b.record.Title = ""
	return b
}

// WithLine appends one bullet line.
func (b *SlideRecordBuilder) WithLine(level int, text string) *SlideRecordBuilder {
	b.record.Content = append(b.record.Content, entities.BulletLine{Level: level, Text: text})
	return b
}

// WithNotes sets the speaker notes.
func (b *SlideRecordBuilder) WithNotes(notes string) *SlideRecordBuilder {
	b.record.Notes = notes
	return b
}

// WithImages sets the extracted image references.
func (b *SlideRecordBuilder) WithImages(names ...string) *SlideRecordBuilder {
	b.record.Images = names
	return b
}

// WithTables sets the table placeholder count.
func (b *SlideRecordBuilder) WithTables(n int) *SlideRecordBuilder {
	b.record.Tables = n
	return b
}

// WithType sets the slide type.
func (b *SlideRecordBuilder) WithType(t entities.SlideType) *SlideRecordBuilder {
	b.record.Type = t
	return b
}

// Build returns the record, classifying it when no type was forced.
func (b *SlideRecordBuilder) Build() entities.SlideRecord {
	record := b.record
	if record.Type == "" {
		record.Type = record.Classify()
	}
	return record
}
