package entities

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeckMetadata holds the deck-level information derived once per input
// file. It is immutable for the duration of a conversion run.
type DeckMetadata struct {
	// ID is a unique identifier for this conversion run, used only in
	// logs and reports.
	ID string `json:"id"`

	// Title is the presentation title: the first slide's title when one
	// exists, otherwise the source file name without extension.
	Title string `json:"title"`

	// Author is credited in the frontmatter info block and on the
	// closing slide.
	Author string `json:"author"`

	// Theme is the Slidev theme name written to the frontmatter.
	Theme string `json:"theme"`

	// Background is the resolved background reference for the title
	// slide.
	Background string `json:"background"`

	// SourcePath is the input file the deck was derived from.
	SourcePath string `json:"source_path"`

	// CreatedAt is when the conversion started.
	CreatedAt time.Time `json:"created_at"`
}

// NewDeckMetadata derives the deck metadata for one conversion run.
// firstTitle may be empty; the source file name is the fallback.
func NewDeckMetadata(sourcePath, firstTitle string, cfg *Config) DeckMetadata {
	title := strings.TrimSpace(firstTitle)
	if title == "" {
		base := filepath.Base(sourcePath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return DeckMetadata{
		ID:         uuid.NewString(),
		Title:      title,
		Author:     cfg.Deck.Author,
		Theme:      cfg.Deck.Theme,
		Background: cfg.Deck.Background,
		SourcePath: sourcePath,
		CreatedAt:  time.Now(),
	}
}

// Validate ensures the metadata carries the fields the renderer needs.
func (d *DeckMetadata) Validate() error {
	if d.Title == "" {
		return errors.New("deck title is required")
	}
	if d.Theme == "" {
		return errors.New("deck theme is required")
	}
	return nil
}
