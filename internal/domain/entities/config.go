package entities

import (
	"errors"
	"fmt"
)

// Config represents the complete converter configuration. It gathers
// the styling values that would otherwise be scattered literals: theme
// and background selection, the author block, and the bounds applied to
// every extracted image.
type Config struct {
	Deck   DeckConfig   `toml:"deck"`
	Images ImagesConfig `toml:"images"`
	Output OutputConfig `toml:"output"`
}

// Validate validates the entire configuration.
func (c *Config) Validate() error {
	if err := c.Deck.Validate(); err != nil {
		return fmt.Errorf("deck config: %w", err)
	}
	if err := c.Images.Validate(); err != nil {
		return fmt.Errorf("images config: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}
	return nil
}

// DeckConfig controls the frontmatter and the synthetic closing slide.
type DeckConfig struct {
	// Theme is the Slidev theme name.
	Theme string `toml:"theme"`

	// Background is the background reference for the title slide,
	// typically a themed stock-photo URL.
	Background string `toml:"background"`

	// Author appears in the frontmatter info block and on the closing
	// slide.
	Author string `toml:"author"`

	// Tagline is the author byline on the closing slide.
	Tagline string `toml:"tagline"`

	// Links are contact links for the closing slide, rendered in order.
	Links []string `toml:"links"`

	// Fonts is the font family list written to the frontmatter; empty
	// means the theme default.
	Fonts []string `toml:"fonts"`

	// Transition is the slide transition flag.
	Transition string `toml:"transition"`

	// Highlighter is the code highlighter flag.
	Highlighter string `toml:"highlighter"`
}

// Validate validates deck configuration.
func (d DeckConfig) Validate() error {
	if d.Theme == "" {
		return errors.New("theme is required")
	}
	return nil
}

// ImagesConfig bounds extracted images on the slide canvas so they never
// overflow regardless of source resolution.
type ImagesConfig struct {
	// MaxWidthPercent caps image width relative to the slide.
	MaxWidthPercent int `toml:"max_width_percent"`

	// MaxHeightPx caps image height in pixels.
	MaxHeightPx int `toml:"max_height_px"`

	// MarginPx is the vertical margin around each image.
	MarginPx int `toml:"margin_px"`
}

// Validate validates image bounds.
func (i ImagesConfig) Validate() error {
	if i.MaxWidthPercent < 1 || i.MaxWidthPercent > 100 {
		return errors.New("max_width_percent must be between 1 and 100")
	}
	if i.MaxHeightPx < 1 {
		return errors.New("max_height_px must be positive")
	}
	if i.MarginPx < 0 {
		return errors.New("margin_px must be non-negative")
	}
	return nil
}

// Style returns the inline style applied to every extracted image.
func (i ImagesConfig) Style() string {
	return fmt.Sprintf("max-width: %d%%; max-height: %dpx; margin: %dpx auto; display: block;",
		i.MaxWidthPercent, i.MaxHeightPx, i.MarginPx)
}

// OutputConfig controls where and under what name decks are written.
type OutputConfig struct {
	// FileName is the deck file name inside each presentation
	// directory. Slidev looks for slides.md by default.
	FileName string `toml:"file_name"`
}

// Validate validates output configuration.
func (o OutputConfig) Validate() error {
	if o.FileName == "" {
		return errors.New("file_name is required")
	}
	return nil
}
