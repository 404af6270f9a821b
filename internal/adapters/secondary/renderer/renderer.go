// Package renderer composes the Slidev markdown document from the
// normalized slide records.
package renderer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

// separator is the Slidev section separator token. It appears between
// sections only, never before the first one: Slidev treats the block
// right after the frontmatter as the first slide, and a leading
// separator would show up as a blank slide.
const separator = "\n---\n"

// frontmatter is the deck-wide metadata block. Field order matters for
// readability of the generated file, which is why this is a struct and
// not a map. The "src" key is reserved for Slidev's fragment-inclusion
// directive and is deliberately never emitted here.
type frontmatter struct {
	Theme       string    `yaml:"theme"`
	Background  string    `yaml:"background,omitempty"`
	Class       string    `yaml:"class"`
	Highlighter string    `yaml:"highlighter"`
	LineNumbers bool      `yaml:"lineNumbers"`
	Info        string    `yaml:"info"`
	Drawings    drawings  `yaml:"drawings"`
	Transition  string    `yaml:"transition,omitempty"`
	Title       string    `yaml:"title"`
	MDC         bool      `yaml:"mdc"`
	Fonts       *fontSpec `yaml:"fonts,omitempty"`
}

type drawings struct {
	Persist bool `yaml:"persist"`
}

type fontSpec struct {
	Sans string `yaml:"sans"`
}

// Service implements ports.DeckRenderer.
type Service struct {
	config *entities.Config
}

var _ ports.DeckRenderer = (*Service)(nil)

// NewService creates a deck renderer using the styling in config.
func NewService(config *entities.Config) *Service {
	return &Service{config: config}
}

// Render produces the complete deck document: frontmatter, one section
// per record separated by the Slidev separator token, and a synthetic
// closing section. For N records the output holds N+1 sections and
// exactly N separators.
func (s *Service) Render(meta entities.DeckMetadata, records []entities.SlideRecord) (string, error) {
	if err := meta.Validate(); err != nil {
		return "", fmt.Errorf("invalid deck metadata: %w", err)
	}

	var doc strings.Builder

	fm, err := s.renderFrontmatter(meta)
	if err != nil {
		return "", err
	}
	doc.WriteString(fm)

	for i, record := range records {
		if i > 0 {
			doc.WriteString(separator)
		}
		doc.WriteString(s.renderSlide(record))
	}

	doc.WriteString(separator)
	doc.WriteString(s.renderClosing(meta))

	return doc.String(), nil
}

// renderFrontmatter emits the leading metadata block. The first slide's
// content follows the closing delimiter directly: an extra separator
// here would manifest as an unwanted blank leading slide.
func (s *Service) renderFrontmatter(meta entities.DeckMetadata) (string, error) {
	fm := frontmatter{
		Theme:       meta.Theme,
		Background:  meta.Background,
		Class:       "text-center",
		Highlighter: s.config.Deck.Highlighter,
		LineNumbers: false,
		Info:        fmt.Sprintf("## %s\n\nBy %s\n", meta.Title, meta.Author),
		Drawings:    drawings{Persist: false},
		Transition:  s.config.Deck.Transition,
		Title:       meta.Title,
		MDC:         true,
	}
	if len(s.config.Deck.Fonts) > 0 {
		fm.Fonts = &fontSpec{Sans: strings.Join(s.config.Deck.Fonts, ",")}
	}

	body, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}
	return "---\n" + string(body) + "---\n", nil
}

// renderSlide emits one section for a record.
func (s *Service) renderSlide(record entities.SlideRecord) string {
	var section strings.Builder
	section.WriteString("\n")

	if record.HasTitle() {
		section.WriteString("# " + record.Title + "\n")
	}

	switch record.Type {
	case entities.SlideTypeTitle:
		section.WriteString(titleSlideFooter)
	default:
		s.renderBody(&section, record)
	}

	s.renderImages(&section, record)
	s.renderPlaceholders(&section, record)
	s.renderNotes(&section, record)

	return section.String()
}

// renderBody emits the nested bullet list. Each line gets exactly one
// marker; indentation alone expresses the hierarchy. Content slides
// with more than one bullet are wrapped in <v-clicks> so bullets reveal
// one at a time.
func (s *Service) renderBody(section *strings.Builder, record entities.SlideRecord) {
	if !record.HasBody() {
		return
	}

	progressive := record.Type == entities.SlideTypeContent && len(record.Content) > 1
	if progressive {
		section.WriteString("\n<v-clicks>\n")
	}

	section.WriteString("\n")
	for _, line := range record.Content {
		section.WriteString(strings.Repeat("  ", line.Level))
		section.WriteString("- ")
		section.WriteString(line.Text)
		section.WriteString("\n")
	}

	if progressive {
		section.WriteString("\n</v-clicks>\n")
	}
}

// renderImages emits one constrained img element per extracted file,
// after the text content. The fixed bounds keep any source resolution
// inside the slide canvas.
func (s *Service) renderImages(section *strings.Builder, record entities.SlideRecord) {
	for _, name := range record.Images {
		fmt.Fprintf(section, "\n<img src=\"./%s\" alt=\"Slide %d image\" style=\"%s\" />\n",
			name, record.Index, s.config.Images.Style())
	}
}

// renderPlaceholders emits a manual-remediation comment per table or
// video the source slide contained. Reconstructing either is out of
// scope; the comment marks the gap instead of silently dropping it.
func (s *Service) renderPlaceholders(section *strings.Builder, record entities.SlideRecord) {
	for i := 0; i < record.Tables; i++ {
		section.WriteString("\n<!-- A table from the source slide was not converted; rebuild it manually. -->\n")
	}
	for i := 0; i < record.Videos; i++ {
		section.WriteString("\n<!-- A video from the source slide was not converted; embed it manually. -->\n")
	}
}

// renderNotes carries speaker notes into Slidev's presenter-note
// comment block, keeping them out of the visible deck.
func (s *Service) renderNotes(section *strings.Builder, record entities.SlideRecord) {
	if record.Notes == "" {
		return
	}
	section.WriteString("\n<!--\n" + record.Notes + "\n-->\n")
}

// renderClosing emits the synthetic thank-you section appended after
// the last real slide.
func (s *Service) renderClosing(meta entities.DeckMetadata) string {
	var section strings.Builder
	section.WriteString("\n# Thank You!\n\n<div class=\"text-center\">\n\n## Questions?\n")

	if meta.Author != "" {
		section.WriteString("\n**" + meta.Author + "**  \n")
		if s.config.Deck.Tagline != "" {
			section.WriteString("*" + s.config.Deck.Tagline + "*\n")
		}
	}

	if len(s.config.Deck.Links) > 0 {
		section.WriteString("\n" + strings.Join(s.config.Deck.Links, " | ") + "\n")
	}

	section.WriteString("\n</div>\n")
	return section.String()
}

// titleSlideFooter is the interaction hint shown under the deck title.
const titleSlideFooter = `
<div class="pt-12">
  <span @click="$slidev.nav.next" class="px-2 py-1 rounded cursor-pointer" hover="bg-white bg-opacity-10">
    Press Space for next page <carbon:arrow-right class="inline"/>
  </span>
</div>
`
