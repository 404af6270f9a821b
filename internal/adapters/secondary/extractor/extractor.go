// Package extractor turns a parsed presentation into the normalized
// slide records the renderer consumes, persisting embedded images along
// the way.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	// Registered so DecodeConfig can sniff the formats PPTX files
	// commonly embed.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

// escaper rewrites angle brackets to their entity forms so the rendered
// deck never contains characters Slidev's Vue layer would parse as
// component syntax. Applied exactly once, when text enters the model;
// reapplying it is a no-op because the output contains no brackets.
var escaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Service implements ports.SlideExtractor.
type Service struct {
	logger *slog.Logger
}

var _ ports.SlideExtractor = (*Service)(nil)

// NewService creates a slide extractor. A nil logger falls back to
// slog.Default().
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Extract walks the slides in source order and produces one record per
// slide. Embedded images are written into outputDir before their file
// names enter the record, so every reference the renderer sees is
// already on disk. An unreadable image blob is logged and skipped; it
// never aborts the remaining shapes or slides.
func (s *Service) Extract(ctx context.Context, src *ports.SourcePresentation, outputDir string) ([]entities.SlideRecord, error) {
	if src == nil {
		return nil, fmt.Errorf("nil source presentation")
	}

	records := make([]entities.SlideRecord, 0, len(src.Slides))
	for i, slide := range src.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record := s.extractSlide(slide, i+1, outputDir)
		record.Type = record.Classify()
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("slide %d: invalid record: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// extractSlide builds one record from the slide's shapes in document
// order.
func (s *Service) extractSlide(slide ports.SourceSlide, index int, outputDir string) entities.SlideRecord {
	record := entities.SlideRecord{Index: index}

	for _, shape := range slide.Shapes {
		switch shape.Kind {
		case ports.ShapeText:
			if shape.IsTitle {
				if record.Title == "" {
					record.Title = escapeText(shape.Paragraphs)
				}
				continue
			}
			s.extractBody(&record, shape)
		case ports.ShapeImage:
			s.extractImage(&record, shape.Image, outputDir)
		case ports.ShapeVideo:
			record.Videos++
		case ports.ShapeTable:
			record.Tables++
		default:
			// Unknown shapes are ignored so unfamiliar decks still
			// convert.
		}
	}

	record.Notes = normalizeLines(slide.Notes)
	return record
}

// extractBody appends one bullet line per non-empty paragraph. Levels
// deeper than one step below the previous line are clamped so the
// flattened hierarchy stays renderable.
func (s *Service) extractBody(record *entities.SlideRecord, shape ports.SourceShape) {
	prev := -1
	if n := len(record.Content); n > 0 {
		prev = record.Content[n-1].Level
	}

	for _, para := range shape.Paragraphs {
		text := normalize(para.Text)
		if text == "" {
			continue
		}
		level := para.Level
		if level > prev+1 {
			level = prev + 1
		}
		record.Content = append(record.Content, entities.BulletLine{Level: level, Text: text})
		prev = level
	}
}

// extractImage persists one embedded image under the deterministic
// slide_<N>_image_<M>.<ext> scheme and records its file name. Failures
// are logged as warnings and skipped.
func (s *Service) extractImage(record *entities.SlideRecord, img ports.ImageBlob, outputDir string) {
	if img == nil {
		return
	}

	data, err := img.Bytes()
	if err != nil {
		s.logger.Warn("could not extract image",
			slog.Int("slide", record.Index),
			slog.String("part", img.Name()),
			slog.String("error", err.Error()))
		return
	}
	if len(data) == 0 {
		s.logger.Warn("empty image blob skipped",
			slog.Int("slide", record.Index),
			slog.String("part", img.Name()))
		return
	}

	name := fmt.Sprintf("slide_%d_image_%d%s", record.Index, len(record.Images)+1, imageExt(data, img.Name()))
	if err := os.WriteFile(filepath.Join(outputDir, name), data, 0o644); err != nil {
		s.logger.Warn("could not save image",
			slog.Int("slide", record.Index),
			slog.String("file", name),
			slog.String("error", err.Error()))
		return
	}
	record.Images = append(record.Images, name)
}

// imageExt sniffs the blob's real format, falling back to the source
// part's extension and finally to .png.
func imageExt(data []byte, partName string) string {
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		switch format {
		case "jpeg":
			return ".jpg"
		case "png", "gif", "bmp", "tiff", "webp":
			return "." + format
		}
	}

	if ext := strings.ToLower(filepath.Ext(partName)); ext != "" && ext != ".bin" {
		return ext
	}
	return ".png"
}

// escapeText normalizes and escapes the concatenated paragraphs of a
// title placeholder into a single line.
func escapeText(paragraphs []ports.SourceParagraph) string {
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		parts = append(parts, p.Text)
	}
	return normalize(strings.Join(parts, " "))
}

// normalize collapses all whitespace runs, including embedded newlines,
// to single spaces, trims the ends, and applies the entity escaping.
func normalize(text string) string {
	return escaper.Replace(strings.Join(strings.Fields(text), " "))
}

// normalizeLines applies normalize per line, keeping the line structure
// of multi-paragraph speaker notes.
func normalizeLines(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if n := normalize(line); n != "" {
			lines = append(lines, n)
		}
	}
	return strings.Join(lines, "\n")
}
