// Package services wires the conversion pipeline: read the container,
// extract slide records, render the deck, write the output tree.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
	"github.com/fredcamaral/pptx2slidev/internal/domain/ports"
)

// ConversionResult describes one completed conversion.
type ConversionResult struct {
	// ID is the run identifier from the deck metadata.
	ID string

	// SourcePath is the input file.
	SourcePath string

	// OutputPath is the written deck document.
	OutputPath string

	// Slides is the number of source-derived slides (the synthetic
	// closing section is not counted).
	Slides int

	// Images is the number of image files written alongside the deck.
	Images int
}

// ConversionService runs single-file and batch conversions. Batch mode
// is a sequential loop over the single-file entry point; nothing is
// shared between files beyond the output directory.
type ConversionService struct {
	reader    ports.PresentationReader
	extractor ports.SlideExtractor
	renderer  ports.DeckRenderer
	config    *entities.Config
	logger    *slog.Logger
}

// NewConversionService creates the conversion orchestrator. A nil
// logger falls back to slog.Default().
func NewConversionService(
	reader ports.PresentationReader,
	extractor ports.SlideExtractor,
	renderer ports.DeckRenderer,
	config *entities.Config,
	logger *slog.Logger,
) *ConversionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConversionService{
		reader:    reader,
		extractor: extractor,
		renderer:  renderer,
		config:    config,
		logger:    logger,
	}
}

// ConvertFile converts one presentation into outputDir. The deck lands
// in a per-presentation subdirectory named after the deck title, with
// its images beside it. A missing input or an unwritable output
// directory is fatal for this file; shape-level problems inside the
// pipeline are logged and skipped.
func (s *ConversionService) ConvertFile(ctx context.Context, path, outputDir string) (*ConversionResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}

	src, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	meta := entities.NewDeckMetadata(path, firstTitle(src), s.config)
	deckDir := filepath.Join(outputDir, SanitizeTitle(meta.Title))
	if err := os.MkdirAll(deckDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	records, err := s.extractor.Extract(ctx, src, deckDir)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	doc, err := s.renderer.Render(meta, records)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}

	outputPath := filepath.Join(deckDir, s.config.Output.FileName)
	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil {
		return nil, fmt.Errorf("writing deck: %w", err)
	}

	images := 0
	for _, record := range records {
		images += len(record.Images)
	}

	s.logger.Info("converted presentation",
		slog.String("run", meta.ID),
		slog.String("source", path),
		slog.String("output", outputPath),
		slog.Int("slides", len(records)),
		slog.Int("images", images))

	return &ConversionResult{
		ID:         meta.ID,
		SourcePath: path,
		OutputPath: outputPath,
		Slides:     len(records),
		Images:     images,
	}, nil
}

// ConvertBatch converts every .pptx file in srcDir, one at a time in
// name order. A file that fails to convert is logged and skipped; the
// rest of the batch still runs. The returned results cover the files
// that succeeded.
func (s *ConversionService) ConvertBatch(ctx context.Context, srcDir, outputDir string) ([]ConversionResult, error) {
	matches, err := filepath.Glob(filepath.Join(srcDir, "*.pptx"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", srcDir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .pptx files in %s", srcDir)
	}
	sort.Strings(matches)

	results := make([]ConversionResult, 0, len(matches))
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := s.ConvertFile(ctx, path, outputDir)
		if err != nil {
			s.logger.Error("conversion failed",
				slog.String("source", path),
				slog.String("error", err.Error()))
			continue
		}
		results = append(results, *result)
	}

	return results, nil
}

// firstTitle scans the first slide for its title placeholder,
// whitespace-normalized. Used only for deck metadata; record titles go
// through the extractor's full normalization.
func firstTitle(src *ports.SourcePresentation) string {
	if src == nil || len(src.Slides) == 0 {
		return ""
	}
	for _, shape := range src.Slides[0].Shapes {
		if shape.Kind == ports.ShapeText && shape.IsTitle {
			var parts []string
			for _, p := range shape.Paragraphs {
				parts = append(parts, p.Text)
			}
			return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
		}
	}
	return ""
}

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	hyphenRuns = regexp.MustCompile(`[-\s]+`)

	// stripMarks removes combining marks left over after NFD
	// decomposition, folding accented characters to their base form.
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// SanitizeTitle converts a deck title into a filesystem-safe directory
// slug: diacritics folded, non-word characters stripped, whitespace and
// hyphen runs collapsed to single hyphens, lowercased.
func SanitizeTitle(title string) string {
	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}

	clean := nonWord.ReplaceAllString(folded, "")
	clean = hyphenRuns.ReplaceAllString(clean, "-")
	clean = strings.Trim(clean, "-")
	if clean == "" {
		return "presentation"
	}
	return strings.ToLower(clean)
}
