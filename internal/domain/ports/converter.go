package ports

import (
	"context"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
)

// SlideExtractor walks a parsed presentation and produces the ordered
// slide records, writing extracted images into outputDir as a side
// effect. Image references inside the records point at files that exist
// on disk by the time Extract returns.
type SlideExtractor interface {
	Extract(ctx context.Context, src *SourcePresentation, outputDir string) ([]entities.SlideRecord, error)
}

// DeckRenderer composes the final deck document from the slide records
// and the deck metadata. The result is the complete on-disk content,
// frontmatter included.
type DeckRenderer interface {
	Render(meta entities.DeckMetadata, records []entities.SlideRecord) (string, error)
}

// ConfigLoader loads converter configuration.
type ConfigLoader interface {
	// Load returns the effective configuration for a run, merging the
	// optional local file over the defaults.
	Load(ctx context.Context, dir string) (*entities.Config, error)
}
