package config

import (
	"os"
	"strings"

	"github.com/fredcamaral/pptx2slidev/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment
// overrides. The values mirror the styling the converter applied as
// literals historically: the seriph theme, an Unsplash background, and
// image bounds that keep any source resolution inside the slide canvas.
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Deck: entities.DeckConfig{
			Theme:       getEnvOrDefault("PPTX2SLIDEV_THEME", "seriph"),
			Background:  getEnvOrDefault("PPTX2SLIDEV_BACKGROUND", "https://source.unsplash.com/1920x1080/?presentation"),
			Author:      getEnvOrDefault("PPTX2SLIDEV_AUTHOR", ""),
			Tagline:     "",
			Links:       getEnvSliceOrDefault("PPTX2SLIDEV_LINKS", nil),
			Fonts:       nil,
			Transition:  "slide-left",
			Highlighter: "shiki",
		},
		Images: entities.ImagesConfig{
			MaxWidthPercent: 80,
			MaxHeightPx:     400,
			MarginPx:        20,
		},
		Output: entities.OutputConfig{
			FileName: "slides.md",
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
