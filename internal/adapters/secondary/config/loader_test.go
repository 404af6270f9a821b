package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "seriph", cfg.Deck.Theme)
	assert.Equal(t, 80, cfg.Images.MaxWidthPercent)
	assert.Equal(t, 400, cfg.Images.MaxHeightPx)
	assert.Equal(t, "slides.md", cfg.Output.FileName)
}

func TestGetDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PPTX2SLIDEV_THEME", "apple-basic")
	t.Setenv("PPTX2SLIDEV_AUTHOR", "Jane Speaker")
	t.Setenv("PPTX2SLIDEV_LINKS", "a.com, b.com")

	cfg := GetDefaultConfig()
	assert.Equal(t, "apple-basic", cfg.Deck.Theme)
	assert.Equal(t, "Jane Speaker", cfg.Deck.Author)
	assert.Equal(t, []string{"a.com", "b.com"}, cfg.Deck.Links)
}

func TestTOMLLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing local file yields defaults", func(t *testing.T) {
		cfg, err := NewTOMLLoader().Load(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "seriph", cfg.Deck.Theme)
	})

	t.Run("local file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		local := `
[deck]
theme = "apple-basic"
author = "Jane Speaker"

[images]
max_height_px = 320
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pptx2slidev.toml"), []byte(local), 0o644))

		cfg, err := NewTOMLLoader().Load(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "apple-basic", cfg.Deck.Theme)
		assert.Equal(t, "Jane Speaker", cfg.Deck.Author)
		assert.Equal(t, 320, cfg.Images.MaxHeightPx)
		// Untouched fields keep their defaults.
		assert.Equal(t, 80, cfg.Images.MaxWidthPercent)
		assert.Equal(t, "slides.md", cfg.Output.FileName)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		dir := t.TempDir()
		local := "[images]\nmax_width_percent = 500\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pptx2slidev.toml"), []byte(local), 0o644))

		_, err := NewTOMLLoader().Load(ctx, dir)
		assert.Error(t, err)
	})

	t.Run("malformed TOML is rejected", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pptx2slidev.toml"), []byte("deck = {"), 0o644))

		_, err := NewTOMLLoader().Load(ctx, dir)
		assert.Error(t, err)
	})
}
