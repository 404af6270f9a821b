package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheckOn(t *testing.T, content string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "slides.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var out bytes.Buffer
	checkCmd.SetOut(&out)
	checkCmd.SetErr(&out)
	err := runCheck(checkCmd, []string{path})
	return out.String(), err
}

func TestRunCheck(t *testing.T) {
	t.Run("valid deck", func(t *testing.T) {
		out, err := runCheckOn(t, "---\ntheme: seriph\ntitle: Demo\n---\n\n# First\n\n- a\n\n---\n\n# Second\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Sections: 2")
		assert.Contains(t, out, "Theme:    seriph")
		assert.Contains(t, out, "Deck looks valid.")
	})

	t.Run("deck with unescaped brackets", func(t *testing.T) {
		out, err := runCheckOn(t, "---\ntheme: seriph\n---\n\n# Bad <T> slide\n")
		require.Error(t, err)
		assert.Contains(t, out, "unescaped angle brackets")
	})

	t.Run("missing file", func(t *testing.T) {
		err := runCheck(checkCmd, []string{"/does/not/exist.md"})
		assert.Error(t, err)
	})
}
