package phoenix

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-ui/phoenix/internal/docgen"
	"github.com/phoenix-ui/phoenix/ui"
)

func TestGenerateDocs(t *testing.T) {
	dir := t.TempDir()

	result, err := GenerateDocs(DocsConfig{OutputDir: dir, Stylesheet: "/static/ui.css", Workers: 4})
	require.NoError(t, err)

	n := len(ui.Catalog())
	assert.Len(t, result.Components, n)
	assert.Equal(t, n, result.StoriesWritten)
	assert.Equal(t, n, result.GuidesWritten)
	assert.Zero(t, result.GuidesKept)

	for _, name := range result.Components {
		assert.FileExists(t, filepath.Join(dir, "stories", name+".stories.html"))
		assert.FileExists(t, filepath.Join(dir, "guides", name+".md"))
	}

	story, err := os.ReadFile(filepath.Join(dir, "stories", "Button.stories.html"))
	require.NoError(t, err)
	assert.Contains(t, string(story), `href="/static/ui.css"`)

	raw, err := os.ReadFile(result.Manifest)
	require.NoError(t, err)
	var m docgen.Manifest
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, docgen.ManifestVersion, m.Version)
	require.Len(t, m.Components, n)
	for i := 1; i < len(m.Components); i++ {
		assert.Less(t, m.Components[i-1].Name, m.Components[i].Name)
	}
}

func TestGenerateDocsKeepsGuides(t *testing.T) {
	dir := t.TempDir()
	cfg := DocsConfig{OutputDir: dir, Components: []string{"Box"}}

	_, err := GenerateDocs(cfg)
	require.NoError(t, err)

	guide := filepath.Join(dir, "guides", "Box.md")
	require.NoError(t, os.WriteFile(guide, []byte("hand written"), 0o644))

	result, err := GenerateDocs(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.GuidesKept)
	assert.Equal(t, 1, result.StoriesWritten)
	got, err := os.ReadFile(guide)
	require.NoError(t, err)
	assert.Equal(t, "hand written", string(got))

	cfg.Overwrite = true
	result, err = GenerateDocs(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.GuidesWritten)
	got, err = os.ReadFile(guide)
	require.NoError(t, err)
	assert.Contains(t, string(got), "# Box")
}

func TestGenerateDocsSelection(t *testing.T) {
	result, err := GenerateDocs(DocsConfig{OutputDir: t.TempDir(), Components: []string{"*Button"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Button", "ToggleButton"}, result.Components)

	_, err = GenerateDocs(DocsConfig{OutputDir: t.TempDir(), Components: []string{"Nope*"}})
	require.Error(t, err)

	_, err = GenerateDocs(DocsConfig{OutputDir: t.TempDir(), Components: []string{"[Box"}})
	require.Error(t, err)
}
