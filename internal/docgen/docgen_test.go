package docgen

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/ui"
)

func entry(t *testing.T, name string) ui.Entry {
	t.Helper()
	e, ok := ui.Find(name)
	require.True(t, ok, name)
	return e
}

func TestNewComponent(t *testing.T) {
	c := NewComponent(entry(t, "Button"))
	assert.Equal(t, "Button", c.Name)
	assert.Equal(t, "stories/Button.stories.html", c.Story)
	assert.Equal(t, "guides/Button.md", c.Guide)
	assert.Equal(t, 9, c.Compounds)
	require.Len(t, c.Variants, 4)
	assert.Equal(t, Variant{Name: "size", Values: []string{"sm", "md", "lg"}, Default: "md"}, c.Variants[0])
	assert.Contains(t, c.Classes, "ui:bg-ui-primary")
}

func TestWriteGuide(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGuide(&buf, NewComponent(entry(t, "Stack"))))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Stack\n"))
	assert.Contains(t, out, "| `direction` | `horizontal`, `vertical` | `horizontal` |")
	assert.Contains(t, out, "| `crossAxisAlignment` | `stretch`, `start`, `center`, `end`, `baseline` | - |")
	assert.Contains(t, out, "## Classes\n\n- **Layout**: `ui:flex`, `ui:flex-col`")
	assert.Contains(t, out, "[the story](../stories/Stack.stories.html)")
	assert.Contains(t, out, "## Accessibility\n\n- ")
}

func TestWriteGuideWithoutVariants(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGuide(&buf, Component{Name: "Empty", Story: StoryPath("Empty")}))
	out := buf.String()
	assert.Contains(t, out, "Empty has no variants.")
	assert.Contains(t, out, "_Describe when to reach for Empty._")
}

func TestStory(t *testing.T) {
	out, err := markup.String(context.Background(), Story(entry(t, "Text"), StoryOptions{Stylesheet: "/ui.css"}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<html lang=\"en\">"))
	assert.Contains(t, out, `<link rel="stylesheet" href="/ui.css">`)

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	var figures, h1 int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "figure":
				figures++
			case "h1":
				h1++
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	// 13 typography + 8 tones + truncate + uppercase, plus the default example.
	assert.Equal(t, 13+8+1+1+1, figures)
	// The page title plus the h1 typography example.
	assert.Equal(t, 2, h1)
	assert.Contains(t, out, `data-variant="tone" data-value="muted"`)
}

func TestWriteManifest(t *testing.T) {
	var buf bytes.Buffer
	m := Manifest{Version: ManifestVersion, Components: []Component{NewComponent(entry(t, "Icon"))}}
	require.NoError(t, WriteManifest(&buf, m))

	var got Manifest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Components, 1)
	assert.Equal(t, "Icon", got.Components[0].Name)
	assert.Equal(t, "sm", got.Components[0].Variants[0].Default)
}
