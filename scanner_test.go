package phoenix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClassesFromLine(t *testing.T) {
	type lit struct {
		value  string
		column int
		source string
	}
	tests := []struct {
		name string
		line string
		want []lit
	}{
		{
			name: "class attribute",
			line: `<div class="ui:p-2 ui:m-4">`,
			want: []lit{{"ui:p-2 ui:m-4", 13, "class attribute"}},
		},
		{
			name: "class expression with string",
			line: `<span class={ "ui:text-h1" }>`,
			want: []lit{{"ui:text-h1", 16, "class expression"}},
		},
		{
			name: "templ.Classes skips non literals",
			line: `<div class={ templ.Classes("ui:flex", cls, "ui:gap-2") }>`,
			want: []lit{{"ui:flex", 29, "templ.Classes"}, {"ui:gap-2", 45, "templ.Classes"}},
		},
		{
			name: "templ.KV only first argument",
			line: `<a class={ templ.KV("ui:font-bold", active) }>`,
			want: []lit{{"ui:font-bold", 22, "templ.KV"}},
		},
		{
			name: "merge.CN arguments",
			line: `return merge.CN("ui:p-2", extra, "ui:p-4")`,
			want: []lit{{"ui:p-2", 18, "merge.CN"}, {"ui:p-4", 35, "merge.CN"}},
		},
		{
			name: "struct field",
			line: "\tClass: \"ui:bg-ui-primary\",",
			want: []lit{{"ui:bg-ui-primary", 10, "Class field"}},
		},
		{
			name: "comment skipped",
			line: `// <div class="ui:p-2">`,
		},
		{
			name: "empty attribute skipped",
			line: `<div class="">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 7, "a.templ")
			require.Len(t, refs, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w.value, refs[i].Value)
				assert.Equal(t, w.column, refs[i].Location.Column)
				assert.Equal(t, w.source, refs[i].Source)
				assert.Equal(t, 7, refs[i].Location.Line)
				assert.Equal(t, tt.line, refs[i].Location.Text)
			}
		})
	}
}

func TestSplitTemplArgs(t *testing.T) {
	args := splitTemplArgs(`"a, b", f(x, y), "c"`, 10)
	require.Len(t, args, 3)
	assert.Equal(t, `"a, b"`, args[0].text)
	assert.Equal(t, 10, args[0].offset)
	assert.Equal(t, ` f(x, y)`, args[1].text)
	assert.Equal(t, ` "c"`, args[2].text)

	value, offset, ok := stringLiteral(args[2])
	require.True(t, ok)
	assert.Equal(t, "c", value)
	assert.Equal(t, 10+18, offset)

	_, _, ok = stringLiteral(args[1])
	assert.False(t, ok)
}

func TestIsTemplGenerated(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"ui/button_templ.go", true},
		{"ui/button.templ.go", true},
		{"ui/button.templ", false},
		{"ui/button.go", false},
		{"internal/templates/handler.go", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, isTemplGenerated(tt.path))
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	assert.True(t, shouldSkipFile("internal/web/sidebar_templ.go"))
	assert.False(t, shouldSkipFile("internal/web/sidebar.templ"))
	assert.False(t, shouldSkipFile(filepath.Join(t.TempDir(), "page.go")))
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"views/page.templ":    "<div class=\"ui:p-2\">\n\t<span class={ \"ui:text-h1\" }></span>\n</div>\n",
		"views/page_templ.go": "var _ = `<div class=\"ui:p-2\">`\n",
		"views/widget.go":     "var w = ui.BoxProps{Class: \"ui:m-4\"}\n",
		"views/readme.md":     "<div class=\"ui:p-9\">\n",
	})

	refs, stats, err := ScanFiles([]string{filepath.Join(dir, "**/*.{templ,go}")}, false)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)

	var values []string
	for _, r := range refs {
		values = append(values, r.Value)
	}
	assert.ElementsMatch(t, []string{"ui:p-2", "ui:text-h1", "ui:m-4"}, values)
}

func TestScanFilesBadPattern(t *testing.T) {
	_, _, err := ScanFiles([]string{"[unterminated"}, false)
	require.Error(t, err)
}
