package phoenix

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/phoenix-ui/phoenix/internal/docgen"
	"github.com/phoenix-ui/phoenix/ui"
)

// DocsConfig configures GenerateDocs.
type DocsConfig struct {
	OutputDir  string
	Components []string // doublestar patterns over component names; empty selects all
	Stylesheet string   // linked from every story page when set
	Overwrite  bool     // rewrite guides that already exist
	Verbose    bool
	Workers    int // concurrent renders; 0 means one per component
}

// DocsResult reports what GenerateDocs wrote.
type DocsResult struct {
	Components     []string
	StoriesWritten int
	GuidesWritten  int
	GuidesKept     int
	Manifest       string
}

// GenerateDocs writes stories/<Name>.stories.html and guides/<Name>.md for
// every selected catalog component, then manifest.json. Existing guides are
// kept unless Overwrite is set.
func GenerateDocs(config DocsConfig) (*DocsResult, error) {
	return GenerateDocsContext(context.Background(), config)
}

// GenerateDocsContext is GenerateDocs with a context for cancellation.
func GenerateDocsContext(ctx context.Context, config DocsConfig) (*DocsResult, error) {
	entries, err := selectEntries(config.Components)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no components match %v", config.Components)
	}

	for _, dir := range []string{"stories", "guides"} {
		if err := os.MkdirAll(filepath.Join(config.OutputDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	result := &DocsResult{}
	components := make([]docgen.Component, len(entries))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if config.Workers > 0 {
		g.SetLimit(config.Workers)
	}
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			c := docgen.NewComponent(e)
			components[i] = c

			if err := writeStory(ctx, config, e, c); err != nil {
				return err
			}
			wrote, err := writeGuide(config, c)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			result.StoriesWritten++
			if wrote {
				result.GuidesWritten++
			} else {
				result.GuidesKept++
			}
			if config.Verbose {
				fmt.Printf("Documented %s\n", e.Name)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range components {
		result.Components = append(result.Components, c.Name)
	}

	result.Manifest = filepath.Join(config.OutputDir, "manifest.json")
	f, err := os.Create(result.Manifest)
	if err != nil {
		return nil, fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()
	if err := docgen.WriteManifest(f, docgen.Manifest{Version: docgen.ManifestVersion, Components: components}); err != nil {
		return nil, err
	}
	if config.Verbose {
		fmt.Printf("Wrote %s\n", GetRelativePath(result.Manifest))
	}
	return result, f.Close()
}

// selectEntries returns catalog entries whose name matches any pattern,
// sorted by name.
func selectEntries(patterns []string) ([]ui.Entry, error) {
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid component pattern %q", p)
		}
	}

	var out []ui.Entry
	for _, e := range ui.Catalog() {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, e.Name); ok {
				out = append(out, e)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func writeStory(ctx context.Context, config DocsConfig, e ui.Entry, c docgen.Component) error {
	path := filepath.Join(config.OutputDir, filepath.FromSlash(c.Story))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create story %s: %w", e.Name, err)
	}
	defer f.Close()

	if err := docgen.Story(e, docgen.StoryOptions{Stylesheet: config.Stylesheet}).Render(ctx, f); err != nil {
		return fmt.Errorf("render story %s: %w", e.Name, err)
	}
	return f.Close()
}

// writeGuide reports whether it wrote the guide.
func writeGuide(config DocsConfig, c docgen.Component) (bool, error) {
	path := filepath.Join(config.OutputDir, filepath.FromSlash(c.Guide))
	if !config.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("stat guide %s: %w", c.Name, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("create guide %s: %w", c.Name, err)
	}
	defer f.Close()
	if err := docgen.WriteGuide(f, c); err != nil {
		return false, err
	}
	return true, f.Close()
}
