package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/variant"
)

func TestCatalog(t *testing.T) {
	entries := Catalog()
	require.Len(t, entries, 13)

	seen := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Name], "duplicate entry %s", e.Name)
		seen[e.Name] = true

		t.Run(e.Name, func(t *testing.T) {
			require.NotNil(t, e.Variants)
			require.NotNil(t, e.Sample)
			assert.NotEmpty(t, e.Summary)
			assert.NotEmpty(t, e.WhenToUse)
			assert.NotEmpty(t, e.Accessibility)

			_, err := markup.String(context.Background(), e.Sample(nil))
			require.NoError(t, err)
			for _, v := range e.Variants.Variants {
				for _, o := range v.Options {
					p := variant.Props{v.Name: o.Value}
					require.NoError(t, e.Variants.Validate(p))
					_, err := markup.String(context.Background(), e.Sample(p))
					require.NoError(t, err, "%s=%s", v.Name, o.Value)
				}
			}
		})
	}
}

func TestFind(t *testing.T) {
	e, ok := Find("Button")
	require.True(t, ok)
	assert.Equal(t, "Button", e.Variants.Name)

	_, ok = Find("Carousel")
	assert.False(t, ok)
}

func TestVocabulary(t *testing.T) {
	vocab, err := Vocabulary(context.Background())
	require.NoError(t, err)
	assert.IsNonDecreasing(t, vocab)
	assert.Subset(t, vocab, []string{
		"ui:m-4", "ui:gap-y-16",
		"phx-input", "phx-toggle-button", "phx-radio-inner-circle",
		"ui:bg-ui-primary", "ui:icon-size-lg", "ui:rounded-none",
	})
}
