package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phoenix-ui/phoenix/merge"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		family string
		want   Category
	}{
		{"display", CategoryLayout},
		{"px", CategorySpacing},
		{"m", CategorySpacing},
		{"mt", CategorySpacing},
		{"gap-y", CategorySpacing},
		{"font-size", CategoryTypography},
		{"text-color", CategoryVisual},
		{"border-w-b", CategoryVisual},
		{"rounded-tl", CategoryVisual},
		{"col-start", CategoryLayout},
		{"ring-w", CategoryEffects},
		{"arbitrary:mask-type", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryOf(tt.family))
		})
	}
}

func TestCategorize(t *testing.T) {
	got := Categorize(merge.NewMerger(), []string{
		"ui:text-ui-fg", "ui:p-2", "ui:flex", "phx-input", "ui:text-h1", "ui:px-4", "ui:shadow-ring",
	})
	assert.Equal(t, []CategoryClasses{
		{CategoryLayout, []string{"ui:flex"}},
		{CategorySpacing, []string{"ui:p-2", "ui:px-4"}},
		{CategoryTypography, []string{"ui:text-h1"}},
		{CategoryVisual, []string{"ui:text-ui-fg"}},
		{CategoryEffects, []string{"ui:shadow-ring"}},
		{CategoryOther, []string{"phx-input"}},
	}, got)
}
