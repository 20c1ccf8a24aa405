package ui

import (
	"github.com/a-h/templ"

	"github.com/phoenix-ui/phoenix/internal/markup"
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
)

// SpacingProps selects margin and padding only.
type SpacingProps struct {
	M          style.AxisSpace
	P          style.AxisSpace
	Responsive style.Responsive[style.SpacingSpec]
}

func (p SpacingProps) class() string {
	return merge.CN(style.Resolve(style.SpacingSpec{M: p.M, P: p.P}, p.Responsive))
}

// Spacing renders a div carrying nothing but spacing classes.
func Spacing(p SpacingProps, children ...templ.Component) templ.Component {
	return markup.El("div", []markup.Attr{markup.Opt("class", p.class())}, children...)
}
