package style

import "strings"

// AxisSpace selects spacing per side. Zero-valued fields are absent.
// All is checked independently of the narrower sides, so setting both All
// and X yields two classes; merging decides which one wins.
type AxisSpace struct {
	All Space `json:"all,omitempty" yaml:"all,omitempty"`
	X   Space `json:"x,omitempty" yaml:"x,omitempty"`
	Y   Space `json:"y,omitempty" yaml:"y,omitempty"`
	T   Space `json:"t,omitempty" yaml:"t,omitempty"`
	R   Space `json:"r,omitempty" yaml:"r,omitempty"`
	B   Space `json:"b,omitempty" yaml:"b,omitempty"`
	L   Space `json:"l,omitempty" yaml:"l,omitempty"`
}

// All is the bare-token form: the same space on every side.
func All(s Space) AxisSpace {
	return AxisSpace{All: s}
}

// IsZero reports whether no side is set.
func (a AxisSpace) IsZero() bool {
	return a == AxisSpace{}
}

func (a AxisSpace) sides() []struct {
	side  Side
	space Space
} {
	return []struct {
		side  Side
		space Space
	}{
		{SideAll, a.All}, {SideX, a.X}, {SideY, a.Y},
		{SideTop, a.T}, {SideRight, a.R}, {SideBottom, a.B}, {SideLeft, a.L},
	}
}

// GapSpace selects gap spacing between children.
type GapSpace struct {
	All Space `json:"all,omitempty" yaml:"all,omitempty"`
	X   Space `json:"x,omitempty" yaml:"x,omitempty"`
	Y   Space `json:"y,omitempty" yaml:"y,omitempty"`
}

// Gap is the bare-token form of GapSpace.
func Gap(s Space) GapSpace {
	return GapSpace{All: s}
}

// IsZero reports whether no gap is set.
func (g GapSpace) IsZero() bool {
	return g == GapSpace{}
}

// SpacingSpec is a margin and padding selection.
type SpacingSpec struct {
	M AxisSpace `json:"m,omitempty" yaml:"m,omitempty"`
	P AxisSpace `json:"p,omitempty" yaml:"p,omitempty"`
}

// IsZero reports whether neither margin nor padding is set.
func (s SpacingSpec) IsZero() bool {
	return s.M.IsZero() && s.P.IsZero()
}

// Responsive is a sparse per-breakpoint override map. Iteration always
// follows Breakpoints(); unknown keys are ignored.
type Responsive[T any] map[Breakpoint]T

// Each calls fn for every present breakpoint in ascending order.
func (r Responsive[T]) Each(fn func(bp Breakpoint, v T)) {
	for _, bp := range breakpoints {
		if v, ok := r[bp]; ok {
			fn(bp, v)
		}
	}
}

// AxisClasses expands an axis selection into classes, in the order
// all, x, y, t, r, b, l. A non-empty bp prefixes every class.
func AxisClasses(axis Axis, v AxisSpace, bp Breakpoint) []string {
	var out []string
	for _, e := range v.sides() {
		if e.space == "" {
			continue
		}
		if cls, ok := Lookup(axis, e.side, e.space); ok {
			out = append(out, bp.Prefix()+cls)
		}
	}
	return out
}

// GapClasses expands a gap selection in the order all, x, y.
func GapClasses(v GapSpace, bp Breakpoint) []string {
	return AxisClasses(AxisGap, AxisSpace{All: v.All, X: v.X, Y: v.Y}, bp)
}

// SpacingClasses expands margin then padding.
func SpacingClasses(v SpacingSpec, bp Breakpoint) []string {
	out := AxisClasses(AxisMargin, v.M, bp)
	return append(out, AxisClasses(AxisPadding, v.P, bp)...)
}

// Prefix returns classes with bp's selector prepended to each one.
// Entries may hold several space-separated classes; empty ones are dropped.
func Prefix(bp Breakpoint, classes ...string) []string {
	var out []string
	for _, entry := range classes {
		for _, cls := range strings.Fields(entry) {
			out = append(out, bp.Prefix()+cls)
		}
	}
	return out
}

// ResponsiveClass prefixes each breakpoint's classes and joins them in
// breakpoint order. A nil map yields "".
func ResponsiveClass(m Responsive[[]string]) string {
	var out []string
	m.Each(func(bp Breakpoint, classes []string) {
		out = append(out, Prefix(bp, classes...)...)
	})
	return strings.Join(out, " ")
}

// Resolve produces the raw class string for a base spacing selection plus
// breakpoint overrides: the base classes first, then each present
// breakpoint's classes grouped together in ascending breakpoint order.
// No conflict merging happens here.
func Resolve(base SpacingSpec, responsive Responsive[SpacingSpec]) string {
	out := SpacingClasses(base, "")
	responsive.Each(func(bp Breakpoint, spec SpacingSpec) {
		out = append(out, SpacingClasses(spec, bp)...)
	})
	return strings.Join(out, " ")
}
