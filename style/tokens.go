// Package style holds the design-system spacing vocabulary: space tokens,
// breakpoints, the static token-to-class lookup tables and the resolver that
// turns spacing selections into breakpoint-prefixed class lists.
//
// Every class produced here carries the "ui:" utility prefix, and breakpoint
// scoped classes are emitted as "<bp>:ui:<utility>", e.g. "md:ui:px-2".
package style

// Space is a spacing magnitude from the fixed design scale.
type Space string

// Space scale, smallest to largest.
const (
	SpaceNone Space = "none"
	SpaceXS   Space = "xs"
	SpaceSM   Space = "sm"
	SpaceMD   Space = "md"
	SpaceLG   Space = "lg"
	SpaceXL   Space = "xl"
	Space2XL  Space = "2xl"
	Space3XL  Space = "3xl"
)

// spaceSteps maps each token to its utility step. Order matches Spaces().
var spaceSteps = []struct {
	space Space
	step  string
}{
	{SpaceNone, "0"},
	{SpaceXS, "1"},
	{SpaceSM, "2"},
	{SpaceMD, "4"},
	{SpaceLG, "6"},
	{SpaceXL, "8"},
	{Space2XL, "12"},
	{Space3XL, "16"},
}

// Spaces returns every space token in ascending order.
func Spaces() []Space {
	out := make([]Space, len(spaceSteps))
	for i, s := range spaceSteps {
		out[i] = s.space
	}
	return out
}

// Valid reports whether s belongs to the scale.
func (s Space) Valid() bool {
	_, ok := stepFor(s)
	return ok
}

// Step returns the numeric utility step for s ("4" for md).
func (s Space) Step() string {
	step, _ := stepFor(s)
	return step
}

func stepFor(s Space) (string, bool) {
	for _, e := range spaceSteps {
		if e.space == s {
			return e.step, true
		}
	}
	return "", false
}

// Breakpoint is a named viewport-width threshold.
type Breakpoint string

// Breakpoints in ascending viewport order.
const (
	BreakpointSM Breakpoint = "sm"
	BreakpointMD Breakpoint = "md"
	BreakpointLG Breakpoint = "lg"
)

var breakpoints = []Breakpoint{BreakpointSM, BreakpointMD, BreakpointLG}

// Breakpoints returns the breakpoints in their fixed ascending order. Any
// output that iterates breakpoints uses this order.
func Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), breakpoints...)
}

// Valid reports whether b is one of the known breakpoints.
func (b Breakpoint) Valid() bool {
	for _, known := range breakpoints {
		if b == known {
			return true
		}
	}
	return false
}

// Prefix returns the class selector prefix for b, e.g. "md:".
// The empty breakpoint has no prefix.
func (b Breakpoint) Prefix() string {
	if b == "" {
		return ""
	}
	return string(b) + ":"
}

// Axis selects which lookup table family a class comes from.
type Axis string

// Axes with lookup tables.
const (
	AxisMargin  Axis = "m"
	AxisPadding Axis = "p"
	AxisGap     Axis = "gap"
)

// Side narrows an axis to a direction. SideAll targets every side.
type Side string

// Sides in emission order.
const (
	SideAll    Side = "all"
	SideX      Side = "x"
	SideY      Side = "y"
	SideTop    Side = "t"
	SideRight  Side = "r"
	SideBottom Side = "b"
	SideLeft   Side = "l"
)
