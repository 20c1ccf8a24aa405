package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		axis Axis
		side Side
		s    Space
		want string
	}{
		{AxisMargin, SideAll, SpaceNone, "ui:m-0"},
		{AxisMargin, SideAll, SpaceXS, "ui:m-1"},
		{AxisMargin, SideX, SpaceSM, "ui:mx-2"},
		{AxisMargin, SideLeft, Space3XL, "ui:ml-16"},
		{AxisPadding, SideAll, SpaceMD, "ui:p-4"},
		{AxisPadding, SideY, SpaceLG, "ui:py-6"},
		{AxisPadding, SideBottom, SpaceXL, "ui:pb-8"},
		{AxisPadding, SideRight, Space2XL, "ui:pr-12"},
		{AxisGap, SideAll, SpaceSM, "ui:gap-2"},
		{AxisGap, SideX, SpaceMD, "ui:gap-x-4"},
		{AxisGap, SideY, SpaceXS, "ui:gap-y-1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := Lookup(tt.axis, tt.side, tt.s)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupMiss(t *testing.T) {
	_, ok := Lookup(AxisMargin, SideAll, Space("4xl"))
	assert.False(t, ok)

	_, ok = Lookup(AxisGap, SideTop, SpaceSM)
	assert.False(t, ok, "gap has no per-side tables")
}

func TestEverySpaceHasAllSidesClass(t *testing.T) {
	for _, s := range Spaces() {
		got := Resolve(SpacingSpec{M: All(s)}, nil)
		assert.Equal(t, "ui:m-"+s.Step(), got)
		assert.Len(t, strings.Fields(got), 1)
	}
}

func TestAxisClasses(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		assert.Empty(t, AxisClasses(AxisMargin, AxisSpace{}, ""))
	})

	t.Run("shorthand with breakpoint", func(t *testing.T) {
		assert.Equal(t, []string{"lg:ui:m-4"}, AxisClasses(AxisMargin, All(SpaceMD), BreakpointLG))
	})

	t.Run("object without breakpoint", func(t *testing.T) {
		got := AxisClasses(AxisPadding, AxisSpace{X: SpaceSM, B: SpaceLG}, "")
		assert.Equal(t, []string{"ui:px-2", "ui:pb-6"}, got)
	})

	t.Run("object with breakpoint", func(t *testing.T) {
		got := AxisClasses(AxisMargin, AxisSpace{All: SpaceXS, Y: SpaceMD}, BreakpointMD)
		assert.Equal(t, []string{"md:ui:m-1", "md:ui:my-4"}, got)
	})

	t.Run("all and x both emitted", func(t *testing.T) {
		got := AxisClasses(AxisMargin, AxisSpace{All: SpaceMD, X: SpaceSM}, "")
		assert.Equal(t, []string{"ui:m-4", "ui:mx-2"}, got)
	})

	t.Run("every side in order", func(t *testing.T) {
		v := AxisSpace{L: SpaceXS, B: SpaceXS, R: SpaceXS, T: SpaceXS, Y: SpaceXS, X: SpaceXS, All: SpaceXS}
		got := AxisClasses(AxisPadding, v, "")
		assert.Equal(t, []string{"ui:p-1", "ui:px-1", "ui:py-1", "ui:pt-1", "ui:pr-1", "ui:pb-1", "ui:pl-1"}, got)
	})
}

func TestGapClasses(t *testing.T) {
	assert.Equal(t, []string{"ui:gap-2"}, GapClasses(Gap(SpaceSM), ""))
	assert.Equal(t, []string{"sm:ui:gap-4", "sm:ui:gap-y-1"}, GapClasses(GapSpace{All: SpaceMD, Y: SpaceXS}, BreakpointSM))
	assert.Empty(t, GapClasses(GapSpace{}, ""))
}

func TestResolve(t *testing.T) {
	t.Run("padding axis object", func(t *testing.T) {
		got := Resolve(SpacingSpec{P: AxisSpace{X: SpaceSM, B: SpaceLG}}, nil)
		assert.Equal(t, "ui:px-2 ui:pb-6", got)
	})

	t.Run("base with breakpoint overrides", func(t *testing.T) {
		got := Resolve(
			SpacingSpec{M: All(SpaceXS)},
			Responsive[SpacingSpec]{
				BreakpointLG: {P: AxisSpace{X: SpaceXL}},
				BreakpointMD: {M: AxisSpace{Y: SpaceLG}},
			},
		)
		assert.Equal(t, "ui:m-1 md:ui:my-6 lg:ui:px-8", got)
	})

	t.Run("margin before padding", func(t *testing.T) {
		got := Resolve(SpacingSpec{M: AxisSpace{Y: SpaceSM}, P: All(SpaceMD)}, nil)
		assert.Equal(t, "ui:my-2 ui:p-4", got)
	})

	t.Run("nothing selected", func(t *testing.T) {
		assert.Equal(t, "", Resolve(SpacingSpec{}, Responsive[SpacingSpec]{BreakpointSM: {}}))
	})

	t.Run("unknown breakpoint ignored", func(t *testing.T) {
		got := Resolve(SpacingSpec{}, Responsive[SpacingSpec]{"xxl": {M: All(SpaceSM)}})
		assert.Equal(t, "", got)
	})

	t.Run("breakpoint scoped class is prefix plus base class", func(t *testing.T) {
		for _, bp := range Breakpoints() {
			for _, s := range Spaces() {
				got := Resolve(SpacingSpec{}, Responsive[SpacingSpec]{bp: {P: All(s)}})
				base := Resolve(SpacingSpec{P: All(s)}, nil)
				assert.Equal(t, string(bp)+":"+base, got)
			}
		}
	})
}

func TestResponsiveClass(t *testing.T) {
	t.Run("nil map", func(t *testing.T) {
		assert.Equal(t, "", ResponsiveClass(nil))
	})

	t.Run("single class per breakpoint", func(t *testing.T) {
		got := ResponsiveClass(Responsive[[]string]{
			BreakpointSM: {"ui:text-body-sm"},
			BreakpointMD: {"ui:text-body-md"},
			BreakpointLG: {"ui:text-body-lg"},
		})
		assert.Equal(t, "sm:ui:text-body-sm md:ui:text-body-md lg:ui:text-body-lg", got)
	})

	t.Run("lists and multi-class entries", func(t *testing.T) {
		got := ResponsiveClass(Responsive[[]string]{
			BreakpointLG: {"ui:text-body-lg", "ui:uppercase"},
			BreakpointSM: {"ui:text-body-sm ui:font-medium"},
		})
		assert.Equal(t, "sm:ui:text-body-sm sm:ui:font-medium lg:ui:text-body-lg lg:ui:uppercase", got)
	})

	t.Run("empty entries ignored", func(t *testing.T) {
		got := ResponsiveClass(Responsive[[]string]{
			BreakpointSM: {""},
			BreakpointMD: {},
			BreakpointLG: {"ui:text-body-lg"},
		})
		assert.Equal(t, "lg:ui:text-body-lg", got)
	})
}

func TestClassesCoversTables(t *testing.T) {
	all := Classes()
	// 7 margin + 7 padding + 3 gap tables, 8 tokens each.
	assert.Len(t, all, (7+7+3)*len(Spaces()))
	assert.Contains(t, all, "ui:gap-y-16")
	assert.Contains(t, all, "ui:mt-0")
}

func TestBreakpoints(t *testing.T) {
	assert.Equal(t, []Breakpoint{BreakpointSM, BreakpointMD, BreakpointLG}, Breakpoints())
	assert.Equal(t, "md:", BreakpointMD.Prefix())
	assert.Equal(t, "", Breakpoint("").Prefix())
	assert.True(t, BreakpointLG.Valid())
	assert.False(t, Breakpoint("xl").Valid())
	assert.True(t, Space2XL.Valid())
	assert.False(t, Space("huge").Valid())
}
