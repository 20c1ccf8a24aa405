package style

import "sort"

// ClassPrefix is the utility prefix every design-system class carries.
const ClassPrefix = "ui:"

type tableKey struct {
	axis Axis
	side Side
}

// tables is populated once at package init and only read afterwards.
var tables = buildTables()

var (
	boxSides = []Side{SideAll, SideX, SideY, SideTop, SideRight, SideBottom, SideLeft}
	gapSides = []Side{SideAll, SideX, SideY}
)

func buildTables() map[tableKey]map[Space]string {
	t := make(map[tableKey]map[Space]string)
	add := func(axis Axis, sides []Side) {
		for _, side := range sides {
			row := make(map[Space]string, len(spaceSteps))
			for _, e := range spaceSteps {
				row[e.space] = ClassPrefix + utility(axis, side) + "-" + e.step
			}
			t[tableKey{axis, side}] = row
		}
	}
	add(AxisMargin, boxSides)
	add(AxisPadding, boxSides)
	add(AxisGap, gapSides)
	return t
}

// utility returns the bare utility name for an axis/side pair:
// "m", "mx", "pt", "gap", "gap-x".
func utility(axis Axis, side Side) string {
	if side == SideAll {
		return string(axis)
	}
	if axis == AxisGap {
		return string(axis) + "-" + string(side)
	}
	return string(axis) + string(side)
}

// Lookup returns the class for a space token on the given axis and side.
// A miss (unknown token, or a side the axis has no table for) returns false.
func Lookup(axis Axis, side Side, s Space) (string, bool) {
	row, ok := tables[tableKey{axis, side}]
	if !ok {
		return "", false
	}
	cls, ok := row[s]
	return cls, ok
}

// Classes lists every class of every lookup table, sorted.
func Classes() []string {
	var out []string
	for _, row := range tables {
		for _, cls := range row {
			out = append(out, cls)
		}
	}
	sort.Strings(out)
	return out
}
