package variant

import (
	"github.com/phoenix-ui/phoenix/merge"
	"github.com/phoenix-ui/phoenix/style"
)

// Variants turns a selection into classes. *Set implements it.
type Variants interface {
	Classes(p Props) string
}

// Func adapts a plain function to Variants.
type Func func(p Props) string

// Classes calls f.
func (f Func) Classes(p Props) string { return f(p) }

// Overrider is implemented by Variants that can resolve a partial
// selection without defaults. Breakpoint overrides use it when present.
type Overrider interface {
	Override(p Props) string
}

// Adapter converts a breakpoint override value into a selection. It
// receives the base selection so it can carry values the override omits.
type Adapter[V any] func(value V, base Props) Props

// Class resolves base through v, then each present breakpoint of
// responsive in ascending order: the value is adapted, resolved, and every
// resulting class gets the breakpoint prefix. The combined list is merged.
// With a nil adapter, values are used as selections when V is Props and
// skipped otherwise.
func Class[V any](v Variants, base Props, responsive style.Responsive[V], adapt Adapter[V]) string {
	out := []string{v.Classes(base)}
	responsive.Each(func(bp style.Breakpoint, value V) {
		var p Props
		if adapt != nil {
			p = adapt(value, base)
		} else if sel, ok := any(value).(Props); ok {
			p = sel
		} else {
			return
		}

		var classes string
		if o, ok := v.(Overrider); ok {
			classes = o.Override(p)
		} else {
			classes = v.Classes(p)
		}
		out = append(out, style.Prefix(bp, classes)...)
	})
	return merge.CN(out)
}
