package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Join flattens values into a single class string the way clsx does:
// strings are split on whitespace, slices are walked recursively, maps and
// templ.KeyValue pairs contribute their keys when the value is true, and
// nil, booleans and empty strings are dropped. No conflict resolution
// happens here.
func Join(values ...any) string {
	var out []string
	for _, v := range values {
		out = appendClasses(out, v)
	}
	return strings.Join(out, " ")
}

func appendClasses(out []string, v any) []string {
	switch v := v.(type) {
	case nil, bool:
		return out
	case string:
		return append(out, strings.Fields(v)...)
	case []string:
		for _, s := range v {
			out = append(out, strings.Fields(s)...)
		}
		return out
	case []any:
		for _, item := range v {
			out = appendClasses(out, item)
		}
		return out
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k, on := range v {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, strings.Fields(k)...)
		}
		return out
	case templ.KeyValue[string, bool]:
		if v.Value {
			out = append(out, strings.Fields(v.Key)...)
		}
		return out
	case []templ.KeyValue[string, bool]:
		for _, kv := range v {
			out = appendClasses(out, kv)
		}
		return out
	case templ.CSSClass:
		return append(out, strings.Fields(v.ClassName())...)
	case fmt.Stringer:
		return append(out, strings.Fields(v.String())...)
	}
	return out
}
