// Package merge resolves conflicting utility classes. Later classes win
// over earlier classes of the same family under the same modifiers, and
// classes the merger cannot classify pass through untouched.
package merge

import (
	"strings"
	"sync"
)

// Conflict records a class dropped by a merge and the class that won.
type Conflict struct {
	Dropped string
	Winner  string
}

// Merger resolves class conflicts. It is safe for concurrent use.
type Merger struct {
	mu    sync.RWMutex
	sheet map[string][]string // class -> longhand properties from loaded CSS
	theme themeSets
	cache Cache
}

// Option configures a Merger.
type Option func(*Merger)

// WithCache sets the result cache. A nil cache disables caching.
func WithCache(c Cache) Option {
	return func(m *Merger) { m.cache = c }
}

// WithTheme replaces the design-system theme used to classify utilities.
func WithTheme(t Theme) Option {
	return func(m *Merger) { m.theme = t.sets() }
}

// NewMerger creates a Merger with the default theme and a SimpleCache.
func NewMerger(opts ...Option) *Merger {
	m := &Merger{
		sheet: make(map[string][]string),
		theme: DefaultTheme().sets(),
		cache: NewCache(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMerger = NewMerger()

// Default returns the shared Merger behind CN.
func Default() *Merger { return defaultMerger }

// CN joins values with Join and merges the result with the default Merger.
func CN(values ...any) string {
	return defaultMerger.CN(values...)
}

// CN joins values with Join and merges the result.
func (m *Merger) CN(values ...any) string {
	return m.Merge(Join(values...))
}

// Merge removes classes overridden by a later class of the same family and
// scope. Survivors keep the order of their final occurrence. Exact
// duplicates collapse to the last one, so Merge(x) == Merge(x + " " + x).
func (m *Merger) Merge(classList string) string {
	// lookup and store share one read lock; LoadStylesheet clears the cache
	// under the write lock
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.cache != nil {
		if v, ok := m.cache.Get(classList); ok {
			return v
		}
	}
	kept, _ := m.resolve(strings.Fields(classList))
	out := strings.Join(kept, " ")
	if m.cache != nil {
		m.cache.Set(classList, out)
	}
	return out
}

// Conflicts reports which classes of classList a merge would drop, in the
// order they appear. A repeated class reports itself as the winner.
func (m *Merger) Conflicts(classList string) []Conflict {
	m.mu.RLock()
	_, conflicts := m.resolve(strings.Fields(classList))
	m.mu.RUnlock()
	for i, j := 0, len(conflicts)-1; i < j; i, j = i+1, j-1 {
		conflicts[i], conflicts[j] = conflicts[j], conflicts[i]
	}
	return conflicts
}

// Known reports whether cls belongs to a family or a loaded stylesheet rule.
func (m *Merger) Known(cls string) bool {
	t := parseToken(cls)
	m.mu.RLock()
	_, ok := m.sheet[t.bare()]
	m.mu.RUnlock()
	if ok {
		return true
	}
	_, ok = familyOf(t.utility, &m.theme)
	return ok
}

// Family returns the conflict family of cls, ignoring its variants and
// important marker. Stylesheet classes the family table cannot classify
// have no family.
func (m *Merger) Family(cls string) (string, bool) {
	return familyOf(parseToken(cls).utility, &m.theme)
}

// resolve walks tokens from last to first. A kept token claims its conflict
// keys; an earlier token whose key is already claimed is dropped.
// Classified classes claim their family key and its narrower families.
// Stylesheet classes also claim one key per longhand property; one without
// a family is dropped only when every one of its properties is claimed.
// The caller holds m.mu.
func (m *Merger) resolve(tokens []string) ([]string, []Conflict) {
	claimed := make(map[string]string, len(tokens)*2)
	kept := make([]string, 0, len(tokens))
	var conflicts []Conflict

	for i := len(tokens) - 1; i >= 0; i-- {
		raw := tokens[i]
		if w, ok := claimed["="+raw]; ok {
			conflicts = append(conflicts, Conflict{Dropped: raw, Winner: w})
			continue
		}

		t := parseToken(raw)
		scope := t.scope()
		var keys []string
		if family, ok := familyOf(t.utility, &m.theme); ok {
			key := scope + family
			if w, ok := claimed[key]; ok {
				conflicts = append(conflicts, Conflict{Dropped: raw, Winner: w})
				continue
			}
			keys = append(keys, key)
			for _, narrower := range conflictingFamilies[family] {
				keys = append(keys, scope+narrower)
			}
		}
		if props, ok := m.sheet[t.bare()]; ok {
			propKeys := make([]string, len(props))
			for j, p := range props {
				propKeys[j] = scope + "prop:" + p
			}
			if w, ok := coveredBy(claimed, propKeys); ok {
				conflicts = append(conflicts, Conflict{Dropped: raw, Winner: w})
				continue
			}
			keys = append(keys, propKeys...)
		}

		claimed["="+raw] = raw
		for _, k := range keys {
			if _, ok := claimed[k]; !ok {
				claimed[k] = raw
			}
		}
		kept = append(kept, raw)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept, conflicts
}

// coveredBy returns the class holding the first key when every key is
// already claimed.
func coveredBy(claimed map[string]string, keys []string) (string, bool) {
	if len(keys) == 0 {
		return "", false
	}
	for _, k := range keys {
		if _, ok := claimed[k]; !ok {
			return "", false
		}
	}
	return claimed[keys[0]], true
}
