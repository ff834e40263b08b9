// Package vocabulary provides the static skill catalog and its
// case-insensitive surface-form lookup.
package vocabulary

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Collision records a variation string claimed by more than one
// canonical skill. The first registration wins; later claims are kept
// here for inspection instead of silently overwriting.
type Collision struct {
	Variation string
	Kept      string
	Rejected  string
}

func (c Collision) String() string {
	return fmt.Sprintf("variation %q kept for %q, rejected for %q", c.Variation, c.Kept, c.Rejected)
}

// Vocabulary is the read-only skill catalog index. Safe for concurrent
// use after construction.
type Vocabulary struct {
	entries    []SkillEntry
	byName     map[string]int    // lowercased canonical name -> entries index
	bySurface  map[string]string // lowercased surface form -> canonical name
	acronyms   map[string]string // upper-case token -> canonical name
	collisions []Collision
}

// New builds the vocabulary from the builtin catalog.
func New() *Vocabulary {
	return FromEntries(builtinCatalog, builtinAcronyms)
}

// FromEntries builds a vocabulary from an explicit entry list. Entries
// are indexed in the order given; when two canonical skills claim the
// same surface form the first registration wins and the collision is
// logged and recorded.
func FromEntries(entries []SkillEntry, acronyms map[string]string) *Vocabulary {
	v := &Vocabulary{
		entries:   make([]SkillEntry, len(entries)),
		byName:    make(map[string]int, len(entries)),
		bySurface: make(map[string]string),
		acronyms:  make(map[string]string, len(acronyms)),
	}
	copy(v.entries, entries)

	for i, e := range v.entries {
		nameKey := strings.ToLower(e.Name)
		if prev, dup := v.byName[nameKey]; dup {
			log.Printf("[VOCAB] duplicate canonical name %q (entries %d and %d), keeping first", e.Name, prev, i)
			continue
		}
		v.byName[nameKey] = i
		v.index(e.Name, e.Name)
		for _, variation := range e.Variations {
			v.index(variation, e.Name)
		}
	}

	// Deterministic acronym registration regardless of map ordering.
	keys := make([]string, 0, len(acronyms))
	for k := range acronyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		canonical := acronyms[k]
		if _, known := v.byName[strings.ToLower(canonical)]; !known {
			log.Printf("[VOCAB] acronym %q maps to unknown skill %q, skipping", k, canonical)
			continue
		}
		v.acronyms[strings.ToUpper(k)] = canonical
	}

	return v
}

// index registers one surface form for a canonical name, applying the
// first-wins collision policy.
func (v *Vocabulary) index(surface, canonical string) {
	key := strings.ToLower(strings.TrimSpace(surface))
	if key == "" {
		return
	}
	if kept, exists := v.bySurface[key]; exists {
		if kept == canonical {
			return
		}
		c := Collision{Variation: surface, Kept: kept, Rejected: canonical}
		v.collisions = append(v.collisions, c)
		log.Printf("[VOCAB] %s", c)
		return
	}
	v.bySurface[key] = canonical
}

// Canonicalize resolves a surface form to its canonical skill name.
// Lookup is case-insensitive; unknown input returns ok=false.
func (v *Vocabulary) Canonicalize(surface string) (string, bool) {
	canonical, ok := v.bySurface[strings.ToLower(strings.TrimSpace(surface))]
	return canonical, ok
}

// ResolveAcronym resolves a curated abbreviation (e.g. "ML") to its
// canonical name. The token must match the acronym exactly ignoring
// case.
func (v *Vocabulary) ResolveAcronym(token string) (string, bool) {
	canonical, ok := v.acronyms[strings.ToUpper(strings.TrimSpace(token))]
	return canonical, ok
}

// CategoryOf returns the category of a canonical skill name, or
// CategoryUnknown when the name is not in the catalog.
func (v *Vocabulary) CategoryOf(canonical string) types.SkillCategory {
	i, ok := v.byName[strings.ToLower(canonical)]
	if !ok {
		return types.CategoryUnknown
	}
	return v.entries[i].Category
}

// Entries returns the catalog entries in registration order.
func (v *Vocabulary) Entries() []SkillEntry {
	out := make([]SkillEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// CanonicalNames returns all canonical names, sorted.
func (v *Vocabulary) CanonicalNames() []string {
	names := make([]string, 0, len(v.byName))
	for _, i := range v.byName {
		names = append(names, v.entries[i].Name)
	}
	sort.Strings(names)
	return names
}

// Collisions returns the variation collisions detected at construction.
func (v *Vocabulary) Collisions() []Collision {
	out := make([]Collision, len(v.collisions))
	copy(out, v.collisions)
	return out
}
