package slugs

import (
	"fmt"
	"sort"

	"namecheck/internal/finding"
	"namecheck/internal/source"
)

// Resolver resolves identifiers against a catalog, directly or through one
// alias hop.
//
// Alias chains are not followed: with a -> b and b -> c, "a" resolves only if
// "b" itself is a catalog slug.
type Resolver struct {
	catalog *Catalog
	aliases map[string]string
}

// NewResolver builds a resolver. When a variant appears more than once the
// first entry wins.
func NewResolver(catalog *Catalog, aliases []source.AliasEntry) *Resolver {
	r := &Resolver{catalog: catalog, aliases: make(map[string]string, len(aliases))}
	for _, a := range aliases {
		v := Normalize(a.Variant)
		if _, ok := r.aliases[v]; ok || v == "" {
			continue
		}
		r.aliases[v] = Normalize(a.Canonical)
	}
	return r
}

// Resolves reports whether id names a real record.
func (r *Resolver) Resolves(id string) bool {
	id = Normalize(id)
	if r.catalog.Has(id) {
		return true
	}
	target, ok := r.aliases[id]
	return ok && r.catalog.Has(target)
}

// Missing reports every mapping target that fails to resolve, deduplicated
// and sorted alphabetically. Each finding lists the western keys that
// reference the target.
func (r *Resolver) Missing(mappings []source.MappingRecord) []finding.Finding {
	referencedBy := make(map[string][]string)
	for _, m := range mappings {
		for _, raw := range m.MuslimNameSlugs {
			id := Normalize(raw)
			if id == "" || r.Resolves(id) {
				continue
			}
			keys := referencedBy[id]
			if len(keys) == 0 || keys[len(keys)-1] != m.WesternKey {
				referencedBy[id] = append(keys, m.WesternKey)
			}
		}
	}

	ids := make([]string, 0, len(referencedBy))
	for id := range referencedBy {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]finding.Finding, 0, len(ids))
	for _, id := range ids {
		msg := "does not resolve to a name record"
		if target, ok := r.aliases[id]; ok {
			msg = fmt.Sprintf("alias target %q does not resolve to a name record", target)
		}
		out = append(out, finding.New(finding.MissingMappingTarget, id, msg, referencedBy[id]...))
	}
	return out
}

// DanglingAliases reports alias entries whose canonical slug is not in the
// catalog, sorted by variant.
func (r *Resolver) DanglingAliases() []finding.Finding {
	var variants []string
	for v, target := range r.aliases {
		if !r.catalog.Has(target) {
			variants = append(variants, v)
		}
	}
	sort.Strings(variants)

	out := make([]finding.Finding, 0, len(variants))
	for _, v := range variants {
		out = append(out, finding.New(
			finding.MissingMappingTarget,
			"alias:"+v,
			fmt.Sprintf("alias points at %q, which is not a name record", r.aliases[v]),
		))
	}
	return out
}
