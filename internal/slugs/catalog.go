// Package slugs checks that name identifiers referenced from secondary
// datasets resolve to real name records.
package slugs

import (
	"fmt"
	"sort"
	"strings"

	"namecheck/internal/finding"
	"namecheck/internal/source"
)

// Normalize is the comparison form of a slug.
func Normalize(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// entry is the winning declaration of a slug.
type entry struct {
	source string
	record source.NameRecord
}

// Catalog is the canonical slug set merged from ordered sources. The first
// declaration of a slug wins.
type Catalog struct {
	order      []string
	bySlug     map[string]entry
	duplicates []finding.Finding
}

// NewCatalog merges sources in order. Every slug declared more than once
// produces one DUPLICATE_SLUG finding naming each declaring source.
func NewCatalog(sources []source.NameSource) *Catalog {
	c := &Catalog{bySlug: make(map[string]entry)}
	seenIn := make(map[string][]string)

	for _, src := range sources {
		for _, rec := range src.Records {
			slug := Normalize(rec.Slug)
			if slug == "" {
				continue
			}
			seenIn[slug] = append(seenIn[slug], src.Name)
			if _, ok := c.bySlug[slug]; ok {
				continue
			}
			c.bySlug[slug] = entry{source: src.Name, record: rec}
			c.order = append(c.order, slug)
		}
	}

	for _, slug := range c.order {
		where := seenIn[slug]
		if len(where) < 2 {
			continue
		}
		c.duplicates = append(c.duplicates, finding.New(
			finding.DuplicateSlug,
			slug,
			fmt.Sprintf("declared %d times; keeping the definition from %s", len(where), where[0]),
			where...,
		))
	}
	return c
}

// Len returns the number of distinct slugs.
func (c *Catalog) Len() int { return len(c.order) }

// Has reports whether slug is in the canonical set.
func (c *Catalog) Has(slug string) bool {
	_, ok := c.bySlug[Normalize(slug)]
	return ok
}

// Lookup returns the winning record for slug and the source it came from.
func (c *Catalog) Lookup(slug string) (source.NameRecord, string, bool) {
	e, ok := c.bySlug[Normalize(slug)]
	return e.record, e.source, ok
}

// Records returns the winning records in first-seen order.
func (c *Catalog) Records() []source.NameRecord {
	out := make([]source.NameRecord, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.bySlug[slug].record)
	}
	return out
}

// Duplicates returns the DUPLICATE_SLUG findings in first-seen order.
func (c *Catalog) Duplicates() []finding.Finding {
	return c.duplicates
}

// EmptyReferences reports Quranic names that carry no citations, sorted by
// slug.
func (c *Catalog) EmptyReferences() []finding.Finding {
	var slugs []string
	for _, rec := range c.Records() {
		if rec.IsQuranic && len(rec.QuranicReferences) == 0 {
			slugs = append(slugs, Normalize(rec.Slug))
		}
	}
	sort.Strings(slugs)

	out := make([]finding.Finding, 0, len(slugs))
	for _, slug := range slugs {
		_, src, _ := c.Lookup(slug)
		out = append(out, finding.New(
			finding.EmptyReferenceList,
			slug,
			"marked isQuranic but has no quranicReferences",
			src,
		))
	}
	return out
}
