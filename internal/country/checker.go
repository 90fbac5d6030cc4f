// Package country fact-checks the legal-guide table against the ISO 3166-1
// country list.
package country

import (
	"fmt"
	"strings"

	"namecheck/internal/finding"
	"namecheck/internal/source"
)

// ExceptionCode is the one non-ISO code accepted in the legal guide. Its flag
// is the flag of its alpha-2 prefix.
const ExceptionCode = "MY-SS"

// ISOCountry is one row of the ISO 3166-1 reference list.
type ISOCountry struct {
	Name   string `json:"name"`
	Alpha2 string `json:"alpha-2"`
}

// Table indexes the ISO list by uppercase alpha-2 code.
type Table struct {
	byCode map[string]ISOCountry
}

// NewTable builds a lookup table. Codes are normalized the same way the
// legal-guide loader normalizes them; the first row for a code wins.
func NewTable(countries []ISOCountry) *Table {
	t := &Table{byCode: make(map[string]ISOCountry, len(countries))}
	for _, c := range countries {
		code := source.NormalizeCode(c.Alpha2)
		if code == "" {
			continue
		}
		if _, ok := t.byCode[code]; ok {
			continue
		}
		c.Alpha2 = code
		t.byCode[code] = c
	}
	return t
}

// Len returns the number of indexed codes.
func (t *Table) Len() int { return len(t.byCode) }

// Lookup returns the ISO row for code.
func (t *Table) Lookup(code string) (ISOCountry, bool) {
	c, ok := t.byCode[source.NormalizeCode(code)]
	return c, ok
}

// Checker validates legal-guide entries against an ISO table.
type Checker struct {
	table *Table
}

// NewChecker creates a checker over table.
func NewChecker(table *Table) *Checker {
	return &Checker{table: table}
}

// Check runs every per-entry check without short-circuiting, then reports
// codes shared by more than one entry.
func (c *Checker) Check(entries []source.LegalGuideEntry) []finding.Finding {
	var out []finding.Finding
	for _, e := range entries {
		out = append(out, c.checkEntry(e)...)
	}
	return append(out, Duplicates(entries)...)
}

func (c *Checker) checkEntry(e source.LegalGuideEntry) []finding.Finding {
	var out []finding.Finding
	code := source.NormalizeCode(e.CountryCode)
	subject := fmt.Sprintf("%s (%s)", e.Country, code)

	flagCode := code
	if code == ExceptionCode {
		flagCode = strings.SplitN(code, "-", 2)[0]
	} else if iso, ok := c.table.Lookup(code); !ok {
		out = append(out, finding.New(finding.UnknownCode, subject,
			fmt.Sprintf("country code %q is not in the ISO 3166-1 list", code)))
	} else if !NameMatches(e.Country, iso.Name) {
		out = append(out, finding.New(finding.NameMismatch, subject,
			fmt.Sprintf("name %q does not match ISO name %q", e.Country, iso.Name)))
	}

	want := FlagGlyph(flagCode)
	if e.Flag != want {
		msg := fmt.Sprintf("flag %q does not match %q derived from %s", e.Flag, want, flagCode)
		if want == "" {
			msg = fmt.Sprintf("no flag can be derived from code %q", code)
		}
		out = append(out, finding.New(finding.FlagMismatch, subject, msg))
	}
	return out
}

// Duplicates reports one DUPLICATE_CODE finding per code used by more than
// one entry, in first-seen order, naming every country that uses it.
func Duplicates(entries []source.LegalGuideEntry) []finding.Finding {
	var order []string
	names := make(map[string][]string)
	for _, e := range entries {
		code := source.NormalizeCode(e.CountryCode)
		if code == "" {
			continue
		}
		if _, ok := names[code]; !ok {
			order = append(order, code)
		}
		names[code] = append(names[code], e.Country)
	}

	var out []finding.Finding
	for _, code := range order {
		if len(names[code]) < 2 {
			continue
		}
		out = append(out, finding.New(finding.DuplicateCode, code,
			fmt.Sprintf("used by %d entries: %s", len(names[code]), strings.Join(names[code], ", ")),
			names[code]...))
	}
	return out
}
