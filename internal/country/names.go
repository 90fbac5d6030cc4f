package country

import (
	"regexp"
	"strings"
)

// qualifiers are dropped before comparing normalized names. Longer phrases
// come first so "islamic republic of" is removed before "republic of".
var qualifiers = []string{
	"plurinational state of",
	"bolivarian republic of",
	"islamic republic of",
	"united republic of",
	"democratic people's republic of",
	"democratic republic of",
	"federated states of",
	"kingdom of",
	"republic of",
	"state of",
	"province of china",
	"the",
}

var (
	parenRe    = regexp.MustCompile(`\([^)]*\)`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

	// qualifierRes match each qualifier as whole words.
	qualifierRes = func() []*regexp.Regexp {
		out := make([]*regexp.Regexp, 0, len(qualifiers))
		for _, q := range qualifiers {
			out = append(out, regexp.MustCompile(`(^|[^a-z'])`+regexp.QuoteMeta(q)+`($|[^a-z'])`))
		}
		return out
	}()
)

// synonyms pairs common English names with their ISO 3166-1 names. Keys and
// values are compared case-insensitively in either direction.
var synonyms = [][2]string{
	{"South Korea", "Korea, Republic of"},
	{"North Korea", "Korea (Democratic People's Republic of)"},
	{"North Korea", "Korea, Democratic People's Republic of"},
	{"Russia", "Russian Federation"},
	{"Syria", "Syrian Arab Republic"},
	{"Vietnam", "Viet Nam"},
	{"Laos", "Lao People's Democratic Republic"},
	{"Turkey", "Türkiye"},
	{"Ivory Coast", "Côte d'Ivoire"},
	{"Czech Republic", "Czechia"},
	{"Cape Verde", "Cabo Verde"},
	{"Swaziland", "Eswatini"},
	{"Macedonia", "North Macedonia"},
	{"Burma", "Myanmar"},
	{"East Timor", "Timor-Leste"},
	{"UK", "United Kingdom of Great Britain and Northern Ireland"},
	{"Britain", "United Kingdom of Great Britain and Northern Ireland"},
	{"USA", "United States of America"},
	{"UAE", "United Arab Emirates"},
	{"Vatican", "Holy See"},
	{"The Gambia", "Gambia"},
	{"Palestine", "Palestine, State of"},
}

// normalizeName lowercases, drops parenthesized text and qualifier phrases,
// then strips everything that is not a letter or digit.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = parenRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "’", "'")
	for _, re := range qualifierRes {
		for re.MatchString(s) {
			s = re.ReplaceAllString(s, "$1 $2")
		}
	}
	return nonAlnumRe.ReplaceAllString(s, "")
}

func isSynonym(a, b string) bool {
	for _, pair := range synonyms {
		if (strings.EqualFold(a, pair[0]) && strings.EqualFold(b, pair[1])) ||
			(strings.EqualFold(a, pair[1]) && strings.EqualFold(b, pair[0])) {
			return true
		}
	}
	return false
}

// NameMatches reports whether a guide's country name is a plausible rendering
// of the ISO name: exact match, substring in either direction, equal after
// normalization, or a listed synonym.
func NameMatches(name, isoName string) bool {
	name = strings.TrimSpace(name)
	isoName = strings.TrimSpace(isoName)
	if name == "" || isoName == "" {
		return false
	}
	if name == isoName {
		return true
	}
	ln, li := strings.ToLower(name), strings.ToLower(isoName)
	if strings.Contains(ln, li) || strings.Contains(li, ln) {
		return true
	}
	if nn := normalizeName(name); nn != "" && nn == normalizeName(isoName) {
		return true
	}
	return isSynonym(name, isoName)
}
