package country

import "strings"

const regionalIndicatorA = 0x1F1E6

// FlagGlyph converts a two-letter code into its pair of regional indicator
// symbols. Input is uppercased first, so "us" and "US" give the same glyph.
// Anything other than two ASCII letters yields "".
func FlagGlyph(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < 2; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(rune(regionalIndicatorA + int(c-'A')))
	}
	return b.String()
}
