package quran

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// apostrophes lists the characters transliterations use for 'ayn, hamza and
// plain apostrophes. All of them fold to ASCII '\''.
var apostrophes = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"ʻ", "'", // modifier letter turned comma
	"ʿ", "'", // modifier letter left half ring (ayn)
	"ʾ", "'", // modifier letter right half ring (hamza)
	"`", "'",
	"´", "'", // acute accent
	"′", "'", // prime
)

var labelPrefixes = []string{"surah-", "surat-", "sura-"}

// FoldApostrophes replaces every apostrophe variant with ASCII '\''.
func FoldApostrophes(s string) string {
	return apostrophes.Replace(s)
}

func dropApostrophes(key string) string {
	return strings.ReplaceAll(key, "'", "")
}

// stripDiacritics removes combining marks after canonical decomposition, so
// "Fātiḥah" becomes "Fatihah".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeName produces the lookup key for a chapter name.
func normalizeName(s string) string {
	s = strings.ToLower(stripDiacritics(FoldApostrophes(strings.TrimSpace(s))))

	var b strings.Builder
	dash := false
	for _, r := range s {
		if r == ' ' || r == '-' || r == '_' || r == '\t' {
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = true
			continue
		}
		dash = false
		b.WriteRune(r)
	}
	key := strings.TrimSuffix(b.String(), "-")
	for _, p := range labelPrefixes {
		if strings.HasPrefix(key, p) {
			return key[len(p):]
		}
	}
	return key
}
