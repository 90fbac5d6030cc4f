package quran

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var citationRe = regexp.MustCompile(`^(\d+):(\d+)(?:-(\d+))?$`)

// ErrMalformed is returned by ParseRef when a citation does not have the
// "surah:ayah[-ayah]" shape.
var ErrMalformed = errors.New("malformed citation")

// Ref is a parsed verse or verse range.
type Ref struct {
	Surah     int
	AyahStart int
	AyahEnd   int
}

// String returns "s:a" for a single verse and "s:a-b" for a range.
func (r Ref) String() string {
	if r.AyahEnd == r.AyahStart {
		return fmt.Sprintf("%d:%d", r.Surah, r.AyahStart)
	}
	return fmt.Sprintf("%d:%d-%d", r.Surah, r.AyahStart, r.AyahEnd)
}

// ParseRef parses "s:a" or "s:a-b". Without an explicit end, AyahEnd equals
// AyahStart. No range checking is done here.
func ParseRef(ayahStr string) (Ref, error) {
	m := citationRe.FindStringSubmatch(strings.TrimSpace(ayahStr))
	if m == nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, ayahStr)
	}
	var r Ref
	var err error
	if r.Surah, err = strconv.Atoi(m[1]); err != nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, ayahStr)
	}
	if r.AyahStart, err = strconv.Atoi(m[2]); err != nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, ayahStr)
	}
	r.AyahEnd = r.AyahStart
	if m[3] != "" {
		if r.AyahEnd, err = strconv.Atoi(m[3]); err != nil {
			return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, ayahStr)
		}
	}
	return r, nil
}

// ResolveSurah maps a label to a chapter number. Numeric labels, bare or
// prefixed ("Surah 19"), must lie in 1..114; names and their documented
// variants are matched after apostrophe folding, diacritic stripping and case
// folding, with or without their apostrophes.
func ResolveSurah(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(label); err == nil {
		return inRange(n)
	}
	key := normalizeName(label)
	if n, err := strconv.Atoi(key); err == nil {
		return inRange(n)
	}
	if n, ok := byName[key]; ok {
		return n, true
	}
	n, ok := byName[dropApostrophes(key)]
	return n, ok
}

func inRange(n int) (int, bool) {
	if n < 1 || n > len(surahs) {
		return 0, false
	}
	return n, true
}

// Verdict is the outcome of validating one citation. Ref is set whenever the
// citation parsed, valid or not.
type Verdict struct {
	Valid  bool
	Ref    Ref
	Reason string
}

func invalid(r Ref, format string, args ...any) Verdict {
	return Verdict{Ref: r, Reason: fmt.Sprintf(format, args...)}
}

// Validate decides whether surahLabel + ayahStr denote a real verse or range.
// The surah embedded in ayahStr must agree with the resolved label.
func Validate(surahLabel, ayahStr string) Verdict {
	n, ok := ResolveSurah(surahLabel)
	r, err := ParseRef(ayahStr)
	if !ok {
		return invalid(r, "unknown surah label %q", surahLabel)
	}
	if err != nil {
		return invalid(Ref{}, "malformed citation %q (expected surah:ayah[-ayah])", ayahStr)
	}
	if r.Surah != n {
		return invalid(r, "surah mismatch: label %q is surah %d but citation %q names surah %d", surahLabel, n, ayahStr, r.Surah)
	}

	verses := VersesIn(n)
	switch {
	case r.AyahStart < 1:
		return invalid(r, "ayah %d out of range: surah %d (%s) starts at 1", r.AyahStart, n, Name(n))
	case r.AyahStart > verses:
		return invalid(r, "ayah %d out of range: surah %d (%s) has %d verses", r.AyahStart, n, Name(n), verses)
	case r.AyahEnd > verses:
		return invalid(r, "range end %d out of range: surah %d (%s) has %d verses", r.AyahEnd, n, Name(n), verses)
	case r.AyahEnd < r.AyahStart:
		return invalid(r, "range end %d precedes start %d", r.AyahEnd, r.AyahStart)
	}
	return Verdict{Valid: true, Ref: r}
}
