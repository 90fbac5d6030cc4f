package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecheck/internal/finding"
	"namecheck/internal/source"
)

func TestFlagGlyph(t *testing.T) {
	assert.Equal(t, "\U0001F1FA\U0001F1F8", FlagGlyph("US"))
	assert.Equal(t, FlagGlyph("US"), FlagGlyph("us"))
	assert.Equal(t, "🇧🇷", FlagGlyph("BR"))
	assert.Equal(t, "🇲🇾", FlagGlyph("MY"))
	assert.Equal(t, "", FlagGlyph("USA"))
	assert.Equal(t, "", FlagGlyph("U1"))
	assert.Equal(t, "", FlagGlyph(""))
}

func TestNameMatches(t *testing.T) {
	tests := []struct {
		name, iso string
		want      bool
	}{
		{"Brazil", "Brazil", true},
		{"Iran", "Iran (Islamic Republic of)", true},
		{"United Kingdom", "United Kingdom of Great Britain and Northern Ireland", true},
		{"Bolivia", "Bolivia, Plurinational State of", true},
		{"Venezuela", "Venezuela (Bolivarian Republic of)", true},
		{"Republic of Moldova", "Moldova, Republic of", true},
		{"Tanzania", "Tanzania, United Republic of", true},
		{"South Korea", "Korea, Republic of", true},
		{"Korea, Republic of", "South Korea", true},
		{"Türkiye", "Turkey", true},
		{"Ivory Coast", "Côte d'Ivoire", true},
		{"Germany", "France", false},
		{"Niger", "Nigeria", true},
		{"", "Brazil", false},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.iso, func(t *testing.T) {
			assert.Equal(t, tt.want, NameMatches(tt.name, tt.iso))
		})
	}
}

func isoTable() *Table {
	return NewTable([]ISOCountry{
		{Name: "Brazil", Alpha2: "BR"},
		{Name: "United States of America", Alpha2: "US"},
		{Name: "Malaysia", Alpha2: "MY"},
		{Name: "Korea, Republic of", Alpha2: "kr"},
	})
}

func TestChecker_BrazilIsClean(t *testing.T) {
	c := NewChecker(isoTable())
	got := c.Check([]source.LegalGuideEntry{{Country: "Brazil", CountryCode: "BR", Flag: "🇧🇷"}})
	assert.Empty(t, got)
}

func TestChecker_AccumulatesWithoutShortCircuit(t *testing.T) {
	c := NewChecker(isoTable())
	got := c.Check([]source.LegalGuideEntry{
		{Country: "Germany", CountryCode: "BR", Flag: "🇩🇪"},
		{Country: "Atlantis", CountryCode: "ZZ", Flag: "🇿🇿"},
		{Country: "South Korea", CountryCode: "KR", Flag: "🇰🇷"},
	})

	require.Len(t, got, 3)
	assert.Equal(t, finding.NameMismatch, got[0].Kind)
	assert.Equal(t, finding.FlagMismatch, got[1].Kind)
	assert.Equal(t, "Germany (BR)", got[1].Subject)
	assert.Equal(t, finding.UnknownCode, got[2].Kind)
	assert.Equal(t, "Atlantis (ZZ)", got[2].Subject)
}

func TestChecker_ExceptionCode(t *testing.T) {
	c := NewChecker(isoTable())

	ok := c.Check([]source.LegalGuideEntry{{Country: "Malaysia (Sabah & Sarawak)", CountryCode: "MY-SS", Flag: "🇲🇾"}})
	assert.Empty(t, ok)

	bad := c.Check([]source.LegalGuideEntry{{Country: "Malaysia (Sabah & Sarawak)", CountryCode: "MY-SS", Flag: "🇸🇸"}})
	require.Len(t, bad, 1)
	assert.Equal(t, finding.FlagMismatch, bad[0].Kind)
}

func TestChecker_LowercaseCodeNormalized(t *testing.T) {
	c := NewChecker(isoTable())
	got := c.Check([]source.LegalGuideEntry{{Country: "United States", CountryCode: "us", Flag: FlagGlyph("US")}})
	assert.Empty(t, got)
}

func TestDuplicates(t *testing.T) {
	entries := []source.LegalGuideEntry{
		{Country: "Narnia", CountryCode: "XX", Flag: FlagGlyph("XX")},
		{Country: "Brazil", CountryCode: "BR", Flag: "🇧🇷"},
		{Country: "Oz", CountryCode: "XX", Flag: FlagGlyph("XX")},
	}

	got := Duplicates(entries)
	require.Len(t, got, 1)
	assert.Equal(t, finding.DuplicateCode, got[0].Kind)
	assert.Equal(t, "XX", got[0].Subject)
	assert.Equal(t, []string{"Narnia", "Oz"}, got[0].Related)
	assert.Contains(t, got[0].Message, "Narnia")
	assert.Contains(t, got[0].Message, "Oz")

	all := NewChecker(isoTable()).Check(entries)
	var dup int
	for _, f := range all {
		if f.Kind == finding.DuplicateCode {
			dup++
		}
	}
	assert.Equal(t, 1, dup)
}
