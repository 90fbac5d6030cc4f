// Package source loads the static data files audited by the checkers.
//
// Loaders are lenient: absent fields decode to empty values and record order
// follows the file. Strictness lives in the checkers.
package source

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrNotFound wraps a missing input file.
var ErrNotFound = errors.New("source not found")

// SurahLabel is a chapter reference as written in the data: a number or a
// transliterated name.
type SurahLabel string

// UnmarshalYAML accepts both numeric and string scalars.
func (l *SurahLabel) UnmarshalYAML(n *yaml.Node) error {
	*l = SurahLabel(n.Value)
	return nil
}

// QuranicReference is a citation attached to a name record.
type QuranicReference struct {
	Surah SurahLabel `yaml:"surah"`
	Ayah  string     `yaml:"ayah"`
}

// NameRecord is one entry of the names database.
type NameRecord struct {
	Slug              string             `yaml:"slug"`
	IsQuranic         bool               `yaml:"isQuranic"`
	Themes            []string           `yaml:"themes"`
	QuranicReferences []QuranicReference `yaml:"quranicReferences"`
}

// NameSource is the ordered record list of one input file.
type NameSource struct {
	Name    string
	Records []NameRecord
}

// AliasEntry maps a spelling variant to a canonical slug.
type AliasEntry struct {
	Variant   string
	Canonical string
}

// MappingRecord associates a Western given name with candidate slugs.
type MappingRecord struct {
	WesternKey      string
	MuslimNameSlugs []string
}

// LegalGuideEntry is one country of the legal name-change guide.
type LegalGuideEntry struct {
	Country     string `yaml:"country"`
	CountryCode string `yaml:"countryCode"`
	Flag        string `yaml:"flag"`
}
