// Package audit runs the checkers: each one loads its own sources, validates
// them and adds findings to a report.
package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"namecheck/internal/country"
	"namecheck/internal/finding"
	"namecheck/internal/quran"
	"namecheck/internal/slugs"
	"namecheck/internal/source"
)

// Paths locates the input files of a run.
type Paths struct {
	Names       []string
	Aliases     string
	Mappings    string
	LegalGuides string
}

// CountryList supplies the ISO 3166-1 reference list.
type CountryList interface {
	Load(ctx context.Context) ([]country.ISOCountry, error)
}

// Auditor holds the inputs shared by the checkers of one run.
type Auditor struct {
	Paths     Paths
	Countries CountryList
	Logger    *zap.Logger
}

// Reporter receives findings and item counts.
type Reporter interface {
	Add(findings ...finding.Finding)
	Checked(what string, n int)
}

func (a *Auditor) log() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *Auditor) loadNames() ([]source.NameSource, error) {
	if len(a.Paths.Names) == 0 {
		return nil, fmt.Errorf("no name sources configured")
	}
	var out []source.NameSource
	for _, p := range a.Paths.Names {
		srcs, err := source.LoadNames(p)
		if err != nil {
			return nil, fmt.Errorf("load names %s: %w", p, err)
		}
		for _, s := range srcs {
			a.log().Debug("loaded names", zap.String("source", s.Name), zap.Int("records", len(s.Records)))
		}
		out = append(out, srcs...)
	}
	return out, nil
}

// QuranReferences validates every citation of every name record, including
// records shadowed by an earlier declaration of the same slug.
func (a *Auditor) QuranReferences(ctx context.Context, rep Reporter) error {
	sources, err := a.loadNames()
	if err != nil {
		return err
	}

	var records, refs int
	for _, src := range sources {
		for _, rec := range src.Records {
			records++
			for _, ref := range rec.QuranicReferences {
				refs++
				v := quran.Validate(string(ref.Surah), ref.Ayah)
				if v.Valid {
					continue
				}
				rep.Add(finding.New(finding.InvalidReference, referenceSubject(rec.Slug, ref, v), v.Reason, src.Name))
			}
		}
	}
	rep.Checked("name records", records)
	rep.Checked("quranic references", refs)
	a.log().Info("checked quranic references", zap.Int("records", records), zap.Int("references", refs))
	return ctx.Err()
}

// referenceSubject names a citation by its parsed form when it has one and by
// its raw label and text otherwise.
func referenceSubject(slug string, ref source.QuranicReference, v quran.Verdict) string {
	if v.Ref.Surah > 0 {
		return fmt.Sprintf("%s %s", slugs.Normalize(slug), v.Ref)
	}
	return fmt.Sprintf("%s [%s %s]", slugs.Normalize(slug), ref.Surah, ref.Ayah)
}

// Slugs builds the canonical slug catalog and checks the alias and mapping
// tables against it.
func (a *Auditor) Slugs(ctx context.Context, rep Reporter) error {
	sources, err := a.loadNames()
	if err != nil {
		return err
	}
	aliases, err := source.LoadAliases(a.Paths.Aliases)
	if err != nil {
		return fmt.Errorf("load aliases %s: %w", a.Paths.Aliases, err)
	}
	if len(aliases) == 0 {
		a.log().Debug("alias table empty or absent", zap.String("path", a.Paths.Aliases))
	}
	mappings, err := source.LoadMappings(a.Paths.Mappings)
	if err != nil {
		return fmt.Errorf("load mappings %s: %w", a.Paths.Mappings, err)
	}

	catalog := slugs.NewCatalog(sources)
	resolver := slugs.NewResolver(catalog, aliases)

	rep.Add(catalog.Duplicates()...)
	rep.Add(resolver.Missing(mappings)...)
	rep.Add(resolver.DanglingAliases()...)
	rep.Add(catalog.EmptyReferences()...)

	rep.Checked("slugs", catalog.Len())
	rep.Checked("aliases", len(aliases))
	rep.Checked("mappings", len(mappings))
	a.log().Info("checked slugs",
		zap.Int("slugs", catalog.Len()),
		zap.Int("aliases", len(aliases)),
		zap.Int("mappings", len(mappings)))
	return ctx.Err()
}

// LegalGuides fact-checks the legal-guide table against the ISO list. The
// list is the only input that may come from the network.
func (a *Auditor) LegalGuides(ctx context.Context, rep Reporter) error {
	entries, err := source.LoadLegalGuides(a.Paths.LegalGuides)
	if err != nil {
		return fmt.Errorf("load legal guides %s: %w", a.Paths.LegalGuides, err)
	}
	if a.Countries == nil {
		return fmt.Errorf("no country list configured")
	}
	countries, err := a.Countries.Load(ctx)
	if err != nil {
		return err
	}

	table := country.NewTable(countries)
	rep.Add(country.NewChecker(table).Check(entries)...)

	rep.Checked("legal guide entries", len(entries))
	a.log().Info("checked legal guides", zap.Int("entries", len(entries)), zap.Int("iso_countries", table.Len()))
	return nil
}
