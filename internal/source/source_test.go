package source

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadNames_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "names.yaml", `
- slug: "maryam"
  isQuranic: true
  themes: ['purity', 'devotion']
  quranicReferences:
    - surah: 19
      ayah: "19:16"
    - surah: "Ali 'Imran"
      ayah: "3:42-43"
- slug: Zaid
  isQuranic: true
  quranicReferences: [{surah: 33, ayah: "33:37"}]
- slug: amir
`)

	sources, err := LoadNames(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	recs := sources[0].Records
	require.Len(t, recs, 3)

	assert.Equal(t, "maryam", recs[0].Slug)
	assert.True(t, recs[0].IsQuranic)
	assert.Equal(t, []string{"purity", "devotion"}, recs[0].Themes)
	assert.Equal(t, []QuranicReference{
		{Surah: "19", Ayah: "19:16"},
		{Surah: "Ali 'Imran", Ayah: "3:42-43"},
	}, recs[0].QuranicReferences)

	assert.Equal(t, "Zaid", recs[1].Slug)
	assert.Equal(t, SurahLabel("33"), recs[1].QuranicReferences[0].Surah)

	// Absent fields decode to empty values.
	assert.False(t, recs[2].IsQuranic)
	assert.Empty(t, recs[2].Themes)
	assert.Empty(t, recs[2].QuranicReferences)
}

func TestLoadNames_DirectoryInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-extended.yaml", "- slug: zaid\n")
	writeFile(t, dir, "a-core.yaml", "- slug: zaid\n- slug: amina\n")
	writeFile(t, dir, "README.md", "not data")

	sources, err := LoadNames(dir)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, filepath.Join(dir, "a-core.yaml"), sources[0].Name)
	assert.Equal(t, filepath.Join(dir, "b-extended.yaml"), sources[1].Name)
}

func TestLoadNames_Missing(t *testing.T) {
	_, err := LoadNames(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadNames_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE names (slug TEXT, is_quranic INTEGER, themes TEXT)`,
		`CREATE TABLE quranic_references (name_slug TEXT, surah TEXT, ayah TEXT)`,
		`INSERT INTO names VALUES ('yahya', 1, 'life, prophethood'), ('layla', 0, NULL)`,
		`INSERT INTO quranic_references VALUES ('Yahya', '19', '19:7'), ('yahya', 'Maryam', '19:12-15')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	require.NoError(t, db.Close())

	sources, err := LoadNames(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	recs := sources[0].Records
	require.Len(t, recs, 2)

	assert.Equal(t, NameRecord{
		Slug:      "yahya",
		IsQuranic: true,
		Themes:    []string{"life", "prophethood"},
		QuranicReferences: []QuranicReference{
			{Surah: "19", Ayah: "19:7"},
			{Surah: "Maryam", Ayah: "19:12-15"},
		},
	}, recs[0])
	assert.Equal(t, "layla", recs[1].Slug)
	assert.False(t, recs[1].IsQuranic)
	assert.Empty(t, recs[1].Themes)
}

func TestLoadNames_SQLiteWithoutReferenceTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE names (slug TEXT, is_quranic INTEGER, themes TEXT)`,
		`INSERT INTO names VALUES ('adam', 1, 'knowledge')`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	require.NoError(t, db.Close())

	sources, err := LoadNames(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.Len(t, sources[0].Records, 1)
	assert.Equal(t, "adam", sources[0].Records[0].Slug)
	assert.True(t, sources[0].Records[0].IsQuranic)
	assert.Empty(t, sources[0].Records[0].QuranicReferences)
}

func TestLoadAliases(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "aliases.yaml", `
zayd: zaid
Mariam: maryam
muhammed: muhammad
`)
	aliases, err := LoadAliases(path)
	require.NoError(t, err)
	assert.Equal(t, []AliasEntry{
		{Variant: "zayd", Canonical: "zaid"},
		{Variant: "Mariam", Canonical: "maryam"},
		{Variant: "muhammed", Canonical: "muhammad"},
	}, aliases)

	missing, err := LoadAliases(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestLoadMappings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mappings.yaml", `
mary:
  muslimNames: ['maryam', 'mariam']
john:
  muslimNames:
    - yahya
peter: {}
`)
	mappings, err := LoadMappings(path)
	require.NoError(t, err)
	assert.Equal(t, []MappingRecord{
		{WesternKey: "mary", MuslimNameSlugs: []string{"maryam", "mariam"}},
		{WesternKey: "john", MuslimNameSlugs: []string{"yahya"}},
		{WesternKey: "peter"},
	}, mappings)
}

func TestLoadLegalGuides_UppercasesCodes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "legal.yaml", `
- country: Brazil
  countryCode: BR
  flag: "🇧🇷"
- country: " United States "
  countryCode: us
  flag: "🇺🇸"
`)
	entries, err := LoadLegalGuides(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, LegalGuideEntry{Country: "Brazil", CountryCode: "BR", Flag: "🇧🇷"}, entries[0])
	assert.Equal(t, "United States", entries[1].Country)
	assert.Equal(t, "US", entries[1].CountryCode)
}

func TestLoadLegalGuides_Missing(t *testing.T) {
	_, err := LoadLegalGuides(filepath.Join(t.TempDir(), "legal.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}
