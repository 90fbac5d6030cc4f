package source

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// loadNamesSQLite reads name records from a names database:
//
//	names(slug TEXT, is_quranic INTEGER, themes TEXT)          -- themes comma separated
//	quranic_references(name_slug TEXT, surah TEXT, ayah TEXT)  -- optional
//
// Records come back in insertion (rowid) order; references keep their own
// insertion order per slug.
func loadNamesSQLite(path string) (NameSource, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return NameSource{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return NameSource{}, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	refs, err := queryReferences(db)
	if err != nil {
		return NameSource{}, fmt.Errorf("query references in %s: %w", path, err)
	}

	rows, err := db.Query("SELECT slug, is_quranic, themes FROM names ORDER BY rowid")
	if err != nil {
		return NameSource{}, fmt.Errorf("query names in %s: %w", path, err)
	}
	defer rows.Close()

	src := NameSource{Name: path}
	for rows.Next() {
		var slug string
		var isQuranic sql.NullBool
		var themes sql.NullString
		if err := rows.Scan(&slug, &isQuranic, &themes); err != nil {
			return NameSource{}, fmt.Errorf("scan name row in %s: %w", path, err)
		}
		src.Records = append(src.Records, NameRecord{
			Slug:              slug,
			IsQuranic:         isQuranic.Valid && isQuranic.Bool,
			Themes:            splitThemes(nullStringOr(themes, "")),
			QuranicReferences: refs[strings.ToLower(strings.TrimSpace(slug))],
		})
	}
	return src, rows.Err()
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var n int
	err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	return n > 0, err
}

// queryReferences groups citations by lowercased slug. A database without a
// quranic_references table has no citations.
func queryReferences(db *sql.DB) (map[string][]QuranicReference, error) {
	out := make(map[string][]QuranicReference)
	if ok, err := tableExists(db, "quranic_references"); err != nil || !ok {
		return out, err
	}

	rows, err := db.Query("SELECT name_slug, surah, ayah FROM quranic_references ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var slug string
		var surah, ayah sql.NullString
		if err := rows.Scan(&slug, &surah, &ayah); err != nil {
			return nil, err
		}
		key := strings.ToLower(strings.TrimSpace(slug))
		out[key] = append(out[key], QuranicReference{
			Surah: SurahLabel(nullStringOr(surah, "")),
			Ayah:  nullStringOr(ayah, ""),
		})
	}
	return out, rows.Err()
}

func splitThemes(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// nullStringOr returns the string value if valid and non-empty, otherwise fallback.
func nullStringOr(s sql.NullString, fallback string) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return fallback
}
