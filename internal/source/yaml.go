package source

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return data, err
}

// rootNode returns the top-level node of a YAML document, or nil for an
// empty document.
func rootNode(data []byte) (*yaml.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}

// LoadNames loads name records from a YAML file, a SQLite database or a
// directory of either. A directory yields one source per file in lexical
// order.
func LoadNames(path string) ([]NameSource, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		src, err := loadNameFile(path)
		if err != nil {
			return nil, err
		}
		return []NameSource{src}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var out []NameSource
	for _, e := range entries {
		if e.IsDir() || !isNameFile(e.Name()) {
			continue
		}
		src, err := loadNameFile(filepath.Join(path, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

func isNameFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".db", ".sqlite":
		return true
	}
	return false
}

func loadNameFile(path string) (NameSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return loadNamesSQLite(path)
	}

	data, err := readFile(path)
	if err != nil {
		return NameSource{}, err
	}
	src := NameSource{Name: path}
	root, err := rootNode(data)
	if err != nil {
		return NameSource{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if root == nil {
		return src, nil
	}
	if err := root.Decode(&src.Records); err != nil {
		return NameSource{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return src, nil
}

// LoadAliases loads a "variant: canonical" mapping. The alias table is
// optional: a missing file yields an empty table.
func LoadAliases(path string) ([]AliasEntry, error) {
	data, err := readFile(path)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	root, err := rootNode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if root == nil {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping of variant to canonical slug", path)
	}

	out := make([]AliasEntry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		out = append(out, AliasEntry{
			Variant:   root.Content[i].Value,
			Canonical: root.Content[i+1].Value,
		})
	}
	return out, nil
}

// LoadMappings loads "westernKey: {muslimNames: [...]}" records in file
// order.
func LoadMappings(path string) ([]MappingRecord, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	root, err := rootNode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if root == nil {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping keyed by western name", path)
	}

	out := make([]MappingRecord, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var body struct {
			MuslimNames []string `yaml:"muslimNames"`
		}
		if v := root.Content[i+1]; v.Kind == yaml.MappingNode {
			if err := v.Decode(&body); err != nil {
				return nil, fmt.Errorf("decode %s (%s): %w", path, root.Content[i].Value, err)
			}
		}
		out = append(out, MappingRecord{
			WesternKey:      root.Content[i].Value,
			MuslimNameSlugs: body.MuslimNames,
		})
	}
	return out, nil
}

// LoadLegalGuides loads the legal-guide entries. Country codes are trimmed
// and uppercased here so every checker compares the same form.
func LoadLegalGuides(path string) ([]LegalGuideEntry, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	root, err := rootNode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if root == nil {
		return nil, nil
	}
	var out []LegalGuideEntry
	if err := root.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i := range out {
		out[i].Country = strings.TrimSpace(out[i].Country)
		out[i].CountryCode = NormalizeCode(out[i].CountryCode)
	}
	return out, nil
}

// NormalizeCode is the single normalization applied to country codes.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
