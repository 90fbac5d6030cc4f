// Package isocache provides the ISO 3166-1 country list with a
// load-or-fetch-then-persist contract: a local JSON cache is used when it
// exists; otherwise the list is fetched once and written to the cache for
// later, offline runs.
package isocache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"namecheck/internal/country"
)

// DefaultURL is a public mirror of the ISO 3166-1 list with "name" and
// "alpha-2" fields.
const DefaultURL = "https://raw.githubusercontent.com/lukes/ISO-3166-Countries-with-Regional-Codes/master/all/all.json"

// Loader resolves the country list.
type Loader struct {
	Path   string
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

// Load returns the cached list, fetching and persisting it first when the
// cache file is absent. A corrupt cache is an error rather than a silent
// refetch.
func (l *Loader) Load(ctx context.Context) ([]country.ISOCountry, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	countries, err := readCache(l.Path)
	if err == nil {
		log.Debug("using cached iso list", zap.String("path", l.Path), zap.Int("countries", len(countries)))
		return countries, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read iso cache %s: %w", l.Path, err)
	}

	url := l.URL
	if url == "" {
		url = DefaultURL
	}
	log.Info("iso cache missing, fetching", zap.String("url", url))

	countries, err = l.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch iso list: %w", err)
	}
	if err := writeJSON(l.Path, countries); err != nil {
		return nil, fmt.Errorf("write iso cache %s: %w", l.Path, err)
	}
	log.Info("fetched iso list", zap.String("path", l.Path), zap.Int("countries", len(countries)))
	return countries, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]country.ISOCountry, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var countries []country.ISOCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(countries) == 0 {
		return nil, errors.New("empty country list")
	}
	return countries, nil
}

func readCache(path string) ([]country.ISOCountry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var countries []country.ISOCountry
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// writeJSON writes payload to path through a temp file in the same
// directory, creating parent directories as needed.
func writeJSON(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".iso-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false) // keep names like "Bosnia & Herzegovina" readable
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
