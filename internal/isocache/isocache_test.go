package isocache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"namecheck/internal/country"
)

const isoBody = `[
  {"name": "Brazil", "alpha-2": "BR", "alpha-3": "BRA"},
  {"name": "Bosnia and Herzegovina", "alpha-2": "BA", "alpha-3": "BIH"}
]`

func newServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestLoad_FetchesOnceThenUsesCache(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, isoBody)
	path := filepath.Join(t.TempDir(), "cache", "iso.json")
	l := &Loader{Path: path, URL: srv.URL, Client: srv.Client(), Logger: zap.NewNop()}

	first, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []country.ISOCountry{
		{Name: "Brazil", Alpha2: "BR"},
		{Name: "Bosnia and Herzegovina", Alpha2: "BA"},
	}, first)
	assert.FileExists(t, path)

	second, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestLoad_ExistingCacheSkipsNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iso.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Malaysia","alpha-2":"MY"}]`), 0644))

	l := &Loader{Path: path, URL: "http://127.0.0.1:0/unreachable"}
	got, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []country.ISOCountry{{Name: "Malaysia", Alpha2: "MY"}}, got)
}

func TestLoad_FetchFailureIsError(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, "boom")
	path := filepath.Join(t.TempDir(), "iso.json")
	l := &Loader{Path: path, URL: srv.URL, Client: srv.Client()}

	_, err := l.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.NoFileExists(t, path)
}

func TestLoad_CorruptCacheIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iso.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := (&Loader{Path: path}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read iso cache")
}
