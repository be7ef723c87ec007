package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_LocalFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "batch.txt")
	require.NoError(t, os.WriteFile(p, []byte("0\n0\n"), 0644))

	data, err := newFetcher(time.Second).fetch(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "0\n0\n", string(data))
}

func TestFetcher_MissingFile(t *testing.T) {
	_, err := newFetcher(time.Second).fetch(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFetcher_Stdin(t *testing.T) {
	f := newFetcher(time.Second)
	for _, src := range []string{"-", ""} {
		f.stdin = strings.NewReader(`{"base_requests": []}`)
		data, err := f.fetch(context.Background(), src)
		require.NoError(t, err)
		assert.Equal(t, `{"base_requests": []}`, string(data))
	}
}

func TestFetcher_HTTP(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		if r.URL.Path != "/batch.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"stat_requests": []}`))
	}))
	defer srv.Close()

	f := newFetcher(time.Second)
	data, err := f.fetch(context.Background(), srv.URL+"/batch.json")
	require.NoError(t, err)
	assert.Equal(t, `{"stat_requests": []}`, string(data))
	assert.Contains(t, accept, "application/json")

	_, err = f.fetch(context.Background(), srv.URL+"/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404 Not Found")
}

func TestFetcher_HTTPSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 32)))
	}))
	defer srv.Close()

	f := newFetcher(time.Second)
	f.maxBytes = 16
	_, err := f.fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "larger than 16 bytes")

	f.maxBytes = 32
	data, err := f.fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, data, 32)
}

func TestFetcher_HTTPCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0\n0\n"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newFetcher(time.Second).fetch(ctx, srv.URL)
	assert.Error(t, err)
}
