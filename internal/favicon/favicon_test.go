package favicon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetch_ExtractsIconHref(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<link rel="stylesheet" href="/style.css">
			<link rel="icon" href="/favicon.ico">
		</head><body></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	assert.Equal(t, "/favicon.ico", f.Fetch(context.Background(), srv.URL))
}

func TestFetch_NoIconDeclared(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>plain</title></head></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	assert.Equal(t, "", f.Fetch(context.Background(), srv.URL))
}

func TestFetch_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client())
	assert.Equal(t, "", f.Fetch(context.Background(), srv.URL))
}

func TestFetch_UnreachableHost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewFetcher(nil)
	assert.Equal(t, "", f.Fetch(context.Background(), url))
}
