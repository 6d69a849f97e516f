package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageText(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head>
<style>body { color: red; }</style>
<script>console.log("tracking");</script>
</head><body>
<h1>Senior Java Developer</h1>
<p>We are hiring a backend engineer with strong SQL skills.</p>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	text, err := PageText(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Java Developer")
	assert.Contains(t, text, "strong SQL skills")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
}

func TestPageText_TruncatesLongPages(t *testing.T) {
	long := "<html><body><p>" + strings.Repeat("requirements ", 400) + "</p></body></html>"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(long))
	}))
	defer srv.Close()

	text, err := PageText(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.LessOrEqual(t, len([]rune(text)), pageTextLimit+3)
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestPageText_TruncatesOnRuneBoundary(t *testing.T) {
	// The leading ASCII rune offsets the multi-byte text so a byte-index
	// cut at the limit would land inside a character.
	long := "<html><body><p>a" + strings.Repeat("ページ", 600) + "</p></body></html>"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(long))
	}))
	defer srv.Close()

	text, err := PageText(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(text))
	assert.Equal(t, pageTextLimit+3, len([]rune(text)))
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestPageText_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := PageText(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrPageFetch)
}
