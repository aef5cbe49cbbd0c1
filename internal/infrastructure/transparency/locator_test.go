package transparency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(listingURL string) *Client {
	c := NewClient(listingURL, Options{RequestsPerSecond: 1000})
	return c
}

func TestLocateFiles(t *testing.T) {
	t.Run("prefers full-catalog files over incremental", func(t *testing.T) {
		page := `<html><body>
			<a href="/files/PriceFull7290027600007-001-202608310400.gz">full 1</a>
			<a href="/files/Price7290027600007-001-202608310500.gz">incremental</a>
			<a href="/files/PriceFull7290027600007-002-202608310400.gz">full 2</a>
			<a href="/about">about</a>
		</body></html>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(page))
		}))
		defer server.Close()

		urls, err := newTestClient(server.URL).LocateFiles(context.Background())
		require.NoError(t, err)
		require.Len(t, urls, 2)
		assert.Contains(t, urls[0], "PriceFull7290027600007-001")
		assert.Contains(t, urls[1], "PriceFull7290027600007-002")
	})

	t.Run("falls back to incremental files when no full file exists", func(t *testing.T) {
		page := `<a href="Price123-001.gz">a</a><a href="Price123-002.gz">b</a>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(page))
		}))
		defer server.Close()

		urls, err := newTestClient(server.URL).LocateFiles(context.Background())
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})

	t.Run("resolves relative links against the listing host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<a href="/download/PriceFull1.gz">x</a>`))
		}))
		defer server.Close()

		urls, err := newTestClient(server.URL).LocateFiles(context.Background())
		require.NoError(t, err)
		require.Len(t, urls, 1)
		assert.Equal(t, server.URL+"/download/PriceFull1.gz", urls[0])
	})

	t.Run("de-duplicates repeated links", func(t *testing.T) {
		page := `<a href="/PriceFull1.gz">a</a><a href="/PriceFull1.gz">same</a>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(page))
		}))
		defer server.Close()

		urls, err := newTestClient(server.URL).LocateFiles(context.Background())
		require.NoError(t, err)
		assert.Len(t, urls, 1)
	})

	t.Run("ignores unrelated links entirely", func(t *testing.T) {
		page := `<a href="/catalog.pdf">pdf</a><a href="/index.html">home</a>`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(page))
		}))
		defer server.Close()

		urls, err := newTestClient(server.URL).LocateFiles(context.Background())
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("non-200 listing page is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).LocateFiles(context.Background())
		assert.Error(t, err)
	})

	t.Run("unreachable host is an error", func(t *testing.T) {
		_, err := newTestClient("http://127.0.0.1:1/listing").LocateFiles(context.Background())
		assert.Error(t, err)
	})

	t.Run("truncated html keeps the links seen so far", func(t *testing.T) {
		page := `<a href="/PriceFull1.gz">ok</a><a href="/PriceFull2.gz`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(page))
		}))
		defer server.Close()

		urls, err := newTestClient(server.URL).LocateFiles(context.Background())
		require.NoError(t, err)
		assert.Len(t, urls, 1)
	})
}

func TestSelectPriceFiles(t *testing.T) {
	t.Run("matching is case-insensitive on the file name", func(t *testing.T) {
		got := selectPriceFiles([]string{
			"http://host/pricefull1.GZ",
			"http://host/PRICE2.gz",
		})
		assert.Equal(t, []string{"http://host/pricefull1.GZ"}, got)
	})

	t.Run("query strings do not hide the file name", func(t *testing.T) {
		got := selectPriceFiles([]string{"http://host/PriceFull1.gz?token=abc"})
		assert.Len(t, got, 1)
	})
}
