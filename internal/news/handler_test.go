package news

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Search results</title>
    <item>
      <title>Campaign rally draws large crowd</title>
      <link>https://news.example.com/rally</link>
      <pubDate>Mon, 06 May 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Manifesto released ahead of polls</title>
      <link>https://news.example.com/manifesto</link>
      <pubDate>Mon, 06 May 2024 08:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// unreachableRedis returns a client whose operations always fail, which makes
// the handler skip the cache on both read and write.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func setupHandler(t *testing.T, upstream http.HandlerFunc) *Handler {
	t.Helper()
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewHandler(unreachableRedis(), discardLogger())
	h.feedBase = ts.URL
	return h
}

func TestGetNews_ReturnsArticles(t *testing.T) {
	h := setupHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "amaravati" {
			t.Errorf("expected query forwarded, got %q", q)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/news?q=amaravati", nil)
	rec := httptest.NewRecorder()

	if err := h.GetNews(e.NewContext(req, rec)); err != nil {
		t.Fatalf("GetNews failed: %v", err)
	}

	var resp FeedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Query != "amaravati" {
		t.Errorf("expected query echoed, got %q", resp.Query)
	}
	if len(resp.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(resp.Articles))
	}
	if resp.Articles[0].Title != "Campaign rally draws large crowd" {
		t.Errorf("unexpected title %q", resp.Articles[0].Title)
	}
	if resp.Cached {
		t.Error("first fetch should not be marked cached")
	}
}

func TestGetNews_DefaultQuery(t *testing.T) {
	var seenQuery string
	h := setupHandler(t, func(w http.ResponseWriter, r *http.Request) {
		seenQuery = r.URL.Query().Get("q")
		w.Write([]byte(sampleRSS))
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/news", nil)
	rec := httptest.NewRecorder()

	if err := h.GetNews(e.NewContext(req, rec)); err != nil {
		t.Fatalf("GetNews failed: %v", err)
	}
	if seenQuery != defaultQuery {
		t.Errorf("expected default query, got %q", seenQuery)
	}
}

func TestGetNews_UpstreamFailure(t *testing.T) {
	h := setupHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/news?q=x", nil)
	rec := httptest.NewRecorder()

	err := h.GetNews(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", httpErr.Code)
	}
}
