// Package news proxies campaign coverage from Google News RSS as JSON,
// with a short-lived Redis cache in front of the upstream feed.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mmcdole/gofeed"
	"github.com/praja-pulse/campaign-backend/internal/shared"
	"github.com/redis/go-redis/v9"
)

const (
	defaultQuery    = "andhra pradesh elections"
	defaultFeedBase = "https://news.google.com/rss/search"
	cacheTTL        = 5 * time.Minute
	feedTimeout     = 15 * time.Second
)

type Article struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Source    string `json:"source,omitempty"`
}

type FeedResponse struct {
	Query    string    `json:"query"`
	Articles []Article `json:"articles"`
	Cached   bool      `json:"cached"`
}

type Handler struct {
	redis    *redis.Client
	parser   *gofeed.Parser
	feedBase string
	logger   *slog.Logger
}

func NewHandler(redisClient *redis.Client, logger *slog.Logger) *Handler {
	return &Handler{
		redis:    redisClient,
		parser:   gofeed.NewParser(),
		feedBase: defaultFeedBase,
		logger:   logger.With("component", "news"),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/news", h.GetNews)
}

// @Summary      Campaign news feed
// @Description  Returns recent news articles for a query, cached for five minutes
// @Tags         news
// @Produce      json
// @Param        q  query  string  false  "search query"
// @Success      200  {object}  news.FeedResponse
// @Failure      502  {object}  shared.APIError
// @Router       /news [get]
func (h *Handler) GetNews(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		query = defaultQuery
	}

	ctx := c.Request().Context()

	if cached, err := h.fromCache(ctx, query); err == nil {
		cached.Cached = true
		return c.JSON(http.StatusOK, cached)
	}

	resp, err := h.fetch(ctx, query)
	if err != nil {
		h.logger.Error("news feed fetch failed", "query", query, "error", err)
		return shared.BadGateway("feed_unavailable", "news feed is unavailable")
	}

	h.toCache(ctx, query, resp)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) fetch(ctx context.Context, query string) (*FeedResponse, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=te-IN&gl=IN&ceid=IN:te", h.feedBase, url.QueryEscape(query))

	ctx, cancel := context.WithTimeout(ctx, feedTimeout)
	defer cancel()

	feed, err := h.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := Article{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
		}
		if item.Custom != nil {
			a.Source = item.Custom["source"]
		}
		articles = append(articles, a)
	}

	return &FeedResponse{Query: query, Articles: articles}, nil
}

func cacheKey(query string) string {
	return "news:" + query
}

func (h *Handler) fromCache(ctx context.Context, query string) (*FeedResponse, error) {
	data, err := h.redis.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, err
	}

	var resp FeedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) toCache(ctx context.Context, query string, resp *FeedResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, cacheKey(query), data, cacheTTL).Err(); err != nil {
		h.logger.Warn("news cache write failed", "error", err)
	}
}
