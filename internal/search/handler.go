// Package search forwards recent-post queries to the social platform's
// search API and relays the JSON payload untouched.
package search

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/praja-pulse/campaign-backend/internal/shared"
)

const defaultEndpoint = "https://api.twitter.com/2/tweets/search/recent"

type Handler struct {
	endpoint    string
	bearerToken string
	client      *http.Client
	logger      *slog.Logger
}

func NewHandler(endpoint, bearerToken string, logger *slog.Logger) *Handler {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Handler{
		endpoint:    endpoint,
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: 15 * time.Second},
		logger:      logger.With("component", "search"),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
}

// @Summary      Social media search
// @Description  Forwards the query to the platform's recent-search API and relays the response
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "search query"
// @Success      200  {object}  object
// @Failure      400  {object}  shared.APIError
// @Failure      502  {object}  shared.APIError
// @Router       /search [get]
func (h *Handler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return shared.BadRequest("missing_query", "query parameter q is required")
	}

	reqURL := h.endpoint + "?query=" + url.QueryEscape(query) + "&max_results=25"

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, reqURL, nil)
	if err != nil {
		return shared.InternalError("request_failed", "could not build upstream request")
	}
	req.Header.Set("Authorization", "Bearer "+h.bearerToken)

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error("search upstream failed", "error", err)
		return shared.BadGateway("search_unavailable", "search upstream is unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return shared.BadGateway("search_unavailable", "could not read upstream response")
	}

	if resp.StatusCode >= 300 {
		h.logger.Warn("search upstream returned error", "status", resp.StatusCode)
		return shared.BadGateway("search_error", "search upstream returned an error")
	}

	return c.JSONBlob(http.StatusOK, body)
}
