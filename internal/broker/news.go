package broker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/harborglass/mediasearch/internal/models"
)

// NewsConfig configures the news-wire adapter (spec.md §4.6).
type NewsConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// NewsAdapter queries a news-wire search API and normalizes its articles
// into NewsItem results.
type NewsAdapter struct {
	http httpAdapter
}

// NewNewsAdapter builds a NewsAdapter from its provider config.
func NewNewsAdapter(cfg NewsConfig) *NewsAdapter {
	return &NewsAdapter{http: newHTTPAdapter(cfg.BaseURL, cfg.Token, cfg.Timeout)}
}

func (a *NewsAdapter) Source() models.Source { return models.SourceNews }

type newsProviderResponse struct {
	Articles []newsProviderArticle `json:"articles"`
}

type newsProviderArticle struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	URL         string  `json:"url"`
	ImageURL    string  `json:"image_url"`
	Publisher   string  `json:"publisher"`
	Author      string  `json:"author"`
	PublishedAt string  `json:"published_at"`
	Relevance   float64 `json:"relevance"`
}

// Search calls the provider's article-search endpoint and maps each hit
// into a NewsItem, keeping the provider's order (recorded in SortOrder)
// and carrying the provider-reported relevance as Popularity.
func (a *NewsAdapter) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("api_key", a.http.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.http.baseURL+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("broker: build news request: %w", err)
	}

	body, err := a.http.do(req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var parsed newsProviderResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("broker: decode news response: %w", err)
	}

	items := make([]interface{}, 0, len(parsed.Articles))
	for i, article := range parsed.Articles {
		items = append(items, models.NewsItem{
			Brokered: models.Brokered{
				Item: models.Item{
					McID:        "news_" + article.ID,
					McType:      models.TypeNewsArticle,
					Source:      models.SourceNews,
					SourceID:    article.ID,
					SearchTitle: article.Title,
					Overview:    article.Summary,
					Image:       article.ImageURL,
					Popularity:  article.Relevance,
				},
				Links:     []models.Link{{Rel: "canonical", URL: article.URL}},
				SortOrder: i,
			},
			PublishedAt: article.PublishedAt,
			Publisher:   article.Publisher,
			Author:      article.Author,
		})
	}
	return items, nil
}
