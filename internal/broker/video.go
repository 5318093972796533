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

// VideoConfig configures the video-platform adapter.
type VideoConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// VideoAdapter queries a video-platform search API.
type VideoAdapter struct {
	http httpAdapter
}

func NewVideoAdapter(cfg VideoConfig) *VideoAdapter {
	return &VideoAdapter{http: newHTTPAdapter(cfg.BaseURL, cfg.Token, cfg.Timeout)}
}

func (a *VideoAdapter) Source() models.Source { return models.SourceVideo }

type videoProviderResponse struct {
	Results []videoProviderResult `json:"results"`
}

type videoProviderResult struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	WatchURL        string  `json:"watch_url"`
	Channel         string  `json:"channel"`
	PublishedAt     string  `json:"published_at"`
	DurationSeconds int     `json:"duration_seconds"`
	ViewCount       float64 `json:"view_count"`
}

func (a *VideoAdapter) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("max_results", strconv.Itoa(limit))
	q.Set("token", a.http.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.http.baseURL+"/v1/videos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("broker: build video request: %w", err)
	}

	body, err := a.http.do(req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var parsed videoProviderResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("broker: decode video response: %w", err)
	}

	items := make([]interface{}, 0, len(parsed.Results))
	for i, v := range parsed.Results {
		items = append(items, models.VideoItem{
			Brokered: models.Brokered{
				Item: models.Item{
					McID:        "video_" + v.ID,
					McType:      models.TypeVideo,
					Source:      models.SourceVideo,
					SourceID:    v.ID,
					SearchTitle: v.Title,
					Overview:    v.Description,
					Image:       v.ThumbnailURL,
					Popularity:  v.ViewCount,
				},
				Links:     []models.Link{{Rel: "watch", URL: v.WatchURL}},
				SortOrder: i,
			},
			DurationSeconds: v.DurationSeconds,
			Channel:         v.Channel,
			PublishedAt:     v.PublishedAt,
		})
	}
	return items, nil
}
