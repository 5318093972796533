package broker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/harborglass/mediasearch/internal/models"
)

// RatingsConfig configures the critic/audience ratings adapter.
type RatingsConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// RatingsAdapter queries a ratings-aggregator API.
type RatingsAdapter struct {
	http httpAdapter
}

func NewRatingsAdapter(cfg RatingsConfig) *RatingsAdapter {
	return &RatingsAdapter{http: newHTTPAdapter(cfg.BaseURL, cfg.Token, cfg.Timeout)}
}

func (a *RatingsAdapter) Source() models.Source { return models.SourceRatings }

type ratingsProviderResponse struct {
	Matches []ratingsProviderMatch `json:"matches"`
}

type ratingsProviderMatch struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	PosterURL     string  `json:"poster_url"`
	CriticScore   float64 `json:"critic_score"`
	AudienceScore float64 `json:"audience_score"`
}

func (a *RatingsAdapter) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	q := url.Values{}
	q.Set("title", text)
	q.Set("api_key", a.http.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.http.baseURL+"/v2/match?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("broker: build ratings request: %w", err)
	}

	body, err := a.http.do(req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var parsed ratingsProviderResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("broker: decode ratings response: %w", err)
	}

	if limit > 0 && len(parsed.Matches) > limit {
		parsed.Matches = parsed.Matches[:limit]
	}

	items := make([]interface{}, 0, len(parsed.Matches))
	for i, m := range parsed.Matches {
		items = append(items, models.RatingsItem{
			Brokered: models.Brokered{
				Item: models.Item{
					McID:        "ratings_" + m.ID,
					McType:      models.TypeMovie,
					Source:      models.SourceRatings,
					SourceID:    m.ID,
					SearchTitle: m.Title,
					Image:       m.PosterURL,
					Popularity:  m.AudienceScore,
				},
				Metrics:   map[string]float64{"critic_score": m.CriticScore, "audience_score": m.AudienceScore},
				SortOrder: i,
			},
			CriticScore:   m.CriticScore,
			AudienceScore: m.AudienceScore,
		})
	}
	return items, nil
}
