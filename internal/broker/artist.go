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

// ArtistConfig configures the music-artist adapter.
type ArtistConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// ArtistAdapter queries a music catalog's artist-search endpoint.
type ArtistAdapter struct {
	http httpAdapter
}

func NewArtistAdapter(cfg ArtistConfig) *ArtistAdapter {
	return &ArtistAdapter{http: newHTTPAdapter(cfg.BaseURL, cfg.Token, cfg.Timeout)}
}

func (a *ArtistAdapter) Source() models.Source { return models.SourceArtist }

type artistProviderResponse struct {
	Artists []artistProviderEntry `json:"artists"`
}

type artistProviderEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ImageURL      string   `json:"image_url"`
	Genres        []string `json:"genres"`
	FollowerCount int      `json:"follower_count"`
	Popularity    float64  `json:"popularity"`
}

func (a *ArtistAdapter) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("access_token", a.http.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.http.baseURL+"/v1/search/artists?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("broker: build artist request: %w", err)
	}

	body, err := a.http.do(req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var parsed artistProviderResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("broker: decode artist response: %w", err)
	}

	items := make([]interface{}, 0, len(parsed.Artists))
	for i, art := range parsed.Artists {
		items = append(items, models.ArtistItem{
			Brokered: models.Brokered{
				Item: models.Item{
					McID:        "artist_" + art.ID,
					McType:      models.TypePerson,
					McSubtype:   models.SubtypeMusicArtist,
					Source:      models.SourceArtist,
					SourceID:    art.ID,
					SearchTitle: art.Name,
					Image:       art.ImageURL,
					Popularity:  art.Popularity,
				},
				SortOrder: i,
			},
			Genres:        art.Genres,
			FollowerCount: art.FollowerCount,
		})
	}
	return items, nil
}
