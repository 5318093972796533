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

// AlbumConfig configures the music-album adapter.
type AlbumConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// AlbumAdapter queries a music catalog's album-search endpoint.
type AlbumAdapter struct {
	http httpAdapter
}

func NewAlbumAdapter(cfg AlbumConfig) *AlbumAdapter {
	return &AlbumAdapter{http: newHTTPAdapter(cfg.BaseURL, cfg.Token, cfg.Timeout)}
}

func (a *AlbumAdapter) Source() models.Source { return models.SourceAlbum }

type albumProviderResponse struct {
	Albums []albumProviderEntry `json:"albums"`
}

type albumProviderEntry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	CoverURL    string  `json:"cover_url"`
	ReleaseDate string  `json:"release_date"`
	TrackCount  int     `json:"track_count"`
	Popularity  float64 `json:"popularity"`
}

func (a *AlbumAdapter) Search(ctx context.Context, text string, limit int) ([]interface{}, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("access_token", a.http.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.http.baseURL+"/v1/search/albums?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("broker: build album request: %w", err)
	}

	body, err := a.http.do(req)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var parsed albumProviderResponse
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("broker: decode album response: %w", err)
	}

	items := make([]interface{}, 0, len(parsed.Albums))
	for i, al := range parsed.Albums {
		items = append(items, models.AlbumItem{
			Brokered: models.Brokered{
				Item: models.Item{
					McID:        "album_" + al.ID,
					McType:      models.TypeMusicAlbum,
					Source:      models.SourceAlbum,
					SourceID:    al.ID,
					SearchTitle: al.Title,
					Image:       al.CoverURL,
					Popularity:  al.Popularity,
				},
				SortOrder: i,
			},
			Artist:      al.Artist,
			ReleaseDate: al.ReleaseDate,
			TrackCount:  al.TrackCount,
		})
	}
	return items, nil
}
