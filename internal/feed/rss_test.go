// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Sample Podcast</title>
    <item>
      <title>Episode 5: The Latest One</title>
      <pubDate>Sat, 01 Aug 2026 00:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Episode 4: An Older One</title>
      <pubDate>Sat, 25 Jul 2026 00:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestFetchLatestReturnsFirstItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	details, err := FetchLatest(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.LatestEpisodeTitle != "Episode 5: The Latest One" {
		t.Fatalf("expected the first <item> to win, got %q", details.LatestEpisodeTitle)
	}
	if details.LatestEpisodeDate != "Sat, 01 Aug 2026 00:00:00 GMT" {
		t.Fatalf("unexpected pub date: %q", details.LatestEpisodeDate)
	}
}

func TestFetchLatestEmptyChannelReturnsZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<rss version="2.0"><channel><title>Empty</title></channel></rss>`))
	}))
	defer srv.Close()

	details, err := FetchLatest(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.LatestEpisodeTitle != "" || details.LatestEpisodeDate != "" {
		t.Fatalf("expected a zero-value result for a channel with no items, got %+v", details)
	}
}

func TestFetchLatestReturnsErrorOnNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := FetchLatest(context.Background(), srv.URL); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestFetchLatestReturnsErrorOnMalformedXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not xml at all"))
	}))
	defer srv.Close()

	if _, err := FetchLatest(context.Background(), srv.URL); err == nil {
		t.Fatal("expected an error for a malformed feed body")
	}
}
