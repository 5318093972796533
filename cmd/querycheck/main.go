// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Command querycheck drives internal/debounce's Debouncer against a live
// media search service the same way a browser client would: it simulates
// keystrokes for a query string one character at a time, lets the
// debouncer's tier-1/tier-2 timers fire GET requests at the real
// endpoints, and prints the merged accumulator once the query goes quiet.
// It exists so the debounce contract (spec.md §4.12) can be exercised
// end to end without hand-rolling a curl loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/harborglass/mediasearch/internal/debounce"
	"github.com/harborglass/mediasearch/internal/models"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the media search service")
	query := flag.String("query", "", "query text to simulate typing, character by character")
	interval := flag.Duration("interval", 120*time.Millisecond, "delay between simulated keystrokes")
	enter := flag.Bool("enter", false, "press Enter after the last keystroke, firing tier-2 immediately")
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "querycheck: -query is required")
		os.Exit(2)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	checker := &checker{server: strings.TrimRight(*server, "/"), client: client}

	d := debounce.New(checker.fireAutocomplete, checker.fireSearch)
	acc := d.Accumulator()
	checker.acc = acc

	fmt.Printf("querycheck: simulating keystrokes for %q against %s\n", *query, *server)
	for i := 1; i <= len(*query); i++ {
		prefix := (*query)[:i]
		fmt.Printf("  keystroke %q\n", prefix)
		d.Keystroke(prefix)
		time.Sleep(*interval)
	}

	if *enter {
		fmt.Println("  <enter>")
		d.Enter()
	}

	// Give the slower tier-2 fire time to land before printing.
	time.Sleep(debounce.Tier2Delay + 500*time.Millisecond)
	d.Stop()

	printSnapshot(acc.Snapshot())
}

// checker issues the actual HTTP requests a browser's debouncer would
// make, merging each response into the Debouncer's shared Accumulator.
type checker struct {
	server string
	client *http.Client
	acc    *debounce.Accumulator
}

func (c *checker) fireAutocomplete(ctx context.Context, text string) {
	c.fire(ctx, "/api/autocomplete", text)
}

func (c *checker) fireSearch(ctx context.Context, text string) {
	c.fire(ctx, "/api/search", text)
}

func (c *checker) fire(ctx context.Context, path, text string) {
	endpoint := c.server + path + "?" + url.Values{"q": {text}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "querycheck: build request for %q: %v\n", text, err)
		return
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return // superseded by a later keystroke before the response arrived
		}
		fmt.Fprintf(os.Stderr, "querycheck: %s %q: %v\n", path, text, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		fmt.Fprintf(os.Stderr, "querycheck: %s %q: status %d: %s\n", path, text, resp.StatusCode, body)
		return
	}

	var body models.Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		fmt.Fprintf(os.Stderr, "querycheck: %s %q: decode response: %v\n", path, text, err)
		return
	}

	merged := false
	for _, source := range append(append([]models.Source{}, models.IndexedSources...), models.BrokeredSources...) {
		items := body.SlotFor(source)
		if items == nil || len(*items) == 0 {
			continue
		}
		merged = c.acc.Merge(text, source, *items) || merged
	}
	if body.ExactMatch != nil {
		c.acc.MergeExactMatch(text, body.ExactMatch)
	}
	if !merged {
		fmt.Printf("  %s %q: no sources returned results (possibly stale, discarded)\n", path, text)
	}
}

func printSnapshot(snap models.Response) {
	fmt.Println("querycheck: merged accumulator:")
	print := func(name string, items []interface{}) {
		if len(items) == 0 {
			return
		}
		fmt.Printf("  %-8s %d result(s)\n", name, len(items))
	}
	print("tv", snap.TV)
	print("movie", snap.Movie)
	print("person", snap.Person)
	print("podcast", snap.Podcast)
	print("author", snap.Author)
	print("book", snap.Book)
	print("news", snap.News)
	print("video", snap.Video)
	print("ratings", snap.Ratings)
	print("artist", snap.Artist)
	print("album", snap.Album)
	if snap.ExactMatch != nil {
		fmt.Println("  exact_match present")
	}
}
