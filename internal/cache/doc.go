// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package cache provides the in-memory data structures the search pipeline
caches and looks things up with. It has no notion of mc_id, Source, or
any other search-domain type; every caller outside this package supplies
the keys and values, and cache only worries about eviction and
concurrency.

# Structures

Four structures, each picked for a specific access pattern in the
pipeline rather than used interchangeably:

  - Cache: a plain TTL map. internal/query.Normalizer uses one to
    memoize taxonomy Expand() results, so a repeated "[genre=sci-fi]"
    filter doesn't re-walk the synonym table on every request.

  - LRUCache: O(1) least-recently-used eviction with a timestamp payload.
    internal/middleware.DuplicateSuppressor uses it as a short debounce
    window (IsDuplicate) to drop the identical retry a flaky client
    connection produces within a couple seconds of the original request,
    not to track history over any longer window.

  - LFUCache (via NewLFU, through the Cacher interface): frequency-based
    eviction. internal/broker.CachedAdapter wraps every brokered provider
    adapter in one, since autocomplete traffic is dominated by a small
    number of popular prefixes repeated by many different callers -
    exactly the skewed access pattern LFU outperforms LRU on.

  - BloomFilter + Trie: internal/query.Normalizer sits a Bloom filter in
    front of a Trie so a filter field/value token that was never loaded
    into the taxonomy short-circuits before the (much more expensive)
    trie descent.

# Concurrency

Every structure here is independently safe for concurrent use
(sync.RWMutex or sync.Mutex internally); none of them coordinate with
each other, so a caller combining more than one (as Normalizer does)
is responsible for its own invariants across the two.
*/
package cache
