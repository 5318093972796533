package index

import "github.com/harborglass/mediasearch/internal/models"

// IndexName returns the RediSearch index name backing an indexed source
// (spec.md §4.4 "one inverted index per indexed source").
func IndexName(source models.Source) string {
	return "idx:" + string(source)
}

// KeyPrefix returns the Redis key prefix documents for source are stored
// under, e.g. "doc:movie:". FT.CREATE's PREFIX option is configured to
// match this at provisioning time (outside this service's scope).
func KeyPrefix(source models.Source) string {
	return "doc:" + string(source) + ":"
}

// reservedFields lists the common models.Item envelope keys shared by
// every source. The executor does not send this list: its FT.SEARCH has
// no RETURN clause, so every hash field comes back.
var reservedFields = []string{
	"mc_id", "mc_type", "mc_subtype", "source", "source_id",
	"search_title", "popularity", "rating", "image", "overview",
}
