// Package registry implements the persisted cache-version registry
// (C18): a Badger-backed KV store read once at startup into an
// in-memory snapshot, per spec.md §6 "Persisted state".
package registry

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/harborglass/mediasearch/internal/logging"
)

// DefaultVersion is returned for any prefix with no stored key, per
// spec.md §6: "Absence of the store or a key means version 1."
const DefaultVersion = 1

// keyPrefix namespaces cache-version keys within the Badger store so the
// same database can carry other keys in the future without collision.
const keyPrefix = "cache_version:"

// Registry is an in-memory snapshot of cache_version:<prefix> keys, read
// once at startup (spec.md §6).
type Registry struct {
	versions map[string]int
}

// Load opens the Badger database at path, reads every cache_version:*
// key into memory, and closes the database. A missing path or an empty
// store yields an empty Registry; every lookup falls back to
// DefaultVersion, matching spec.md §6's stated absence behavior.
func Load(path string) (*Registry, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("registry: error closing badger store")
		}
	}()

	versions := make(map[string]int)
	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			prefix := key[len(keyPrefix):]
			err := item.Value(func(val []byte) error {
				versions[prefix] = parseVersion(val)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Registry{versions: versions}, nil
}

// Empty returns a Registry with no stored versions, for use when the
// Badger path is unconfigured.
func Empty() *Registry {
	return &Registry{versions: make(map[string]int)}
}

// VersionFor returns the cache version for prefix, or DefaultVersion if
// no key was stored for it.
func (r *Registry) VersionFor(prefix string) int {
	if v, ok := r.versions[prefix]; ok {
		return v
	}
	return DefaultVersion
}

func parseVersion(val []byte) int {
	n := 0
	for _, b := range val {
		if b < '0' || b > '9' {
			return DefaultVersion
		}
		n = n*10 + int(b-'0')
	}
	if n == 0 {
		return DefaultVersion
	}
	return n
}

// ErrNotFound is not returned by any function in this package; VersionFor
// falls back to DefaultVersion instead.
var ErrNotFound = errors.New("registry: version not found")
