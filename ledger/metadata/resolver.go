package metadata

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// Resolver maps a project id to its display URI. Metadata is immutable after
// creation, so resolved URIs are cached indefinitely in an LRU cache.
type Resolver struct {
	baseURI string
	cache   *lru.Cache
}

// NewResolver creates a resolver over the given base URI.
func NewResolver(baseURI string, cacheSize int) (*Resolver, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create metadata cache")
	}
	return &Resolver{
		baseURI: baseURI,
		cache:   cache,
	}, nil
}

// URI returns the display URI for the given project id.
func (r *Resolver) URI(projectID uint64) string {
	if cached, ok := r.cache.Get(projectID); ok {
		return cached.(string)
	}
	uri := fmt.Sprintf("%v%v", r.baseURI, projectID)
	r.cache.Add(projectID, uri)
	return uri
}
