package vault

import (
	"fmt"
	"sort"

	"github.com/iov-one/vault/errors"
)

// QueryHandler is anything that can read the committed state and return a
// result for given request data. Queries never pass through decorators.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, data []byte) (interface{}, error)
}

// QueryFunc allows a plain function to act as a QueryHandler.
type QueryFunc func(db ReadOnlyKVStore, data []byte) (interface{}, error)

// Query calls fn.
func (fn QueryFunc) Query(db ReadOnlyKVStore, data []byte) (interface{}, error) {
	return fn(db, data)
}

// QueryRouter allows us to register many query handlers
// to different paths and then direct each query
// to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// Register adds a new Handler for the given path.
// panics if another Handler was already registered
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path.
// It returns ErrNotFound if no handler was registered.
func (r QueryRouter) Handler(path string) (QueryHandler, error) {
	h, ok := r.routes[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for %q", path)
	}
	return h, nil
}

// Paths returns all registered query paths in lexical order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
