package app

import (
	"fmt"
	"regexp"

	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
)

var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the registered handler.
type Router struct {
	routes map[string]safesend.Handler
}

var _ safesend.Registry = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]safesend.Handler),
	}
}

// Handle implements the Registry interface. It adds a new route that will
// forward all messages of the same type as given message to provided handler.
func (r *Router) Handle(m safesend.Msg, h safesend.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for a message of the same type as
// the given one. If no handler is registered, it returns a handler that
// always fails with a not registered message path error.
func (r *Router) Handler(m safesend.Msg) safesend.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// notFoundHandler always returns ErrNotFound error regardless of the message
// processed.
type notFoundHandler string

func (h notFoundHandler) Check(ctx safesend.Context, store safesend.KVStore, tx safesend.Tx) (*safesend.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}

func (h notFoundHandler) Deliver(ctx safesend.Context, store safesend.KVStore, tx safesend.Tx) (*safesend.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}
