package server

import (
	"net/http"
)

// NotFound responds 404 with the body "Not Found".
var NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	writePlain(w, http.StatusNotFound, "Not Found")
})

// BasicRouter is a simple HTTP router implementing the [Router] interface.
//
// Paths match exactly: no prefix matching, no path cleaning, no method filtering.
// Unmatched paths go to [NotFound].
type BasicRouter struct {
	routes      map[string]http.Handler
	middlewares []Middleware
}

// NewBasicRouter creates a new [BasicRouter] instance.
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{
		routes:      make(map[string]http.Handler),
		middlewares: []Middleware{},
	}
}

// Use adds [Middleware] to the [Router] instance's middleware stack, applied in the order it's added.
//
// Middleware only wraps handlers registered after the call.
func (r *BasicRouter) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

// Handle registers a handler for the exact path.
//
// The handler is wrapped with all registered middleware.
func (r *BasicRouter) Handle(path string, handler http.Handler) {
	r.routes[path] = r.Apply(handler)
}

// Handler registers a custom Handler implementation.
//
// All routes returned by [Handler.Routes] are registered with this handler.
func (r *BasicRouter) Handler(handler Handler) {
	wrapped := r.Apply(handler)

	for _, route := range handler.Routes() {
		r.routes[route] = wrapped
	}
}

// ServeHTTP implements [http.Handler] for the entire router.
//
// Only the path component of the request is inspected.
func (r *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, ok := r.routes[req.URL.Path]; ok {
		h.ServeHTTP(w, req)
		return
	}
	r.Apply(NotFound).ServeHTTP(w, req)
}

// Apply wraps a handler with all registered middleware.
//
// Middleware is applied in reverse order (last added wraps first).
func (r *BasicRouter) Apply(handler http.Handler) http.Handler {
	wrapped := handler

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}

	return wrapped
}
