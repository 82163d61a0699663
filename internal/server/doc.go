// Package server provides HTTP routing, middleware, and the JSON endpoint layer.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally; method
// restrictions live in the registered patterns.
//
// # Endpoint Layer
//
// Handlers translate query parameters into provider calls and provider
// results into JSON. They hold no state beyond their injected dependencies,
// so every request is independent; the only shared resources are the
// provider's rate limiter and HTTP client.
//
// Error responses follow one mapping, implemented in writeError:
//
//	validation failure      → 400
//	shared.ErrUnauthorized  → 401
//	shared.ErrNotFound      → 404
//	shared.RateLimitError   → 429 (+ Retry-After header and body hint)
//	upstream failure        → 502
//
// An empty search result is a 200 with an empty JSON array, never an error.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib
// handler interface and adds routes, allowing one implementation to register
// several related patterns (the three detail endpoints share one handler).
package server
