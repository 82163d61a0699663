// Package services implements the [Provider] adapter over the Spotify Web API.
//
// # Provider Interface
//
// [Provider] is the only surface the rest of the application sees: search by
// kind, and detail lookups by id. Results are [models.CatalogItem]
// projections, never raw upstream payloads.
//
// # Spotify Implementation
//
// [SpotifyService] authenticates with the client-credentials grant via
// [golang.org/x/oauth2/clientcredentials]. The token is requested once at
// construction and the oauth2 transport refreshes it transparently afterwards.
//
// Every upstream call is bounded by the configured timeout and gated by a
// client-side [golang.org/x/time/rate] limiter. The adapter performs no
// retries; retry policy belongs to callers and must be explicit configuration.
//
// # Error Handling
//
// Upstream failures surface as typed errors from the shared package:
//   - [shared.ErrUnauthorized] : credentials rejected (401/403)
//   - [shared.ErrNotFound] : detail lookup of an unknown id (404)
//   - [shared.RateLimitError] : 429, carrying the Retry-After hint
//   - [shared.ErrUpstreamUnavailable] : transport error, timeout, or 5xx
//
// # Lookup Cache
//
// [CachedProvider] decorates any Provider with a SQLite-backed memo cache of
// serialized responses. Cache writes are best effort: a failed store logs a
// warning and the response is returned regardless.
package services
