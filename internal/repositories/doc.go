// Package repositories provides the persistence layer for the lookup cache.
//
// The cache holds one row per upstream lookup, keyed by a deterministic
// operation key ("search:artist:radiohead", "album:1DFixLWuPkv3KT3TnV35m3").
// Payloads are the serialized JSON responses the server would otherwise have
// to fetch again; they are opaque to this package.
//
// [LookupRepository] implements the services.LookupStore interface consumed
// by the caching provider, plus the maintenance operations the CLI cache
// commands expose (count, purge).
package repositories
