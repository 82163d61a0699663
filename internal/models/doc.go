// Package models defines the JSON contract between the local server and its front ends.
//
// # Catalog Projections
//
// [CatalogItem] is a read-only projection of an artist, album, or track record
// from the upstream catalog. It is the unit of every search result list and
// the core of every detail page. One struct covers all three kinds: fields
// that do not apply to a kind are omitted from the JSON output.
//
// Detail lookups return page types composing a detail item with its related
// summary lists, mirroring what the browser renders on one screen:
//   - [ArtistPage] : artist detail plus their albums
//   - [AlbumPage] : album detail plus its tracks
//   - [TrackPage] : track detail plus audio features when available
//
// # Queries
//
// [SearchQuery] carries one validated search request: free text plus a
// [Kind] filter. Queries are constructed per inbound request and never
// outlive the request that created them.
//
// No type in this package is mutated after construction and nothing here is
// persisted; the lookup cache stores serialized payloads, not these structs.
package models
