// Package sync implements the catalog reconciliation pipeline: it fetches
// loosely-structured records from the upstream Icoltex webhook, normalizes
// heterogeneous field names and nesting shapes into the canonical catalog
// schema, deduplicates, and upserts idempotently while tolerating partial
// failures per record.
//
// # Pipeline
//
//	fetch -> unwrap -> map -> reconcile -> RunResult
//
//   - Fetcher retrieves raw items (JSON array, wrapped object, or NDJSON)
//     with Basic Auth; missing configuration or an unusable response is
//     fatal for the whole run.
//   - Unwrap flattens wrapper envelopes (result/data/value) so one fetched
//     item can expand into zero, one, or many records.
//   - Mappers resolve identifying fields across every known spelling (with
//     a fuzzy diacritic-insensitive fallback) and produce canonical
//     entities; records without an identifier are skipped, not failed.
//   - The reconciler upserts each mapped entity by its unique key,
//     suppresses in-run duplicates for taxonomy names, and accumulates
//     counts. A single bad record never aborts the run.
//
// # Reporting
//
// RunResult is the entire outward contract: totalFetched counts raw items
// before unwrapping, while created+updated+skipped+errors equals the record
// count after unwrapping. Details carries per-record skip and error notes in
// processing order.
//
// # Concurrency
//
// Upserts do a non-atomic lookup-then-write, so the service holds one mutex
// per entity type; two syncs of the same type never run concurrently.
//
// # HTTP Endpoints
//
//   - GET  /sync/status
//   - POST /sync/clients, /sync/products, /sync/categories, /sync/classes
package sync
