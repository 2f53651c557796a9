// Package catalog implements persistence and read access for the canonical
// catalog: clients, products, and the category/class taxonomy.
//
// # Stores
//
// Each entity has a store over GORM exposing the minimal capability surface
// the sync reconciler needs: a unique-key lookup (exact for document numbers
// and product codes, case-insensitive for taxonomy names), Insert, and
// UpdateFields. Absence is reported as (nil, nil), not an error.
//
// Taxonomy slugs are derived from the name at insert time only; updating an
// existing entry never rewrites its slug, so published URLs stay stable.
//
// # HTTP Endpoints
//
//   - GET /clients, /clients/:documentNumber
//   - GET /products, /products/:code (filters: category, class, active)
//   - GET /categories, /classes
package catalog
