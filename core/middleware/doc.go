// Package middleware groups HTTP middleware used by the catalog hub.
//
// Subpackages:
//   - rayid: assigns a correlation ID to every request.
//   - auth: verifies JWT tokens and enforces role requirements.
package middleware
