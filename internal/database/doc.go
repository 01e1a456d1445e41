// Package database owns the storefront schema, the typed error surface,
// and the cross-entity transactional operations (purchases, developer
// deletion, aggregate reconciliation). Per-entity repositories live in
// subpackages.
package database
