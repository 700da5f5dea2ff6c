// Package service orchestrates the pure matching engine with the
// catalog and career data sources: read-through caching with
// stale-while-revalidate refresh, and the request-facing eligibility,
// improvement and university operations.
package service
