// Package store defines the persistence interfaces consumed by the
// service layer, the shared DBTX abstraction, and the sentinel error
// taxonomy used across all store implementations.
package store
