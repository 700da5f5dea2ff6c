// Package testutils provides shared fixtures and helpers for tests.
package testutils
