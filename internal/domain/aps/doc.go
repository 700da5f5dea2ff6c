// Package aps converts grade sets into admission point scores and
// classifies institutions by how reachable they are for a given score
// and subject-eligibility result.
package aps
