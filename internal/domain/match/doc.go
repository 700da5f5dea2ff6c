// Package match implements the grade-matching engine: subject-name
// normalization across curricula, grade lookup through alias and
// either/or resolution, eligibility classification against a career's
// requirement set, and per-subject improvement deltas.
//
// All calculations are pure and synchronous over their inputs, perform
// no I/O, and may be called freely from any goroutine without locking.
package match
