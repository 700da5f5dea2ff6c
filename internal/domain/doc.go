// Package domain contains the core value types of the grade-matching
// engine: student grade sets, per-country subject catalogs, career
// requirement sets, and the results produced by the evaluators.
//
// Everything in this package is a value object computed per request.
// No entity has independent identity or shared mutable state; results
// are immutable once returned.
package domain
