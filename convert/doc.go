// Package convert holds the conversions the lessons demonstrate: infallible
// construction (NumberFrom), fallible constrained conversion (EvenNumberFrom), text
// parsing (ParseInt, ParseDecimal) and primitive casts with spelled-out rules.
//
// Failures are typed: *ParseError for bad numerals and *ConversionError for values
// that break a target's precondition.
package convert
