// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of maybe.Of[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose container-returning or error-returning functions
// - Map: transform the present value
// - Or: pick the first side holding a value
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via per-family handlers
//
// Every step short-circuits unless the current container holds a value, so
// the first absence or failure travels to the end of the chain untouched.
package chain
