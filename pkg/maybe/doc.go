// Package maybe defines immutable result containers that carry either a
// present value or one of several absence/failure representations, so
// callers can report outcomes as data instead of raising errors.
//
// Two containers cooperate:
//   - Maybe: untyped; the value state is a bare presence flag
//   - Of[T]: typed; the value state additionally holds a T payload
//
// Both expose the same side channels: diagnostic message, user-facing
// friendly message, causal error, error aggregate, and numeric error code.
// Containers are built once through a constructor and never mutated, so
// concurrent reads of a single instance need no locking.
//
// Specialize and Generalize convert between the two containers by
// collapsing the source into a single destination state along a fixed
// priority chain; see their documentation for the loss rules.
//
// Packages lift, chain and flow build on these containers for wrapping raw
// values, fluent composition, and channel plumbing.
package maybe
