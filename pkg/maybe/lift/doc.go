// Package lift contains the entry points for wrapping raw values, errors
// and strings into maybe containers.
//
// Highlights:
// - Value: wrap a raw value, treating nil/zero input as absence
// - Err/ErrOf: wrap a thrown cause into the error state
// - Errs: wrap a joined error as an ordered error aggregate
// - Message: wrap a diagnostic string
// - String: wrap a string as payload or diagnostic, per flag
// - All: eagerly wrap a whole slice element-by-element
package lift
