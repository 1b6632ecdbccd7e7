// Package flow contains channel helpers for streaming maybe containers:
// context-aware producers that emit wrapped elements one by one, and
// collectors that drain a channel back into a slice. It defines no
// business logic; it is the plumbing counterpart to the eager helpers in
// package lift.
package flow
