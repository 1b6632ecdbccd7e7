package maybe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the read-only flag surface shared by Maybe and Of[T].
type State interface {
	// HasValue reports the value state
	HasValue() bool
	// HasMessage reports a diagnostic message
	HasMessage() bool
	Message() string
	// HasFriendlyMessage reports a user-facing message
	HasFriendlyMessage() bool
	FriendlyMessage() string
	// IsError reports a causal failure
	IsError() bool
	Err() error
	// Errs returns the failure aggregate, never nil
	Errs() []error
	// HasErrorCode reports a coded failure
	HasErrorCode() bool
	ErrorCode() int
	// IsEmpty reports that no channel is set at all
	IsEmpty() bool
}

// Tracked exposes container identity
type Tracked interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ State   = Maybe{}
	_ State   = Of[string]{}
	_ Tracked = Maybe{}
	_ Tracked = Of[string]{}
)

// Describe renders the authoritative state of a container as one line,
// resolving channels in the same priority order as Specialize.
func Describe(s State) string {
	switch {
	case s.HasValue():
		return "value"
	case s.HasMessage() && s.IsError():
		return fmt.Sprintf("message: %s (cause: %v)", s.Message(), s.Err())
	case s.HasMessage():
		return "message: " + s.Message()
	case s.HasFriendlyMessage():
		return "friendly: " + s.FriendlyMessage()
	case s.IsError() && s.Err() != nil:
		return fmt.Sprintf("error: %v", s.Err())
	case len(s.Errs()) > 0:
		return fmt.Sprintf("errors: %d", len(s.Errs()))
	case s.HasErrorCode():
		return fmt.Sprintf("code: %d", s.ErrorCode())
	default:
		return "empty"
	}
}
