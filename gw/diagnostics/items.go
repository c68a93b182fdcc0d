// Package diagnostics provides the shared error and warning taxonomy: tagged
// diagnostic items, thread-safe ordered collections of them, and a unified
// result type that carries a success value together with accumulated
// non-fatal warnings.
//
// Collections are cheap-to-clone handles: copying an ErrorList or WarningList
// clones the handle, not the data, so a single collection can be shared
// across goroutines without external synchronization.
package diagnostics

import "fmt"

// ErrorItem is a single tagged, message-carrying error record. It is
// immutable after construction and implements the error interface.
type ErrorItem struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewError creates an ErrorItem with the given kind and message.
func NewError(kind ErrorKind, message string) ErrorItem {
	return ErrorItem{Kind: kind, Message: message}
}

// FromError maps any external error into an ErrorItem carrying the nearest
// matching kind. This is the single boundary conversion for the whole
// library; callers pick the kind, the message comes from the wrapped error.
func FromError(kind ErrorKind, err error) ErrorItem {
	if err == nil {
		return ErrorItem{Kind: kind}
	}
	return ErrorItem{Kind: kind, Message: err.Error()}
}

// FromIO maps an external error to the general input/output kind.
func FromIO(err error) ErrorItem {
	return FromError(KindInputOutput, err)
}

func (e ErrorItem) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// WarningItem is a single tagged warning record. Message may be empty.
type WarningItem struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message,omitempty"`
}

// NewWarning creates a WarningItem without a message.
func NewWarning(kind WarningKind) WarningItem {
	return WarningItem{Kind: kind}
}

// NewWarningDetail creates a WarningItem with a message.
func NewWarningDetail(kind WarningKind, message string) WarningItem {
	return WarningItem{Kind: kind, Message: message}
}

func (w WarningItem) String() string {
	if w.Message == "" {
		return fmt.Sprintf("Warning: %s", w.Kind)
	}
	return fmt.Sprintf("Warning: %s - %s", w.Kind, w.Message)
}
