package diagnostics

// Sink receives displayed diagnostics, one call per item, in push order. The
// logging package provides the production implementation; tests substitute
// their own.
type Sink interface {
	// Error emits one error-level line.
	Error(msg string)
	// Warn emits one warn-level line.
	Warn(msg string)
	// Exit terminates the process with the given status. A fatal Display
	// calls it once, after every queued item has been emitted. Production
	// implementations do not return from it.
	Exit(code int)
}
