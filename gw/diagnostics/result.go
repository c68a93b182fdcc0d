package diagnostics

// Result carries either a success value (optionally with accumulated
// non-fatal warnings) or a failure item. Exactly one shape is populated.
//
// Results are consumed once, through Unwrap, Resolve, GetOk or GetErr; every
// consuming accessor flushes queued warnings through the sink so they are
// never silently dropped.
type Result[T any] struct {
	value    T
	warnings *WarningList
	failure  *ErrorItem
}

// Ok wraps a success value without warnings.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// OkWith wraps a success value together with the warnings gathered while
// producing it.
func OkWith[T any](value T, warnings WarningList) Result[T] {
	return Result[T]{value: value, warnings: &warnings}
}

// Fail wraps a failure item.
func Fail[T any](item ErrorItem) Result[T] {
	return Result[T]{failure: &item}
}

// IsOk reports success without consuming the result.
func (r Result[T]) IsOk() bool { return r.failure == nil }

// IsErr reports failure without consuming the result.
func (r Result[T]) IsErr() bool { return r.failure != nil }

// Unwrap is the fail-fast accessor. On success it displays any warnings and
// returns the value; on failure it displays the error with terminate set, so
// the sink's Exit collaborator ends the process and the call does not
// return.
func (r Result[T]) Unwrap(sink Sink) T {
	if r.failure != nil {
		SingleError(*r.failure).Display(sink, true)
		// Reachable only with a non-terminating test sink.
		var zero T
		return zero
	}
	if r.warnings != nil {
		r.warnings.Display(sink)
	}
	return r.value
}

// Resolve is the recoverable accessor. On success it displays any warnings
// and returns the value; on failure it returns the error item with no
// process-level side effect.
func (r Result[T]) Resolve(sink Sink) (T, *ErrorItem) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}
	if r.warnings != nil {
		r.warnings.Display(sink)
	}
	return r.value, nil
}

// GetOk consumes the result and returns the value when present. Warnings are
// displayed as a side effect.
func (r Result[T]) GetOk(sink Sink) (T, bool) {
	value, failure := r.Resolve(sink)
	return value, failure == nil
}

// GetErr consumes the result and returns the failure item when present, nil
// otherwise. Warnings are displayed as a side effect.
func (r Result[T]) GetErr(sink Sink) *ErrorItem {
	_, failure := r.Resolve(sink)
	return failure
}
