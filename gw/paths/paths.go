// Package paths provides PathValue, a tagged union over the different ways a
// filesystem path reaches the library: an owned path buffer, a borrowed path,
// a borrowed string, or raw string content. All variants convert to the same
// canonical owned form.
//
// Equality is structural over tag and payload: two PathValues naming the same
// file through different variants are NOT Equal. Callers that want
// disk-equivalence should use SamePath instead. This structural default is
// deliberate; downstream code relies on it.
package paths

import "path/filepath"

// Kind tags the provenance of a PathValue.
type Kind uint8

const (
	// KindBuffer is an owned path buffer.
	KindBuffer Kind = iota
	// KindBorrowed is a path borrowed from elsewhere.
	KindBorrowed
	// KindStr is a borrowed string slice treated as a path.
	KindStr
	// KindContent is owned string content treated as a path.
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "Buffer"
	case KindBorrowed:
		return "Borrowed"
	case KindStr:
		return "Str"
	case KindContent:
		return "Content"
	}
	return "Unknown"
}

// PathValue is a tagged path representation. The zero value is an empty
// Buffer path. PathValue is a plain value type; copying it clones it.
type PathValue struct {
	kind Kind
	path string
}

// FromBuffer wraps an owned path buffer.
func FromBuffer(path string) PathValue {
	return PathValue{kind: KindBuffer, path: path}
}

// FromBorrowed wraps a borrowed path.
func FromBorrowed(path string) PathValue {
	return PathValue{kind: KindBorrowed, path: path}
}

// FromString wraps a borrowed string.
func FromString(path string) PathValue {
	return PathValue{kind: KindStr, path: path}
}

// FromContent wraps owned string content.
func FromContent(path string) PathValue {
	return PathValue{kind: KindContent, path: path}
}

// Kind returns the provenance tag.
func (p PathValue) Kind() Kind { return p.kind }

// Filepath returns the canonical owned path. Variants constructed from the
// same input string yield byte-identical results.
func (p PathValue) Filepath() string { return p.path }

// String renders the path for display.
func (p PathValue) String() string { return p.path }

// Equal is structural: both the tag and the payload must match. A Content
// path and a Buffer path naming the same file are not Equal.
func (p PathValue) Equal(other PathValue) bool {
	return p.kind == other.kind && p.path == other.path
}

// SamePath reports whether both values canonicalize to the same path,
// regardless of variant.
func (p PathValue) SamePath(other PathValue) bool {
	return filepath.Clean(p.path) == filepath.Clean(other.path)
}

// Base returns the last element of the path.
func (p PathValue) Base() string { return filepath.Base(p.path) }

// Dir returns all but the last element of the path.
func (p PathValue) Dir() string { return filepath.Dir(p.path) }

// Join appends elements to the path, returning a Buffer-variant value.
func (p PathValue) Join(elem ...string) PathValue {
	parts := append([]string{p.path}, elem...)
	return FromBuffer(filepath.Join(parts...))
}
