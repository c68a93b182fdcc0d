// Package stringy provides a copy-cheap string wrapper. A Stringy starts
// immutable, sharing its backing data across clones, and switches to an
// owned mutable buffer only when the caller first mutates it in place. Once
// mutable it stays mutable.
package stringy

import "encoding/json"

// Stringy is an immutable-by-default string with an on-demand mutable
// fallback.
type Stringy struct {
	shared  string
	buf     []byte
	mutable bool
}

// From creates an immutable Stringy from s.
func From(s string) Stringy {
	return Stringy{shared: s}
}

// String returns the current contents.
func (s Stringy) String() string {
	if s.mutable {
		return string(s.buf)
	}
	return s.shared
}

// Len returns the length in bytes.
func (s Stringy) Len() int {
	if s.mutable {
		return len(s.buf)
	}
	return len(s.shared)
}

// IsMutable reports whether the value has been promoted to its mutable
// representation.
func (s Stringy) IsMutable() bool { return s.mutable }

// Mutate applies f to the contents in place, promoting to the mutable
// representation on first use. The promotion is one-way.
func (s *Stringy) Mutate(f func(*[]byte)) {
	if !s.mutable {
		s.buf = []byte(s.shared)
		s.shared = ""
		s.mutable = true
	}
	f(&s.buf)
}

// Clone returns a copy. Immutable values share their backing string; mutable
// values get an independent buffer so later mutations do not alias.
func (s Stringy) Clone() Stringy {
	if !s.mutable {
		return Stringy{shared: s.shared}
	}
	buf := make([]byte, len(s.buf))
	copy(buf, s.buf)
	return Stringy{buf: buf, mutable: true}
}

// Equal compares contents, ignoring representation.
func (s Stringy) Equal(other Stringy) bool {
	return s.String() == other.String()
}

// MarshalJSON encodes the contents as a plain JSON string.
func (s Stringy) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string into an immutable Stringy.
func (s *Stringy) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = From(raw)
	return nil
}
