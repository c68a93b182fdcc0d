// Package ringbuf provides a fixed-capacity rolling buffer of timestamped
// lines. When the buffer is full the oldest entry is evicted first, so the
// buffer always holds the most recent lines in push order.
package ringbuf

import "time"

// Entry is a single buffered line and the time it was pushed.
type Entry struct {
	At   time.Time
	Line string
}

// RollingBuffer stores up to a fixed number of recent lines.
//
// The zero value is unusable; construct with New. A capacity of zero is
// allowed and makes Push a no-op. RollingBuffer is not internally
// synchronized; callers sharing one across goroutines must wrap it with
// their own lock.
type RollingBuffer struct {
	entries  []Entry
	head     int
	count    int
	capacity int
}

// New creates a RollingBuffer with the given capacity.
func New(capacity int) *RollingBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &RollingBuffer{
		entries:  make([]Entry, capacity),
		capacity: capacity,
	}
}

// Cap returns the maximum number of lines the buffer can hold.
func (rb *RollingBuffer) Cap() int { return rb.capacity }

// Len returns the number of lines currently buffered.
func (rb *RollingBuffer) Len() int { return rb.count }

// IsEmpty reports whether the buffer holds no lines.
func (rb *RollingBuffer) IsEmpty() bool { return rb.count == 0 }

// IsFull reports whether the buffer is at capacity.
func (rb *RollingBuffer) IsFull() bool { return rb.count == rb.capacity }

// Push appends a line stamped with the current time, evicting the oldest
// line first when the buffer is at capacity.
func (rb *RollingBuffer) Push(line string) {
	rb.PushAt(time.Now(), line)
}

// PushAt appends a line with an explicit timestamp.
func (rb *RollingBuffer) PushAt(at time.Time, line string) {
	if rb.capacity == 0 {
		return
	}
	if rb.count == rb.capacity {
		// Evict the oldest entry.
		rb.head = (rb.head + 1) % rb.capacity
		rb.count--
	}
	rb.entries[(rb.head+rb.count)%rb.capacity] = Entry{At: at, Line: line}
	rb.count++
}

// Front returns the oldest line without removing it.
func (rb *RollingBuffer) Front() (string, bool) {
	if rb.count == 0 {
		return "", false
	}
	return rb.entries[rb.head].Line, true
}

// Back returns the most recent line without removing it.
func (rb *RollingBuffer) Back() (string, bool) {
	if rb.count == 0 {
		return "", false
	}
	return rb.entries[(rb.head+rb.count-1)%rb.capacity].Line, true
}

// PopFront removes and returns the oldest line.
func (rb *RollingBuffer) PopFront() (string, bool) {
	if rb.count == 0 {
		return "", false
	}
	line := rb.entries[rb.head].Line
	rb.entries[rb.head] = Entry{}
	rb.head = (rb.head + 1) % rb.capacity
	rb.count--
	return line, true
}

// PopBack removes and returns the most recent line.
func (rb *RollingBuffer) PopBack() (string, bool) {
	if rb.count == 0 {
		return "", false
	}
	idx := (rb.head + rb.count - 1) % rb.capacity
	line := rb.entries[idx].Line
	rb.entries[idx] = Entry{}
	rb.count--
	return line, true
}

// Snapshot returns the buffered lines from oldest to newest.
func (rb *RollingBuffer) Snapshot() []string {
	lines := make([]string, 0, rb.count)
	for i := 0; i < rb.count; i++ {
		lines = append(lines, rb.entries[(rb.head+i)%rb.capacity].Line)
	}
	return lines
}

// Entries returns copies of the buffered entries from oldest to newest.
func (rb *RollingBuffer) Entries() []Entry {
	entries := make([]Entry, 0, rb.count)
	for i := 0; i < rb.count; i++ {
		entries = append(entries, rb.entries[(rb.head+i)%rb.capacity])
	}
	return entries
}

// Clear removes all lines from the buffer.
func (rb *RollingBuffer) Clear() {
	for i := range rb.entries {
		rb.entries[i] = Entry{}
	}
	rb.head = 0
	rb.count = 0
}
