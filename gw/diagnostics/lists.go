package diagnostics

import (
	"fmt"
	"sync"
)

// popSentinelMessage is returned by Pop on an empty ErrorList.
const popSentinelMessage = "No previous error"

type errorListInner struct {
	mu    sync.RWMutex
	items []ErrorItem
}

// ErrorList is a shared, thread-safe, ordered collection of error items.
// Copying an ErrorList copies the handle; both copies operate on the same
// underlying sequence.
type ErrorList struct {
	inner *errorListInner
}

// NewErrorList creates a list seeded with the given items.
func NewErrorList(items ...ErrorItem) ErrorList {
	inner := &errorListInner{items: make([]ErrorItem, 0, max(len(items), 2))}
	inner.items = append(inner.items, items...)
	return ErrorList{inner: inner}
}

// SingleError wraps one item in a fresh list.
func SingleError(item ErrorItem) ErrorList {
	return NewErrorList(item)
}

// Push appends an item. Never fails.
func (l ErrorList) Push(item ErrorItem) {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	l.inner.items = append(l.inner.items, item)
}

// Pop removes and returns the most recently pushed item. An empty list
// yields the "No previous error" sentinel instead of failing.
func (l ErrorList) Pop() ErrorItem {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	if len(l.inner.items) == 0 {
		return NewError(KindGeneralError, popSentinelMessage)
	}
	last := l.inner.items[len(l.inner.items)-1]
	l.inner.items = l.inner.items[:len(l.inner.items)-1]
	return last
}

// Append moves all items from other to the end of this list, draining
// other. Appending a list to itself is a no-op. The two locks are never held
// together, so concurrent cross-appends cannot deadlock.
func (l ErrorList) Append(other ErrorList) {
	if l.inner == other.inner {
		return
	}
	other.inner.mu.Lock()
	moved := other.inner.items
	// Nil out rather than reslice: moved still owns the old backing array.
	other.inner.items = nil
	other.inner.mu.Unlock()

	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	l.inner.items = append(l.inner.items, moved...)
}

// Clear empties the list in place.
func (l ErrorList) Clear() {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	l.inner.items = l.inner.items[:0]
}

// Len returns the current item count.
func (l ErrorList) Len() int {
	l.inner.mu.RLock()
	defer l.inner.mu.RUnlock()
	return len(l.inner.items)
}

// Items returns a snapshot of the list in push order.
func (l ErrorList) Items() []ErrorItem {
	l.inner.mu.RLock()
	defer l.inner.mu.RUnlock()
	out := make([]ErrorItem, len(l.inner.items))
	copy(out, l.inner.items)
	return out
}

// Display emits every item in push order through the sink at error level
// and clears the list. With terminate set, the sink's Exit collaborator is
// invoked with a non-zero status after the last item instead; it does not
// return in production.
func (l ErrorList) Display(sink Sink, terminate bool) {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	for _, item := range l.inner.items {
		sink.Error(fmt.Sprintf("We encountered the following error: %s - %s", item.Kind, item.Message))
	}
	if terminate {
		sink.Exit(1)
		return
	}
	l.inner.items = l.inner.items[:0]
}

type warningListInner struct {
	mu    sync.RWMutex
	items []WarningItem
}

// WarningList is a shared, thread-safe, ordered collection of warning items.
// Like ErrorList it is a cheap-to-clone handle.
type WarningList struct {
	inner *warningListInner
}

// NewWarningList creates a list seeded with the given items.
func NewWarningList(items ...WarningItem) WarningList {
	inner := &warningListInner{items: make([]WarningItem, 0, len(items))}
	inner.items = append(inner.items, items...)
	return WarningList{inner: inner}
}

// SingleWarning wraps one item in a fresh list.
func SingleWarning(item WarningItem) WarningList {
	return NewWarningList(item)
}

// Push appends an item. Never fails.
func (l WarningList) Push(item WarningItem) {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	l.inner.items = append(l.inner.items, item)
}

// Pop removes and returns the most recently pushed item, if any.
func (l WarningList) Pop() (WarningItem, bool) {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	if len(l.inner.items) == 0 {
		return WarningItem{}, false
	}
	last := l.inner.items[len(l.inner.items)-1]
	l.inner.items = l.inner.items[:len(l.inner.items)-1]
	return last, true
}

// Append moves all items from other to the end of this list, draining
// other. Appending a list to itself is a no-op. The two locks are never held
// together, so concurrent cross-appends cannot deadlock.
func (l WarningList) Append(other WarningList) {
	if l.inner == other.inner {
		return
	}
	other.inner.mu.Lock()
	moved := other.inner.items
	other.inner.items = nil
	other.inner.mu.Unlock()

	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	l.inner.items = append(l.inner.items, moved...)
}

// Clear empties the list in place.
func (l WarningList) Clear() {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	l.inner.items = l.inner.items[:0]
}

// Len returns the current item count.
func (l WarningList) Len() int {
	l.inner.mu.RLock()
	defer l.inner.mu.RUnlock()
	return len(l.inner.items)
}

// Items returns a snapshot of the list in push order.
func (l WarningList) Items() []WarningItem {
	l.inner.mu.RLock()
	defer l.inner.mu.RUnlock()
	out := make([]WarningItem, len(l.inner.items))
	copy(out, l.inner.items)
	return out
}

// Display emits every item in push order through the sink at warn level and
// clears the list.
func (l WarningList) Display(sink Sink) {
	l.inner.mu.Lock()
	defer l.inner.mu.Unlock()
	for _, item := range l.inner.items {
		sink.Warn(item.String())
	}
	l.inner.items = l.inner.items[:0]
}
