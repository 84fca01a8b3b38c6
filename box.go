// Package optionalbox provides Box, a value-semantic container for zero or
// one items of a type, replacing nil-pointer and magic-number sentinels with
// an explicit presence flag.
//
// A Box is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize externally.
package optionalbox

import (
	"github.com/pkg/errors"
)

// Box holds at most one item of type T. The zero value is an empty box.
// Copying a box copies the item; copies never share storage.
type Box[T any] struct {
	item   T
	exists bool
}

// Some returns an occupied box holding value.
func Some[T any](value T) Box[T] {
	return Box[T]{
		item:   value,
		exists: true,
	}
}

// None returns an empty box, interchangeable with the zero value. It is the
// spelled-out form of constructing a box from Empty.
func None[T any]() Box[T] {
	return Box[T]{}
}

// Exists reports whether the box currently holds an item.
func (me *Box[T]) Exists() bool {
	return me.exists
}

// IsEmpty reports whether the box holds no item.
func (me *Box[T]) IsEmpty() bool {
	return !me.exists
}

// Unpack returns the item and whether it was present. On an empty box the
// item is the zero value of T.
func (me *Box[T]) Unpack() (T, bool) {
	return me.item, me.exists
}

// Value returns a copy of the item, or ErrNoValue if the box is empty.
func (me *Box[T]) Value() (T, error) {
	if !me.exists {
		var zero T
		return zero, errors.WithStack(ErrNoValue)
	}
	return me.item, nil
}

// Ptr returns a pointer to the item for in-place mutation, or ErrNoValue if
// the box is empty. Clear, Set, and Take invalidate the pointer.
func (me *Box[T]) Ptr() (*T, error) {
	if !me.exists {
		return nil, errors.WithStack(ErrNoValue)
	}
	return &me.item, nil
}

// MustValue returns the item, panicking with ErrNoValue if the box is empty.
func (me *Box[T]) MustValue() T {
	if !me.exists {
		panic(errors.WithStack(ErrNoValue))
	}
	return me.item
}

// UnsafePtr returns a pointer to the box's storage without checking
// presence. On an empty box it points at the zero value of T, and writing
// through it does not mark the box occupied. It is a fast path for callers
// that have already checked Exists; everything else should use Ptr.
func (me *Box[T]) UnsafePtr() *T {
	return &me.item
}

// Or returns the item if present, otherwise defaultValue.
func (me *Box[T]) Or(defaultValue T) T {
	if me.exists {
		return me.item
	}
	return defaultValue
}

// Set replaces any held item with value and marks the box occupied.
func (me *Box[T]) Set(value T) {
	me.item = value
	me.exists = true
}

// Clear empties the box, zeroing its storage so the old item is released.
// Clearing an empty box is a no-op. Assigning the Empty marker means
// calling Clear.
func (me *Box[T]) Clear() {
	var zero T
	me.item = zero
	me.exists = false
}

// Take moves the contents out: it returns a box holding the receiver's item
// and leaves the receiver empty with zeroed storage. Taking from an empty
// box returns an empty box.
func (me *Box[T]) Take() Box[T] {
	out := *me
	me.Clear()
	return out
}
