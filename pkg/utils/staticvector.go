package utils

import (
	"errors"
	"fmt"
)

var ErrCapacityExceeded = errors.New("capacity exceeded")
var ErrIndexOutOfRange = errors.New("index out of range")

// Sequence with a fixed capacity set at construction and a variable logical length.
// The backing storage is allocated once and never grows
type StaticVector[T any] struct {
	size      int
	container []T
}

// Creates an empty static vector able to hold up to capacity items
func MakeStaticVector[T any](capacity int) StaticVector[T] {
	return StaticVector[T]{
		container: make([]T, capacity),
	}
}

// Returns the number of items currently stored
func (v *StaticVector[T]) Len() int {
	return v.size
}

// Returns the maximum number of items the vector can hold
func (v *StaticVector[T]) Cap() int {
	return len(v.container)
}

// Returns true if the vector has no items
func (v *StaticVector[T]) Empty() bool {
	return v.size == 0
}

// Returns the item at the given position. Fails if the position is not within [0, Len())
func (v *StaticVector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.size {
		var zero T
		return zero, MakeError(ErrIndexOutOfRange, "%v is not within [0, %v)", pos, v.size)
	}

	return v.container[pos], nil
}

// Appends an item to the end of the vector. Fails if the vector is full
func (v *StaticVector[T]) PushBack(value T) error {
	if v.size >= len(v.container) {
		return MakeError(ErrCapacityExceeded, "cannot push item #%v into a static vector of capacity %v", v.size+1, len(v.container))
	}

	v.container[v.size] = value
	v.size++
	return nil
}

// Removes the last item of the vector and returns it. Returns false if the vector is empty
func (v *StaticVector[T]) PopBack() (T, bool) {
	var zero T

	if v.size == 0 {
		return zero, false
	}

	v.size--
	value := v.container[v.size]
	v.container[v.size] = zero
	return value, true
}

// Changes the logical length of the vector. Growing exposes zero values, shrinking discards the trailing items
func (v *StaticVector[T]) Resize(count int) error {
	if count < 0 || count > len(v.container) {
		return MakeError(ErrCapacityExceeded, "cannot resize static vector of capacity %v to %v items", len(v.container), count)
	}

	var zero T
	for i := count; i < v.size; i++ {
		v.container[i] = zero
	}

	v.size = count
	return nil
}

// Removes all items
func (v *StaticVector[T]) Clear() {
	_ = v.Resize(0)
}

// Returns the stored items. The returned slice aliases the vector storage
func (v *StaticVector[T]) Items() []T {
	return v.container[:v.size]
}

func (v StaticVector[T]) String() string {
	return fmt.Sprintf("[%v]", FormatSlice(v.container[:v.size], " "))
}
