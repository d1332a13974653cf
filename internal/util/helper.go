package util

// CloneSlice copies src into a new slice of the same length.
//
// The new slice has a capacity of at least capacity, which lets callers preallocate
// room for items appended later. A capacity smaller than len(src) is ignored.
func CloneSlice[T any](src []T, capacity int) []T {
	if capacity < len(src) {
		capacity = len(src)
	}
	clone := make([]T, len(src), capacity)
	copy(clone, src)

	return clone
}
