package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// IndexFunc returns the index of the first element matching pred, or -1.
func IndexFunc[T any](slice []T, pred func(T) bool) int {
	for i, v := range slice {
		if pred(v) {
			return i
		}
	}
	return -1
}

// Remove deletes the first occurrence of item, keeping order. Reports whether it was found.
func Remove[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	return RemoveAt(slice, i), true
}

func RemoveAt[T any](slice []T, i int) []T {
	return append(slice[:i:i], slice[i+1:]...)
}

// Count returns how many elements satisfy pred.
func Count[T any](slice []T, pred func(T) bool) int {
	n := 0
	for _, v := range slice {
		if pred(v) {
			n++
		}
	}
	return n
}
