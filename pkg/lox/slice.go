package lox

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// IndexBy maps the key returned by callback to the position of the item in
// collection. Items for which callback reports false are skipped.
func IndexBy[T any, R comparable](collection []T, callback func(item T) (R, bool)) map[R]int {
	result := make(map[R]int, len(collection))

	for i, item := range collection {
		if r, ok := callback(item); ok {
			result[r] = i
		}
	}

	return result
}
