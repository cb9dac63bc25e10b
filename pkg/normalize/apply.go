package normalize

// Apply runs value through each transform in order, feeding every transform
// the output of the previous one.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable pipeline from the given transforms. Preferred over
// repeated Apply calls when the same chain is used in multiple places.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
