package visitor

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Collect returns all visited elements in visiting order
func (v Visitor[K, E]) Collect() ([]E, error) {
	var result []E
	err := v(func(key K, element E) (bool, error) {
		result = append(result, element)
		return true, nil
	})
	return result, err
}

// Keys returns all visited keys in visiting order
func (v Visitor[K, E]) Keys() ([]K, error) {
	var result []K
	err := v(func(key K, element E) (bool, error) {
		result = append(result, key)
		return true, nil
	})
	return result, err
}
