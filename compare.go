package vector

import "cmp"

// Equal returns true if both vectors have the same size and equal elements in index order
func (v *Vector) Equal(other *Vector) bool {
	if v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if v.buffer[i] != other.buffer[i] {
			return false
		}
	}
	return true
}

// Compare orders vectors lexicographically: it returns 0 when Equal reports true,
// otherwise the first differing element decides, and a vector that is a prefix of the other is less.
func (v *Vector) Compare(other *Vector) int {
	if v.Equal(other) {
		return 0
	}
	n := min(v.size, other.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(v.buffer[i], other.buffer[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(v.size, other.size)
}

// Less returns true if v orders before other
func (v *Vector) Less(other *Vector) bool {
	return v.Compare(other) < 0
}
