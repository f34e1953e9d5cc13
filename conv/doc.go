// Package conv provides a configurable, reflection-based converter between
// Go values and vectors. It supports slices, arrays, scalars, delimited strings
// and custom conversion functions registered per source type.
package conv
