// Package visitor offers callback-style visitors over vectors.
// Visitors walk a vector forward, backward or over an iterator range,
// passing each element index and value to the callback.
package visitor
