package vector

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/francoispqt/gojay"
)

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (v *Vector) MarshalJSONArray(enc *gojay.Encoder) {
	for i := 0; i < v.size; i++ {
		enc.Int(v.buffer[i])
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (v *Vector) IsNil() bool {
	return v == nil
}

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray, it is called once per array element.
// Fractional or out of range numbers are rejected with ErrInvalidElement, null decodes as 0.
func (v *Vector) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	value, err := parseElement(string(bytes.TrimSpace(raw)))
	if err != nil {
		return err
	}
	v.PushBack(value)
	return nil
}

func parseElement(text string) (Element, error) {
	if text == "null" {
		return 0, nil
	}
	if value, err := strconv.ParseInt(text, 10, strconv.IntSize); err == nil {
		return Element(value), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidElement, text)
	}
	if f != math.Trunc(f) || f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%w: %s is not an integer in range", ErrInvalidElement, text)
	}
	return Element(f), nil
}

// MarshalJSON encodes elements as a JSON array
func (v *Vector) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONArray(v)
}

// UnmarshalJSON replaces elements with the decoded JSON array, null leaves the vector empty
func (v *Vector) UnmarshalJSON(data []byte) error {
	v.Clear()
	return gojay.UnmarshalJSONArray(data, v)
}
