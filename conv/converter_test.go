package conv

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/vector"
)

func TestConvertToVector(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	number := 7
	var nilSlice *[]int

	testCases := []struct {
		name        string
		src         interface{}
		expected    []vector.Element
		expectError bool
	}{
		{"nil", nil, nil, false},
		{"nil pointer", nilSlice, nil, false},
		{"ints", []int{1, 2, 3}, []vector.Element{1, 2, 3}, false},
		{"int32 array", [3]int32{4, 5, 6}, []vector.Element{4, 5, 6}, false},
		{"floats", []float64{1, 2.9, -3.5}, []vector.Element{1, 2, -3}, false},
		{"any", []interface{}{1, "2", 3.0, true, nil, uint8(9)}, []vector.Element{1, 2, 3, 1, 0, 9}, false},
		{"pointer to slice", &[]uint16{10, 20}, []vector.Element{10, 20}, false},
		{"scalar", 42, []vector.Element{42}, false},
		{"scalar pointer", &number, []vector.Element{7}, false},
		{"string", "1, 2,0x10, 1e2", []vector.Element{1, 2, 16, 100}, false},
		{"bytes", []byte("3,4"), []vector.Element{3, 4}, false},
		{"blank string", "  ", nil, false},
		{"vector", vector.Of(8, 9), []vector.Element{8, 9}, false},
		{"nil vector", (*vector.Vector)(nil), nil, false},
		{"invalid string", "1,x", nil, true},
		{"overflow", []uint64{1 << 63}, nil, true},
		{"unsupported", []complex128{1}, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := vector.Of(100, 200)
			err := converter.Convert(tc.src, result)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, len(tc.expected), result.Size())
			if len(tc.expected) > 0 {
				assert.EqualValues(t, tc.expected, result.Values())
			}
		})
	}
}

func TestConvertOptions(t *testing.T) {
	testCases := []struct {
		name        string
		options     Options
		src         interface{}
		expected    []vector.Element
		expectError bool
	}{
		{
			name:        "no truncation",
			options:     Options{Separator: ","},
			src:         []float64{1.5},
			expectError: true,
		},
		{
			name:     "integral float without truncation",
			options:  Options{Separator: ","},
			src:      []float32{2, 3},
			expected: []vector.Element{2, 3},
		},
		{
			name:     "custom separator",
			options:  Options{Separator: "|", Truncate: true},
			src:      "1|2|3",
			expected: []vector.Element{1, 2, 3},
		},
		{
			name:     "no separator",
			options:  Options{},
			src:      "12",
			expected: []vector.Element{12},
		},
		{
			name:     "skip invalid",
			options:  Options{Separator: ",", SkipInvalid: true},
			src:      []interface{}{1, "x", 2, struct{}{}},
			expected: []vector.Element{1, 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := vector.New()
			err := NewConverter(tc.options).Convert(tc.src, result)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.EqualValues(t, tc.expected, result.Values())
		})
	}
}

func TestConvertVectorToItself(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	v := vector.Of(1, 2, 3)
	data := v.Data()
	assert.NoError(t, converter.Convert(v, v))
	assert.EqualValues(t, []vector.Element{1, 2, 3}, v.Values())
	assert.Equal(t, data, v.Data())
}

func TestRegisterConversion(t *testing.T) {
	type point struct{ X, Y int }
	converter := NewConverter(DefaultOptions())
	converter.RegisterConversion(reflect.TypeOf(point{}), func(src interface{}, dest *vector.Vector, opts Options) error {
		p := src.(point)
		dest.PushBack(p.X)
		dest.PushBack(p.Y)
		return nil
	})
	result := vector.New()
	err := converter.Convert(point{X: 3, Y: 4}, result)
	assert.NoError(t, err)
	assert.EqualValues(t, []vector.Element{3, 4}, result.Values())

	failure := errors.New("failure")
	converter.RegisterConversion(reflect.TypeOf(""), func(src interface{}, dest *vector.Vector, opts Options) error {
		return failure
	})
	assert.ErrorIs(t, converter.Convert("1,2", result), failure)
	assert.Error(t, converter.Convert(1, nil))
}

func TestToVector(t *testing.T) {
	v, err := ToVector([]interface{}{"5", 6})
	if !assert.NoError(t, err) {
		return
	}
	assert.True(t, v.Equal(vector.Of(5, 6)))

	_, err = ToVector("a")
	assert.Error(t, err)
}

func TestFromVector(t *testing.T) {
	src := vector.Of(1, 0, 300)

	var ints []int64
	assert.NoError(t, FromVector(src, &ints))
	assert.EqualValues(t, []int64{1, 0, 300}, ints)

	var floats []float64
	assert.NoError(t, FromVector(src, &floats))
	assert.EqualValues(t, []float64{1, 0, 300}, floats)

	var texts []string
	assert.NoError(t, FromVector(src, &texts))
	assert.EqualValues(t, []string{"1", "0", "300"}, texts)

	var flags []bool
	assert.NoError(t, FromVector(src, &flags))
	assert.EqualValues(t, []bool{true, false, true}, flags)

	var anys []interface{}
	assert.NoError(t, FromVector(src, &anys))
	assert.EqualValues(t, []interface{}{1, 0, 300}, anys)

	var small []uint8
	assert.Error(t, FromVector(src, &small))
	assert.Error(t, FromVector(vector.Of(-1), &[]uint{}))
	assert.Error(t, FromVector(src, ints))
	assert.Error(t, FromVector(src, &[]struct{}{}))

	var empty []int
	assert.NoError(t, FromVector(vector.New(), &empty))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
