package conv

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/viant/vector"
	"github.com/viant/xunsafe"
)

// DefaultSeparator is the default separator used to split string sources
const DefaultSeparator = ","

// Options contains configuration for the converter
type Options struct {
	// Separator splits a string source into elements, empty separator parses the whole string as one element
	Separator string
	// Truncate allows fractional floats, the fraction is dropped; otherwise they fail to convert
	Truncate bool
	// SkipInvalid ignores elements that cannot be converted instead of failing
	SkipInvalid bool
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		Separator: DefaultSeparator,
		Truncate:  true,
	}
}

// Converter converts Go values into vectors and vectors into typed slices
type Converter struct {
	options       Options
	customConvMap sync.Map // map[reflect.Type]ConversionFunc
}

// ConversionFunc defines a custom conversion function filling dest from src
type ConversionFunc func(src interface{}, dest *vector.Vector, opts Options) error

var elementType = reflect.TypeOf(vector.Element(0))

// NewConverter creates a new converter with the provided options
func NewConverter(options Options) *Converter {
	return &Converter{
		options: options,
	}
}

// RegisterConversion registers a custom conversion function for a source type
func (c *Converter) RegisterConversion(srcType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(srcType, fn)
}

// Convert replaces dest elements with elements converted from src.
// Supported sources: nil, *vector.Vector, slices and arrays of convertible values,
// numbers, bools and strings (split with Options.Separator).
func (c *Converter) Convert(src interface{}, dest *vector.Vector) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	if actual, ok := src.(*vector.Vector); ok {
		if actual == dest {
			return nil
		}
		if actual == nil {
			dest.Clear()
			return nil
		}
	}
	dest.Clear()
	if src == nil {
		return nil
	}
	srcValue := reflect.ValueOf(src)
	if v, ok := c.customConvMap.Load(srcValue.Type()); ok {
		return v.(ConversionFunc)(src, dest, c.options)
	}
	switch actual := src.(type) {
	case *vector.Vector:
		dest.Assign(actual)
		return nil
	case []vector.Element:
		dest.Reserve(len(actual))
		for _, item := range actual {
			dest.PushBack(item)
		}
		return nil
	case string:
		return c.convertString(actual, dest)
	}
	srcValue = indirect(srcValue)
	switch srcValue.Kind() {
	case reflect.Ptr, reflect.Interface:
		return nil // nil pointer
	case reflect.Slice:
		return c.convertSlice(src, srcValue, dest)
	case reflect.Array:
		dest.Reserve(srcValue.Len())
		for i := 0; i < srcValue.Len(); i++ {
			if err := c.appendValue(dest, srcValue.Index(i).Interface(), i); err != nil {
				return err
			}
		}
		return nil
	}
	return c.appendValue(dest, srcValue.Interface(), 0)
}

func (c *Converter) convertSlice(src interface{}, srcValue reflect.Value, dest *vector.Vector) error {
	if srcValue.Type().Elem().Kind() == reflect.Uint8 {
		return c.convertString(string(srcValue.Bytes()), dest)
	}
	if reflect.TypeOf(src).Kind() == reflect.Ptr {
		src = srcValue.Interface()
	}
	valuePtr := xunsafe.AsPointer(src)
	xSlice := xunsafe.NewSlice(srcValue.Type())
	sliceLen := xSlice.Len(valuePtr)
	dest.Reserve(sliceLen)
	for i := 0; i < sliceLen; i++ {
		if err := c.appendValue(dest, xSlice.ValueAt(valuePtr, i), i); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) convertString(src string, dest *vector.Vector) error {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	items := []string{src}
	if c.options.Separator != "" {
		items = strings.Split(src, c.options.Separator)
	}
	dest.Reserve(len(items))
	for i, item := range items {
		if err := c.appendValue(dest, strings.TrimSpace(item), i); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) appendValue(dest *vector.Vector, value interface{}, index int) error {
	element, err := c.convertToElement(reflect.ValueOf(value))
	if err != nil {
		if c.options.SkipInvalid {
			return nil
		}
		return fmt.Errorf("error converting element %d: %w", index, err)
	}
	dest.PushBack(element)
	return nil
}

func (c *Converter) convertToElement(srcValue reflect.Value) (vector.Element, error) {
	if !srcValue.IsValid() {
		return 0, nil
	}
	srcValue = indirect(srcValue)
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return vector.Element(srcValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v := srcValue.Uint()
		if v > math.MaxInt {
			return 0, fmt.Errorf("value %d overflows %v", v, elementType)
		}
		return vector.Element(v), nil
	case reflect.Float32, reflect.Float64:
		return c.floatToElement(srcValue.Float())
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		text := srcValue.String()
		if strings.ContainsAny(text, ".eE") && !strings.HasPrefix(text, "0x") && !strings.HasPrefix(text, "0X") {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return 0, err
			}
			return c.floatToElement(f)
		}
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return 0, err
		}
		return vector.Element(v), nil
	case reflect.Ptr, reflect.Interface:
		return 0, nil
	}
	return 0, fmt.Errorf("cannot convert %v to %v", srcValue.Type(), elementType)
}

func (c *Converter) floatToElement(f float64) (vector.Element, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("value %v overflows %v", f, elementType)
	}
	if !c.options.Truncate && f != math.Trunc(f) {
		return 0, fmt.Errorf("cannot convert fractional value %v to %v", f, elementType)
	}
	return vector.Element(f), nil
}

// FromVector copies src elements into dest, which has to be a pointer to a slice of numbers, bools or strings
func (c *Converter) FromVector(src *vector.Vector, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("destination must be a pointer to slice, got %T", dest)
	}
	sliceType := destValue.Elem().Type()
	sliceValue := reflect.MakeSlice(sliceType, src.Size(), src.Size())
	for i, item := range src.All() {
		if err := setElement(sliceValue.Index(i), item); err != nil {
			return fmt.Errorf("error converting element %d: %w", i, err)
		}
	}
	destValue.Elem().Set(sliceValue)
	return nil
}

func setElement(destValue reflect.Value, item vector.Element) error {
	switch destValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if destValue.OverflowInt(int64(item)) {
			return fmt.Errorf("value %d overflows %v", item, destValue.Type())
		}
		destValue.SetInt(int64(item))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if item < 0 {
			return fmt.Errorf("cannot convert negative value %d to %v", item, destValue.Type())
		}
		if destValue.OverflowUint(uint64(item)) {
			return fmt.Errorf("value %d overflows %v", item, destValue.Type())
		}
		destValue.SetUint(uint64(item))
	case reflect.Float32, reflect.Float64:
		destValue.SetFloat(float64(item))
	case reflect.Bool:
		destValue.SetBool(item != 0)
	case reflect.String:
		destValue.SetString(strconv.Itoa(item))
	case reflect.Interface:
		destValue.Set(reflect.ValueOf(item))
	default:
		return fmt.Errorf("cannot convert %v to %v", elementType, destValue.Type())
	}
	return nil
}

var defaultConverter = NewConverter(DefaultOptions())

// ToVector converts src into a new vector with default options
func ToVector(src interface{}) (*vector.Vector, error) {
	ret := vector.New()
	if err := defaultConverter.Convert(src, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// FromVector copies src elements into dest with default options
func FromVector(src *vector.Vector, dest interface{}) error {
	return defaultConverter.FromVector(src, dest)
}

// helper functions

func indirect(v reflect.Value) reflect.Value {
	for (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
