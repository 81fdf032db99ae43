package mergesort

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
)

// keyClass groups the dynamic kinds that can be ordered against each other.
type keyClass int

const (
	classInvalid keyClass = iota
	classNumeric
	classString
)

// String names the class for error messages.
func (c keyClass) String() string {
	switch c {
	case classNumeric:
		return "numeric"
	case classString:
		return "string"
	default:
		return "unordered"
	}
}

// numKind says which field of valueKey carries a numeric value.
type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
)

// valueKey is the orderable projection of one dynamic element.
type valueKey struct {
	class keyClass
	num   numKind
	i     int64
	u     uint64
	f     float64
	s     string
	idx   int // position in the input
}

// SortValues sorts a dynamically typed sequence: any slice or array whose
// elements are all numbers (signed, unsigned, float, in any mix) or all
// strings. Elements are returned unchanged, boxed in a new []any, in
// non-decreasing order. Equal elements keep their input order.
//
// Errors:
//   - ErrInvalidArgument if seq is nil or not a slice/array.
//   - ErrTypeKind if an element is not orderable (bool, struct, nil, ...)
//     or cannot be compared with the first element's kind.
//   - ErrOptionViolation or the context error, as for SortWith.
//
// The whole input is checked before any comparison, so a failure never
// leaves a partial result.
func SortValues(seq any, opts ...Option) ([]any, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: got nil", ErrInvalidArgument)
	}
	rv := reflect.ValueOf(seq)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidArgument, seq)
	}

	n := rv.Len()
	keys := make([]valueKey, n)
	for i := 0; i < n; i++ {
		k, err := keyOf(rv.Index(i), i)
		if err != nil {
			return nil, err
		}
		if i > 0 && k.class != keys[0].class {
			return nil, fmt.Errorf("%w: element %d is %s, element 0 is %s",
				ErrTypeKind, i, k.class, keys[0].class)
		}
		keys[i] = k
	}

	sorted, err := SortWith(keys, compareKeys, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]any, n)
	for i, k := range sorted {
		out[i] = rv.Index(k.idx).Interface()
	}

	return out, nil
}

// keyOf projects v onto a valueKey. Interface elements are unwrapped;
// pointers are rejected, never dereferenced.
func keyOf(v reflect.Value, idx int) (valueKey, error) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	k := valueKey{idx: idx, class: classNumeric}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		k.num, k.i = numInt, v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		k.num, k.u = numUint, v.Uint()
	case reflect.Float32, reflect.Float64:
		k.num, k.f = numFloat, v.Float()
	case reflect.String:
		k.class, k.s = classString, v.String()
	case reflect.Invalid, reflect.Interface:
		return valueKey{}, fmt.Errorf("%w: element %d is nil", ErrTypeKind, idx)
	default:
		return valueKey{}, fmt.Errorf("%w: element %d has unordered kind %s", ErrTypeKind, idx, v.Kind())
	}

	return k, nil
}

// compareKeys orders two keys of the same class. Mixed numeric kinds are
// compared exactly: an integer is never rounded to float64.
func compareKeys(a, b valueKey) int {
	if a.class == classString {
		return cmp.Compare(a.s, b.s)
	}

	switch {
	case a.num == numFloat && b.num == numFloat:
		return cmp.Compare(a.f, b.f)
	case a.num == numFloat:
		return -compareToFloat(b, a.f)
	case b.num == numFloat:
		return compareToFloat(a, b.f)
	case a.num == numInt && b.num == numInt:
		return cmp.Compare(a.i, b.i)
	case a.num == numUint && b.num == numUint:
		return cmp.Compare(a.u, b.u)
	case a.num == numInt: // b is unsigned
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default: // a unsigned, b signed
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
}

// Float bounds of the integer kinds. Both are exact powers of two.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = twoTo63 * 2
)

// compareToFloat compares the integer key k with f without losing
// precision. NaN orders before every number, as in cmp.Compare.
func compareToFloat(k valueKey, f float64) int {
	if math.IsNaN(f) {
		return 1
	}

	t := math.Trunc(f)
	var c int
	if k.num == numInt {
		switch {
		case t >= twoTo63:
			return -1
		case t < -twoTo63:
			return 1
		}
		c = cmp.Compare(k.i, int64(t))
	} else {
		switch {
		case t >= twoTo64:
			return -1
		case t < 0:
			return 1
		}
		c = cmp.Compare(k.u, uint64(t))
	}
	if c != 0 {
		return c
	}

	// same integer part: the fraction decides
	return -cmp.Compare(f-t, 0)
}
