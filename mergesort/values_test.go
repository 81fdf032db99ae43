package mergesort_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/mergesort"
)

// TestSortValues_Numbers sorts a boxed slice and keeps each element's dynamic type.
func TestSortValues_Numbers(t *testing.T) {
	out, err := mergesort.SortValues([]any{1, 10, 29, 10203, 12, 90})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 10, 12, 29, 90, 10203}, out)
}

// TestSortValues_MixedNumeric mixes signed, unsigned and float values.
func TestSortValues_MixedNumeric(t *testing.T) {
	out, err := mergesort.SortValues([]any{uint8(3), -2, 2.5, int64(-7), uint(0)})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(-7), -2, uint(0), 2.5, uint8(3)}, out)
}

// TestSortValues_Stable checks that equal numbers of different kinds keep input order.
func TestSortValues_Stable(t *testing.T) {
	out, err := mergesort.SortValues([]any{2.0, 1, 2, uint(1)})
	require.NoError(t, err)
	assert.Equal(t, []any{1, uint(1), 2.0, 2}, out)
}

// TestSortValues_LargeIntegersAndFloats orders integers beyond float64
// precision exactly against floats of the same magnitude.
func TestSortValues_LargeIntegersAndFloats(t *testing.T) {
	out, err := mergesort.SortValues([]any{int64(1<<53 + 1), float64(1 << 53), int64(1 << 53)})
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1 << 53), int64(1 << 53), int64(1<<53 + 1)}, out)

	out, err = mergesort.SortValues([]any{uint64(1<<63 + 1), float64(1 << 63), uint64(1 << 63), int64(math.MaxInt64)})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(math.MaxInt64), float64(1 << 63), uint64(1 << 63), uint64(1<<63 + 1)}, out)

	ints := make([]int64, 0, len(out))
	for _, v := range out {
		if i, ok := v.(int64); ok {
			ints = append(ints, i)
		}
	}
	assert.IsNonDecreasing(t, ints)
}

// TestSortValues_FractionsAgainstIntegers uses the fractional part to order
// a float against an integer with the same integer part.
func TestSortValues_FractionsAgainstIntegers(t *testing.T) {
	out, err := mergesort.SortValues([]any{int64(3), 2.5, int64(2), 3.0, -2.5, int64(-3), int64(-2), uint(0), -0.5})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(-3), -2.5, int64(-2), -0.5, uint(0), int64(2), 2.5, int64(3), 3.0}, out)
}

// TestSortValues_NaNAndInfinities places NaN first and the infinities
// outside every integer range.
func TestSortValues_NaNAndInfinities(t *testing.T) {
	out, err := mergesort.SortValues([]any{
		math.Inf(1), int64(math.MaxInt64), math.NaN(), uint64(math.MaxUint64), math.Inf(-1), int64(math.MinInt64),
	})
	require.NoError(t, err)
	require.Len(t, out, 6)
	assert.True(t, math.IsNaN(out[0].(float64)), "NaN sorts first, got %v", out[0])
	assert.Equal(t, []any{
		math.Inf(-1), int64(math.MinInt64), int64(math.MaxInt64), uint64(math.MaxUint64), math.Inf(1),
	}, out[1:])
}

// TestSortValues_TypedSlicesAndArrays accepts any slice or array value.
func TestSortValues_TypedSlicesAndArrays(t *testing.T) {
	out, err := mergesort.SortValues([]string{"b", "c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "c"}, out)

	out, err = mergesort.SortValues([3]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, out)
}

// TestSortValues_Empty returns an empty result without error.
func TestSortValues_Empty(t *testing.T) {
	out, err := mergesort.SortValues([]any{})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

// TestSortValues_TypeKind rejects elements that cannot be ordered together.
func TestSortValues_TypeKind(t *testing.T) {
	cases := map[string]any{
		"string and int": []any{1, "a"},
		"bool":           []any{true, false},
		"nil element":    []any{1, nil},
		"struct":         []struct{}{{}, {}},
		"pointer":        []*int{new(int)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := mergesort.SortValues(in)
			assert.ErrorIs(t, err, mergesort.ErrTypeKind)
			assert.Nil(t, out, "no partial result")
		})
	}
}

// TestSortValues_InvalidArgument rejects inputs that are not sequences.
func TestSortValues_InvalidArgument(t *testing.T) {
	for name, in := range map[string]any{
		"nil":    nil,
		"int":    42,
		"string": "cba",
		"map":    map[int]int{1: 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := mergesort.SortValues(in)
			assert.ErrorIs(t, err, mergesort.ErrInvalidArgument)
		})
	}
}

// TestSortValues_OptionViolation propagates option errors.
func TestSortValues_OptionViolation(t *testing.T) {
	_, err := mergesort.SortValues([]any{2, 1}, mergesort.WithParallel(-5))
	assert.ErrorIs(t, err, mergesort.ErrOptionViolation)
}
