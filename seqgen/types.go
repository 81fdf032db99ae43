package seqgen

import "errors"

// Sentinel errors for sequence generation.
var (
	// ErrNegativeLength is returned when a negative length is requested.
	ErrNegativeLength = errors.New("seqgen: length must be non-negative")

	// ErrBadRange is returned when a value bound or distinct-value count is not positive.
	ErrBadRange = errors.New("seqgen: range must be positive")

	// ErrUnknownShape is returned by Shape for a name outside Shapes.
	ErrUnknownShape = errors.New("seqgen: unknown shape")
)

// Shape names a family of inputs. Shapes are what benchmarks and the
// driver CLI select by name.
type Shape string

const (
	// ShapeRandom draws each value uniformly from [0, n).
	ShapeRandom Shape = "random"

	// ShapePermutation is a shuffle of 0..n-1 (no duplicates).
	ShapePermutation Shape = "permutation"

	// ShapeSorted is 0..n-1 in order.
	ShapeSorted Shape = "sorted"

	// ShapeReversed is n-1..0.
	ShapeReversed Shape = "reversed"

	// ShapeFewUnique draws from only k distinct values, stressing ties.
	ShapeFewUnique Shape = "few-unique"
)

// Shapes lists every Shape in a stable order.
var Shapes = []Shape{ShapeRandom, ShapePermutation, ShapeSorted, ShapeReversed, ShapeFewUnique}
