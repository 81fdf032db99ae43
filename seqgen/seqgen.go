package seqgen

import (
	"fmt"
	"math/rand"
)

// fewUniqueDefault is the distinct-value count Shape uses for ShapeFewUnique.
const fewUniqueDefault = 8

// Generator produces deterministic integer sequences from one RNG stream.
// Not safe for concurrent use.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Generator seeded with seed (0 maps to a fixed default).
func New(seed int64) *Generator {
	return &Generator{seed: seed, rng: rngFromSeed(seed)}
}

// Derive returns an independent Generator for the given stream id.
// The same (seed, stream) pair always yields the same Generator,
// regardless of how much the parent has been used.
func (g *Generator) Derive(stream uint64) *Generator {
	parent := g.seed
	if parent == 0 {
		parent = defaultRNGSeed
	}
	s := deriveSeed(parent, stream)

	return &Generator{seed: s, rng: rngFromSeed(s)}
}

// Random returns n values drawn uniformly from [0, limit).
func (g *Generator) Random(n, limit int) ([]int, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit=%d", ErrBadRange, limit)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = g.rng.Intn(limit)
	}

	return out, nil
}

// Permutation returns a shuffled 0..n-1.
func (g *Generator) Permutation(n int) ([]int, error) {
	out, err := Sorted(n)
	if err != nil {
		return nil, err
	}
	shuffleInPlace(out, g.rng)

	return out, nil
}

// FewUnique returns n values drawn from k distinct values 0..k-1.
func (g *Generator) FewUnique(n, k int) ([]int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadRange, k)
	}

	return g.Random(n, k)
}

// Shape dispatches to the generator for s. Random values are drawn from [0, n)
// (or [0, 1) when n == 0, which yields nothing anyway).
func (g *Generator) Shape(s Shape, n int) ([]int, error) {
	switch s {
	case ShapeRandom:
		return g.Random(n, max(n, 1))
	case ShapePermutation:
		return g.Permutation(n)
	case ShapeSorted:
		return Sorted(n)
	case ShapeReversed:
		return Reversed(n)
	case ShapeFewUnique:
		return g.FewUnique(n, fewUniqueDefault)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, s)
	}
}

// Sorted returns 0..n-1.
func Sorted(n int) ([]int, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out, nil
}

// Reversed returns n-1..0.
func Reversed(n int) ([]int, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}

	return out, nil
}

func checkLen(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrNegativeLength, n)
	}

	return nil
}
