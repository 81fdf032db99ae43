// Package seqgen builds deterministic integer sequences for exercising sorts:
// uniform random, permutations, already-sorted, reversed and few-unique inputs.
//
// A Generator owns one math/rand stream. The same seed always yields the same
// sequences; seed 0 is mapped to a fixed default so zero-value configs stay
// reproducible.
//
//	g := seqgen.New(42)
//	xs, err := g.Shape(seqgen.ShapeFewUnique, 1000)
package seqgen
