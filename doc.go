// Package lvsort is a small sorting playground built around a recursive,
// stable merge sort.
//
// 🚀 What is inside?
//
//		• mergesort/ — Sort, SortFunc, Merge, MergeFunc, SortWith (options:
//		  context, parallel halves, merge hooks) and SortValues for
//		  dynamically typed sequences
//		• seqgen/    — deterministic input generators (random, permutation,
//		  sorted, reversed, few-unique) for tests and benchmarks
//		• cmd/lvsort — driver CLI: `lvsort demo` replays the merge sort
//		  scenarios, `lvsort sort` sorts integers
//
// ✨ Guarantees
//
//   - Copy-returning: the caller's slice is never mutated.
//   - Stable: ties resolve left-first during merge.
//   - Deterministic: parallel mode yields exactly the sequential result.
//
// Quick example:
//
//	mergesort.Sort([]int{1, 2, 3, 32, 54, 3}) // [1 2 3 3 32 54]
//
//	go get github.com/katalvlaran/lvsort/mergesort
package lvsort
