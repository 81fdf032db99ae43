// Package mergesort provides a recursive, stable, copy-returning merge sort
// over Go slices, with an optional parallel mode and a dynamically typed
// entry point.
//
// What
//
//   - Sort / SortFunc return a new slice in non-decreasing order; the
//     caller's slice is never mutated.
//   - Merge / MergeFunc combine two sorted slices in one linear pass.
//   - SortWith accepts functional Options (context, parallelism, hooks).
//   - SortValues sorts []any (or any slice/array value) of numbers or
//     strings, failing with ErrTypeKind on unorderable elements.
//
// Algorithm
//
//  1. n ≤ 1: the range is already sorted.
//  2. mid = n/2; sort [0,mid) and [mid,n) recursively.
//  3. Merge with two pointers: take from the right half only when its head
//     is strictly smaller, so ties resolve left-first and the sort is stable.
//  4. When one half is exhausted, append the rest of the other in bulk.
//
// Determinism
//
//	The output depends only on the input and the comparator. Parallel
//	execution (WithParallel) produces exactly the sequential result.
//
// Complexity (n = len(s))
//
//   - Time:   O(n log n) comparisons
//   - Memory: O(n) per recursion level, O(log n) stack depth
//
// Usage
//
//	out := mergesort.Sort([]int{1, 10, 29, 10203, 12, 90})
//	// out == [1 10 12 29 90 10203]
//
//	byAge := mergesort.SortFunc(people, func(a, b Person) int {
//	    return cmp.Compare(a.Age, b.Age)
//	})
//
//	out, err := mergesort.SortWith(big, cmp.Compare[int],
//	    mergesort.WithContext(ctx),
//	    mergesort.WithParallel(4096),
//	    mergesort.WithMaxGoroutines(runtime.GOMAXPROCS(0)),
//	)
//
// Options
//
//   - DefaultOptions():         background Context, sequential, no-op hook.
//   - WithContext(ctx):         cancel a long sort.
//   - WithParallel(n):          fork halves of ranges with len ≥ n (n ≥ 2; 0 = off).
//   - WithMaxGoroutines(n):     bound the extra goroutines (n > 0).
//   - WithOnMerge(fn):          observe every merge (depth, len(left), len(right)).
//
// Errors
//
//   - ErrTypeKind          elements cannot be ordered against each other.
//   - ErrInvalidArgument   SortValues input is not a slice or array.
//   - ErrOptionViolation   invalid Option.
//   - ErrNilComparator     SortWith called with a nil comparator.
//   - ctx.Err()            the context was cancelled.
package mergesort
