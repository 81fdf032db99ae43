package mergesort

import (
	"cmp"
	"sync"
)

// Sort returns a new slice holding the elements of s in non-decreasing order.
// s itself is left untouched. Sort of an empty or nil slice returns an empty,
// non-nil slice.
//
// Ordering follows cmp.Compare, so a NaN sorts before every other float.
//
// Example:
//
//	out := Sort([]int{1, 2, 3, 32, 54, 3}) // [1 2 3 3 32 54]
func Sort[S ~[]E, E cmp.Ordered](s S) S {
	out, _ := SortWith(s, cmp.Compare[E])

	return out
}

// SortFunc is Sort with a caller-supplied three-way comparator:
// compare(a, b) < 0 when a orders before b, 0 when they tie, > 0 otherwise.
// Elements that tie keep their input order.
func SortFunc[S ~[]E, E any](s S, compare func(a, b E) int) S {
	out, _ := SortWith(s, compare)

	return out
}

// SortWith runs the merge sort with functional Options applied.
//
// Returns ErrNilComparator for a nil compare, ErrOptionViolation for bad
// options, or the context error when Options.Ctx is cancelled mid-sort.
// On error no partial result is returned.
//
// Complexity: O(n log n) comparisons, O(n) extra memory per recursion level.
func SortWith[S ~[]E, E any](s S, compare func(a, b E) int, opts ...Option) (S, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// Length 0 and 1 are already sorted; hand back a private copy.
	if len(s) <= 1 {
		return append(make(S, 0, len(s)), s...), nil
	}

	w := &sorter[E]{
		compare: compare,
		opts:    o,
	}
	if o.ParallelThreshold > 0 {
		w.slots = make(chan struct{}, o.MaxGoroutines)
	}

	out, err := w.sort(s, 0)
	if err != nil {
		return nil, err
	}

	return S(out), nil
}

// Merge combines two non-decreasing slices into a new non-decreasing slice
// of length len(left)+len(right). On ties the element from left comes first.
//
// Example:
//
//	Merge([]int{1, 3, 6, 9}, []int{2, 5, 6, 7, 10}) // [1 2 3 5 6 6 7 9 10]
func Merge[S ~[]E, E cmp.Ordered](left, right S) S {
	return MergeFunc(left, right, cmp.Compare[E])
}

// MergeFunc is Merge with a caller-supplied three-way comparator.
// Inputs are not validated; unsorted inputs yield an unspecified order
// but still exactly len(left)+len(right) elements.
func MergeFunc[S ~[]E, E any](left, right S, compare func(a, b E) int) S {
	out := make(S, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// take from right only when strictly smaller
		if compare(right[j], left[i]) < 0 {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	// at most one of these is non-empty
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}

// sorter encapsulates the per-call state of one SortWith invocation.
type sorter[E any] struct {
	compare func(a, b E) int
	opts    Options
	slots   chan struct{} // nil when sequential
}

// sort returns the sorted contents of s. Ranges of length ≤ 1 are
// returned as-is: merge only reads its inputs, so aliasing the caller's
// memory at the leaves is safe.
func (w *sorter[E]) sort(s []E, depth int) ([]E, error) {
	if len(s) <= 1 {
		return s, nil
	}
	// cancellation check (once per merge)
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	mid := len(s) / 2
	left, right, err := w.halves(s[:mid], s[mid:], depth+1)
	if err != nil {
		return nil, err
	}
	w.opts.OnMerge(depth, len(left), len(right))

	return MergeFunc(left, right, w.compare), nil
}

// halves sorts both halves, forking the left one onto a new goroutine
// when the range is large enough and a slot is free.
func (w *sorter[E]) halves(l, r []E, depth int) ([]E, []E, error) {
	if !w.fork(len(l) + len(r)) {
		sl, err := w.sort(l, depth)
		if err != nil {
			return nil, nil, err
		}
		sr, err := w.sort(r, depth)
		if err != nil {
			return nil, nil, err
		}

		return sl, sr, nil
	}

	var (
		wg   sync.WaitGroup
		sl   []E
		lerr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { <-w.slots }()
		sl, lerr = w.sort(l, depth)
	}()
	sr, rerr := w.sort(r, depth)
	wg.Wait()

	if lerr != nil {
		return nil, nil, lerr
	}
	if rerr != nil {
		return nil, nil, rerr
	}

	return sl, sr, nil
}

// fork reports whether a range of length n should be split across
// goroutines, reserving a slot when it should.
func (w *sorter[E]) fork(n int) bool {
	if w.slots == nil || n < w.opts.ParallelThreshold {
		return false
	}
	select {
	case w.slots <- struct{}{}:
		return true
	default:
		return false
	}
}
