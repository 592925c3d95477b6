/*
Package ranker implements C5, the Selector: it reduces a stream of
enumerated paths to the longest word, the best-scoring word, and the
top-K best-scoring words.

Named ranker rather than "select": select is a legal Go package name
(it is a keyword only in statement position) but no repo in the wild
names a package that, and it would misread as a bug to any reviewer.
*/
package ranker

import (
	"errors"
	"sort"

	"github.com/corvidfield/lexigrid/board"
	"github.com/corvidfield/lexigrid/priorityqueue"
	"github.com/corvidfield/lexigrid/score"
	"github.com/corvidfield/lexigrid/search"
)

// ErrInvalidK is returned by TopK when K is negative. K == 0 is not an
// error: it returns an empty result.
var ErrInvalidK = errors.New("ranker: K must be >= 0")

// Scored pairs a path with its computed score, the unit the Selector
// compares and the ranker.TopK buffer holds.
type Scored struct {
	Path   search.Path
	Points int
}

// Longest returns the longest-spelling path in paths, ties broken by
// first-seen (the first path of maximum length encountered in
// enumeration order wins). Returns the zero Path and false if paths is
// empty.
func Longest(paths []search.Path) (search.Path, bool) {
	if len(paths) == 0 {
		return nil, false
	}
	best := paths[0]
	for _, p := range paths[1:] {
		if len(p) > len(best) {
			best = p
		}
	}
	return best, true
}

// Best returns the highest-scoring path in paths, ties broken by
// first-seen. Returns the zero Scored and false if paths is empty.
func Best(paths []search.Path, b *board.Board) (Scored, bool) {
	if len(paths) == 0 {
		return Scored{}, false
	}
	best := Scored{Path: paths[0], Points: score.Score(paths[0], b)}
	for _, p := range paths[1:] {
		pts := score.Score(p, b)
		if pts > best.Points {
			best = Scored{Path: p, Points: pts}
		}
	}
	return best, true
}

// TopK runs a bounded online top-K reduction over paths: a size-K
// min-heap (by score) absorbs the first K emissions, then each
// subsequent emission is compared against the current minimum and, if
// it scores higher, replaces it. Ties at the minimum keep whichever
// entry is already resident (first-seen survives eviction), since a
// strictly-greater comparison is required to evict.
//
// The heap is priorityqueue.BinaryHeap, built with
// NewBinaryHeapWithComparator as a min-heap over Points. It never holds
// more than K elements: once full, the minimum is read with Peek and,
// when the candidate beats it, removed with Poll before the candidate
// is added.
//
// Final output is sorted descending by score with a stable sort over
// the min-heap's Drain order, so entries with equal scores keep the
// order Drain yielded them in; that order depends on the heap's layout
// and is not necessarily first-seen order. K == 0 returns an empty,
// non-error result; K < 0 is ErrInvalidK.
func TopK(paths []search.Path, b *board.Board, k int) ([]Scored, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if k == 0 {
		return nil, nil
	}

	min := priorityqueue.NewBinaryHeapWithComparator(func(a, b Scored) bool {
		return a.Points < b.Points
	})

	for _, p := range paths {
		sc := Scored{Path: p, Points: score.Score(p, b)}
		if min.Size() < k {
			min.Add(sc)
			continue
		}
		lowest, err := min.Peek()
		if err != nil {
			continue
		}
		if sc.Points > lowest.Points {
			min.Poll()
			min.Add(sc)
		}
	}

	out := min.Drain()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out, nil
}
