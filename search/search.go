/*
Package search is the path enumerator: the DFS that walks the board
from every start cell through 8-neighbor adjacency, co-traversing a
dictionary trie, and emits every simple path that spells a trie-terminal
word, subject to a swap budget that lets a path step substitute any
letter the trie allows at the cost of one swap unit.

The DFS is iterative, driven by an explicit WorkStack rather than Go's
call stack, because the stack needs to be partitioned into frames: a
single flat LIFO cannot express "run the Unwind for this step only
after every descendant of that step has been processed" without extra
bookkeeping. Frames solve this directly (see workstack.go), and each
frame is built out of this module's own stack.Stack[T], composing the
generic single-level primitive into the larger structure rather than
reimplementing a stack here.
*/
package search

import (
	"context"
	"fmt"

	"github.com/corvidfield/lexigrid/board"
	"github.com/corvidfield/lexigrid/queue"
	"github.com/corvidfield/lexigrid/trie"
	"golang.org/x/sync/errgroup"
)

// LetterSpace is one element of an in-flight or emitted path: the
// letter actually contributed to the spelled word at this step (which
// differs from the board's letter at (Row,Col) exactly when this step
// is a swap), and the swap budget that carries into the NEXT step.
type LetterSpace struct {
	Char       byte
	Row, Col   int
	SwapsAfter int
}

// Path is an ordered, simple sequence of LetterSpaces.
type Path []LetterSpace

// Spell concatenates the Char fields of a Path into the word it spells.
func (p Path) Spell() string {
	buf := make([]byte, len(p))
	for i, ls := range p {
		buf[i] = ls.Char
	}
	return string(buf)
}

// clone returns an independent copy of p, safe to retain after the
// enumerator continues mutating its own in-flight trail.
func (p Path) clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Options configures enumeration behavior beyond the board, dictionary
// and swap budget.
type Options struct {
	// SeedSwapStarts also enumerates words that begin with a swapped
	// first letter, in addition to the default natural-start-letter
	// behavior. Off by default to match the reference behavior.
	SeedSwapStarts bool
}

// EnumerateFrom runs the path enumerator from a single start cell and
// returns every emitted Path, in DFS emission order.
func EnumerateFrom(b *board.Board, t *trie.Trie, start [2]int, swaps int, opts Options) []Path {
	d := &dfs{b: b, t: t, visited: make([][]bool, b.Size())}
	for i := range d.visited {
		d.visited[i] = make([]bool, b.Size())
	}
	return d.run(start, swaps, opts)
}

// Enumerate runs the enumerator from every cell of the board, in
// row-major order, and concatenates the results. This is the
// single-threaded mode of C6's worker fan-out.
func Enumerate(b *board.Board, t *trie.Trie, swaps int, opts Options) []Path {
	var out []Path
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out = append(out, EnumerateFrom(b, t, [2]int{r, c}, swaps, opts)...)
		}
	}
	return out
}

// EnumerateParallel shards Enumerate's work across one goroutine per
// start cell. Board and Trie are built before this call and passed by
// pointer, read-only, for the whole call's lifetime, so no locking is
// needed on the hot path: every goroutine owns its own WorkStack and
// in-flight path and touches no shared mutable state.
//
// ctx is honored at shard boundaries (before a goroutine begins its
// start cell), not mid-DFS: the DFS itself has no suspension points.
// A goroutine panic is recovered and returned as an error so a single
// bad start cell cannot silently drop the rest of the results.
func EnumerateParallel(ctx context.Context, b *board.Board, t *trie.Trie, swaps int, opts Options) ([]Path, error) {
	starts := queue.NewQueue[[2]int]()
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			starts.Enqueue([2]int{r, c})
		}
	}

	results := make(chan []Path, n*n)
	g, gctx := errgroup.WithContext(ctx)
	for {
		start, ok := starts.DequeueOK()
		if !ok {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("search: worker for start cell panicked: %v", r)
				}
			}()
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results <- EnumerateFrom(b, t, start, swaps, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	var out []Path
	for paths := range results {
		out = append(out, paths...)
	}
	return out, nil
}
