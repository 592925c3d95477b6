package search

import (
	"fmt"

	"github.com/corvidfield/lexigrid/board"
	"github.com/corvidfield/lexigrid/trie"
)

// dfs holds the per-start-cell traversal state: the board and trie are
// shared read-only, everything else belongs to exactly one call of run
// and is never touched by another goroutine.
type dfs struct {
	b       *board.Board
	t       *trie.Trie
	visited [][]bool
	path    Path
	emitted []Path
}

func (d *dfs) run(start [2]int, swaps int, opts Options) []Path {
	ws := newWorkStack()
	current := d.t.Root()

	r0, c0 := start[0], start[1]
	var seeds []workItem
	natLetter := d.b.LetterAt(r0, c0)
	if _, ok := trie.ChildOf(current, natLetter); ok {
		seeds = append(seeds, workItem{kind: kindStep, ch: natLetter, row: r0, col: c0, swapsAfter: swaps})
	}
	if opts.SeedSwapStarts && swaps > 0 {
		for _, child := range trie.Children(current) {
			seeds = append(seeds, workItem{kind: kindStep, ch: child.Letter, row: r0, col: c0, swapsAfter: swaps - 1})
		}
	}
	// No candidate letter reaches any trie child from root: the start
	// cell cannot begin any word, and there is nothing to unwind.
	if len(seeds) == 0 {
		return nil
	}

	ws.pushFrame()
	ws.push(workItem{kind: kindUnwind, parent: current})
	for _, s := range seeds {
		ws.push(s)
	}

	for {
		item, ok := ws.pop()
		if !ok {
			break
		}
		switch item.kind {
		case kindUnwind:
			// The seed frame's unwind fires after the path has already
			// been fully retracted; it only restores the root node.
			if len(d.path) > 0 {
				last := d.path[len(d.path)-1]
				d.visited[last.Row][last.Col] = false
				d.path = d.path[:len(d.path)-1]
			}
			current = item.parent
		case kindStep:
			old := current
			child, ok := trie.ChildOf(current, item.ch)
			if !ok {
				panic(fmt.Sprintf("search: invariant violated: no trie child %q from node reached so far", item.ch))
			}
			current = child
			d.path = append(d.path, LetterSpace{Char: item.ch, Row: item.row, Col: item.col, SwapsAfter: item.swapsAfter})
			d.visited[item.row][item.col] = true

			if trie.IsTerminal(current) {
				d.emitted = append(d.emitted, d.path.clone())
			}

			ws.pushFrame()
			ws.push(workItem{kind: kindUnwind, parent: old})
			for _, nb := range d.b.Neighbors(item.row, item.col) {
				nr, nc := nb[0], nb[1]
				if d.visited[nr][nc] {
					continue
				}
				natLetter := d.b.LetterAt(nr, nc)
				if _, ok := trie.ChildOf(current, natLetter); ok {
					ws.push(workItem{kind: kindStep, ch: natLetter, row: nr, col: nc, swapsAfter: item.swapsAfter})
				}
				if item.swapsAfter > 0 {
					for _, ch := range trie.Children(current) {
						ws.push(workItem{kind: kindStep, ch: ch.Letter, row: nr, col: nc, swapsAfter: item.swapsAfter - 1})
					}
				}
			}
		}
	}

	return d.emitted
}
