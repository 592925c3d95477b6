/*
Package score computes the point value of a completed enumerator path:
per-letter base values, per-cell letter modifiers, the whole-word double
bonus, and the flat long-word bonus, applied in a fixed order
(double-word multiplier before the long-word bonus, never after).
*/
package score

import (
	"github.com/corvidfield/lexigrid/board"
	"github.com/corvidfield/lexigrid/search"
)

// letterValues is the fixed a..z point table, indexed by c - 'a' the
// same way trie.Node indexes its children: the key space is
// the full 26-letter alphabet, so an array beats a map[byte]int here.
var letterValues = [26]int{
	1, 4, 5, 3, 1, 5, 3, 4, 1, 7, 6, 3, 4, 2, 1, 4, 8, 2, 2, 2, 4, 5, 5, 7, 4, 8,
}

// longWordLength is the minimum path length that earns the flat bonus.
const longWordLength = 6

// longWordBonus is added once, after the double-word multiplier.
const longWordBonus = 10

// Swap describes one position along a path where the spelled letter
// differs from the board's underlying letter.
type Swap struct {
	Original   byte
	Substitute byte
	Row, Col   int
}

// Score computes the point value of p over board b: sum
// per-letter values with per-cell DoubleLetter/TripleLetter multipliers
// applied as encountered, double the running total once if any cell
// along the path carries DoubleWord, then add a flat long-word bonus if
// the path has at least longWordLength letters.
//
// Modifiers are looked up on the underlying board cell at each path
// position, never on the swapped character: a swap substitutes the
// letter contributed to the spelled word, it does not move or cancel
// the cell's own modifier.
func Score(p search.Path, b *board.Board) int {
	points := 0
	doubleWord := false
	for _, ls := range p {
		v := letterValues[ls.Char-'a']
		mods := b.ModifiersAt(ls.Row, ls.Col)
		if mods.Has(board.DoubleLetter) {
			v *= 2
		}
		if mods.Has(board.TripleLetter) {
			v *= 3
		}
		if mods.Has(board.DoubleWord) {
			doubleWord = true
		}
		points += v
	}
	if doubleWord {
		points *= 2
	}
	if len(p) >= longWordLength {
		points += longWordBonus
	}
	return points
}

// Swaps reports, in path order, every position where p's spelled letter
// differs from the board's own letter at that cell: the substitutions
// a swap-budget path actually used.
func Swaps(p search.Path, b *board.Board) []Swap {
	var out []Swap
	for _, ls := range p {
		grid := b.LetterAt(ls.Row, ls.Col)
		if ls.Char != grid {
			out = append(out, Swap{Original: grid, Substitute: ls.Char, Row: ls.Row, Col: ls.Col})
		}
	}
	return out
}
