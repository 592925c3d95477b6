/*
Package result is the JSON-serializable result envelope for
programmatic consumption, plus the plain-text formatted display the
CLI prints by default. It is the one place the enumerator's 0-indexed internal
(row, col) coordinates become the 1-indexed coordinates external
consumers see; the conversion happens exactly once, here.
*/
package result

import (
	"fmt"
	"strings"

	"github.com/corvidfield/lexigrid/board"
	"github.com/corvidfield/lexigrid/ranker"
	"github.com/corvidfield/lexigrid/score"
)

// Space is one letter of the spelled word, with its 1-indexed board
// position. Char is a one-letter string rather than a byte so the JSON
// reads "a", not 97.
type Space struct {
	Char string `json:"char"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// SwapRecord reports one position where the spelled path substituted a
// letter for the board's own, 1-indexed like Space.
type SwapRecord struct {
	OriginalChar string `json:"original_char"`
	NewChar      string `json:"new_char"`
	Row          int    `json:"row"`
	Col          int    `json:"col"`
}

// Envelope is the programmatic-consumption record for a scored word.
type Envelope struct {
	Word   string       `json:"word"`
	Points int          `json:"points"`
	Spaces []Space      `json:"spaces"`
	Swaps  []SwapRecord `json:"swaps"`
}

// NewEnvelope builds the Envelope for a scored path, converting its
// 0-indexed board coordinates to 1-indexed coordinates at the
// external boundary.
func NewEnvelope(sc ranker.Scored, b *board.Board) Envelope {
	spaces := make([]Space, 0, len(sc.Path))
	for _, ls := range sc.Path {
		spaces = append(spaces, Space{Char: string(ls.Char), Row: ls.Row + 1, Col: ls.Col + 1})
	}
	swaps := make([]SwapRecord, 0)
	for _, sw := range score.Swaps(sc.Path, b) {
		swaps = append(swaps, SwapRecord{
			OriginalChar: string(sw.Original),
			NewChar:      string(sw.Substitute),
			Row:          sw.Row + 1,
			Col:          sw.Col + 1,
		})
	}
	return Envelope{
		Word:   sc.Path.Spell(),
		Points: sc.Points,
		Spaces: spaces,
		Swaps:  swaps,
	}
}

// reshuffleThreshold is the score below which the CLI recommends
// reshuffling the board.
const reshuffleThreshold = 30

// RenderReport formats the plain-text report: the board, the longest
// word, the best word with its swaps, and the top-K list with points,
// followed by a reshuffle recommendation when the best score falls
// short of reshuffleThreshold.
func RenderReport(b *board.Board, longest ranker.Scored, best ranker.Scored, topK []ranker.Scored) string {
	var sb strings.Builder
	sb.WriteString(b.String())
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "Longest word: %s (%d points)\n", longest.Path.Spell(), longest.Points)
	fmt.Fprintf(&sb, "Best word:    %s (%d points)\n", best.Path.Spell(), best.Points)
	for _, sw := range score.Swaps(best.Path, b) {
		fmt.Fprintf(&sb, "  Replacement of %c with %c at [%d, %d]\n", sw.Original, sw.Substitute, sw.Row+1, sw.Col+1)
	}

	sb.WriteString("\nTop words:\n")
	for i, sc := range topK {
		fmt.Fprintf(&sb, "  %2d. %-16s %d points\n", i+1, sc.Path.Spell(), sc.Points)
	}

	if best.Points < reshuffleThreshold {
		sb.WriteString("\nReshuffle recommended: best score is below 30 points.\n")
	}
	return sb.String()
}
