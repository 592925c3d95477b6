package result

import (
	"strings"
	"testing"

	"github.com/corvidfield/lexigrid/board"
	"github.com/corvidfield/lexigrid/ranker"
	"github.com/corvidfield/lexigrid/search"
)

func mustBoard(t *testing.T, text string) *board.Board {
	t.Helper()
	b, err := board.ParseBoard(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func TestNewEnvelopeConvertsToOneIndexed(t *testing.T) {
	b := mustBoard(t, "c a t\nx x x\nx x x\n")
	p := search.Path{
		{Char: 'k', Row: 0, Col: 0, SwapsAfter: 0},
		{Char: 'a', Row: 0, Col: 1, SwapsAfter: 0},
		{Char: 't', Row: 0, Col: 2, SwapsAfter: 0},
	}
	sc := ranker.Scored{Path: p, Points: 42}

	env := NewEnvelope(sc, b)
	if env.Word != "kat" || env.Points != 42 {
		t.Fatalf("envelope word/points = %q/%d, want %q/%d", env.Word, env.Points, "kat", 42)
	}
	if len(env.Spaces) != 3 || env.Spaces[0].Row != 1 || env.Spaces[0].Col != 1 {
		t.Fatalf("Spaces not 1-indexed: %+v", env.Spaces)
	}
	if len(env.Swaps) != 1 {
		t.Fatalf("Swaps = %+v, want exactly one (c -> k at 0,0)", env.Swaps)
	}
	sw := env.Swaps[0]
	if sw.OriginalChar != "c" || sw.NewChar != "k" || sw.Row != 1 || sw.Col != 1 {
		t.Errorf("Swaps[0] = %+v, want {c k 1 1}", sw)
	}
}

func TestRenderReportReshuffleRecommendation(t *testing.T) {
	b := mustBoard(t, "a a\na a\n")
	low := ranker.Scored{Path: search.Path{{Char: 'a', Row: 0, Col: 0}}, Points: 1}
	report := RenderReport(b, low, low, []ranker.Scored{low})
	if !strings.Contains(report, "Reshuffle recommended") {
		t.Errorf("report should recommend a reshuffle below 30 points, got:\n%s", report)
	}
}

func TestRenderReportNoRecommendationAboveThreshold(t *testing.T) {
	b := mustBoard(t, "a a\na a\n")
	high := ranker.Scored{Path: search.Path{{Char: 'a', Row: 0, Col: 0}}, Points: 40}
	report := RenderReport(b, high, high, []ranker.Scored{high})
	if strings.Contains(report, "Reshuffle recommended") {
		t.Errorf("report should not recommend a reshuffle at or above 30 points, got:\n%s", report)
	}
}
