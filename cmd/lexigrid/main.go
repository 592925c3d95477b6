// Command lexigrid is the interactive front-end over the reachable-word
// enumerator: it loads a dictionary and a board, asks for (or takes) a
// swap budget, runs the enumerator, and reports the longest word, the
// best-scoring word, and the top-10 best-scoring words.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/corvidfield/lexigrid/board"
	"github.com/corvidfield/lexigrid/ranker"
	"github.com/corvidfield/lexigrid/result"
	"github.com/corvidfield/lexigrid/score"
	"github.com/corvidfield/lexigrid/search"
	"github.com/corvidfield/lexigrid/trie"
)

// topKDefault is the size of the top-word list the plain-text report
// prints when --top is not given.
const topKDefault = 10

// CLI is the kong command definition: `lexigrid <dict> <board> [--swaps N] [--top K] [--json] [--sequential]`.
type CLI struct {
	Dictionary string `arg:"" help:"Path to the newline-delimited dictionary file."`
	Board      string `arg:"" help:"Path to the board file."`

	Swaps      *int `help:"Swap budget (>= 0). If omitted, prompted for on stdin."`
	Top        int  `help:"Size of the top-word list." default:"10"`
	JSON       bool `help:"Print the result envelope as JSON instead of the plain-text report."`
	Sequential bool `help:"Disable the per-start-cell worker fan-out."`
}

// IOError wraps a failure to open or read one of the CLI's input
// files; %w wrapping keeps it errors.Is/errors.As friendly without a
// bespoke error-chain type.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("lexigrid: %s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// InvalidSwapCountError reports a swap count that is not a non-negative
// integer, whether it came from the --swaps flag or the stdin prompt.
type InvalidSwapCountError struct {
	Input string
}

func (e *InvalidSwapCountError) Error() string {
	return fmt.Sprintf("lexigrid: invalid swap count %q: must be a non-negative integer", e.Input)
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("lexigrid"),
		kong.Description("Find the longest, best, and top words reachable on a letter-board."),
	)

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	if err := run(context.Background(), &cli); err != nil {
		slog.Error("lexigrid failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI) error {
	t, err := loadTrie(cli.Dictionary)
	if err != nil {
		return err
	}
	slog.Info("dictionary loaded", "words", t.Size(), "path", cli.Dictionary)

	b, err := loadBoard(cli.Board)
	if err != nil {
		return err
	}
	slog.Info("board loaded", "size", b.Size(), "path", cli.Board)

	swaps, err := resolveSwaps(cli.Swaps)
	if err != nil {
		return err
	}
	slog.Info("swap budget resolved", "swaps", swaps)

	var paths []search.Path
	if cli.Sequential {
		paths = search.Enumerate(b, t, swaps, search.Options{})
	} else {
		paths, err = search.EnumerateParallel(ctx, b, t, swaps, search.Options{})
		if err != nil {
			return fmt.Errorf("lexigrid: enumeration: %w", err)
		}
	}
	slog.Info("enumeration complete", "paths", len(paths))

	longestPath, ok := ranker.Longest(paths)
	if !ok {
		fmt.Println("No reachable words found.")
		return nil
	}
	longest := ranker.Scored{Path: longestPath, Points: score.Score(longestPath, b)}

	best, _ := ranker.Best(paths, b)

	top := cli.Top
	if top <= 0 {
		top = topKDefault
	}
	topK, err := ranker.TopK(paths, b, top)
	if err != nil {
		return fmt.Errorf("lexigrid: top-k: %w", err)
	}

	if cli.JSON {
		return printJSON(best, b)
	}
	fmt.Print(result.RenderReport(b, longest, best, topK))
	return nil
}

func printJSON(best ranker.Scored, b *board.Board) error {
	env := result.NewEnvelope(best, b)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

func loadTrie(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	t, errs := trie.Load(f)
	if len(errs) > 0 {
		return nil, fmt.Errorf("lexigrid: dictionary %s: %w", path, errors.Join(errs...))
	}
	return t, nil
}

func loadBoard(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	b, err := board.ParseBoard(f)
	if err != nil {
		return nil, fmt.Errorf("lexigrid: board %s: %w", path, err)
	}
	return b, nil
}

// resolveSwaps returns the configured swap count, prompting on stdin
// for a non-negative integer when none was given on the command line.
func resolveSwaps(configured *int) (int, error) {
	if configured != nil {
		if *configured < 0 {
			return 0, &InvalidSwapCountError{Input: strconv.Itoa(*configured)}
		}
		return *configured, nil
	}

	fmt.Print("Number of swaps: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("lexigrid: reading swap count: %w", err)
	}
	input := strings.TrimSpace(line)
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return 0, &InvalidSwapCountError{Input: input}
	}
	return n, nil
}
