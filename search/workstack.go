package search

import (
	"github.com/corvidfield/lexigrid/stack"
	"github.com/corvidfield/lexigrid/trie"
)

type stepKind int

const (
	kindStep stepKind = iota
	kindUnwind
)

// workItem is a tagged union of the WorkStack's two item kinds, kept as
// a single flat comparable struct rather than a Go interface so the hot
// loop pushes and pops plain values instead of boxed allocations.
type workItem struct {
	kind stepKind

	// Step payload.
	ch         byte
	row, col   int
	swapsAfter int

	// Unwind payload: the trie node to restore current position to.
	parent *trie.Node
}

// workStack is the "double stack": a stack of frames, where each frame
// is itself a LIFO stack.Stack[workItem]. Pushing a frame creates a new
// partition; pop always drains the topmost non-empty frame and discards
// it the instant it empties, exposing the frame beneath. This is what
// lets an Unwind item sit at the base of a frame and fire only once
// every item pushed above it in that frame (including items pushed by
// nested frames) has been fully processed.
type workStack struct {
	frames []*stack.Stack[workItem]
}

func newWorkStack() *workStack {
	return &workStack{}
}

func (w *workStack) pushFrame() {
	w.frames = append(w.frames, stack.NewStack[workItem]())
}

func (w *workStack) push(item workItem) {
	top := w.frames[len(w.frames)-1]
	top.Push(item)
}

func (w *workStack) pop() (workItem, bool) {
	for len(w.frames) > 0 {
		top := w.frames[len(w.frames)-1]
		if top.IsEmpty() {
			w.frames = w.frames[:len(w.frames)-1]
			continue
		}
		v, ok := top.PopOK()
		if top.IsEmpty() {
			w.frames = w.frames[:len(w.frames)-1]
		}
		return v, ok
	}
	return workItem{}, false
}
