// Package history implements bounded undo/redo over immutable board
// snapshots, matching the reference editor's undo_stack/redo_stack
// discipline: any structural edit pushes a pre-edit snapshot and
// clears the redo stack; the undo stack is capped, dropping its oldest
// entry once full.
package history

import "github.com/chessadvent/chessadvent/internal/board"

// MaxUndoStackSize bounds the undo stack, matching the reference
// editor's MAX_UNDO_STACK_SIZE.
const MaxUndoStackSize = 100

// History tracks undo/redo snapshots for one board in editing session.
// The zero value is ready to use.
type History struct {
	undo []*board.Board
	redo []*board.Board
}

// Record pushes a snapshot of current (the board state just before an
// edit is applied) onto the undo stack, clearing the redo stack. If
// the undo stack is already at MaxUndoStackSize, its oldest entry is
// dropped to make room.
func (h *History) Record(current *board.Board) {
	if len(h.undo) >= MaxUndoStackSize {
		h.undo = h.undo[1:]
	}
	h.undo = append(h.undo, current.Clone())
	h.redo = nil
}

// Undo pops the most recent undo snapshot, pushes current onto the
// redo stack, and returns the popped snapshot. ok is false if there is
// nothing to undo, in which case current is returned unchanged. The
// caller must treat current as retired once swapped out -- it is
// stored by reference, not cloned, matching the reference editor.
func (h *History) Undo(current *board.Board) (prev *board.Board, ok bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	last := len(h.undo) - 1
	prev = h.undo[last]
	h.undo = h.undo[:last]
	h.redo = append(h.redo, current)
	return prev, true
}

// Redo pops the most recent redo snapshot, pushes current back onto
// the undo stack, and returns the popped snapshot. ok is false if
// there is nothing to redo. As with Undo, current is retained by
// reference.
func (h *History) Redo(current *board.Board) (next *board.Board, ok bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	last := len(h.redo) - 1
	next = h.redo[last]
	h.redo = h.redo[:last]
	h.undo = append(h.undo, current)
	return next, true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
