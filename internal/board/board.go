// Package board implements the fixed-size W×H grid board: coordinate
// conversion, accessors, bulk mutation (scroll/resize), a cheap
// trial-copy primitive, and a deterministic state fingerprint.
package board

import (
	"fmt"
	"strings"

	"github.com/chessadvent/chessadvent/internal/chesserr"
	"github.com/chessadvent/chessadvent/internal/geometry"
	"github.com/chessadvent/chessadvent/internal/piece"
	"github.com/chessadvent/chessadvent/internal/square"
)

// Board is a fixed-size W×H grid of optional squares and optional
// pieces. A hole (nil square) always carries a nil piece; a solid
// square always carries a nil piece too -- the editor enforces this
// invariant when squares change, and the move generator relies on it.
//
// A trial copy (see Board.CopyForTrial) shares the squares slice with
// its source: squares are immutable during move trials, only pieces
// slice is ever replaced wholesale.
type Board struct {
	W, H    int
	squares []*square.Square
	pieces  []*piece.Piece
}

// New creates an empty W×H board: every cell a Normal square, no
// pieces.
func New(w, h int) *Board {
	size := w * h
	squares := make([]*square.Square, size)
	for i := range squares {
		squares[i] = &square.Square{Kind: square.Normal}
	}
	return &Board{W: w, H: h, squares: squares, pieces: make([]*piece.Piece, size)}
}

// Size returns W*H.
func (b *Board) Size() int {
	return b.W * b.H
}

// CoordsToIndex converts (x,y) to a row-major index, returning false if
// the coordinate is out of [0,W)x[0,H).
func (b *Board) CoordsToIndex(x, y int) (int, bool) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return 0, false
	}
	return y*b.W + x, true
}

// Piece returns the piece at (x,y), or nil if the cell is empty or
// out of range.
func (b *Board) Piece(x, y int) *piece.Piece {
	i, ok := b.CoordsToIndex(x, y)
	if !ok {
		return nil
	}
	return b.pieces[i]
}

// SetPiece sets the piece at (x,y), returning chesserr.OutOfBounds if
// the coordinate is out of range. p may be nil to clear the cell.
func (b *Board) SetPiece(x, y int, p *piece.Piece) error {
	i, ok := b.CoordsToIndex(x, y)
	if !ok {
		return fmt.Errorf("SetPiece(%d,%d): %w", x, y, chesserr.OutOfBounds)
	}
	b.pieces[i] = p
	return nil
}

// Square returns the square at (x,y), or nil (a hole) if the cell is a
// hole or out of range.
func (b *Board) Square(x, y int) *square.Square {
	i, ok := b.CoordsToIndex(x, y)
	if !ok {
		return nil
	}
	return b.squares[i]
}

// SetSquare sets the square at (x,y), returning chesserr.OutOfBounds if
// the coordinate is out of range. sq may be nil to punch a hole.
func (b *Board) SetSquare(x, y int, sq *square.Square) error {
	i, ok := b.CoordsToIndex(x, y)
	if !ok {
		return fmt.Errorf("SetSquare(%d,%d): %w", x, y, chesserr.OutOfBounds)
	}
	b.squares[i] = sq
	return nil
}

// SolidAt reports whether (x,y) cannot be moved onto: true if the
// square is missing (a hole) or solid, false only for an in-range
// Normal square.
func (b *Board) SolidAt(x, y int) bool {
	sq := b.Square(x, y)
	return sq == nil || sq.Solid()
}

// CopyForTrial returns a Board sharing this Board's squares slice but
// owning a fresh, independently-mutable pieces slice. Mutating pieces
// on the returned Board (via SetPiece or Apply) never affects the
// source.
func (b *Board) CopyForTrial() *Board {
	pieces := make([]*piece.Piece, len(b.pieces))
	copy(pieces, b.pieces)
	return &Board{W: b.W, H: b.H, squares: b.squares, pieces: pieces}
}

// Clone returns a deep copy of b: an independent squares array as well
// as an independent pieces array. Unlike CopyForTrial, a Clone is safe
// to keep across arbitrary future edits to b, including SetSquare/
// SetPiece calls that mutate cells in place -- the use case is a
// structural-history snapshot, not a single speculative move.
func (b *Board) Clone() *Board {
	squares := make([]*square.Square, len(b.squares))
	for i, sq := range b.squares {
		if sq != nil {
			copied := *sq
			squares[i] = &copied
		}
	}
	pieces := make([]*piece.Piece, len(b.pieces))
	for i, p := range b.pieces {
		if p != nil {
			copied := *p
			pieces[i] = &copied
		}
	}
	return &Board{W: b.W, H: b.H, squares: squares, pieces: pieces}
}

// LocatedPiece pairs a piece with its board coordinate.
type LocatedPiece struct {
	X, Y  int
	Piece piece.Piece
}

// PieceMove pairs a located piece with the move it is about to make.
type PieceMove struct {
	Located LocatedPiece
	Move    geometry.Move
}

// Apply moves the piece from its located position to the move's
// destination, overwriting (capturing) anything already there. If the
// piece is a pawn and the arrival direction differs from its current
// facing (reachable via bouncers), the pawn's facing is updated to
// match the arrival direction. Every pawn move also clears the
// long-range flag: a moved pawn loses its initial double-step.
func (b *Board) Apply(pm PieceMove) error {
	from := pm.Located
	moved := from.Piece
	if moved.Kind == piece.Pawn {
		if facing, ok := piece.FacingFromDirection(pm.Move.Dir); ok && facing != moved.Facing {
			moved.Facing = facing
		}
		moved.LongRange = false
	}
	if err := b.SetPiece(pm.Move.X, pm.Move.Y, &moved); err != nil {
		return err
	}
	return b.SetPiece(from.X, from.Y, nil)
}

// Scroll shifts all cells toroidally: the cell at (x,y) moves to
// ((x+dx) mod W, (y+dy) mod H). Both squares and pieces move
// identically. dx, dy may be negative.
func (b *Board) Scroll(dx, dy int) {
	w, h := b.W, b.H
	dx = ((dx % w) + w) % w
	dy = ((dy % h) + h) % h

	newSquares := make([]*square.Square, len(b.squares))
	newPieces := make([]*piece.Piece, len(b.pieces))
	for y := 0; y < h; y++ {
		ny := (y + dy) % h
		for x := 0; x < w; x++ {
			nx := (x + dx) % w
			srcIdx := y*w + x
			dstIdx := ny*w + nx
			newSquares[dstIdx] = b.squares[srcIdx]
			newPieces[dstIdx] = b.pieces[srcIdx]
		}
	}
	b.squares = newSquares
	b.pieces = newPieces
}

// Resize changes dimensions to (W+dw, H+dh). Content at each
// destination cell within the overlap of old and new dimensions is
// preserved; new cells (added rows/columns) are holes. Shrinking drops
// out-of-range cells silently. dw, dh may be negative but must not make
// W or H negative.
func (b *Board) Resize(dw, dh int) {
	oldW, oldH := b.W, b.H
	newW, newH := oldW+dw, oldH+dh

	newSquares := make([]*square.Square, newW*newH)
	newPieces := make([]*piece.Piece, newW*newH)

	copyW := oldW
	if newW < copyW {
		copyW = newW
	}
	copyH := oldH
	if newH < copyH {
		copyH = newH
	}
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			srcIdx := y*oldW + x
			dstIdx := y*newW + x
			newSquares[dstIdx] = b.squares[srcIdx]
			newPieces[dstIdx] = b.pieces[srcIdx]
		}
	}

	b.W, b.H = newW, newH
	b.squares = newSquares
	b.pieces = newPieces
}

// holeSentinel marks a hole cell in the state fingerprint.
const holeSentinel = '#'

// StateID deterministically encodes (W, H, and each cell in row-major
// order) into a string suitable as a cache key: two Boards with equal
// fingerprints are equivalent for scoring and move generation.
func (b *Board) StateID() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d:", b.W, b.H)
	for i := 0; i < b.Size(); i++ {
		sq := b.squares[i]
		if sq == nil {
			sb.WriteByte(holeSentinel)
			continue
		}
		sb.WriteByte(sq.Char())
		if p := b.pieces[i]; p != nil {
			fmt.Fprintf(&sb, "%d%c", p.Team, p.Glyph())
		}
	}
	return sb.String()
}
