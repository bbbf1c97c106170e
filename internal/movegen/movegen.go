// Package movegen implements the per-piece-type legal move enumerator,
// including the bounce-aware sliding ray walker described in spec.md
// §4.4: cycles introduced by bouncers are cut by a visited (x,y,dir)
// set, and a capture terminates a sliding ray.
package movegen

import (
	"fmt"

	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/chesserr"
	"github.com/chessadvent/chessadvent/internal/geometry"
	"github.com/chessadvent/chessadvent/internal/piece"
)

// CapturePolicy controls whether a candidate destination must, may, or
// must not hold an enemy piece to be accepted.
type CapturePolicy int

const (
	// Either accepts the move whether or not it captures.
	Either CapturePolicy = iota
	// Never rejects the move if it would capture.
	Never
	// Must rejects the move unless it captures.
	Must
)

// Infinite is the max-steps value meaning "no step limit" (Queen,
// Rook, Bishop).
const Infinite = -1

// cellResult is the outcome of examining one candidate cell.
type cellResult int

const (
	resultStop cellResult = iota
	resultBounce
	resultAccept
)

// generator holds the per-call state for one Generate invocation: the
// visited (x,y,dir) set (cuts cycles and duplicate work) and the
// ordered list of accepted moves.
type generator struct {
	b            *board.Board
	originX      int
	originY      int
	originTeam   piece.Team
	visited      map[geometry.Move]bool
	result       []geometry.Move
	resultSeen   map[geometry.Move]bool
}

func newGenerator(b *board.Board, originX, originY int, team piece.Team) *generator {
	return &generator{
		b:          b,
		originX:    originX,
		originY:    originY,
		originTeam: team,
		visited:    make(map[geometry.Move]bool),
		resultSeen: make(map[geometry.Move]bool),
	}
}

// checkCell examines the cell at (x,y) approached from dir under
// policy. It returns the outcome, the reflected direction for a
// bounce, and whether an accepted move would capture an enemy piece.
func (g *generator) checkCell(x, y int, dir geometry.Direction, policy CapturePolicy) (cellResult, geometry.Direction, bool) {
	if _, ok := g.b.CoordsToIndex(x, y); !ok {
		return resultStop, 0, false
	}

	mv := geometry.Move{X: x, Y: y, Dir: dir}
	if g.visited[mv] {
		return resultStop, 0, false
	}
	g.visited[mv] = true

	sq := g.b.Square(x, y)
	if sq != nil {
		if outDir, ok := sq.BounceFor(dir); ok {
			return resultBounce, outDir, false
		}
	}
	if sq == nil || sq.Solid() {
		return resultStop, 0, false
	}

	wouldCapture := false
	if p := g.b.Piece(x, y); p != nil && !(x == g.originX && y == g.originY) {
		if p.Team == g.originTeam {
			return resultStop, 0, false
		}
		wouldCapture = true
	}

	switch policy {
	case Never:
		if wouldCapture {
			return resultStop, 0, false
		}
	case Must:
		if !wouldCapture {
			return resultStop, 0, false
		}
	}

	if !g.resultSeen[mv] {
		g.resultSeen[mv] = true
		g.result = append(g.result, mv)
	}
	return resultAccept, 0, wouldCapture
}

// walk performs the sliding ray walk from the origin in dir, for at
// most maxSteps accepted (non-bounce) steps, or Infinite for no limit.
// A bounce does not consume a step; a capture terminates the ray.
func (g *generator) walk(dir geometry.Direction, maxSteps int, policy CapturePolicy) {
	dx, dy := dir.Step()
	x, y := g.originX+dx, g.originY+dy
	n := 0
	for {
		result, newDir, captured := g.checkCell(x, y, dir, policy)
		switch result {
		case resultStop:
			return
		case resultBounce:
			dir = newDir
			dx, dy = dir.Step()
		case resultAccept:
			if captured {
				return
			}
			n++
			if maxSteps != Infinite && n >= maxSteps {
				return
			}
		}
		x += dx
		y += dy
	}
}

// knightOffsets are the eight L-shape offsets, each paired with the
// nominal direction (the cardinal whose step shares the sign of the
// offset's longer axis).
var knightOffsets = []struct {
	dx, dy int
	nom    geometry.Direction
}{
	{-1, -2, geometry.N},
	{1, -2, geometry.N},
	{-2, -1, geometry.W},
	{2, -1, geometry.E},
	{-2, 1, geometry.W},
	{2, 1, geometry.E},
	{-1, 2, geometry.S},
	{1, 2, geometry.S},
}

// Generate computes the exact set of legal (destination, arrival
// direction) moves for the piece at (x0,y0). It is a programmer error
// to call this on a cell with no piece; that case returns
// chesserr.NoPieceAt.
func Generate(b *board.Board, x0, y0 int) ([]geometry.Move, error) {
	p := b.Piece(x0, y0)
	if p == nil {
		return nil, fmt.Errorf("Generate(%d,%d): %w", x0, y0, chesserr.NoPieceAt)
	}

	g := newGenerator(b, x0, y0, p.Team)

	switch p.Kind {
	case piece.King:
		for _, dir := range geometry.All8 {
			g.walk(dir, 1, Either)
		}
	case piece.Queen:
		for _, dir := range geometry.All8 {
			g.walk(dir, Infinite, Either)
		}
	case piece.Rook:
		for _, dir := range geometry.Cardinals {
			g.walk(dir, Infinite, Either)
		}
	case piece.Bishop:
		for _, dir := range geometry.Diagonals {
			g.walk(dir, Infinite, Either)
		}
	case piece.Knight:
		for _, off := range knightOffsets {
			g.checkCell(x0+off.dx, y0+off.dy, off.nom, Either)
		}
	case piece.Pawn:
		generatePawn(g, p, x0, y0)
	}

	return g.result, nil
}

func generatePawn(g *generator, p *piece.Piece, x0, y0 int) {
	forward := p.Facing.Direction()
	left := geometry.RotateCW(forward, -1)
	right := geometry.RotateCW(forward, 1)

	for _, dir := range [2]geometry.Direction{left, right} {
		dx, dy := dir.Step()
		g.checkCell(x0+dx, y0+dy, dir, Must)
	}

	maxSteps := 1
	if p.LongRange {
		maxSteps = 2
	}
	g.walk(forward, maxSteps, Never)
}
