// Package state builds a BoardState: a derived, read-only summary of a
// Board at one instant, used by the evaluator and by callers that want
// every team's pieces and legal moves without recomputing them.
package state

import (
	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/geometry"
	"github.com/chessadvent/chessadvent/internal/movegen"
	"github.com/chessadvent/chessadvent/internal/piece"
)

// PieceMoves pairs a located piece with its full legal move set.
type PieceMoves struct {
	Piece board.LocatedPiece
	Moves []geometry.Move
}

// BoardState is a derived, read-only summary of a Board. For every
// team present in TeamsPresent, PiecesAndMovesByTeam and
// MaterialByTeam both have an entry; absent teams have neither.
type BoardState struct {
	StateID             string
	PiecesAndMovesByTeam map[piece.Team][]PieceMoves
	MaterialByTeam       map[piece.Team]map[piece.Kind]int
	TeamsPresent         map[piece.Team]bool
}

// Build enumerates pieces in row-major order, computing each piece's
// move set, the per-team material histogram, and the set of teams with
// at least one piece on the board.
func Build(b *board.Board) (*BoardState, error) {
	st := &BoardState{
		StateID:              b.StateID(),
		PiecesAndMovesByTeam: make(map[piece.Team][]PieceMoves),
		MaterialByTeam:       make(map[piece.Team]map[piece.Kind]int),
		TeamsPresent:         make(map[piece.Team]bool),
	}

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := b.Piece(x, y)
			if p == nil {
				continue
			}

			moves, err := movegen.Generate(b, x, y)
			if err != nil {
				return nil, err
			}

			team := p.Team
			st.TeamsPresent[team] = true
			st.PiecesAndMovesByTeam[team] = append(st.PiecesAndMovesByTeam[team], PieceMoves{
				Piece: board.LocatedPiece{X: x, Y: y, Piece: *p},
				Moves: moves,
			})

			if st.MaterialByTeam[team] == nil {
				st.MaterialByTeam[team] = make(map[piece.Kind]int)
			}
			st.MaterialByTeam[team][p.Kind]++
		}
	}

	return st, nil
}
