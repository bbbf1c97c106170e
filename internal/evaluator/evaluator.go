// Package evaluator implements position evaluation and bounded
// look-ahead search: per-team weight vectors, a material+mobility
// score from one team's perspective, and a depth-bounded recursive
// move search that alternates teams.
package evaluator

import (
	"sort"

	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/piece"
	"github.com/chessadvent/chessadvent/internal/state"
	"github.com/chessadvent/chessadvent/internal/storage"
)

// Tunable weights. MoveWeight rewards available mobility; StuckWeight
// penalizes a piece with no legal moves at all.
const (
	MoveWeight  = 0.02
	StuckWeight = -0.1
)

// PieceValue gives each kind's relative material worth. These are a
// policy choice, not standard chess values -- the reference system
// uses exactly these.
var PieceValue = map[piece.Kind]float64{
	piece.King:   1000,
	piece.Queen:  9,
	piece.Rook:   5,
	piece.Bishop: 3,
	piece.Knight: 3,
	piece.Pawn:   1,
}

// Evaluator scores positions and searches for moves from the
// perspective of one team.
type Evaluator struct {
	SelfTeam piece.Team
}

// New creates an Evaluator for selfTeam.
func New(selfTeam piece.Team) *Evaluator {
	return &Evaluator{SelfTeam: selfTeam}
}

// sign returns +1 for the evaluator's own team, -1 for every other
// team: the sole source of every weight vector's asymmetry.
func (e *Evaluator) sign(team piece.Team) float64 {
	if team == e.SelfTeam {
		return 1
	}
	return -1
}

// Score summarizes st from e.SelfTeam's perspective: material value
// plus a mobility term (MoveWeight per available move, or StuckWeight
// for a piece with none), each signed +1 for SelfTeam and -1 for every
// other team present. Each team's subtotal is built from integer
// counts before it is signed, so two teams with equal material and
// mobility cancel exactly.
func (e *Evaluator) Score(st *state.BoardState) float64 {
	var total float64
	for team := range st.TeamsPresent {
		var material float64
		for kind, count := range st.MaterialByTeam[team] {
			material += PieceValue[kind] * float64(count)
		}

		moves, stuck := 0, 0
		for _, pm := range st.PiecesAndMovesByTeam[team] {
			if len(pm.Moves) > 0 {
				moves += len(pm.Moves)
			} else {
				stuck++
			}
		}

		total += (material + float64(moves)*MoveWeight + float64(stuck)*StuckWeight) * e.sign(team)
	}
	return total
}

// ScoredMove pairs a candidate move with the score of the position it
// leads to. Move is nil for the "empty move" pass-through used when a
// team has no legal moves during look-ahead (see ScoreWithFuture).
type ScoredMove struct {
	Move  *board.PieceMove
	Score float64
}

// CachedScore returns Score for board's current state from e.SelfTeam's
// perspective, consulting store first: a hit avoids rebuilding the
// BoardState (move generation for every piece on the board). A miss
// computes and stores the result for next time, the same
// read-fallback-to-default shape the teacher's preference loader uses.
func (e *Evaluator) CachedScore(store *storage.Store, b *board.Board) (float64, error) {
	key := storage.CacheKey(b.StateID(), e.SelfTeam, 0)

	if entry, ok, err := store.Get(key); err != nil {
		return 0, err
	} else if ok {
		return entry.Score, nil
	}

	st, err := state.Build(b)
	if err != nil {
		return 0, err
	}
	score := e.Score(st)

	entry := storage.Entry{
		PiecesAndMovesByTeam: st.PiecesAndMovesByTeam,
		MaterialByTeam:       st.MaterialByTeam,
		TeamsPresent:         st.TeamsPresent,
		Score:                score,
	}
	if err := store.Put(key, entry); err != nil {
		return 0, err
	}
	return score, nil
}

// FindNextMoves enumerates e.SelfTeam's legal moves on board, each
// scored by ScoreWithFuture at the given look-ahead depth, sorted
// descending by score. If SelfTeam has no legal moves, the result is
// empty.
func (e *Evaluator) FindNextMoves(b *board.Board, future int) ([]ScoredMove, error) {
	return e.findNextMoves(b, future, e.SelfTeam, false)
}

// FindNextMove returns the best-scored move from FindNextMoves, or nil
// if there are none.
func (e *Evaluator) FindNextMove(b *board.Board, future int) (*ScoredMove, error) {
	moves, err := e.FindNextMoves(b, future)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return nil, nil
	}
	return &moves[0], nil
}

// findNextMoves enumerates team's legal moves on board and scores each
// via ScoreWithFuture. When allowEmptyMove is true and team has no
// legal move at all, it returns a single nil-Move entry scored as if
// team passed -- the "empty move" allowance described in spec.md §9,
// preserved to keep recursive plies aligned with the reference
// implementation.
func (e *Evaluator) findNextMoves(b *board.Board, future int, team piece.Team, allowEmptyMove bool) ([]ScoredMove, error) {
	st, err := state.Build(b)
	if err != nil {
		return nil, err
	}

	var out []ScoredMove
	for _, pm := range st.PiecesAndMovesByTeam[team] {
		for _, mv := range pm.Moves {
			pieceMove := board.PieceMove{Located: pm.Piece, Move: mv}
			score, err := e.scoreAfter(b, future, &pieceMove, team)
			if err != nil {
				return nil, err
			}
			out = append(out, ScoredMove{Move: &pieceMove, Score: score})
		}
	}

	if len(out) == 0 {
		if !allowEmptyMove {
			return nil, nil
		}
		score, err := e.scoreAfter(b, future, nil, team)
		if err != nil {
			return nil, err
		}
		return []ScoredMove{{Move: nil, Score: score}}, nil
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// scoreAfter applies pieceMove (or, if nil, leaves board unchanged --
// the empty move) to a trial copy and computes its ScoreWithFuture
// value for the next team in rotation.
func (e *Evaluator) scoreAfter(b *board.Board, future int, pieceMove *board.PieceMove, team piece.Team) (float64, error) {
	newBoard := b
	if pieceMove != nil {
		newBoard = b.CopyForTrial()
		if err := newBoard.Apply(*pieceMove); err != nil {
			return 0, err
		}
	}
	nextTeam := piece.Team((int(team) + 1) % piece.NumTeams)
	return e.ScoreWithFuture(newBoard, future, nextTeam)
}

// ScoreWithFuture is the recursive look-ahead: at remaining==0 it
// returns the static Score of board; otherwise it enumerates team's
// next moves with remaining-1 (allowing the empty-move pass-through)
// and returns the best reply's score, maximizing without pruning.
func (e *Evaluator) ScoreWithFuture(b *board.Board, remaining int, team piece.Team) (float64, error) {
	if remaining == 0 {
		st, err := state.Build(b)
		if err != nil {
			return 0, err
		}
		return e.Score(st), nil
	}

	moves, err := e.findNextMoves(b, remaining-1, team, true)
	if err != nil {
		return 0, err
	}
	return moves[0].Score, nil
}
