// Package batch runs the evaluator concurrently across independent
// positions. Two searches over disjoint board copies never touch each
// other's state -- Board's trial-copy semantics (squares shared,
// pieces independently owned) make this safe without locking.
package batch

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/evaluator"
	"github.com/chessadvent/chessadvent/internal/piece"
)

// Analyze runs FindNextMoves on every board in boards concurrently,
// with a single self-team evaluator shared by all boards, bounded by
// GOMAXPROCS. The returned slice has the same length and order as
// boards; if any board fails, Analyze waits for the running searches
// to finish and returns the first error with no results.
func Analyze(boards []*board.Board, selfTeam piece.Team, future int) ([][]evaluator.ScoredMove, error) {
	results := make([][]evaluator.ScoredMove, len(boards))
	e := evaluator.New(selfTeam)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, b := range boards {
		i, b := i, b
		g.Go(func() error {
			moves, err := e.FindNextMoves(b, future)
			if err != nil {
				return err
			}
			results[i] = moves
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TeamResult pairs a team with its best move on a shared board.
type TeamResult struct {
	Team piece.Team
	Best *evaluator.ScoredMove
}

// BestMoves computes each team's best move on the same board
// concurrently: every goroutine only reads b (Board accessors never
// mutate it) and FindNextMove applies candidate moves to its own
// trial copy internally, so no shared mutable state crosses
// goroutines.
func BestMoves(b *board.Board, teams []piece.Team, future int) ([]TeamResult, error) {
	results := make([]TeamResult, len(teams))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, team := range teams {
		i, team := i, team
		g.Go(func() error {
			e := evaluator.New(team)
			best, err := e.FindNextMove(b, future)
			if err != nil {
				return err
			}
			results[i] = TeamResult{Team: team, Best: best}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
