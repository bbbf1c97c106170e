package batch

import (
	"testing"

	"github.com/chessadvent/chessadvent/internal/board"
	"github.com/chessadvent/chessadvent/internal/piece"
)

func TestAnalyzeIndependentBoards(t *testing.T) {
	var boards []*board.Board
	for i := 0; i < 6; i++ {
		b := board.New(5, 5)
		r := piece.New(piece.Rook, 0)
		b.SetPiece(2, 2, &r)
		boards = append(boards, b)
	}

	results, err := Analyze(boards, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(boards) {
		t.Fatalf("got %d results, want %d", len(results), len(boards))
	}
	for i, moves := range results {
		if len(moves) == 0 {
			t.Errorf("board %d: expected at least one move for a lone rook", i)
		}
	}
}

func TestAnalyzeEmptyBoardsYieldNoMoves(t *testing.T) {
	boards := []*board.Board{board.New(3, 3), board.New(3, 3)}
	results, err := Analyze(boards, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, moves := range results {
		if len(moves) != 0 {
			t.Errorf("board %d: expected no moves on an empty board, got %d", i, len(moves))
		}
	}
}

func TestAnalyzeSingleTeamBoard(t *testing.T) {
	b := board.New(4, 4)
	k := piece.New(piece.King, 1)
	b.SetPiece(0, 0, &k)
	if _, err := Analyze([]*board.Board{b}, 1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBestMovesSharedBoardConcurrentTeams(t *testing.T) {
	b := board.New(5, 5)
	r0 := piece.New(piece.Rook, 0)
	r1 := piece.New(piece.Rook, 1)
	b.SetPiece(0, 0, &r0)
	b.SetPiece(4, 4, &r1)

	results, err := BestMoves(b, []piece.Team{0, 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Best == nil {
			t.Errorf("team %d: expected a best move", r.Team)
		}
	}

	// The input board must be unmodified by any goroutine's trial work.
	if b.Piece(0, 0) == nil || b.Piece(0, 0).Team != 0 {
		t.Error("BestMoves must not mutate the shared input board")
	}
	if b.Piece(4, 4) == nil || b.Piece(4, 4).Team != 1 {
		t.Error("BestMoves must not mutate the shared input board")
	}
}
