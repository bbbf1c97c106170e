package board

import (
	"testing"

	"github.com/chessadvent/chessadvent/internal/geometry"
	"github.com/chessadvent/chessadvent/internal/piece"
	"github.com/chessadvent/chessadvent/internal/square"
)

func TestCoordsToIndexOutOfRange(t *testing.T) {
	b := New(4, 4)
	if _, ok := b.CoordsToIndex(-1, 0); ok {
		t.Error("expected out of range")
	}
	if _, ok := b.CoordsToIndex(4, 0); ok {
		t.Error("expected out of range")
	}
	if idx, ok := b.CoordsToIndex(1, 2); !ok || idx != 9 {
		t.Errorf("got (%d,%v), want (9,true)", idx, ok)
	}
}

func TestSetPieceOutOfBounds(t *testing.T) {
	b := New(2, 2)
	k := piece.New(piece.King, 0)
	if err := b.SetPiece(5, 5, &k); err == nil {
		t.Error("expected OutOfBounds error")
	}
}

func TestTrialIsolation(t *testing.T) {
	b := New(4, 4)
	k := piece.New(piece.King, 0)
	b.SetPiece(1, 1, &k)

	trial := b.CopyForTrial()
	trial.Apply(PieceMove{
		Located: LocatedPiece{X: 1, Y: 1, Piece: k},
		Move:    geometry.Move{X: 2, Y: 2, Dir: geometry.SE},
	})

	if b.Piece(1, 1) == nil {
		t.Error("source board's piece should be unaffected by trial mutation")
	}
	if b.Piece(2, 2) != nil {
		t.Error("source board should not see the trial's destination piece")
	}
	if trial.Piece(1, 1) != nil {
		t.Error("trial board's origin should be vacated")
	}
	if got := trial.Piece(2, 2); got == nil || got.Kind != piece.King {
		t.Error("trial board should have the moved king at destination")
	}
}

func TestApplyUpdatesPawnFacingAfterBounce(t *testing.T) {
	b := New(4, 4)
	p := piece.NewPawn(0, piece.Up, true)
	b.SetPiece(0, 0, &p)

	err := b.Apply(PieceMove{
		Located: LocatedPiece{X: 0, Y: 0, Piece: p},
		Move:    geometry.Move{X: 1, Y: 0, Dir: geometry.E},
	})
	if err != nil {
		t.Fatal(err)
	}
	moved := b.Piece(1, 0)
	if moved == nil {
		t.Fatal("expected piece at destination")
	}
	wantFacing, _ := piece.FacingFromDirection(geometry.E)
	if moved.Facing != wantFacing {
		t.Errorf("facing = %v, want %v", moved.Facing, wantFacing)
	}
	if moved.LongRange {
		t.Error("long range should be cleared after a move")
	}
}

func TestApplyCapturesDestination(t *testing.T) {
	b := New(4, 4)
	attacker := piece.New(piece.Rook, 0)
	victim := piece.New(piece.Rook, 1)
	b.SetPiece(0, 0, &attacker)
	b.SetPiece(0, 3, &victim)

	b.Apply(PieceMove{
		Located: LocatedPiece{X: 0, Y: 0, Piece: attacker},
		Move:    geometry.Move{X: 0, Y: 3, Dir: geometry.S},
	})

	got := b.Piece(0, 3)
	if got == nil || got.Team != 0 {
		t.Error("expected attacker at destination, victim captured")
	}
}

func TestScrollToroidal(t *testing.T) {
	b := New(3, 3)
	k := piece.New(piece.King, 0)
	b.SetPiece(0, 0, &k)

	b.Scroll(1, 1)

	if b.Piece(1, 1) == nil {
		t.Fatal("expected piece to land at (1,1) after scroll(1,1)")
	}
	if b.Piece(0, 0) != nil {
		t.Error("origin should be empty after scroll")
	}
}

func TestScrollNegative(t *testing.T) {
	b := New(3, 3)
	k := piece.New(piece.King, 0)
	b.SetPiece(0, 0, &k)
	b.Scroll(-1, -1)
	if b.Piece(2, 2) == nil {
		t.Fatal("expected piece to wrap to (2,2) after scroll(-1,-1)")
	}
}

func TestResizeGrowPreservesContentAndHolesNewCells(t *testing.T) {
	b := New(2, 2)
	k := piece.New(piece.King, 0)
	b.SetPiece(1, 1, &k)

	b.Resize(1, 1)

	if b.W != 3 || b.H != 3 {
		t.Fatalf("got %dx%d, want 3x3", b.W, b.H)
	}
	if b.Piece(1, 1) == nil {
		t.Error("preserved cell should retain its piece")
	}
	if b.Square(2, 2) != nil {
		t.Error("new cell should be a hole")
	}
	if b.Piece(2, 0) != nil {
		t.Error("new cell should have no piece")
	}
}

func TestResizeShrinkDropsOutOfRangeCells(t *testing.T) {
	b := New(3, 3)
	k := piece.New(piece.King, 0)
	b.SetPiece(2, 2, &k)

	b.Resize(-1, -1)

	if b.W != 2 || b.H != 2 {
		t.Fatalf("got %dx%d, want 2x2", b.W, b.H)
	}
	if _, ok := b.CoordsToIndex(2, 2); ok {
		t.Error("shrunk board should not have index (2,2)")
	}
}

func TestStateIDDeterministic(t *testing.T) {
	b := New(2, 2)
	k := piece.New(piece.King, 0)
	b.SetPiece(0, 0, &k)

	id1 := b.StateID()
	id2 := b.StateID()
	if id1 != id2 {
		t.Errorf("StateID not deterministic: %q != %q", id1, id2)
	}

	other := New(2, 2)
	other.SetPiece(0, 0, &k)
	if other.StateID() != id1 {
		t.Error("equal boards should share a fingerprint")
	}
}

func TestStateIDDistinguishesHoles(t *testing.T) {
	b1 := New(2, 2)
	b2 := New(2, 2)
	b2.SetSquare(1, 1, nil)
	if b1.StateID() == b2.StateID() {
		t.Error("a hole should change the fingerprint")
	}
}

func TestCloneIsolatesFutureInPlaceEdits(t *testing.T) {
	b := New(3, 3)
	k := piece.New(piece.King, 0)
	b.SetPiece(1, 1, &k)
	b.SetSquare(0, 0, &square.Square{Kind: square.Enter})

	clone := b.Clone()

	// In-place mutation of the live board must not leak into the clone,
	// unlike a CopyForTrial (which shares the squares backing array).
	b.SetSquare(0, 0, nil)
	b.SetPiece(1, 1, nil)

	if clone.Square(0, 0) == nil || clone.Square(0, 0).Kind != square.Enter {
		t.Error("clone's square was affected by a later SetSquare on the source")
	}
	if clone.Piece(1, 1) == nil {
		t.Error("clone's piece was affected by a later SetPiece on the source")
	}
}

func TestSolidAt(t *testing.T) {
	b := New(2, 2)
	if b.SolidAt(0, 0) {
		t.Error("fresh Normal square should not be solid")
	}
	b.SetSquare(0, 0, nil)
	if !b.SolidAt(0, 0) {
		t.Error("hole should report solid (cannot move onto)")
	}
	b.SetSquare(0, 1, &square.Square{Kind: square.BounceSlash})
	if !b.SolidAt(0, 1) {
		t.Error("bouncer should report solid")
	}
}
